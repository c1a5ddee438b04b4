package admission

import "errors"

var (
	ErrUnknownPolicy = errors.New("admission: unknown unparseable-request policy")
	ErrGenerateCode  = errors.New("admission: failed to generate check-in code")
)
