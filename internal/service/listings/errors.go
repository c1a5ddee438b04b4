package listings

import "errors"

var (
	// ErrListingNotFound возвращается, когда объявление не найдено
	ErrListingNotFound = errors.New("listing not found")

	// ErrDeskNotFound возвращается, когда место не найдено
	ErrDeskNotFound = errors.New("desk not found")

	// ErrDeskLabelTaken возвращается, когда метка места уже занята
	ErrDeskLabelTaken = errors.New("desk label already taken")

	// ErrAccessDenied возвращается, когда пользователь не является хостом
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
