package domain

import "time"

// Requester is the booker as seen by the admission decision
type Requester struct {
	UserID              *int64 // nil = anonymous
	Email               string
	IDVerified          bool
	AcceptedTermsAt     *time.Time
	AcceptedLiabilityAt *time.Time
}

// IsAuthenticated returns true if the requester is logged in
func (r *Requester) IsAuthenticated() bool {
	return r != nil && r.UserID != nil
}

// HasAcceptedWaivers returns true if both terms and liability waivers were accepted
func (r *Requester) HasAcceptedWaivers() bool {
	return r.AcceptedTermsAt != nil && r.AcceptedLiabilityAt != nil
}
