package domain

// RejectionReason is the business reason a booking request was not admitted
type RejectionReason string

const (
	ReasonNotFound           RejectionReason = "NOT_FOUND"
	ReasonIDRequired         RejectionReason = "ID_REQUIRED"
	ReasonTermsRequired      RejectionReason = "TERMS_REQUIRED"
	ReasonLoginRequired      RejectionReason = "LOGIN_REQUIRED"
	ReasonNotApproved        RejectionReason = "NOT_APPROVED"
	ReasonUnparseableRequest RejectionReason = "UNPARSEABLE_REQUEST"
	ReasonOutsideWindow      RejectionReason = "OUTSIDE_WINDOW"
	ReasonBlackedOut         RejectionReason = "BLACKED_OUT"
	ReasonDeskUnavailable    RejectionReason = "DESK_UNAVAILABLE"
	ReasonDeskBooked         RejectionReason = "DESK_BOOKED"
)
