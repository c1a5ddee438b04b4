package admission

import "fmt"

// UnparseablePolicy decides what happens when date, time or duration cannot be parsed
type UnparseablePolicy string

const (
	// OnUnparseableAdmit skips the window, blackout and override checks
	OnUnparseableAdmit UnparseablePolicy = "admit"
	// OnUnparseableReject rejects the request with UNPARSEABLE_REQUEST
	OnUnparseableReject UnparseablePolicy = "reject"
)

// ParseUnparseablePolicy validates a configured policy value. Empty means admit.
func ParseUnparseablePolicy(s string) (UnparseablePolicy, error) {
	switch UnparseablePolicy(s) {
	case "", OnUnparseableAdmit:
		return OnUnparseableAdmit, nil
	case OnUnparseableReject:
		return OnUnparseableReject, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Policy configures the admission engine
type Policy struct {
	OnUnparseable       UnparseablePolicy
	RejectDoubleBooking bool
}

// DefaultPolicy admits unparseable requests and rejects overlapping bookings
func DefaultPolicy() Policy {
	return Policy{
		OnUnparseable:       OnUnparseableAdmit,
		RejectDoubleBooking: true,
	}
}
