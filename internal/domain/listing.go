package domain

import (
	"strings"
	"time"
)

// ListingMode governs default visibility and which acknowledgements are mandatory
type ListingMode string

const (
	ModeClosed    ListingMode = "CLOSED"
	ModeOpen      ListingMode = "OPEN"
	ModeMicroHost ListingMode = "MICRO_HOST"
)

// IsValid reports whether the mode is one of the known values
func (m ListingMode) IsValid() bool {
	switch m {
	case ModeClosed, ModeOpen, ModeMicroHost:
		return true
	}
	return false
}

// Listing represents a bookable workspace offered by a host
type Listing struct {
	ID               int64
	OwnerID          int64
	Title            string
	Timezone         string // IANA name, "" = UTC
	PricePerHour     int64
	PaidEnabled      bool
	RequiresApproval bool
	RequiresID       bool
	Mode             ListingMode
	AllowedEmails    []string // empty = unrestricted

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasAllowList returns true if the listing restricts bookers by email
func (l *Listing) HasAllowList() bool {
	return len(l.AllowedEmails) > 0
}

// AllowsEmail checks allow-list membership case-insensitively
func (l *Listing) AllowsEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	for _, allowed := range l.AllowedEmails {
		if strings.EqualFold(strings.TrimSpace(allowed), email) {
			return true
		}
	}
	return false
}

// IsOwnedBy returns true if userID is the listing host
func (l *Listing) IsOwnedBy(userID int64) bool {
	return l.OwnerID == userID
}

// Desk is an individually bookable unit inside a listing's floor plan.
// Label is display text; ID is the stable key for overrides.
type Desk struct {
	ID        int64
	ListingID int64
	Label     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
