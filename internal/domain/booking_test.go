package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		legal    bool
	}{
		{StatusPending, StatusUpcoming, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusActive, false},
		{StatusUpcoming, StatusActive, true},
		{StatusUpcoming, StatusCancelled, true},
		{StatusUpcoming, StatusPending, false},
		{StatusActive, StatusCompleted, true},
		{StatusActive, StatusCancelled, true},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusUpcoming, false},
		{StatusCancelled, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := Transition(tt.from, tt.to)
			if tt.legal {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrIllegalTransition)
			}
		})
	}
}

func TestParseBookingStatus(t *testing.T) {
	status, ok := ParseBookingStatus("upcoming")
	assert.True(t, ok)
	assert.Equal(t, StatusUpcoming, status)

	_, ok = ParseBookingStatus("confirmed")
	assert.False(t, ok)
}

func TestListing_AllowsEmail(t *testing.T) {
	l := &Listing{AllowedEmails: []string{"Member@Flexdesk.io"}}

	assert.True(t, l.HasAllowList())
	assert.True(t, l.AllowsEmail("member@flexdesk.io"))
	assert.True(t, l.AllowsEmail(" MEMBER@FLEXDESK.IO "))
	assert.False(t, l.AllowsEmail("guest@flexdesk.io"))
	assert.False(t, l.AllowsEmail(""))
}

func TestRequester_HasAcceptedWaivers(t *testing.T) {
	var r *Requester
	assert.False(t, r.IsAuthenticated())

	r = &Requester{}
	assert.False(t, r.HasAcceptedWaivers())
}

func TestBookingsFilter_MatchesDesk(t *testing.T) {
	deskID := int64(11)
	otherID := int64(12)
	label := "q-1"

	byDesk := BookingsFilter{DeskID: &deskID, DeskLabel: &label}
	byLabel := BookingsFilter{DeskLabel: &label}

	renamed := &Booking{DeskID: &deskID, DeskLabel: "Old-Name"}
	other := &Booking{DeskID: &otherID, DeskLabel: "Q-1"}
	labelOnly := &Booking{DeskLabel: "Q-1"}

	assert.True(t, byDesk.MatchesDesk(renamed))
	assert.False(t, byDesk.MatchesDesk(other))
	assert.True(t, byDesk.MatchesDesk(labelOnly))

	assert.True(t, byLabel.MatchesDesk(other))
	assert.True(t, byLabel.MatchesDesk(labelOnly))
	assert.False(t, byLabel.MatchesDesk(renamed))

	assert.True(t, BookingsFilter{}.MatchesDesk(renamed))
}
