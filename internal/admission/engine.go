// Package admission turns a booking request plus snapshots of the listing's
// availability data into an admit/reject decision. It never touches storage.
package admission

import (
	"time"

	"github.com/m04kA/FlexDesk-BookingService/internal/availability"
	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
)

// Snapshot is everything the decision reads, loaded by the caller
type Snapshot struct {
	Listing   *domain.Listing // nil = listing does not exist
	Windows   []domain.AvailabilityWindow
	Blackouts []domain.BlackoutDate
	Overrides []domain.DeskAvailabilityOverride // already scoped to the requested desk
	Bookings  []domain.Booking                  // same desk, around the requested date
}

// Request is a raw booking request as submitted by the booker
type Request struct {
	DeskLabel string
	Date      string
	Time      string
	Duration  string
	Price     int64
	// Timezone the booker's wall clock refers to; empty = listing timezone
	Timezone  string
	Requester *domain.Requester
}

// Input for Decide
type Input struct {
	Snapshot Snapshot
	Request  Request
	Now      time.Time
}

// Draft is an admitted booking, ready to be persisted
type Draft struct {
	ListingID   int64
	DeskLabel   string
	Date        string
	Time        string
	Duration    string
	Status      domain.BookingStatus
	TotalPrice  int64
	CheckInCode string
	UserID      *int64

	// Nil when the request could not be parsed and the policy admitted it anyway
	BookingDate     *time.Time
	StartMinute     *int
	DurationMinutes *int
	Timezone        string
}

// Decision is the outcome of Decide: either Draft or Reason is set
type Decision struct {
	Draft  *Draft
	Reason domain.RejectionReason
}

// Admitted returns true if the request was admitted
func (d *Decision) Admitted() bool {
	return d.Draft != nil
}

func reject(reason domain.RejectionReason) *Decision {
	return &Decision{Reason: reason}
}

// Engine makes admission decisions
type Engine struct {
	policy Policy
	codes  CodeGenerator
}

// NewEngine creates an engine. A nil generator means RandomCodeGenerator.
func NewEngine(policy Policy, codes CodeGenerator) *Engine {
	if codes == nil {
		codes = RandomCodeGenerator{}
	}
	if policy.OnUnparseable == "" {
		policy.OnUnparseable = OnUnparseableAdmit
	}
	return &Engine{policy: policy, codes: codes}
}

// Policy returns the configured policy
func (e *Engine) Policy() Policy {
	return e.policy
}

// Decide runs the checks in order; the first failing one wins.
// The only error is a failure to generate the check-in code.
func (e *Engine) Decide(in *Input) (*Decision, error) {
	listing := in.Snapshot.Listing
	requester := in.Request.Requester

	// 1-4. listing and requester policy
	if reason, ok := e.CheckPolicy(listing, requester); !ok {
		return reject(reason), nil
	}

	// 5. availability
	listingLoc := availability.LoadLocation(listing.Timezone, time.UTC)
	slot, parsed := parseRequest(in, listingLoc)
	switch {
	case parsed:
		if reason, ok := e.CheckSlot(&in.Snapshot, slot); !ok {
			return reject(reason), nil
		}
	case e.policy.OnUnparseable == OnUnparseableReject:
		return reject(domain.ReasonUnparseableRequest), nil
	}

	// 6. draft
	code, err := e.codes.Generate()
	if err != nil {
		return nil, err
	}

	draft := &Draft{
		ListingID:   listing.ID,
		DeskLabel:   in.Request.DeskLabel,
		Date:        in.Request.Date,
		Time:        in.Request.Time,
		Duration:    in.Request.Duration,
		Status:      domain.StatusUpcoming,
		TotalPrice:  0,
		CheckInCode: code,
		Timezone:    listingLoc.String(),
	}
	if requester.IsAuthenticated() {
		draft.UserID = requester.UserID
	}
	if listing.RequiresApproval {
		draft.Status = domain.StatusPending
	}
	if listing.PaidEnabled {
		draft.TotalPrice = in.Request.Price
	}
	if parsed {
		local := slot.In(listingLoc)
		draft.BookingDate = &local.Date
		draft.StartMinute = &local.Start
		draft.DurationMinutes = &slot.DurationMinutes
	}

	return &Decision{Draft: draft}, nil
}

// CheckPolicy runs the checks that need only the listing and the requester:
// existence, ID verification, waivers and the allow-list, in that order.
func (e *Engine) CheckPolicy(listing *domain.Listing, requester *domain.Requester) (domain.RejectionReason, bool) {
	if listing == nil {
		return domain.ReasonNotFound, false
	}

	if listing.RequiresID && (requester == nil || !requester.IDVerified) {
		return domain.ReasonIDRequired, false
	}

	if listing.Mode == domain.ModeMicroHost && (requester == nil || !requester.HasAcceptedWaivers()) {
		return domain.ReasonTermsRequired, false
	}

	if listing.HasAllowList() {
		if !requester.IsAuthenticated() {
			return domain.ReasonLoginRequired, false
		}
		if !listing.AllowsEmail(requester.Email) {
			return domain.ReasonNotApproved, false
		}
	}

	return "", true
}

// CheckSlot runs the window, blackout, override and double-booking checks
// for an already parsed request. ok is false together with the failing reason.
func (e *Engine) CheckSlot(s *Snapshot, req availability.Request) (domain.RejectionReason, bool) {
	listingLoc := time.UTC
	if s.Listing != nil {
		listingLoc = availability.LoadLocation(s.Listing.Timezone, time.UTC)
	}
	if req.Location == nil {
		req.Location = listingLoc
	}

	if !availability.WithinWindows(s.Windows, req, listingLoc) {
		return domain.ReasonOutsideWindow, false
	}

	local := req.In(listingLoc)
	if availability.IntersectsBlackout(s.Blackouts, local.Date, local.Start, local.End) {
		return domain.ReasonBlackedOut, false
	}

	if availability.DeskUnavailable(s.Overrides, local.Date) {
		return domain.ReasonDeskUnavailable, false
	}

	if e.policy.RejectDoubleBooking && overlapsBooking(s.Bookings, local) {
		return domain.ReasonDeskBooked, false
	}

	return "", true
}

// Normalize projects a request onto the listing's wall clock. ok is false
// when the date, time or duration does not parse.
func Normalize(listing *domain.Listing, req Request, now time.Time) (availability.Interval, bool) {
	if listing == nil {
		return availability.Interval{}, false
	}
	listingLoc := availability.LoadLocation(listing.Timezone, time.UTC)
	slot, ok := parseRequest(&Input{Request: req, Now: now}, listingLoc)
	if !ok {
		return availability.Interval{}, false
	}
	return slot.In(listingLoc), true
}

// parseRequest returns the request as a wall-clock interval and whether all three tokens parsed
func parseRequest(in *Input, listingLoc *time.Location) (availability.Request, bool) {
	loc := availability.LoadLocation(in.Request.Timezone, listingLoc)
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	date, okDate := availability.ParseDate(in.Request.Date, now.In(loc))
	start, okTime := availability.ParseTime(in.Request.Time)
	duration, okDuration := availability.ParseDuration(in.Request.Duration)
	if !okDate || !okTime || !okDuration {
		return availability.Request{}, false
	}

	return availability.Request{
		Date:            date,
		StartMinute:     start,
		DurationMinutes: duration,
		Location:        loc,
	}, true
}

// overlapsBooking compares on an absolute minute scale so that bookings crossing midnight are caught
func overlapsBooking(bookings []domain.Booking, local availability.Interval) bool {
	start := absoluteMinute(local.Date, local.Start)
	end := start + int64(local.End-local.Start)

	for i := range bookings {
		b := &bookings[i]
		if !b.IsActive() || !b.HasInterval() {
			continue
		}
		bStart := absoluteMinute(*b.BookingDate, *b.StartMinute)
		bEnd := bStart + int64(*b.DurationMinutes)
		if start < bEnd && end > bStart {
			return true
		}
	}
	return false
}

func absoluteMinute(date time.Time, minute int) int64 {
	return availability.CivilDate(date).Unix()/60 + int64(minute)
}
