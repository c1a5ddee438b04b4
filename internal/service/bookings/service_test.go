package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/FlexDesk-BookingService/internal/infra/storage/booking"
	listingRepo "github.com/m04kA/FlexDesk-BookingService/internal/infra/storage/listing"
	"github.com/m04kA/FlexDesk-BookingService/internal/integrations/events"
	"github.com/m04kA/FlexDesk-BookingService/internal/service/bookings/models"
	"github.com/m04kA/FlexDesk-BookingService/pkg/ptr"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	b, _ := args.Get(0).([]*domain.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, from, to)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

type mockListingRepo struct{ mock.Mock }

func (m *mockListingRepo) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*domain.Listing)
	return l, args.Error(1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishBookingStatusChanged(ctx context.Context, event events.BookingStatusChanged) error {
	return m.Called(ctx, event).Error(0)
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const (
	hostID     = int64(100)
	bookerID   = int64(7)
	strangerID = int64(55)
)

type fixture struct {
	bookings  *mockBookingRepo
	listings  *mockListingRepo
	publisher *mockPublisher
	svc       *Service
}

func newFixture() *fixture {
	f := &fixture{
		bookings:  &mockBookingRepo{},
		listings:  &mockListingRepo{},
		publisher: &mockPublisher{},
	}
	f.svc = NewService(f.bookings, f.listings, f.publisher, inlineTx{}, nopLogger{})
	f.listings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Listing{ID: 1, OwnerID: hostID}, nil).Maybe()
	return f
}

func booking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{ID: 10, ListingID: 1, DeskLabel: "Q-1", Status: status, UserID: ptr.Ptr(bookerID)}
}

func TestGetByID_Access(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(10)).Return(booking(domain.StatusUpcoming), nil)

	resp, err := f.svc.GetByID(context.Background(), 10, bookerID)
	require.NoError(t, err)
	assert.Equal(t, "upcoming", resp.Status)

	_, err = f.svc.GetByID(context.Background(), 10, hostID)
	require.NoError(t, err)

	_, err = f.svc.GetByID(context.Background(), 10, strangerID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(99)).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := f.svc.GetByID(context.Background(), 99, bookerID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_HostApproves(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(10)).Return(booking(domain.StatusPending), nil)
	f.bookings.On("UpdateStatus", mock.Anything, int64(10), domain.StatusPending, domain.StatusUpcoming).
		Return(booking(domain.StatusUpcoming), nil)
	f.publisher.On("PublishBookingStatusChanged", mock.Anything, mock.MatchedBy(func(e events.BookingStatusChanged) bool {
		return e.From == "pending" && e.To == "upcoming" && e.ChangedBy == hostID
	})).Return(nil)

	resp, err := f.svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{UserID: hostID, Status: "upcoming"})
	require.NoError(t, err)
	assert.Equal(t, "upcoming", resp.Status)
	f.publisher.AssertExpectations(t)
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(10)).Return(booking(domain.StatusPending), nil)

	_, err := f.svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{UserID: hostID, Status: "completed"})
	assert.ErrorIs(t, err, ErrIllegalTransition)
	f.bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_OnlyHost(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(10)).Return(booking(domain.StatusPending), nil)

	_, err := f.svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{UserID: bookerID, Status: "upcoming"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	f := newFixture()

	_, err := f.svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{UserID: hostID, Status: "confirmed"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_Conflict(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(10)).Return(booking(domain.StatusUpcoming), nil)
	f.bookings.On("UpdateStatus", mock.Anything, int64(10), domain.StatusUpcoming, domain.StatusActive).
		Return(nil, bookingRepo.ErrStatusConflict)

	_, err := f.svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{UserID: hostID, Status: "active"})
	assert.ErrorIs(t, err, ErrStatusConflict)
}

func TestCancel_ByBooker(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(10)).Return(booking(domain.StatusUpcoming), nil)
	f.bookings.On("UpdateStatus", mock.Anything, int64(10), domain.StatusUpcoming, domain.StatusCancelled).
		Return(booking(domain.StatusCancelled), nil)
	f.publisher.On("PublishBookingStatusChanged", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	resp, err := f.svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: bookerID})
	require.NoError(t, err, "publish failures never fail the request")
	assert.Equal(t, "cancelled", resp.Status)
	f.listings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCancel_Stranger(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(10)).Return(booking(domain.StatusUpcoming), nil)

	_, err := f.svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: strangerID})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_AlreadyCompleted(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(10)).Return(booking(domain.StatusCompleted), nil)

	_, err := f.svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: bookerID})
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestGetUserBookings(t *testing.T) {
	f := newFixture()
	f.bookings.On("List", mock.Anything, mock.MatchedBy(func(filter domain.BookingsFilter) bool {
		return filter.UserID != nil && *filter.UserID == bookerID && filter.Status != nil && *filter.Status == domain.StatusPending
	})).Return([]*domain.Booking{booking(domain.StatusPending)}, nil)

	resp, err := f.svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: bookerID, Status: ptr.Ptr("pending")})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = f.svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: bookerID, Status: ptr.Ptr("nope")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetListingBookings(t *testing.T) {
	f := newFixture()
	f.bookings.On("List", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)

	resp, err := f.svc.GetListingBookings(context.Background(), &models.GetListingBookingsRequest{UserID: hostID, ListingID: 1})
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)

	_, err = f.svc.GetListingBookings(context.Background(), &models.GetListingBookingsRequest{UserID: bookerID, ListingID: 1})
	assert.ErrorIs(t, err, ErrAccessDenied)

	f.listings.On("GetByID", mock.Anything, int64(2)).Return(nil, listingRepo.ErrListingNotFound)
	_, err = f.svc.GetListingBookings(context.Background(), &models.GetListingBookingsRequest{UserID: hostID, ListingID: 2})
	assert.ErrorIs(t, err, ErrListingNotFound)
}
