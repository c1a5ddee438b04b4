package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FlexDesk-BookingService/internal/domain"
	listingRepo "github.com/m04kA/FlexDesk-BookingService/internal/infra/storage/listing"
	"github.com/m04kA/FlexDesk-BookingService/internal/service/availability/models"
	"github.com/m04kA/FlexDesk-BookingService/pkg/ptr"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) GetWindows(ctx context.Context, listingID int64) ([]domain.AvailabilityWindow, error) {
	args := m.Called(ctx, listingID)
	w, _ := args.Get(0).([]domain.AvailabilityWindow)
	return w, args.Error(1)
}

func (m *mockRepo) ReplaceWindows(ctx context.Context, listingID int64, windows []domain.AvailabilityWindow) error {
	return m.Called(ctx, listingID, windows).Error(0)
}

func (m *mockRepo) GetBlackouts(ctx context.Context, listingID int64, from, to *time.Time) ([]domain.BlackoutDate, error) {
	args := m.Called(ctx, listingID, from, to)
	b, _ := args.Get(0).([]domain.BlackoutDate)
	return b, args.Error(1)
}

func (m *mockRepo) ReplaceBlackouts(ctx context.Context, listingID int64, blackouts []domain.BlackoutDate) error {
	return m.Called(ctx, listingID, blackouts).Error(0)
}

func (m *mockRepo) GetOverrides(ctx context.Context, deskID int64, date *time.Time) ([]domain.DeskAvailabilityOverride, error) {
	args := m.Called(ctx, deskID, date)
	o, _ := args.Get(0).([]domain.DeskAvailabilityOverride)
	return o, args.Error(1)
}

func (m *mockRepo) ReplaceOverrides(ctx context.Context, deskID int64, overrides []domain.DeskAvailabilityOverride) error {
	return m.Called(ctx, deskID, overrides).Error(0)
}

type fakeListings struct{}

func (fakeListings) GetByID(_ context.Context, id int64) (*domain.Listing, error) {
	if id != 1 {
		return nil, listingRepo.ErrListingNotFound
	}
	return &domain.Listing{ID: 1, OwnerID: 100}, nil
}

func (fakeListings) GetDeskByID(_ context.Context, id int64) (*domain.Desk, error) {
	if id != 11 {
		return nil, listingRepo.ErrDeskNotFound
	}
	return &domain.Desk{ID: 11, ListingID: 1, Label: "Q-1"}, nil
}

// recordingTx помечает, что работа шла внутри транзакции, и откатывает при ошибке
type recordingTx struct {
	calls      int
	rolledBack bool
}

func (r *recordingTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	r.calls++
	if err := fn(ctx); err != nil {
		r.rolledBack = true
		return err
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(repo *mockRepo, tx *recordingTx) *Service {
	return NewService(repo, fakeListings{}, tx, nopLogger{})
}

func TestReplaceWindows(t *testing.T) {
	repo := &mockRepo{}
	tx := &recordingTx{}
	svc := newService(repo, tx)

	repo.On("ReplaceWindows", mock.Anything, int64(1), mock.MatchedBy(func(w []domain.AvailabilityWindow) bool {
		return len(w) == 2 && w[0].StartTime == "09:00" && w[0].AppliesToAllDesks && w[1].IsAllDay && w[1].StartTime == ""
	})).Return(nil)
	repo.On("GetWindows", mock.Anything, int64(1)).Return([]domain.AvailabilityWindow{{ID: 1}, {ID: 2}}, nil)

	resp, err := svc.ReplaceWindows(context.Background(), 1, &models.ReplaceWindowsRequest{
		UserID: 100,
		Windows: []models.Window{
			{DayOfWeek: 3, StartTime: "09:00", EndTime: "18:00"},
			{DayOfWeek: 6, IsAllDay: true},
		},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Windows, 2)
	assert.Equal(t, 1, tx.calls)
}

func TestReplaceWindows_Validation(t *testing.T) {
	svc := newService(&mockRepo{}, &recordingTx{})

	cases := map[string]models.Window{
		"day out of range": {DayOfWeek: 7, StartTime: "09:00", EndTime: "10:00"},
		"bad time":         {DayOfWeek: 1, StartTime: "9am", EndTime: "10:00"},
		"inverted":         {DayOfWeek: 1, StartTime: "18:00", EndTime: "09:00"},
		"bad timezone":     {DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00", Timezone: "Mars/Base"},
	}
	for name, w := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ReplaceWindows(context.Background(), 1, &models.ReplaceWindowsRequest{UserID: 100, Windows: []models.Window{w}})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestReplaceWindows_NotOwner(t *testing.T) {
	svc := newService(&mockRepo{}, &recordingTx{})

	_, err := svc.ReplaceWindows(context.Background(), 1, &models.ReplaceWindowsRequest{UserID: 7})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.ReplaceWindows(context.Background(), 2, &models.ReplaceWindowsRequest{UserID: 100})
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestReplaceWindows_FailureRollsBack(t *testing.T) {
	repo := &mockRepo{}
	tx := &recordingTx{}
	svc := newService(repo, tx)

	repo.On("ReplaceWindows", mock.Anything, int64(1), mock.Anything).Return(errors.New("insert failed"))

	_, err := svc.ReplaceWindows(context.Background(), 1, &models.ReplaceWindowsRequest{
		UserID:  100,
		Windows: []models.Window{{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"}},
	})
	assert.ErrorIs(t, err, ErrInternal)
	assert.True(t, tx.rolledBack)
	repo.AssertNotCalled(t, "GetWindows", mock.Anything, mock.Anything)
}

func TestReplaceBlackouts(t *testing.T) {
	repo := &mockRepo{}
	svc := newService(repo, &recordingTx{})

	repo.On("ReplaceBlackouts", mock.Anything, int64(1), mock.MatchedBy(func(b []domain.BlackoutDate) bool {
		return len(b) == 2 && b[0].IsFullDay() && *b[1].StartTime == "12:00" && *b[1].Reason == "lunch"
	})).Return(nil)
	repo.On("GetBlackouts", mock.Anything, int64(1), (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.BlackoutDate{}, nil)

	_, err := svc.ReplaceBlackouts(context.Background(), 1, &models.ReplaceBlackoutsRequest{
		UserID: 100,
		Blackouts: []models.Blackout{
			{Date: "2026-03-01"},
			{Date: "2026-03-02", StartTime: ptr.Ptr("12:00"), EndTime: ptr.Ptr("13:00"), Reason: ptr.Ptr(" lunch ")},
		},
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestReplaceBlackouts_Validation(t *testing.T) {
	svc := newService(&mockRepo{}, &recordingTx{})

	cases := map[string]models.Blackout{
		"bad date":      {Date: "03/01/2026"},
		"only start":    {Date: "2026-03-01", StartTime: ptr.Ptr("12:00")},
		"inverted":      {Date: "2026-03-01", StartTime: ptr.Ptr("13:00"), EndTime: ptr.Ptr("12:00")},
		"bad end value": {Date: "2026-03-01", StartTime: ptr.Ptr("12:00"), EndTime: ptr.Ptr("noon")},
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ReplaceBlackouts(context.Background(), 1, &models.ReplaceBlackoutsRequest{UserID: 100, Blackouts: []models.Blackout{b}})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestReplaceOverrides(t *testing.T) {
	repo := &mockRepo{}
	svc := newService(repo, &recordingTx{})

	repo.On("ReplaceOverrides", mock.Anything, int64(11), mock.MatchedBy(func(o []domain.DeskAvailabilityOverride) bool {
		return len(o) == 2 && !o[0].Available && o[1].Available
	})).Return(nil)
	repo.On("GetOverrides", mock.Anything, int64(11), (*time.Time)(nil)).Return([]domain.DeskAvailabilityOverride{}, nil)

	_, err := svc.ReplaceOverrides(context.Background(), 11, &models.ReplaceOverridesRequest{
		UserID: 100,
		Overrides: []models.Override{
			{Date: "2026-03-01", Available: ptr.Ptr(false)},
			{Date: "2026-03-02"},
		},
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestReplaceOverrides_Errors(t *testing.T) {
	svc := newService(&mockRepo{}, &recordingTx{})

	_, err := svc.ReplaceOverrides(context.Background(), 11, &models.ReplaceOverridesRequest{
		UserID:    100,
		Overrides: []models.Override{{Date: "2026-03-01"}, {Date: "2026-03-01"}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ReplaceOverrides(context.Background(), 12, &models.ReplaceOverridesRequest{UserID: 100})
	assert.ErrorIs(t, err, ErrDeskNotFound)

	_, err = svc.ReplaceOverrides(context.Background(), 11, &models.ReplaceOverridesRequest{UserID: 7})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetWindows_RawValues(t *testing.T) {
	repo := &mockRepo{}
	svc := newService(repo, &recordingTx{})

	repo.On("GetWindows", mock.Anything, int64(1)).Return([]domain.AvailabilityWindow{
		{ID: 5, DayOfWeek: 2, StartTime: "nine", EndTime: "18:00"},
	}, nil)

	resp, err := svc.GetWindows(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp.Windows, 1)
	assert.Equal(t, "nine", resp.Windows[0].StartTime)
}
