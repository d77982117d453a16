package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
	"github.com/lexgrid/LSM-BookingService/internal/integrations/lawyerservice"
	"github.com/lexgrid/LSM-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	booking     *domain.Booking
	getErr      error
	commitments []*domain.Booking
	listErr     error
	updateErr   error

	updatedID    int64
	updatedStart types.TimeString
	updatedEnd   types.TimeString
	updatedSlots []string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByLawyerWithFilter(_ context.Context, _ domain.LawyerBookingsFilter) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.commitments, nil
}

func (f *fakeBookingRepo) UpdateSlots(_ context.Context, id int64, _ time.Time, startTime, endTime types.TimeString, slotIDs []string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	f.updatedStart = startTime
	f.updatedEnd = endTime
	f.updatedSlots = slotIDs
	return nil
}

type fakeLawyerClient struct {
	slots    []lawyerservice.FreeSlot
	slotsErr error
}

func (f *fakeLawyerClient) GetFreeSlots(_ context.Context, _ int64, _ string) ([]lawyerservice.FreeSlot, error) {
	return f.slots, f.slotsErr
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func paidBooking() *domain.Booking {
	return &domain.Booking{
		ID:            7,
		ReferenceCode: "ref-7",
		UserID:        1,
		LawyerID:      10,
		ServiceID:     100,
		BookingDate:   testNow.AddDate(0, 0, 1),
		StartTime:     types.TimeString("10:00:00"),
		EndTime:       types.TimeString("12:00:00"),
		SlotIDs:       []string{"s1", "s2"},
		Status:        domain.StatusPaid,
	}
}

func afternoonSlots() []lawyerservice.FreeSlot {
	return []lawyerservice.FreeSlot{
		{ID: "a1", StartTime: "14:00:00", EndTime: "15:00:00"},
		{ID: "a2", StartTime: "15:00:00", EndTime: "16:00:00"},
		{ID: "a3", StartTime: "16:00:00", EndTime: "17:00:00"},
	}
}

func validRequest() *Request {
	return &Request{
		UserID:    1,
		BookingID: 7,
		Date:      testNow.AddDate(0, 0, 2),
		SlotIDs:   []string{"a1", "a2"},
	}
}

func newTestUseCase(repo *fakeBookingRepo, client *fakeLawyerClient) *UseCase {
	uc := NewUseCase(repo, client, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{booking: paidBooking()}
	uc := newTestUseCase(repo, &fakeLawyerClient{slots: afternoonSlots()})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.BookingID)
	assert.Equal(t, types.TimeString("14:00:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("16:00:00"), resp.EndTime)
	assert.Equal(t, 2, resp.SlotCount)

	assert.Equal(t, int64(7), repo.updatedID)
	assert.Equal(t, []string{"a1", "a2"}, repo.updatedSlots)
}

func TestExecute_ShorterSelectionAllowed(t *testing.T) {
	repo := &fakeBookingRepo{booking: paidBooking()}
	uc := newTestUseCase(repo, &fakeLawyerClient{slots: afternoonSlots()})

	req := validRequest()
	req.SlotIDs = []string{"a2"}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SlotCount)
}

func TestExecute_SlotLimitExceeded(t *testing.T) {
	repo := &fakeBookingRepo{booking: paidBooking()}
	uc := newTestUseCase(repo, &fakeLawyerClient{slots: afternoonSlots()})

	// Оплачено два слота, выбрано три
	req := validRequest()
	req.SlotIDs = []string{"a1", "a2", "a3"}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotLimitExceeded)
}

func TestExecute_OnlyPaidCanBeRescheduled(t *testing.T) {
	tests := []struct {
		name   string
		status domain.BookingStatus
	}{
		{"pending", domain.StatusPending},
		{"completed", domain.StatusCompleted},
		{"cancelled", domain.StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := paidBooking()
			booking.Status = tt.status
			repo := &fakeBookingRepo{booking: booking}
			uc := newTestUseCase(repo, &fakeLawyerClient{slots: afternoonSlots()})

			_, err := uc.Execute(context.Background(), validRequest())
			assert.ErrorIs(t, err, ErrCannotReschedule)
		})
	}
}

func TestExecute_NotOwner(t *testing.T) {
	repo := &fakeBookingRepo{booking: paidBooking()}
	uc := newTestUseCase(repo, &fakeLawyerClient{slots: afternoonSlots()})

	req := validRequest()
	req.UserID = 2

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_OwnBookingIsNotConflict(t *testing.T) {
	booking := paidBooking()
	req := validRequest()
	req.Date = booking.BookingDate
	req.SlotIDs = []string{"a1", "a2"}

	// Единственное пересечение - само переносимое бронирование
	own := *booking
	own.StartTime = types.TimeString("14:30:00")
	own.EndTime = types.TimeString("15:30:00")

	repo := &fakeBookingRepo{
		booking:     booking,
		commitments: []*domain.Booking{&own},
	}
	uc := newTestUseCase(repo, &fakeLawyerClient{slots: afternoonSlots()})

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ConflictWithOtherBooking(t *testing.T) {
	req := validRequest()
	other := &domain.Booking{
		ID:          99,
		LawyerID:    10,
		BookingDate: req.Date,
		StartTime:   types.TimeString("15:30:00"),
		EndTime:     types.TimeString("16:30:00"),
		Status:      domain.StatusPending,
	}
	repo := &fakeBookingRepo{
		booking:     paidBooking(),
		commitments: []*domain.Booking{other},
	}
	uc := newTestUseCase(repo, &fakeLawyerClient{slots: afternoonSlots()})

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, repo.updatedID)
}

func TestExecute_StaleSelection(t *testing.T) {
	repo := &fakeBookingRepo{booking: paidBooking()}
	uc := newTestUseCase(repo, &fakeLawyerClient{slots: afternoonSlots()})

	req := validRequest()
	req.SlotIDs = []string{"a1", "gone"}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotsNotInCatalog)
}

func TestExecute_NonConsecutiveSelection(t *testing.T) {
	repo := &fakeBookingRepo{booking: paidBooking()}
	uc := newTestUseCase(repo, &fakeLawyerClient{slots: afternoonSlots()})

	req := validRequest()
	req.SlotIDs = []string{"a1", "a3"}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSelectionNotConsecutive)
}

// Дата "сегодня", разобранная в UTC, не отклоняется, даже если серверное
// время находится в поясе западнее UTC
func TestValidateDate_MixedLocations(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 10, 20, 0, 0, 0, time.FixedZone("UTC-7", -7*3600))

	assert.NoError(t, validateDate(date, now))
	assert.ErrorIs(t, validateDate(date.AddDate(0, 0, -1), now), ErrInvalidDate)
}
