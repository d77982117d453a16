package get_available_slots

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
	commitments []*domain.Booking
	listErr     error
}

func (f *fakeBookingRepo) GetByLawyerWithFilter(_ context.Context, _ domain.LawyerBookingsFilter) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.commitments, nil
}

type fakeLawyerClient struct {
	lawyer     *lawyerservice.Lawyer
	lawyerErr  error
	service    *lawyerservice.Service
	serviceErr error
	slots      []lawyerservice.FreeSlot
	slotsErr   error
}

func (f *fakeLawyerClient) GetLawyer(_ context.Context, _ int64) (*lawyerservice.Lawyer, error) {
	return f.lawyer, f.lawyerErr
}

func (f *fakeLawyerClient) GetService(_ context.Context, _, _ int64) (*lawyerservice.Service, error) {
	return f.service, f.serviceErr
}

func (f *fakeLawyerClient) GetFreeSlots(_ context.Context, _ int64, _ string) ([]lawyerservice.FreeSlot, error) {
	return f.slots, f.slotsErr
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

func dayCatalog() []lawyerservice.FreeSlot {
	return []lawyerservice.FreeSlot{
		{ID: "s1", StartTime: "09:00:00", EndTime: "10:00:00"},
		{ID: "s2", StartTime: "10:00:00", EndTime: "11:00:00"},
		{ID: "s3", StartTime: "11:00:00", EndTime: "12:00:00"},
		{ID: "s4", StartTime: "14:00:00", EndTime: "15:00:00"},
	}
}

func activeClient() *fakeLawyerClient {
	return &fakeLawyerClient{
		lawyer:  &lawyerservice.Lawyer{ID: 10, FullName: "Анна Смирнова", IsActive: true},
		service: &lawyerservice.Service{ID: 100, Name: "Консультация", Price: 3000, LawyerID: 10},
		slots:   dayCatalog(),
	}
}

func validRequest() *Request {
	return &Request{
		UserID:    1,
		LawyerID:  10,
		ServiceID: 100,
		Date:      testNow.AddDate(0, 0, 1),
	}
}

func newTestUseCase(repo *fakeBookingRepo, client *fakeLawyerClient) *UseCase {
	uc := NewUseCase(repo, client, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func slotByID(t *testing.T, slots []Slot, id string) Slot {
	t.Helper()
	for _, s := range slots {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("slot %s not in response", id)
	return Slot{}
}

func TestExecute_EmptySelectionAllFreeSelectable(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, activeClient())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)

	for _, s := range resp.Slots {
		assert.True(t, s.Available, "slot %s", s.ID)
		assert.True(t, s.Selectable, "slot %s", s.ID)
	}
}

func TestExecute_SelectionConstrainsNeighbours(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, activeClient())

	req := validRequest()
	req.SelectedIDs = []string{"s2"}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Рядом с выбранным s2 можно только s1 и s3, s4 оторван
	assert.True(t, slotByID(t, resp.Slots, "s1").Selectable)
	assert.True(t, slotByID(t, resp.Slots, "s3").Selectable)
	assert.False(t, slotByID(t, resp.Slots, "s4").Selectable)
	assert.True(t, slotByID(t, resp.Slots, "s4").Available)
}

func TestExecute_BookedTimeNotAvailable(t *testing.T) {
	req := validRequest()
	repo := &fakeBookingRepo{
		commitments: []*domain.Booking{
			{
				LawyerID:    10,
				BookingDate: req.Date,
				StartTime:   types.TimeString("10:00:00"),
				EndTime:     types.TimeString("11:00:00"),
				Status:      domain.StatusPaid,
			},
		},
	}
	uc := newTestUseCase(repo, activeClient())

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	s2 := slotByID(t, resp.Slots, "s2")
	assert.False(t, s2.Available)
	assert.False(t, s2.Selectable)

	// Соседние слоты лишь касаются занятого интервала
	assert.True(t, slotByID(t, resp.Slots, "s1").Available)
	assert.True(t, slotByID(t, resp.Slots, "s3").Available)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	req := validRequest()
	repo := &fakeBookingRepo{
		commitments: []*domain.Booking{
			{
				LawyerID:    10,
				BookingDate: req.Date,
				StartTime:   types.TimeString("10:00:00"),
				EndTime:     types.TimeString("11:00:00"),
				Status:      domain.StatusCancelled,
			},
		},
	}
	uc := newTestUseCase(repo, activeClient())

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, slotByID(t, resp.Slots, "s2").Available)
}

func TestExecute_MalformedSlotsDropped(t *testing.T) {
	client := activeClient()
	client.slots = append(client.slots, lawyerservice.FreeSlot{
		ID: "bad", StartTime: "12:00:00", EndTime: "11:00:00",
	})
	uc := newTestUseCase(&fakeBookingRepo{}, client)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 4)
}

func TestExecute_EmptyCatalog(t *testing.T) {
	client := activeClient()
	client.slots = nil
	uc := newTestUseCase(&fakeBookingRepo{}, client)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_StaleSelectionStillReturnsCatalog(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, activeClient())

	req := validRequest()
	req.SelectedIDs = []string{"ghost"}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)

	// Выбор с устаревшим ID не последователен, добавить ничего нельзя
	for _, s := range resp.Slots {
		assert.False(t, s.Selectable, "slot %s", s.ID)
	}
}

func TestExecute_LawyerNotFound(t *testing.T) {
	client := activeClient()
	client.lawyer = nil
	client.lawyerErr = lawyerservice.ErrLawyerNotFound
	uc := newTestUseCase(&fakeBookingRepo{}, client)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrLawyerNotFound)
}

func TestExecute_InactiveLawyer(t *testing.T) {
	client := activeClient()
	client.lawyer.IsActive = false
	uc := newTestUseCase(&fakeBookingRepo{}, client)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrLawyerInactive)
}

func TestExecute_ServiceOfAnotherLawyer(t *testing.T) {
	client := activeClient()
	client.service.LawyerID = 11
	uc := newTestUseCase(&fakeBookingRepo{}, client)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotProvided)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, activeClient())

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

// Дата "сегодня", разобранная в UTC, не отклоняется, даже если серверное
// время находится в поясе западнее UTC
func TestValidateDate_MixedLocations(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 10, 20, 0, 0, 0, time.FixedZone("UTC-7", -7*3600))

	assert.NoError(t, validateDate(date, now))
	assert.ErrorIs(t, validateDate(date.AddDate(0, 0, -1), now), ErrInvalidDate)
}
