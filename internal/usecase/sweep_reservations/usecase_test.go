package sweep_reservations

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
)

type fakeBookingRepo struct {
	mu        sync.Mutex
	pending   []*domain.Booking
	listErr   error
	failIDs   map[int64]bool
	cancelled []int64
}

func (f *fakeBookingRepo) GetPendingByUserID(_ context.Context, _ int64) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.pending, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIDs[id] {
		return errors.New("payment hold release failed")
	}
	f.cancelled = append(f.cancelled, id)
	return nil
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

func reservation(id int64, daysFromNow int) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		UserID:      1,
		LawyerID:    10,
		BookingDate: testNow.AddDate(0, 0, daysFromNow),
		Status:      domain.StatusPending,
	}
}

func newTestUseCase(repo *fakeBookingRepo) *UseCase {
	uc := NewUseCase(repo, time.Second, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_PartitionsAndCancels(t *testing.T) {
	repo := &fakeBookingRepo{
		pending: []*domain.Booking{
			reservation(1, -3), // просрочен
			reservation(2, 0),  // сегодня - тоже просрочен
			reservation(3, 1),  // актуален
			reservation(4, 5),  // актуален
		},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1})
	require.NoError(t, err)

	assert.Equal(t, Report{Expired: 2, Cancelled: 2, Failed: 0}, resp.Report)
	require.Len(t, resp.Valid, 2)
	assert.Equal(t, int64(3), resp.Valid[0].ID)
	assert.Equal(t, int64(4), resp.Valid[1].ID)
	assert.ElementsMatch(t, []int64{1, 2}, repo.cancelled)
}

func TestExecute_FailuresCountedNotPropagated(t *testing.T) {
	repo := &fakeBookingRepo{
		pending: []*domain.Booking{
			reservation(1, -1),
			reservation(2, -1),
			reservation(3, 2),
		},
		failIDs: map[int64]bool{2: true},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1})
	require.NoError(t, err)

	assert.Equal(t, Report{Expired: 2, Cancelled: 1, Failed: 1}, resp.Report)
	assert.Len(t, resp.Valid, 1)
}

func TestExecute_NothingExpired(t *testing.T) {
	repo := &fakeBookingRepo{
		pending: []*domain.Booking{reservation(1, 1), reservation(2, 2)},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1})
	require.NoError(t, err)

	assert.Equal(t, Report{}, resp.Report)
	assert.Len(t, resp.Valid, 2)
	assert.Empty(t, repo.cancelled)
}

func TestExecute_NoPendingReservations(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Valid)
	assert.Equal(t, Report{}, resp.Report)
}

func TestExecute_InvalidUser(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	repo := &fakeBookingRepo{listErr: errors.New("connection refused")}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{UserID: 1})
	assert.ErrorIs(t, err, ErrInternal)
}
