package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
	bookingRepo "github.com/lexgrid/LSM-BookingService/internal/infra/storage/booking"
	"github.com/lexgrid/LSM-BookingService/internal/integrations/lawyerservice"
	"github.com/lexgrid/LSM-BookingService/internal/service/bookings/models"
	"github.com/lexgrid/LSM-BookingService/pkg/ptr"
	"github.com/lexgrid/LSM-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	booking      *domain.Booking
	getErr       error
	userBookings []*domain.Booking
	lastStatus   *domain.BookingStatus
	cancelErr    error
	cancelledID  int64
	cancelReason string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.lastStatus = status
	return f.userBookings, nil
}

func (f *fakeBookingRepo) GetByLawyerWithFilter(_ context.Context, _ domain.LawyerBookingsFilter) ([]*domain.Booking, error) {
	return f.userBookings, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelledID = id
	f.cancelReason = reason
	return nil
}

type fakeLawyerClient struct {
	lawyer    *lawyerservice.Lawyer
	lawyerErr error
}

func (f *fakeLawyerClient) GetLawyer(_ context.Context, _ int64) (*lawyerservice.Lawyer, error) {
	return f.lawyer, f.lawyerErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func someBooking() *domain.Booking {
	return &domain.Booking{
		ID:          7,
		UserID:      1,
		LawyerID:    10,
		BookingDate: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("10:00:00"),
		EndTime:     types.TimeString("11:00:00"),
		Status:      domain.StatusPaid,
	}
}

func lawyerAccount(accountID int64) *fakeLawyerClient {
	return &fakeLawyerClient{
		lawyer: &lawyerservice.Lawyer{ID: 10, AccountID: accountID, IsActive: true},
	}
}

func TestGetByID_Owner(t *testing.T) {
	svc := NewService(&fakeBookingRepo{booking: someBooking()}, lawyerAccount(99), nopLogger{})

	resp, err := svc.GetByID(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
}

func TestGetByID_LawyerAccount(t *testing.T) {
	// Пользователь 50 управляет расписанием юриста 10
	svc := NewService(&fakeBookingRepo{booking: someBooking()}, lawyerAccount(50), nopLogger{})

	_, err := svc.GetByID(context.Background(), 7, 50)
	assert.NoError(t, err)
}

func TestGetByID_Stranger(t *testing.T) {
	svc := NewService(&fakeBookingRepo{booking: someBooking()}, lawyerAccount(99), nopLogger{})

	_, err := svc.GetByID(context.Background(), 7, 2)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, lawyerAccount(99), nopLogger{})

	_, err := svc.GetByID(context.Background(), 7, 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_StatusFilter(t *testing.T) {
	repo := &fakeBookingRepo{userBookings: []*domain.Booking{someBooking()}}
	svc := NewService(repo, lawyerAccount(99), nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 1,
		Status: ptr.Ptr("paid"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.NotNil(t, repo.lastStatus)
	assert.Equal(t, domain.StatusPaid, *repo.lastStatus)
}

func TestGetUserBookings_UnknownStatus(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, lawyerAccount(99), nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 1,
		Status: ptr.Ptr("archived"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetLawyerBookings_AccessDenied(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, lawyerAccount(99), nopLogger{})

	_, err := svc.GetLawyerBookings(context.Background(), &models.GetLawyerBookingsRequest{
		LawyerID: 10,
		UserID:   1,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetLawyerBookings_ManagedAccount(t *testing.T) {
	repo := &fakeBookingRepo{userBookings: []*domain.Booking{someBooking()}}
	svc := NewService(repo, lawyerAccount(50), nopLogger{})

	resp, err := svc.GetLawyerBookings(context.Background(), &models.GetLawyerBookingsRequest{
		LawyerID: 10,
		UserID:   50,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestCancel_Owner(t *testing.T) {
	repo := &fakeBookingRepo{booking: someBooking()}
	svc := NewService(repo, lawyerAccount(99), nopLogger{})

	err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{
		UserID:             1,
		CancellationReason: "передумал",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.cancelledID)
	assert.Equal(t, "передумал", repo.cancelReason)
}

func TestCancel_NotOwner(t *testing.T) {
	repo := &fakeBookingRepo{booking: someBooking()}
	svc := NewService(repo, lawyerAccount(99), nopLogger{})

	err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{UserID: 2})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.cancelledID)
}

func TestCancel_FinishedBooking(t *testing.T) {
	tests := []struct {
		name   string
		status domain.BookingStatus
	}{
		{"completed", domain.StatusCompleted},
		{"cancelled", domain.StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := someBooking()
			booking.Status = tt.status
			repo := &fakeBookingRepo{booking: booking}
			svc := NewService(repo, lawyerAccount(99), nopLogger{})

			err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{UserID: 1})
			assert.ErrorIs(t, err, ErrCannotCancel)
		})
	}
}

func TestCancel_RepositoryFailure(t *testing.T) {
	repo := &fakeBookingRepo{booking: someBooking(), cancelErr: errors.New("connection refused")}
	svc := NewService(repo, lawyerAccount(99), nopLogger{})

	err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{UserID: 1})
	assert.ErrorIs(t, err, ErrInternal)
}
