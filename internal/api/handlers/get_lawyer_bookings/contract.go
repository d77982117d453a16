package get_lawyer_bookings

import (
	"context"

	"github.com/lexgrid/LSM-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetLawyerBookings(ctx context.Context, req *models.GetLawyerBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
