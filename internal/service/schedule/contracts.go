package schedule

import (
	"context"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
	"github.com/lexgrid/LSM-BookingService/internal/infra/cache/shifts"
	"github.com/lexgrid/LSM-BookingService/internal/integrations/lawyerservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByLawyerWithFilter(ctx context.Context, filter domain.LawyerBookingsFilter) ([]*domain.Booking, error)
}

// LawyerServiceClient интерфейс клиента для LawyerService
type LawyerServiceClient interface {
	GetLawyer(ctx context.Context, lawyerID int64) (*lawyerservice.Lawyer, error)
	GetShiftsWithGracefulDegradation(ctx context.Context, lawyerID int64, from, to string) ([]lawyerservice.Shift, error)
}

// ShiftCache кеш каталога смен с политикой fetch-if-empty
type ShiftCache interface {
	FetchIfEmpty(ctx context.Context, lawyerID int64, from, to string, load shifts.Loader) ([]domain.Shift, error)
	Invalidate(lawyerID int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
