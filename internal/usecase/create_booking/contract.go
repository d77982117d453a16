package create_booking

import (
	"context"
	"time"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
	"github.com/lexgrid/LSM-BookingService/internal/integrations/lawyerservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByLawyerWithFilter внутри транзакции блокирует бронирования дня (FOR UPDATE)
	GetByLawyerWithFilter(ctx context.Context, filter domain.LawyerBookingsFilter) ([]*domain.Booking, error)
}

// LawyerServiceClient интерфейс клиента для LawyerService
type LawyerServiceClient interface {
	GetLawyer(ctx context.Context, lawyerID int64) (*lawyerservice.Lawyer, error)
	GetService(ctx context.Context, lawyerID, serviceID int64) (*lawyerservice.Service, error)
	GetFreeSlots(ctx context.Context, lawyerID int64, date string) ([]lawyerservice.FreeSlot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
