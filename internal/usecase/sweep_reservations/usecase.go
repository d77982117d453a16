package sweep_reservations

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lexgrid/LSM-BookingService/internal/slotrules"
)

// cancelReason причина отмены, записываемая в просроченный резерв
const cancelReason = "reservation expired"

// UseCase use case чистки просроченных неоплаченных резервов
type UseCase struct {
	bookingRepo   BookingRepository
	cancelTimeout time.Duration
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, cancelTimeout time.Duration, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		cancelTimeout: cancelTimeout,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет чистку: разделяет резервы пользователя на актуальные
// и просроченные, отменяет просроченные по принципу best-effort.
// Неудачные отмены считаются, но не блокируют ответ и не повторяются:
// резерв останется до следующей чистки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SweepReservations: user=%d", req.UserID)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	// 1. Все неоплаченные резервы пользователя
	pending, err := uc.bookingRepo.GetPendingByUserID(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("SweepReservations: failed to get pending bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get pending bookings: %v", ErrInternal, err)
	}

	// 2. Разделяем по дате: резерв на сегодня уже считается просроченным
	valid, expired := slotrules.PartitionExpired(pending, uc.timeProvider.Now())

	if len(expired) == 0 {
		return &Response{Valid: valid}, nil
	}

	uc.logger.Info("SweepReservations: user=%d has %d expired of %d pending",
		req.UserID, len(expired), len(pending))

	// 3. Отменяем просроченные параллельно, каждую со своим таймаутом
	var cancelled, failed int64
	var wg sync.WaitGroup

	for _, r := range expired {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()

			cancelCtx, cancel := context.WithTimeout(ctx, uc.cancelTimeout)
			defer cancel()

			if err := uc.bookingRepo.Cancel(cancelCtx, id, cancelReason); err != nil {
				uc.logger.Warn("SweepReservations: failed to cancel booking=%d: %v", id, err)
				atomic.AddInt64(&failed, 1)
				return
			}
			atomic.AddInt64(&cancelled, 1)
		}(r.ID)
	}

	wg.Wait()

	report := Report{
		Expired:   len(expired),
		Cancelled: int(atomic.LoadInt64(&cancelled)),
		Failed:    int(atomic.LoadInt64(&failed)),
	}

	uc.logger.Info("SweepReservations: user=%d expired=%d cancelled=%d failed=%d",
		req.UserID, report.Expired, report.Cancelled, report.Failed)

	return &Response{Valid: valid, Report: report}, nil
}
