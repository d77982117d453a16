package update_booking

import (
	"context"
	"fmt"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
	lawyerClient "github.com/lexgrid/LSM-BookingService/internal/integrations/lawyerservice"
	"github.com/lexgrid/LSM-BookingService/internal/slotrules"
	"github.com/lexgrid/LSM-BookingService/pkg/types"
)

// UseCase use case для переноса времени оплаченного бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	lawyerClient LawyerServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	lawyerClient LawyerServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		lawyerClient: lawyerClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case переноса времени бронирования
// Новый выбор не может быть длиннее оплаченного: лимит слотов
// равен количеству слотов в исходном бронировании
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: user=%d, booking=%d, date=%s, slots=%v",
		req.UserID, req.BookingID, req.Date.Format(domain.DateFormat), req.SlotIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("UpdateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем бронирование и проверяем права
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		uc.logger.Warn("UpdateBooking: booking id=%d not found: %v", req.BookingID, err)
		return nil, ErrBookingNotFound
	}

	if booking.UserID != req.UserID {
		uc.logger.Warn("UpdateBooking: user=%d is not the owner of booking=%d",
			req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	// 4. Переносятся только оплаченные бронирования
	if !booking.CanBeRescheduled() {
		uc.logger.Warn("UpdateBooking: booking=%d has status %s, cannot reschedule",
			req.BookingID, booking.Status)
		return nil, ErrCannotReschedule
	}

	// 5. Лимит слотов - оплаченное количество
	maxCount := booking.SlotCount()
	if len(req.SlotIDs) > maxCount {
		uc.logger.Warn("UpdateBooking: selection of %d slots exceeds paid count %d for booking=%d",
			len(req.SlotIDs), maxCount, req.BookingID)
		return nil, ErrSlotLimitExceeded
	}

	// 6. Получаем каталог свободных слотов и проверяем выбор
	freeSlots, err := uc.lawyerClient.GetFreeSlots(ctx, booking.LawyerID, req.Date.Format(domain.DateFormat))
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to get free slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get free slots: %v", ErrInternal, err)
	}

	catalog := slotrules.Normalize(toCatalog(freeSlots))

	resolved, missing := slotrules.Resolve(catalog, req.SlotIDs)
	if len(missing) > 0 {
		uc.logger.Warn("UpdateBooking: selection references unknown slot ids %v for lawyer=%d",
			missing, booking.LawyerID)
		return nil, ErrSlotsNotInCatalog
	}

	if !slotrules.IsConsecutive(catalog, req.SlotIDs) {
		uc.logger.Warn("UpdateBooking: selection %v is not consecutive", req.SlotIDs)
		return nil, ErrSelectionNotConsecutive
	}

	// 7. Границы новой цепочки
	chain := slotrules.Normalize(resolved)
	startTime := chain[0].StartTime
	endTime := chain[len(chain)-1].EndTime

	// 8. Проверка занятости и обновление в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		filter := domain.LawyerBookingsFilter{
			LawyerID:        booking.LawyerID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		commitments, err := uc.bookingRepo.GetByLawyerWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// Само переносимое бронирование конфликтом не считается
		others := excludeBooking(commitments, booking.ID)

		if slotrules.HasConflict(others, req.Date, startTime, endTime) {
			uc.logger.Warn("UpdateBooking: time %s-%s already taken for lawyer=%d on %s",
				startTime, endTime, booking.LawyerID, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		if err := uc.bookingRepo.UpdateSlots(txCtx, booking.ID, req.Date, startTime, endTime, req.SlotIDs); err != nil {
			uc.logger.Error("UpdateBooking: failed to update slots: %v", err)
			return fmt.Errorf("%w: failed to update slots: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: booking=%d moved to %s %s-%s (%d slots)",
		booking.ID, req.Date.Format(domain.DateFormat), startTime, endTime, len(req.SlotIDs))

	return &Response{
		BookingID:     booking.ID,
		ReferenceCode: booking.ReferenceCode,
		Status:        string(booking.Status),
		Date:          req.Date,
		StartTime:     startTime,
		EndTime:       endTime,
		SlotCount:     len(req.SlotIDs),
	}, nil
}

// toCatalog конвертирует слоты LawyerService в domain-модель
func toCatalog(freeSlots []lawyerClient.FreeSlot) []domain.Slot {
	catalog := make([]domain.Slot, len(freeSlots))
	for i, s := range freeSlots {
		catalog[i] = domain.Slot{
			ID:        s.ID,
			StartTime: types.TimeString(s.StartTime),
			EndTime:   types.TimeString(s.EndTime),
		}
	}
	return catalog
}

// excludeBooking убирает бронирование с заданным ID из списка
func excludeBooking(bookings []*domain.Booking, id int64) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ID != id {
			result = append(result, b)
		}
	}
	return result
}
