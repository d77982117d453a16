package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
	lawyerClient "github.com/lexgrid/LSM-BookingService/internal/integrations/lawyerservice"
	"github.com/lexgrid/LSM-BookingService/internal/slotrules"
	"github.com/lexgrid/LSM-BookingService/pkg/types"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования
// Проверка занятости и вставка идут в сериализуемой транзакции,
// чтобы исключить гонку за одно и то же время
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, lawyer=%d, service=%d, date=%s, slots=%v",
		req.UserID, req.LawyerID, req.ServiceID, req.Date.Format(domain.DateFormat), req.SlotIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем юриста
	lawyer, err := uc.lawyerClient.GetLawyer(ctx, req.LawyerID)
	if err != nil {
		if errors.Is(err, lawyerClient.ErrLawyerNotFound) {
			uc.logger.Warn("CreateBooking: lawyer id=%d not found", req.LawyerID)
			return nil, ErrLawyerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get lawyer id=%d: %v", req.LawyerID, err)
		return nil, fmt.Errorf("%w: failed to get lawyer: %v", ErrInternal, err)
	}

	if !lawyer.IsActive {
		uc.logger.Warn("CreateBooking: lawyer id=%d is inactive", req.LawyerID)
		return nil, ErrLawyerInactive
	}

	// 4. Получаем услугу и проверяем принадлежность юристу
	service, err := uc.lawyerClient.GetService(ctx, req.LawyerID, req.ServiceID)
	if err != nil {
		if errors.Is(err, lawyerClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if err := validateServiceProvided(service, req.LawyerID); err != nil {
		uc.logger.Warn("CreateBooking: service id=%d not provided by lawyer id=%d",
			req.ServiceID, req.LawyerID)
		return nil, err
	}

	// 5. Получаем каталог свободных слотов и проверяем выбор
	freeSlots, err := uc.lawyerClient.GetFreeSlots(ctx, req.LawyerID, req.Date.Format(domain.DateFormat))
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get free slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get free slots: %v", ErrInternal, err)
	}

	catalog := slotrules.Normalize(toCatalog(freeSlots))

	resolved, missing := slotrules.Resolve(catalog, req.SlotIDs)
	if len(missing) > 0 {
		uc.logger.Warn("CreateBooking: selection references unknown slot ids %v for lawyer=%d",
			missing, req.LawyerID)
		return nil, ErrSlotsNotInCatalog
	}

	if !slotrules.IsConsecutive(catalog, req.SlotIDs) {
		uc.logger.Warn("CreateBooking: selection %v is not consecutive", req.SlotIDs)
		return nil, ErrSelectionNotConsecutive
	}

	// 6. Границы цепочки: от начала первого слота до конца последнего
	chain := slotrules.Normalize(resolved)
	startTime := chain[0].StartTime
	endTime := chain[len(chain)-1].EndTime

	// Переменная для хранения результата
	var result *domain.Booking

	// 7. Проверка занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Активные бронирования дня с блокировкой (FOR UPDATE)
		filter := domain.LawyerBookingsFilter{
			LawyerID:        req.LawyerID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		commitments, err := uc.bookingRepo.GetByLawyerWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.2. Конфликт с существующим бронированием
		if slotrules.HasConflict(commitments, req.Date, startTime, endTime) {
			uc.logger.Warn("CreateBooking: time %s-%s already taken for lawyer=%d on %s",
				startTime, endTime, req.LawyerID, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 7.3. Создаем неоплаченный резерв с денормализацией данных услуги
		booking := &domain.Booking{
			ReferenceCode: uuid.NewString(),
			UserID:        req.UserID,
			LawyerID:      req.LawyerID,
			ServiceID:     req.ServiceID,
			BookingDate:   req.Date,
			StartTime:     startTime,
			EndTime:       endTime,
			SlotIDs:       req.SlotIDs,
			Status:        domain.StatusPending,
			ServiceName:   service.Name,
			ServicePrice:  service.Price,
			LawyerName:    &lawyer.FullName,
			Notes:         req.Notes,
		}

		result, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d ref=%s for user=%d (%s %s-%s)",
		result.ID, result.ReferenceCode, req.UserID,
		req.Date.Format(domain.DateFormat), startTime, endTime)

	return &Response{
		BookingID:     result.ID,
		ReferenceCode: result.ReferenceCode,
		Status:        string(result.Status),
		Date:          result.BookingDate,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		ServiceName:   result.ServiceName,
		ServicePrice:  result.ServicePrice,
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
