package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
	lawyerClient "github.com/lexgrid/LSM-BookingService/internal/integrations/lawyerservice"
	"github.com/lexgrid/LSM-BookingService/internal/slotrules"
	"github.com/lexgrid/LSM-BookingService/pkg/types"
)

// UseCase use case для получения каталога слотов юриста на дату
type UseCase struct {
	bookingRepo  BookingRepository
	lawyerClient LawyerServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	lawyerClient LawyerServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		lawyerClient: lawyerClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, lawyer=%d, service=%d, date=%s",
		req.UserID, req.LawyerID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем юриста
	lawyer, err := uc.lawyerClient.GetLawyer(ctx, req.LawyerID)
	if err != nil {
		if errors.Is(err, lawyerClient.ErrLawyerNotFound) {
			uc.logger.Warn("GetAvailableSlots: lawyer id=%d not found", req.LawyerID)
			return nil, ErrLawyerNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get lawyer id=%d: %v", req.LawyerID, err)
		return nil, fmt.Errorf("%w: failed to get lawyer: %v", ErrInternal, err)
	}

	if !lawyer.IsActive {
		uc.logger.Warn("GetAvailableSlots: lawyer id=%d is inactive", req.LawyerID)
		return nil, ErrLawyerInactive
	}

	// 4. Получаем услугу и проверяем принадлежность юристу
	service, err := uc.lawyerClient.GetService(ctx, req.LawyerID, req.ServiceID)
	if err != nil {
		if errors.Is(err, lawyerClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if err := validateServiceProvided(service, req.LawyerID); err != nil {
		uc.logger.Warn("GetAvailableSlots: service id=%d not provided by lawyer id=%d",
			req.ServiceID, req.LawyerID)
		return nil, err
	}

	// 5. Получаем каталог свободных слотов
	freeSlots, err := uc.lawyerClient.GetFreeSlots(ctx, req.LawyerID, req.Date.Format(domain.DateFormat))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get free slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get free slots: %v", ErrInternal, err)
	}

	// 6. Конвертируем и нормализуем каталог
	// Слоты с некорректным временем отбрасываются
	catalog := toCatalog(freeSlots)
	normalized := slotrules.Normalize(catalog)
	if dropped := len(catalog) - len(normalized); dropped > 0 {
		uc.logger.Warn("GetAvailableSlots: dropped %d malformed slots for lawyer=%d date=%s",
			dropped, req.LawyerID, req.Date.Format(domain.DateFormat))
	}

	// 7. Получаем активные бронирования на эту дату
	filter := domain.LawyerBookingsFilter{
		LawyerID:        req.LawyerID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	commitments, err := uc.bookingRepo.GetByLawyerWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Предупреждаем об устаревшем выборе (каталог обновился под выбором)
	if _, missing := slotrules.Resolve(normalized, req.SelectedIDs); len(missing) > 0 {
		uc.logger.Warn("GetAvailableSlots: selection references %d unknown slot ids for lawyer=%d: %v",
			len(missing), req.LawyerID, missing)
	}

	// 9. Вычисляем доступность и допустимость каждого слота
	slots := buildSlots(normalized, commitments, req)

	uc.logger.Info("GetAvailableSlots: returning %d slots for lawyer=%d, service=%d, date=%s",
		len(slots), req.LawyerID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		LawyerID:  req.LawyerID,
		ServiceID: req.ServiceID,
		Slots:     slots,
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

// buildSlots размечает каждый слот каталога флагами доступности и допустимости
// Available - нет конфликта с активными бронированиями этого сервиса
// Selectable - добавление слота сохраняет последовательность выбора
func buildSlots(catalog []domain.Slot, commitments []*domain.Booking, req *Request) []Slot {
	slots := make([]Slot, len(catalog))

	for i, s := range catalog {
		available := !slotrules.HasConflict(commitments, req.Date, s.StartTime, s.EndTime)
		slots[i] = Slot{
			ID:         s.ID,
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			Available:  available,
			Selectable: available && slotrules.CanSelect(catalog, req.SelectedIDs, s.ID, slotrules.Uncapped),
		}
	}

	return slots
}
