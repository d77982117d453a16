package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
	lawyerClient "github.com/lexgrid/LSM-BookingService/internal/integrations/lawyerservice"
	"github.com/lexgrid/LSM-BookingService/internal/slotrules"
	"github.com/lexgrid/LSM-BookingService/pkg/types"
)

// Service сервис расписания юриста: каталог смен и проверка конфликтов
// при планировании смен и выходных
type Service struct {
	bookingRepo  BookingRepository
	lawyerClient LawyerServiceClient
	shiftCache   ShiftCache
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	bookingRepo BookingRepository,
	lawyerClient LawyerServiceClient,
	shiftCache ShiftCache,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		lawyerClient: lawyerClient,
		shiftCache:   shiftCache,
		logger:       logger,
	}
}

// GetShifts возвращает каталог смен юриста за период
// Каталог идёт через кеш: загрузка из LawyerService только при отсутствии записи
func (s *Service) GetShifts(ctx context.Context, lawyerID, userID int64, from, to string) (*ShiftsResponse, error) {
	s.logger.Info("GetShifts: lawyer=%d, period=%s..%s, user=%d", lawyerID, from, to, userID)

	if err := s.checkLawyerAccess(ctx, lawyerID, userID); err != nil {
		return nil, err
	}

	shifts, err := s.shiftCache.FetchIfEmpty(ctx, lawyerID, from, to, s.loadShifts)
	if err != nil {
		if errors.Is(err, lawyerClient.ErrServiceDegraded) {
			s.logger.Warn("GetShifts: shift catalog unavailable for lawyer=%d: %v", lawyerID, err)
			return nil, ErrScheduleUnavailable
		}
		s.logger.Error("GetShifts: failed to load shifts for lawyer=%d: %v", lawyerID, err)
		return nil, fmt.Errorf("%w: failed to load shifts: %v", ErrInternal, err)
	}

	return &ShiftsResponse{LawyerID: lawyerID, Shifts: shifts}, nil
}

// CheckConflict проверяет, пересекается ли планируемая смена или выходной
// с активными бронированиями юриста на эту дату
func (s *Service) CheckConflict(ctx context.Context, req *CheckConflictRequest) (*CheckConflictResponse, error) {
	s.logger.Info("CheckConflict: lawyer=%d, date=%s, range=%s-%s",
		req.LawyerID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	if err := validateCheckConflictRequest(req); err != nil {
		s.logger.Warn("CheckConflict: validation failed: %v", err)
		return nil, err
	}

	if err := s.checkLawyerAccess(ctx, req.LawyerID, req.UserID); err != nil {
		return nil, err
	}

	filter := domain.LawyerBookingsFilter{
		LawyerID:        req.LawyerID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	commitments, err := s.bookingRepo.GetByLawyerWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("CheckConflict: failed to get bookings for lawyer=%d: %v", req.LawyerID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	hasConflict := slotrules.HasConflict(commitments, req.Date, req.StartTime, req.EndTime)

	s.logger.Info("CheckConflict: lawyer=%d, date=%s, conflict=%t (%d commitments checked)",
		req.LawyerID, req.Date.Format(domain.DateFormat), hasConflict, len(commitments))

	return &CheckConflictResponse{
		HasConflict:        hasConflict,
		CommitmentsChecked: len(commitments),
	}, nil
}

// InvalidateShifts сбрасывает кеш каталога смен юриста
// Вызывается после подтверждённого изменения расписания в LawyerService
func (s *Service) InvalidateShifts(lawyerID int64) {
	s.shiftCache.Invalidate(lawyerID)
	s.logger.Info("InvalidateShifts: cache invalidated for lawyer=%d", lawyerID)
}

// loadShifts загрузчик каталога смен для кеша
func (s *Service) loadShifts(ctx context.Context, lawyerID int64, from, to string) ([]domain.Shift, error) {
	raw, err := s.lawyerClient.GetShiftsWithGracefulDegradation(ctx, lawyerID, from, to)
	if err != nil {
		return nil, err
	}

	shifts := make([]domain.Shift, 0, len(raw))
	for _, r := range raw {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			// Смена с некорректной датой исключается из каталога
			s.logger.Warn("loadShifts: skipping shift id=%d with invalid date %q", r.ID, r.Date)
			continue
		}

		shifts = append(shifts, domain.Shift{
			ID:        r.ID,
			LawyerID:  r.LawyerID,
			Date:      date,
			StartTime: types.TimeString(r.StartTime),
			EndTime:   types.TimeString(r.EndTime),
			Kind:      domain.ShiftKind(r.Kind),
		})
	}

	return shifts, nil
}

// checkLawyerAccess проверяет, что пользователь управляет расписанием юриста
func (s *Service) checkLawyerAccess(ctx context.Context, lawyerID, userID int64) error {
	lawyer, err := s.lawyerClient.GetLawyer(ctx, lawyerID)
	if err != nil {
		if errors.Is(err, lawyerClient.ErrLawyerNotFound) {
			s.logger.Warn("checkLawyerAccess: lawyer id=%d not found", lawyerID)
			return ErrLawyerNotFound
		}
		s.logger.Error("checkLawyerAccess: failed to get lawyer id=%d: %v", lawyerID, err)
		return fmt.Errorf("%w: checkLawyerAccess - failed to get lawyer: %v", ErrInternal, err)
	}

	if lawyer.AccountID != userID {
		s.logger.Warn("checkLawyerAccess: user=%d does not manage lawyer=%d", userID, lawyerID)
		return ErrAccessDenied
	}

	return nil
}

func validateCheckConflictRequest(req *CheckConflictRequest) error {
	if req.LawyerID <= 0 {
		return fmt.Errorf("%w: lawyerID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !req.StartTime.IsValid() || !req.EndTime.IsValid() {
		return fmt.Errorf("%w: startTime and endTime must be HH:MM:SS", ErrInvalidInput)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	return nil
}
