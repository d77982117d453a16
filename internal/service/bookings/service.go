package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
	bookingRepo "github.com/lexgrid/LSM-BookingService/internal/infra/storage/booking"
	lawyerClient "github.com/lexgrid/LSM-BookingService/internal/integrations/lawyerservice"
	"github.com/lexgrid/LSM-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	lawyerClient LawyerServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	lawyerClient LawyerServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		lawyerClient: lawyerClient,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Доступ есть у владельца бронирования и у юриста, чьё время забронировано
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetLawyerBookings получает бронирования юриста за период
// Доступно только аккаунту юриста (кабинет сотрудника): календарь занятости,
// по которому кабинет проверяет конфликты смен и выходных
func (s *Service) GetLawyerBookings(ctx context.Context, req *models.GetLawyerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetLawyerBookings: fetching bookings for lawyer=%d by user=%d", req.LawyerID, req.UserID)

	if err := s.checkLawyerAccess(ctx, req.LawyerID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetLawyerBookings: invalid filter for lawyer=%d: %v", req.LawyerID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByLawyerWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetLawyerBookings: repository error for lawyer=%d: %v", req.LawyerID, err)
		return nil, fmt.Errorf("%w: GetLawyerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetLawyerBookings: fetched %d bookings for lawyer=%d", len(bookings), req.LawyerID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование в отменяемом статусе
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет доступ к бронированию
// Доступ есть у владельца и у аккаунта юриста
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.UserID == userID {
		return nil
	}

	if err := s.checkLawyerAccess(ctx, booking.LawyerID, userID); err != nil {
		return ErrAccessDenied
	}

	return nil
}

// checkLawyerAccess проверяет, что пользователь управляет расписанием юриста
func (s *Service) checkLawyerAccess(ctx context.Context, lawyerID int64, userID int64) error {
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
