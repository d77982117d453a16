package create_booking

import (
	"fmt"
	"time"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
	"github.com/lexgrid/LSM-BookingService/internal/integrations/lawyerservice"
	"github.com/lexgrid/LSM-BookingService/internal/slotrules"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.LawyerID <= 0 {
		return fmt.Errorf("%w: lawyerID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.SlotIDs) == 0 {
		return fmt.Errorf("%w: at least one slot must be selected", ErrInvalidInput)
	}

	if len(req.SlotIDs) > domain.MaxSlotsPerBooking {
		return fmt.Errorf("%w: at most %d slots per booking", ErrInvalidInput, domain.MaxSlotsPerBooking)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом.
// Сравнение по календарному дню, без учета часовых поясов значений
func validateDate(requestDate, now time.Time) error {
	if slotrules.DayBefore(requestDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateServiceProvided проверяет, что услуга принадлежит юристу
func validateServiceProvided(service *lawyerservice.Service, lawyerID int64) error {
	if service.LawyerID != lawyerID {
		return ErrServiceNotProvided
	}
	return nil
}
