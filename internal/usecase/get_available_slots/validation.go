package get_available_slots

import (
	"fmt"
	"time"

	"github.com/lexgrid/LSM-BookingService/internal/integrations/lawyerservice"
	"github.com/lexgrid/LSM-BookingService/internal/slotrules"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LawyerID <= 0 {
		return fmt.Errorf("%w: lawyerID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
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
