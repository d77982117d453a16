package update_booking

import (
	"fmt"
	"time"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
	"github.com/lexgrid/LSM-BookingService/internal/slotrules"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
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
