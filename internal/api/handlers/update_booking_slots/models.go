package update_booking_slots

import (
	"time"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
	updateBooking "github.com/lexgrid/LSM-BookingService/internal/usecase/update_booking"
)

// UpdateBookingSlotsRequest HTTP request model
type UpdateBookingSlotsRequest struct {
	Date    string   `json:"date"` // "2025-10-15"
	SlotIDs []string `json:"slotIds"`
}

// BookingSlotsResponse HTTP response model
type BookingSlotsResponse struct {
	ID            int64  `json:"id"`
	ReferenceCode string `json:"referenceCode"`
	Status        string `json:"status"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	SlotCount     int    `json:"slotCount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingSlotsRequest) ToUseCaseRequest(userID, bookingID int64) (*updateBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &updateBooking.Request{
		UserID:    userID,
		BookingID: bookingID,
		Date:      date,
		SlotIDs:   r.SlotIDs,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingSlotsResponse {
	return &BookingSlotsResponse{
		ID:            resp.BookingID,
		ReferenceCode: resp.ReferenceCode,
		Status:        resp.Status,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		SlotCount:     resp.SlotCount,
	}
}
