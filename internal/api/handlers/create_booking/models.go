package create_booking

import (
	"time"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
	createBooking "github.com/lexgrid/LSM-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	LawyerID  int64    `json:"lawyerId"`
	ServiceID int64    `json:"serviceId"`
	Date      string   `json:"date"` // "2025-10-15"
	SlotIDs   []string `json:"slotIds"`
	Notes     *string  `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	ReferenceCode string  `json:"referenceCode"`
	Status        string  `json:"status"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	ServiceName   string  `json:"serviceName"`
	ServicePrice  float64 `json:"servicePrice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:    userID,
		LawyerID:  r.LawyerID,
		ServiceID: r.ServiceID,
		Date:      date,
		SlotIDs:   r.SlotIDs,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.BookingID,
		ReferenceCode: resp.ReferenceCode,
		Status:        resp.Status,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		ServiceName:   resp.ServiceName,
		ServicePrice:  resp.ServicePrice,
	}
}
