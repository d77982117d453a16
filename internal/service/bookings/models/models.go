package models

import (
	"fmt"
	"time"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
)

// BookingResponse модель бронирования для слоя API
type BookingResponse struct {
	ID            int64     `json:"id"`
	ReferenceCode string    `json:"referenceCode"`
	UserID        int64     `json:"userId"`
	LawyerID      int64     `json:"lawyerId"`
	ServiceID     int64     `json:"serviceId"`
	BookingDate   time.Time `json:"bookingDate"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	SlotIDs       []string  `json:"slotIds"`
	Status        string    `json:"status"`

	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	LawyerName   *string `json:"lawyerName,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// GetUserBookingsRequest запрос истории бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64
	Status *string
}

// GetLawyerBookingsRequest запрос бронирований юриста за период
type GetLawyerBookingsRequest struct {
	LawyerID        int64
	UserID          int64 // запрашивающий (для проверки прав)
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *GetLawyerBookingsRequest) ToDomainFilter() (domain.LawyerBookingsFilter, error) {
	filter := domain.LawyerBookingsFilter{
		LawyerID:        r.LawyerID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.LawyerBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelBookingRequest запрос отмены бронирования
type CancelBookingRequest struct {
	UserID             int64
	CancellationReason string
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		ReferenceCode:      b.ReferenceCode,
		UserID:             b.UserID,
		LawyerID:           b.LawyerID,
		ServiceID:          b.ServiceID,
		BookingDate:        b.BookingDate,
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		SlotIDs:            b.SlotIDs,
		Status:             string(b.Status),
		ServiceName:        b.ServiceName,
		ServicePrice:       b.ServicePrice,
		LawyerName:         b.LawyerName,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain.Booking
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b)
	}

	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

// ToDomainBookingStatus валидирует и конвертирует строковый статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusPaid, domain.StatusCompleted, domain.StatusCancelled:
		return domain.BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status: %s", s)
	}
}
