package sweep_reservations

import (
	"github.com/lexgrid/LSM-BookingService/internal/service/bookings/models"
	sweepReservations "github.com/lexgrid/LSM-BookingService/internal/usecase/sweep_reservations"
)

// SweepReportResponse итоги чистки просроченных резервов
type SweepReportResponse struct {
	Expired   int `json:"expired"`
	Cancelled int `json:"cancelled"`
	Failed    int `json:"failed"`
}

// SweepResponse актуальные резервы пользователя плюс итоги чистки
type SweepResponse struct {
	Reservations []*models.BookingResponse `json:"reservations"`
	Report       SweepReportResponse       `json:"report"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *sweepReservations.Response) *SweepResponse {
	reservations := make([]*models.BookingResponse, len(resp.Valid))
	for i, b := range resp.Valid {
		reservations[i] = models.FromDomainBooking(b)
	}

	return &SweepResponse{
		Reservations: reservations,
		Report: SweepReportResponse{
			Expired:   resp.Report.Expired,
			Cancelled: resp.Report.Cancelled,
			Failed:    resp.Report.Failed,
		},
	}
}
