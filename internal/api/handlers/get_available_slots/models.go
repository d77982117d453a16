package get_available_slots

import (
	"github.com/lexgrid/LSM-BookingService/internal/domain"
	getAvailableSlots "github.com/lexgrid/LSM-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель временного слота
type SlotResponse struct {
	ID         string `json:"id"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Available  bool   `json:"available"`
	Selectable bool   `json:"selectable"`
}

// AvailableSlotsResponse HTTP модель каталога слотов
type AvailableSlotsResponse struct {
	Date      string         `json:"date"`
	LawyerID  int64          `json:"lawyerId"`
	ServiceID int64          `json:"serviceId"`
	Slots     []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			ID:         s.ID,
			StartTime:  s.StartTime.String(),
			EndTime:    s.EndTime.String(),
			Available:  s.Available,
			Selectable: s.Selectable,
		}
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		LawyerID:  resp.LawyerID,
		ServiceID: resp.ServiceID,
		Slots:     slots,
	}
}
