package get_lawyer_schedule

import (
	"github.com/lexgrid/LSM-BookingService/internal/domain"
	"github.com/lexgrid/LSM-BookingService/internal/service/schedule"
)

// ShiftResponse HTTP модель смены юриста
type ShiftResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Kind      string `json:"kind"`
}

// ScheduleResponse HTTP модель расписания юриста за период
type ScheduleResponse struct {
	LawyerID int64           `json:"lawyerId"`
	Shifts   []ShiftResponse `json:"shifts"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *schedule.ShiftsResponse) *ScheduleResponse {
	shifts := make([]ShiftResponse, len(resp.Shifts))
	for i, s := range resp.Shifts {
		shifts[i] = ShiftResponse{
			ID:        s.ID,
			Date:      s.Date.Format(domain.DateFormat),
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Kind:      string(s.Kind),
		}
	}

	return &ScheduleResponse{
		LawyerID: resp.LawyerID,
		Shifts:   shifts,
	}
}
