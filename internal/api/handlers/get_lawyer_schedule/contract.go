package get_lawyer_schedule

import (
	"context"

	"github.com/lexgrid/LSM-BookingService/internal/service/schedule"
)

type ScheduleService interface {
	GetShifts(ctx context.Context, lawyerID, userID int64, from, to string) (*schedule.ShiftsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
