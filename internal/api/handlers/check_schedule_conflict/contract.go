package check_schedule_conflict

import (
	"context"

	"github.com/lexgrid/LSM-BookingService/internal/service/schedule"
)

type ScheduleService interface {
	CheckConflict(ctx context.Context, req *schedule.CheckConflictRequest) (*schedule.CheckConflictResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
