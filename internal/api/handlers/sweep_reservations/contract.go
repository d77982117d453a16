package sweep_reservations

import (
	"context"

	sweepReservations "github.com/lexgrid/LSM-BookingService/internal/usecase/sweep_reservations"
)

type SweepReservationsUseCase interface {
	Execute(ctx context.Context, req *sweepReservations.Request) (*sweepReservations.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
