package schedule

import (
	"time"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
	"github.com/lexgrid/LSM-BookingService/pkg/types"
)

// CheckConflictRequest запрос проверки конфликта планируемой смены/выходного
type CheckConflictRequest struct {
	LawyerID  int64
	UserID    int64 // запрашивающий (аккаунт юриста)
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// CheckConflictResponse результат проверки конфликта
type CheckConflictResponse struct {
	HasConflict bool
	// Активные бронирования дня, с которыми сверялся кандидат
	CommitmentsChecked int
}

// ShiftsResponse каталог смен юриста за период
type ShiftsResponse struct {
	LawyerID int64
	Shifts   []domain.Shift
}
