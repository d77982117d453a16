package create_booking

import (
	"time"

	"github.com/lexgrid/LSM-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64     // ID пользователя
	LawyerID  int64     // ID юриста
	ServiceID int64     // ID услуги
	Date      time.Time // Дата бронирования (без времени)
	SlotIDs   []string  // Выбранные слоты (непрерывная цепочка)
	Notes     *string   // Комментарий пользователя (опционально)
}

// Response модель ответа на создание бронирования
type Response struct {
	BookingID     int64
	ReferenceCode string
	Status        string
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	ServiceName   string
	ServicePrice  float64
}
