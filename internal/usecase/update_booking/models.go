package update_booking

import (
	"time"

	"github.com/lexgrid/LSM-BookingService/pkg/types"
)

// Request модель запроса на перенос времени бронирования
type Request struct {
	UserID    int64     // ID пользователя (владельца бронирования)
	BookingID int64     // ID бронирования
	Date      time.Time // Новая дата бронирования
	SlotIDs   []string  // Новые слоты (непрерывная цепочка, не длиннее оплаченной)
}

// Response модель ответа на перенос времени бронирования
type Response struct {
	BookingID     int64
	ReferenceCode string
	Status        string
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	SlotCount     int
}
