package sweep_reservations

import "github.com/lexgrid/LSM-BookingService/internal/domain"

// Request модель запроса на чистку просроченных резервов
type Request struct {
	UserID int64 // ID пользователя
}

// Report итоги чистки просроченных резервов
type Report struct {
	Expired   int // Сколько резервов просрочено
	Cancelled int // Сколько отменено успешно
	Failed    int // Сколько отмен не удалось (остаются до следующей чистки)
}

// Response модель ответа: актуальные резервы плюс итоги чистки
type Response struct {
	Valid  []*domain.Booking
	Report Report
}
