package get_available_slots

import (
	"time"

	"github.com/lexgrid/LSM-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID      int64     // ID пользователя (для логирования, не влияет на результат)
	LawyerID    int64     // ID юриста
	ServiceID   int64     // ID услуги
	Date        time.Time // Дата для получения слотов (без времени)
	SelectedIDs []string  // Текущий выбор пользователя (для подсветки допустимых слотов)
}

// Response модель ответа со списком слотов
type Response struct {
	Date      time.Time // Дата, на которую запрашивались слоты
	LawyerID  int64     // ID юриста
	ServiceID int64     // ID услуги
	Slots     []Slot    // Упорядоченный каталог слотов
}

// Slot модель временного слота
type Slot struct {
	ID         string           // Идентификатор слота
	StartTime  types.TimeString // Время начала
	EndTime    types.TimeString // Время конца
	Available  bool             // Свободен ли слот (нет конфликта с активными бронированиями)
	Selectable bool             // Можно ли добавить слот к текущему выбору (правило последовательности)
}
