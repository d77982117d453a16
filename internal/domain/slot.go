package domain

import "github.com/lexgrid/LSM-BookingService/pkg/types"

// Slot атомарный интервал времени, доступный для бронирования у юриста
// на одну дату. Сама дата выбирается снаружи и в слоте не хранится.
type Slot struct {
	ID        string
	StartTime types.TimeString
	EndTime   types.TimeString
}

// IsValid проверяет, что обе границы времени разбираются и слот имеет
// положительную длину. Некорректные слоты исключаются из всех сравнений,
// а не ломают их.
func (s *Slot) IsValid() bool {
	return s.StartTime.IsValid() && s.EndTime.IsValid() && s.StartTime.IsBefore(s.EndTime)
}

// DurationMinutes возвращает длину слота в минутах
func (s *Slot) DurationMinutes() (int, error) {
	start, err := s.StartTime.Minutes()
	if err != nil {
		return 0, err
	}
	end, err := s.EndTime.Minutes()
	if err != nil {
		return 0, err
	}
	return end - start, nil
}

// Touches проверяет, что next начинается ровно там, где заканчивается этот слот
func (s *Slot) Touches(next *Slot) bool {
	return s.EndTime.Equal(next.StartTime)
}
