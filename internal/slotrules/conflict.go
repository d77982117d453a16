package slotrules

import (
	"time"

	"github.com/lexgrid/LSM-BookingService/internal/domain"
	"github.com/lexgrid/LSM-BookingService/pkg/types"
)

// HasConflict проверяет, пересекается ли кандидатный интервал времени
// с активными бронированиями на указанную дату.
//
// Календарное время занимают только бронирования в статусах pending и paid,
// отменённые и завершённые пропускаются. Интервалы полуоткрытые: бронирование,
// заканчивающееся ровно в момент начала кандидата (и наоборот), конфликтом
// не считается. Бронирования с некорректным временем исключаются из сравнения,
// некорректный кандидатный интервал не конфликтует ни с чем.
func HasConflict(commitments []*domain.Booking, date time.Time, candidateStart, candidateEnd types.TimeString) bool {
	candStart, err := candidateStart.Minutes()
	if err != nil {
		return false
	}
	candEnd, err := candidateEnd.Minutes()
	if err != nil {
		return false
	}

	for _, c := range commitments {
		if !c.IsActive() {
			continue
		}
		if !SameDay(c.BookingDate, date) {
			continue
		}

		start, err := c.StartTime.Minutes()
		if err != nil {
			continue
		}
		end, err := c.EndTime.Minutes()
		if err != nil {
			continue
		}

		// Строгие неравенства: граничащие интервалы не конфликтуют
		if start < candEnd && end > candStart {
			return true
		}
	}

	return false
}

// SameDay проверяет, что две даты относятся к одному календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DayBefore проверяет, что календарный день a строго раньше дня b.
// Сравниваются только год, месяц и день: часовой пояс каждого значения
// игнорируется (даты из БД приходят в UTC, а время сервера - локальное,
// сравнение моментов здесь дало бы сдвиг на сутки)
func DayBefore(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}
