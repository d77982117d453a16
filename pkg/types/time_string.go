package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeLayout формат времени HH:MM:SS
// Фиксированная ширина делает строковое сравнение монотонным по времени
const TimeLayout = "15:04:05"

// TimeString время суток в формате "HH:MM:SS".
// Нулевое значение - пустая строка, валидным временем не является
type TimeString string

// NewTimeString создает TimeString из time.Time (дата отбрасывается)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeLayout))
}

// NewTimeStringFromString разбирает и валидирует строку "HH:MM:SS"
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(TimeLayout, s); err != nil {
		return "", fmt.Errorf("types: invalid time string %q: %w", s, err)
	}
	return TimeString(s), nil
}

// String возвращает исходное представление "HH:MM:SS"
func (t TimeString) String() string {
	return string(t)
}

// IsValid проверяет, разбирается ли значение как "HH:MM:SS"
func (t TimeString) IsValid() bool {
	_, err := time.Parse(TimeLayout, string(t))
	return err == nil
}

// Minutes возвращает значение в минутах с полуночи.
// Секунды отбрасываются: бронирования работают с точностью до минуты
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(TimeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("types: invalid time string %q: %w", string(t), err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore проверяет, что t строго раньше other.
// Лексикографическое сравнение корректно для формата фиксированной ширины
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter проверяет, что t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Equal проверяет, что t и other обозначают одно и то же время суток
func (t TimeString) Equal(other TimeString) bool {
	return string(t) == string(other)
}

// AddMinutes возвращает новый TimeString, сдвинутый вперед на указанное
// число минут. Результат остается в пределах одних суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(TimeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("types: invalid time string %q: %w", string(t), err)
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(TimeLayout)), nil
}

// Scan реализует sql.Scanner. Колонки TIME из Postgres приходят как string или []byte
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = TimeString(v)
		return nil
	case []byte:
		*t = TimeString(v)
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}
