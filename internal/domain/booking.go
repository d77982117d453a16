package domain

import (
	"time"

	"github.com/lexgrid/LSM-BookingService/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusPaid      BookingStatus = "paid"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking зарезервированная консультация в календаре юриста.
// Бронирование покрывает один или несколько последовательных слотов,
// StartTime/EndTime - границы всей цепочки.
type Booking struct {
	ID            int64
	ReferenceCode string // внешний код бронирования (uuid)
	UserID        int64
	LawyerID      int64
	ServiceID     int64
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	SlotIDs       []string
	Status        BookingStatus

	// Денормализованные данные для истории
	ServiceName  string
	ServicePrice float64
	LawyerName   *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive проверяет, занимает ли бронирование время в календаре.
// В проверке конфликтов участвуют только активные бронирования
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusPaid
}

// IsPending проверяет, ожидает ли бронирование оплаты
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// CanBeCancelled проверяет, можно ли отменить бронирование
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusPaid
}

// CanBeRescheduled проверяет, можно ли ещё изменить слоты бронирования.
// Переносятся только оплаченные бронирования, неоплаченные создаются заново
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusPaid
}

// SlotCount возвращает количество слотов в цепочке бронирования
func (b *Booking) SlotCount() int {
	return len(b.SlotIDs)
}

// LawyerBookingsFilter фильтр для получения бронирований юриста
type LawyerBookingsFilter struct {
	LawyerID        int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые/завершённые бронирования
}
