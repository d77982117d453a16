package domain

// Константы бизнес-валидации
const (
	MaxSlotsPerBooking = 24 // защита от выбора целого дня одним бронированием
	MaxNotesLength     = 500
	MaxCancellationReasonLength = 500
)

// Форматы времени и даты
const (
	TimeFormat = "15:04:05"   // HH:MM:SS
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих время в календаре
// Используется при фильтрации бронирований для проверки конфликтов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}

// ActiveStatuses список статусов, занимающих время в календаре
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusPaid,
}
