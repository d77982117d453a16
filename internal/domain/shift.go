package domain

import (
	"time"

	"github.com/lexgrid/LSM-BookingService/pkg/types"
)

// ShiftKind различает рабочие смены и согласованные выходные
type ShiftKind string

const (
	ShiftWork   ShiftKind = "work"
	ShiftDayOff ShiftKind = "day_off"
)

// Shift запланированный рабочий интервал (или выходной) юриста.
// Сменами владеет LawyerService, этот сервис только читает их для
// проверки конфликтов с существующими бронированиями.
type Shift struct {
	ID        int64
	LawyerID  int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Kind      ShiftKind
}

// IsDayOff проверяет, является ли смена согласованным выходным
func (s *Shift) IsDayOff() bool {
	return s.Kind == ShiftDayOff
}
