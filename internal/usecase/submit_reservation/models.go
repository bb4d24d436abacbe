package submit_reservation

import "time"

// Исход попытки бронирования для метрик
const (
	outcomeCreated   = "created"
	outcomeSlotTaken = "slot_taken"
	outcomeRejected  = "rejected"
	outcomeError     = "error"
)

// Request модель запроса на бронирование
type Request struct {
	FieldID     int64     `validate:"gt=0"`
	WindowID    *int64    `validate:"omitempty,gt=0"`
	UserID      *int64    `validate:"omitempty,gt=0"`
	GuestName   string    `validate:"required,max=255"`
	GuestEmail  string    `validate:"required,email,max=255"`
	GuestPhone  *string   `validate:"omitempty,max=32"`
	StartTime   time.Time // Начало интервала (включительно)
	EndTime     time.Time // Конец интервала (не включительно)
	PlayerCount *int      `validate:"omitempty,gt=0"`
	Notes       *string
}

// Options ограничения, задаваемые конфигурацией
type Options struct {
	MaxNotesLength int
}
