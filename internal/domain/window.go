package domain

import "time"

// WindowKind represents the kind of a calendar window
type WindowKind string

const (
	WindowAvailable WindowKind = "available"
	WindowBlocked   WindowKind = "blocked"
	WindowSpecial   WindowKind = "special"
)

// IsValid returns true for one of the known kinds
func (k WindowKind) IsValid() bool {
	switch k {
	case WindowAvailable, WindowBlocked, WindowSpecial:
		return true
	}
	return false
}

// CalendarWindow represents a staff-declared interval on a field's calendar
type CalendarWindow struct {
	ID          int64
	FieldID     *int64 // NULL = global window, applies to every field
	Kind        WindowKind
	StartDate   time.Time
	EndDate     time.Time
	Title       string
	Description *string
	CreatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Range returns the window's [StartDate, EndDate)
func (w *CalendarWindow) Range() TimeRange {
	return TimeRange{Start: w.StartDate, End: w.EndDate}
}

// IsGlobal returns true if the window is not bound to a field
func (w *CalendarWindow) IsGlobal() bool {
	return w.FieldID == nil
}

// AppliesTo returns true if the window is global or belongs to fieldID
func (w *CalendarWindow) AppliesTo(fieldID int64) bool {
	return w.FieldID == nil || *w.FieldID == fieldID
}

// WindowFilter фильтр окон календаря
type WindowFilter struct {
	FieldID *int64 // вместе с глобальными окнами
	Range   *TimeRange
	Kind    *WindowKind
}
