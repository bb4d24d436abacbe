package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTransition is returned for a status change not allowed by the lifecycle.
var ErrInvalidTransition = errors.New("domain: invalid status transition")

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// transitions lists the legal edges of the lifecycle
var transitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
	StatusCancelled: nil,
}

// ParseReservationStatus converts a raw value into a known status
func ParseReservationStatus(value string) (ReservationStatus, bool) {
	s := ReservationStatus(value)
	_, ok := transitions[s]
	return s, ok
}

// IsValid returns true for one of the known statuses
func (s ReservationStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// IsActive returns true if a reservation in this status holds its time slot
func (s ReservationStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo reports whether s -> next is a legal edge. Self-loops are not.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidateTransition returns ErrInvalidTransition when s -> next is illegal
func ValidateTransition(from, to ReservationStatus) error {
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// ActiveStatuses statuses that hold a time slot
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// Reservation represents a guest's claim on a time range of a field
type Reservation struct {
	ID       int64
	FieldID  int64
	WindowID *int64
	UserID   *int64

	GuestName  string
	GuestEmail string
	GuestPhone *string

	StartTime time.Time
	EndTime   time.Time

	PlayerCount *int
	Notes       *string

	Status      ReservationStatus
	ConfirmedAt *time.Time // история: не сбрасывается после отмены

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the reservation's [StartTime, EndTime)
func (r *Reservation) Range() TimeRange {
	return TimeRange{Start: r.StartTime, End: r.EndTime}
}

// ReservationFilter фильтр списка бронирований
type ReservationFilter struct {
	Status  *ReservationStatus // nil - все статусы
	FieldID *int64
	Start   *time.Time // бронирования, заканчивающиеся после Start
	End     *time.Time // бронирования, начинающиеся до End
}

// StatusCount количество бронирований в статусе
type StatusCount struct {
	Status ReservationStatus
	Count  int
}
