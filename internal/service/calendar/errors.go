package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrWindowNotFound возвращается, когда окно не найдено
	ErrWindowNotFound = errors.New("calendar.service: calendar window not found")

	// ErrFieldNotFound возвращается, когда окно ссылается на несуществующее поле
	ErrFieldNotFound = errors.New("calendar.service: field not found")

	// ErrWindowInUse возвращается при удалении окна с активными бронированиями
	ErrWindowInUse = errors.New("calendar.service: calendar window has active reservations")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calendar.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar.service: internal error")
)

// WindowInUseError отказ в удалении окна; errors.Is(err, ErrWindowInUse) == true
type WindowInUseError struct {
	WindowID         int64
	ReservationCount int
}

func (e *WindowInUseError) Error() string {
	return fmt.Sprintf("%v: window id=%d, reservations=%d", ErrWindowInUse, e.WindowID, e.ReservationCount)
}

func (e *WindowInUseError) Unwrap() error {
	return ErrWindowInUse
}
