package change_status

import "errors"

var (
	// ErrNotFound возвращается, когда бронирование не найдено
	ErrNotFound = errors.New("change_status: reservation not found")

	// ErrInvalidStatus возвращается для неизвестного целевого статуса
	ErrInvalidStatus = errors.New("change_status: invalid status")

	// ErrInvalidTransition возвращается для недопустимого перехода
	ErrInvalidTransition = errors.New("change_status: invalid status transition")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("change_status: internal error")
)
