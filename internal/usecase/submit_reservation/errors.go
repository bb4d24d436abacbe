package submit_reservation

import "errors"

var (
	// ErrValidationFailed возвращается при некорректных данных гостя
	ErrValidationFailed = errors.New("submit_reservation: validation failed")

	// ErrInvalidRange возвращается, когда startTime не раньше endTime
	ErrInvalidRange = errors.New("submit_reservation: invalid time range")

	// ErrUnknownResource возвращается, когда поле не найдено
	ErrUnknownResource = errors.New("submit_reservation: unknown field")

	// ErrInactiveResource возвращается, когда поле закрыто для бронирования
	ErrInactiveResource = errors.New("submit_reservation: field is not active")

	// ErrWindowNotFound возвращается, когда указанное окно календаря не найдено
	ErrWindowNotFound = errors.New("submit_reservation: calendar window not found")

	// ErrSlotTaken возвращается, когда интервал пересекается с активным бронированием
	ErrSlotTaken = errors.New("submit_reservation: slot is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_reservation: internal error")
)
