package get_day_slots

import "errors"

var (
	// ErrInvalidDate возвращается при отсутствующей или некорректной дате
	ErrInvalidDate = errors.New("get_day_slots: invalid date")

	// ErrInvalidTimezone возвращается при неизвестной тайм-зоне
	ErrInvalidTimezone = errors.New("get_day_slots: invalid timezone")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_slots: internal error")
)
