package catalog

import "errors"

var (
	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("catalog.service: field not found")

	// ErrFieldInUse возвращается при удалении поля с окнами или бронированиями
	ErrFieldInUse = errors.New("catalog.service: field has calendar windows or reservations")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog.service: internal error")
)
