package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrConflict возвращается, когда интервал пересекается с активным бронированием поля
	ErrConflict = errors.New("reservation.repository: time range conflicts with an active reservation")

	// ErrStatusChanged возвращается, когда статус изменился между чтением и обновлением
	ErrStatusChanged = errors.New("reservation.repository: status changed concurrently")

	// ErrFieldNotFound возвращается, когда поле бронирования не существует
	ErrFieldNotFound = errors.New("reservation.repository: field not found")

	// ErrWindowNotFound возвращается, когда окно календаря не существует
	ErrWindowNotFound = errors.New("reservation.repository: calendar window not found")

	// ErrWindowFieldMismatch возвращается, когда окно привязано к другому полю
	ErrWindowFieldMismatch = errors.New("reservation.repository: calendar window belongs to another field")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
