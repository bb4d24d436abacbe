package window

import "errors"

var (
	// ErrWindowNotFound возвращается, когда окно календаря не найдено
	ErrWindowNotFound = errors.New("window.repository: calendar window not found")

	// ErrFieldNotFound возвращается, когда окно ссылается на несуществующее поле
	ErrFieldNotFound = errors.New("window.repository: field not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("window.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("window.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("window.repository: failed to scan row")
)
