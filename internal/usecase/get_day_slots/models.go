package get_day_slots

import (
	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
)

// Request модель запроса на получение занятости за день
type Request struct {
	Date     string // Дата в формате YYYY-MM-DD
	FieldID  *int64 // nil - все поля
	Timezone string // IANA тайм-зона; пусто - из конфигурации
}

// Response открытые окна и занятые интервалы за день
type Response struct {
	Date             string                   // Запрошенная дата
	FieldID          *int64                   // Поле, если было указано
	Day              domain.TimeRange         // [начало дня, начало следующего дня)
	OpenWindows      []*domain.CalendarWindow // Окна available, пересекающие день
	HeldReservations []*domain.Reservation    // pending/confirmed бронирования, пересекающие день
}
