package change_status

// Request модель запроса на смену статуса
type Request struct {
	ReservationID int64
	Status        string // Целевой статус (pending, confirmed, cancelled)
	StaffID       string // Кто меняет статус (для логов)
}
