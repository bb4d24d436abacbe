package delete_window

// WindowInUseResponse ответ 409 с числом активных бронирований окна
type WindowInUseResponse struct {
	Code             int    `json:"code"`
	Message          string `json:"message"`
	ReservationCount int    `json:"reservationCount"`
}
