package submit_reservation

import (
	"time"

	submitReservation "github.com/m04kA/SMC-FieldReservationService/internal/usecase/submit_reservation"
)

// SubmitReservationRequest HTTP request model
type SubmitReservationRequest struct {
	FieldID     int64     `json:"fieldId"`
	WindowID    *int64    `json:"windowId,omitempty"`
	UserID      *int64    `json:"userId,omitempty"`
	GuestName   string    `json:"guestName"`
	GuestEmail  string    `json:"guestEmail"`
	GuestPhone  *string   `json:"guestPhone,omitempty"`
	StartTime   time.Time `json:"startTime"` // RFC 3339
	EndTime     time.Time `json:"endTime"`   // RFC 3339
	Notes       *string   `json:"notes,omitempty"`
	PlayerCount *int      `json:"playerCount,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitReservationRequest) ToUseCaseRequest() *submitReservation.Request {
	return &submitReservation.Request{
		FieldID:     r.FieldID,
		WindowID:    r.WindowID,
		UserID:      r.UserID,
		GuestName:   r.GuestName,
		GuestEmail:  r.GuestEmail,
		GuestPhone:  r.GuestPhone,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		PlayerCount: r.PlayerCount,
		Notes:       r.Notes,
	}
}
