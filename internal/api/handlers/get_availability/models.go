package get_availability

import (
	"time"

	calendarModels "github.com/m04kA/SMC-FieldReservationService/internal/service/calendar/models"
	getDaySlots "github.com/m04kA/SMC-FieldReservationService/internal/usecase/get_day_slots"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date             string                          `json:"date"`
	FieldID          *int64                          `json:"fieldId"`
	DayStart         time.Time                       `json:"dayStart"`
	DayEnd           time.Time                       `json:"dayEnd"`
	OpenWindows      []calendarModels.WindowResponse `json:"openWindows"`
	HeldReservations []HeldSlot                      `json:"heldReservations"`
}

// HeldSlot занятый интервал без контактных данных гостя
type HeldSlot struct {
	ID        int64     `json:"id"`
	FieldID   int64     `json:"fieldId"`
	WindowID  *int64    `json:"windowId,omitempty"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *AvailabilityResponse {
	held := make([]HeldSlot, 0, len(resp.HeldReservations))
	for _, r := range resp.HeldReservations {
		held = append(held, HeldSlot{
			ID:        r.ID,
			FieldID:   r.FieldID,
			WindowID:  r.WindowID,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Status:    string(r.Status),
		})
	}

	return &AvailabilityResponse{
		Date:             resp.Date,
		FieldID:          resp.FieldID,
		DayStart:         resp.Day.Start,
		DayEnd:           resp.Day.End,
		OpenWindows:      calendarModels.FromDomainWindowList(resp.OpenWindows).Windows,
		HeldReservations: held,
	}
}
