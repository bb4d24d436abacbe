package models

import (
	"time"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
)

// Request модели

// ListWindowsRequest запрос списка окон
type ListWindowsRequest struct {
	FieldID *int64
	Start   *time.Time
	End     *time.Time
	Kind    *string
}

// WindowRequest тело создания и обновления окна
type WindowRequest struct {
	FieldID     *int64    `json:"fieldId,omitempty" validate:"omitempty,gt=0"`
	Kind        string    `json:"kind" validate:"required,oneof=available blocked special"`
	StartDate   time.Time `json:"startDate" validate:"required"`
	EndDate     time.Time `json:"endDate" validate:"required"`
	Title       string    `json:"title" validate:"required,max=255"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// ToDomain конвертирует запрос в domain модель
func (r *WindowRequest) ToDomain() *domain.CalendarWindow {
	return &domain.CalendarWindow{
		FieldID:     r.FieldID,
		Kind:        domain.WindowKind(r.Kind),
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Title:       r.Title,
		Description: r.Description,
	}
}

// Response модели

// WindowResponse ответ с данными окна
type WindowResponse struct {
	ID          int64     `json:"id"`
	FieldID     *int64    `json:"fieldId"`
	Kind        string    `json:"kind"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	CreatedBy   *string   `json:"createdBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// WindowListResponse ответ со списком окон
type WindowListResponse struct {
	Windows []WindowResponse `json:"windows"`
}

// FromDomainWindow конвертирует domain модель в DTO
func FromDomainWindow(w *domain.CalendarWindow) *WindowResponse {
	if w == nil {
		return nil
	}
	return &WindowResponse{
		ID:          w.ID,
		FieldID:     w.FieldID,
		Kind:        string(w.Kind),
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		Title:       w.Title,
		Description: w.Description,
		CreatedBy:   w.CreatedBy,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

// FromDomainWindowList конвертирует список domain моделей в DTO
func FromDomainWindowList(windows []*domain.CalendarWindow) *WindowListResponse {
	resp := &WindowListResponse{Windows: make([]WindowResponse, 0, len(windows))}
	for _, w := range windows {
		resp.Windows = append(resp.Windows, *FromDomainWindow(w))
	}
	return resp
}
