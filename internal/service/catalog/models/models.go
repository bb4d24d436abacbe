package models

import (
	"time"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
)

// FieldRequest тело создания и обновления поля.
// IsActive по умолчанию true
type FieldRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	FieldType   string  `json:"fieldType" validate:"required,max=50"`
	SurfaceType *string `json:"surfaceType,omitempty" validate:"omitempty,max=50"`
	MaxPlayers  *int    `json:"maxPlayers,omitempty" validate:"omitempty,gt=0"`
	HourlyRate  float64 `json:"hourlyRate" validate:"gte=0"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r *FieldRequest) ToDomain() *domain.Field {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &domain.Field{
		Name:        r.Name,
		Description: r.Description,
		FieldType:   r.FieldType,
		SurfaceType: r.SurfaceType,
		MaxPlayers:  r.MaxPlayers,
		HourlyRate:  r.HourlyRate,
		IsActive:    active,
	}
}

// FieldResponse ответ с данными поля
type FieldResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	FieldType   string    `json:"fieldType"`
	SurfaceType *string   `json:"surfaceType,omitempty"`
	MaxPlayers  *int      `json:"maxPlayers,omitempty"`
	HourlyRate  float64   `json:"hourlyRate"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FieldListResponse ответ со списком полей
type FieldListResponse struct {
	Fields []FieldResponse `json:"fields"`
}

// FromDomainField конвертирует domain модель в DTO
func FromDomainField(f *domain.Field) *FieldResponse {
	if f == nil {
		return nil
	}
	return &FieldResponse{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		FieldType:   f.FieldType,
		SurfaceType: f.SurfaceType,
		MaxPlayers:  f.MaxPlayers,
		HourlyRate:  f.HourlyRate,
		IsActive:    f.IsActive,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

// FromDomainFieldList конвертирует список domain моделей в DTO
func FromDomainFieldList(fields []*domain.Field) *FieldListResponse {
	resp := &FieldListResponse{Fields: make([]FieldResponse, 0, len(fields))}
	for _, f := range fields {
		resp.Fields = append(resp.Fields, *FromDomainField(f))
	}
	return resp
}
