package domain

import "time"

// Field represents a bookable physical resource
type Field struct {
	ID          int64
	Name        string
	Description *string
	FieldType   string
	SurfaceType *string
	MaxPlayers  *int
	HourlyRate  float64
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AllowsPlayers returns true if count fits the field's capacity (no capacity = no limit)
func (f *Field) AllowsPlayers(count int) bool {
	return f.MaxPlayers == nil || count <= *f.MaxPlayers
}
