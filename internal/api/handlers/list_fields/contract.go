package list_fields

import (
	"context"

	"github.com/m04kA/SMC-FieldReservationService/internal/service/catalog/models"
)

type CatalogService interface {
	ListFields(ctx context.Context, activeOnly bool) (*models.FieldListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
