package create_field

import (
	"context"

	"github.com/m04kA/SMC-FieldReservationService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateField(ctx context.Context, req *models.FieldRequest, staffID string) (*models.FieldResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
