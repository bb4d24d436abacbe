package delete_field

import "context"

type CatalogService interface {
	DeleteField(ctx context.Context, id int64, staffID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
