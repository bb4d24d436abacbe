package list_reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-FieldReservationService/pkg/logger"
)

type fakeService struct {
	got *models.ListReservationsRequest
	err error
}

func (f *fakeService) List(_ context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReservationListResponse{Reservations: []models.ReservationResponse{{ID: 1}}}, nil
}

func serve(svc *fakeService, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations"+query, nil)
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Discard()).Handle(rec, req)
	return rec
}

func TestHandle_PassesFilter(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "?status=pending&fieldId=2&start=2025-06-01T00:00:00Z&end=2025-06-02T00:00:00Z")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "pending", *svc.got.Status)
	require.NotNil(t, svc.got.FieldID)
	assert.Equal(t, int64(2), *svc.got.FieldID)
	require.NotNil(t, svc.got.Start)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), svc.got.Start.UTC())
	assert.Contains(t, rec.Body.String(), `"reservations"`)
}

func TestHandle_NoFilter(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.got.Status)
	assert.Nil(t, svc.got.FieldID)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
		err   error
	}{
		{name: "bad field", query: "?fieldId=x"},
		{name: "bad start", query: "?start=yesterday"},
		{name: "bad end", query: "?end=2025-06-01"},
		{name: "service rejects filter", query: "?status=done", err: reservations.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.query)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	rec := serve(&fakeService{err: reservations.ErrInternal}, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
