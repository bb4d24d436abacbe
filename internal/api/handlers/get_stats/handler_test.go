package get_stats

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-FieldReservationService/pkg/logger"
)

type fakeService struct {
	stats *models.StatsResponse
	err   error
}

func (f *fakeService) Stats(_ context.Context) (*models.StatsResponse, error) {
	return f.stats, f.err
}

func TestHandle_IncludesWindowCount(t *testing.T) {
	svc := &fakeService{stats: &models.StatsResponse{
		Total:        2,
		ByStatus:     map[string]int{"pending": 2},
		TotalWindows: 4,
	}}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.Discard()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(4), body["totalWindows"])
	assert.Equal(t, float64(2), body["total"])
}

func TestHandle_InternalError(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(&fakeService{err: reservations.ErrInternal}, logger.Discard()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
