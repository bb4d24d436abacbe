package update_window

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldReservationService/internal/service/calendar"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/calendar/models"
	"github.com/m04kA/SMC-FieldReservationService/pkg/logger"
)

type fakeService struct {
	gotID int64
	err   error
}

func (f *fakeService) UpdateWindow(_ context.Context, id int64, req *models.WindowRequest) (*models.WindowResponse, error) {
	f.gotID = id
	if f.err != nil {
		return nil, f.err
	}
	return &models.WindowResponse{ID: id, Kind: req.Kind, Title: req.Title}, nil
}

const validBody = `{"kind":"blocked","startDate":"2025-06-01T08:00:00Z","endDate":"2025-06-01T10:00:00Z","title":"Ремонт"}`

func serve(svc *fakeService, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/calendar/windows/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Discard()).Handle(rec, req)
	return rec
}

func TestHandle_Updated(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "4", validBody)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(4), svc.gotID)
	assert.Contains(t, rec.Body.String(), `"kind":"blocked"`)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		err        error
		wantStatus int
	}{
		{name: "not found", id: "4", body: validBody, err: calendar.ErrWindowNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid window", id: "4", body: validBody, err: calendar.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "unknown field", id: "4", body: validBody, err: calendar.ErrFieldNotFound, wantStatus: http.StatusBadRequest},
		{name: "window in use", id: "4", body: validBody, err: &calendar.WindowInUseError{WindowID: 4, ReservationCount: 1}, wantStatus: http.StatusConflict},
		{name: "internal", id: "4", body: validBody, err: calendar.ErrInternal, wantStatus: http.StatusInternalServerError},
		{name: "bad id", id: "x", body: validBody, wantStatus: http.StatusBadRequest},
		{name: "bad body", id: "4", body: `{`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.id, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
