package create_field

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/catalog"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/catalog/models"
	"github.com/m04kA/SMC-FieldReservationService/pkg/logger"
)

type fakeService struct {
	got        *models.FieldRequest
	gotStaffID string
	err        error
}

func (f *fakeService) CreateField(_ context.Context, req *models.FieldRequest, staffID string) (*models.FieldResponse, error) {
	f.got = req
	f.gotStaffID = staffID
	if f.err != nil {
		return nil, f.err
	}
	return &models.FieldResponse{ID: 5, Name: req.Name, FieldType: req.FieldType, IsActive: true}, nil
}

const validBody = `{"name":"Мини-поле","fieldType":"small","maxPlayers":10,"hourlyRate":80}`

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fields", strings.NewReader(body))
	req = req.WithContext(middleware.WithStaffID(req.Context(), "staff-2"))
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Discard()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp models.FieldResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.ID)
	require.NotNil(t, svc.got.MaxPlayers)
	assert.Equal(t, 10, *svc.got.MaxPlayers)
	assert.Equal(t, "staff-2", svc.gotStaffID)
}

func TestHandle_ErrorMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: catalog.ErrInvalidInput}, validBody).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: catalog.ErrInternal}, validBody).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, `{"name":"A","rate":1}`).Code)
}
