package update_field

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldReservationService/internal/service/catalog"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/catalog/models"
	"github.com/m04kA/SMC-FieldReservationService/pkg/logger"
)

type fakeService struct {
	gotID int64
	got   *models.FieldRequest
	err   error
}

func (f *fakeService) UpdateField(_ context.Context, id int64, req *models.FieldRequest) (*models.FieldResponse, error) {
	f.gotID = id
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.FieldResponse{ID: id, Name: req.Name, IsActive: req.IsActive == nil || *req.IsActive}, nil
}

func serve(svc *fakeService, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/fields/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Discard()).Handle(rec, req)
	return rec
}

func TestHandle_Deactivates(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "3", `{"name":"Зал","fieldType":"small","hourlyRate":150,"isActive":false}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), svc.gotID)
	require.NotNil(t, svc.got.IsActive)
	assert.False(t, *svc.got.IsActive)
	assert.Contains(t, rec.Body.String(), `"isActive":false`)
}

func TestHandle_ErrorMapping(t *testing.T) {
	body := `{"name":"Зал","fieldType":"small"}`

	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: catalog.ErrFieldNotFound}, "3", body).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: catalog.ErrInvalidInput}, "3", body).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: catalog.ErrInternal}, "3", body).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "zero", body).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "3", ``).Code)
}
