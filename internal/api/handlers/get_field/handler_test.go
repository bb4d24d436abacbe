package get_field

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FieldReservationService/internal/service/catalog"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/catalog/models"
	"github.com/m04kA/SMC-FieldReservationService/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) GetFieldResponse(_ context.Context, id int64) (*models.FieldResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.FieldResponse{ID: id, Name: "Центральное поле"}, nil
}

func serve(svc *fakeService, id string) *httptest.ResponseRecorder {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/fields/"+id, nil), map[string]string{"id": id})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Discard()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(&fakeService{}, "1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Центральное поле"`)

	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: catalog.ErrFieldNotFound}, "1").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: catalog.ErrInternal}, "1").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "-1").Code)
}
