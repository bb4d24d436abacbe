package get_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldReservationService/internal/service/reservations"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/reservations/models"
	"github.com/m04kA/SMC-FieldReservationService/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) GetByID(_ context.Context, id int64) (*models.ReservationResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReservationResponse{ID: id, FieldID: 1, GuestEmail: "ivan@example.com", Status: "pending"}, nil
}

func serve(svc *fakeService, id string) *httptest.ResponseRecorder {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/reservations/"+id, nil), map[string]string{"id": id})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Discard()).Handle(rec, req)
	return rec
}

func TestHandle_Found(t *testing.T) {
	rec := serve(&fakeService{}, "5")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "ivan@example.com", resp.GuestEmail)
}

func TestHandle_Statuses(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: reservations.ErrReservationNotFound}, "5").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: reservations.ErrInternal}, "5").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "-1").Code)
}
