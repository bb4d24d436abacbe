package change_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
	changeStatus "github.com/m04kA/SMC-FieldReservationService/internal/usecase/change_status"
	"github.com/m04kA/SMC-FieldReservationService/pkg/logger"
)

type fakeUseCase struct {
	got *changeStatus.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *changeStatus.Request) (*domain.Reservation, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Reservation{ID: req.ReservationID, Status: domain.ReservationStatus(req.Status)}, nil
}

func serve(uc *fakeUseCase, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/"+id+"/status", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	req = req.WithContext(middleware.WithStaffID(req.Context(), "7"))
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Discard()).Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(uc, "5", `{"status":"confirmed"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, changeStatus.Request{ReservationID: 5, Status: "confirmed", StaffID: "7"}, *uc.got)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		err        error
		wantStatus int
	}{
		{name: "bad id", id: "x", body: `{"status":"confirmed"}`, wantStatus: http.StatusBadRequest},
		{name: "bad body", id: "5", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "not found", id: "5", body: `{"status":"confirmed"}`, err: changeStatus.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid status", id: "5", body: `{"status":"x"}`, err: changeStatus.ErrInvalidStatus, wantStatus: http.StatusBadRequest},
		{name: "invalid transition", id: "5", body: `{"status":"pending"}`, err: changeStatus.ErrInvalidTransition, wantStatus: http.StatusBadRequest},
		{name: "internal", id: "5", body: `{"status":"confirmed"}`, err: changeStatus.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.id, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
