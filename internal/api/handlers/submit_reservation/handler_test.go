package submit_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
	"github.com/m04kA/SMC-FieldReservationService/internal/service/reservations/models"
	submitReservation "github.com/m04kA/SMC-FieldReservationService/internal/usecase/submit_reservation"
	"github.com/m04kA/SMC-FieldReservationService/pkg/logger"
)

type fakeUseCase struct {
	got *submitReservation.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *submitReservation.Request) (*domain.Reservation, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Reservation{
		ID:         1,
		FieldID:    req.FieldID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     domain.StatusPending,
	}, nil
}

const validBody = `{"fieldId":1,"guestName":"Иван","guestEmail":"ivan@example.com","startTime":"2025-06-01T10:00:00Z","endTime":"2025-06-01T11:00:00Z"}`

func serve(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Discard()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp models.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), resp.StartTime.UTC())
	assert.Equal(t, int64(1), uc.got.FieldID)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "slot taken", err: submitReservation.ErrSlotTaken, wantStatus: http.StatusConflict},
		{name: "validation", err: submitReservation.ErrValidationFailed, wantStatus: http.StatusBadRequest},
		{name: "range", err: submitReservation.ErrInvalidRange, wantStatus: http.StatusBadRequest},
		{name: "unknown field", err: submitReservation.ErrUnknownResource, wantStatus: http.StatusBadRequest},
		{name: "inactive field", err: submitReservation.ErrInactiveResource, wantStatus: http.StatusBadRequest},
		{name: "window", err: submitReservation.ErrWindowNotFound, wantStatus: http.StatusBadRequest},
		{name: "internal", err: submitReservation.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotContains(t, rec.Body.String(), "submit_reservation:")
		})
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(uc, `{"fieldId":1,"startTime":"10:00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}
