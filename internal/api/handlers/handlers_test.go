package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondConflict(rec, "слот занят")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Code: http.StatusConflict, Message: "слот занят"}, body)
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "a", dst.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`))
	assert.Error(t, DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.ErrorIs(t, DecodeJSON(req, &dst), ErrEmptyBody)
}

func TestPathID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "15", want: 15},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": tt.raw})
		got, err := PathID(req, "id")
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestQueryParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?fieldId=3&start=2025-06-01T10:00:00Z&status=%20pending%20&bad=x", nil)

	fieldID, err := QueryInt64(req, "fieldId")
	require.NoError(t, err)
	require.NotNil(t, fieldID)
	assert.Equal(t, int64(3), *fieldID)

	missing, err := QueryInt64(req, "windowId")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = QueryInt64(req, "bad")
	assert.Error(t, err)

	start, err := QueryTime(req, "start")
	require.NoError(t, err)
	require.NotNil(t, start)
	assert.Equal(t, 10, start.Hour())

	_, err = QueryTime(req, "bad")
	assert.Error(t, err)

	status := QueryString(req, "status")
	require.NotNil(t, status)
	assert.Equal(t, "pending", *status)
	assert.Nil(t, QueryString(req, "kind"))
}
