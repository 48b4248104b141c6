package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "busy")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"busy"}`, rec.Body.String())
}

func TestRespondText(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondText(rec, http.StatusBadRequest, "선택한 좌석")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "선택한 좌석", rec.Body.String())
}

func TestRedirectToSchedule(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"", "/"},
		{"2024-05-01", "/?date=2024-05-01"},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		RedirectToSchedule(rec, httptest.NewRequest(http.MethodPost, "/add", nil), tt.date)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, tt.want, rec.Header().Get("Location"))
	}
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Kim"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "Kim", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Kim","extra":1}`))
	assert.Error(t, DecodeJSON(req, &v))
}
