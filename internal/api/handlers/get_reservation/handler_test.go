package get_reservation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FootSpaReservation/internal/service/reservations"
	"github.com/m04kA/SMC-FootSpaReservation/internal/service/reservations/models"
)

type fakeService struct{ err error }

func (f *fakeService) GetByID(_ context.Context, id int64) (*models.ReservationResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReservationResponse{ID: id, Name: "Kim", Seats: []int{1}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func get(svc ReservationService, id string) *httptest.ResponseRecorder {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/reservations/"+id, nil), map[string]string{"id": id})
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{"found", "5", nil, http.StatusOK},
		{"not found", "5", reservations.ErrReservationNotFound, http.StatusNotFound},
		{"invalid id", "abc", nil, http.StatusBadRequest},
		{"non-positive id", "0", reservations.ErrInvalidInput, http.StatusBadRequest},
		{"internal", "5", errors.New("locked"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(&fakeService{err: tt.err}, tt.id)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
