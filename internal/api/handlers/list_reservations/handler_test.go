package list_reservations

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FootSpaReservation/internal/service/reservations"
	"github.com/m04kA/SMC-FootSpaReservation/internal/service/reservations/models"
)

type fakeService struct {
	lastReq *models.ListReservationsRequest
	err     error
}

func (f *fakeService) List(_ context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReservationListResponse{Reservations: []models.ReservationResponse{}, Total: 0}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reservations?date=2024-05-01", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reservations":[],"total":0}`, rec.Body.String())
	require.NotNil(t, svc.lastReq.Date)
	assert.Equal(t, "2024-05-01", *svc.lastReq.Date)

	rec = httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.lastReq.Date)
}

func TestHandle_Errors(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&fakeService{err: reservations.ErrInvalidInput}, nopLogger{}).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reservations?date=x", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(&fakeService{err: errors.New("locked")}, nopLogger{}).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
