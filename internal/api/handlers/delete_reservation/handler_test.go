package delete_reservation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	deleted []int64
	err     error
}

func (f *fakeService) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h http.HandlerFunc, method, target string, id string) *httptest.ResponseRecorder {
	req := mux.SetURLVars(httptest.NewRequest(method, target, nil), map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestHandleRedirect(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := serve(h.HandleRedirect, http.MethodGet, "/delete/3?date=2024-05-01", "3")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/?date=2024-05-01", rec.Header().Get("Location"))
	assert.Equal(t, []int64{3}, svc.deleted)

	rec = serve(h.HandleRedirect, http.MethodGet, "/delete/4?date=garbage", "4")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestHandleRedirect_Errors(t *testing.T) {
	rec := serve(NewHandler(&fakeService{}, nopLogger{}).HandleRedirect, http.MethodGet, "/delete/x", "x")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(NewHandler(&fakeService{err: errors.New("locked")}, nopLogger{}).HandleRedirect, http.MethodGet, "/delete/1", "1")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleAPI(t *testing.T) {
	svc := &fakeService{}
	rec := serve(NewHandler(svc, nopLogger{}).HandleAPI, http.MethodDelete, "/api/v1/reservations/9", "9")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, []int64{9}, svc.deleted)

	rec = serve(NewHandler(&fakeService{err: errors.New("locked")}, nopLogger{}).HandleAPI, http.MethodDelete, "/api/v1/reservations/9", "9")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
