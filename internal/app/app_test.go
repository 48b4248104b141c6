package app

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FootSpaReservation/internal/config"
	"github.com/m04kA/SMC-FootSpaReservation/internal/infra/storage/database"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/logger"
)

const testDate = "2024-05-01"

type testServer struct {
	*httptest.Server
	client *http.Client
	db     *sql.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "reserve.db")
	cfg.Venue.Timezone = "UTC"
	require.NoError(t, cfg.Validate())

	db, dialect, err := database.Open(context.Background(), cfg.Database, time.Now().UTC())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log, err := logger.New("", "error", logger.WithOutput(io.Discard))
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	application, err := New(Deps{
		Config:     cfg,
		DB:         db,
		Dialect:    dialect,
		Logger:     log,
		Registerer: registry,
		Gatherer:   registry,
	})
	require.NoError(t, err)
	t.Cleanup(application.Close)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	return &testServer{
		Server: srv,
		client: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
		},
		db: db,
	}
}

func (s *testServer) postForm(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := s.client.PostForm(s.URL+path, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func (s *testServer) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := s.client.Get(s.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func reservationForm(name, start, end string, seats ...string) url.Values {
	return url.Values{
		"name":         {name},
		"payment":      {"카드"},
		"date":         {testDate},
		"start_time":   {start},
		"end_time":     {end},
		"seats":        seats,
		"people_count": {"1"},
	}
}

type scheduleResponse struct {
	Labels []string `json:"labels"`
	Seats  []struct {
		Seat  int      `json:"seat"`
		Cells []string `json:"cells"`
	} `json:"seats"`
}

func (r scheduleResponse) cell(t *testing.T, seat int, label string) string {
	t.Helper()
	for i, l := range r.Labels {
		if l == label {
			return r.Seats[seat-1].Cells[i]
		}
	}
	t.Fatalf("label %s not found", label)
	return ""
}

func TestApp_KimLeeParkScenario(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := srv.postForm(t, "/add", reservationForm("Kim", "10:00", "10:30", "1", "2"))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/?date="+testDate, resp.Header.Get("Location"))

	resp, body := srv.postForm(t, "/add", reservationForm("Lee", "10:15", "10:45", "2", "3"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "선택한 좌석은 해당 시간에 이미 예약되어 있습니다.", body)

	resp, _ = srv.postForm(t, "/add", reservationForm("Park", "10:15", "10:45", "3"))
	require.Equal(t, http.StatusFound, resp.StatusCode)

	// ids: Kim=1, Park=2
	resp, body = srv.get(t, "/api/v1/reservations?date="+testDate)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Reservations []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"reservations"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Equal(t, 2, list.Total)
	assert.Equal(t, int64(1), list.Reservations[0].ID)
	assert.Equal(t, "Kim", list.Reservations[0].Name)
	assert.Equal(t, int64(2), list.Reservations[1].ID)
	assert.Equal(t, "Park", list.Reservations[1].Name)

	resp, body = srv.get(t, "/api/v1/schedule?date="+testDate)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var schedule scheduleResponse
	require.NoError(t, json.Unmarshal([]byte(body), &schedule))
	require.Len(t, schedule.Labels, 144)
	require.Len(t, schedule.Seats, 12)

	assert.Equal(t, "Kim", schedule.cell(t, 1, "10:15"))
	assert.Equal(t, "Kim", schedule.cell(t, 2, "10:15"))
	assert.Equal(t, "Park", schedule.cell(t, 3, "10:15"))
	assert.Equal(t, "", schedule.cell(t, 4, "10:15"))
	assert.Equal(t, "", schedule.cell(t, 1, "10:30"))

	resp, body = srv.get(t, "/?date="+testDate)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "Kim")
	assert.Contains(t, body, "Park")
	assert.NotContains(t, body, "Lee")
}

func TestApp_DeleteIsIdempotent(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := srv.postForm(t, "/add", reservationForm("Kim", "10:00", "10:30", "1"))
	require.Equal(t, http.StatusFound, resp.StatusCode)

	resp, _ = srv.get(t, "/delete/1?date="+testDate)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/?date="+testDate, resp.Header.Get("Location"))

	resp, _ = srv.get(t, "/delete/1")
	assert.Equal(t, http.StatusFound, resp.StatusCode, "unknown id still redirects")

	resp, _ = srv.get(t, "/api/v1/reservations/1")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/reservations/1", nil)
	require.NoError(t, err)
	delResp, err := srv.client.Do(req)
	require.NoError(t, err)
	delResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)
}

func TestApp_JSONCreateAndRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	payload := `{"name":"Choi","payment":"bank_transfer","date":"2024-05-01","startTime":"13:00","endTime":"14:30","seats":[5,4],"peopleCount":2,"note":"생일"}`
	resp, err := srv.client.Post(srv.URL+"/api/v1/reservations", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	_, body := srv.get(t, "/api/v1/reservations/1")
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &got))

	assert.Equal(t, created, got)
	assert.Equal(t, "bank_transfer", got["payment"])
	assert.Equal(t, "계좌이체", got["paymentLabel"])
	assert.Equal(t, []interface{}{4.0, 5.0}, got["seats"])
	assert.Equal(t, "생일", got["note"])

	conflict, err := srv.client.Post(srv.URL+"/api/v1/reservations", "application/json",
		strings.NewReader(`{"name":"Jung","payment":"cash","date":"2024-05-01","startTime":"14:00","endTime":"15:00","seats":[4],"peopleCount":1}`))
	require.NoError(t, err)
	conflict.Body.Close()
	assert.Equal(t, http.StatusConflict, conflict.StatusCode)
}

func TestApp_ValidationMessages(t *testing.T) {
	srv := newTestServer(t)

	resp, body := srv.postForm(t, "/add", reservationForm("Kim", "11:00", "10:00", "1"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "종료 시간은 시작 시간보다 늦어야 합니다", body)

	resp, body = srv.postForm(t, "/add", reservationForm("Kim", "10:00", "11:00"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "좌석을 1개 이상 선택해 주세요 (1~12번)", body)
}

func TestApp_HealthAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	resp, body := srv.get(t, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)

	srv.postForm(t, "/add", reservationForm("Kim", "10:00", "10:30", "1"))
	srv.postForm(t, "/add", reservationForm("Lee", "10:00", "10:30", "1"))

	resp, body = srv.get(t, "/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `reservations_total{outcome="created"`)
	assert.Contains(t, body, `reservations_total{outcome="conflict"`)
	assert.Contains(t, body, `route="/add"`)
}

func TestApp_DayWithFirstVersionRows(t *testing.T) {
	srv := newTestServer(t)

	// строки, перенесенные из файла первой версии: места свободным текстом, пустое время и оплата
	_, err := srv.db.Exec(`INSERT INTO reservations
		(name, payment, reserve_date, start_time, end_time, seats, people_count) VALUES
		('Lee', '현금', ?, '12:00', '13:00', '3번', 1),
		('Choi', '', ?, '', '', '창가', 0),
		('Park', '카드', ?, '14:00', '15:00', '13', 1)`, testDate, testDate, testDate)
	require.NoError(t, err)

	resp, body := srv.get(t, "/?date="+testDate)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Lee")
	assert.Contains(t, body, "Choi")

	resp, body = srv.postForm(t, "/add", reservationForm("Kim", "12:30", "13:00", "3"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "선택한 좌석은 해당 시간에 이미 예약되어 있습니다.", body)

	resp, _ = srv.postForm(t, "/add", reservationForm("Kim", "12:30", "13:00", "4"))
	require.Equal(t, http.StatusFound, resp.StatusCode)

	resp, body = srv.get(t, "/api/v1/schedule?date="+testDate)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var schedule scheduleResponse
	require.NoError(t, json.Unmarshal([]byte(body), &schedule))
	assert.Equal(t, "Lee", schedule.cell(t, 3, "12:00"))
	assert.Equal(t, "Kim", schedule.cell(t, 4, "12:30"))
	assert.Equal(t, "", schedule.cell(t, 12, "14:00"))
}
