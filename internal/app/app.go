package app

import (
	"database/sql"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createReservationHandler "github.com/m04kA/SMC-FootSpaReservation/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/SMC-FootSpaReservation/internal/api/handlers/delete_reservation"
	getReservationHandler "github.com/m04kA/SMC-FootSpaReservation/internal/api/handlers/get_reservation"
	getScheduleHandler "github.com/m04kA/SMC-FootSpaReservation/internal/api/handlers/get_schedule"
	healthHandler "github.com/m04kA/SMC-FootSpaReservation/internal/api/handlers/health"
	listReservationsHandler "github.com/m04kA/SMC-FootSpaReservation/internal/api/handlers/list_reservations"
	schedulePageHandler "github.com/m04kA/SMC-FootSpaReservation/internal/api/handlers/schedule_page"
	"github.com/m04kA/SMC-FootSpaReservation/internal/api/middleware"
	"github.com/m04kA/SMC-FootSpaReservation/internal/api/view"
	"github.com/m04kA/SMC-FootSpaReservation/internal/config"
	reservationRepo "github.com/m04kA/SMC-FootSpaReservation/internal/infra/storage/reservation"
	reservationsService "github.com/m04kA/SMC-FootSpaReservation/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-FootSpaReservation/internal/usecase/create_reservation"
	getScheduleUC "github.com/m04kA/SMC-FootSpaReservation/internal/usecase/get_schedule"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/dbmetrics"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/metrics"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/sqlbuilder"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/txmanager"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Deps внешние зависимости приложения
type Deps struct {
	Config  *config.Config
	DB      *sql.DB
	Dialect sqlbuilder.Dialect
	Logger  Logger

	// Registerer и Gatherer используются, только если метрики включены
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// App собранное HTTP приложение
type App struct {
	router    *mux.Router
	stopCh    chan struct{}
	closeOnce sync.Once
}

// New собирает репозитории, use cases, сервисы и handlers и настраивает роутер
func New(deps Deps) (*App, error) {
	cfg := deps.Config
	log := deps.Logger

	location, err := cfg.Venue.Location()
	if err != nil {
		return nil, fmt.Errorf("app: venue timezone: %w", err)
	}

	stopCh := make(chan struct{})

	// Метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		wrappedDB        *dbmetrics.DB
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, deps.Registerer)
		wrappedDB = dbmetrics.WrapWithDefault(deps.DB, metricsCollector, stopCh)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	} else {
		wrappedDB = dbmetrics.Wrap(deps.DB, nil)
	}

	// Репозиторий и менеджер транзакций
	reservationRepository := reservationRepo.NewRepository(wrappedDB, deps.Dialect)
	txMgr := txmanager.NewTransactionManager(
		wrappedDB,
		txmanager.WithSerializableOptions(deps.Dialect.SerializableTxOptions()),
	)

	// Сервисы и use cases
	reservationsSvc := reservationsService.NewService(reservationRepository, metricsCollector, log)

	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		txMgr,
		metricsCollector,
		log,
		location,
		cfg.Venue.SlotStepMinutes,
	)

	getScheduleUseCase, err := getScheduleUC.NewUseCase(
		reservationRepository,
		log,
		location,
		getScheduleUC.Hours{
			Open:        cfg.Venue.OpenTimeString(),
			Close:       cfg.Venue.CloseTimeString(),
			StepMinutes: cfg.Venue.SlotStepMinutes,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	// Handlers
	schedulePage := schedulePageHandler.NewHandler(getScheduleUseCase, renderer, cfg.Venue.SlotStepMinutes, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	health := healthHandler.NewHandler(wrappedDB, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	r.HandleFunc("/healthz", health.Handle).Methods(http.MethodGet)

	// HTML страница
	r.HandleFunc("/", schedulePage.Handle).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/add", createReservation.HandleForm).Methods(http.MethodPost)
	r.HandleFunc("/delete/{id:[0-9]+}", deleteReservation.HandleRedirect).Methods(http.MethodGet)

	// JSON API
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations", createReservation.HandleJSON).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id:[0-9]+}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id:[0-9]+}", deleteReservation.HandleAPI).Methods(http.MethodDelete)
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	return &App{router: r, stopCh: stopCh}, nil
}

// Handler корневой HTTP handler
func (a *App) Handler() http.Handler {
	return a.router
}

// Close останавливает фоновый сбор статистики пула соединений
func (a *App) Close() {
	a.closeOnce.Do(func() {
		close(a.stopCh)
	})
}
