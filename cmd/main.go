package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/m04kA/SMC-FootSpaReservation/internal/app"
	"github.com/m04kA/SMC-FootSpaReservation/internal/config"
	"github.com/m04kA/SMC-FootSpaReservation/internal/infra/storage/database"
	"github.com/m04kA/SMC-FootSpaReservation/pkg/logger"
)

const defaultConfigPath = "config.toml"

func main() {
	// .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	configPath := os.Getenv("FOOTSPA_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level, logger.WithFormat(cfg.Logs.Format))
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-FootSpaReservation...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Venue.Location()
	if err != nil {
		log.Fatal("Failed to load venue timezone: %v", err)
	}

	// Подключаемся к базе данных и применяем схему
	openCtx, cancelOpen := context.WithTimeout(context.Background(), 10*time.Second)
	db, dialect, err := database.Open(openCtx, cfg.Database, time.Now().In(location))
	cancelOpen()
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Info("Successfully connected to %s", database.Describe(cfg.Database, dialect))

	application, err := app.New(app.Deps{
		Config:     cfg,
		DB:         db,
		Dialect:    dialect,
		Logger:     log,
		Registerer: prometheus.DefaultRegisterer,
		Gatherer:   prometheus.DefaultGatherer,
	})
	if err != nil {
		log.Fatal("Failed to initialize application: %v", err)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      application.Handler(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	application.Close()

	log.Info("Server stopped gracefully")
}
