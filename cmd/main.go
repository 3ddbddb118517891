package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createReservationHandler "github.com/timisoara-dining/reservation-service/internal/api/handlers/create_reservation"
	getReservationHandler "github.com/timisoara-dining/reservation-service/internal/api/handlers/get_reservation"
	getReservationStatsHandler "github.com/timisoara-dining/reservation-service/internal/api/handlers/get_reservation_stats"
	listAvailableSlotsHandler "github.com/timisoara-dining/reservation-service/internal/api/handlers/list_available_slots"
	listReservationsHandler "github.com/timisoara-dining/reservation-service/internal/api/handlers/list_reservations"
	updateReservationStatusHandler "github.com/timisoara-dining/reservation-service/internal/api/handlers/update_reservation_status"
	"github.com/timisoara-dining/reservation-service/internal/api/middleware"
	"github.com/timisoara-dining/reservation-service/internal/config"
	inventoryRepo "github.com/timisoara-dining/reservation-service/internal/infra/storage/inventory"
	reservationRepo "github.com/timisoara-dining/reservation-service/internal/infra/storage/reservation"
	reservationsService "github.com/timisoara-dining/reservation-service/internal/service/reservations"
	createReservationUC "github.com/timisoara-dining/reservation-service/internal/usecase/create_reservation"
	listAvailableSlotsUC "github.com/timisoara-dining/reservation-service/internal/usecase/list_available_slots"
	"github.com/timisoara-dining/reservation-service/pkg/dbmetrics"
	"github.com/timisoara-dining/reservation-service/pkg/logger"
	"github.com/timisoara-dining/reservation-service/pkg/metrics"
	"github.com/timisoara-dining/reservation-service/pkg/simpletxmanager"
	"github.com/timisoara-dining/reservation-service/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting reservation-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		inventoryRepository   *inventoryRepo.Repository
		reservationRepository *reservationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		inventoryRepository = inventoryRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		inventoryRepository = inventoryRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		inventoryRepository,
		txMgr,
		log,
	)

	listAvailableSlotsUseCase := listAvailableSlotsUC.NewUseCase(
		inventoryRepository,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	listAvailableSlots := listAvailableSlotsHandler.NewHandler(listAvailableSlotsUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	getReservationStats := getReservationStatsHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Гостевые маршруты ---
	// Доступные слоты в окне бронирования
	api.HandleFunc("/slots/available", listAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание брони
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// --- Маршруты персонала ---
	// Счётчики для дашборда. Регистрируется до /{reservationId},
	// иначе mux сматчит "stats" как ID брони.
	api.HandleFunc("/reservations/stats", getReservationStats.Handle).Methods(http.MethodGet)

	// Список всех броней
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Бронь по ID (страница подтверждения)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Смена статуса брони
	api.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
