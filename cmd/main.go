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
	"golang.org/x/time/rate"

	changeStatusHandler "github.com/m04kA/SMC-FieldReservationService/internal/api/handlers/change_status"
	createFieldHandler "github.com/m04kA/SMC-FieldReservationService/internal/api/handlers/create_field"
	createWindowHandler "github.com/m04kA/SMC-FieldReservationService/internal/api/handlers/create_window"
	deleteFieldHandler "github.com/m04kA/SMC-FieldReservationService/internal/api/handlers/delete_field"
	deleteReservationHandler "github.com/m04kA/SMC-FieldReservationService/internal/api/handlers/delete_reservation"
	deleteWindowHandler "github.com/m04kA/SMC-FieldReservationService/internal/api/handlers/delete_window"
	getAvailabilityHandler "github.com/m04kA/SMC-FieldReservationService/internal/api/handlers/get_availability"
	getFieldHandler "github.com/m04kA/SMC-FieldReservationService/internal/api/handlers/get_field"
	getReservationHandler "github.com/m04kA/SMC-FieldReservationService/internal/api/handlers/get_reservation"
	getStatsHandler "github.com/m04kA/SMC-FieldReservationService/internal/api/handlers/get_stats"
	getWindowHandler "github.com/m04kA/SMC-FieldReservationService/internal/api/handlers/get_window"
	healthHandler "github.com/m04kA/SMC-FieldReservationService/internal/api/handlers/health"
	listFieldsHandler "github.com/m04kA/SMC-FieldReservationService/internal/api/handlers/list_fields"
	listReservationsHandler "github.com/m04kA/SMC-FieldReservationService/internal/api/handlers/list_reservations"
	listWindowsHandler "github.com/m04kA/SMC-FieldReservationService/internal/api/handlers/list_windows"
	submitReservationHandler "github.com/m04kA/SMC-FieldReservationService/internal/api/handlers/submit_reservation"
	updateFieldHandler "github.com/m04kA/SMC-FieldReservationService/internal/api/handlers/update_field"
	updateWindowHandler "github.com/m04kA/SMC-FieldReservationService/internal/api/handlers/update_window"
	"github.com/m04kA/SMC-FieldReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-FieldReservationService/internal/config"
	fieldRepo "github.com/m04kA/SMC-FieldReservationService/internal/infra/storage/field"
	reservationRepo "github.com/m04kA/SMC-FieldReservationService/internal/infra/storage/reservation"
	windowRepo "github.com/m04kA/SMC-FieldReservationService/internal/infra/storage/window"
	"github.com/m04kA/SMC-FieldReservationService/internal/integrations/mailer"
	"github.com/m04kA/SMC-FieldReservationService/internal/notification"
	calendarService "github.com/m04kA/SMC-FieldReservationService/internal/service/calendar"
	catalogService "github.com/m04kA/SMC-FieldReservationService/internal/service/catalog"
	reservationsService "github.com/m04kA/SMC-FieldReservationService/internal/service/reservations"
	changeStatusUC "github.com/m04kA/SMC-FieldReservationService/internal/usecase/change_status"
	getDaySlotsUC "github.com/m04kA/SMC-FieldReservationService/internal/usecase/get_day_slots"
	submitReservationUC "github.com/m04kA/SMC-FieldReservationService/internal/usecase/submit_reservation"
	"github.com/m04kA/SMC-FieldReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldReservationService/pkg/logger"
	"github.com/m04kA/SMC-FieldReservationService/pkg/metrics"
	"github.com/m04kA/SMC-FieldReservationService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		configPath = path
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-FieldReservationService...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone %q: %v", cfg.Booking.Timezone, err)
	}

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

	// Обёртка БД: с метриками пула и запросов или без
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.New(db)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	fieldRepository := fieldRepo.NewRepository(wrappedDB)
	windowRepository := windowRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB, txMgr)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(
		fieldRepository,
		time.Duration(cfg.Catalog.CacheTTL)*time.Second,
		log,
	)
	calendarSvc := calendarService.NewService(
		windowRepository,
		reservationRepository,
		catalogSvc,
		txMgr,
		log,
	)
	reservationsSvc := reservationsService.NewService(reservationRepository, windowRepository, log)

	// Инициализируем отправку уведомлений
	sender, closeSender, err := newSender(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize notification sender: %v", err)
	}
	defer closeSender()

	dispatcher := notification.NewDispatcher(sender, notification.Options{
		Workers:      cfg.Notifications.Workers,
		QueueSize:    cfg.Notifications.QueueSize,
		Timeout:      time.Duration(cfg.Notifications.Timeout) * time.Second,
		MaxAttempts:  cfg.Notifications.MaxAttempts,
		RetryBackoff: time.Duration(cfg.Notifications.RetryBackoff) * time.Millisecond,
	}, metricsCollector, log)
	dispatcher.Start()
	log.Info("Notification dispatcher started (driver=%s, workers=%d, queue=%d)",
		cfg.Notifications.Driver, cfg.Notifications.Workers, cfg.Notifications.QueueSize)

	notifier := notification.NewNotifier(
		notification.NewComposer(location),
		dispatcher,
		catalogSvc,
		time.Duration(cfg.Notifications.LookupTimeout)*time.Millisecond,
		log,
	)

	// Инициализируем use cases
	submitReservationUseCase := submitReservationUC.NewUseCase(
		reservationRepository,
		catalogSvc,
		notifier,
		metricsCollector,
		submitReservationUC.Options{MaxNotesLength: cfg.Booking.MaxNotesLength},
		log,
	)
	changeStatusUseCase := changeStatusUC.NewUseCase(
		reservationRepository,
		notifier,
		metricsCollector,
		log,
	)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		windowRepository,
		reservationRepository,
		txMgr,
		location,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getDaySlotsUseCase, log)
	submitReservation := submitReservationHandler.NewHandler(submitReservationUseCase, log)
	changeStatus := changeStatusHandler.NewHandler(changeStatusUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	getStats := getStatsHandler.NewHandler(reservationsSvc, log)
	listWindows := listWindowsHandler.NewHandler(calendarSvc, log)
	getWindow := getWindowHandler.NewHandler(calendarSvc, log)
	createWindow := createWindowHandler.NewHandler(calendarSvc, log)
	updateWindow := updateWindowHandler.NewHandler(calendarSvc, log)
	deleteWindow := deleteWindowHandler.NewHandler(calendarSvc, log)
	listFields := listFieldsHandler.NewHandler(catalogSvc, log)
	getField := getFieldHandler.NewHandler(catalogSvc, log)
	createField := createFieldHandler.NewHandler(catalogSvc, log)
	updateField := updateFieldHandler.NewHandler(catalogSvc, log)
	deleteField := deleteFieldHandler.NewHandler(catalogSvc, log)
	health := healthHandler.NewHandler(wrappedDB, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Timeout(time.Duration(cfg.Server.RequestTimeout) * time.Second))

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/fields", listFields.Handle).Methods(http.MethodGet)
	api.HandleFunc("/fields/{id}", getField.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/windows", listWindows.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/windows/{id}", getWindow.Handle).Methods(http.MethodGet)

	// Создание бронирования гостем (с ограничением частоты по IP)
	var submit http.Handler = http.HandlerFunc(submitReservation.Handle)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst, cfg.RateLimit.TrustForwardedFor)
		submit = limiter.Middleware(submit)
		log.Info("Rate limit for reservations: %.2f req/s, burst=%d, trust_forwarded_for=%t", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.TrustForwardedFor)
	}
	api.Handle("/reservations", submit).Methods(http.MethodPost)

	// ============================================================
	// STAFF ROUTES (требуют Bearer токен персонала)
	// ============================================================

	staff := api.PathPrefix("").Subrouter()
	staff.Use(middleware.NewStaffAuth(cfg.Auth.JWTSecret, cfg.Auth.StaffRoles, log).Middleware)

	// --- Бронирования ---
	staff.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/reservations/{id}/status", changeStatus.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/reservations/{id}", deleteReservation.Handle).Methods(http.MethodDelete)
	staff.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

	// --- Календарь ---
	staff.HandleFunc("/calendar/windows", createWindow.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/calendar/windows/{id}", updateWindow.Handle).Methods(http.MethodPut)
	staff.HandleFunc("/calendar/windows/{id}", deleteWindow.Handle).Methods(http.MethodDelete)

	// --- Поля ---
	staff.HandleFunc("/admin/fields", listFields.HandleAll).Methods(http.MethodGet)
	staff.HandleFunc("/fields", createField.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/fields/{id}", updateField.Handle).Methods(http.MethodPut)
	staff.HandleFunc("/fields/{id}", deleteField.Handle).Methods(http.MethodDelete)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Досылаем уведомления из очереди
	if err := dispatcher.Stop(shutdownCtx); err != nil {
		log.Error("Notification queue was not drained: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}

// newSender выбирает способ доставки писем по notifications.driver
func newSender(cfg *config.Config, log *logger.Logger) (notification.Sender, func(), error) {
	switch cfg.Notifications.Driver {
	case "smtp":
		return mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		}), func() {}, nil
	case "amqp":
		sender, err := mailer.NewAMQPSender(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			return nil, nil, err
		}
		return sender, func() {
			if err := sender.Close(); err != nil {
				log.Warn("Failed to close AMQP connection: %v", err)
			}
		}, nil
	default:
		return mailer.NewLogSender(log), func() {}, nil
	}
}
