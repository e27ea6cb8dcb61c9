package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createDraftHandler "github.com/corypride/pictureMePerfect360/internal/api/handlers/create_draft"
	getAvailableSlotsHandler "github.com/corypride/pictureMePerfect360/internal/api/handlers/get_available_slots"
	getDraftHandler "github.com/corypride/pictureMePerfect360/internal/api/handlers/get_draft"
	getReservationsHandler "github.com/corypride/pictureMePerfect360/internal/api/handlers/get_reservations"
	getSubmissionHandler "github.com/corypride/pictureMePerfect360/internal/api/handlers/get_submission"
	healthHandler "github.com/corypride/pictureMePerfect360/internal/api/handlers/health"
	retrySubmissionHandler "github.com/corypride/pictureMePerfect360/internal/api/handlers/retry_submission"
	stripeWebhookHandler "github.com/corypride/pictureMePerfect360/internal/api/handlers/stripe_webhook"
	submitBookingHandler "github.com/corypride/pictureMePerfect360/internal/api/handlers/submit_booking"
	updateDraftHandler "github.com/corypride/pictureMePerfect360/internal/api/handlers/update_draft"
	"github.com/corypride/pictureMePerfect360/internal/api/middleware"
	"github.com/corypride/pictureMePerfect360/internal/config"
	reservationRepo "github.com/corypride/pictureMePerfect360/internal/infra/storage/reservation"
	"github.com/corypride/pictureMePerfect360/internal/integrations/stripepay"
	"github.com/corypride/pictureMePerfect360/internal/notifications/mailer"
	draftService "github.com/corypride/pictureMePerfect360/internal/service/draft"
	submissionService "github.com/corypride/pictureMePerfect360/internal/service/submission"
	createReservationUC "github.com/corypride/pictureMePerfect360/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/corypride/pictureMePerfect360/internal/usecase/get_available_slots"
	"github.com/corypride/pictureMePerfect360/pkg/logger"
	"github.com/corypride/pictureMePerfect360/pkg/metrics"
	"github.com/corypride/pictureMePerfect360/pkg/txmanager"
)

// sweepInterval период очистки протухших черновиков
const sweepInterval = 10 * time.Minute

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

	log.Info("Starting pictureMePerfect360 booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Применяем миграции
	if err := runMigrations(cfg); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations applied")

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

	// Инициализируем интеграции
	stripeClient := stripepay.NewClient(
		cfg.Stripe.SecretKey,
		cfg.Stripe.WebhookSecret,
		cfg.Stripe.SuccessURL,
		cfg.Stripe.CancelURL,
		log,
	)
	log.Info("Stripe client initialized")

	notifier := mailer.New(mailer.Config{
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		Username:   cfg.SMTP.Username,
		Password:   cfg.SMTP.Password,
		From:       cfg.SMTP.From,
		AdminEmail: cfg.SMTP.AdminEmail,
		SiteName:   cfg.SMTP.SiteName,
	}, log)

	// Инициализируем репозиторий и транзакционный менеджер
	reservations := reservationRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	drafts := draftService.NewService(
		reservations,
		time.Duration(cfg.Booking.DraftTTLMinutes)*time.Minute,
		log,
	)

	var submissionMetrics submissionService.Metrics
	if cfg.Metrics.Enabled {
		submissionMetrics = metricsCollector
	}
	submissions := submissionService.NewService(
		drafts,
		stripeClient,
		notifier,
		submissionMetrics,
		time.Duration(cfg.Booking.ConfirmTimeoutSeconds)*time.Second,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(reservations, log)
	createReservationUseCase := createReservationUC.NewUseCase(reservations, txMgr, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createDraft := createDraftHandler.NewHandler(drafts, log)
	getDraft := getDraftHandler.NewHandler(drafts, log)
	updateDraft := updateDraftHandler.NewHandler(drafts, log)
	submitBooking := submitBookingHandler.NewHandler(submissions, log)
	getSubmission := getSubmissionHandler.NewHandler(submissions, log)
	retrySubmission := retrySubmissionHandler.NewHandler(submissions, log)
	stripeWebhook := stripeWebhookHandler.NewHandler(stripeClient, submissions, createReservationUseCase, log)
	getReservations := getReservationsHandler.NewHandler(reservations, log)
	health := healthHandler.NewHandler(db, cfg.Stripe.SecretKey != "", cfg.SMTP.Host != "", log)

	// Фоновая очистка протухших черновиков
	sweeperCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go drafts.RunSweeper(sweeperCtx, sweepInterval)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Webhook без /api/v1 префикса - путь задается в настройках Stripe
	r.HandleFunc("/webhooks/stripe", stripeWebhook.Handle).Methods(http.MethodPost)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Доступность слотов
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Черновики бронирования
	api.HandleFunc("/drafts", createDraft.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}", getDraft.Handle).Methods(http.MethodGet)
	api.HandleFunc("/drafts/{draftId}", updateDraft.Handle).Methods(http.MethodPatch)

	// Попытка бронирования
	api.HandleFunc("/drafts/{draftId}/submit", submitBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}/submission", getSubmission.Handle).Methods(http.MethodGet)
	api.HandleFunc("/drafts/{draftId}/submission/retry", retrySubmission.Handle).Methods(http.MethodPost)

	// Список бронирований (для администратора)
	api.HandleFunc("/reservations", getReservations.Handle).Methods(http.MethodGet)

	// Health check
	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

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
	stopSweeper()

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

// runMigrations применяет миграции схемы до подключения основного пула
func runMigrations(cfg *config.Config) error {
	m, err := migrate.New("file://"+cfg.Database.MigrationsPath, cfg.Database.MigrateURL())
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
