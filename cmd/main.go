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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-DayOffBot/internal/api/handlers"
	webhookHandler "github.com/m04kA/SMC-DayOffBot/internal/api/handlers/webhook"
	"github.com/m04kA/SMC-DayOffBot/internal/api/middleware"
	"github.com/m04kA/SMC-DayOffBot/internal/config"
	vacationRepo "github.com/m04kA/SMC-DayOffBot/internal/infra/storage/vacation"
	vacationFileRepo "github.com/m04kA/SMC-DayOffBot/internal/infra/storage/vacationfile"
	"github.com/m04kA/SMC-DayOffBot/internal/integrations/telegram"
	calendarService "github.com/m04kA/SMC-DayOffBot/internal/service/calendar"
	addVacationUC "github.com/m04kA/SMC-DayOffBot/internal/usecase/add_vacation"
	cancelAllVacationsUC "github.com/m04kA/SMC-DayOffBot/internal/usecase/cancel_all_vacations"
	cancelVacationUC "github.com/m04kA/SMC-DayOffBot/internal/usecase/cancel_vacation"
	processMessageUC "github.com/m04kA/SMC-DayOffBot/internal/usecase/process_message"
	showCalendarUC "github.com/m04kA/SMC-DayOffBot/internal/usecase/show_calendar"
	"github.com/m04kA/SMC-DayOffBot/pkg/dbmetrics"
	"github.com/m04kA/SMC-DayOffBot/pkg/logger"
	"github.com/m04kA/SMC-DayOffBot/pkg/metrics"
	"github.com/m04kA/SMC-DayOffBot/pkg/txmanager"
)

const rateLimitTTL = 3 * time.Minute

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(config.DefaultPath)
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

	log.Info("Starting SMC-DayOffBot...")

	loc, err := cfg.Calendar.Location()
	if err != nil {
		log.Fatal("Invalid calendar timezone: %v", err)
	}
	log.Info("Calendar timezone: %s", loc)

	// Инициализируем метрики (если включены). nil *metrics.Metrics безопасен для вызовов
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Выбираем хранилище календаря
	var repository calendarService.Repository

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := openDatabase(cfg.Database)
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)
		repository = vacationRepo.NewRepository(wrappedDB, txmanager.NewTransactionManager(wrappedDB))

	default:
		repository = vacationFileRepo.NewRepository(cfg.Storage.File)
		log.Info("Using JSON file storage: %s", cfg.Storage.File)
	}

	// Инициализируем клиент Telegram
	tgClient := telegram.NewClient(
		cfg.Telegram.APIURL,
		cfg.Telegram.Token,
		time.Duration(cfg.Telegram.Timeout)*time.Second,
		metricsCollector,
		log,
	)

	if cfg.Telegram.WebhookURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Telegram.Timeout)*time.Second)
		if err := tgClient.SetWebhook(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.WebhookSecret); err != nil {
			// Вебхук мог быть зарегистрирован раньше, поэтому сервер все равно запускаем
			log.Error("Failed to register webhook: %v", err)
		}
		cancel()
	}

	// Инициализируем сервисы и use cases
	calendarSvc := calendarService.NewService(repository, metricsCollector, log)

	addVacationUseCase := addVacationUC.NewUseCase(calendarSvc, metricsCollector, loc, log)
	cancelVacationUseCase := cancelVacationUC.NewUseCase(calendarSvc, log)
	cancelAllVacationsUseCase := cancelAllVacationsUC.NewUseCase(calendarSvc, log)
	showCalendarUseCase := showCalendarUC.NewUseCase(calendarSvc, loc, log)

	processMessageUseCase := processMessageUC.NewUseCase(
		addVacationUseCase,
		cancelVacationUseCase,
		cancelAllVacationsUseCase,
		showCalendarUseCase,
		metricsCollector,
		loc,
		log,
	)

	// Инициализируем handlers
	webhook := webhookHandler.NewHandler(processMessageUseCase, tgClient, log)

	var webhookChain http.Handler = http.HandlerFunc(webhook.Handle)
	webhookChain = middleware.WebhookSecret(cfg.Telegram.WebhookSecret, log)(webhookChain)
	if cfg.Telegram.WebhookSecret == "" {
		log.Warn("Webhook secret is not set, updates are accepted without verification")
	}

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, rateLimitTTL)
		go limiter.Cleanup(time.Minute, stopCh)
		webhookChain = limiter.Middleware(webhookChain)
		log.Info("Rate limit enabled: %.1f rps, burst %d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Вебхук Telegram: POST - апдейт, остальные методы - статус бота
	r.Handle(cfg.Server.WebhookPath, webhookChain)

	// X-Forwarded-For учитываем только от доверенных прокси, паника в handler превращается в 500
	trustedProxies, err := cfg.Server.TrustedProxyNets()
	if err != nil {
		log.Fatal("Invalid trusted proxies: %v", err)
	}
	if len(trustedProxies) > 0 {
		log.Info("Trusting proxy headers from %v", cfg.Server.TrustedProxies)
	}

	root := gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(log),
		gorillaHandlers.PrintRecoveryStack(true),
	)(middleware.TrustedProxyHeaders(trustedProxies)(r))

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      root,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s, webhook at %s", addr, cfg.Server.WebhookPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновые задачи (статистика pool, очистка rate limiter)
	close(stopCh)

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

// openDatabase открывает пул соединений PostgreSQL и проверяет его
func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
