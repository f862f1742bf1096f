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
	"github.com/redis/go-redis/v9"

	commitServiceImportHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/commit_service_import"
	getFittableSlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_fittable_slots"
	getImportTemplateHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_import_template"
	previewServiceImportHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/preview_service_import"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	serviceRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/service"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/schedulingservice"
	commitServiceImportUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/commit_service_import"
	getFittableSlotsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_fittable_slots"
	previewServiceImportUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/preview_service_import"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
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

	log.Info("Starting SMC-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	// nil *metrics.Metrics безопасен: все Record* методы проверяют получателя
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

	// Обёртка снимает метрики запросов; без метрик работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем клиента сервиса расписаний
	var slotsFetcher schedulingservice.SlotsFetcher = schedulingservice.NewClient(
		cfg.SchedulingService.URL,
		time.Duration(cfg.SchedulingService.Timeout)*time.Second,
		log,
	)
	log.Info("Scheduling service client initialized (url=%s, timeout=%ds)",
		cfg.SchedulingService.URL, cfg.SchedulingService.Timeout)

	// Кеш свободных слотов в Redis (если включен)
	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Кеш необязателен: ошибки Redis логируются клиентом и не ломают запросы
			log.Warn("Redis is unavailable at %s: %v", cfg.Cache.Addr, err)
		}
		cancel()

		slotsFetcher = schedulingservice.NewCachedClient(
			slotsFetcher,
			schedulingservice.NewRedisCache(redisClient),
			time.Duration(cfg.Cache.TTLSeconds)*time.Second,
			log,
		)
		log.Info("Open slots cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTLSeconds)
	}

	// Таблица алиасов колонок для импорта
	aliases, err := cfg.Import.FieldAliases()
	if err != nil {
		log.Fatal("Invalid import aliases: %v", err)
	}

	// Инициализируем use cases
	getFittableSlotsUseCase := getFittableSlotsUC.NewUseCase(
		serviceRepository,
		slotsFetcher,
		metricsCollector,
		log,
	)

	previewServiceImportUseCase := previewServiceImportUC.NewUseCase(
		serviceRepository,
		aliases,
		cfg.Import.MaxFileSizeBytes,
		metricsCollector,
		log,
	)

	commitServiceImportUseCase := commitServiceImportUC.NewUseCase(
		serviceRepository,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getFittableSlots := getFittableSlotsHandler.NewHandler(getFittableSlotsUseCase, log)
	getImportTemplate := getImportTemplateHandler.NewHandler(log)
	previewServiceImport := previewServiceImportHandler.NewHandler(previewServiceImportUseCase, cfg.Import.MaxFileSizeBytes, log)
	commitServiceImport := commitServiceImportHandler.NewHandler(commitServiceImportUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Слоты, в которые помещаются выбранные услуги
	api.HandleFunc("/companies/{companyId}/fittable-slots", getFittableSlots.Handle).Methods(http.MethodGet)

	// Шаблон CSV для импорта услуг
	api.HandleFunc("/services/import/template", getImportTemplate.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Импорт услуг (для менеджеров) ---
	// Предпросмотр файла
	protected.HandleFunc("/companies/{companyId}/services/import/preview", previewServiceImport.Handle).Methods(http.MethodPost)

	// Создание услуг из проверенных строк
	protected.HandleFunc("/companies/{companyId}/services/import", commitServiceImport.Handle).Methods(http.MethodPost)

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
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
