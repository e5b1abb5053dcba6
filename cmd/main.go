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

	bookAppointmentHandler "github.com/m04kA/SMC-CareCoordinator/internal/api/handlers/book_appointment"
	checkInsuranceHandler "github.com/m04kA/SMC-CareCoordinator/internal/api/handlers/check_insurance"
	findProvidersHandler "github.com/m04kA/SMC-CareCoordinator/internal/api/handlers/find_providers"
	getHistoryHandler "github.com/m04kA/SMC-CareCoordinator/internal/api/handlers/get_history"
	getPatientHandler "github.com/m04kA/SMC-CareCoordinator/internal/api/handlers/get_patient"
	resetSessionHandler "github.com/m04kA/SMC-CareCoordinator/internal/api/handlers/reset_session"
	"github.com/m04kA/SMC-CareCoordinator/internal/api/middleware"
	"github.com/m04kA/SMC-CareCoordinator/internal/config"
	"github.com/m04kA/SMC-CareCoordinator/internal/dispatch"
	"github.com/m04kA/SMC-CareCoordinator/internal/infra/calendar"
	knowledgeRepo "github.com/m04kA/SMC-CareCoordinator/internal/infra/storage/knowledge"
	patientServiceClient "github.com/m04kA/SMC-CareCoordinator/internal/integrations/patientservice"
	knowledgeService "github.com/m04kA/SMC-CareCoordinator/internal/service/knowledge"
	schedulingService "github.com/m04kA/SMC-CareCoordinator/internal/service/scheduling"
	"github.com/m04kA/SMC-CareCoordinator/internal/session"
	bookAppointmentUC "github.com/m04kA/SMC-CareCoordinator/internal/usecase/book_appointment"
	checkInsuranceUC "github.com/m04kA/SMC-CareCoordinator/internal/usecase/check_insurance"
	findProvidersUC "github.com/m04kA/SMC-CareCoordinator/internal/usecase/find_providers"
	getPatientUC "github.com/m04kA/SMC-CareCoordinator/internal/usecase/get_patient"
	"github.com/m04kA/SMC-CareCoordinator/migrations"
	"github.com/m04kA/SMC-CareCoordinator/pkg/dbmetrics"
	"github.com/m04kA/SMC-CareCoordinator/pkg/logger"
	"github.com/m04kA/SMC-CareCoordinator/pkg/metrics"
)

// noopMetrics заглушка сборщика метрик операций, когда метрики выключены
type noopMetrics struct{}

func (noopMetrics) IncOperation(string, string) {}
func (noopMetrics) IncBooking(string)           {}

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

	log.Info("Starting SMC-CareCoordinator...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе знаний
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

	// Применяем миграции базы знаний
	if err := migrations.Up(db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Инициализируем репозиторий базы знаний (с метриками или без)
	var knowledgeRepository *knowledgeRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		knowledgeRepository = knowledgeRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		knowledgeRepository = knowledgeRepo.NewRepository(db)
	}

	// Инициализируем сервис базы знаний и загружаем правила приёмов.
	// Отсутствующие или некорректные правила - ошибка развертывания:
	// процесс не стартует без них.
	knowledgeSvc := knowledgeService.NewService(knowledgeRepository, log)
	if err := knowledgeSvc.LoadRules(context.Background()); err != nil {
		log.Fatal("Failed to load appointment rules: %v", err)
	}

	// Инициализируем клиента внешнего источника карт пациентов
	patientClient := patientServiceClient.NewClient(
		cfg.PatientService.URL,
		time.Duration(cfg.PatientService.Timeout)*time.Second,
		log,
	)
	log.Info("Patient service client initialized (url=%s, timeout=%ds)",
		cfg.PatientService.URL, cfg.PatientService.Timeout)

	// Состояние сессии: календарь занятых слотов и транскрипт операций
	sessionManager := session.NewManager(calendar.NewStore(), log)

	// Инициализируем сервис расписания поверх календаря сессии
	schedulingSvc := schedulingService.NewService(sessionManager.Calendar(), log)

	// Инициализируем use cases
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		patientClient,
		schedulingSvc,
		knowledgeSvc,
		log,
	)
	findProvidersUseCase := findProvidersUC.NewUseCase(knowledgeSvc, log)
	checkInsuranceUseCase := checkInsuranceUC.NewUseCase(knowledgeSvc, log)
	getPatientUseCase := getPatientUC.NewUseCase(patientClient, log)

	// Диспетчер операций: единая точка входа, транскрипт и метрики
	var operationMetrics dispatch.MetricsCollector = noopMetrics{}
	if cfg.Metrics.Enabled {
		operationMetrics = metricsCollector
	}
	dispatcher := dispatch.NewDispatcher(
		getPatientUseCase,
		findProvidersUseCase,
		checkInsuranceUseCase,
		bookAppointmentUseCase,
		sessionManager,
		operationMetrics,
		log,
	)

	// Инициализируем handlers
	bookAppointment := bookAppointmentHandler.NewHandler(dispatcher, log)
	findProviders := findProvidersHandler.NewHandler(dispatcher, log)
	checkInsurance := checkInsuranceHandler.NewHandler(dispatcher, log)
	getPatient := getPatientHandler.NewHandler(dispatcher, log)
	resetSession := resetSessionHandler.NewHandler(sessionManager, log)
	getHistory := getHistoryHandler.NewHandler(sessionManager, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Бронирование приёма
	api.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)

	// Поиск провайдеров
	api.HandleFunc("/providers", findProviders.Handle).Methods(http.MethodGet)

	// Страховая проверка
	api.HandleFunc("/insurance", checkInsurance.Handle).Methods(http.MethodGet)

	// Карта пациента
	api.HandleFunc("/patients/{patientId}", getPatient.Handle).Methods(http.MethodGet)

	// Управление сессией
	api.HandleFunc("/session/reset", resetSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/session/history", getHistory.Handle).Methods(http.MethodGet)

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
