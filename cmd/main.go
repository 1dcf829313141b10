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

	cancelAppointmentHandler "github.com/SaimAkramGill/bewanted/internal/api/handlers/cancel_appointment"
	getAvailableSlotsHandler "github.com/SaimAkramGill/bewanted/internal/api/handlers/get_available_slots"
	getFairStatsHandler "github.com/SaimAkramGill/bewanted/internal/api/handlers/get_fair_stats"
	getStudentAppointmentsHandler "github.com/SaimAkramGill/bewanted/internal/api/handlers/get_student_appointments"
	listCompaniesHandler "github.com/SaimAkramGill/bewanted/internal/api/handlers/list_companies"
	registerStudentHandler "github.com/SaimAkramGill/bewanted/internal/api/handlers/register_student"
	updateCompanyConfigHandler "github.com/SaimAkramGill/bewanted/internal/api/handlers/update_company_config"
	"github.com/SaimAkramGill/bewanted/internal/api/middleware"
	"github.com/SaimAkramGill/bewanted/internal/config"
	appointmentRepo "github.com/SaimAkramGill/bewanted/internal/infra/storage/appointment"
	companyRepo "github.com/SaimAkramGill/bewanted/internal/infra/storage/company"
	notifierClient "github.com/SaimAkramGill/bewanted/internal/integrations/notifier"
	appointmentsService "github.com/SaimAkramGill/bewanted/internal/service/appointments"
	companiesService "github.com/SaimAkramGill/bewanted/internal/service/companies"
	statsService "github.com/SaimAkramGill/bewanted/internal/service/stats"
	getAvailableSlotsUC "github.com/SaimAkramGill/bewanted/internal/usecase/get_available_slots"
	registerStudentUC "github.com/SaimAkramGill/bewanted/internal/usecase/register_student"
	"github.com/SaimAkramGill/bewanted/migrations"
	"github.com/SaimAkramGill/bewanted/pkg/dbmetrics"
	"github.com/SaimAkramGill/bewanted/pkg/logger"
	"github.com/SaimAkramGill/bewanted/pkg/metrics"
	"github.com/SaimAkramGill/bewanted/pkg/simpletxmanager"
	"github.com/SaimAkramGill/bewanted/pkg/txmanager"
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

	log.Info("Starting bewanted booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Применяем миграции
	if err := migrations.Up(context.Background(), db, log); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}

	// Инициализируем клиент сервиса уведомлений
	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	log.Info("Notifier client initialized (url=%s timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		companyRepository     *companyRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		companyRepository = companyRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		companyRepository = companyRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	companySvc := companiesService.NewService(companyRepository, log)
	appointmentSvc := appointmentsService.NewService(appointmentRepository, companyRepository, notifier, log)
	statsSvc := statsService.NewService(appointmentRepository, companyRepository, log)

	// Инициализируем use cases
	registerStudentUseCase := registerStudentUC.NewUseCase(
		companySvc,
		appointmentRepository,
		txMgr,
		notifier,
		registerStudentUC.RealTimeProvider{},
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		companySvc,
		appointmentRepository,
		log,
	)

	// Инициализируем handlers
	registerStudent := registerStudentHandler.NewHandler(registerStudentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listCompanies := listCompaniesHandler.NewHandler(companySvc, log)
	getStudentAppointments := getStudentAppointmentsHandler.NewHandler(appointmentSvc, companySvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	getFairStats := getFairStatsHandler.NewHandler(statsSvc, log)
	updateCompanyConfig := updateCompanyConfigHandler.NewHandler(companySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Список компаний-участников
	api.HandleFunc("/companies", listCompanies.Handle).Methods(http.MethodGet)

	// Сетка доступности слотов компании
	api.HandleFunc("/companies/{companyId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Регистрация студента (батч бронирований)
	api.HandleFunc("/register", registerStudent.Handle).Methods(http.MethodPost)

	// Записи студента
	api.HandleFunc("/students/{email}/appointments",
		getStudentAppointments.Handle).Methods(http.MethodGet)

	// Отмена записи
	api.HandleFunc("/appointments/{appointmentId}/cancel",
		cancelAppointment.Handle).Methods(http.MethodPatch)

	// Статистика ярмарки
	api.HandleFunc("/stats", getFairStats.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// Обновление конфигурации компании
	admin.HandleFunc("/companies/{companyId}/config", updateCompanyConfig.Handle).Methods(http.MethodPut)

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
