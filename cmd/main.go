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

	bulkCreateRulesHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/bulk_create_rules"
	checkConflictHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/check_conflict"
	checkTeacherAvailableHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/check_teacher_available"
	copyRulesHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/copy_rules"
	createRuleHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_rule"
	deleteRuleHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/delete_rule"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	getStatsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_stats"
	getWeeklyScheduleHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_weekly_schedule"
	listRulesHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/list_rules"
	updateRuleHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_rule"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	availabilityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	teacherRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/teacher"
	availabilityService "github.com/m04kA/SMC-AvailabilityService/internal/service/availability"
	checkTeacherAvailableUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_teacher_available"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	getWeeklyScheduleUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_weekly_schedule"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting SMC-AvailabilityService...")

	// Метрики (nil, если выключены: все потребители это допускают)
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	ruleRepository := availabilityRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	teacherRepository := teacherRepo.NewRepository(wrappedDB)

	// Сервис правил
	availabilitySvc := availabilityService.NewService(
		ruleRepository,
		teacherRepository,
		txMgr,
		metricsCollector,
		log,
	)

	// Use cases расчёта слотов
	blackoutSuppresses := cfg.Scheduling.BlackoutSuppressesSlots
	log.Info("Blackout rules suppress slots: %t", blackoutSuppresses)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		ruleRepository,
		bookingRepository,
		teacherRepository,
		metricsCollector,
		log,
		blackoutSuppresses,
	)
	checkTeacherAvailableUseCase := checkTeacherAvailableUC.NewUseCase(
		ruleRepository,
		bookingRepository,
		teacherRepository,
		log,
		blackoutSuppresses,
	)
	getWeeklyScheduleUseCase := getWeeklyScheduleUC.NewUseCase(
		ruleRepository,
		bookingRepository,
		teacherRepository,
		metricsCollector,
		log,
		blackoutSuppresses,
	)

	// Handlers
	createRule := createRuleHandler.NewHandler(availabilitySvc, log)
	listRules := listRulesHandler.NewHandler(availabilitySvc, log)
	updateRule := updateRuleHandler.NewHandler(availabilitySvc, log)
	deleteRule := deleteRuleHandler.NewHandler(availabilitySvc, log)
	bulkCreateRules := bulkCreateRulesHandler.NewHandler(availabilitySvc, log)
	checkConflict := checkConflictHandler.NewHandler(availabilitySvc, log)
	copyRules := copyRulesHandler.NewHandler(availabilitySvc, log)
	getStats := getStatsHandler.NewHandler(availabilitySvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkTeacherAvailable := checkTeacherAvailableHandler.NewHandler(checkTeacherAvailableUseCase, log)
	getWeeklySchedule := getWeeklyScheduleHandler.NewHandler(getWeeklyScheduleUseCase, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Правила доступности ---
	// Статические пути регистрируются раньше /{ruleId}
	api.HandleFunc("/teachers/{teacherId}/availability/bulk", bulkCreateRules.Handle).Methods(http.MethodPost)
	api.HandleFunc("/teachers/{teacherId}/availability/check-conflict", checkConflict.Handle).Methods(http.MethodPost)
	api.HandleFunc("/teachers/{teacherId}/availability/copy", copyRules.Handle).Methods(http.MethodPost)
	api.HandleFunc("/teachers/{teacherId}/availability/stats", getStats.Handle).Methods(http.MethodGet)

	api.HandleFunc("/teachers/{teacherId}/availability", createRule.Handle).Methods(http.MethodPost)
	api.HandleFunc("/teachers/{teacherId}/availability", listRules.Handle).Methods(http.MethodGet)
	api.HandleFunc("/teachers/{teacherId}/availability/{ruleId}", updateRule.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/teachers/{teacherId}/availability/{ruleId}", deleteRule.Handle).Methods(http.MethodDelete)

	// --- Слоты и расписание ---
	api.HandleFunc("/teachers/{teacherId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/teachers/{teacherId}/availability-check", checkTeacherAvailable.Handle).Methods(http.MethodGet)
	api.HandleFunc("/teachers/{teacherId}/weekly-schedule", getWeeklySchedule.Handle).Methods(http.MethodGet)

	// HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
	close(stopMetricsCh)

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
