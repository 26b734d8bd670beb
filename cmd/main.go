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

	adminCancelReservationHandler "github.com/elitecuts/booking-service/internal/api/handlers/admin_cancel_reservation"
	adminLoginHandler "github.com/elitecuts/booking-service/internal/api/handlers/admin_login"
	chatHandler "github.com/elitecuts/booking-service/internal/api/handlers/chat"
	createReservationHandler "github.com/elitecuts/booking-service/internal/api/handlers/create_reservation"
	getAvailableTimesHandler "github.com/elitecuts/booking-service/internal/api/handlers/get_available_times"
	getReservationHandler "github.com/elitecuts/booking-service/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/elitecuts/booking-service/internal/api/handlers/list_reservations"
	listReservationsByDateHandler "github.com/elitecuts/booking-service/internal/api/handlers/list_reservations_by_date"
	listWorkingHoursHandler "github.com/elitecuts/booking-service/internal/api/handlers/list_working_hours"
	setWorkingHoursHandler "github.com/elitecuts/booking-service/internal/api/handlers/set_working_hours"
	"github.com/elitecuts/booking-service/internal/api/middleware"
	"github.com/elitecuts/booking-service/internal/config"
	"github.com/elitecuts/booking-service/internal/infra/queue"
	reservationRepo "github.com/elitecuts/booking-service/internal/infra/storage/reservation"
	workingHoursRepo "github.com/elitecuts/booking-service/internal/infra/storage/workinghours"
	openaiClient "github.com/elitecuts/booking-service/internal/integrations/openai"
	"github.com/elitecuts/booking-service/internal/jobs/retention"
	"github.com/elitecuts/booking-service/internal/service/assistant"
	authService "github.com/elitecuts/booking-service/internal/service/auth"
	reservationsService "github.com/elitecuts/booking-service/internal/service/reservations"
	scheduleService "github.com/elitecuts/booking-service/internal/service/schedule"
	createReservationUC "github.com/elitecuts/booking-service/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/elitecuts/booking-service/internal/usecase/get_availability"
	setWorkingHoursUC "github.com/elitecuts/booking-service/internal/usecase/set_working_hours"
	"github.com/elitecuts/booking-service/pkg/dbmetrics"
	"github.com/elitecuts/booking-service/pkg/logger"
	"github.com/elitecuts/booking-service/pkg/metrics"
	"github.com/elitecuts/booking-service/pkg/simpletxmanager"
	"github.com/elitecuts/booking-service/pkg/txmanager"
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

	log.Info("Starting booking-service...")
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

	// Инициализируем публикатора событий
	publisher := queue.NewPublisher(cfg.Queue.URL, log)
	log.Info("Event publisher initialized (broker=%s)", cfg.Queue.URL)

	// Инициализируем клиента OpenAI
	aiClient := openaiClient.NewClient(
		cfg.OpenAI.URL,
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		time.Duration(cfg.OpenAI.Timeout)*time.Second,
		log,
	)
	log.Info("OpenAI client initialized (model=%s, timeout=%ds)", cfg.OpenAI.Model, cfg.OpenAI.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository  *reservationRepo.Repository
		workingHoursRepository *workingHoursRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		workingHoursRepository = workingHoursRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		workingHoursRepository = workingHoursRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(
		cfg.Auth.Username,
		cfg.Auth.PasswordHash,
		[]byte(cfg.Auth.JWTSecret),
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		log,
	)
	reservationsSvc := reservationsService.NewService(reservationRepository, publisher, log)
	scheduleSvc := scheduleService.NewService(workingHoursRepository, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		workingHoursRepository,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		workingHoursRepository,
		txMgr,
		publisher,
		log,
	)
	setWorkingHoursUseCase := setWorkingHoursUC.NewUseCase(
		reservationRepository,
		workingHoursRepository,
		txMgr,
		publisher,
		log,
	)

	// Ассистент: извлечение даты моделью с откатом на правила
	businessInfo := assistant.BusinessInfo{
		Name:    cfg.Business.Name,
		Phone:   cfg.Business.Phone,
		Address: cfg.Business.Address,
		Hours:   cfg.Business.Hours,
	}
	extractor := assistant.NewModelExtractor(aiClient, assistant.NewRuleBasedExtractor(), log)
	assistantSvc := assistant.NewService(extractor, getAvailabilityUseCase, aiClient, businessInfo, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailabilityUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	listReservationsByDate := listReservationsByDateHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	adminCancelReservation := adminCancelReservationHandler.NewHandler(reservationsSvc, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	setWorkingHours := setWorkingHoursHandler.NewHandler(setWorkingHoursUseCase, log)
	listWorkingHours := listWorkingHoursHandler.NewHandler(scheduleSvc, log)
	chatbot := chatHandler.NewHandler(assistantSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Создание бронирования
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Все бронирования (используется фронтендом для календаря)
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Активные бронирования на дату
	api.HandleFunc("/reservations/by-date", listReservationsByDate.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/reservations/available-times", getAvailableTimes.Handle).Methods(http.MethodGet)

	// Ассистент барбершопа
	api.HandleFunc("/chatbot", chatbot.Handle).Methods(http.MethodPost)

	// Вход администратора
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(authSvc))

	// Бронирование по ID
	admin.HandleFunc("/reservations/{reservationId:[0-9]+}", getReservation.Handle).Methods(http.MethodGet)

	// Списки бронирований: upcoming, past, cancelled, all
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{view:[a-z]+}", listReservations.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	admin.HandleFunc("/reservations/{reservationId:[0-9]+}", adminCancelReservation.Handle).Methods(http.MethodDelete)

	// Рабочие часы
	admin.HandleFunc("/working-hours", setWorkingHours.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/working-hours", listWorkingHours.Handle).Methods(http.MethodGet)

	// Фоновая очистка старых записей
	var retentionScheduler *retention.Scheduler
	if cfg.Retention.Enabled {
		retentionScheduler = retention.NewScheduler(
			reservationRepository,
			workingHoursRepository,
			cfg.Retention.Hour,
			log,
		)
		retentionScheduler.Start(context.Background())
	}

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

	if retentionScheduler != nil {
		retentionScheduler.Stop()
	}

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
