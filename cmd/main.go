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

	blockManualSlotsHandler "github.com/m04kA/PhotoMarket-BookingService/internal/api/handlers/block_manual_slots"
	cancelReservationHandler "github.com/m04kA/PhotoMarket-BookingService/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/m04kA/PhotoMarket-BookingService/internal/api/handlers/check_availability"
	confirmReservationHandler "github.com/m04kA/PhotoMarket-BookingService/internal/api/handlers/confirm_reservation"
	createReservationHandler "github.com/m04kA/PhotoMarket-BookingService/internal/api/handlers/create_reservation"
	getClientReservationsHandler "github.com/m04kA/PhotoMarket-BookingService/internal/api/handlers/get_client_reservations"
	getProviderConfigHandler "github.com/m04kA/PhotoMarket-BookingService/internal/api/handlers/get_provider_config"
	getProviderReservationsHandler "github.com/m04kA/PhotoMarket-BookingService/internal/api/handlers/get_provider_reservations"
	getReservationHandler "github.com/m04kA/PhotoMarket-BookingService/internal/api/handlers/get_reservation"
	rescheduleReservationHandler "github.com/m04kA/PhotoMarket-BookingService/internal/api/handlers/reschedule_reservation"
	unblockManualSlotsHandler "github.com/m04kA/PhotoMarket-BookingService/internal/api/handlers/unblock_manual_slots"
	updateProviderConfigHandler "github.com/m04kA/PhotoMarket-BookingService/internal/api/handlers/update_provider_config"
	"github.com/m04kA/PhotoMarket-BookingService/internal/api/middleware"
	"github.com/m04kA/PhotoMarket-BookingService/internal/config"
	blockedslotRepo "github.com/m04kA/PhotoMarket-BookingService/internal/infra/storage/blockedslot"
	providerconfigRepo "github.com/m04kA/PhotoMarket-BookingService/internal/infra/storage/providerconfig"
	reservationRepo "github.com/m04kA/PhotoMarket-BookingService/internal/infra/storage/reservation"
	identityServiceClient "github.com/m04kA/PhotoMarket-BookingService/internal/integrations/identityservice"
	notifyServiceClient "github.com/m04kA/PhotoMarket-BookingService/internal/integrations/notifyservice"
	providerServiceClient "github.com/m04kA/PhotoMarket-BookingService/internal/integrations/providerservice"
	availabilityService "github.com/m04kA/PhotoMarket-BookingService/internal/service/availability"
	configService "github.com/m04kA/PhotoMarket-BookingService/internal/service/config"
	ledgerService "github.com/m04kA/PhotoMarket-BookingService/internal/service/ledger"
	reservationsService "github.com/m04kA/PhotoMarket-BookingService/internal/service/reservations"
	blockManualSlotsUC "github.com/m04kA/PhotoMarket-BookingService/internal/usecase/block_manual_slots"
	checkAvailabilityUC "github.com/m04kA/PhotoMarket-BookingService/internal/usecase/check_availability"
	createReservationUC "github.com/m04kA/PhotoMarket-BookingService/internal/usecase/create_reservation"
	rescheduleReservationUC "github.com/m04kA/PhotoMarket-BookingService/internal/usecase/reschedule_reservation"
	unblockManualSlotsUC "github.com/m04kA/PhotoMarket-BookingService/internal/usecase/unblock_manual_slots"
	"github.com/m04kA/PhotoMarket-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PhotoMarket-BookingService/pkg/logger"
	"github.com/m04kA/PhotoMarket-BookingService/pkg/metrics"
	"github.com/m04kA/PhotoMarket-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/PhotoMarket-BookingService/pkg/txmanager"
)

// systemClock источник текущего времени для usecases
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// TxManager интерфейс менеджера транзакций (используется в usecases)
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting PhotoMarket-BookingService...")
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

	// Инициализируем интеграционных клиентов
	identityClient := identityServiceClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	providerClient := providerServiceClient.NewClient(
		cfg.ProviderService.URL,
		time.Duration(cfg.ProviderService.Timeout)*time.Second,
		log,
	)
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (IdentityService=%s, ProviderService=%s, NotifyService=%s)",
		cfg.IdentityService.URL, cfg.ProviderService.URL, cfg.NotifyService.URL)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		slotRepository        *blockedslotRepo.Repository
		configRepository      *providerconfigRepo.Repository
		txMgr                 TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		slotRepository = blockedslotRepo.NewRepository(wrappedDB)
		configRepository = providerconfigRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		slotRepository = blockedslotRepo.NewRepository(db)
		configRepository = providerconfigRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	clock := systemClock{}

	// Инициализируем сервисы
	availabilityChecker := availabilityService.NewChecker(reservationRepository, slotRepository, log)
	ledgerWriter := ledgerService.NewWriter(slotRepository, log)
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		ledgerWriter,
		providerClient,
		notifyClient,
		log,
	)
	configSvc := configService.NewService(configRepository, providerClient, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUsecase(
		availabilityChecker,
		configRepository,
		providerClient,
		log,
	)
	createReservationUseCase := createReservationUC.NewUsecase(
		reservationRepository,
		configRepository,
		availabilityChecker,
		ledgerWriter,
		providerClient,
		identityClient,
		notifyClient,
		txMgr,
		clock,
		log,
	)
	rescheduleReservationUseCase := rescheduleReservationUC.NewUsecase(
		reservationRepository,
		configRepository,
		availabilityChecker,
		ledgerWriter,
		providerClient,
		notifyClient,
		txMgr,
		clock,
		log,
	)
	blockManualSlotsUseCase := blockManualSlotsUC.NewUsecase(
		availabilityChecker,
		ledgerWriter,
		providerClient,
		txMgr,
		log,
	)
	unblockManualSlotsUseCase := unblockManualSlotsUC.NewUsecase(
		ledgerWriter,
		providerClient,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	confirmReservation := confirmReservationHandler.NewHandler(reservationSvc, log)
	rescheduleReservation := rescheduleReservationHandler.NewHandler(rescheduleReservationUseCase, log)
	getClientReservations := getClientReservationsHandler.NewHandler(reservationSvc, log)
	getProviderReservations := getProviderReservationsHandler.NewHandler(reservationSvc, log)
	blockManualSlots := blockManualSlotsHandler.NewHandler(blockManualSlotsUseCase, log)
	unblockManualSlots := unblockManualSlotsHandler.NewHandler(unblockManualSlotsUseCase, log)
	getProviderConfig := getProviderConfigHandler.NewHandler(configSvc, log)
	updateProviderConfig := updateProviderConfigHandler.NewHandler(configSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка доступности слота с подбором альтернатив
	api.HandleFunc("/providers/{providerId}/availability",
		checkAvailability.Handle).Methods(http.MethodGet)

	// Конфигурация расписания провайдера
	api.HandleFunc("/providers/{providerId}/config",
		getProviderConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/confirm", confirmReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/reschedule", rescheduleReservation.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/clients/{clientId}/reservations", getClientReservations.Handle).Methods(http.MethodGet)

	// --- Календарь провайдера (для менеджеров) ---
	protected.HandleFunc("/providers/{providerId}/reservations", getProviderReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/providers/{providerId}/blocked-slots", blockManualSlots.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/providers/{providerId}/blocked-slots", unblockManualSlots.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/providers/{providerId}/config", updateProviderConfig.Handle).Methods(http.MethodPut)

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
