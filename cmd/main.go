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
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/FlexDesk-BookingService/internal/admission"
	cancelBookingHandler "github.com/m04kA/FlexDesk-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/FlexDesk-BookingService/internal/api/handlers/create_booking"
	createDeskHandler "github.com/m04kA/FlexDesk-BookingService/internal/api/handlers/create_desk"
	createListingHandler "github.com/m04kA/FlexDesk-BookingService/internal/api/handlers/create_listing"
	getAvailabilityHandler "github.com/m04kA/FlexDesk-BookingService/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/m04kA/FlexDesk-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/FlexDesk-BookingService/internal/api/handlers/get_booking"
	getListingHandler "github.com/m04kA/FlexDesk-BookingService/internal/api/handlers/get_listing"
	getListingBookingsHandler "github.com/m04kA/FlexDesk-BookingService/internal/api/handlers/get_listing_bookings"
	getUserBookingsHandler "github.com/m04kA/FlexDesk-BookingService/internal/api/handlers/get_user_bookings"
	publishListingHandler "github.com/m04kA/FlexDesk-BookingService/internal/api/handlers/publish_listing"
	renameDeskHandler "github.com/m04kA/FlexDesk-BookingService/internal/api/handlers/rename_desk"
	replaceAvailabilityHandler "github.com/m04kA/FlexDesk-BookingService/internal/api/handlers/replace_availability"
	updateBookingStatusHandler "github.com/m04kA/FlexDesk-BookingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/FlexDesk-BookingService/internal/api/middleware"
	"github.com/m04kA/FlexDesk-BookingService/internal/config"
	"github.com/m04kA/FlexDesk-BookingService/internal/infra/lock"
	availabilityRepo "github.com/m04kA/FlexDesk-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/FlexDesk-BookingService/internal/infra/storage/booking"
	listingRepo "github.com/m04kA/FlexDesk-BookingService/internal/infra/storage/listing"
	"github.com/m04kA/FlexDesk-BookingService/internal/integrations/events"
	userServiceClient "github.com/m04kA/FlexDesk-BookingService/internal/integrations/userservice"
	availabilityService "github.com/m04kA/FlexDesk-BookingService/internal/service/availability"
	bookingsService "github.com/m04kA/FlexDesk-BookingService/internal/service/bookings"
	listingsService "github.com/m04kA/FlexDesk-BookingService/internal/service/listings"
	createBookingUC "github.com/m04kA/FlexDesk-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/FlexDesk-BookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/FlexDesk-BookingService/pkg/dbmetrics"
	"github.com/m04kA/FlexDesk-BookingService/pkg/logger"
	"github.com/m04kA/FlexDesk-BookingService/pkg/metrics"
	"github.com/m04kA/FlexDesk-BookingService/pkg/txmanager"
)

// eventPublisher издатель событий для use case и сервиса бронирований
type eventPublisher interface {
	createBookingUC.EventPublisher
	bookingsService.EventPublisher
}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
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

	log.Info("Starting FlexDesk-BookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены).
	// nil коллектор отключает измерения в dbmetrics и use case.
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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	listingRepository := listingRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)

	// Удержание места на время допуска: Redis для нескольких инстансов, иначе в памяти процесса
	var (
		locker      createBookingUC.Locker
		redisClient redis.UniversalClient
	)
	if cfg.Redis.Enabled {
		redisClient = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:    []string{cfg.Redis.Addr},
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancelPing()
		if err != nil {
			log.Fatal("Failed to ping redis: addr=%s, error=%v", cfg.Redis.Addr, err)
		}
		locker = lock.NewRedisLocker(redisClient, cfg.Redis.KeyPrefix)
		log.Info("Reservation holds use redis (addr=%s)", cfg.Redis.Addr)
	} else {
		locker = lock.NewLocalLocker()
		log.Warn("Redis disabled: reservation holds are local to this instance")
	}

	// События жизненного цикла бронирований
	var publisher eventPublisher = events.NoopPublisher{}
	if cfg.RabbitMQ.Enabled {
		publisher = events.NewPublisher(cfg.RabbitMQ.URL, time.Duration(cfg.RabbitMQ.Timeout)*time.Second, log)
		log.Info("Booking events are published to RabbitMQ")
	}

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Движок допуска
	policy, err := cfg.Admission.Policy()
	if err != nil {
		log.Fatal("Invalid admission policy: %v", err)
	}
	engine := admission.NewEngine(policy, nil)
	log.Info("Admission policy: on_unparseable=%s, reject_double_booking=%t",
		policy.OnUnparseable, policy.RejectDoubleBooking)

	// Инициализируем сервисы
	listingSvc := listingsService.NewService(listingRepository, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, listingRepository, txMgr, log)
	bookingSvc := bookingsService.NewService(bookingRepository, listingRepository, publisher, txMgr, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		listingRepository,
		availabilityRepository,
		userClient,
		locker,
		publisher,
		metricsCollector,
		engine,
		txMgr,
		time.Duration(cfg.Admission.HoldTTLSeconds)*time.Second,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		listingRepository,
		availabilityRepository,
		engine,
		cfg.Slots.StepMinutes,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getListingBookings := getListingBookingsHandler.NewHandler(bookingSvc, log)
	createListing := createListingHandler.NewHandler(listingSvc, log)
	getListing := getListingHandler.NewHandler(listingSvc, log)
	publishListing := publishListingHandler.NewHandler(listingSvc, log)
	createDesk := createDeskHandler.NewHandler(listingSvc, log)
	renameDesk := renameDeskHandler.NewHandler(listingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	replaceAvailability := replaceAvailabilityHandler.NewHandler(availabilitySvc, log)

	auth := middleware.NewAuthenticator(cfg.Auth.JWTSecret)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	public := api.PathPrefix("").Subrouter()

	// Слоты места на дату
	public.HandleFunc("/listings/{listingId}/desks/{deskLabel}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Объявление и его правила доступности
	public.HandleFunc("/listings/{listingId}", getListing.Handle).Methods(http.MethodGet)
	public.HandleFunc("/listings/{listingId}/availability", getAvailability.HandleWindows).Methods(http.MethodGet)
	public.HandleFunc("/listings/{listingId}/blackouts", getAvailability.HandleBlackouts).Methods(http.MethodGet)
	public.HandleFunc("/desks/{deskId}/overrides", getAvailability.HandleOverrides).Methods(http.MethodGet)

	// ============================================================
	// BOOKING ATTEMPT (анонимный доступ настраивается)
	// ============================================================

	attempt := api.PathPrefix("").Subrouter()
	if cfg.Auth.AllowAnonymousBooking {
		attempt.Use(auth.Optional())
	} else {
		attempt.Use(auth.Required())
	}
	attempt.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Required())

	// --- Бронирования ---
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление объявлением (для хоста) ---
	protected.HandleFunc("/listings", createListing.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/listings/{listingId}", publishListing.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/listings/{listingId}/bookings", getListingBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/listings/{listingId}/desks", createDesk.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/desks/{deskId}", renameDesk.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/listings/{listingId}/availability", replaceAvailability.HandleWindows).Methods(http.MethodPut)
	protected.HandleFunc("/listings/{listingId}/blackouts", replaceAvailability.HandleBlackouts).Methods(http.MethodPut)
	protected.HandleFunc("/desks/{deskId}/overrides", replaceAvailability.HandleOverrides).Methods(http.MethodPut)

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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
