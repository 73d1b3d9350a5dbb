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

	bookingSessionHandler "github.com/estudioluz/booking-service/internal/api/handlers/booking_session"
	createBookingHandler "github.com/estudioluz/booking-service/internal/api/handlers/create_booking"
	createWindowHandler "github.com/estudioluz/booking-service/internal/api/handlers/create_window"
	deleteWindowHandler "github.com/estudioluz/booking-service/internal/api/handlers/delete_window"
	getAvailableSlotsHandler "github.com/estudioluz/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/estudioluz/booking-service/internal/api/handlers/get_booking"
	getScheduleDaysHandler "github.com/estudioluz/booking-service/internal/api/handlers/get_schedule_days"
	listBookingsHandler "github.com/estudioluz/booking-service/internal/api/handlers/list_bookings"
	listWindowsHandler "github.com/estudioluz/booking-service/internal/api/handlers/list_windows"
	loginHandler "github.com/estudioluz/booking-service/internal/api/handlers/login"
	updateBookingStatusHandler "github.com/estudioluz/booking-service/internal/api/handlers/update_booking_status"
	"github.com/estudioluz/booking-service/internal/api/middleware"
	"github.com/estudioluz/booking-service/internal/config"
	bookingRepo "github.com/estudioluz/booking-service/internal/infra/storage/booking"
	operatorRepo "github.com/estudioluz/booking-service/internal/infra/storage/operator"
	windowRepo "github.com/estudioluz/booking-service/internal/infra/storage/window"
	"github.com/estudioluz/booking-service/internal/schedule"
	authService "github.com/estudioluz/booking-service/internal/service/auth"
	availabilityService "github.com/estudioluz/booking-service/internal/service/availability"
	bookingsService "github.com/estudioluz/booking-service/internal/service/bookings"
	windowsService "github.com/estudioluz/booking-service/internal/service/windows"
	createBookingUC "github.com/estudioluz/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/estudioluz/booking-service/internal/usecase/get_available_slots"
	getScheduleDaysUC "github.com/estudioluz/booking-service/internal/usecase/get_schedule_days"
	updateBookingStatusUC "github.com/estudioluz/booking-service/internal/usecase/update_booking_status"
	"github.com/estudioluz/booking-service/internal/workflow"
	"github.com/estudioluz/booking-service/pkg/logger"
	"github.com/estudioluz/booking-service/pkg/metrics"
	"github.com/estudioluz/booking-service/pkg/rangecache"
	"github.com/estudioluz/booking-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Metrics (optional)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Postgres
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

	// Availability cache backend: redis when configured, in-process otherwise
	var cache rangecache.Cache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		cache = rangecache.NewRedis(redisClient, "availability")
		log.Info("Availability cache backed by redis at %s", cfg.Redis.Addr)
	} else {
		cache = rangecache.NewMemory()
		log.Info("Availability cache backed by process memory")
	}

	// Blocked dates from config, besides the built-in Sunday rule
	blockedDates, err := schedule.ParseBlockedDates(cfg.Studio.BlockedDates)
	if err != nil {
		log.Fatal("Invalid blocked_dates in config: %v", err)
	}

	// Repositories and transaction manager
	windowRepository := windowRepo.NewRepository(db)
	bookingRepository := bookingRepo.NewRepository(db)
	operatorRepository := operatorRepo.NewRepository(db)
	txManager := txmanager.NewManager(db)

	// Services
	var availabilityMetrics availabilityService.Metrics
	var bookingMetrics createBookingUC.Metrics
	var sessionMetrics workflow.Metrics
	if cfg.Metrics.Enabled {
		availabilityMetrics = metricsCollector
		bookingMetrics = metricsCollector
		sessionMetrics = metricsCollector
	}

	availabilitySvc := availabilityService.NewService(
		windowRepository,
		bookingRepository,
		cache,
		availabilityService.DefaultCacheTTL,
		availabilityMetrics,
		log,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	windowSvc := windowsService.NewService(windowRepository, availabilitySvc, log)
	authSvc := authService.NewService(
		operatorRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMin)*time.Minute,
		log,
	)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		availabilitySvc,
		bookingRepository,
		txManager,
		blockedDates,
		cfg.Studio.OperatorPhone,
		bookingMetrics,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(availabilitySvc, blockedDates, log)
	getScheduleDaysUseCase := getScheduleDaysUC.NewUseCase(availabilitySvc, blockedDates, log)
	updateBookingStatusUseCase := updateBookingStatusUC.NewUseCase(
		bookingRepository,
		windowRepository,
		availabilitySvc,
		txManager,
		log,
	)

	// Workflow session manager
	workflowManager := workflow.NewManager(
		availabilitySvc,
		createBookingUseCase,
		blockedDates,
		time.Duration(cfg.Studio.SessionTTLMin)*time.Minute,
		sessionMetrics,
		log,
	)

	rootCtx, cancelRoot := context.WithCancel(context.Background())
	defer cancelRoot()
	go workflowManager.Run(rootCtx)

	// Handlers
	login := loginHandler.NewHandler(authSvc, log)
	getScheduleDays := getScheduleDaysHandler.NewHandler(getScheduleDaysUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	bookingSession := bookingSessionHandler.NewHandler(workflowManager, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(updateBookingStatusUseCase, log)
	createWindow := createWindowHandler.NewHandler(windowSvc, log)
	listWindows := listWindowsHandler.NewHandler(windowSvc, log)
	deleteWindow := deleteWindowHandler.NewHandler(windowSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (client booking flow)
	// ============================================================

	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	api.HandleFunc("/schedule/days", getScheduleDays.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Direct booking submission
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Step-by-step booking sessions
	api.HandleFunc("/schedule/sessions", bookingSession.HandleStart).Methods(http.MethodPost)
	api.HandleFunc("/schedule/sessions/{sessionId}", bookingSession.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/schedule/sessions/{sessionId}/date", bookingSession.HandleSelectDate).Methods(http.MethodPost)
	api.HandleFunc("/schedule/sessions/{sessionId}/time", bookingSession.HandleSelectSlot).Methods(http.MethodPost)
	api.HandleFunc("/schedule/sessions/{sessionId}/details", bookingSession.HandleSubmitDetails).Methods(http.MethodPost)
	api.HandleFunc("/schedule/sessions/{sessionId}/confirm", bookingSession.HandleConfirm).Methods(http.MethodPost)
	api.HandleFunc("/schedule/sessions/{sessionId}/back", bookingSession.HandleBack).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (studio operators)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc))

	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	protected.HandleFunc("/windows", createWindow.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/windows", listWindows.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/windows/{windowId}", deleteWindow.Handle).Methods(http.MethodDelete)

	// HTTP server
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	cancelRoot()

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
