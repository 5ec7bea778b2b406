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

	cancelBookingHandler "github.com/peterjohnpitcher/anchor-parking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/peterjohnpitcher/anchor-parking/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/peterjohnpitcher/anchor-parking/internal/api/handlers/get_availability"
	getBookingHandler "github.com/peterjohnpitcher/anchor-parking/internal/api/handlers/get_booking"
	getRatesHandler "github.com/peterjohnpitcher/anchor-parking/internal/api/handlers/get_rates"
	initiateEventBookingHandler "github.com/peterjohnpitcher/anchor-parking/internal/api/handlers/initiate_event_booking"
	"github.com/peterjohnpitcher/anchor-parking/internal/api/middleware"
	"github.com/peterjohnpitcher/anchor-parking/internal/config"
	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
	bookingRepo "github.com/peterjohnpitcher/anchor-parking/internal/infra/storage/booking"
	ratesRepo "github.com/peterjohnpitcher/anchor-parking/internal/infra/storage/rates"
	eventsAPIClient "github.com/peterjohnpitcher/anchor-parking/internal/integrations/eventsapi"
	paymentsClient "github.com/peterjohnpitcher/anchor-parking/internal/integrations/payments"
	bookingsService "github.com/peterjohnpitcher/anchor-parking/internal/service/bookings"
	ratesService "github.com/peterjohnpitcher/anchor-parking/internal/service/rates"
	checkAvailabilityUC "github.com/peterjohnpitcher/anchor-parking/internal/usecase/check_availability"
	createBookingUC "github.com/peterjohnpitcher/anchor-parking/internal/usecase/create_booking"
	"github.com/peterjohnpitcher/anchor-parking/pkg/dbmetrics"
	"github.com/peterjohnpitcher/anchor-parking/pkg/logger"
	"github.com/peterjohnpitcher/anchor-parking/pkg/metrics"
	"github.com/peterjohnpitcher/anchor-parking/pkg/simpletxmanager"
	"github.com/peterjohnpitcher/anchor-parking/pkg/txmanager"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting anchor-parking...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configure the connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize integration clients
	payments := paymentsClient.NewClient(
		cfg.Payments.URL,
		time.Duration(cfg.Payments.Timeout)*time.Second,
		log,
	)
	eventsAPI := eventsAPIClient.NewClient(
		cfg.EventsAPI.URL,
		time.Duration(cfg.EventsAPI.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Payments=%s timeout=%ds, EventsAPI=%s timeout=%ds)",
		cfg.Payments.URL, cfg.Payments.Timeout, cfg.EventsAPI.URL, cfg.EventsAPI.Timeout)

	// Initialize repositories (with or without the metrics wrapper)
	var (
		bookingRepository *bookingRepo.Repository
		ratesRepository   *ratesRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		ratesRepository = ratesRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		ratesRepository = ratesRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Initialize services
	defaultRates := domain.RateCard{
		HourlyRate:  cfg.Parking.HourlyRate,
		DailyRate:   cfg.Parking.DailyRate,
		WeeklyRate:  cfg.Parking.WeeklyRate,
		MonthlyRate: cfg.Parking.MonthlyRate,
	}
	ratesSvc := ratesService.NewService(ratesRepository, defaultRates, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)

	// Initialize use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		ratesSvc,
		payments,
		txMgr,
		cfg.Parking.Capacity,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		cfg.Parking.Capacity,
		log,
	)

	// Initialize handlers
	getRates := getRatesHandler.NewHandler(ratesSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	initiateEventBooking := initiateEventBookingHandler.NewHandler(eventsAPI, log)

	// Set up the router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// All endpoints are public: the wizard runs without accounts and a
	// booking is retrieved by its reference alone
	api := r.PathPrefix("/api").Subrouter()

	// Parking
	api.HandleFunc("/parking/rates", getRates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/parking/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/parking/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/parking/bookings/{reference}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/parking/bookings/{reference}", cancelBooking.Handle).Methods(http.MethodDelete)

	// Event bookings (proxied to the events API with retries)
	api.HandleFunc("/event-bookings", initiateEventBooking.Handle).Methods(http.MethodPost)

	// Create the HTTP server
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
