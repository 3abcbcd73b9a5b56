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

	createBookingHandler "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/api/handlers/get_booking"
	getOccupiedSlotsHandler "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/api/handlers/get_occupied_slots"
	listBookingsHandler "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/api/handlers/list_bookings"
	updateBookingStatusHandler "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/api/handlers/update_booking_status"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/api/middleware"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/config"
	slotsCache "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/infra/cache/slots"
	bookingRepo "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/infra/storage/booking"
	paymentServiceClient "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/integrations/paymentservice"
	userServiceClient "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/integrations/userservice"
	venueServiceClient "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/integrations/venueservice"
	bookingsService "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/service/bookings"
	createBookingUC "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/usecase/create_booking"
	getOccupiedSlotsUC "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/usecase/get_occupied_slots"
	transitionBookingUC "github.com/PloshtadkaBG/ploshtadka-bookings-ms/internal/usecase/transition_booking"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/pkg/logger"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/pkg/metrics"
	"github.com/PloshtadkaBG/ploshtadka-bookings-ms/pkg/txmanager"
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

	log.Info("Starting bookings-ms...")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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
	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// The slots cache degrades to misses when redis is down, so a failed
	// ping is not fatal.
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Warn("Redis unreachable, occupied-slots cache degraded: %v", err)
	} else {
		log.Info("Connected to redis at %s", cfg.Redis.Addr())
	}

	venueClient := venueServiceClient.NewClient(
		cfg.VenueService.URL,
		time.Duration(cfg.VenueService.Timeout)*time.Second,
		log,
	)
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	paymentClient := paymentServiceClient.NewClient(
		cfg.PaymentService.URL,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (venues=%s, users=%s, payments=%s)",
		cfg.VenueService.URL, cfg.UserService.URL, cfg.PaymentService.URL)

	bookingRepository := bookingRepo.NewRepository(db, log)
	txManager := txmanager.New(db)
	cache := slotsCache.New(redisClient, log, metricsCollector)

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		venueClient,
		userClient,
		cache,
		txManager,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		venueClient,
		cache,
		txManager,
		log,
	)
	transitionBookingUseCase := transitionBookingUC.NewUseCase(
		bookingRepository,
		paymentClient,
		cache,
		log,
	)
	getOccupiedSlotsUseCase := getOccupiedSlotsUC.NewUseCase(
		bookingRepository,
		cache,
		log,
	)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(transitionBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getOccupiedSlots := getOccupiedSlotsHandler.NewHandler(getOccupiedSlotsUseCase, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(log))

	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/venues/{venueId}/occupied-slots", getOccupiedSlots.Handle).Methods(http.MethodGet)

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

	log.Info("Server stopped gracefully")
}
