package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/campus-facility-booking/internal/api"
	cancelBookingHandler "github.com/m04kA/campus-facility-booking/internal/api/handlers/cancel_booking"
	checkConflictsHandler "github.com/m04kA/campus-facility-booking/internal/api/handlers/check_conflicts"
	createBookingHandler "github.com/m04kA/campus-facility-booking/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/campus-facility-booking/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/campus-facility-booking/internal/api/handlers/get_booking"
	getBookingStatsHandler "github.com/m04kA/campus-facility-booking/internal/api/handlers/get_booking_stats"
	getFacilityHandler "github.com/m04kA/campus-facility-booking/internal/api/handlers/get_facility"
	getRequesterBookingsHandler "github.com/m04kA/campus-facility-booking/internal/api/handlers/get_requester_bookings"
	listBookingsHandler "github.com/m04kA/campus-facility-booking/internal/api/handlers/list_bookings"
	listFacilitiesHandler "github.com/m04kA/campus-facility-booking/internal/api/handlers/list_facilities"
	updateBookingHandler "github.com/m04kA/campus-facility-booking/internal/api/handlers/update_booking"
	updateBookingStatusHandler "github.com/m04kA/campus-facility-booking/internal/api/handlers/update_booking_status"
	"github.com/m04kA/campus-facility-booking/internal/config"
	"github.com/m04kA/campus-facility-booking/internal/cron"
	"github.com/m04kA/campus-facility-booking/internal/infra/storage"
	bookingsService "github.com/m04kA/campus-facility-booking/internal/service/bookings"
	facilitiesService "github.com/m04kA/campus-facility-booking/internal/service/facilities"
	createBookingUC "github.com/m04kA/campus-facility-booking/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/campus-facility-booking/internal/usecase/get_availability"
	updateBookingUC "github.com/m04kA/campus-facility-booking/internal/usecase/update_booking"
	"github.com/m04kA/campus-facility-booking/pkg/idgen"
	"github.com/m04kA/campus-facility-booking/pkg/keylock"
	"github.com/m04kA/campus-facility-booking/pkg/logger"
	"github.com/m04kA/campus-facility-booking/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if path := os.Getenv("FACILITY_CONFIG"); path != "" {
		configPath = path
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

	log.Info("Starting campus facility booking service...")
	log.Info("Configuration loaded from %s (storage=%s)", configPath, cfg.Storage.Driver)

	grid, err := cfg.Booking.Grid()
	if err != nil {
		log.Fatal("Invalid booking grid: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}
	recorder := metrics.NewBookingRecorder(metricsCollector)

	// Подключаем хранилище
	store, err := storage.Open(ctx, storageOptions(cfg, metricsCollector))
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer store.Close()
	log.Info("Storage ready (driver=%s)", store.Driver)

	// Блокировки по помещению общие для всех операций записи
	locker := keylock.New()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		store.Bookings,
		store.Facilities,
		store.TxManager,
		locker,
		recorder,
		grid,
		cfg.Booking.MaxSuggestions,
		log,
	)
	facilitySvc := facilitiesService.NewService(store.Facilities, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		store.Bookings,
		store.Facilities,
		store.TxManager,
		locker,
		idgen.UUIDGenerator{},
		recorder,
		createBookingUC.Settings{
			Grid:            grid,
			MaxSuggestions:  cfg.Booking.MaxSuggestions,
			RequireApproval: cfg.Booking.RequireApproval,
		},
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		store.Bookings,
		store.Facilities,
		store.TxManager,
		locker,
		recorder,
		updateBookingUC.Settings{
			Grid:           grid,
			MaxSuggestions: cfg.Booking.MaxSuggestions,
		},
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(store.Bookings, store.Facilities, grid, log)

	// Настраиваем роутер
	router := api.NewRouter(api.Handlers{
		ListFacilities:       listFacilitiesHandler.NewHandler(facilitySvc, log),
		GetFacility:          getFacilityHandler.NewHandler(facilitySvc, log),
		GetAvailability:      getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log),
		CheckConflicts:       checkConflictsHandler.NewHandler(bookingSvc, log),
		CreateBooking:        createBookingHandler.NewHandler(createBookingUseCase, log),
		ListBookings:         listBookingsHandler.NewHandler(bookingSvc, log),
		GetBookingStats:      getBookingStatsHandler.NewHandler(bookingSvc, log),
		GetBooking:           getBookingHandler.NewHandler(bookingSvc, log),
		UpdateBooking:        updateBookingHandler.NewHandler(updateBookingUseCase, log),
		CancelBooking:        cancelBookingHandler.NewHandler(bookingSvc, log),
		UpdateBookingStatus:  updateBookingStatusHandler.NewHandler(bookingSvc, log),
		GetRequesterBookings: getRequesterBookingsHandler.NewHandler(bookingSvc, log),
	}, api.MetricsOptions{Metrics: metricsCollector, Path: cfg.Metrics.Path})

	// Фоновое завершение прошедших бронирований
	scheduler, err := cron.NewScheduler(log)
	if err != nil {
		log.Fatal("Failed to create scheduler: %v", err)
	}
	if cfg.Completion.Enabled {
		interval := time.Duration(cfg.Completion.Interval) * time.Second
		if err := scheduler.AddCompletionJob(bookingSvc, interval, interval); err != nil {
			log.Fatal("Failed to register completion job: %v", err)
		}
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		scheduler.Start()
		<-gCtx.Done()
		return scheduler.Stop()
	})

	// Graceful shutdown по сигналу или падению одной из горутин
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Service stopped with error: %v", err)
		return
	}

	log.Info("Server stopped gracefully")
}

func storageOptions(cfg *config.Config, m *metrics.Metrics) storage.Options {
	opts := storage.Options{
		Driver:      cfg.Storage.Driver,
		SeedCatalog: cfg.Storage.SeedCatalog,
		Metrics:     m,
		MetricsName: cfg.Storage.Driver,
	}

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		opts.DSN = cfg.Database.DSN()
		opts.MaxOpenConns = cfg.Database.MaxOpenConns
		opts.MaxIdleConns = cfg.Database.MaxIdleConns
		opts.ConnMaxLifetime = time.Duration(cfg.Database.ConnMaxLifetime) * time.Second
	case config.DriverSQLite:
		opts.DSN = cfg.SQLite.DSN()
		if !cfg.SQLite.IsInMemory() {
			_ = os.MkdirAll(filepath.Dir(cfg.SQLite.Path), 0o755)
		}
	}

	return opts
}
