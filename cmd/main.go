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

	createBookingHandler "github.com/xm-division/ATC-BookingService/internal/api/handlers/create_booking"
	createPositionHandler "github.com/xm-division/ATC-BookingService/internal/api/handlers/create_position"
	deleteBookingHandler "github.com/xm-division/ATC-BookingService/internal/api/handlers/delete_booking"
	deletePositionHandler "github.com/xm-division/ATC-BookingService/internal/api/handlers/delete_position"
	getBookingHandler "github.com/xm-division/ATC-BookingService/internal/api/handlers/get_booking"
	getUserStatsHandler "github.com/xm-division/ATC-BookingService/internal/api/handlers/get_user_stats"
	listAuditLogsHandler "github.com/xm-division/ATC-BookingService/internal/api/handlers/list_audit_logs"
	listBookingsHandler "github.com/xm-division/ATC-BookingService/internal/api/handlers/list_bookings"
	listPositionsHandler "github.com/xm-division/ATC-BookingService/internal/api/handlers/list_positions"
	runCleanupHandler "github.com/xm-division/ATC-BookingService/internal/api/handlers/run_cleanup"
	setUserStatsHandler "github.com/xm-division/ATC-BookingService/internal/api/handlers/set_user_stats"
	updateBookingHandler "github.com/xm-division/ATC-BookingService/internal/api/handlers/update_booking"
	updatePositionHandler "github.com/xm-division/ATC-BookingService/internal/api/handlers/update_position"
	"github.com/xm-division/ATC-BookingService/internal/api/middleware"
	"github.com/xm-division/ATC-BookingService/internal/config"
	auditRepo "github.com/xm-division/ATC-BookingService/internal/infra/storage/audit"
	bookingRepo "github.com/xm-division/ATC-BookingService/internal/infra/storage/booking"
	positionRepo "github.com/xm-division/ATC-BookingService/internal/infra/storage/position"
	userstatsRepo "github.com/xm-division/ATC-BookingService/internal/infra/storage/userstats"
	discordClient "github.com/xm-division/ATC-BookingService/internal/integrations/discord"
	identityClient "github.com/xm-division/ATC-BookingService/internal/integrations/identity"
	auditService "github.com/xm-division/ATC-BookingService/internal/service/audit"
	bookingsService "github.com/xm-division/ATC-BookingService/internal/service/bookings"
	positionsService "github.com/xm-division/ATC-BookingService/internal/service/positions"
	statsService "github.com/xm-division/ATC-BookingService/internal/service/stats"
	createBookingUC "github.com/xm-division/ATC-BookingService/internal/usecase/create_booking"
	runCleanupUC "github.com/xm-division/ATC-BookingService/internal/usecase/run_cleanup"
	updateBookingUC "github.com/xm-division/ATC-BookingService/internal/usecase/update_booking"
	"github.com/xm-division/ATC-BookingService/pkg/dbmetrics"
	"github.com/xm-division/ATC-BookingService/pkg/logger"
	"github.com/xm-division/ATC-BookingService/pkg/metrics"
	"github.com/xm-division/ATC-BookingService/pkg/simpletxmanager"
	"github.com/xm-division/ATC-BookingService/pkg/txmanager"
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

	log.Info("Starting ATC-BookingService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

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
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	identity := identityClient.NewClient(
		cfg.Identity.URL,
		cfg.Identity.Token,
		time.Duration(cfg.Identity.Timeout)*time.Second,
		log,
	)
	discord := discordClient.NewClient(
		cfg.Discord.WebhookURL,
		time.Duration(cfg.Discord.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Identity=%s timeout=%ds, Discord enabled=%v)",
		cfg.Identity.URL, cfg.Identity.Timeout, discord.Enabled())

	var (
		bookingRepository   *bookingRepo.Repository
		positionRepository  *positionRepo.Repository
		auditRepository     *auditRepo.Repository
		userstatsRepository *userstatsRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		positionRepository = positionRepo.NewRepository(wrappedDB)
		auditRepository = auditRepo.NewRepository(wrappedDB)
		userstatsRepository = userstatsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		positionRepository = positionRepo.NewRepository(db)
		auditRepository = auditRepo.NewRepository(db)
		userstatsRepository = userstatsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	positionsSvc := positionsService.NewService(
		positionRepository,
		bookingRepository,
		auditRepository,
		txMgr,
		log,
	)
	bookingsSvc := bookingsService.NewService(
		bookingRepository,
		auditRepository,
		txMgr,
		log,
	)
	statsSvc := statsService.NewService(
		userstatsRepository,
		bookingRepository,
		log,
	)
	auditSvc := auditService.NewService(auditRepository, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		positionRepository,
		auditRepository,
		discord,
		txMgr,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		positionRepository,
		auditRepository,
		txMgr,
		log,
	)
	runCleanupUseCase := runCleanupUC.NewUseCase(
		bookingRepository,
		auditRepository,
		cfg.Cleanup.RetentionDays,
		log,
	)

	listPositions := listPositionsHandler.NewHandler(positionsSvc, log)
	createPosition := createPositionHandler.NewHandler(positionsSvc, log)
	updatePosition := updatePositionHandler.NewHandler(positionsSvc, log)
	deletePosition := deletePositionHandler.NewHandler(positionsSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingsSvc, log)
	runCleanup := runCleanupHandler.NewHandler(runCleanupUseCase, log)
	getUserStats := getUserStatsHandler.NewHandler(statsSvc, log)
	setUserStats := setUserStatsHandler.NewHandler(statsSvc, log)
	listAuditLogs := listAuditLogsHandler.NewHandler(auditSvc, log)

	auth := middleware.NewAuth(identity, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.NewMetrics(metricsCollector).Handle)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes.
	api.HandleFunc("/positions", listPositions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)

	// Authenticated routes.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Require)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}", updateBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{id}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/users/{userId}/stats", getUserStats.Handle).Methods(http.MethodGet)

	// Staff routes.
	staff := protected.PathPrefix("").Subrouter()
	staff.Use(auth.RequireStaff)

	staff.HandleFunc("/positions", createPosition.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/positions/{id}", updatePosition.Handle).Methods(http.MethodPatch)
	staff.HandleFunc("/positions/{id}", deletePosition.Handle).Methods(http.MethodDelete)
	staff.HandleFunc("/cleanup", runCleanup.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/users/{userId}/stats", setUserStats.Handle).Methods(http.MethodPut)
	staff.HandleFunc("/admin/audit", listAuditLogs.Handle).Methods(http.MethodGet)

	// Built-in sweep scheduler.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	if cfg.Cleanup.Enabled {
		interval := time.Duration(cfg.Cleanup.IntervalSeconds) * time.Second
		go runCleanupUseCase.RunPeriodically(sweepCtx, interval)
	}

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

	stopSweep()
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
