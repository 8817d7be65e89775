package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/srgjo27/fleet_ledger/internal/adapter/cache"
	"github.com/srgjo27/fleet_ledger/internal/adapter/handler"
	"github.com/srgjo27/fleet_ledger/internal/adapter/repository/memory"
	"github.com/srgjo27/fleet_ledger/internal/adapter/repository/postgres"
	"github.com/srgjo27/fleet_ledger/internal/core/ports"
	"github.com/srgjo27/fleet_ledger/internal/core/services"
	"github.com/srgjo27/fleet_ledger/internal/platform/config"
	"github.com/srgjo27/fleet_ledger/internal/platform/database"
	"github.com/srgjo27/fleet_ledger/internal/platform/logger"
)

type repositories struct {
	bookings       ports.BookingRepository
	drivers        ports.DriverRepository
	driverPayments ports.DriverPaymentRepository
	companies      ports.CompanyRepository
	payments       ports.PaymentRepository
	fuelEntries    ports.FuelEntryRepository
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.App.LogLevel, cfg.App.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	repos, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.Fatal("failed to open storage", zap.String("storage", cfg.App.Storage), zap.Error(err))
	}
	defer closeStore()

	statementCache, closeCache, err := openStatementCache(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.String("addr", cfg.RedisAddr()), zap.Error(err))
	}
	defer closeCache()

	var bookingOpts []services.BookingOption
	if cfg.App.StrictStatusTransitions {
		bookingOpts = append(bookingOpts, services.WithStrictTransitions())
	}

	bookingService := services.NewBookingService(repos.bookings, log, bookingOpts...)
	driverPaymentService := services.NewDriverPaymentService(repos.bookings, repos.drivers, repos.driverPayments, statementCache, log)
	advanceService := services.NewAdvanceService(repos.drivers, repos.payments, statementCache, log)
	companyService := services.NewCompanyService(repos.companies, repos.payments, log)
	fuelService := services.NewFuelService(repos.fuelEntries, log)

	router := handler.NewRouter(handler.Handlers{
		Bookings:       handler.NewBookingHandler(bookingService, log),
		DriverPayments: handler.NewDriverPaymentHandler(driverPaymentService, log),
		Drivers:        handler.NewDriverHandler(advanceService, log),
		Companies:      handler.NewCompanyHandler(companyService, log),
		Finance:        handler.NewFinanceHandler(driverPaymentService, companyService, log),
		Fuel:           handler.NewFuelHandler(fuelService, log),
	}, log, cfg.HTTP.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr(),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("server starting",
			zap.String("addr", server.Addr),
			zap.String("storage", cfg.App.Storage),
			zap.Bool("strict_transitions", cfg.App.StrictStatusTransitions),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server startup failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("server exiting")
}

func openStore(cfg *config.Config, log *zap.Logger) (repositories, func(), error) {
	if cfg.App.Storage == config.StorageMemory {
		log.Warn("using in-memory storage; data is lost on restart")
		store := memory.New()
		return repositories{
			bookings:       store,
			drivers:        store,
			driverPayments: store,
			companies:      store,
			payments:       store,
			fuelEntries:    store,
		}, func() {}, nil
	}

	db, err := database.NewPostgresDB(database.Config{
		Host:     cfg.Database.Host,
		Port:     strconv.Itoa(cfg.Database.Port),
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		MaxConns: cfg.Database.MaxConns,
	}, log)
	if err != nil {
		return repositories{}, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return repositories{}, nil, err
	}

	return postgresRepositories(db), func() { db.Close() }, nil
}

func postgresRepositories(db *sql.DB) repositories {
	return repositories{
		bookings:       postgres.NewBookingRepository(db),
		drivers:        postgres.NewDriverRepository(db),
		driverPayments: postgres.NewDriverPaymentRepository(db),
		companies:      postgres.NewCompanyRepository(db),
		payments:       postgres.NewPaymentRepository(db),
		fuelEntries:    postgres.NewFuelEntryRepository(db),
	}
}

func openStatementCache(cfg *config.Config, log *zap.Logger) (ports.StatementCache, func(), error) {
	if !cfg.Redis.Enabled {
		log.Info("redis disabled; driver statements are not cached")
		return cache.NoopStatementCache{}, func() {}, nil
	}

	log.Info("connecting to redis", zap.String("addr", cfg.RedisAddr()))
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr(),
		DB:   cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, err
	}
	log.Info("redis connected")

	return cache.NewRedisStatementCache(client, cfg.Redis.CacheTTL), func() { client.Close() }, nil
}
