package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/ecofin/ledger/internal/adapter/http"
	"github.com/ecofin/ledger/internal/adapter/http/handler"
	postgresRepo "github.com/ecofin/ledger/internal/adapter/repository/postgres"
	redisRepo "github.com/ecofin/ledger/internal/adapter/repository/redis"
	"github.com/ecofin/ledger/internal/infrastructure/config"
	"github.com/ecofin/ledger/internal/infrastructure/eventpublisher"
	"github.com/ecofin/ledger/internal/infrastructure/logger"
	"github.com/ecofin/ledger/internal/infrastructure/metrics"
	"github.com/ecofin/ledger/internal/infrastructure/postgres"
	"github.com/ecofin/ledger/internal/infrastructure/redis"
	"github.com/ecofin/ledger/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to PostgreSQL, retrying while the database comes up.
	retrier := postgresRepo.NewRetrier(appLogger)

	var pool *pgxpool.Pool
	err = retrier.Retry(ctx, func() error {
		var err error
		pool, err = postgres.NewPool(ctx, postgres.PoolConfig{
			URL:         cfg.DatabaseURL,
			MaxConns:    cfg.DatabaseMaxConns,
			MinConns:    cfg.DatabaseMinConns,
			ConnTimeout: cfg.DatabaseTimeout,
		})
		return err
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, appLogger); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Redis is optional; without it, idempotency keys are not honored.
	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		appLogger.Info().Msg("connected to redis")
	}

	// Kafka is optional; without brokers, events are discarded.
	var publisher usecase.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := eventpublisher.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, appLogger)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		appLogger.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("kafka publisher enabled")
	} else {
		publisher = eventpublisher.NewNopPublisher()
	}

	m := metrics.New()

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	transferRepo := postgresRepo.NewTransferRepository(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	refGen := postgresRepo.NewUUIDGenerator()

	var idempotencyStore usecase.IdempotencyStore
	if redisClient != nil {
		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
	}

	// Use cases
	accountUC := usecase.NewAccountUseCase(accountRepo, idGen, publisher, m)
	ledgerUC := usecase.NewLedgerUseCase(txManager, accountRepo, transactionRepo, idGen, refGen, m)
	transferUC := usecase.NewTransferUseCase(txManager, accountRepo, transferRepo, transactionRepo, idGen, refGen, publisher, m)
	transactionUC := usecase.NewTransactionUseCase(accountRepo, transactionRepo)
	reconciliationUC := usecase.NewReconciliationUseCase(accountRepo, transactionRepo, ledgerRepo)

	// HTTP wiring
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:        handler.NewAccountHandler(accountUC),
		LedgerHandler:         handler.NewLedgerHandler(ledgerUC),
		TransferHandler:       handler.NewTransferHandler(transferUC),
		TransactionHandler:    handler.NewTransactionHandler(transactionUC),
		ReconciliationHandler: handler.NewReconciliationHandler(reconciliationUC),
		HealthHandler:         handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore:      idempotencyStore,
		IdempotencyTTL:        cfg.IdempotencyTTL,
		Logger:                appLogger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
