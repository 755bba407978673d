// Package cli implements fdctl, the operator command line for the fixed
// deposit core.
package cli

import (
	"context"
	"fmt"

	"fixed-deposit-core/internal/cache"
	"fixed-deposit-core/internal/config"
	"fixed-deposit-core/internal/database"
	"fixed-deposit-core/internal/dto"
	"fixed-deposit-core/internal/gateway"
	"fixed-deposit-core/internal/observability"
	"fixed-deposit-core/internal/repositories"
	"fixed-deposit-core/internal/sequence"
	"fixed-deposit-core/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const productCachePrefix = "fd:product:"

// App is the set of services a command runs against.
type App struct {
	Config       *config.Config
	DB           *database.DB
	Logger       *zap.Logger
	Accounts     services.AccountServiceInterface
	Calculations services.CalculationServiceInterface
	Transactions services.TransactionServiceInterface
	Health       services.HealthServiceInterface

	closers []func()
}

// Loader builds the App for a config file path.
type Loader func(ctx context.Context, configPath string) (*App, error)

// Close releases everything Bootstrap opened, last opened first.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// Bootstrap loads configuration and wires storage, directories and services.
func Bootstrap(ctx context.Context, configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log := observability.NewLogger(cfg.Server.LogLevel)
	app := &App{Config: cfg, Logger: log}
	app.closers = append(app.closers, func() { _ = log.Sync() })

	shutdown, err := observability.InitTracer(cfg.Telemetry.OTLPEndpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		log.Warn("tracing disabled", zap.Error(err))
	} else {
		app.closers = append(app.closers, func() { _ = shutdown(context.Background()) })
	}

	db, err := database.Initialize(cfg, log)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.DB = db
	app.closers = append(app.closers, func() { _ = db.Close() })

	var rdb *redis.Client
	if cfg.Gateway.ProductCache == "redis" || cfg.Accounts.SequenceBackend == config.SequenceBackendRedis {
		rdb, err = cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.closers = append(app.closers, func() { _ = rdb.Close() })
	}

	var products cache.Cache[dto.ProductDetails]
	if cfg.Gateway.ProductCache == "redis" {
		products = cache.NewRedis[dto.ProductDetails](rdb, productCachePrefix, cfg.Gateway.ProductCacheTTL, log)
	} else {
		memory := cache.NewInMemory[dto.ProductDetails](cfg.Gateway.ProductCacheTTL)
		app.closers = append(app.closers, memory.Close)
		products = memory
	}

	gw := gateway.NewHTTPGateway(&cfg.Gateway, products, log)

	accountRepo := repositories.NewAccountRepository(db.DB)
	calculationRepo := repositories.NewCalculationRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)

	store, err := sequenceStore(cfg, db, accountRepo, rdb)
	if err != nil {
		app.Close()
		return nil, err
	}

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	audit := services.NewAuditLogger(log)

	calculator := services.NewCalculationService(calculationRepo, gw, audit, metrics, cfg.Calculation, log)
	generator := services.NewAccountNumberGenerator(store, cfg.Accounts.Prefix)

	app.Calculations = calculator
	app.Accounts = services.NewAccountService(accountRepo, gw, calculator, generator, audit, metrics, cfg.Accounts, log)
	app.Transactions = services.NewTransactionService(accountRepo, transactionRepo, audit, metrics, cfg.Accounts, log)
	app.Health = services.NewHealthService(cfg.Telemetry.ServiceName, db, gw, gw, metrics, log)

	return app, nil
}

func sequenceStore(cfg *config.Config, db *database.DB, accounts repositories.AccountRepositoryInterface, rdb *redis.Client) (sequence.Store, error) {
	switch cfg.Accounts.SequenceBackend {
	case config.SequenceBackendProcess:
		return sequence.NewProcessCounter(cfg.Accounts.SequenceBase, accounts), nil
	case config.SequenceBackendDatabase:
		return sequence.NewDatabaseStore(db.DB, cfg.Accounts.SequenceBase), nil
	case config.SequenceBackendRedis:
		return sequence.NewRedisStore(rdb, cfg.Accounts.SequenceBase), nil
	default:
		return nil, fmt.Errorf("unknown account sequence backend %q", cfg.Accounts.SequenceBackend)
	}
}
