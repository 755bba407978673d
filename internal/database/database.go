package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fixed-deposit-core/internal/config"
	"fixed-deposit-core/internal/models"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func gormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		dialector = postgres.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, gormConfig(logger.Warn))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	maxConns := cfg.MaxConnections
	if cfg.Driver == config.DriverSQLite {
		// sqlite serializes writers; one connection avoids SQLITE_BUSY.
		maxConns = 1
	}
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// OpenSQL opens a plain postgres handle for the migration runner.
func OpenSQL(cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}
	return db, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.FdAccount{},
		&models.AccountTransaction{},
		&models.FdCalculation{},
		&models.AccountSequence{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

// CreateIndexes adds the read-path indexes that struct tags cannot express.
func (db *DB) CreateIndexes(log *zap.Logger) error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_fd_accounts_customer_created ON fd_accounts(customer_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_fd_accounts_maturity_date ON fd_accounts(maturity_date)",
		"CREATE INDEX IF NOT EXISTS idx_account_transactions_account_seq_desc ON account_transactions(account_no, ledger_seq DESC)",
		"CREATE INDEX IF NOT EXISTS idx_fd_calculations_created_at ON fd_calculations(created_at)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Warn("failed to create index", zap.String("query", query), zap.Error(err))
		}
	}

	return nil
}

// Initialize creates and configures the database connection. Postgres
// schemas come from the SQL migrations when auto-migration is enabled; sqlite
// and any migration failure fall back to gorm AutoMigrate.
func Initialize(cfg *config.Config, log *zap.Logger) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	migrated := false
	if cfg.Database.Driver == config.DriverPostgres {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}

		ran, err := RunMigrationsIfEnabled(sqlDB, &cfg.Database, log)
		if err != nil {
			log.Warn("migration runner failed, falling back to AutoMigrate", zap.Error(err))
		}
		migrated = ran && err == nil
	}

	if !migrated {
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(log); err != nil {
		log.Warn("failed to create some indexes", zap.Error(err))
	}

	log.Info("database initialized", zap.String("driver", cfg.Database.Driver))

	return db, nil
}
