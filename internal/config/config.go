package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	SequenceBackendProcess  = "process"
	SequenceBackendDatabase = "database"
	SequenceBackendRedis    = "redis"

	// MaxAccountPrefixLength keeps {prefix}-{branch}-{yyyyMMdd}-{8 digits}
	// within the 64 character account_no column for branch codes of up to
	// 20 characters.
	MaxAccountPrefixLength = 16

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Gateway     GatewayConfig     `toml:"gateway"`
	Calculation CalculationConfig `toml:"calculation"`
	Accounts    AccountsConfig    `toml:"accounts"`
	Redis       RedisConfig       `toml:"redis"`
	Telemetry   TelemetryConfig   `toml:"telemetry"`
}

type ServerConfig struct {
	Environment string `toml:"environment"`
	LogLevel    string `toml:"log_level"`
}

type DatabaseConfig struct {
	Driver          string        `toml:"driver"`
	Host            string        `toml:"host"`
	Port            string        `toml:"port"`
	User            string        `toml:"user"`
	Password        string        `toml:"password"`
	Name            string        `toml:"name"`
	SSLMode         string        `toml:"ssl_mode"`
	SQLitePath      string        `toml:"sqlite_path"`
	MaxConnections  int           `toml:"max_connections"`
	MaxIdleConns    int           `toml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `toml:"conn_max_lifetime"`
	AutoMigrate     bool          `toml:"auto_migrate"`
	MigrationsPath  string        `toml:"migrations_path"`
}

// GatewayConfig configures the customer and product directory clients.
type GatewayConfig struct {
	CustomerServiceURL string        `toml:"customer_service_url"`
	ProductServiceURL  string        `toml:"product_service_url"`
	APIKey             string        `toml:"api_key"`
	Timeout            time.Duration `toml:"timeout"`
	RateLimitPerSecond float64       `toml:"rate_limit_per_second"`
	RateLimitBurst     int           `toml:"rate_limit_burst"`
	BreakerMaxRequests uint32        `toml:"breaker_max_requests"`
	BreakerInterval    time.Duration `toml:"breaker_interval"`
	BreakerTimeout     time.Duration `toml:"breaker_timeout"`
	ProductCacheTTL    time.Duration `toml:"product_cache_ttl"`
	ProductCache       string        `toml:"product_cache"`
}

type CalculationConfig struct {
	DefaultCompoundingFrequency int `toml:"default_compounding_frequency"`
	RoundingScale               int `toml:"rounding_scale"`
}

type AccountsConfig struct {
	Prefix             string `toml:"prefix"`
	SequenceBackend    string `toml:"sequence_backend"`
	SequenceBase       int64  `toml:"sequence_base"`
	AllocationAttempts int    `toml:"allocation_attempts"`
	LedgerAttempts     int    `toml:"ledger_attempts"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type TelemetryConfig struct {
	OTLPEndpoint string `toml:"otlp_endpoint"`
	ServiceName  string `toml:"service_name"`
}

// Default returns the configuration used when neither a file nor the
// environment override a value.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Environment: "development",
			LogLevel:    "info",
		},
		Database: DatabaseConfig{
			Driver:          DriverPostgres,
			Host:            "localhost",
			Port:            "5432",
			User:            "fd_user",
			Password:        "fd_password",
			Name:            "fd_accounts",
			SSLMode:         "disable",
			SQLitePath:      "fd.db",
			MaxConnections:  25,
			MaxIdleConns:    5,
			ConnMaxLifetime: time.Hour,
			MigrationsPath:  "db/migrations",
		},
		Gateway: GatewayConfig{
			CustomerServiceURL: "http://localhost:8081",
			ProductServiceURL:  "http://localhost:8082",
			Timeout:            5 * time.Second,
			RateLimitPerSecond: 50,
			RateLimitBurst:     10,
			BreakerMaxRequests: 3,
			BreakerInterval:    30 * time.Second,
			BreakerTimeout:     10 * time.Second,
			ProductCacheTTL:    5 * time.Minute,
			ProductCache:       "memory",
		},
		Calculation: CalculationConfig{
			DefaultCompoundingFrequency: 4,
			RoundingScale:               2,
		},
		Accounts: AccountsConfig{
			Prefix:             "FD",
			SequenceBackend:    SequenceBackendDatabase,
			SequenceBase:       10000001,
			AllocationAttempts: 3,
			LedgerAttempts:     3,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "fixed-deposit-core",
		},
	}
}

// Load builds the configuration from defaults, an optional TOML file and the
// environment, in that order of precedence (environment wins). A .env file in
// the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv("FD_CONFIG_FILE")
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Environment = getEnv("APP_ENV", c.Server.Environment)
	c.Server.LogLevel = getEnv("LOG_LEVEL", c.Server.LogLevel)

	c.Database.Driver = getEnv("DB_DRIVER", c.Database.Driver)
	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	c.Database.Port = getEnv("DB_PORT", c.Database.Port)
	c.Database.User = getEnv("DB_USER", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.Name = getEnv("DB_NAME", c.Database.Name)
	c.Database.SSLMode = getEnv("DB_SSL_MODE", c.Database.SSLMode)
	c.Database.SQLitePath = getEnv("DB_SQLITE_PATH", c.Database.SQLitePath)
	c.Database.MaxConnections = getIntEnv("DB_MAX_CONNECTIONS", c.Database.MaxConnections)
	c.Database.MaxIdleConns = getIntEnv("DB_MAX_IDLE_CONNS", c.Database.MaxIdleConns)
	c.Database.ConnMaxLifetime = getDurationEnv("DB_CONN_MAX_LIFETIME", c.Database.ConnMaxLifetime)
	c.Database.AutoMigrate = getBoolEnv("AUTO_MIGRATE", c.Database.AutoMigrate)
	c.Database.MigrationsPath = getEnv("DB_MIGRATIONS_PATH", c.Database.MigrationsPath)

	c.Gateway.CustomerServiceURL = getEnv("CUSTOMER_SERVICE_URL", c.Gateway.CustomerServiceURL)
	c.Gateway.ProductServiceURL = getEnv("PRODUCT_SERVICE_URL", c.Gateway.ProductServiceURL)
	c.Gateway.APIKey = getEnv("GATEWAY_API_KEY", c.Gateway.APIKey)
	c.Gateway.Timeout = getDurationEnv("GATEWAY_TIMEOUT", c.Gateway.Timeout)
	c.Gateway.RateLimitPerSecond = getFloatEnv("GATEWAY_RATE_LIMIT_PER_SECOND", c.Gateway.RateLimitPerSecond)
	c.Gateway.RateLimitBurst = getIntEnv("GATEWAY_RATE_LIMIT_BURST", c.Gateway.RateLimitBurst)
	c.Gateway.BreakerTimeout = getDurationEnv("GATEWAY_BREAKER_TIMEOUT", c.Gateway.BreakerTimeout)
	c.Gateway.ProductCacheTTL = getDurationEnv("PRODUCT_CACHE_TTL", c.Gateway.ProductCacheTTL)
	c.Gateway.ProductCache = getEnv("PRODUCT_CACHE", c.Gateway.ProductCache)

	c.Calculation.DefaultCompoundingFrequency = getIntEnv("CALC_DEFAULT_COMPOUNDING_FREQUENCY", c.Calculation.DefaultCompoundingFrequency)
	c.Calculation.RoundingScale = getIntEnv("CALC_ROUNDING_SCALE", c.Calculation.RoundingScale)

	c.Accounts.Prefix = getEnv("ACCOUNT_PREFIX", c.Accounts.Prefix)
	c.Accounts.SequenceBackend = getEnv("ACCOUNT_SEQUENCE_BACKEND", c.Accounts.SequenceBackend)
	c.Accounts.AllocationAttempts = getIntEnv("ACCOUNT_ALLOCATION_ATTEMPTS", c.Accounts.AllocationAttempts)
	c.Accounts.LedgerAttempts = getIntEnv("LEDGER_ATTEMPTS", c.Accounts.LedgerAttempts)

	c.Redis.Addr = getEnv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getIntEnv("REDIS_DB", c.Redis.DB)

	c.Telemetry.OTLPEndpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", c.Telemetry.OTLPEndpoint)
	c.Telemetry.ServiceName = getEnv("OTEL_SERVICE_NAME", c.Telemetry.ServiceName)
}

// Validate rejects configurations the services cannot run with.
func (c *Config) Validate() error {
	if c.Calculation.DefaultCompoundingFrequency <= 0 {
		return fmt.Errorf("default compounding frequency must be positive, got %d", c.Calculation.DefaultCompoundingFrequency)
	}
	if c.Calculation.RoundingScale < 0 {
		return fmt.Errorf("rounding scale cannot be negative, got %d", c.Calculation.RoundingScale)
	}
	switch c.Accounts.SequenceBackend {
	case SequenceBackendProcess, SequenceBackendDatabase, SequenceBackendRedis:
	default:
		return fmt.Errorf("unknown account sequence backend %q", c.Accounts.SequenceBackend)
	}
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	if n := len(c.Accounts.Prefix); n == 0 || n > MaxAccountPrefixLength {
		return fmt.Errorf("account prefix must be 1 to %d characters, got %q", MaxAccountPrefixLength, c.Accounts.Prefix)
	}
	if c.Accounts.AllocationAttempts < 1 || c.Accounts.LedgerAttempts < 1 {
		return errors.New("allocation and ledger attempts must be at least 1")
	}
	if c.Gateway.Timeout <= 0 {
		return errors.New("gateway timeout must be positive")
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the connection string in URL form, as expected by the
// migration tooling.
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
