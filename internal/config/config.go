package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	PublicOrigin    string
	ShutdownTimeout time.Duration
	LogLevel        string

	StorageDriver string
	StorageDir    string
	StorageKey    string
	DatabaseURI   string
	RedisAddress  string
	SeedOnEmpty   bool

	OrderIDPrefix     string
	OrderIDStrategy   string
	WithdrawalFeeRate decimal.Decimal

	ReceivingAccountName   string
	ReceivingAccountNumber string
	ReceivingBankName      string
}

const (
	defaultRunAddress      = ":8080"
	defaultPublicOrigin    = "http://localhost:8080"
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
	defaultStorageDriver   = StorageFile
	defaultStorageDir      = "data"
	defaultStorageKey      = "lusun_orders_v1"
	defaultOrderIDPrefix   = "LS"
	defaultOrderIDStrategy = "sequential"
	defaultFeeRate         = "0.065"

	defaultAccountName   = "Principles Tech Ltd."
	defaultAccountNumber = "6222 0210 0109 2200"
	defaultBankName      = "China Merchants Bank, Beijing Science Park Sub-branch"
)

// Load parses configuration from flags, environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:             getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		PublicOrigin:           getString(lookup, "PUBLIC_ORIGIN", defaultPublicOrigin),
		ShutdownTimeout:        getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		LogLevel:               getString(lookup, "LOG_LEVEL", defaultLogLevel),
		StorageDriver:          getString(lookup, "STORAGE_DRIVER", defaultStorageDriver),
		StorageDir:             getString(lookup, "STORAGE_DIR", defaultStorageDir),
		StorageKey:             getString(lookup, "STORAGE_KEY", defaultStorageKey),
		DatabaseURI:            getString(lookup, "DATABASE_URI", ""),
		RedisAddress:           getString(lookup, "REDIS_ADDRESS", ""),
		SeedOnEmpty:            getBool(lookup, "SEED_ON_EMPTY", true),
		OrderIDPrefix:          getString(lookup, "ORDER_ID_PREFIX", defaultOrderIDPrefix),
		OrderIDStrategy:        getString(lookup, "ORDER_ID_STRATEGY", defaultOrderIDStrategy),
		ReceivingAccountName:   getString(lookup, "RECEIVING_ACCOUNT_NAME", defaultAccountName),
		ReceivingAccountNumber: getString(lookup, "RECEIVING_ACCOUNT_NUMBER", defaultAccountNumber),
		ReceivingBankName:      getString(lookup, "RECEIVING_BANK_NAME", defaultBankName),
	}

	fs := flag.NewFlagSet("lusunpay", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		feeRateStr         = getString(lookup, "WITHDRAWAL_FEE_RATE", defaultFeeRate)
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.PublicOrigin, "origin", cfg.PublicOrigin, "Public origin used to build checkout links")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.StorageDriver, "storage", cfg.StorageDriver, "Order storage driver: memory, file, redis or postgres")
	fs.StringVar(&cfg.StorageDir, "storage-dir", cfg.StorageDir, "Directory used by the file storage driver, one <key>.json file per key")
	fs.StringVar(&cfg.StorageKey, "storage-key", cfg.StorageKey, "Key holding the order collection")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddress, "redis", cfg.RedisAddress, "Redis address")
	fs.BoolVar(&cfg.SeedOnEmpty, "seed", cfg.SeedOnEmpty, "Seed demo orders into an empty store")
	fs.StringVar(&cfg.OrderIDPrefix, "id-prefix", cfg.OrderIDPrefix, "Order id prefix")
	fs.StringVar(&cfg.OrderIDStrategy, "id-strategy", cfg.OrderIDStrategy, "Order id suffix strategy: sequential or random")
	fs.StringVar(&feeRateStr, "fee-rate", feeRateStr, "Withdrawal service fee rate")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.WithdrawalFeeRate, err = decimal.NewFromString(feeRateStr); err != nil {
		return nil, fmt.Errorf("invalid fee rate: %w", err)
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	cfg.PublicOrigin = strings.TrimRight(cfg.PublicOrigin, "/")
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))

	if cfg.WithdrawalFeeRate.IsNegative() || cfg.WithdrawalFeeRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("fee rate must be within [0, 1)")
	}

	switch cfg.StorageDriver {
	case StorageMemory:
	case StorageFile:
		if cfg.StorageDir == "" {
			return nil, fmt.Errorf("storage dir must be provided")
		}
	case StorageRedis:
		if cfg.RedisAddress == "" {
			return nil, fmt.Errorf("redis address must be provided")
		}
	case StoragePostgres:
		if cfg.DatabaseURI == "" {
			return nil, fmt.Errorf("database URI must be provided")
		}
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	if cfg.StorageKey == "" {
		cfg.StorageKey = defaultStorageKey
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
