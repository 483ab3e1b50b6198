// Package config loads the photonscan settings from the environment.
//
// Every variable is prefixed with PHOTONSCAN_, for example
// PHOTONSCAN_CHAIN_RPC_ENDPOINT or PHOTONSCAN_FEED_MAX_BLOCKS. A .env file in
// the working directory, when present, is loaded first; variables already set
// in the environment take precedence over it.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/photonscan/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const Prefix = "photonscan"

type Log struct {
	Level string `envconfig:"level" default:"info" validate:"oneof=debug info warn error"`
}

type Telemetry struct {
	Enabled     bool   `envconfig:"enabled" default:"false"`
	ServiceName string `envconfig:"service_name" default:"photonscan" validate:"required"`
}

type Chain struct {
	ID                 string        `envconfig:"id" default:"atomone-1" validate:"required"`
	RPCEndpoint        string        `envconfig:"rpc_endpoint" default:"https://rpc-atomone.22node.xyz" validate:"required,url"`
	RESTEndpoint       string        `envconfig:"rest_endpoint" default:"https://atomone-api.polkachu.com" validate:"required,url"`
	Timeout            time.Duration `envconfig:"timeout" default:"10s" validate:"gt=0"`
	RetryMax           int           `envconfig:"retry_max" default:"2" validate:"gte=0"`
	SubscribeNewBlocks bool          `envconfig:"subscribe_new_blocks" default:"true"`
}

type Feed struct {
	MaxBlocks       int           `envconfig:"max_blocks" default:"10" validate:"gt=0"`
	MaxTransactions int           `envconfig:"max_transactions" default:"10" validate:"gt=0"`
	MaxRetained     int           `envconfig:"max_retained" default:"100" validate:"gt=0"`
	RefreshInterval time.Duration `envconfig:"refresh_interval" default:"10s" validate:"gt=0"`
	RetryAttempts   uint          `envconfig:"retry_attempts" default:"3" validate:"gt=0"`
}

type Mint struct {
	FeeAmount string `envconfig:"fee_amount" default:"10000" validate:"required,positive_decimal"`
	Gas       uint64 `envconfig:"gas" default:"250000" validate:"gt=0"`
	Memo      string `envconfig:"memo" default:"Mint Photon with KewrMint"`
}

// Redis is optional: an empty Addr disables the summary cache and the
// persisted wallet session.
type Redis struct {
	Addr       string        `envconfig:"addr"`
	Username   string        `envconfig:"username"`
	Password   string        `envconfig:"password"`
	DB         int           `envconfig:"db" default:"0" validate:"gte=0"`
	SummaryTTL time.Duration `envconfig:"summary_ttl" default:"24h" validate:"gt=0"`
}

// Archive is optional: an empty DSN disables the SQL archive.
type Archive struct {
	Driver string `envconfig:"driver" default:"sqlite" validate:"oneof=sqlite mysql"`
	DSN    string `envconfig:"dsn"`
	// SeedSize is how many archived summaries warm the feed at startup.
	SeedSize int `envconfig:"seed_size" default:"100" validate:"gte=0"`
}

// Kafka is optional: no brokers disables publishing.
type Kafka struct {
	Brokers      []string      `envconfig:"brokers"`
	Topic        string        `envconfig:"topic" default:"photonscan.transactions" validate:"required"`
	BatchTimeout time.Duration `envconfig:"batch_timeout" default:"100ms" validate:"gt=0"`
}

type HTTP struct {
	Addr            string        `envconfig:"addr" default:":8080" validate:"required"`
	ShutdownTimeout time.Duration `envconfig:"shutdown_timeout" default:"10s" validate:"gt=0"`
}

type Config struct {
	Log       Log       `envconfig:"log"`
	Telemetry Telemetry `envconfig:"telemetry"`
	Chain     Chain     `envconfig:"chain"`
	Feed      Feed      `envconfig:"feed"`
	Mint      Mint      `envconfig:"mint"`
	Redis     Redis     `envconfig:"redis"`
	Archive   Archive   `envconfig:"archive"`
	Kafka     Kafka     `envconfig:"kafka"`
	HTTP      HTTP      `envconfig:"http"`
}

// Load reads the .env file at dotenvPath, if it exists, then the process
// environment, and validates the result.
func Load(dotenvPath string) (Config, error) {
	if err := loadDotEnv(dotenvPath); err != nil {
		return Config{}, fmt.Errorf("failed to load %s: %w", dotenvPath, err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}
