package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type HTTPServerConfig struct {
	Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	TimeoutGraceful time.Duration `yaml:"timeout_graceful_shutdown" env:"HTTP_TIMEOUT_GRACEFUL" env-default:"15s"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type NATSConfig struct {
	Enabled bool   `yaml:"enabled" env:"NATS_ENABLED" env-default:"false"`
	URL     string `yaml:"url" env:"NATS_URL" env-default:"nats://localhost:4222"`
	Subject string `yaml:"subject" env:"NATS_NOTIFICATION_SUBJECT" env-default:"storefront.notifications"`
}

type LoggerConfig struct {
	Level      string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Encoding   string `yaml:"encoding" env:"LOG_ENCODING" env-default:"json"`
	TimeFormat string `yaml:"time_format" env:"LOG_TIME_FORMAT" env-default:"2006-01-02T15:04:05.000Z07:00"`
}

type WalletConfig struct {
	ConnectDelay time.Duration `yaml:"connect_delay" env:"WALLET_CONNECT_DELAY" env-default:"1s"`
}

type PurchaseConfig struct {
	SettleDelay time.Duration `yaml:"settle_delay" env:"PURCHASE_SETTLE_DELAY" env-default:"2s"`
}

type RefreshConfig struct {
	FailureRate    float64       `yaml:"failure_rate" env:"REFRESH_FAILURE_RATE" env-default:"0.3"`
	FetchDelay     time.Duration `yaml:"fetch_delay" env:"REFRESH_FETCH_DELAY" env-default:"300ms"`
	AttemptTimeout time.Duration `yaml:"attempt_timeout" env:"REFRESH_ATTEMPT_TIMEOUT" env-default:"5s"`
	RetryDelay     time.Duration `yaml:"retry_delay" env:"REFRESH_RETRY_DELAY" env-default:"1s"`
	MaxRetries     uint64        `yaml:"max_retries" env:"REFRESH_MAX_RETRIES" env-default:"3"`
}

type Config struct {
	Env        string           `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServerConfig `yaml:"http_server"`
	Redis      RedisConfig      `yaml:"redis"`
	NATS       NATSConfig       `yaml:"nats"`
	Logger     LoggerConfig     `yaml:"logger"`
	Wallet     WalletConfig     `yaml:"wallet"`
	Purchase   PurchaseConfig   `yaml:"purchase"`
	Refresh    RefreshConfig    `yaml:"refresh"`
}

func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	err := cleanenv.ReadConfig(path, &cfg)
	if err != nil {
		if _, ok := err.(*os.PathError); ok {
			log.Printf("Warning: Config file not found at %s, loading from environment variables only.", path)
			if errEnv := cleanenv.ReadEnv(&cfg); errEnv != nil {
				return nil, errEnv
			}
			return &cfg, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	return cfg
}
