package config

import (
	"os"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"max.ks1230/personal-accountant/internal/logger"
)

const (
	defaultConfigFile = "data/config.yaml"
	configFileEnv     = "LEDGER_CONFIG"
	dotEnvFile        = ".env"
)

type config struct {
	Telegram  TelegramConfig  `yaml:"telegram"`
	App       AppConfig       `yaml:"app"`
	Storage   StorageConfig   `yaml:"storage"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Prices    PricesConfig    `yaml:"prices"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Reporter  ReporterConfig  `yaml:"reporter"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

type Service struct {
	config config
}

// New reads the YAML file named by LEDGER_CONFIG (data/config.yaml when
// unset), then applies a .env file if one exists and finally the process
// environment. A missing YAML file is not an error, every section has
// defaults.
func New() (*Service, error) {
	path := os.Getenv(configFileEnv)
	if path == "" {
		path = defaultConfigFile
	}
	return Load(path)
}

// Load is New with an explicit file path.
func Load(path string) (*Service, error) {
	s := &Service{config: defaults()}

	rawYAML, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Info("config file not found, using defaults", zap.String("path", path))
	case err != nil:
		return nil, errors.Wrap(err, "reading config file")
	default:
		if err = yaml.Unmarshal(rawYAML, &s.config); err != nil {
			return nil, errors.Wrap(err, "parsing yaml")
		}
	}

	if err = godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "reading .env")
	}
	if err = env.Parse(&s.config); err != nil {
		return nil, errors.Wrap(err, "parsing environment")
	}

	if err = s.config.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func defaults() config {
	return config{
		Telegram: TelegramConfig{TimeoutSeconds: 10},
		App: AppConfig{
			CurrencyCode:            "USD",
			Factor:                  "1.1",
			RatePullingDelayMinutes: 10,
		},
		Storage: StorageConfig{Kind: "file", Directory: "data/ledgers"},
		Prices: PricesConfig{
			Timeout:  5,
			BTCURL:   "https://api.coindesk.com/v1/bpi/currentprice/BTC.json",
			GoldURL:  "https://www.goldapi.io/api/XAU/USD",
			IRRURL:   "https://api.exchangerate-api.com/v4/latest/IRR",
			BTCPath:  "$.bpi.USD.rate_float",
			GoldPath: "$.price",
			IRRPath:  "$.rates.USD",
		},
		Memcached: MemcachedConfig{TTL: 300},
		Kafka:     KafkaConfig{Consumer: "reporters", RepTopic: "reports"},
		Reporter:  ReporterConfig{Address: "127.0.0.1:8090"},
		Metrics:   MetricsConfig{Address: ":8080"},
		Tracing:   TracingConfig{Service: "personal-accountant", Param: 1},
	}
}

func (c *config) validate() error {
	f, err := decimal.NewFromString(c.App.Factor)
	if err != nil {
		return errors.Wrapf(err, "app: projection factor %q", c.App.Factor)
	}
	if f.IsNegative() {
		return errors.Errorf("app: projection factor %s is negative", f)
	}
	c.App.factor = f
	return nil
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Prices() *PricesConfig {
	return &s.config.Prices
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Reporter() *ReporterConfig {
	return &s.config.Reporter
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}
