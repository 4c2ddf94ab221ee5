package config

import (
	"time"

	"github.com/shopspring/decimal"
)

type AppConfig struct {
	CurrencyCode            string `yaml:"currency" env:"APP_CURRENCY"`
	Factor                  string `yaml:"projection-factor" env:"APP_PROJECTION_FACTOR"`
	RatePullingDelayMinutes int64  `yaml:"price-pulling-delay-minutes" env:"APP_PRICE_PULLING_DELAY_MINUTES"`

	factor decimal.Decimal
}

// Currency is the ISO code amounts are displayed in.
func (s *AppConfig) Currency() string {
	return s.CurrencyCode
}

func (s *AppConfig) ProjectionFactor() decimal.Decimal {
	return s.factor
}

func (s *AppConfig) PullingDelay() time.Duration {
	return time.Duration(s.RatePullingDelayMinutes) * time.Minute
}
