package config

import "time"

type PricesConfig struct {
	Timeout   int64  `yaml:"timeout-seconds" env:"PRICES_TIMEOUT_SECONDS"`
	BTCURL    string `yaml:"btc-url" env:"PRICES_BTC_URL"`
	BTCPath   string `yaml:"btc-path"`
	GoldURL   string `yaml:"gold-url" env:"PRICES_GOLD_URL"`
	GoldPath  string `yaml:"gold-path"`
	GoldToken string `yaml:"gold-token" env:"PRICES_GOLD_TOKEN"`
	IRRURL    string `yaml:"irr-url" env:"PRICES_IRR_URL"`
	IRRPath   string `yaml:"irr-path"`
}

// FetchTimeout bounds a single source request.
func (p *PricesConfig) FetchTimeout() time.Duration {
	return time.Duration(p.Timeout) * time.Second
}

func (p *PricesConfig) BTCSource() (url, path string) {
	return p.BTCURL, p.BTCPath
}

func (p *PricesConfig) GoldSource() (url, path string) {
	return p.GoldURL, p.GoldPath
}

func (p *PricesConfig) GoldAccessToken() string {
	return p.GoldToken
}

func (p *PricesConfig) IRRSource() (url, path string) {
	return p.IRRURL, p.IRRPath
}
