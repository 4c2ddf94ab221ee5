package config

import "time"

type TelegramConfig struct {
	ApiToken       string `yaml:"token" env:"TELEGRAM_TOKEN"`
	TimeoutSeconds int    `yaml:"message-timeout-seconds" env:"TELEGRAM_MESSAGE_TIMEOUT_SECONDS"`
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}

func (t *TelegramConfig) MessageTimeout() time.Duration {
	return time.Duration(t.TimeoutSeconds) * time.Second
}
