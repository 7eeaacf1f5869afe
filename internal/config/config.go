// Package config はアプリケーション設定を提供する。
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config はアプリケーション設定を保持する
type Config struct {
	// Valkey接続設定
	RedisHost string `envconfig:"REDIS_HOST" required:"true"`
	RedisPort string `envconfig:"REDIS_PORT" required:"true"`
	RedisPass string `envconfig:"REDIS_PASS"`
	RedisDB   int    `envconfig:"REDIS_DB" default:"0"`

	// CoA通知設定
	CoATopic string `envconfig:"COA_TOPIC" default:"radius_coa"`

	// HTTP設定
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8090"`
	GinMode    string `envconfig:"GIN_MODE" default:"release"`

	// ログ設定
	LogLevel          string `envconfig:"LOG_LEVEL" default:"info"`
	LogMaskIdentifier bool   `envconfig:"LOG_MASK_IDENTIFIER" default:"true"`
}

// Load は環境変数から設定を読み込む
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// ValkeyAddr はValkey接続アドレスを "host:port" 形式で返す
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// validate は設定値のバリデーションを行う
func (c *Config) validate() error {
	if strings.TrimSpace(c.CoATopic) == "" {
		return fmt.Errorf("COA_TOPIC must not be empty")
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be one of debug/release/test: %s", c.GinMode)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug/info/warn/error: %s", c.LogLevel)
	}
	return nil
}
