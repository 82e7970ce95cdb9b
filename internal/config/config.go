// Package config loads server settings from defaults, an optional YAML
// file, a .env file and GRADEBOOK_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. GRADEBOOK_SERVER_PORT.
const EnvPrefix = "GRADEBOOK"

const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Config is the server configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// StoreConfig selects the record store backend.
type StoreConfig struct {
	Driver string `mapstructure:"driver"` // sqlite or redis
	Path   string `mapstructure:"path"`   // SQLite database file
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// AuthConfig enables bearer-token auth when PassphraseHash is set.
type AuthConfig struct {
	PassphraseHash string        `mapstructure:"passphrase_hash"`
	JWTSecret      string        `mapstructure:"jwt_secret"`
	TokenTTL       time.Duration `mapstructure:"token_ttl"`
}

// Enabled reports whether RPCs require a token.
func (c AuthConfig) Enabled() bool {
	return c.PassphraseHash != ""
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads the configuration. path names a config file; when empty,
// config.yaml is looked up in ./config and the working directory and may
// be absent.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.path", "./data/gradebook.db")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "gradebook:")
	v.SetDefault("auth.passphrase_hash", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", "24h")
	v.SetDefault("log.level", "info")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadDotEnv loads path into the environment if it exists. Variables
// already set win.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid config: server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	switch c.Store.Driver {
	case DriverSQLite:
		if c.Store.Path == "" {
			return errors.New("invalid config: store.path is required for the sqlite driver")
		}
	case DriverRedis:
		if c.Redis.Addr == "" {
			return errors.New("invalid config: redis.addr is required for the redis driver")
		}
	default:
		return fmt.Errorf("invalid config: unknown store.driver %q", c.Store.Driver)
	}

	if c.Auth.Enabled() {
		if len(c.Auth.JWTSecret) < 16 {
			return errors.New("invalid config: auth.jwt_secret must be at least 16 characters when auth is enabled")
		}
		if c.Auth.TokenTTL <= 0 {
			return errors.New("invalid config: auth.token_ttl must be positive")
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid config: unknown log.level %q", c.Log.Level)
	}
	return nil
}
