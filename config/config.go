// Package config loads calculator settings from an optional YAML file and CALC_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvServerAddr       = "CALC_SERVER_ADDR"
	EnvClientAddr       = "CALC_CLIENT_ADDR"
	EnvClientLogLevel   = "CALC_CLIENT_LOG_LEVEL"
	EnvLogLevel         = "CALC_LOG_LEVEL"
	EnvRateLimitEnabled = "CALC_RATE_LIMIT_ENABLED"
	EnvRateLimitRPS     = "CALC_RATE_LIMIT_RPS"
	EnvRateLimitBurst   = "CALC_RATE_LIMIT_BURST"
)

// DefaultPath is read when no path is given. It is fine for it not to exist.
var DefaultPath = "configs/calculator.yaml"

type Config struct {
	Server ServerConfig `yaml:"server"`
	Client ClientConfig `yaml:"client"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Addr            string          `yaml:"addr"`
	IdleTimeout     time.Duration   `yaml:"idleTimeout"`
	ShutdownTimeout time.Duration   `yaml:"shutdownTimeout"`
	RateLimit       RateLimitConfig `yaml:"rateLimit"`
}

type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
}

type ClientConfig struct {
	Addr string `yaml:"addr"`
	// KeepaliveTime is how long the connection may be idle before a ping is sent.
	KeepaliveTime    time.Duration `yaml:"keepaliveTime"`
	KeepaliveTimeout time.Duration `yaml:"keepaliveTimeout"`
	// MaxBackoff caps the delay between reconnect attempts.
	MaxBackoff time.Duration `yaml:"maxBackoff"`
	// CallTimeout bounds each call. Zero means no deadline.
	CallTimeout time.Duration `yaml:"callTimeout"`
	WaitForAck  bool          `yaml:"waitForAck"`
	// LogLevel replaces Log.Level for the client process, whose stdout carries the
	// transcript. Empty means Log.Level.
	LogLevel string `yaml:"logLevel"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":5000",
			IdleTimeout:     5 * time.Minute,
			ShutdownTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled: false,
				RPS:     30,
				Burst:   60,
			},
		},
		Client: ClientConfig{
			Addr:             "localhost:5000",
			KeepaliveTime:    60 * time.Second,
			KeepaliveTimeout: 30 * time.Second,
			MaxBackoff:       120 * time.Second,
			WaitForAck:       true,
			LogLevel:         "warn",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults and applies environment overrides. An empty path
// means DefaultPath, which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := ApplyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ClientLog returns the logging settings of the client process.
func (c Config) ClientLog() LogConfig {
	l := c.Log
	if c.Client.LogLevel != "" {
		l.Level = c.Client.LogLevel
	}
	return l
}

func ApplyEnvOverrides(cfg *Config) error {
	if v := env(EnvServerAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := env(EnvClientAddr); v != "" {
		cfg.Client.Addr = v
	}
	if v := env(EnvClientLogLevel); v != "" {
		cfg.Client.LogLevel = v
	}
	if v := env(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := env(EnvRateLimitEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRateLimitEnabled, err)
		}
		cfg.Server.RateLimit.Enabled = b
	}
	if v := env(EnvRateLimitRPS); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRateLimitRPS, err)
		}
		cfg.Server.RateLimit.RPS = f
	}
	if v := env(EnvRateLimitBurst); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRateLimitBurst, err)
		}
		cfg.Server.RateLimit.Burst = n
	}
	return nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
