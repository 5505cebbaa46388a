package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	old := DefaultPath
	DefaultPath = filepath.Join(t.TempDir(), "calculator.yaml")
	t.Cleanup(func() { DefaultPath = old })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults %+v", cfg, Default())
	}
	if cfg.Server.Addr != ":5000" || cfg.Client.Addr != "localhost:5000" {
		t.Errorf("unexpected addresses %q %q", cfg.Server.Addr, cfg.Client.Addr)
	}
	if cfg.Client.KeepaliveTime != time.Minute || cfg.Client.KeepaliveTimeout != 30*time.Second {
		t.Errorf("unexpected keepalive %v/%v", cfg.Client.KeepaliveTime, cfg.Client.KeepaliveTimeout)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calculator.yaml")
	data := []byte(`
server:
  addr: 127.0.0.1:6000
  shutdownTimeout: 3s
  rateLimit:
    enabled: true
    rps: 5
client:
  callTimeout: 1500ms
  waitForAck: false
log:
  level: debug
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:6000" {
		t.Errorf("server addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Errorf("shutdown timeout = %v", cfg.Server.ShutdownTimeout)
	}
	if !cfg.Server.RateLimit.Enabled || cfg.Server.RateLimit.RPS != 5 || cfg.Server.RateLimit.Burst != 60 {
		t.Errorf("rate limit = %+v", cfg.Server.RateLimit)
	}
	if cfg.Client.CallTimeout != 1500*time.Millisecond || cfg.Client.WaitForAck {
		t.Errorf("client = %+v", cfg.Client)
	}
	// untouched keys keep their defaults
	if cfg.Client.Addr != "localhost:5000" || cfg.Server.IdleTimeout != 5*time.Minute {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("server: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvServerAddr, " :7000 ")
	t.Setenv(EnvClientAddr, "calc:7000")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvRateLimitEnabled, "true")
	t.Setenv(EnvRateLimitRPS, "2.5")
	t.Setenv(EnvRateLimitBurst, "4")

	cfg := Default()
	if err := ApplyEnvOverrides(&cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":7000" || cfg.Client.Addr != "calc:7000" || cfg.Log.Level != "warn" {
		t.Errorf("got %+v", cfg)
	}
	want := RateLimitConfig{Enabled: true, RPS: 2.5, Burst: 4}
	if cfg.Server.RateLimit != want {
		t.Errorf("rate limit = %+v, want %+v", cfg.Server.RateLimit, want)
	}

	t.Setenv(EnvRateLimitBurst, "many")
	if err := ApplyEnvOverrides(&cfg); err == nil {
		t.Error("expected error for invalid burst")
	}
}

func TestClientLog(t *testing.T) {
	cfg := Default()
	if got := cfg.ClientLog(); got.Level != "warn" {
		t.Errorf("default client level = %q, want warn", got.Level)
	}

	path := filepath.Join(t.TempDir(), "calculator.yaml")
	data := []byte(`
client:
  logLevel: info
log:
  level: error
  development: true
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := cfg.ClientLog()
	if got.Level != "info" || !got.Development {
		t.Errorf("ClientLog() = %+v, want explicit info level kept", got)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("server log level = %q, want error", cfg.Log.Level)
	}

	cfg.Client.LogLevel = ""
	if got := cfg.ClientLog(); got.Level != "error" {
		t.Errorf("empty client level = %q, want log.level", got.Level)
	}

	t.Setenv(EnvClientLogLevel, "debug")
	if err := ApplyEnvOverrides(&cfg); err != nil {
		t.Fatal(err)
	}
	if got := cfg.ClientLog(); got.Level != "debug" {
		t.Errorf("env client level = %q, want debug", got.Level)
	}
}
