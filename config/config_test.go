package config

import (
	"testing"
	"time"

	"github.com/ardanlabs/conf/v3"
)

func TestDefaults(t *testing.T) {
	var cfg Config
	if _, err := conf.Parse("CONFIGTEST", &cfg); err != nil {
		t.Fatalf("parsing defaults: %v", err)
	}

	if cfg.Web.Address != "0.0.0.0:4000" {
		t.Errorf("unexpected default address %s", cfg.Web.Address)
	}
	if cfg.DB.URI != "mongodb://localhost:27017" {
		t.Errorf("unexpected default db uri %s", cfg.DB.URI)
	}
	if cfg.Razorpay.URL != "https://api.razorpay.com" {
		t.Errorf("unexpected default gateway url %s", cfg.Razorpay.URL)
	}
	if cfg.Session.Lifetime != 24*time.Hour {
		t.Errorf("unexpected default session lifetime %s", cfg.Session.Lifetime)
	}
	if cfg.Limit.RPS != 1 || cfg.Limit.Burst != 5 {
		t.Errorf("unexpected default rate limits rps=%v burst=%d", cfg.Limit.RPS, cfg.Limit.Burst)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("CONFIGTESTENV_WEB_ADDRESS", "127.0.0.1:9999")

	var cfg Config
	if _, err := conf.Parse("CONFIGTESTENV", &cfg); err != nil {
		t.Fatalf("parsing config: %v", err)
	}

	if cfg.Web.Address != "127.0.0.1:9999" {
		t.Errorf("expected the env override, got %s", cfg.Web.Address)
	}
}
