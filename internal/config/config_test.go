package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":9999" || cfg.GRPCAddr != ":9090" {
		t.Fatalf("addrs: %+v", cfg)
	}
	if cfg.JWTTTL != 24*time.Hour || cfg.ProductCacheTTL != 5*time.Minute {
		t.Fatalf("durations: %+v", cfg)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "k2:9092" {
		t.Fatalf("brokers=%v", cfg.KafkaBrokers)
	}
	if !cfg.MigrateOnStart {
		t.Fatalf("migrations should run by default")
	}
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}
}

func TestSlogLevel(t *testing.T) {
	if (Config{LogLevel: "DEBUG"}).SlogLevel() != slog.LevelDebug {
		t.Fatalf("debug expected")
	}
	if (Config{LogLevel: "nope"}).SlogLevel() != slog.LevelInfo {
		t.Fatalf("info expected")
	}
}
