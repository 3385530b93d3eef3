package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "READ_TIMEOUT", "WRITE_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT",
		"APP_NAME", "DB_DSN", "HOUSEHOLD_FILE", "CONFLICT_LIST_LIMIT",
		"DB_MAX_OPEN_CONNS", "DB_PING_TIMEOUT",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.Addr() != ":8080" {
		t.Errorf("Expected default addr ':8080', got %s", cfg.Addr())
	}
	if cfg.Server.ReadTimeout != 5*time.Second || cfg.Server.WriteTimeout != 10*time.Second {
		t.Errorf("Unexpected timeouts: %v / %v", cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)
	}
	if cfg.Log.App != "pet-care-planner" {
		t.Errorf("Expected default app name, got %s", cfg.Log.App)
	}
	if cfg.DBDSN != "" || cfg.Household != "" {
		t.Errorf("Expected optional values empty, got %q / %q", cfg.DBDSN, cfg.Household)
	}
	if cfg.ConflictMax != 50 {
		t.Errorf("Expected conflict limit 50, got %d", cfg.ConflictMax)
	}
	if cfg.DBMaxConns != 5 || cfg.DBPingWait != 3*time.Second {
		t.Errorf("Unexpected pool defaults: %d / %v", cfg.DBMaxConns, cfg.DBPingWait)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DB_DSN", " postgres://localhost/pets ")
	t.Setenv("HOUSEHOLD_FILE", "household.yaml")
	t.Setenv("CONFLICT_LIST_LIMIT", "10")
	t.Setenv("DB_MAX_OPEN_CONNS", "12")
	t.Setenv("DB_PING_TIMEOUT", "500ms")

	cfg := Load()

	if cfg.Addr() != ":9090" {
		t.Errorf("Expected addr ':9090', got %s", cfg.Addr())
	}
	if cfg.Server.ReadTimeout != 2*time.Second {
		t.Errorf("Expected read timeout 2s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Expected json format, got %s", cfg.Log.Format)
	}
	if cfg.DBDSN != "postgres://localhost/pets" {
		t.Errorf("Expected trimmed DSN, got %q", cfg.DBDSN)
	}
	if cfg.Household != "household.yaml" || cfg.ConflictMax != 10 {
		t.Errorf("Unexpected values: %q %d", cfg.Household, cfg.ConflictMax)
	}
	if cfg.DBMaxConns != 12 || cfg.DBPingWait != 500*time.Millisecond {
		t.Errorf("Unexpected pool values: %d / %v", cfg.DBMaxConns, cfg.DBPingWait)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("WRITE_TIMEOUT", "soon")
	t.Setenv("CONFLICT_LIST_LIMIT", "-3")

	cfg := Load()

	if cfg.Server.WriteTimeout != 10*time.Second {
		t.Errorf("Expected fallback write timeout, got %v", cfg.Server.WriteTimeout)
	}
	if cfg.ConflictMax != 50 {
		t.Errorf("Expected fallback conflict limit, got %d", cfg.ConflictMax)
	}
}
