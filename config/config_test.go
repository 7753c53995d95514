package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "APP_ENV", "APP_PORT"} {
		// t.Setenv registers the restore; the unset exercises the fallback
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Database.Host != "localhost" {
		t.Errorf("Host = %q, se esperaba localhost", cfg.Database.Host)
	}
	if cfg.Database.Port != "5432" {
		t.Errorf("Port = %q, se esperaba 5432", cfg.Database.Port)
	}
	if cfg.Database.DBName != "gestion_inventario" {
		t.Errorf("DBName = %q, se esperaba gestion_inventario", cfg.Database.DBName)
	}
	if cfg.Database.SSLMode != "disable" {
		t.Errorf("SSLMode = %q, se esperaba disable", cfg.Database.SSLMode)
	}
	if cfg.App.Port != "8080" {
		t.Errorf("App.Port = %q, se esperaba 8080", cfg.App.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "inventario_test")
	t.Setenv("APP_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Database.Host != "db.internal" {
		t.Errorf("Host = %q", cfg.Database.Host)
	}
	if cfg.Database.Port != "5433" {
		t.Errorf("Port = %q", cfg.Database.Port)
	}
	if cfg.Database.DBName != "inventario_test" {
		t.Errorf("DBName = %q", cfg.Database.DBName)
	}
	if cfg.App.Port != "9090" {
		t.Errorf("App.Port = %q", cfg.App.Port)
	}
}

func TestGetDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "secreto",
		DBName:   "gestion_inventario",
		SSLMode:  "disable",
	}

	want := "host=localhost port=5432 user=postgres password=secreto dbname=gestion_inventario sslmode=disable"
	if got := db.GetDSN(); got != want {
		t.Errorf("GetDSN = %q, se esperaba %q", got, want)
	}
}
