package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestLoadConfigDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadConfig()
	is.NoErr(err)
	is.Equal(cfg.Port, "8080")
	is.Equal(cfg.StorageMode, StorageModeMemory)
	is.Equal(cfg.SeedDemoData, false)
	is.Equal(cfg.DefaultListLimit, 10)
}

func TestLoadConfigSQLiteMode(t *testing.T) {
	is := is.New(t)
	t.Setenv("STORAGE_MODE", "SQLITE")
	t.Setenv("DATABASE_PATH", "/tmp/test.db")

	cfg, err := LoadConfig()
	is.NoErr(err)
	is.Equal(cfg.StorageMode, StorageModeSQLite) // mode is case-insensitive
	is.Equal(cfg.DatabasePath, "/tmp/test.db")
}

func TestLoadConfigRejectsUnknownStorageMode(t *testing.T) {
	is := is.New(t)
	t.Setenv("STORAGE_MODE", "redis")

	_, err := LoadConfig()
	is.True(err != nil)
}

func TestLoadConfigParsesOrigins(t *testing.T) {
	is := is.New(t)
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, http://b.example")

	cfg, err := LoadConfig()
	is.NoErr(err)
	is.Equal(cfg.AllowedOrigins, []string{"http://a.example", "http://b.example"})
}

func TestInvalidIntFallsBackToDefault(t *testing.T) {
	is := is.New(t)
	t.Setenv("DEFAULT_LIST_LIMIT", "-4")

	cfg, err := LoadConfig()
	is.NoErr(err)
	is.Equal(cfg.DefaultListLimit, 10)
}
