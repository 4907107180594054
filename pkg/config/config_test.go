package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barrapos/backoffice-api/pkg/config"
)

// TestLoadDefaults sin entorno, la configuración queda con los valores de
// desarrollo.
func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Empty(t, cfg.Redis.Addr, "sin REDIS_ADDR el cache queda deshabilitado")
}

// TestLoadEnvOverride las variables de entorno mandan sobre los defaults.
func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6432, cfg.DB.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

// TestDSNEscapaCredenciales caracteres especiales en la contraseña no rompen
// el connection string.
func TestDSNEscapaCredenciales(t *testing.T) {
	db := config.DBConfig{
		Host: "localhost", Port: 5432,
		User: "app", Password: "p@ss/word",
		DBName: "barrapos", SSLMode: "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%2Fword")
	assert.Contains(t, dsn, "sslmode=disable")
}

// TestConnectionStringPrefiereDatabaseURL DATABASE_URL completo gana sobre
// los campos individuales.
func TestConnectionStringPrefiereDatabaseURL(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgresql://u:p@h:5432/x?sslmode=require",
		Host:        "ignored",
	}
	assert.Equal(t, "postgresql://u:p@h:5432/x?sslmode=require", db.ConnectionString())
}
