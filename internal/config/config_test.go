package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, DriverPostgres, cfg.App.StoreDriver)
	assert.Equal(t, "qa_platform", cfg.Database.Name)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.App.StoreDriver)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_BadNumbersFallBack(t *testing.T) {
	t.Setenv("DB_PORT", "abc")
	t.Setenv("DB_CONN_MAX_LIFETIME", "soon")
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
}

func TestValidate(t *testing.T) {
	valid := Config{App: AppConfig{Port: "8000", StoreDriver: DriverMemory, Environment: "production"}}
	assert.NoError(t, valid.Validate())

	badDriver := valid
	badDriver.App.StoreDriver = "mongo"
	assert.Error(t, badDriver.Validate())

	noPassword := valid
	noPassword.App.StoreDriver = DriverPostgres
	assert.Error(t, noPassword.Validate())

	noPassword.Database.Password = "secret"
	assert.NoError(t, noPassword.Validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "qa", SSLMode: "disable"}

	assert.Equal(t, "host=db user=u password=p dbname=qa port=5432 sslmode=disable TimeZone=UTC", d.DSN())
}
