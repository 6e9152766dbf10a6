package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Chdir(t.TempDir()) // sin .env en el directorio de trabajo

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.True(t, cfg.DB.MigrateOnStart)
	assert.Equal(t, 30, cfg.Report.HistoryDays)
	assert.Equal(t, 100, cfg.Report.TransactionLimit)
	assert.Equal(t, 5, cfg.Report.TopN)
	assert.False(t, cfg.Seed.OnStart)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "MEMORY")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SEED_SAMPLE_DATA", "true")
	t.Setenv("REPORT_HISTORY_DAYS", "7")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverMemory, cfg.DB.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Seed.OnStart)
	assert.Equal(t, 7, cfg.Report.HistoryDays)
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "sqlite")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "inv", Password: "p@ss/word", DBName: "ledger", SSLMode: "disable"}
	assert.Equal(t, "postgres://inv:p%40ss%2Fword@db:5432/ledger?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
