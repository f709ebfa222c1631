package config_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contable-pos/pkg/config"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, config.StorageJSON, cfg.Storage.Driver)
	assert.Equal(t, filepath.Join("data", "inventory.json"), cfg.Storage.ProductsPath())
	assert.Equal(t, filepath.Join("data", "customers.json"), cfg.Storage.CustomersPath())
	assert.Equal(t, filepath.Join("data", "invoices.json"), cfg.Storage.InvoicesPath())
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
}

func TestFromViper_Sobrescritos(t *testing.T) {
	v := viper.New()
	v.Set("DATA_DIR", "/var/lib/pos")
	v.Set("STORAGE_DRIVER", "POSTGRES")
	v.Set("HTTP_PORT", "9090")
	v.Set("DB_PASSWORD", "p@ss:word")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, config.StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, "/var/lib/pos/invoices.json", cfg.Storage.InvoicesPath())
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Contains(t, cfg.DB.DSN(), "p%40ss%3Aword", "la contraseña debe ir codificada en el DSN")
}

func TestFromViper_DriverInvalido(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "sqlite")

	_, err := config.FromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_DatabaseURLTienePrioridad(t *testing.T) {
	db := config.DBConfig{DatabaseURL: "postgres://x@y/z", Host: "localhost", Port: 5432}
	assert.Equal(t, "postgres://x@y/z", db.ConnectionString())
}
