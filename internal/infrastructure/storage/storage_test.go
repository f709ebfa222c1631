package storage_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contable-pos/internal/domain/entity"
	"github.com/jhoicas/Contable-pos/internal/infrastructure/storage"
	"github.com/jhoicas/Contable-pos/pkg/config"
)

func TestOpen_JSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := &config.Config{Storage: config.StorageConfig{
		Driver: config.StorageJSON, DataDir: "d", ProductsFile: "p.json", CustomersFile: "c.json", InvoicesFile: "i.json",
	}}
	st, err := storage.Open(context.Background(), cfg, fs)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Customers.Save(context.Background(), []entity.Customer{{Name: "Ana"}}))
	ok, err := afero.Exists(fs, "d/c.json")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := storage.Open(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: "sqlite"}}, nil)
	assert.Error(t, err)
}
