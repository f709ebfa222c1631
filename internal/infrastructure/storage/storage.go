// Package storage elige el almacén de colecciones según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/jhoicas/Contable-pos/internal/domain/repository"
	"github.com/jhoicas/Contable-pos/internal/infrastructure/jsonstore"
	"github.com/jhoicas/Contable-pos/internal/infrastructure/postgres"
	"github.com/jhoicas/Contable-pos/pkg/config"
)

// Stores las tres colecciones y la función para liberar recursos.
type Stores struct {
	Products  repository.ProductRepository
	Customers repository.CustomerRepository
	Invoices  repository.InvoiceRepository
	Close     func()
}

// Open abre el almacén configurado. Con el driver json, fs nil usa el disco.
func Open(ctx context.Context, cfg *config.Config, fs afero.Fs) (*Stores, error) {
	switch cfg.Storage.Driver {
	case config.StorageJSON:
		st := jsonstore.NewStore(fs, cfg.Storage)
		return &Stores{
			Products:  st.Products,
			Customers: st.Customers,
			Invoices:  st.Invoices,
			Close:     func() {},
		}, nil
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		st, err := postgres.NewStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return &Stores{
			Products:  st.Products,
			Customers: st.Customers,
			Invoices:  st.Invoices,
			Close:     pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido %q", cfg.Storage.Driver)
	}
}
