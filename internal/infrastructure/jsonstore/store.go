package jsonstore

import (
	"github.com/spf13/afero"

	"github.com/jhoicas/Contable-pos/internal/domain/entity"
	"github.com/jhoicas/Contable-pos/pkg/config"
)

// Nombres de las colecciones.
const (
	ProductsCollection  = "products"
	CustomersCollection = "customers"
	InvoicesCollection  = "invoices"
)

// Store agrupa las tres colecciones del sistema.
type Store struct {
	Products  *Collection[entity.Product]
	Customers *Collection[entity.Customer]
	Invoices  *Collection[entity.SavedInvoice]
}

// NewStore arma las colecciones en las rutas configuradas. fs nil usa el sistema de archivos del SO.
func NewStore(fs afero.Fs, cfg config.StorageConfig) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{
		Products:  NewCollection[entity.Product](fs, ProductsCollection, cfg.ProductsPath()),
		Customers: NewCollection[entity.Customer](fs, CustomersCollection, cfg.CustomersPath()),
		Invoices:  NewCollection[entity.SavedInvoice](fs, InvoicesCollection, cfg.InvoicesPath()),
	}
}
