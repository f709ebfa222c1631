package repository

import (
	"context"

	"github.com/jhoicas/Contable-pos/internal/domain/entity"
)

// Collection define el puerto de persistencia de una colección completa (DIP).
//
// Load devuelve los registros en orden. Si el documento no existe devuelve una
// colección vacía sin error; si está corrupto devuelve una colección vacía y un
// error que envuelve domain.ErrCorruptData (advertencia recuperable).
//
// Save reemplaza la colección completa: o queda el documento nuevo o, si falla,
// el anterior intacto. Los errores son *domain.PersistenceError.
type Collection[T any] interface {
	Load(ctx context.Context) ([]T, error)
	Save(ctx context.Context, records []T) error
}

// ProductRepository colección de productos (inventario).
type ProductRepository = Collection[entity.Product]

// CustomerRepository colección de clientes.
type CustomerRepository = Collection[entity.Customer]

// InvoiceRepository colección de facturas guardadas (libro).
type InvoiceRepository = Collection[entity.SavedInvoice]
