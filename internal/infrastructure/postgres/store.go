package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Contable-pos/internal/domain/entity"
)

// Store agrupa las tres colecciones guardadas en PostgreSQL.
type Store struct {
	Products  *Collection[entity.Product]
	Customers *Collection[entity.Customer]
	Invoices  *Collection[entity.SavedInvoice]
}

// NewStore crea el esquema si hace falta y arma las colecciones.
func NewStore(ctx context.Context, pool *pgxpool.Pool) (*Store, error) {
	if err := EnsureSchema(ctx, pool); err != nil {
		return nil, err
	}
	return &Store{
		Products:  NewCollection[entity.Product](pool, "products"),
		Customers: NewCollection[entity.Customer](pool, "customers"),
		Invoices:  NewCollection[entity.SavedInvoice](pool, "invoices"),
	}, nil
}
