package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contable-pos/internal/domain"
	"github.com/jhoicas/Contable-pos/internal/domain/entity"
	"github.com/jhoicas/Contable-pos/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*Collection[entity.Product])(nil)
	_ repository.CustomerRepository = (*Collection[entity.Customer])(nil)
	_ repository.InvoiceRepository  = (*Collection[entity.SavedInvoice])(nil)
)

// control_total: suma de control del documento (valor de stock o total facturado).
// NULL en filas escritas antes de existir la columna.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS collections (
		name          TEXT PRIMARY KEY,
		document      JSONB NOT NULL,
		control_total NUMERIC(18,2),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`ALTER TABLE collections ADD COLUMN IF NOT EXISTS control_total NUMERIC(18,2)`,
}

// EnsureSchema crea la tabla de colecciones si no existe.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, ddl := range schemaDDL {
		if _, err := q.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}

// ControlTotal suma de control de una colección: valor de stock de los productos
// o total facturado de las facturas. Otras colecciones suman cero.
func ControlTotal[T any](records []T) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		switch v := any(r).(type) {
		case entity.Product:
			total = total.Add(v.StockValue())
		case entity.SavedInvoice:
			total = total.Add(v.Totals.GrandTotal)
		}
	}
	return total.Round(2)
}

// Collection guarda una colección completa como un documento JSONB (una fila por colección).
type Collection[T any] struct {
	pool *pgxpool.Pool
	tx   *TxRunner
	name string
}

// NewCollection construye el adaptador para la colección name.
func NewCollection[T any](pool *pgxpool.Pool, name string) *Collection[T] {
	return &Collection[T]{pool: pool, tx: NewTxRunner(pool), name: name}
}

// Load lee el documento. Sin fila: colección vacía. Documento ilegible o que no
// cuadra con su suma de control: vacía + domain.ErrCorruptData.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	return loadDocument[T](ctx, c.pool, c.name)
}

// Save reemplaza el documento dentro de una transacción.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	err := c.tx.Run(ctx, func(q Querier) error {
		return saveDocument(ctx, q, c.name, records)
	})
	if err != nil && !domain.IsPersistence(err) {
		return &domain.PersistenceError{Op: "save", Collection: c.name, Err: err}
	}
	return err
}

func loadDocument[T any](ctx context.Context, q Querier, name string) ([]T, error) {
	var (
		doc    []byte
		stored decimal.NullDecimal
	)
	err := q.QueryRow(ctx, `SELECT document, control_total FROM collections WHERE name = $1`, name).
		Scan(&doc, &stored)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUndefinedTable(err) {
			return []T{}, nil
		}
		return []T{}, &domain.PersistenceError{Op: "load", Collection: name, Err: err}
	}
	var records []T
	if err := json.Unmarshal(doc, &records); err != nil {
		return []T{}, &domain.PersistenceError{
			Op: "load", Collection: name,
			Err: fmt.Errorf("%w: %v", domain.ErrCorruptData, err),
		}
	}
	if records == nil {
		records = []T{}
	}
	if stored.Valid {
		if got := ControlTotal(records); !got.Equal(stored.Decimal) {
			return []T{}, &domain.PersistenceError{
				Op: "load", Collection: name,
				Err: fmt.Errorf("%w: suma de control %s, documento %s", domain.ErrCorruptData,
					stored.Decimal.StringFixed(2), got.StringFixed(2)),
			}
		}
	}
	return records, nil
}

func saveDocument[T any](ctx context.Context, q Querier, name string, records []T) error {
	if records == nil {
		records = []T{}
	}
	doc, err := json.Marshal(records)
	if err != nil {
		return &domain.PersistenceError{Op: "save", Collection: name, Err: err}
	}
	query := `
		INSERT INTO collections (name, document, control_total, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (name) DO UPDATE SET
			document = EXCLUDED.document,
			control_total = EXCLUDED.control_total,
			updated_at = EXCLUDED.updated_at`
	if _, err := q.Exec(ctx, query, name, doc, ControlTotal(records)); err != nil {
		return &domain.PersistenceError{Op: "save", Collection: name, Err: fmt.Errorf("upsert: %w", err)}
	}
	return nil
}
