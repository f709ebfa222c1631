package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contable-pos/internal/application/billing"
	"github.com/jhoicas/Contable-pos/internal/application/dto"
	"github.com/jhoicas/Contable-pos/internal/application/inventory"
	"github.com/jhoicas/Contable-pos/internal/domain"
	"github.com/jhoicas/Contable-pos/internal/domain/entity"
	"github.com/jhoicas/Contable-pos/internal/infrastructure/jsonstore"
	"github.com/jhoicas/Contable-pos/pkg/config"
)

// env arma catálogo, libro y constructor sobre un sistema de archivos en memoria.
type env struct {
	fs      afero.Fs
	catalog *inventory.Catalog
	ledger  *billing.Ledger
	builder *billing.Builder
}

func newEnv(t *testing.T) *env {
	t.Helper()
	return newEnvOn(t, afero.NewMemMapFs())
}

func newEnvOn(t *testing.T, fs afero.Fs) *env {
	t.Helper()
	ctx := context.Background()
	store := jsonstore.NewStore(fs, testStorage)
	catalog := inventory.NewCatalog(ctx, store.Products, zerolog.Nop())
	ledger := billing.NewLedger(ctx, store.Invoices, zerolog.Nop())
	return &env{
		fs:      fs,
		catalog: catalog,
		ledger:  ledger,
		builder: billing.NewBuilder(catalog, ledger, zerolog.Nop()),
	}
}

// sell abre un borrador, agrega líneas (cantidad, precio) fuera de catálogo y finaliza.
func (e *env) sell(t *testing.T, lines ...[2]string) entity.SavedInvoice {
	t.Helper()
	d := e.builder.OpenDraft()
	for _, l := range lines {
		_, err := e.builder.AddLineItem(d.ID, dto.LineItemInput{
			ItemName: "Servicio", Quantity: dto.NumericText(l[0]), UnitPrice: dto.NumericText(l[1]),
		})
		require.NoError(t, err)
	}
	inv, err := e.builder.Finalize(context.Background(), d.ID)
	require.NoError(t, err)
	return inv
}

// failingInvoices colección de facturas cuyo Save siempre falla.
type failingInvoices struct{}

func (failingInvoices) Load(context.Context) ([]entity.SavedInvoice, error) {
	return []entity.SavedInvoice{}, nil
}

func (failingInvoices) Save(context.Context, []entity.SavedInvoice) error {
	return &domain.PersistenceError{Op: "save", Collection: "invoices", Err: errors.New("solo lectura")}
}

var testStorage = config.StorageConfig{
	DataDir:       "data",
	ProductsFile:  "inventory.json",
	CustomersFile: "customers.json",
	InvoicesFile:  "invoices.json",
}
