package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contable-pos/internal/application/billing"
	"github.com/jhoicas/Contable-pos/internal/application/dto"
	"github.com/jhoicas/Contable-pos/internal/domain"
	"github.com/jhoicas/Contable-pos/internal/domain/entity"
	"github.com/jhoicas/Contable-pos/internal/infrastructure/jsonstore"
)

func TestCustomerDirectory_AgregaYPersiste(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	dir := billing.NewCustomerDirectory(ctx, jsonstore.NewStore(fs, testStorage).Customers, zerolog.Nop())

	c, err := dir.AddCustomer(ctx, dto.CustomerInput{Name: "  Ana  ", Phone: " 555 ", TaxNumber: "T1"})
	require.NoError(t, err)
	assert.Equal(t, entity.Customer{Name: "Ana", Phone: "555", TaxNumber: "T1"}, c)

	// Duplicados permitidos.
	_, err = dir.AddCustomer(ctx, dto.CustomerInput{Name: "Ana", Phone: "555", TaxNumber: "T1"})
	require.NoError(t, err)

	reloaded := billing.NewCustomerDirectory(ctx, jsonstore.NewStore(fs, testStorage).Customers, zerolog.Nop())
	assert.Len(t, reloaded.ListCustomers(), 2)
}

func TestCustomerDirectory_NombreObligatorio(t *testing.T) {
	ctx := context.Background()
	dir := billing.NewCustomerDirectory(ctx, jsonstore.NewStore(afero.NewMemMapFs(), testStorage).Customers, zerolog.Nop())

	_, err := dir.AddCustomer(ctx, dto.CustomerInput{Name: "   ", Phone: "1"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name"}, verr.FieldNames())
	assert.Empty(t, dir.ListCustomers())
}

type failingCustomers struct{}

func (failingCustomers) Load(context.Context) ([]entity.Customer, error) {
	return nil, errors.New("disco no disponible")
}

func (failingCustomers) Save(context.Context, []entity.Customer) error {
	return &domain.PersistenceError{Op: "save", Collection: "customers", Err: errors.New("disco no disponible")}
}

func TestCustomerDirectory_FallosDePersistencia(t *testing.T) {
	ctx := context.Background()
	dir := billing.NewCustomerDirectory(ctx, failingCustomers{}, zerolog.Nop())
	assert.Error(t, dir.LoadWarning())

	c, err := dir.AddCustomer(ctx, dto.CustomerInput{Name: "Luis"})
	assert.True(t, domain.IsPersistence(err))
	assert.Equal(t, "Luis", c.Name)
	assert.Len(t, dir.ListCustomers(), 1)
}
