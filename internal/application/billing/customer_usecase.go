package billing

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Contable-pos/internal/application/dto"
	"github.com/jhoicas/Contable-pos/internal/domain"
	"github.com/jhoicas/Contable-pos/internal/domain/entity"
	"github.com/jhoicas/Contable-pos/internal/domain/inventory"
	"github.com/jhoicas/Contable-pos/internal/domain/repository"
)

// CustomerDirectory directorio de clientes respaldado por la colección "customers".
type CustomerDirectory struct {
	repo        repository.CustomerRepository
	log         zerolog.Logger
	customers   []entity.Customer
	loadWarning error
}

// NewCustomerDirectory carga el directorio; un error de carga deja el directorio vacío.
func NewCustomerDirectory(ctx context.Context, repo repository.CustomerRepository, log zerolog.Logger) *CustomerDirectory {
	d := &CustomerDirectory{repo: repo, log: log}
	customers, err := repo.Load(ctx)
	if err != nil {
		d.loadWarning = err
		log.Warn().Err(err).Msg("no se pudo cargar el directorio de clientes; se inicia vacío")
		customers = nil
	}
	d.customers = append([]entity.Customer{}, customers...)
	return d
}

// LoadWarning error recuperable de la carga inicial, o nil.
func (d *CustomerDirectory) LoadWarning() error { return d.loadWarning }

// AddCustomer registra un cliente. Solo el nombre es obligatorio; se permiten duplicados.
func (d *CustomerDirectory) AddCustomer(ctx context.Context, in dto.CustomerInput) (entity.Customer, error) {
	verr := &domain.ValidationError{}
	c := newCustomer(verr, in)
	if err := verr.OrNil(); err != nil {
		return entity.Customer{}, err
	}

	d.customers = append(d.customers, c)
	d.log.Info().Str("name", c.Name).Msg("cliente registrado")
	if err := d.repo.Save(ctx, d.customers); err != nil {
		d.log.Error().Err(err).Msg("no se pudo guardar el directorio de clientes; el cambio queda solo en memoria")
		return c, err
	}
	return c, nil
}

// ListCustomers copia del directorio en orden de registro.
func (d *CustomerDirectory) ListCustomers() []entity.Customer {
	return append([]entity.Customer{}, d.customers...)
}

func newCustomer(verr *domain.ValidationError, in dto.CustomerInput) entity.Customer {
	return entity.Customer{
		Name:      inventory.RequireText(verr, "name", in.Name),
		Phone:     strings.TrimSpace(in.Phone),
		TaxNumber: strings.TrimSpace(in.TaxNumber),
	}
}
