package inventory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Contable-pos/internal/application/dto"
	"github.com/jhoicas/Contable-pos/internal/domain"
	"github.com/jhoicas/Contable-pos/internal/domain/entity"
	"github.com/jhoicas/Contable-pos/internal/domain/inventory"
	"github.com/jhoicas/Contable-pos/internal/domain/repository"
)

// Catalog catálogo de productos en memoria respaldado por la colección "products".
// No es seguro para uso concurrente: la capa de presentación serializa las operaciones.
type Catalog struct {
	store       repository.ProductRepository
	log         zerolog.Logger
	products    []entity.Product
	counter     int
	loadWarning error
}

// NewCatalog carga el catálogo e inicializa el contador de barcodes.
// Un error de carga no impide arrancar: el catálogo queda vacío y el error
// se conserva en LoadWarning.
func NewCatalog(ctx context.Context, store repository.ProductRepository, log zerolog.Logger) *Catalog {
	c := &Catalog{store: store, log: log}
	products, err := store.Load(ctx)
	if err != nil {
		c.loadWarning = err
		log.Warn().Err(err).Msg("no se pudo cargar el inventario; se inicia vacío")
		products = nil
	}
	c.products = append([]entity.Product{}, products...)
	c.InitializeCounter(c.products)
	log.Info().Int("products", len(c.products)).Int("barcode_counter", c.counter).Msg("catálogo cargado")
	return c
}

// InitializeCounter fija el contador al mayor sufijo AUTOGEN-NNNN presente.
func (c *Catalog) InitializeCounter(products []entity.Product) {
	c.counter = inventory.MaxBarcodeSequence(products)
}

// LoadWarning error recuperable de la carga inicial, o nil.
func (c *Catalog) LoadWarning() error { return c.loadWarning }

// AddProduct valida la entrada, asigna el siguiente barcode y persiste.
// Si el guardado falla el producto queda en memoria y se devuelve junto con el error.
func (c *Catalog) AddProduct(ctx context.Context, in dto.ProductInput) (entity.Product, error) {
	p, err := ParseProductInput(in)
	if err != nil {
		return entity.Product{}, err
	}

	c.counter++
	p.Barcode = inventory.FormatBarcode(c.counter)
	c.products = append(c.products, p)
	c.log.Info().Str("barcode", p.Barcode).Str("name", p.Name).Msg("producto agregado")

	return p, c.persist(ctx)
}

// ParseProductInput valida la entrada de un producto nuevo sin asignar barcode.
// Devuelve un *domain.ValidationError con todos los campos inválidos.
func ParseProductInput(in dto.ProductInput) (entity.Product, error) {
	verr := &domain.ValidationError{}
	p := entity.Product{
		Name:          inventory.RequireText(verr, "name", in.Name),
		PurchasePrice: inventory.ParseNonNegativeDecimal(verr, "purchase_price", in.PurchasePrice.String()),
		SellingPrice:  inventory.ParseNonNegativeDecimal(verr, "selling_price", in.SellingPrice.String()),
		Quantity:      inventory.ParseInt(verr, "quantity", in.Quantity.String(), 0),
		TaxPercent:    inventory.ParseNonNegativeDecimal(verr, "tax_percent", in.TaxPercent.String()),
	}
	if err := verr.OrNil(); err != nil {
		return entity.Product{}, err
	}
	return p, nil
}

// ModifyProduct aplica los campos presentes del parche. El barcode no cambia.
func (c *Catalog) ModifyProduct(ctx context.Context, barcode string, patch dto.ProductPatch) (entity.Product, error) {
	idx := c.indexOf(barcode)
	if idx < 0 {
		return entity.Product{}, fmt.Errorf("producto %q: %w", barcode, domain.ErrNotFound)
	}
	if patch.Empty() {
		return c.products[idx], nil
	}

	p := c.products[idx]
	verr := &domain.ValidationError{}
	if patch.Name != nil {
		p.Name = inventory.RequireText(verr, "name", *patch.Name)
	}
	if patch.PurchasePrice != nil {
		p.PurchasePrice = inventory.ParseNonNegativeDecimal(verr, "purchase_price", patch.PurchasePrice.String())
	}
	if patch.SellingPrice != nil {
		p.SellingPrice = inventory.ParseNonNegativeDecimal(verr, "selling_price", patch.SellingPrice.String())
	}
	if patch.Quantity != nil {
		p.Quantity = inventory.ParseInt(verr, "quantity", patch.Quantity.String(), 0)
	}
	if patch.TaxPercent != nil {
		p.TaxPercent = inventory.ParseNonNegativeDecimal(verr, "tax_percent", patch.TaxPercent.String())
	}
	if err := verr.OrNil(); err != nil {
		return entity.Product{}, err
	}

	c.products[idx] = p
	c.log.Info().Str("barcode", barcode).Msg("producto modificado")
	return p, c.persist(ctx)
}

// DeleteProduct elimina el producto. Las facturas guardadas no se tocan.
func (c *Catalog) DeleteProduct(ctx context.Context, barcode string) error {
	idx := c.indexOf(barcode)
	if idx < 0 {
		return fmt.Errorf("producto %q: %w", barcode, domain.ErrNotFound)
	}
	c.products = append(c.products[:idx], c.products[idx+1:]...)
	c.log.Info().Str("barcode", barcode).Msg("producto eliminado")
	return c.persist(ctx)
}

// ListProducts copia del catálogo en orden de inserción.
func (c *Catalog) ListProducts() []entity.Product {
	return append([]entity.Product{}, c.products...)
}

// GetProduct busca un producto por barcode.
func (c *Catalog) GetProduct(barcode string) (entity.Product, error) {
	idx := c.indexOf(barcode)
	if idx < 0 {
		return entity.Product{}, fmt.Errorf("producto %q: %w", barcode, domain.ErrNotFound)
	}
	return c.products[idx], nil
}

func (c *Catalog) indexOf(barcode string) int {
	for i, p := range c.products {
		if p.Barcode == barcode {
			return i
		}
	}
	return -1
}

func (c *Catalog) persist(ctx context.Context) error {
	if err := c.store.Save(ctx, c.products); err != nil {
		c.log.Error().Err(err).Msg("no se pudo guardar el inventario; el cambio queda solo en memoria")
		return err
	}
	return nil
}
