package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Contable-pos/internal/application/dto"
	"github.com/jhoicas/Contable-pos/internal/domain"
	"github.com/jhoicas/Contable-pos/internal/domain/billing"
	"github.com/jhoicas/Contable-pos/internal/domain/entity"
	"github.com/jhoicas/Contable-pos/internal/domain/inventory"
)

// ErrNoDraft el identificador no corresponde al borrador abierto (o no hay borrador).
var ErrNoDraft = fmt.Errorf("no hay un borrador abierto con ese identificador: %w", domain.ErrNotFound)

// Builder arma la factura en curso: Idle -> Drafting -> Finalize -> Idle.
// Hay como máximo un borrador; se identifica por un handle UUID que recibe la capa de presentación.
type Builder struct {
	catalog ProductLookup
	ledger  *Ledger
	log     zerolog.Logger
	draft   *entity.DraftInvoice
}

// NewBuilder construye el constructor en estado Idle.
func NewBuilder(catalog ProductLookup, ledger *Ledger, log zerolog.Logger) *Builder {
	return &Builder{catalog: catalog, ledger: ledger, log: log}
}

// Drafting informa si hay un borrador abierto.
func (b *Builder) Drafting() bool { return b.draft != nil }

// OpenDraft abre un borrador nuevo con el siguiente número del libro, calculado en este momento.
// Si ya había uno abierto se descarta.
func (b *Builder) OpenDraft() entity.DraftInvoice {
	if b.draft != nil {
		b.log.Warn().Str("draft_id", b.draft.ID).Str("invoice_number", b.draft.InvoiceNumber).
			Msg("borrador anterior descartado al abrir uno nuevo")
	}
	b.draft = &entity.DraftInvoice{
		ID:             uuid.NewString(),
		InvoiceNumber:  b.ledger.NextInvoiceNumber(),
		CompanyDetails: map[string]string{},
		Items:          []entity.LineItem{},
	}
	b.log.Info().Str("draft_id", b.draft.ID).Str("invoice_number", b.draft.InvoiceNumber).Msg("borrador abierto")
	return b.draft.Clone()
}

// Current devuelve una copia del borrador abierto.
func (b *Builder) Current(handle string) (entity.DraftInvoice, error) {
	d, err := b.open(handle)
	if err != nil {
		return entity.DraftInvoice{}, err
	}
	return d.Clone(), nil
}

// SetCompanyDetails reemplaza los datos de la empresa del encabezado (claves libres).
func (b *Builder) SetCompanyDetails(handle string, details map[string]string) (entity.DraftInvoice, error) {
	d, err := b.open(handle)
	if err != nil {
		return entity.DraftInvoice{}, err
	}
	company := make(map[string]string, len(details))
	for k, v := range details {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		company[k] = strings.TrimSpace(v)
	}
	d.CompanyDetails = company
	return d.Clone(), nil
}

// SetCustomerDetails copia los datos del cliente al encabezado (instantánea, no referencia).
func (b *Builder) SetCustomerDetails(handle string, customer entity.Customer) (entity.DraftInvoice, error) {
	d, err := b.open(handle)
	if err != nil {
		return entity.DraftInvoice{}, err
	}
	d.CustomerDetails = entity.Customer{
		Name:      strings.TrimSpace(customer.Name),
		Phone:     strings.TrimSpace(customer.Phone),
		TaxNumber: strings.TrimSpace(customer.TaxNumber),
	}
	return d.Clone(), nil
}

// AddLineItem agrega una línea al final con seq_no = N+1.
// Sin barcode la línea queda fuera de catálogo (NonCatalogBarcode). Con barcode, el
// producto debe existir; nombre y precio omitidos se toman de él.
func (b *Builder) AddLineItem(handle string, in dto.LineItemInput) (entity.LineItem, error) {
	d, err := b.open(handle)
	if err != nil {
		return entity.LineItem{}, err
	}

	name := in.ItemName
	price := in.UnitPrice.String()
	barcode := strings.TrimSpace(in.Barcode)
	if barcode == "" || barcode == entity.NonCatalogBarcode {
		barcode = entity.NonCatalogBarcode
	} else {
		p, err := b.catalog.GetProduct(barcode)
		if err != nil {
			return entity.LineItem{}, err
		}
		if strings.TrimSpace(name) == "" {
			name = p.Name
		}
		if strings.TrimSpace(price) == "" {
			price = p.SellingPrice.String()
		}
	}

	verr := &domain.ValidationError{}
	item := entity.LineItem{
		ItemName:  inventory.RequireText(verr, "item_service", name),
		Quantity:  inventory.ParseInt(verr, "quantity", in.Quantity.String(), 1),
		UnitPrice: inventory.ParseNonNegativeDecimal(verr, "unit_price", price).Round(billing.MoneyPlaces),
		Barcode:   barcode,
	}
	if err := verr.OrNil(); err != nil {
		return entity.LineItem{}, err
	}
	item.SequenceNo = len(d.Items) + 1
	item.Subtotal = billing.LineSubtotal(item.Quantity, item.UnitPrice)
	d.Items = append(d.Items, item)
	return item, nil
}

// RemoveLineItem quita la línea seq y renumera las siguientes.
func (b *Builder) RemoveLineItem(handle string, seq int) error {
	d, err := b.open(handle)
	if err != nil {
		return err
	}
	idx := -1
	for i, it := range d.Items {
		if it.SequenceNo == seq {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("línea %d: %w", seq, domain.ErrNotFound)
	}
	d.Items = append(d.Items[:idx], d.Items[idx+1:]...)
	billing.Renumber(d.Items)
	return nil
}

// Totals recalcula los totales del borrador; nunca se guardan en el borrador.
func (b *Builder) Totals(handle string) (entity.Totals, error) {
	d, err := b.open(handle)
	if err != nil {
		return entity.Totals{}, err
	}
	return billing.RecomputeTotals(d.Items), nil
}

// Finalize congela el borrador en una factura guardada, la agrega al libro y vuelve a Idle.
// Si falla solo el guardado, la factura ya está en el libro en memoria: se devuelve
// junto con el *domain.PersistenceError.
func (b *Builder) Finalize(ctx context.Context, handle string) (entity.SavedInvoice, error) {
	d, err := b.open(handle)
	if err != nil {
		return entity.SavedInvoice{}, err
	}
	if len(d.Items) == 0 {
		return entity.SavedInvoice{}, domain.ErrEmptyInvoice
	}

	draft := d.Clone()
	inv := entity.SavedInvoice{
		InvoiceNumber:   draft.InvoiceNumber,
		CustomerDetails: draft.CustomerDetails,
		CompanyDetails:  draft.CompanyDetails,
		Items:           draft.Items,
		Totals:          billing.RecomputeTotals(draft.Items),
	}

	err = b.ledger.Append(ctx, inv)
	if err != nil && !domain.IsPersistence(err) {
		if errors.Is(err, domain.ErrDuplicate) {
			b.log.Warn().Str("invoice_number", inv.InvoiceNumber).Msg("número de factura ya usado; abra un borrador nuevo")
		}
		return entity.SavedInvoice{}, err
	}
	b.draft = nil
	b.log.Info().Str("draft_id", draft.ID).Str("invoice_number", inv.InvoiceNumber).Msg("borrador finalizado")
	return inv, err
}

// Discard abandona el borrador sin guardar nada.
func (b *Builder) Discard(handle string) error {
	if _, err := b.open(handle); err != nil {
		return err
	}
	b.log.Info().Str("draft_id", handle).Msg("borrador descartado")
	b.draft = nil
	return nil
}

func (b *Builder) open(handle string) (*entity.DraftInvoice, error) {
	if b.draft == nil || b.draft.ID != handle {
		return nil, ErrNoDraft
	}
	return b.draft, nil
}
