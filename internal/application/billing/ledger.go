package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Contable-pos/internal/domain"
	"github.com/jhoicas/Contable-pos/internal/domain/billing"
	"github.com/jhoicas/Contable-pos/internal/domain/entity"
	"github.com/jhoicas/Contable-pos/internal/domain/repository"
)

// Ledger libro de facturas guardadas (colección "invoices"), en orden de guardado.
type Ledger struct {
	repo        repository.InvoiceRepository
	log         zerolog.Logger
	invoices    []entity.SavedInvoice
	loadWarning error
}

// NewLedger carga el libro; un error de carga deja el libro vacío.
func NewLedger(ctx context.Context, repo repository.InvoiceRepository, log zerolog.Logger) *Ledger {
	l := &Ledger{repo: repo, log: log}
	invoices, err := repo.Load(ctx)
	if err != nil {
		l.loadWarning = err
		log.Warn().Err(err).Msg("no se pudo cargar el libro de facturas; se inicia vacío")
		invoices = nil
	}
	l.invoices = append([]entity.SavedInvoice{}, invoices...)
	log.Info().Int("invoices", len(l.invoices)).Str("next_number", l.NextInvoiceNumber()).Msg("libro de facturas cargado")
	return l
}

// LoadWarning error recuperable de la carga inicial, o nil.
func (l *Ledger) LoadWarning() error { return l.loadWarning }

// Append agrega la factura al final del libro y persiste.
// Rechaza números repetidos y facturas incoherentes; si solo falla el guardado,
// la factura queda en memoria y se devuelve el *domain.PersistenceError.
func (l *Ledger) Append(ctx context.Context, inv entity.SavedInvoice) error {
	if err := billing.ValidateSavedInvoice(inv); err != nil {
		return err
	}
	if l.indexOf(inv.InvoiceNumber) >= 0 {
		return fmt.Errorf("factura %s: %w", inv.InvoiceNumber, domain.ErrDuplicate)
	}
	l.invoices = append(l.invoices, inv.Clone())
	l.log.Info().
		Str("invoice_number", inv.InvoiceNumber).
		Str("grand_total", inv.Totals.GrandTotal.StringFixed(2)).
		Msg("factura guardada")

	if err := l.repo.Save(ctx, l.invoices); err != nil {
		l.log.Error().Err(err).Str("invoice_number", inv.InvoiceNumber).
			Msg("no se pudo guardar el libro de facturas; la factura queda solo en memoria")
		return err
	}
	return nil
}

// ListAll copia del libro en orden de guardado.
func (l *Ledger) ListAll() []entity.SavedInvoice {
	out := make([]entity.SavedInvoice, 0, len(l.invoices))
	for _, inv := range l.invoices {
		out = append(out, inv.Clone())
	}
	return out
}

// Get busca una factura por número.
func (l *Ledger) Get(number string) (entity.SavedInvoice, error) {
	idx := l.indexOf(number)
	if idx < 0 {
		return entity.SavedInvoice{}, fmt.Errorf("factura %q: %w", number, domain.ErrNotFound)
	}
	return l.invoices[idx].Clone(), nil
}

// Search busca sin distinguir mayúsculas en número, datos del cliente y nombres de ítems.
// Consulta vacía devuelve todo el libro.
func (l *Ledger) Search(query string) []entity.SavedInvoice {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return l.ListAll()
	}
	out := []entity.SavedInvoice{}
	for _, inv := range l.invoices {
		if matches(inv, q) {
			out = append(out, inv.Clone())
		}
	}
	return out
}

// NextInvoiceNumber siguiente número a emitir ("001" con el libro vacío).
func (l *Ledger) NextInvoiceNumber() string {
	return billing.NextInvoiceNumber(l.invoices)
}

func (l *Ledger) indexOf(number string) int {
	for i, inv := range l.invoices {
		if inv.InvoiceNumber == number {
			return i
		}
	}
	return -1
}

func matches(inv entity.SavedInvoice, q string) bool {
	fields := []string{
		inv.InvoiceNumber,
		inv.CustomerDetails.Name,
		inv.CustomerDetails.Phone,
		inv.CustomerDetails.TaxNumber,
	}
	for _, it := range inv.Items {
		fields = append(fields, it.ItemName)
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
