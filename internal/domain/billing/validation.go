package billing

import (
	"errors"
	"fmt"

	"github.com/jhoicas/Contable-pos/internal/domain"
	"github.com/jhoicas/Contable-pos/internal/domain/entity"
)

// ErrInconsistentInvoice agrupa las inconsistencias de una factura guardada.
var ErrInconsistentInvoice = errors.New("factura inconsistente")

// ValidateSavedInvoice comprueba que la factura a agregar al libro sea coherente:
// al menos una línea, secuencia 1..N, subtotales de línea y totales derivados de las líneas.
func ValidateSavedInvoice(inv entity.SavedInvoice) error {
	if len(inv.Items) == 0 {
		return domain.ErrEmptyInvoice
	}
	var errs []error
	if inv.InvoiceNumber == "" {
		errs = append(errs, errors.New("invoice_number vacío"))
	}
	for i, it := range inv.Items {
		if it.SequenceNo != i+1 {
			errs = append(errs, fmt.Errorf("línea %d con seq_no %d", i+1, it.SequenceNo))
		}
		if want := LineSubtotal(it.Quantity, it.UnitPrice); !it.Subtotal.Equal(want) {
			errs = append(errs, fmt.Errorf("línea %d: subtotal %s, esperado %s", i+1, it.Subtotal.StringFixed(2), want.StringFixed(2)))
		}
	}
	want := RecomputeTotals(inv.Items)
	if !inv.Totals.Subtotal.Equal(want.Subtotal) ||
		!inv.Totals.Tax.Equal(want.Tax) ||
		!inv.Totals.GrandTotal.Equal(want.GrandTotal) {
		errs = append(errs, fmt.Errorf("totales %s/%s/%s no coinciden con las líneas (%s/%s/%s)",
			inv.Totals.Subtotal.StringFixed(2), inv.Totals.Tax.StringFixed(2), inv.Totals.GrandTotal.StringFixed(2),
			want.Subtotal.StringFixed(2), want.Tax.StringFixed(2), want.GrandTotal.StringFixed(2)))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInconsistentInvoice}, errs...)...)
	}
	return nil
}
