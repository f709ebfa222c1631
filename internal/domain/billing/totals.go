// Package billing contiene las reglas puras de facturación: totales, numeración
// y renumeración de líneas. No hace I/O.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contable-pos/internal/domain/entity"
)

// TaxRate tasa de impuesto fija (15%).
var TaxRate = decimal.NewFromFloat(0.15)

// MoneyPlaces decimales con los que se muestran y persisten los importes.
const MoneyPlaces = 2

// LineSubtotal = quantity × unitPrice, redondeado a dos decimales.
func LineSubtotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(MoneyPlaces)
}

// RecomputeTotals calcula los totales desde cero:
//
//	subtotal    = Σ line_subtotal
//	tax         = round(subtotal × 0.15, 2)
//	grand_total = subtotal + tax
func RecomputeTotals(items []entity.LineItem) entity.Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Subtotal)
	}
	subtotal = subtotal.Round(MoneyPlaces)
	tax := subtotal.Mul(TaxRate).Round(MoneyPlaces)
	return entity.Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal.Add(tax),
	}
}

// Renumber reasigna SequenceNo = 1..N en el orden actual.
func Renumber(items []entity.LineItem) {
	for i := range items {
		items[i].SequenceNo = i + 1
	}
}
