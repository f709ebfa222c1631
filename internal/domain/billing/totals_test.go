package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contable-pos/internal/domain"
	"github.com/jhoicas/Contable-pos/internal/domain/billing"
	"github.com/jhoicas/Contable-pos/internal/domain/entity"
)

func line(seq, qty int, price string) entity.LineItem {
	p := decimal.RequireFromString(price)
	return entity.LineItem{
		SequenceNo: seq,
		ItemName:   "item",
		Quantity:   qty,
		UnitPrice:  p,
		Subtotal:   billing.LineSubtotal(qty, p),
		Barcode:    entity.NonCatalogBarcode,
	}
}

func TestRecomputeTotals_EscenarioBasico(t *testing.T) {
	totals := billing.RecomputeTotals([]entity.LineItem{line(1, 3, "10.00")})

	assert.Equal(t, "30.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "4.50", totals.Tax.StringFixed(2))
	assert.Equal(t, "34.50", totals.GrandTotal.StringFixed(2))
}

func TestRecomputeTotals_SinLineas(t *testing.T) {
	totals := billing.RecomputeTotals(nil)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
}

// El impuesto siempre es round(subtotal × 0.15, 2) y el total general es
// exactamente subtotal + impuesto, sin importar la combinación de líneas.
func TestRecomputeTotals_Propiedades(t *testing.T) {
	cases := [][]entity.LineItem{
		{line(1, 1, "0.01")},
		{line(1, 7, "0.33"), line(2, 2, "19.99")},
		{line(1, 1, "0.10"), line(2, 1, "0.20"), line(3, 1, "0.03")},
		{line(1, 1000, "123.45"), line(2, 3, "0")},
		{line(1, 13, "1.13"), line(2, 17, "2.71"), line(3, 1, "99999.99")},
	}
	for _, items := range cases {
		totals := billing.RecomputeTotals(items)

		sum := decimal.Zero
		for _, it := range items {
			sum = sum.Add(it.Subtotal)
		}
		require.True(t, totals.Subtotal.Equal(sum))
		assert.True(t, totals.Tax.Equal(sum.Mul(decimal.RequireFromString("0.15")).Round(2)),
			"tax %s para subtotal %s", totals.Tax, totals.Subtotal)
		assert.True(t, totals.GrandTotal.Equal(totals.Subtotal.Add(totals.Tax)))
	}
}

func TestLineSubtotal_RedondeaADosDecimales(t *testing.T) {
	assert.Equal(t, "0.67", billing.LineSubtotal(2, decimal.RequireFromString("0.335")).StringFixed(2))
	assert.Equal(t, "30.00", billing.LineSubtotal(3, decimal.RequireFromString("10")).StringFixed(2))
}

func TestRenumber_Contiguo(t *testing.T) {
	items := []entity.LineItem{line(2, 1, "1"), line(5, 1, "1"), line(9, 1, "1")}
	billing.Renumber(items)
	for i, it := range items {
		assert.Equal(t, i+1, it.SequenceNo)
	}
}

func TestNextInvoiceNumber(t *testing.T) {
	tests := []struct {
		name    string
		numbers []string
		want    string
	}{
		{"libro vacío", nil, "001"},
		{"secuencia simple", []string{"001", "002"}, "003"},
		{"usa el máximo, no la cantidad", []string{"007", "003"}, "008"},
		{"ignora no numéricos", []string{"N/A", "A-10", "004", " 9"}, "005"},
		{"más de tres dígitos", []string{"999"}, "1000"},
		{"solo no numéricos", []string{"N/A"}, "001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ledger []entity.SavedInvoice
			for _, n := range tt.numbers {
				ledger = append(ledger, entity.SavedInvoice{InvoiceNumber: n})
			}
			assert.Equal(t, tt.want, billing.NextInvoiceNumber(ledger))
		})
	}
}

func TestValidateSavedInvoice(t *testing.T) {
	items := []entity.LineItem{line(1, 3, "10.00"), line(2, 1, "5.00")}
	ok := entity.SavedInvoice{InvoiceNumber: "001", Items: items, Totals: billing.RecomputeTotals(items)}
	require.NoError(t, billing.ValidateSavedInvoice(ok))

	empty := entity.SavedInvoice{InvoiceNumber: "002"}
	assert.ErrorIs(t, billing.ValidateSavedInvoice(empty), domain.ErrEmptyInvoice)

	bad := ok.Clone()
	bad.Items[1].SequenceNo = 3
	assert.ErrorIs(t, billing.ValidateSavedInvoice(bad), billing.ErrInconsistentInvoice)

	stale := ok.Clone()
	stale.Totals.GrandTotal = stale.Totals.GrandTotal.Add(decimal.NewFromInt(1))
	assert.ErrorIs(t, billing.ValidateSavedInvoice(stale), billing.ErrInconsistentInvoice)
}
