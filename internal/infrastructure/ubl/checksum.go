package ubl

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"

	"github.com/jhoicas/Contable-pos/internal/domain/billing"
	"github.com/jhoicas/Contable-pos/internal/domain/entity"
)

// DocumentHash huella SHA-384 (hex, minúsculas) de una factura guardada.
// Orden de concatenación: número + subtotal + impuesto + total + NIT empresa + documento cliente.
// Los montos van con 2 decimales y punto; los textos sin espacios.
func DocumentHash(inv entity.SavedInvoice) string {
	var sb strings.Builder
	sb.WriteString(compact(inv.InvoiceNumber))
	sb.WriteString(inv.Totals.Subtotal.StringFixed(billing.MoneyPlaces))
	sb.WriteString(inv.Totals.Tax.StringFixed(billing.MoneyPlaces))
	sb.WriteString(inv.Totals.GrandTotal.StringFixed(billing.MoneyPlaces))
	sb.WriteString(compact(inv.CompanyDetails[entity.CompanyTaxNo]))
	sb.WriteString(compact(inv.CustomerDetails.TaxNumber))

	sum := sha512.Sum384([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}
