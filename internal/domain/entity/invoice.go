package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NonCatalogBarcode marca las líneas de texto libre que no provienen del inventario.
const NonCatalogBarcode = "N/A"

// LegacyPlaceholderBarcode valor que los documentos antiguos escribían en cada línea
// en lugar del barcode real. No identifica ningún producto.
const LegacyPlaceholderBarcode = "BARCODE_PLACEHOLDER"

// Claves de company_details que captura el formulario de factura.
// El mapa admite claves adicionales.
const (
	CompanyName    = "name"
	CompanyTaxNo   = "tax_no"
	CompanyPhone   = "phone"
	CompanyEmail   = "email"
	CompanyAddress = "address"
)

// LineItem línea de una factura. SequenceNo es 1..N sin huecos.
type LineItem struct {
	SequenceNo int
	ItemName   string
	Quantity   int
	UnitPrice  decimal.Decimal
	Subtotal   decimal.Decimal // Quantity × UnitPrice, redondeado a 2 decimales
	Barcode    string          // barcode del producto o NonCatalogBarcode
}

// IsCatalogItem indica si la línea referencia un producto del inventario.
func (l LineItem) IsCatalogItem() bool {
	return l.Barcode != "" && l.Barcode != NonCatalogBarcode && l.Barcode != LegacyPlaceholderBarcode
}

// normalizeLineBarcode lleva los barcodes vacíos o de relleno al centinela de texto libre.
func normalizeLineBarcode(barcode string) string {
	switch strings.TrimSpace(barcode) {
	case "", LegacyPlaceholderBarcode:
		return NonCatalogBarcode
	}
	return barcode
}

// Totals totales derivados de las líneas; nunca se ajustan de forma incremental.
type Totals struct {
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}

// DraftInvoice factura en construcción, solo en memoria. Pertenece al Builder;
// ID es el handle con el que la capa de presentación se refiere a ella.
type DraftInvoice struct {
	ID              string
	InvoiceNumber   string
	CompanyDetails  map[string]string
	CustomerDetails Customer
	Items           []LineItem
}

// SavedInvoice copia inmutable que se agrega al libro de facturas.
type SavedInvoice struct {
	InvoiceNumber   string
	CustomerDetails Customer
	CompanyDetails  map[string]string
	Items           []LineItem
	Totals          Totals
}

// Clone devuelve una copia profunda (mapas y slices propios).
func (s SavedInvoice) Clone() SavedInvoice {
	out := s
	out.CompanyDetails = cloneDetails(s.CompanyDetails)
	out.Items = append([]LineItem(nil), s.Items...)
	return out
}

func cloneDetails(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Clone devuelve una copia profunda del borrador.
func (d DraftInvoice) Clone() DraftInvoice {
	out := d
	out.CompanyDetails = cloneDetails(d.CompanyDetails)
	out.Items = append([]LineItem(nil), d.Items...)
	return out
}
