package dto

import "github.com/jhoicas/Contable-pos/internal/domain/entity"

// CustomerInput entrada para registrar un cliente.
type CustomerInput struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	TaxNumber string `json:"tax_number"`
}

// CustomerListResponse listado de clientes.
type CustomerListResponse struct {
	Items []entity.Customer `json:"items"`
	Total int               `json:"total"`
}

// HeaderInput encabezado del borrador: empresa y cliente. Los nil no se modifican.
type HeaderInput struct {
	Company  map[string]string `json:"company_details"`
	Customer *CustomerInput    `json:"customer_details"`
}

// LineItemInput entrada para agregar una línea al borrador.
// Barcode vacío: línea fuera de catálogo. Con barcode de catálogo, nombre y precio
// omitidos se toman del producto.
type LineItemInput struct {
	ItemName  string      `json:"item_service"`
	Quantity  NumericText `json:"quantity"`
	UnitPrice NumericText `json:"unit_price"`
	Barcode   string      `json:"barcode"`
}

// LineItemResponse línea de factura.
type LineItemResponse struct {
	SequenceNo int    `json:"seq_no"`
	ItemName   string `json:"item_service"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"` // 2 decimales, como en el documento guardado
	Subtotal   string `json:"subtotal"`
	Barcode    string `json:"barcode"`
}

// TotalsResponse totales de una factura.
type TotalsResponse struct {
	Subtotal   string `json:"subtotal"`
	Tax        string `json:"tax"`
	GrandTotal string `json:"grand_total"`
}

// DraftResponse estado del borrador en curso.
type DraftResponse struct {
	ID              string             `json:"id"`
	InvoiceNumber   string             `json:"invoice_number"`
	CompanyDetails  map[string]string  `json:"company_details"`
	CustomerDetails entity.Customer    `json:"customer_details"`
	Items           []LineItemResponse `json:"items"`
	Totals          TotalsResponse     `json:"totals"`
}

// InvoiceListResponse listado del libro de facturas.
type InvoiceListResponse struct {
	Items []entity.SavedInvoice `json:"items"`
	Total int                   `json:"total"`
}

// NewDraftResponse mapea el borrador y sus totales.
func NewDraftResponse(d entity.DraftInvoice, totals entity.Totals) DraftResponse {
	items := make([]LineItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, LineItemResponse{
			SequenceNo: it.SequenceNo,
			ItemName:   it.ItemName,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice.StringFixed(2),
			Subtotal:   it.Subtotal.StringFixed(2),
			Barcode:    it.Barcode,
		})
	}
	company := d.CompanyDetails
	if company == nil {
		company = map[string]string{}
	}
	return DraftResponse{
		ID:              d.ID,
		InvoiceNumber:   d.InvoiceNumber,
		CompanyDetails:  company,
		CustomerDetails: d.CustomerDetails,
		Items:           items,
		Totals: TotalsResponse{
			Subtotal:   totals.Subtotal.StringFixed(2),
			Tax:        totals.Tax.StringFixed(2),
			GrandTotal: totals.GrandTotal.StringFixed(2),
		},
	}
}
