package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Formato persistido (documentos JSON). Los nombres de campo son parte de la
// compatibilidad con los archivos existentes: no renombrar.

type productJSON struct {
	Barcode       string     `json:"barcode"`
	Name          string     `json:"name"`
	PurchasePrice jsonNumber `json:"purchase_price"`
	SellingPrice  jsonNumber `json:"selling_price"`
	Quantity      flexInt    `json:"quantity"`
	TaxPercent    jsonNumber `json:"tax_percent"`
}

// MarshalJSON escribe el producto con precios como números JSON.
func (p Product) MarshalJSON() ([]byte, error) {
	return marshalVerbatim(productJSON{
		Barcode:       p.Barcode,
		Name:          p.Name,
		PurchasePrice: jsonNumber(p.PurchasePrice),
		SellingPrice:  jsonNumber(p.SellingPrice),
		Quantity:      flexInt(p.Quantity),
		TaxPercent:    jsonNumber(p.TaxPercent),
	})
}

// UnmarshalJSON acepta precios como número o como texto.
func (p *Product) UnmarshalJSON(b []byte) error {
	var raw productJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*p = Product{
		Barcode:       raw.Barcode,
		Name:          raw.Name,
		PurchasePrice: decimal.Decimal(raw.PurchasePrice),
		SellingPrice:  decimal.Decimal(raw.SellingPrice),
		Quantity:      int(raw.Quantity),
		TaxPercent:    decimal.Decimal(raw.TaxPercent),
	}
	return nil
}

type lineItemJSON struct {
	Subtotal    money   `json:"subtotal"`
	UnitPrice   money   `json:"unit_price"`
	Quantity    flexInt `json:"quantity"`
	ItemService string  `json:"item_service"`
	SeqNo       flexInt `json:"seq_no"`
	Barcode     string  `json:"barcode"`
}

type totalsJSON struct {
	Subtotal   money `json:"subtotal"`
	Tax        money `json:"tax"`
	GrandTotal money `json:"grand_total"`
}

type savedInvoiceJSON struct {
	InvoiceNumber   string            `json:"invoice_number"`
	CustomerDetails Customer          `json:"customer_details"`
	CompanyDetails  map[string]string `json:"company_details"`
	Items           []lineItemJSON    `json:"items"`
	Totals          totalsJSON        `json:"totals"`
}

// MarshalJSON escribe importes y totales como texto con dos decimales ("34.50").
func (s SavedInvoice) MarshalJSON() ([]byte, error) {
	raw := savedInvoiceJSON{
		InvoiceNumber:   s.InvoiceNumber,
		CustomerDetails: s.CustomerDetails,
		CompanyDetails:  s.CompanyDetails,
		Items:           make([]lineItemJSON, 0, len(s.Items)),
		Totals: totalsJSON{
			Subtotal:   money(s.Totals.Subtotal),
			Tax:        money(s.Totals.Tax),
			GrandTotal: money(s.Totals.GrandTotal),
		},
	}
	if raw.CompanyDetails == nil {
		raw.CompanyDetails = map[string]string{}
	}
	for _, it := range s.Items {
		raw.Items = append(raw.Items, lineItemJSON{
			Subtotal:    money(it.Subtotal),
			UnitPrice:   money(it.UnitPrice),
			Quantity:    flexInt(it.Quantity),
			ItemService: it.ItemName,
			SeqNo:       flexInt(it.SequenceNo),
			Barcode:     it.Barcode,
		})
	}
	return marshalVerbatim(raw)
}

// UnmarshalJSON lee facturas guardadas; los importes se normalizan a dos decimales.
func (s *SavedInvoice) UnmarshalJSON(b []byte) error {
	var raw savedInvoiceJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := SavedInvoice{
		InvoiceNumber:   raw.InvoiceNumber,
		CustomerDetails: raw.CustomerDetails,
		CompanyDetails:  raw.CompanyDetails,
		Items:           make([]LineItem, 0, len(raw.Items)),
		Totals: Totals{
			Subtotal:   decimal.Decimal(raw.Totals.Subtotal),
			Tax:        decimal.Decimal(raw.Totals.Tax),
			GrandTotal: decimal.Decimal(raw.Totals.GrandTotal),
		},
	}
	if out.CompanyDetails == nil {
		out.CompanyDetails = map[string]string{}
	}
	for _, it := range raw.Items {
		out.Items = append(out.Items, LineItem{
			SequenceNo: int(it.SeqNo),
			ItemName:   it.ItemService,
			Quantity:   int(it.Quantity),
			UnitPrice:  decimal.Decimal(it.UnitPrice),
			Subtotal:   decimal.Decimal(it.Subtotal),
			Barcode:    normalizeLineBarcode(it.Barcode),
		})
	}
	*s = out
	return nil
}

// jsonNumber decimal serializado como número JSON sin comillas.
type jsonNumber decimal.Decimal

func (n jsonNumber) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(n).String()), nil
}

func (n *jsonNumber) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*n = jsonNumber(d)
	return nil
}

// money importe serializado como texto con dos decimales.
type money decimal.Decimal

func (m money) MarshalJSON() ([]byte, error) {
	return json.Marshal(decimal.Decimal(m).StringFixed(2))
}

func (m *money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*m = money(d.Round(2))
	return nil
}

// flexInt entero que también se acepta como texto ("3") al leer.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if v, err := strconv.Atoi(s); err == nil {
		*n = flexInt(v)
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return fmt.Errorf("entero inválido: %s", string(b))
	}
	*n = flexInt(d.IntPart())
	return nil
}

// marshalVerbatim serializa sin escapar <, > y & para que nombres y detalles se guarden tal cual.
func marshalVerbatim(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
