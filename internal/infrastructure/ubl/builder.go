// Package ubl genera el documento UBL 2.1 (Invoice) de una factura guardada.
package ubl

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contable-pos/internal/domain/billing"
	"github.com/jhoicas/Contable-pos/internal/domain/entity"
)

// Namespaces oficiales UBL 2.1.
const (
	NsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

// DefaultCurrency moneda usada si no se configura otra.
const DefaultCurrency = "USD"

// Builder construye el XML UBL 2.1 de la factura (sin firma).
type Builder struct {
	currency string
}

// NewBuilder crea el builder; currency vacío usa DefaultCurrency.
func NewBuilder(currency string) *Builder {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Builder{currency: currency}
}

// BuildInvoiceXML genera el documento Invoice con emisor, cliente, impuesto, totales y líneas.
func (b *Builder) BuildInvoiceXML(inv entity.SavedInvoice) ([]byte, error) {
	if inv.InvoiceNumber == "" {
		return nil, fmt.Errorf("ubl: factura sin número")
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", NsInvoice)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)

	cbc(root, "UBLVersionID", "2.1")
	cbc(root, "ID", inv.InvoiceNumber)
	cbc(root, "UUID", DocumentHash(inv)).CreateAttr("schemeName", "SHA-384")
	cbc(root, "InvoiceTypeCode", "380")
	cbc(root, "DocumentCurrencyCode", b.currency)
	cbc(root, "LineCountNumeric", strconv.Itoa(len(inv.Items)))

	// ---- cac:AccountingSupplierParty (datos libres de la empresa)
	supplier := root.CreateElement("cac:AccountingSupplierParty").CreateElement("cac:Party")
	party(supplier, inv.CompanyDetails[entity.CompanyTaxNo], inv.CompanyDetails[entity.CompanyName])
	if addr := inv.CompanyDetails[entity.CompanyAddress]; addr != "" {
		cbc(supplier.CreateElement("cac:PostalAddress"), "StreetName", addr)
	}
	contact(supplier, inv.CompanyDetails[entity.CompanyPhone], inv.CompanyDetails[entity.CompanyEmail])

	// ---- cac:AccountingCustomerParty (instantánea del cliente)
	customer := root.CreateElement("cac:AccountingCustomerParty").CreateElement("cac:Party")
	party(customer, inv.CustomerDetails.TaxNumber, inv.CustomerDetails.Name)
	contact(customer, inv.CustomerDetails.Phone, "")

	// ---- cac:TaxTotal
	b.taxTotal(root, inv.Totals.Subtotal, inv.Totals.Tax)

	// ---- cac:LegalMonetaryTotal
	mt := root.CreateElement("cac:LegalMonetaryTotal")
	b.amount(mt, "LineExtensionAmount", inv.Totals.Subtotal)
	b.amount(mt, "TaxExclusiveAmount", inv.Totals.Subtotal)
	b.amount(mt, "TaxInclusiveAmount", inv.Totals.GrandTotal)
	b.amount(mt, "PayableAmount", inv.Totals.GrandTotal)

	// ---- cac:InvoiceLine
	for _, it := range inv.Items {
		line := root.CreateElement("cac:InvoiceLine")
		cbc(line, "ID", strconv.Itoa(it.SequenceNo))
		q := cbc(line, "InvoicedQuantity", strconv.Itoa(it.Quantity))
		q.CreateAttr("unitCode", "EA")
		b.amount(line, "LineExtensionAmount", it.Subtotal)

		item := line.CreateElement("cac:Item")
		cbc(item, "Description", it.ItemName)
		cbc(item, "Name", it.ItemName)
		if it.IsCatalogItem() {
			cbc(item.CreateElement("cac:SellersItemIdentification"), "ID", it.Barcode)
		}
		b.amount(line.CreateElement("cac:Price"), "PriceAmount", it.UnitPrice)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("ubl: serializar: %w", err)
	}
	return out, nil
}

func (b *Builder) taxTotal(parent *etree.Element, taxable, tax decimal.Decimal) {
	tt := parent.CreateElement("cac:TaxTotal")
	b.amount(tt, "TaxAmount", tax)
	sub := tt.CreateElement("cac:TaxSubtotal")
	b.amount(sub, "TaxableAmount", taxable)
	b.amount(sub, "TaxAmount", tax)
	cat := sub.CreateElement("cac:TaxCategory")
	cbc(cat, "Percent", billing.TaxRate.Shift(2).StringFixed(2))
	cbc(cat.CreateElement("cac:TaxScheme"), "ID", "VAT")
}

func (b *Builder) amount(parent *etree.Element, local string, v decimal.Decimal) {
	el := cbc(parent, local, v.StringFixed(billing.MoneyPlaces))
	el.CreateAttr("currencyID", b.currency)
}

func party(parent *etree.Element, id, name string) {
	if id != "" {
		cbc(parent.CreateElement("cac:PartyIdentification"), "ID", id)
	}
	cbc(parent.CreateElement("cac:PartyName"), "Name", name)
}

func contact(parent *etree.Element, phone, email string) {
	if phone == "" && email == "" {
		return
	}
	c := parent.CreateElement("cac:Contact")
	if phone != "" {
		cbc(c, "Telephone", phone)
	}
	if email != "" {
		cbc(c, "ElectronicMail", email)
	}
}

func cbc(parent *etree.Element, local, value string) *etree.Element {
	el := parent.CreateElement("cbc:" + local)
	el.SetText(value)
	return el
}
