package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario.
// Barcode es la clave primaria: se genera al crear (AUTOGEN-NNNN) y nunca se reasigna.
type Product struct {
	Barcode       string
	Name          string
	PurchasePrice decimal.Decimal // precio de compra
	SellingPrice  decimal.Decimal // precio de venta
	Quantity      int             // existencias; ninguna factura la descuenta
	TaxPercent    decimal.Decimal // porcentaje, ej. 15 = 15%
}

// StockValue valor de las existencias a precio de venta (quantity × selling_price).
func (p Product) StockValue() decimal.Decimal {
	return p.SellingPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// CostValue valor de las existencias a precio de compra.
func (p Product) CostValue() decimal.Decimal {
	return p.PurchasePrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
