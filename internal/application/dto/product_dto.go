package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contable-pos/internal/domain/entity"
)

// ProductInput entrada para crear un producto. Los campos numéricos llegan como texto.
type ProductInput struct {
	Name          string      `json:"name"`
	PurchasePrice NumericText `json:"purchase_price"`
	SellingPrice  NumericText `json:"selling_price"`
	Quantity      NumericText `json:"quantity"`
	TaxPercent    NumericText `json:"tax_percent"`
}

// ProductPatch entrada para modificar un producto; solo se aplican los campos presentes.
// El barcode no es modificable.
type ProductPatch struct {
	Name          *string      `json:"name"`
	PurchasePrice *NumericText `json:"purchase_price"`
	SellingPrice  *NumericText `json:"selling_price"`
	Quantity      *NumericText `json:"quantity"`
	TaxPercent    *NumericText `json:"tax_percent"`
}

// Empty indica que el parche no trae ningún campo.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.PurchasePrice == nil && p.SellingPrice == nil &&
		p.Quantity == nil && p.TaxPercent == nil
}

// ProductResponse salida de un producto con sus valores derivados.
type ProductResponse struct {
	Barcode       string          `json:"barcode"`
	Name          string          `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Quantity      int             `json:"quantity"`
	TaxPercent    decimal.Decimal `json:"tax_percent"`
	StockValue    decimal.Decimal `json:"stock_value"`
}

// ProductListResponse listado del catálogo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// NewProductResponse mapea la entidad.
func NewProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		Barcode:       p.Barcode,
		Name:          p.Name,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		Quantity:      p.Quantity,
		TaxPercent:    p.TaxPercent,
		StockValue:    p.StockValue(),
	}
}
