package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// SalesReportRequest parámetros para GET /api/reports/sales.
type SalesReportRequest struct {
	TopN int `query:"top_n"` // máx ítems a devolver (default 10, max 100)
}

// ── Inventario ────────────────────────────────────────────────────────────────

// InventoryValuationLineDTO valor de existencias de un producto.
type InventoryValuationLineDTO struct {
	Barcode    string          `json:"barcode"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	StockValue decimal.Decimal `json:"stock_value"` // quantity * selling_price
	CostValue  decimal.Decimal `json:"cost_value"`  // quantity * purchase_price
	Margin     decimal.Decimal `json:"margin"`      // StockValue - CostValue
}

// InventoryValuationDTO valorización del catálogo completo.
type InventoryValuationDTO struct {
	ProductCount    int                         `json:"product_count"`
	TotalUnits      int                         `json:"total_units"`
	TotalStockValue decimal.Decimal             `json:"total_stock_value"`
	TotalCostValue  decimal.Decimal             `json:"total_cost_value"`
	PotentialMargin decimal.Decimal             `json:"potential_margin"`
	OutOfStock      []string                    `json:"out_of_stock"` // barcodes con quantity = 0
	Lines           []InventoryValuationLineDTO `json:"lines"`
}

// ── Ventas ────────────────────────────────────────────────────────────────────

// TopItemDTO ítem más vendido (agrupado por barcode de catálogo o por nombre si es fuera de catálogo).
type TopItemDTO struct {
	Rank      int             `json:"rank"`
	Barcode   string          `json:"barcode"`
	ItemName  string          `json:"item_service"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"` // suma de subtotales de línea
}

// SalesSummaryDTO resumen del libro de facturas.
type SalesSummaryDTO struct {
	InvoiceCount   int             `json:"invoice_count"`
	LineCount      int             `json:"line_count"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Tax            decimal.Decimal `json:"tax"`
	GrandTotal     decimal.Decimal `json:"grand_total"`
	AverageInvoice decimal.Decimal `json:"average_invoice"` // GrandTotal / InvoiceCount, 2 decimales
	TopItems       []TopItemDTO    `json:"top_items"`
}
