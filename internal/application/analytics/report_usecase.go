// Package analytics contiene los casos de uso de reportes: valorización del
// inventario y resumen de ventas sobre el libro de facturas.
package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contable-pos/internal/application/dto"
	"github.com/jhoicas/Contable-pos/internal/domain/entity"
)

const (
	defaultTopN = 10
	maxTopN     = 100
)

// ProductSource lectura del catálogo.
type ProductSource interface {
	ListProducts() []entity.Product
}

// InvoiceSource lectura del libro de facturas.
type InvoiceSource interface {
	ListAll() []entity.SavedInvoice
}

// ReportUseCase calcula los reportes en memoria; no modifica nada.
type ReportUseCase struct {
	products ProductSource
	invoices InvoiceSource
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(products ProductSource, invoices InvoiceSource) *ReportUseCase {
	return &ReportUseCase{products: products, invoices: invoices}
}

// InventoryValuation valor de existencias a precio de venta y de compra, por producto y total.
func (uc *ReportUseCase) InventoryValuation() dto.InventoryValuationDTO {
	products := uc.products.ListProducts()
	out := dto.InventoryValuationDTO{
		ProductCount:    len(products),
		TotalStockValue: decimal.Zero,
		TotalCostValue:  decimal.Zero,
		OutOfStock:      []string{},
		Lines:           make([]dto.InventoryValuationLineDTO, 0, len(products)),
	}
	for _, p := range products {
		stock, cost := p.StockValue(), p.CostValue()
		out.Lines = append(out.Lines, dto.InventoryValuationLineDTO{
			Barcode:    p.Barcode,
			Name:       p.Name,
			Quantity:   p.Quantity,
			StockValue: stock.Round(2),
			CostValue:  cost.Round(2),
			Margin:     stock.Sub(cost).Round(2),
		})
		out.TotalUnits += p.Quantity
		out.TotalStockValue = out.TotalStockValue.Add(stock)
		out.TotalCostValue = out.TotalCostValue.Add(cost)
		if p.Quantity == 0 {
			out.OutOfStock = append(out.OutOfStock, p.Barcode)
		}
	}
	out.TotalStockValue = out.TotalStockValue.Round(2)
	out.TotalCostValue = out.TotalCostValue.Round(2)
	out.PotentialMargin = out.TotalStockValue.Sub(out.TotalCostValue)
	return out
}

// SalesSummary totales del libro y ranking de ítems por unidades vendidas.
// Las líneas de catálogo se agrupan por barcode; las demás por nombre.
func (uc *ReportUseCase) SalesSummary(req dto.SalesReportRequest) dto.SalesSummaryDTO {
	topN := req.TopN
	if topN <= 0 {
		topN = defaultTopN
	}
	if topN > maxTopN {
		topN = maxTopN
	}

	out := dto.SalesSummaryDTO{
		Subtotal:       decimal.Zero,
		Tax:            decimal.Zero,
		GrandTotal:     decimal.Zero,
		AverageInvoice: decimal.Zero,
		TopItems:       []dto.TopItemDTO{},
	}
	byKey := map[string]*dto.TopItemDTO{}
	var order []string

	for _, inv := range uc.invoices.ListAll() {
		out.InvoiceCount++
		out.Subtotal = out.Subtotal.Add(inv.Totals.Subtotal)
		out.Tax = out.Tax.Add(inv.Totals.Tax)
		out.GrandTotal = out.GrandTotal.Add(inv.Totals.GrandTotal)
		for _, it := range inv.Items {
			out.LineCount++
			key := "name:" + strings.ToLower(strings.TrimSpace(it.ItemName))
			barcode := entity.NonCatalogBarcode
			if it.IsCatalogItem() {
				key = "barcode:" + it.Barcode
				barcode = it.Barcode
			}
			agg, ok := byKey[key]
			if !ok {
				agg = &dto.TopItemDTO{Barcode: barcode, ItemName: it.ItemName, Revenue: decimal.Zero}
				byKey[key] = agg
				order = append(order, key)
			}
			agg.UnitsSold += it.Quantity
			agg.Revenue = agg.Revenue.Add(it.Subtotal)
		}
	}
	if out.InvoiceCount > 0 {
		out.AverageInvoice = out.GrandTotal.Div(decimal.NewFromInt(int64(out.InvoiceCount))).Round(2)
	}

	items := make([]dto.TopItemDTO, 0, len(order))
	for _, k := range order {
		items = append(items, *byKey[k])
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].UnitsSold != items[j].UnitsSold {
			return items[i].UnitsSold > items[j].UnitsSold
		}
		return items[i].Revenue.GreaterThan(items[j].Revenue)
	})
	if len(items) > topN {
		items = items[:topN]
	}
	for i := range items {
		items[i].Rank = i + 1
	}
	out.TopItems = items
	return out
}
