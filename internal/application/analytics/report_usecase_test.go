package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contable-pos/internal/application/analytics"
	"github.com/jhoicas/Contable-pos/internal/application/dto"
	"github.com/jhoicas/Contable-pos/internal/domain/billing"
	"github.com/jhoicas/Contable-pos/internal/domain/entity"
)

type fakeProducts []entity.Product

func (f fakeProducts) ListProducts() []entity.Product { return f }

type fakeInvoices []entity.SavedInvoice

func (f fakeInvoices) ListAll() []entity.SavedInvoice { return f }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func invoice(number string, lines ...entity.LineItem) entity.SavedInvoice {
	for i := range lines {
		lines[i].SequenceNo = i + 1
		lines[i].Subtotal = billing.LineSubtotal(lines[i].Quantity, lines[i].UnitPrice)
	}
	return entity.SavedInvoice{InvoiceNumber: number, Items: lines, Totals: billing.RecomputeTotals(lines)}
}

func TestInventoryValuation(t *testing.T) {
	uc := analytics.NewReportUseCase(fakeProducts{
		{Barcode: "AUTOGEN-0001", Name: "Café", PurchasePrice: dec("2"), SellingPrice: dec("3.50"), Quantity: 4},
		{Barcode: "AUTOGEN-0002", Name: "Té", PurchasePrice: dec("1"), SellingPrice: dec("2"), Quantity: 0},
	}, fakeInvoices{})

	r := uc.InventoryValuation()
	assert.Equal(t, 2, r.ProductCount)
	assert.Equal(t, 4, r.TotalUnits)
	assert.Equal(t, "14.00", r.TotalStockValue.StringFixed(2))
	assert.Equal(t, "8.00", r.TotalCostValue.StringFixed(2))
	assert.Equal(t, "6.00", r.PotentialMargin.StringFixed(2))
	assert.Equal(t, []string{"AUTOGEN-0002"}, r.OutOfStock)
	require.Len(t, r.Lines, 2)
	assert.Equal(t, "6.00", r.Lines[0].Margin.StringFixed(2))
}

func TestSalesSummary(t *testing.T) {
	uc := analytics.NewReportUseCase(fakeProducts{}, fakeInvoices{
		invoice("001",
			entity.LineItem{ItemName: "Café", Quantity: 3, UnitPrice: dec("10"), Barcode: "AUTOGEN-0001"},
			entity.LineItem{ItemName: "Propina", Quantity: 1, UnitPrice: dec("2"), Barcode: entity.NonCatalogBarcode},
		),
		invoice("002",
			entity.LineItem{ItemName: "Café molido", Quantity: 2, UnitPrice: dec("10"), Barcode: "AUTOGEN-0001"},
			entity.LineItem{ItemName: "propina ", Quantity: 1, UnitPrice: dec("3"), Barcode: entity.NonCatalogBarcode},
		),
	})

	r := uc.SalesSummary(dto.SalesReportRequest{})
	assert.Equal(t, 2, r.InvoiceCount)
	assert.Equal(t, 4, r.LineCount)
	assert.Equal(t, "55.00", r.Subtotal.StringFixed(2))
	assert.Equal(t, "8.25", r.Tax.StringFixed(2))
	assert.Equal(t, "63.25", r.GrandTotal.StringFixed(2))
	assert.Equal(t, "31.63", r.AverageInvoice.StringFixed(2))

	require.Len(t, r.TopItems, 2)
	assert.Equal(t, 1, r.TopItems[0].Rank)
	assert.Equal(t, "AUTOGEN-0001", r.TopItems[0].Barcode)
	assert.Equal(t, 5, r.TopItems[0].UnitsSold)
	assert.Equal(t, "50.00", r.TopItems[0].Revenue.StringFixed(2))
	assert.Equal(t, 2, r.TopItems[1].UnitsSold)

	top1 := uc.SalesSummary(dto.SalesReportRequest{TopN: 1})
	assert.Len(t, top1.TopItems, 1)
}

func TestSalesSummary_LineasConBarcodeDeRellenoNoSeFusionan(t *testing.T) {
	uc := analytics.NewReportUseCase(fakeProducts{}, fakeInvoices{
		invoice("001",
			entity.LineItem{ItemName: "Pen", Quantity: 1, UnitPrice: dec("1"), Barcode: entity.LegacyPlaceholderBarcode},
			entity.LineItem{ItemName: "Tea", Quantity: 1, UnitPrice: dec("2"), Barcode: entity.LegacyPlaceholderBarcode},
		),
	})

	r := uc.SalesSummary(dto.SalesReportRequest{})
	require.Len(t, r.TopItems, 2)
	assert.Equal(t, "Tea", r.TopItems[0].ItemName)
	assert.Equal(t, "Pen", r.TopItems[1].ItemName)
	assert.Equal(t, entity.NonCatalogBarcode, r.TopItems[1].Barcode)
	assert.Equal(t, 1, r.TopItems[1].UnitsSold)
}

func TestSalesSummary_LibroVacio(t *testing.T) {
	r := analytics.NewReportUseCase(fakeProducts{}, fakeInvoices{}).SalesSummary(dto.SalesReportRequest{})
	assert.Zero(t, r.InvoiceCount)
	assert.True(t, r.AverageInvoice.IsZero())
	assert.Empty(t, r.TopItems)
}
