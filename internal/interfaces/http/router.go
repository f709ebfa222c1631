package http

import (
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Contable-pos/internal/application/analytics"
	"github.com/jhoicas/Contable-pos/internal/application/billing"
	"github.com/jhoicas/Contable-pos/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName       string
	StorageDriver string

	Catalog   *inventory.Catalog
	Customers *billing.CustomerDirectory
	Ledger    *billing.Ledger
	Builder   *billing.Builder
	PDF       *billing.PDFUseCase
	XML       *billing.XMLUseCase
	Bundle    *billing.BundleUseCase
	Reports   *analytics.ReportUseCase
}

// Router registra las rutas de la API. Todas las rutas /api comparten un único mutex.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", NewHealthHandler(deps.AppName, deps.StorageDriver, deps).Get)

	api := app.Group("/api", Serialize(&sync.Mutex{}))

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Catalog)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:barcode", productHandler.GetByBarcode)
	products.Put("/:barcode", productHandler.Update)
	products.Delete("/:barcode", productHandler.Delete)

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.Customers)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	draft := api.Group("/draft")
	draftHandler := NewDraftHandler(deps.Builder)
	draft.Post("/", draftHandler.Open)
	draft.Get("/:id", draftHandler.Get)
	draft.Put("/:id/header", draftHandler.SetHeader)
	draft.Post("/:id/items", draftHandler.AddItem)
	draft.Delete("/:id/items/:seq", draftHandler.RemoveItem)
	draft.Post("/:id/finalize", draftHandler.Finalize)
	draft.Delete("/:id", draftHandler.Discard)

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.Ledger, deps.PDF, deps.XML, deps.Bundle)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:number", invoiceHandler.GetByNumber)
	invoices.Get("/:number/pdf", invoiceHandler.DownloadPDF)
	invoices.Get("/:number/xml", invoiceHandler.DownloadXML)
	invoices.Get("/:number/zip", invoiceHandler.DownloadBundle)

	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.Reports)
	reports.Get("/inventory", reportHandler.Inventory)
	reports.Get("/sales", reportHandler.Sales)
}
