package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/Contable-pos/internal/application/analytics"
	"github.com/jhoicas/Contable-pos/internal/application/billing"
	"github.com/jhoicas/Contable-pos/internal/application/inventory"
	"github.com/jhoicas/Contable-pos/internal/infrastructure/archive"
	"github.com/jhoicas/Contable-pos/internal/infrastructure/jsonstore"
	"github.com/jhoicas/Contable-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/Contable-pos/internal/infrastructure/ubl"
	apphttp "github.com/jhoicas/Contable-pos/internal/interfaces/http"
	"github.com/jhoicas/Contable-pos/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testStorage = config.StorageConfig{
	DataDir: "data", ProductsFile: "inventory.json", CustomersFile: "customers.json", InvoicesFile: "invoices.json",
}

// buildTestApp arma la aplicación completa sobre el sistema de archivos fs.
func buildTestApp(t *testing.T, fs afero.Fs) *fiber.App {
	t.Helper()
	ctx := context.Background()
	log := zerolog.Nop()
	store := jsonstore.NewStore(fs, testStorage)

	catalog := inventory.NewCatalog(ctx, store.Products, log)
	customers := billing.NewCustomerDirectory(ctx, store.Customers, log)
	ledger := billing.NewLedger(ctx, store.Invoices, log)

	pdfUC := billing.NewPDFUseCase(ledger, pdf.NewMarotoPDFGenerator(language.Spanish))
	xmlUC := billing.NewXMLUseCase(ledger, ubl.NewBuilder(""))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AppName:       "contable-pos",
		StorageDriver: config.StorageJSON,
		Catalog:       catalog,
		Customers:     customers,
		Ledger:        ledger,
		Builder:       billing.NewBuilder(catalog, ledger, log),
		PDF:           pdfUC,
		XML:           xmlUC,
		Bundle:        billing.NewBundleUseCase(pdfUC, xmlUC, archive.NewZipPacker()),
		Reports:       analytics.NewReportUseCase(catalog, ledger),
	})
	return app
}

// call lanza la petición y decodifica el cuerpo JSON (si lo hay) en out.
func call(t *testing.T, app *fiber.App, method, path string, body any, out any) int {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, out), string(raw))
	}
	return resp.StatusCode
}

type draftBody struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	Items         []struct {
		SeqNo    int    `json:"seq_no"`
		Name     string `json:"item_service"`
		Subtotal string `json:"subtotal"`
		Barcode  string `json:"barcode"`
	} `json:"items"`
	Totals struct {
		Subtotal   string `json:"subtotal"`
		Tax        string `json:"tax"`
		GrandTotal string `json:"grand_total"`
	} `json:"totals"`
}

type errorBody struct {
	Code   string `json:"code"`
	Fields []struct {
		Field string `json:"field"`
	} `json:"fields"`
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_CrearListarModificarEliminar(t *testing.T) {
	app := buildTestApp(t, afero.NewMemMapFs())

	var created map[string]any
	status := call(t, app, http.MethodPost, "/api/products", map[string]any{
		"name": "Café", "purchase_price": 2.5, "selling_price": "4", "quantity": 10, "tax_percent": "15",
	}, &created)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "AUTOGEN-0001", created["barcode"])

	var list struct {
		Total int `json:"total"`
	}
	require.Equal(t, fiber.StatusOK, call(t, app, http.MethodGet, "/api/products", nil, &list))
	assert.Equal(t, 1, list.Total)

	var updated map[string]any
	status = call(t, app, http.MethodPut, "/api/products/AUTOGEN-0001", map[string]any{"quantity": "3"}, &updated)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(3), updated["quantity"])

	assert.Equal(t, fiber.StatusNoContent, call(t, app, http.MethodDelete, "/api/products/AUTOGEN-0001", nil, nil))
	assert.Equal(t, fiber.StatusNotFound, call(t, app, http.MethodDelete, "/api/products/AUTOGEN-0001", nil, nil))
}

func TestProducts_ValidacionDevuelveCampos(t *testing.T) {
	app := buildTestApp(t, afero.NewMemMapFs())

	var eb errorBody
	status := call(t, app, http.MethodPost, "/api/products", map[string]any{
		"name": "", "purchase_price": "x", "selling_price": "1", "quantity": "-1", "tax_percent": "0",
	}, &eb)
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", eb.Code)
	fields := []string{}
	for _, f := range eb.Fields {
		fields = append(fields, f.Field)
	}
	assert.Equal(t, []string{"name", "purchase_price", "quantity"}, fields)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrador y facturas
// ──────────────────────────────────────────────────────────────────────────────

func TestDraft_FlujoCompleto(t *testing.T) {
	fs := afero.NewMemMapFs()
	app := buildTestApp(t, fs)

	var d draftBody
	require.Equal(t, fiber.StatusCreated, call(t, app, http.MethodPost, "/api/draft", nil, &d))
	assert.Equal(t, "001", d.InvoiceNumber)
	base := "/api/draft/" + d.ID

	status := call(t, app, http.MethodPut, base+"/header", map[string]any{
		"company_details":  map[string]string{"name": "Tienda Sol"},
		"customer_details": map[string]string{"name": "Ana", "phone": "555"},
	}, &d)
	require.Equal(t, fiber.StatusOK, status)

	status = call(t, app, http.MethodPost, base+"/items", map[string]any{
		"item_service": "Consultoría", "quantity": 3, "unit_price": "10.00",
	}, &d)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "30.00", d.Totals.Subtotal)
	assert.Equal(t, "4.50", d.Totals.Tax)
	assert.Equal(t, "34.50", d.Totals.GrandTotal)
	require.Len(t, d.Items, 1)
	assert.Equal(t, "N/A", d.Items[0].Barcode)

	var saved map[string]any
	require.Equal(t, fiber.StatusCreated, call(t, app, http.MethodPost, base+"/finalize", nil, &saved))
	assert.Equal(t, "001", saved["invoice_number"])
	totals := saved["totals"].(map[string]any)
	assert.Equal(t, "34.50", totals["grand_total"])

	assert.Equal(t, fiber.StatusNotFound, call(t, app, http.MethodGet, base, nil, nil), "el borrador ya no existe")

	var inv map[string]any
	require.Equal(t, fiber.StatusOK, call(t, app, http.MethodGet, "/api/invoices/001", nil, &inv))
	assert.Equal(t, "Ana", inv["customer_details"].(map[string]any)["name"])

	var found struct {
		Total int `json:"total"`
	}
	require.Equal(t, fiber.StatusOK, call(t, app, http.MethodGet, "/api/invoices?q=consultor", nil, &found))
	assert.Equal(t, 1, found.Total)

	// Tras un reinicio el siguiente borrador continúa la numeración.
	restarted := buildTestApp(t, fs)
	require.Equal(t, fiber.StatusCreated, call(t, restarted, http.MethodPost, "/api/draft", nil, &d))
	assert.Equal(t, "002", d.InvoiceNumber)
}

func TestDraft_FinalizarVacioYLineaInexistente(t *testing.T) {
	app := buildTestApp(t, afero.NewMemMapFs())

	var d draftBody
	require.Equal(t, fiber.StatusCreated, call(t, app, http.MethodPost, "/api/draft", nil, &d))
	base := "/api/draft/" + d.ID

	var eb errorBody
	assert.Equal(t, fiber.StatusUnprocessableEntity, call(t, app, http.MethodPost, base+"/finalize", nil, &eb))
	assert.Equal(t, "EMPTY_INVOICE", eb.Code)

	assert.Equal(t, fiber.StatusNotFound, call(t, app, http.MethodDelete, base+"/items/1", nil, nil))
	assert.Equal(t, fiber.StatusBadRequest, call(t, app, http.MethodDelete, base+"/items/uno", nil, nil))
	assert.Equal(t, fiber.StatusNotFound, call(t, app, http.MethodPost, "/api/draft/otro/items",
		map[string]any{"item_service": "X", "quantity": 1, "unit_price": 1}, nil))

	assert.Equal(t, fiber.StatusNoContent, call(t, app, http.MethodDelete, base, nil, nil))
}

func TestInvoices_Exportaciones(t *testing.T) {
	app := buildTestApp(t, afero.NewMemMapFs())

	var d draftBody
	call(t, app, http.MethodPost, "/api/draft", nil, &d)
	call(t, app, http.MethodPost, "/api/draft/"+d.ID+"/items",
		map[string]any{"item_service": "Pan", "quantity": 2, "unit_price": "1.25"}, nil)
	require.Equal(t, fiber.StatusCreated, call(t, app, http.MethodPost, "/api/draft/"+d.ID+"/finalize", nil, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/001/xml", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "<cbc:ID>001</cbc:ID>")

	req = httptest.NewRequest(http.MethodGet, "/api/invoices/001/pdf", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	req = httptest.NewRequest(http.MethodGet, "/api/invoices/001/zip", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "factura_001.zip")

	assert.Equal(t, fiber.StatusNotFound, call(t, app, http.MethodGet, "/api/invoices/999/pdf", nil, nil))
	assert.Equal(t, fiber.StatusNotFound, call(t, app, http.MethodGet, "/api/invoices/999/zip", nil, nil))
}

func TestReports(t *testing.T) {
	app := buildTestApp(t, afero.NewMemMapFs())
	call(t, app, http.MethodPost, "/api/products", map[string]any{
		"name": "Café", "purchase_price": "2", "selling_price": "4", "quantity": "5", "tax_percent": "15",
	}, nil)

	var inv struct {
		ProductCount    int    `json:"product_count"`
		TotalStockValue string `json:"total_stock_value"`
	}
	require.Equal(t, fiber.StatusOK, call(t, app, http.MethodGet, "/api/reports/inventory", nil, &inv))
	assert.Equal(t, 1, inv.ProductCount)
	assert.Equal(t, "20", inv.TotalStockValue)

	var sales struct {
		InvoiceCount int `json:"invoice_count"`
	}
	require.Equal(t, fiber.StatusOK, call(t, app, http.MethodGet, "/api/reports/sales?top_n=5", nil, &sales))
	assert.Zero(t, sales.InvoiceCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Persistencia
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomers_FalloDeGuardadoDevuelveCambioAplicado(t *testing.T) {
	app := buildTestApp(t, afero.NewReadOnlyFs(afero.NewMemMapFs()))

	var body struct {
		Code    string         `json:"code"`
		Applied map[string]any `json:"applied"`
	}
	status := call(t, app, http.MethodPost, "/api/customers", map[string]string{"name": "Luis"}, &body)
	require.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "PERSISTENCE", body.Code)
	assert.Equal(t, "Luis", body.Applied["name"])

	var list struct {
		Total int `json:"total"`
	}
	call(t, app, http.MethodGet, "/api/customers", nil, &list)
	assert.Equal(t, 1, list.Total, "el cliente queda en memoria")
}

func TestHealth_SinAdvertencias(t *testing.T) {
	app := buildTestApp(t, afero.NewMemMapFs())

	var h struct {
		Status       string `json:"status"`
		Storage      string `json:"storage"`
		LoadWarnings []any  `json:"load_warnings"`
	}
	require.Equal(t, fiber.StatusOK, call(t, app, http.MethodGet, "/health", nil, &h))
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, config.StorageJSON, h.Storage)
	assert.Empty(t, h.LoadWarnings)
}

func TestHealth_ColeccionIlegibleDegrada(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testStorage.InvoicesPath(), []byte("{roto"), 0o644))
	app := buildTestApp(t, fs)

	var h struct {
		Status       string `json:"status"`
		LoadWarnings []struct {
			Collection string `json:"collection"`
			Message    string `json:"message"`
		} `json:"load_warnings"`
	}
	require.Equal(t, fiber.StatusOK, call(t, app, http.MethodGet, "/health", nil, &h))
	assert.Equal(t, "degraded", h.Status)
	require.Len(t, h.LoadWarnings, 1)
	assert.Equal(t, "invoices", h.LoadWarnings[0].Collection)
	assert.NotEmpty(t, h.LoadWarnings[0].Message)
}
