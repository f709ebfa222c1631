package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Contable-pos/internal/application/billing"
	"github.com/jhoicas/Contable-pos/internal/application/dto"
)

// InvoiceHandler consulta y exportación del libro de facturas.
type InvoiceHandler struct {
	ledger *billing.Ledger
	pdf    *billing.PDFUseCase
	xml    *billing.XMLUseCase
	bundle *billing.BundleUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(ledger *billing.Ledger, pdf *billing.PDFUseCase, xml *billing.XMLUseCase, bundle *billing.BundleUseCase) *InvoiceHandler {
	return &InvoiceHandler{ledger: ledger, pdf: pdf, xml: xml, bundle: bundle}
}

// List godoc
// @Summary      Listar o buscar facturas (número, cliente, ítems)
// @Tags         invoices
// @Produce      json
// @Param        q    query  string  false  "Texto a buscar"
// @Success      200  {object}  dto.InvoiceListResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	items := h.ledger.Search(c.Query("q"))
	return c.JSON(dto.InvoiceListResponse{Items: items, Total: len(items)})
}

// GetByNumber godoc
// @Summary      Obtener factura por número
// @Tags         invoices
// @Produce      json
// @Param        number  path  string  true  "Número de factura"
// @Success      200  {object}  entity.SavedInvoice
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{number} [get]
func (h *InvoiceHandler) GetByNumber(c *fiber.Ctx) error {
	inv, err := h.ledger.Get(c.Params("number"))
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(inv)
}

// DownloadPDF godoc
// @Summary      Descargar PDF de la factura
// @Tags         invoices
// @Produce      application/pdf
// @Param        number  path  string  true  "Número de factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{number}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	out, filename, err := h.pdf.DownloadInvoicePDF(c.UserContext(), c.Params("number"))
	if err != nil {
		return writeError(c, err, nil)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(out)
}

// DownloadXML godoc
// @Summary      Descargar UBL 2.1 de la factura
// @Tags         invoices
// @Produce      application/xml
// @Param        number  path  string  true  "Número de factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{number}/xml [get]
func (h *InvoiceHandler) DownloadXML(c *fiber.Ctx) error {
	out, filename, err := h.xml.DownloadInvoiceXML(c.Params("number"))
	if err != nil {
		return writeError(c, err, nil)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(out)
}


// DownloadBundle godoc
// @Summary      Descargar ZIP con PDF y UBL de la factura
// @Tags         invoices
// @Produce      application/zip
// @Param        number  path  string  true  "Número de factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{number}/zip [get]
func (h *InvoiceHandler) DownloadBundle(c *fiber.Ctx) error {
	out, filename, err := h.bundle.DownloadInvoiceBundle(c.UserContext(), c.Params("number"))
	if err != nil {
		return writeError(c, err, nil)
	}
	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(out)
}
