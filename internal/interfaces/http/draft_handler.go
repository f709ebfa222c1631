package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Contable-pos/internal/application/billing"
	"github.com/jhoicas/Contable-pos/internal/application/dto"
	"github.com/jhoicas/Contable-pos/internal/domain/entity"
)

// DraftHandler expone el constructor de facturas: un único borrador identificado por :id.
type DraftHandler struct {
	builder *billing.Builder
}

// NewDraftHandler construye el handler.
func NewDraftHandler(builder *billing.Builder) *DraftHandler {
	return &DraftHandler{builder: builder}
}

// Open godoc
// @Summary      Abrir borrador (descarta el anterior si lo hay)
// @Tags         draft
// @Produce      json
// @Success      201  {object}  dto.DraftResponse
// @Router       /api/draft [post]
func (h *DraftHandler) Open(c *fiber.Ctx) error {
	d := h.builder.OpenDraft()
	return c.Status(fiber.StatusCreated).JSON(dto.NewDraftResponse(d, entity.Totals{}))
}

// Get godoc
// @Summary      Ver borrador con totales
// @Tags         draft
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/draft/{id} [get]
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	return h.respond(c, fiber.StatusOK, c.Params("id"))
}

// SetHeader godoc
// @Summary      Datos de empresa y cliente del borrador
// @Tags         draft
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del borrador"
// @Param        body  body  dto.HeaderInput  true  "Encabezado"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/draft/{id}/header [put]
func (h *DraftHandler) SetHeader(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.HeaderInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Company != nil {
		if _, err := h.builder.SetCompanyDetails(id, in.Company); err != nil {
			return writeError(c, err, nil)
		}
	}
	if in.Customer != nil {
		customer := entity.Customer{Name: in.Customer.Name, Phone: in.Customer.Phone, TaxNumber: in.Customer.TaxNumber}
		if _, err := h.builder.SetCustomerDetails(id, customer); err != nil {
			return writeError(c, err, nil)
		}
	}
	return h.respond(c, fiber.StatusOK, id)
}

// AddItem godoc
// @Summary      Agregar línea al borrador
// @Tags         draft
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del borrador"
// @Param        body  body  dto.LineItemInput  true  "Línea"
// @Success      201  {object}  dto.DraftResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/draft/{id}/items [post]
func (h *DraftHandler) AddItem(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.LineItemInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if _, err := h.builder.AddLineItem(id, in); err != nil {
		return writeError(c, err, nil)
	}
	return h.respond(c, fiber.StatusCreated, id)
}

// RemoveItem godoc
// @Summary      Quitar línea (renumera las siguientes)
// @Tags         draft
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Param        seq  path  int     true  "seq_no de la línea"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/draft/{id}/items/{seq} [delete]
func (h *DraftHandler) RemoveItem(c *fiber.Ctx) error {
	id := c.Params("id")
	seq, err := c.ParamsInt("seq")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "seq debe ser un entero"})
	}
	if err := h.builder.RemoveLineItem(id, seq); err != nil {
		return writeError(c, err, nil)
	}
	return h.respond(c, fiber.StatusOK, id)
}

// Finalize godoc
// @Summary      Finalizar borrador: guarda la factura en el libro
// @Tags         draft
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      201  {object}  entity.SavedInvoice
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.PersistenceWarningResponse
// @Router       /api/draft/{id}/finalize [post]
func (h *DraftHandler) Finalize(c *fiber.Ctx) error {
	inv, err := h.builder.Finalize(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err, inv)
	}
	return c.Status(fiber.StatusCreated).JSON(inv)
}

// Discard godoc
// @Summary      Descartar borrador
// @Tags         draft
// @Param        id   path  string  true  "ID del borrador"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/draft/{id} [delete]
func (h *DraftHandler) Discard(c *fiber.Ctx) error {
	if err := h.builder.Discard(c.Params("id")); err != nil {
		return writeError(c, err, nil)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *DraftHandler) respond(c *fiber.Ctx, status int, id string) error {
	d, err := h.builder.Current(id)
	if err != nil {
		return writeError(c, err, nil)
	}
	totals, err := h.builder.Totals(id)
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.Status(status).JSON(dto.NewDraftResponse(d, totals))
}
