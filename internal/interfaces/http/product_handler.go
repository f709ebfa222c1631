package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Contable-pos/internal/application/dto"
	"github.com/jhoicas/Contable-pos/internal/application/inventory"
)

// ProductHandler maneja las peticiones HTTP del catálogo.
type ProductHandler struct {
	catalog *inventory.Catalog
}

// NewProductHandler construye el handler.
func NewProductHandler(catalog *inventory.Catalog) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// Create godoc
// @Summary      Agregar producto (barcode AUTOGEN-NNNN asignado por el sistema)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductInput  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.PersistenceWarningResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	p, err := h.catalog.AddProduct(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, dto.NewProductResponse(p))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewProductResponse(p))
}

// List godoc
// @Summary      Listar productos en orden de alta
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products := h.catalog.ListProducts()
	out := dto.ProductListResponse{Items: make([]dto.ProductResponse, 0, len(products)), Total: len(products)}
	for _, p := range products {
		out.Items = append(out.Items, dto.NewProductResponse(p))
	}
	return c.JSON(out)
}

// GetByBarcode godoc
// @Summary      Obtener producto por barcode
// @Tags         products
// @Produce      json
// @Param        barcode  path  string  true  "Barcode"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{barcode} [get]
func (h *ProductHandler) GetByBarcode(c *fiber.Ctx) error {
	p, err := h.catalog.GetProduct(c.Params("barcode"))
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.JSON(dto.NewProductResponse(p))
}

// Update godoc
// @Summary      Modificar producto (campos presentes; el barcode no cambia)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        barcode  path  string  true  "Barcode"
// @Param        body     body  dto.ProductPatch  true  "Campos a modificar"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{barcode} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var patch dto.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return badBody(c)
	}
	p, err := h.catalog.ModifyProduct(c.UserContext(), c.Params("barcode"), patch)
	if err != nil {
		return writeError(c, err, dto.NewProductResponse(p))
	}
	return c.JSON(dto.NewProductResponse(p))
}

// Delete godoc
// @Summary      Eliminar producto (las facturas guardadas no cambian)
// @Tags         products
// @Param        barcode  path  string  true  "Barcode"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{barcode} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	barcode := c.Params("barcode")
	if err := h.catalog.DeleteProduct(c.UserContext(), barcode); err != nil {
		return writeError(c, err, fiber.Map{"deleted": barcode})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
