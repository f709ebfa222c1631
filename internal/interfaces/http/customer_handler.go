package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Contable-pos/internal/application/billing"
	"github.com/jhoicas/Contable-pos/internal/application/dto"
)

// CustomerHandler maneja las peticiones HTTP del directorio de clientes.
type CustomerHandler struct {
	dir *billing.CustomerDirectory
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(dir *billing.CustomerDirectory) *CustomerHandler {
	return &CustomerHandler{dir: dir}
}

// Create godoc
// @Summary      Registrar cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerInput  true  "Datos del cliente"
// @Success      201   {object}  entity.Customer
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.dir.AddCustomer(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, out)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar clientes en orden de registro
// @Tags         customers
// @Produce      json
// @Success      200  {object}  dto.CustomerListResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	items := h.dir.ListCustomers()
	return c.JSON(dto.CustomerListResponse{Items: items, Total: len(items)})
}
