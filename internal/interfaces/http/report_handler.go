package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Contable-pos/internal/application/analytics"
	"github.com/jhoicas/Contable-pos/internal/application/dto"
)

// ReportHandler maneja los reportes de inventario y ventas.
type ReportHandler struct {
	uc *analytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Inventory godoc
// @Summary      Valorización del inventario
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.InventoryValuationDTO
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	return c.JSON(h.uc.InventoryValuation())
}

// Sales godoc
// @Summary      Resumen de ventas y ítems más vendidos
// @Tags         reports
// @Produce      json
// @Param        top_n  query  int  false  "Máx ítems (default 10, max 100)"
// @Success      200  {object}  dto.SalesSummaryDTO
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	var req dto.SalesReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	return c.JSON(h.uc.SalesSummary(req))
}
