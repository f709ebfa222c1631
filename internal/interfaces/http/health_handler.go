package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Contable-pos/internal/application/dto"
)

// loadWarner componente que puede haber arrancado vacío por una carga fallida.
type loadWarner interface {
	LoadWarning() error
}

// HealthHandler estado del servicio y advertencias de carga de cada colección.
type HealthHandler struct {
	service string
	storage string
	sources []namedSource
}

type namedSource struct {
	collection string
	source     loadWarner
}

// NewHealthHandler construye el handler con los componentes a vigilar.
func NewHealthHandler(service, storage string, deps RouterDeps) *HealthHandler {
	h := &HealthHandler{service: service, storage: storage}
	if deps.Catalog != nil {
		h.sources = append(h.sources, namedSource{collection: "products", source: deps.Catalog})
	}
	if deps.Customers != nil {
		h.sources = append(h.sources, namedSource{collection: "customers", source: deps.Customers})
	}
	if deps.Ledger != nil {
		h.sources = append(h.sources, namedSource{collection: "invoices", source: deps.Ledger})
	}
	return h
}

// Get godoc
// @Summary      Estado del servicio
// @Description  "degraded" si alguna colección no pudo cargarse y el componente arrancó vacío.
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Get(c *fiber.Ctx) error {
	out := dto.HealthResponse{Status: "ok", Service: h.service, Storage: h.storage}
	for _, s := range h.sources {
		if err := s.source.LoadWarning(); err != nil {
			out.Status = "degraded"
			out.LoadWarnings = append(out.LoadWarnings, dto.LoadWarningDTO{
				Collection: s.collection,
				Message:    err.Error(),
			})
		}
	}
	return c.JSON(out)
}
