package product

import (
	"abc-product/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for products.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the product routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/products")
	group.Get("/", h.HandleSummary)
	group.Get("/:key", h.HandleGetProduct)
}

// HandleSummary returns aggregate figures for the reconciled export.
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	cat, err := h.service.Catalog(c.Context())
	if err != nil {
		l.Error("Catalog load failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"summary":  cat.Summary,
		"built_at": cat.Built,
	})
}

// HandleGetProduct returns a single product by key.
func (h *Handler) HandleGetProduct(c *fiber.Ctx) error {
	key := c.Params("key")
	l := logger.WithRayID(h.service.logger, c)

	p, ok, err := h.service.Get(c.Context(), key)
	if err != nil {
		l.Error("Product lookup failed", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "product not found",
			"key":   key,
		})
	}

	return c.JSON(p)
}
