package category

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/api/v1/categories", h.getCategories)
}

// getCategories lists every choice unless a positive limit is given.
func (h *Handler) getCategories(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": map[string]string{"limit": "limit must be a positive integer"},
			})
		}
		limit = v
	}
	return c.JSON(h.service.List(limit))
}
