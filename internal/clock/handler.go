package clock

import "github.com/gofiber/fiber/v2"

type Handler struct {
	clock *Clock
}

func NewHandler(clock *Clock) *Handler {
	return &Handler{clock: clock}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/api/v1/clock", h.getClock)
}

func (h *Handler) getClock(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"time":     h.clock.Formatted(),
		"timezone": h.clock.Location().String(),
	})
}
