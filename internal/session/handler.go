package session

import (
	"github.com/go-faster/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/product-catalogue/internal/catalogue"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Post("/api/v1/sessions", h.createSession)
}

// RegisterProtectedRoutes expects a router already guarded by Middleware,
// e.g. app.Group("/api/v1/catalogue", Middleware(secret)).
func (h *Handler) RegisterProtectedRoutes(r fiber.Router) {
	r.Get("/view", h.getView)
	r.Put("/search", h.setSearch)
	r.Get("/filters", h.getFilters)
	r.Put("/filters", h.applyFilters)
	r.Post("/page/next", h.nextPage)
	r.Post("/page/previous", h.previousPage)
}

func (h *Handler) createSession(c *fiber.Ctx) error {
	sess, token, err := h.service.Start()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"sessionId": sess.ID, "token": token})
}

func (h *Handler) getView(c *fiber.Ctx) error {
	id, err := SessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return respondView(c)(h.service.View(id))
}

type searchRequest struct {
	Search string `json:"search"`
}

func (h *Handler) setSearch(c *fiber.Ctx) error {
	id, err := SessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	payload := new(searchRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return respondView(c)(h.service.SetSearch(id, payload.Search))
}

func (h *Handler) getFilters(c *fiber.Ctx) error {
	id, err := SessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	editor, err := h.service.Filters(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(editor)
}

func (h *Handler) applyFilters(c *fiber.Ctx) error {
	id, err := SessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	form := new(catalogue.FilterForm)
	if err := c.BodyParser(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return respondView(c)(h.service.ApplyFilters(id, *form))
}

func (h *Handler) nextPage(c *fiber.Ctx) error {
	id, err := SessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return respondView(c)(h.service.NextPage(id))
}

func (h *Handler) previousPage(c *fiber.Ctx) error {
	id, err := SessionIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return respondView(c)(h.service.PreviousPage(id))
}

func respondView(c *fiber.Ctx) func(catalogue.View, error) error {
	return func(v catalogue.View, err error) error {
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(v)
	}
}

func respondError(c *fiber.Ctx, err error) error {
	var ve *catalogue.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ve.Fields})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "session not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
