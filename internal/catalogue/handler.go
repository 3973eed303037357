package catalogue

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/wichananm65/product-catalogue/internal/product"
)

// Handler serves catalogue views for ad-hoc criteria, without a session.
type Handler struct {
	products product.ServiceInterface
}

func NewHandler(products product.ServiceInterface) *Handler {
	return &Handler{products: products}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/api/v1/products", h.getProducts)
}

// getProducts accepts search, category, maxPrice, rating (repeatable or
// comma separated) and page query parameters.
func (h *Handler) getProducts(c *fiber.Ctx) error {
	criteria, page, err := parseQuery(c)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ve.Fields})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	view, _ := BuildView(h.products.Snapshot(), criteria, page)
	return c.JSON(view)
}

func parseQuery(c *fiber.Ctx) (Criteria, int, error) {
	errs := map[string]string{}

	ceiling := decimal.NewFromInt(MaxPriceCeiling)
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			errs["maxPrice"] = "maxPrice must be a number"
		} else {
			ceiling = v
		}
	}

	ratings := make([]int, 0)
	for _, raw := range c.Context().QueryArgs().PeekMulti("rating") {
		for _, part := range strings.Split(string(raw), ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			r, err := strconv.Atoi(part)
			if err != nil {
				errs["ratings"] = "ratings must be integers"
				continue
			}
			ratings = append(ratings, r)
		}
	}

	page := 1
	if raw := c.Query("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			errs["page"] = "page must be a positive integer"
		} else {
			page = v
		}
	}

	criteria, err := NewCriteria(c.Query("search"), c.Query("category", product.CategoryAll), ceiling, ratings)
	if err != nil {
		var ve *ValidationError
		if !errors.As(err, &ve) {
			return Criteria{}, 0, err
		}
		for k, v := range ve.Fields {
			if _, ok := errs[k]; !ok {
				errs[k] = v
			}
		}
	}
	if len(errs) > 0 {
		return Criteria{}, 0, &ValidationError{Fields: errs}
	}
	return criteria, page, nil
}
