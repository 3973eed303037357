package catalogue

import (
	"strings"

	"github.com/wichananm65/product-catalogue/internal/product"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter returns the products matching every criterion, in source order.
// The input slice is not modified.
func Filter(products []product.Product, c Criteria) []product.Product {
	// plain lower-casing, no full folding: "ss" must not match "ß"
	lower := cases.Lower(language.Und)
	needle := lower.String(c.Search)

	var ratings map[int]bool
	if len(c.Ratings) > 0 {
		ratings = make(map[int]bool, len(c.Ratings))
		for _, r := range c.Ratings {
			ratings[r] = true
		}
	}

	out := make([]product.Product, 0, len(products))
	for _, p := range products {
		if !strings.Contains(lower.String(p.Title), needle) {
			continue
		}
		if c.Category != product.CategoryAll && p.Category != c.Category {
			continue
		}
		if p.Price.IsNegative() || p.Price.GreaterThan(c.PriceCeiling) {
			continue
		}
		if ratings != nil && !ratings[p.Rating.Stars()] {
			continue
		}
		out = append(out, p)
	}
	return out
}
