package product

import (
	"math"

	"github.com/shopspring/decimal"
)

func init() {
	// the products API sends prices as JSON numbers; keep them numbers on the way out
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is one catalogue item as served by the products API.
// JSON tags follow the upstream payload so a fetched list decodes as-is.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Rating      Rating          `json:"rating"`
}

type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Stars is the whole-star bucket used by the rating filter (floor of the rate).
func (r Rating) Stars() int {
	return int(math.Floor(r.Rate))
}

// Preview is the product detail shown when a single product is opened.
type Preview struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"`
}

func (p Product) Preview() Preview {
	return Preview{
		ID:          p.ID,
		Title:       p.Title,
		Image:       p.Image,
		Category:    p.Category,
		Description: p.Description,
		Price:       p.Price,
		Rating:      p.Rating.Rate,
	}
}

// CategoryAll is the category selection that disables category filtering.
const CategoryAll = "All"

// AllowedCategories contains the catalogue categories, in the order they are offered.
var AllowedCategories = []string{
	"men's clothing",
	"jewelery",
	"electronics",
	"women's clothing",
}

func IsAllowedCategory(category string) bool {
	for _, c := range AllowedCategories {
		if c == category {
			return true
		}
	}
	return false
}
