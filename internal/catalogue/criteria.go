package catalogue

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/wichananm65/product-catalogue/internal/product"
)

const (
	// PageSize is the fixed number of products on one page.
	PageSize = 8

	MaxPriceCeiling = 1000
	MinRating       = 1
	MaxRating       = 5
)

var ErrInvalidCriteria = errors.New("invalid filter criteria")

// Criteria is the tuple that decides which products are visible. The price
// floor is always 0 and is not part of the tuple.
type Criteria struct {
	Search       string          `json:"search"`
	Category     string          `json:"category"`
	PriceCeiling decimal.Decimal `json:"priceCeiling"`
	Ratings      []int           `json:"ratings"`
}

// DefaultCriteria matches every product.
func DefaultCriteria() Criteria {
	return Criteria{
		Category:     product.CategoryAll,
		PriceCeiling: decimal.NewFromInt(MaxPriceCeiling),
		Ratings:      []int{},
	}
}

// ValidationError carries every invalid field with its message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid filter criteria: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidCriteria }

// NewCriteria validates the filter values and returns normalized criteria.
// Ratings are deduplicated and sorted.
func NewCriteria(search, category string, ceiling decimal.Decimal, ratings []int) (Criteria, error) {
	if errs := validateFilters(category, ceiling, ratings); len(errs) > 0 {
		return Criteria{}, &ValidationError{Fields: errs}
	}
	return Criteria{
		Search:       search,
		Category:     category,
		PriceCeiling: ceiling,
		Ratings:      normalizeRatings(ratings),
	}, nil
}

func validateFilters(category string, ceiling decimal.Decimal, ratings []int) map[string]string {
	errs := map[string]string{}
	if category == "" {
		errs["category"] = "category is required"
	} else if category != product.CategoryAll && !product.IsAllowedCategory(category) {
		errs["category"] = "invalid category"
	}
	if ceiling.IsNegative() || ceiling.GreaterThan(decimal.NewFromInt(MaxPriceCeiling)) {
		errs["priceCeiling"] = fmt.Sprintf("priceCeiling must be between 0 and %d", MaxPriceCeiling)
	}
	for _, r := range ratings {
		if r < MinRating || r > MaxRating {
			errs["ratings"] = fmt.Sprintf("ratings must be between %d and %d", MinRating, MaxRating)
			break
		}
	}
	return errs
}

func normalizeRatings(ratings []int) []int {
	seen := make(map[int]bool, len(ratings))
	out := make([]int, 0, len(ratings))
	for _, r := range ratings {
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	sort.Ints(out)
	return out
}
