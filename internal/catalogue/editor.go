package catalogue

import (
	"github.com/shopspring/decimal"
	"github.com/wichananm65/product-catalogue/internal/category"
)

// FilterForm holds the editable filter values. Search text is edited
// separately and is not part of the form.
type FilterForm struct {
	Category     string           `json:"category"`
	PriceCeiling *decimal.Decimal `json:"priceCeiling"`
	Ratings      []int            `json:"ratings"`
}

// FilterEditor is the filter dialog: the form seeded with the current
// criteria plus the available choices.
type FilterEditor struct {
	Form          FilterForm      `json:"form"`
	Categories    []category.Item `json:"categories"`
	PriceMin      int             `json:"priceMin"`
	PriceMax      int             `json:"priceMax"`
	RatingOptions []int           `json:"ratingOptions"`
}

// OpenEditor seeds the dialog from c. Opening has no effect on c.
func OpenEditor(c Criteria) FilterEditor {
	ceiling := c.PriceCeiling
	ratings := make([]int, len(c.Ratings))
	copy(ratings, c.Ratings)

	ratingOptions := make([]int, 0, MaxRating-MinRating+1)
	for r := MinRating; r <= MaxRating; r++ {
		ratingOptions = append(ratingOptions, r)
	}

	return FilterEditor{
		Form:          FilterForm{Category: c.Category, PriceCeiling: &ceiling, Ratings: ratings},
		Categories:    category.Options(),
		PriceMin:      0,
		PriceMax:      MaxPriceCeiling,
		RatingOptions: ratingOptions,
	}
}

// Apply confirms the form against c. Category, price ceiling and ratings are
// replaced together or not at all; search text is kept.
func (f FilterForm) Apply(c Criteria) (Criteria, error) {
	if f.PriceCeiling == nil {
		errs := validateFilters(f.Category, decimal.Zero, f.Ratings)
		errs["priceCeiling"] = "priceCeiling is required"
		return c, &ValidationError{Fields: errs}
	}
	next, err := NewCriteria(c.Search, f.Category, *f.PriceCeiling, f.Ratings)
	if err != nil {
		return c, err
	}
	return next, nil
}
