package category

import "github.com/wichananm65/product-catalogue/internal/product"

// Repository provides the catalogue's category choices.
type Repository interface {
	List(limit int) ([]Item, error)
}

var labels = map[string]string{
	product.CategoryAll: "All Categories",
	"men's clothing":    "Men's Clothing",
	"jewelery":          "Jewelry",
	"electronics":       "Electronics",
	"women's clothing":  "Women's Clothing",
}

// StaticRepository serves the fixed category set, "All" first.
type StaticRepository struct{}

func NewStaticRepository() *StaticRepository {
	return &StaticRepository{}
}

func (r *StaticRepository) List(limit int) ([]Item, error) {
	values := append([]string{product.CategoryAll}, product.AllowedCategories...)
	if limit > 0 && limit < len(values) {
		values = values[:limit]
	}
	out := make([]Item, 0, len(values))
	for _, v := range values {
		label, ok := labels[v]
		if !ok {
			label = v
		}
		out = append(out, Item{Value: v, Label: label})
	}
	return out, nil
}
