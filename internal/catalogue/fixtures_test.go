package catalogue

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wichananm65/product-catalogue/internal/product"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func makeProducts(n int) []product.Product {
	out := make([]product.Product, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, product.Product{
			ID:       i,
			Title:    fmt.Sprintf("Item %d", i),
			Category: product.AllowedCategories[i%len(product.AllowedCategories)],
			Price:    decimal.NewFromInt(int64(i * 10)),
			Rating:   product.Rating{Rate: float64(i%5) + 0.5},
		})
	}
	return out
}

func sampleProducts() []product.Product {
	return []product.Product{
		{ID: 1, Title: "Men's Casual Shirt", Category: "men's clothing", Price: price("22.3"), Rating: product.Rating{Rate: 4.1}},
		{ID: 2, Title: "Women's Boots", Category: "women's clothing", Price: price("50"), Rating: product.Rating{Rate: 3.9}},
		{ID: 3, Title: "SanDisk SSD PLUS 1TB", Category: "electronics", Price: price("109"), Rating: product.Rating{Rate: 2.9}},
		{ID: 4, Title: "DANVOUY Womens T SHIRT Casual", Category: "women's clothing", Price: price("12.99"), Rating: product.Rating{Rate: 3.6}},
		{ID: 5, Title: "Pierced Owl Rose Gold Plated", Category: "jewelery", Price: price("50.01"), Rating: product.Rating{Rate: 4.0}},
		{ID: 6, Title: "Samsung 49-Inch Monitor", Category: "electronics", Price: price("999.99"), Rating: product.Rating{Rate: 2.2}},
		{ID: 7, Title: "White Gold Plated Princess", Category: "jewelery", Price: price("9.99"), Rating: product.Rating{Rate: 5}},
	}
}

func ids(products []product.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func ready(products []product.Product) product.Snapshot {
	return product.Snapshot{State: product.StateReady, Products: products}
}

type stubProducts struct {
	snap product.Snapshot
}

func (s *stubProducts) Snapshot() product.Snapshot { return s.snap }

func (s *stubProducts) Preview(id int) (product.Preview, error) {
	for _, p := range s.snap.Products {
		if p.ID == id {
			return p.Preview(), nil
		}
	}
	return product.Preview{}, product.ErrNotFound
}
