package session

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wichananm65/product-catalogue/internal/product"
)

type stubProducts struct {
	snap product.Snapshot
}

func (s *stubProducts) Snapshot() product.Snapshot { return s.snap }

func (s *stubProducts) Preview(id int) (product.Preview, error) {
	return product.Preview{}, product.ErrNotFound
}

// catalogueOf builds n products; every third one is a shirt.
func catalogueOf(n int) product.Snapshot {
	out := make([]product.Product, 0, n)
	for i := 1; i <= n; i++ {
		title := fmt.Sprintf("Backpack %d", i)
		if i%3 == 0 {
			title = fmt.Sprintf("Casual Shirt %d", i)
		}
		out = append(out, product.Product{
			ID:       i,
			Title:    title,
			Category: "men's clothing",
			Price:    decimal.NewFromInt(int64(i)),
			Rating:   product.Rating{Rate: 4.5},
		})
	}
	return product.Snapshot{State: product.StateReady, Products: out}
}

var testSecret = []byte("test-secret")
