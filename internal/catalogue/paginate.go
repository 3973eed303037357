package catalogue

import "github.com/wichananm65/product-catalogue/internal/product"

// Pagination describes the current page and which page controls are enabled.
type Pagination struct {
	Page        int  `json:"page"`
	TotalPages  int  `json:"totalPages"`
	HasPrevious bool `json:"hasPrevious"`
	HasNext     bool `json:"hasNext"`
}

// TotalPages is ceil(count/PageSize); zero items means zero pages.
func TotalPages(count int) int {
	return (count + PageSize - 1) / PageSize
}

// ClampPage moves page into [1, max(totalPages, 1)].
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

func NextPage(page, totalPages int) int {
	if page < totalPages {
		return page + 1
	}
	return page
}

func PreviousPage(page int) int {
	if page > 1 {
		return page - 1
	}
	return page
}

// Paginate returns items [(page-1)*PageSize, (page-1)*PageSize+PageSize) and
// the control state for that page. It does not clamp: a page past the end
// yields no items.
func Paginate(items []product.Product, page int) ([]product.Product, Pagination) {
	total := TotalPages(len(items))
	pg := Pagination{
		Page:        page,
		TotalPages:  total,
		HasPrevious: page > 1,
		HasNext:     page < total,
	}

	start := (page - 1) * PageSize
	if page < 1 || start >= len(items) {
		return []product.Product{}, pg
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], pg
}
