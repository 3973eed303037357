package catalogue

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/wichananm65/product-catalogue/internal/product"
)

func TestBuildView_ClampsShrunkenResult(t *testing.T) {
	snap := ready(makeProducts(17))

	v, page := BuildView(snap, DefaultCriteria(), 3)
	if page != 3 || len(v.Products) != 1 {
		t.Fatalf("expected page 3 with one item, got page %d with %d", page, len(v.Products))
	}

	c := DefaultCriteria()
	c.Search = "item 1"
	v, page = BuildView(snap, c, 3)
	// "item 1", "item 10".."item 17" -> 9 products, 2 pages
	if page != 2 {
		t.Fatalf("expected page clamped to 2, got %d", page)
	}
	if v.Pagination.Page != 2 || v.Pagination.HasNext || !v.Pagination.HasPrevious {
		t.Fatalf("unexpected pagination %+v", v.Pagination)
	}
	if v.Total != 9 || len(v.Products) != 1 {
		t.Fatalf("expected 9 total with one on the last page, got %d/%d", v.Total, len(v.Products))
	}
}

func TestBuildView_EmptyResult(t *testing.T) {
	c := DefaultCriteria()
	c.Search = "no such product"
	v, page := BuildView(ready(sampleProducts()), c, 2)
	if page != 1 {
		t.Fatalf("expected page 1, got %d", page)
	}
	if v.Pagination.TotalPages != 0 || v.Pagination.HasNext || v.Pagination.HasPrevious {
		t.Fatalf("unexpected pagination %+v", v.Pagination)
	}
	if len(v.Products) != 0 {
		t.Fatalf("expected no products")
	}
}

func TestBuildView_Loading(t *testing.T) {
	v, _ := BuildView(product.Snapshot{State: product.StateLoading}, DefaultCriteria(), 1)
	if !v.Loading || len(v.Products) != 0 {
		t.Fatalf("unexpected loading view %+v", v)
	}
	if v.Pagination == nil {
		t.Fatalf("pagination is shown while loading")
	}
}

func TestBuildView_FailureHidesPagination(t *testing.T) {
	v, _ := BuildView(product.Snapshot{State: product.StateFailed, Err: "Network error: timeout"}, DefaultCriteria(), 1)
	if v.Error != "Network error: timeout" {
		t.Fatalf("unexpected error %q", v.Error)
	}
	if v.Pagination != nil || len(v.Products) != 0 {
		t.Fatalf("failed view must have no products and no pagination: %+v", v)
	}

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "pagination") {
		t.Fatalf("pagination rendered after failure: %s", b)
	}
}
