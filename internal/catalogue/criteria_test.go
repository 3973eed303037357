package catalogue

import (
	"reflect"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

func TestNewCriteria_NormalizesRatings(t *testing.T) {
	c, err := NewCriteria("bag", "All", decimal.NewFromInt(300), []int{5, 4, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(c.Ratings, []int{4, 5}) {
		t.Fatalf("expected [4 5], got %v", c.Ratings)
	}
}

func TestNewCriteria_CollectsAllErrors(t *testing.T) {
	_, err := NewCriteria("", "toys", decimal.NewFromInt(1001), []int{0, 6})
	if !errors.Is(err, ErrInvalidCriteria) {
		t.Fatalf("expected ErrInvalidCriteria, got %v", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	for _, field := range []string{"category", "priceCeiling", "ratings"} {
		if _, ok := ve.Fields[field]; !ok {
			t.Errorf("missing error for %s in %v", field, ve.Fields)
		}
	}
}

func TestNewCriteria_CeilingBounds(t *testing.T) {
	if _, err := NewCriteria("", "All", decimal.Zero, nil); err != nil {
		t.Fatalf("ceiling 0 must be accepted: %v", err)
	}
	if _, err := NewCriteria("", "All", decimal.NewFromInt(-1), nil); err == nil {
		t.Fatalf("negative ceiling must be rejected")
	}
}
