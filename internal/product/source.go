package product

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/gofiber/fiber/v2"
)

// DefaultProductsURL is the public catalogue endpoint; it returns the whole
// catalogue in a single response.
const DefaultProductsURL = "https://fakestoreapi.com/products"

// Source loads the complete product list from an upstream.
type Source interface {
	Fetch(ctx context.Context) ([]Product, error)
}

// NetworkError is a transport failure or a non-success response from the upstream.
type NetworkError struct {
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("Request failed with status code %d", e.Status)
	}
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ErrorMessage converts a fetch failure into the text shown to the user.
func ErrorMessage(err error) string {
	var netErr *NetworkError
	if errors.As(err, &netErr) && netErr.Error() != "" {
		return "Network error: " + netErr.Error()
	}
	return "Some error occurred"
}

// HTTPSource fetches the catalogue with a single GET request.
type HTTPSource struct {
	url    string
	client *fiber.Client
}

func NewHTTPSource(url string) *HTTPSource {
	if url == "" {
		url = DefaultProductsURL
	}
	return &HTTPSource{url: url, client: &fiber.Client{}}
}

// Fetch issues one request with no retry and no timeout. The agent cannot be
// interrupted, so ctx is only honoured before the request goes out.
func (s *HTTPSource) Fetch(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "fetch products")
	}

	code, body, errs := s.client.Get(s.url).Bytes()
	if len(errs) > 0 {
		return nil, errors.Wrap(&NetworkError{Err: errs[0]}, "fetch products")
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return nil, errors.Wrap(&NetworkError{Status: code}, "fetch products")
	}

	var products []Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}
