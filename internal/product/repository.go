package product

import (
	"sync"

	"github.com/go-faster/errors"
)

var (
	ErrNotFound = errors.New("product not found")
)

// Repository holds the loaded product list. Products are never edited in
// place; the whole list is replaced by Reset.
type Repository interface {
	List() []Product
	GetByID(id int) (Product, error)
	// Reset replaces all products with the provided list, preserving order.
	Reset(products []Product) error
}

// InMemoryRepository keeps the catalogue in process memory.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Product, 0, len(seed)),
	}
	r.storage = append(r.storage, seed...)
	return r
}

func (r *InMemoryRepository) List() []Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetByID(id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// Reset replaces the whole in-memory storage with the provided products.
func (r *InMemoryRepository) Reset(products []Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Product, len(products))
	copy(r.storage, products)
	return nil
}
