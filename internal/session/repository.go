package session

import (
	"sync"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("session not found")
)

type Repository interface {
	Create(s Session) (Session, error)
	Get(id string) (Session, error)
	// Update runs fn on the stored session under the repository lock and
	// saves the result unless fn returns an error.
	Update(id string, fn func(*Session) error) (Session, error)
}

// InMemoryRepository keeps sessions for the lifetime of the process.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Session
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{storage: make(map[string]Session)}
}

func (r *InMemoryRepository) Create(s Session) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if _, exists := r.storage[s.ID]; exists {
		return Session{}, errors.Errorf("session %s already exists", s.ID)
	}
	r.storage[s.ID] = cloneSession(s)
	return cloneSession(s), nil
}

func (r *InMemoryRepository) Get(id string) (Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.storage[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return cloneSession(s), nil
}

func (r *InMemoryRepository) Update(id string, fn func(*Session) error) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.storage[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	s = cloneSession(s)
	if err := fn(&s); err != nil {
		return Session{}, err
	}
	r.storage[id] = s
	return cloneSession(s), nil
}

func cloneSession(s Session) Session {
	ratings := make([]int, len(s.Criteria.Ratings))
	copy(ratings, s.Criteria.Ratings)
	s.Criteria.Ratings = ratings
	return s
}
