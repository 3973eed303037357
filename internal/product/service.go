package product

import (
	"github.com/go-faster/errors"
)

var (
	ErrLoading = errors.New("catalogue is still loading")
)

// UnavailableError reports that the catalogue load failed.
type UnavailableError struct {
	Message string
}

func (e *UnavailableError) Error() string { return e.Message }

// Snapshot is the catalogue as seen at one instant: the load state and,
// when ready, the full source list.
type Snapshot struct {
	State    State
	Err      string
	Products []Product
}

// ServiceInterface is what the catalogue and session layers need from products.
type ServiceInterface interface {
	Snapshot() Snapshot
	Preview(id int) (Preview, error)
}

type Service struct {
	repo   Repository
	loader *Loader
}

func NewService(repo Repository, loader *Loader) *Service {
	return &Service{repo: repo, loader: loader}
}

func (s *Service) Snapshot() Snapshot {
	state, msg := s.loader.Status()
	snap := Snapshot{State: state, Err: msg}
	if state == StateReady {
		snap.Products = s.repo.List()
	}
	return snap
}

// Preview returns the detail view of one loaded product.
func (s *Service) Preview(id int) (Preview, error) {
	switch state, msg := s.loader.Status(); state {
	case StateLoading:
		return Preview{}, ErrLoading
	case StateFailed:
		return Preview{}, &UnavailableError{Message: msg}
	}
	p, err := s.repo.GetByID(id)
	if err != nil {
		return Preview{}, err
	}
	return p.Preview(), nil
}
