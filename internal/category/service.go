package category

// Service provides business logic for categories.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns up to `limit` category items; limit <= 0 means all.
func (s *Service) List(limit int) []Item {
	items, err := s.repo.List(limit)
	if err != nil {
		return []Item{}
	}
	return items
}

// Options returns every category choice, "All" first.
func Options() []Item {
	return NewService(NewStaticRepository()).List(0)
}
