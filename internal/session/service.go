package session

import (
	"time"

	"github.com/wichananm65/product-catalogue/internal/catalogue"
	"github.com/wichananm65/product-catalogue/internal/product"
)

// Service applies catalogue interactions to stored sessions. Every method
// that returns a View renders it under the session lock, so the clamped page
// and the one-shot error notification are stored with the same update.
type Service struct {
	repo     Repository
	products product.ServiceInterface
	secret   []byte
	now      func() time.Time
}

func NewService(repo Repository, products product.ServiceInterface, secret []byte) *Service {
	return &Service{repo: repo, products: products, secret: secret, now: time.Now}
}

// Start creates a session with default criteria and returns it with its token.
func (s *Service) Start() (Session, string, error) {
	now := s.now().UTC()
	sess, err := s.repo.Create(New(now))
	if err != nil {
		return Session{}, "", err
	}
	token, err := IssueToken(s.secret, sess.ID, now)
	if err != nil {
		return Session{}, "", err
	}
	return sess, token, nil
}

func (s *Service) View(id string) (catalogue.View, error) {
	return s.update(id, func(*Session, product.Snapshot) error { return nil })
}

// SetSearch replaces the search text and goes back to page 1.
func (s *Service) SetSearch(id, search string) (catalogue.View, error) {
	return s.update(id, func(sess *Session, _ product.Snapshot) error {
		sess.Criteria.Search = search
		sess.Page = 1
		return nil
	})
}

// Filters opens the filter editor seeded with the session's criteria.
func (s *Service) Filters(id string) (catalogue.FilterEditor, error) {
	sess, err := s.repo.Get(id)
	if err != nil {
		return catalogue.FilterEditor{}, err
	}
	return catalogue.OpenEditor(sess.Criteria), nil
}

// ApplyFilters confirms the filter editor and goes back to page 1. Nothing is
// stored when the form is invalid.
func (s *Service) ApplyFilters(id string, form catalogue.FilterForm) (catalogue.View, error) {
	return s.update(id, func(sess *Session, _ product.Snapshot) error {
		next, err := form.Apply(sess.Criteria)
		if err != nil {
			return err
		}
		sess.Criteria = next
		sess.Page = 1
		return nil
	})
}

func (s *Service) NextPage(id string) (catalogue.View, error) {
	return s.update(id, func(sess *Session, snap product.Snapshot) error {
		total := catalogue.CountPages(snap, sess.Criteria)
		sess.Page = catalogue.NextPage(catalogue.ClampPage(sess.Page, total), total)
		return nil
	})
}

func (s *Service) PreviousPage(id string) (catalogue.View, error) {
	return s.update(id, func(sess *Session, snap product.Snapshot) error {
		total := catalogue.CountPages(snap, sess.Criteria)
		sess.Page = catalogue.PreviousPage(catalogue.ClampPage(sess.Page, total))
		return nil
	})
}

func (s *Service) update(id string, fn func(*Session, product.Snapshot) error) (catalogue.View, error) {
	snap := s.products.Snapshot()
	var view catalogue.View
	_, err := s.repo.Update(id, func(sess *Session) error {
		if err := fn(sess, snap); err != nil {
			return err
		}
		view = render(sess, snap)
		return nil
	})
	if err != nil {
		return catalogue.View{}, err
	}
	return view, nil
}

func render(sess *Session, snap product.Snapshot) catalogue.View {
	view, page := catalogue.BuildView(snap, sess.Criteria, sess.Page)
	sess.Page = page
	if view.Error != "" && !sess.ErrorNotified {
		view.Notification = catalogue.ErrorNotification(view.Error)
		sess.ErrorNotified = true
	}
	return view
}
