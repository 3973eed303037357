package session

import (
	"time"

	"github.com/wichananm65/product-catalogue/internal/catalogue"
)

// Session is one browser's catalogue state: what it is searching and
// filtering for and which page it is on.
type Session struct {
	ID       string             `json:"sessionId"`
	Criteria catalogue.Criteria `json:"criteria"`
	Page     int                `json:"page"`
	// ErrorNotified records that the load failure was already shown.
	ErrorNotified bool      `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
}

// New returns a session with default criteria on page 1.
func New(now time.Time) Session {
	return Session{
		Criteria:  catalogue.DefaultCriteria(),
		Page:      1,
		CreatedAt: now,
	}
}
