package product

import (
	"context"
	"log"
	"sync"
)

// State is the lifecycle of the one-time catalogue load.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// Loader runs the upstream fetch exactly once per process and records the
// outcome. A failed load is terminal; there is no reload.
type Loader struct {
	source Source
	repo   Repository

	once sync.Once
	done chan struct{}

	mu     sync.RWMutex
	state  State
	errMsg string
}

func NewLoader(source Source, repo Repository) *Loader {
	return &Loader{
		source: source,
		repo:   repo,
		done:   make(chan struct{}),
		state:  StateLoading,
	}
}

// Load fetches the catalogue on the first call and blocks until that fetch
// finishes. Later calls return immediately.
func (l *Loader) Load(ctx context.Context) {
	l.once.Do(func() {
		defer close(l.done)

		products, err := l.source.Fetch(ctx)
		if err == nil {
			err = l.repo.Reset(products)
		}

		l.mu.Lock()
		defer l.mu.Unlock()
		if err != nil {
			l.state = StateFailed
			l.errMsg = ErrorMessage(err)
			log.Printf("catalogue: load failed: %v", err)
			return
		}
		l.state = StateReady
		log.Printf("catalogue: loaded %d products", len(products))
	})
}

// Done is closed once the load has finished, successfully or not.
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Status reports the load state and, when failed, the user-facing message.
func (l *Loader) Status() (State, string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state, l.errMsg
}
