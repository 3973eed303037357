package product

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-faster/errors"
)

type stubSource struct {
	calls    int32
	products []Product
	err      error
}

func (s *stubSource) Fetch(ctx context.Context) ([]Product, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.products, s.err
}

func TestLoader_FetchesOnce(t *testing.T) {
	src := &stubSource{products: []Product{{ID: 1}, {ID: 2}}}
	repo := NewInMemoryRepository(nil)
	l := NewLoader(src, repo)

	if state, _ := l.Status(); state != StateLoading {
		t.Fatalf("expected loading before Load, got %s", state)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Load(context.Background())
		}()
	}
	wg.Wait()
	<-l.Done()

	if n := atomic.LoadInt32(&src.calls); n != 1 {
		t.Fatalf("expected one fetch, got %d", n)
	}
	if state, msg := l.Status(); state != StateReady || msg != "" {
		t.Fatalf("unexpected status %s %q", state, msg)
	}
	if len(repo.List()) != 2 {
		t.Fatalf("expected repository to hold the fetched list")
	}
}

func TestLoader_FailureIsTerminal(t *testing.T) {
	src := &stubSource{err: errors.Wrap(&NetworkError{Err: errors.New("timeout")}, "fetch products")}
	l := NewLoader(src, NewInMemoryRepository(nil))

	l.Load(context.Background())
	l.Load(context.Background())

	state, msg := l.Status()
	if state != StateFailed {
		t.Fatalf("expected failed, got %s", state)
	}
	if msg != "Network error: timeout" {
		t.Fatalf("unexpected message %q", msg)
	}
	if n := atomic.LoadInt32(&src.calls); n != 1 {
		t.Fatalf("failed load must not be retried, got %d fetches", n)
	}
}

func TestService_Preview(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	src := &stubSource{products: []Product{{ID: 3, Title: "Mens Cotton Jacket", Category: "men's clothing", Rating: Rating{Rate: 4.7}}}}
	l := NewLoader(src, repo)
	svc := NewService(repo, l)

	if _, err := svc.Preview(3); !errors.Is(err, ErrLoading) {
		t.Fatalf("expected ErrLoading before load, got %v", err)
	}
	if snap := svc.Snapshot(); snap.State != StateLoading || snap.Products != nil {
		t.Fatalf("unexpected snapshot while loading %+v", snap)
	}

	l.Load(context.Background())

	p, err := svc.Preview(3)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if p.Title != "Mens Cotton Jacket" || p.Rating != 4.7 {
		t.Fatalf("unexpected preview %+v", p)
	}
	if _, err := svc.Preview(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
