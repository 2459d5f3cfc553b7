package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"

	"github.com/99minutos/storefront/internal/core/domain"
)

type call struct {
	Method string
	Path   string
	Body   any
	Form   url.Values
}

// stubBackend answers requests through respond and records every call.
type stubBackend struct {
	mu      sync.Mutex
	calls   []call
	respond func(c call) (any, error)
}

func newStubBackend(respond func(c call) (any, error)) *stubBackend {
	return &stubBackend{respond: respond}
}

func (b *stubBackend) Get(ctx context.Context, path string, out any) error {
	return b.do(call{Method: http.MethodGet, Path: path}, out)
}

func (b *stubBackend) Post(ctx context.Context, path string, body, out any) error {
	return b.do(call{Method: http.MethodPost, Path: path, Body: body}, out)
}

func (b *stubBackend) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	return b.do(call{Method: http.MethodPost, Path: path, Form: form}, out)
}

func (b *stubBackend) Put(ctx context.Context, path string, body, out any) error {
	return b.do(call{Method: http.MethodPut, Path: path, Body: body}, out)
}

func (b *stubBackend) Delete(ctx context.Context, path string, out any) error {
	return b.do(call{Method: http.MethodDelete, Path: path}, out)
}

func (b *stubBackend) do(c call, out any) error {
	b.mu.Lock()
	b.calls = append(b.calls, c)
	b.mu.Unlock()

	if b.respond == nil {
		return nil
	}
	v, err := b.respond(c)
	if err != nil {
		return err
	}
	if out == nil || v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (b *stubBackend) Calls() []call {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]call, len(b.calls))
	copy(out, b.calls)
	return out
}

func (b *stubBackend) count(method, path string) int {
	n := 0
	for _, c := range b.Calls() {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

func apiError(status int, method, path, detail string) *domain.APIError {
	return &domain.APIError{Status: status, Detail: detail, Method: method, Path: path}
}

// stubTokens is a TokenStore whose operations can be made to fail.
type stubTokens struct {
	mu       sync.Mutex
	pair     domain.TokenPair
	loadErr  error
	saveErr  error
	clearErr error
	clears   int
}

func (s *stubTokens) Load(_ context.Context) (domain.TokenPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pair, s.loadErr
}

func (s *stubTokens) Save(_ context.Context, tokens domain.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.pair = tokens
	return nil
}

func (s *stubTokens) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
	if s.clearErr != nil {
		return s.clearErr
	}
	s.pair = domain.TokenPair{}
	return nil
}

func (s *stubTokens) current() domain.TokenPair {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pair
}

func product(id int64, price float64) domain.Product {
	return domain.Product{ID: id, Name: "Product", Slug: "product", Price: price, StockQuantity: 100, IsActive: true}
}
