package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/storefront/internal/core/domain"
	"github.com/99minutos/storefront/internal/infrastructure/tokenstore"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *tokenstore.Memory) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	tokens := tokenstore.NewMemory()
	c, err := New(Config{BaseURL: srv.URL + "/"}, tokens, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, tokens
}

func TestNew_RejectsBadConfig(t *testing.T) {
	if _, err := New(Config{BaseURL: "localhost:8000"}, tokenstore.NewMemory(), zerolog.Nop()); err == nil {
		t.Fatalf("expected an error for a relative base url")
	}
	if _, err := New(Config{BaseURL: "http://localhost:8000"}, nil, zerolog.Nop()); err == nil {
		t.Fatalf("expected an error without a token store")
	}
}

func TestClient_BearerInjection(t *testing.T) {
	var got []string
	c, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})
	ctx := context.Background()

	if err := c.Get(ctx, "/api/cart", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	_ = tokens.Save(ctx, domain.TokenPair{AccessToken: "abc", RefreshToken: "r"})
	if err := c.Get(ctx, "/api/cart", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	_ = tokens.Clear(ctx)
	if err := c.Get(ctx, "/api/cart", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}

	want := []string{"", "Bearer abc", ""}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("request %d: Authorization %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClient_HeadersAndJSONBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/cart" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Accept") != "application/json" || r.Header.Get("Content-Type") != "application/json" {
			t.Fatalf("unexpected headers: %v", r.Header)
		}
		if _, err := uuid.Parse(r.Header.Get("X-Request-ID")); err != nil {
			t.Fatalf("X-Request-ID is not a uuid: %v", err)
		}
		if !strings.HasPrefix(r.Header.Get("User-Agent"), "storefront-client/") {
			t.Fatalf("unexpected user agent %q", r.Header.Get("User-Agent"))
		}
		var body map[string]int
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["product_id"] != 3 || body["quantity"] != 2 {
			t.Fatalf("unexpected body %v", body)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id": 9, "quantity": 2}`)
	})

	var item domain.CartItem
	if err := c.Post(context.Background(), "api/cart", map[string]int{"product_id": 3, "quantity": 2}, &item); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if item.ID != 9 || item.Quantity != 2 {
		t.Fatalf("unexpected decode: %+v", item)
	}
}

func TestClient_PostForm(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/x-www-form-urlencoded" {
			t.Fatalf("unexpected content type %q", r.Header.Get("Content-Type"))
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if r.PostForm.Get("username") != "a@b.c" || r.PostForm.Get("password") != "pw" {
			t.Fatalf("unexpected form %v", r.PostForm)
		}
		_, _ = io.WriteString(w, `{"access_token":"a","refresh_token":"r","token_type":"bearer"}`)
	})

	var pair domain.TokenPair
	if err := c.PostForm(context.Background(), "/api/auth/login", url.Values{"username": {"a@b.c"}, "password": {"pw"}}, &pair); err != nil {
		t.Fatalf("PostForm: %v", err)
	}
	if pair.AccessToken != "a" {
		t.Fatalf("unexpected pair %+v", pair)
	}
}

func TestClient_ErrorDetail(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		detail string
		class  error
	}{
		{"string detail", http.StatusBadRequest, `{"detail":"Insufficient stock"}`, "Insufficient stock", domain.ErrValidation},
		{"list detail", http.StatusUnprocessableEntity, `{"detail":[{"loc":["body","quantity"],"msg":"must be greater than 0"}]}`, "quantity: must be greater than 0", domain.ErrValidation},
		{"no detail", http.StatusNotFound, `{"error":"nope"}`, "", domain.ErrNotFound},
		{"not json", http.StatusUnauthorized, `<html>denied</html>`, "", domain.ErrUnauthorized},
		{"empty", http.StatusForbidden, ``, "", domain.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			err := c.Get(context.Background(), "/api/cart/12?token=secret", &struct{}{})
			var apiErr *domain.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %v", err)
			}
			if apiErr.Status != tt.status || apiErr.Detail != tt.detail {
				t.Fatalf("unexpected error %+v", apiErr)
			}
			if apiErr.Path != "/api/cart/12" || strings.Contains(err.Error(), "secret") {
				t.Fatalf("query string leaked into error: %v", err)
			}
			if !errors.Is(err, tt.class) {
				t.Fatalf("expected class %v for %d", tt.class, tt.status)
			}
		})
	}
}

func TestClient_EmptyAndNoContentBodies(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	var out domain.CartItem
	if err := c.Delete(context.Background(), "/api/cart", &out); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := c.Put(context.Background(), "/api/cart/1", map[string]int{"quantity": 1}, &out); err != nil {
		t.Fatalf("empty 200 body must decode to nothing: %v", err)
	}
}

func TestClient_TransportErrorWrapped(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := New(Config{BaseURL: base}, tokenstore.NewMemory(), zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = c.Get(context.Background(), "/api/auth/me", nil)
	var apiErr *domain.APIError
	if err == nil || errors.As(err, &apiErr) {
		t.Fatalf("expected a transport error, got %v", err)
	}
	if !strings.Contains(err.Error(), "GET /api/auth/me") {
		t.Fatalf("transport error not wrapped with method and path: %v", err)
	}
}

func TestRouteLabel(t *testing.T) {
	tests := map[string]string{
		"/api/cart":              "/api/cart",
		"/api/cart/12":           "/api/cart/:id",
		"/api/orders/7":          "/api/orders/:id",
		"/api/products/slug/mug": "/api/products/slug/mug",
		"/api/auth/verify-email": "/api/auth/verify-email",
	}
	for in, want := range tests {
		if got := routeLabel(in); got != want {
			t.Fatalf("routeLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
