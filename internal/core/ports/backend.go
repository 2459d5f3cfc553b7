package ports

import (
	"context"
	"net/url"
)

// Backend is the sole channel to the storefront REST API. Paths are relative
// to the configured base URL and may carry a query string. out may be nil
// when the response body is not needed. Non-2xx responses are returned as
// *domain.APIError.
type Backend interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	PostForm(ctx context.Context, path string, form url.Values, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}
