package tokenstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/99minutos/storefront/internal/core/domain"
	"github.com/99minutos/storefront/internal/core/ports"
)

const filePerm = 0o600

// File persists the token pair as a JSON object keyed by the fixed storage
// keys. Writes go through a temp file and rename so a crash never leaves a
// half-written session behind.
type File struct {
	mu   sync.Mutex
	path string
}

var _ ports.TokenStore = (*File)(nil)

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Load(_ context.Context) (domain.TokenPair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.TokenPair{}, nil
	}
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("token file: read: %w", err)
	}

	var doc map[string]string
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.TokenPair{}, fmt.Errorf("token file: decode: %w", err)
	}
	return domain.TokenPair{
		AccessToken:  doc[domain.AccessTokenKey],
		RefreshToken: doc[domain.RefreshTokenKey],
	}, nil
}

func (f *File) Save(_ context.Context, tokens domain.TokenPair) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := json.Marshal(map[string]string{
		domain.AccessTokenKey:  tokens.AccessToken,
		domain.RefreshTokenKey: tokens.RefreshToken,
	})
	if err != nil {
		return fmt.Errorf("token file: encode: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("token file: mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".tokens-*")
	if err != nil {
		return fmt.Errorf("token file: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("token file: write: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("token file: chmod: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("token file: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("token file: rename: %w", err)
	}
	return nil
}

func (f *File) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("token file: remove: %w", err)
	}
	return nil
}
