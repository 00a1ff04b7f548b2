// Package fetch implements ports.SourceLoader over HTTP(S), for hosts that
// serve their template sources from a remote origin.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/aretw0/wicker/pkg/domain"
)

// Loader fetches template source relative to a base URL.
type Loader struct {
	base   *url.URL
	client *http.Client
}

// Option configures a Loader.
type Option func(*Loader)

// WithClient overrides the HTTP client (timeouts, transport, test doubles).
func WithClient(c *http.Client) Option {
	return func(l *Loader) {
		l.client = c
	}
}

// New creates a loader for the given base URL.
func New(base string, opts ...Option) (*Loader, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	l := &Loader{base: u, client: http.DefaultClient}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Load fetches the source for a template identifier. A 404 from the origin
// maps to domain.ErrTemplateNotFound.
func (l *Loader) Load(ctx context.Context, name string) (string, error) {
	ref, err := url.Parse(name)
	if err != nil {
		return "", fmt.Errorf("invalid template identifier %q: %w", name, err)
	}
	u := l.base.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch template %q: %w", name, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%q: %w", name, domain.ErrTemplateNotFound)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("unexpected status %d fetching template %q", resp.StatusCode, name)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read template %q: %w", name, err)
	}
	return string(body), nil
}

// List is unsupported: an HTTP origin cannot be enumerated.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	return nil, fmt.Errorf("fetch loader cannot enumerate templates")
}
