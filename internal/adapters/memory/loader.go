// Package memory provides an in-memory implementation of ports.SourceLoader
// for tests and embedded use.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/wicker/pkg/domain"
)

// Loader serves template source from a map.
type Loader struct {
	mu      sync.RWMutex
	sources map[string]string
}

// NewLoader creates a new empty loader.
func NewLoader() *Loader {
	return &Loader{sources: make(map[string]string)}
}

// Add registers (or replaces) a template source.
func (l *Loader) Add(name, source string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sources[name] = source
}

// Load retrieves a template from memory.
func (l *Loader) Load(ctx context.Context, name string) (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	src, ok := l.sources[name]
	if !ok {
		return "", fmt.Errorf("%q: %w", name, domain.ErrTemplateNotFound)
	}
	return src, nil
}

// List returns the registered template names, sorted.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.sources))
	for name := range l.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
