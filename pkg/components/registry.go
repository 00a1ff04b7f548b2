// Package components provides a thread-safe registry of custom tags.
//
// The registry satisfies ports.ComponentLookup via its Lookup method, so it
// can be injected into an engine with wicker.WithComponents(reg.Lookup).
package components

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aretw0/wicker/pkg/ports"
	"golang.org/x/net/html"
)

// Registry maps custom tag names to their components.
// Tag names are matched case-insensitively, as HTML parsing lowercases them.
type Registry struct {
	mu         sync.RWMutex
	components map[string]ports.Component
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{components: make(map[string]ports.Component)}
}

// Register binds a tag name to a component. Registering an already-known tag
// replaces the previous component.
func (r *Registry) Register(tag string, c ports.Component) error {
	if tag == "" {
		return fmt.Errorf("component tag must not be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.components[strings.ToLower(tag)] = c
	return nil
}

// Lookup resolves a tag name. It satisfies ports.ComponentLookup.
func (r *Registry) Lookup(tag string) (ports.Component, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.components[strings.ToLower(tag)]
	return c, ok
}

// Tags returns the registered tag names, for introspection.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.components))
	for t := range r.components {
		tags = append(tags, t)
	}
	return tags
}

// Func adapts a plain function into a Component.
type Func func(ctx context.Context, props map[string]string) (*html.Node, error)

// Render implements ports.Component.
func (f Func) Render(ctx context.Context, props map[string]string) (*html.Node, error) {
	return f(ctx, props)
}
