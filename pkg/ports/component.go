package ports

import (
	"context"

	"golang.org/x/net/html"
)

// Component renders a registered custom tag into a markup fragment.
// Props carries the attributes of the tag occurrence being expanded.
type Component interface {
	Render(ctx context.Context, props map[string]string) (*html.Node, error)
}

// ComponentLookup resolves a tag name to its component, if one is registered.
// The materializer receives a lookup function rather than a registry so the
// render pipeline stays pure and testable in isolation.
type ComponentLookup func(tag string) (Component, bool)
