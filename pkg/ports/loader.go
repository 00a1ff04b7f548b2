package ports

import "context"

// SourceLoader defines how the engine retrieves raw template source.
// This allows the backing resource (filesystem, network, cache) to be
// decoupled from the render pipeline. Loading is the only suspension point
// of a render, so Load takes a context.
type SourceLoader interface {
	// Load retrieves the raw markup for a template identifier.
	// It returns domain.ErrTemplateNotFound (possibly wrapped) when the
	// identifier does not resolve to a known resource.
	Load(ctx context.Context, name string) (string, error)

	// List returns the identifiers available from this loader.
	// It is used by introspection surfaces (CLI, HTTP); loaders that cannot
	// enumerate their backend return an error.
	List(ctx context.Context) ([]string, error)
}
