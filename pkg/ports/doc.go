// Package ports defines the boundary interfaces of the Wicker engine.
//
// The engine core depends only on these interfaces; the concrete adapters
// (filesystem, HTTP fetch, Redis cache, in-memory) live under
// internal/adapters and can be swapped without touching evaluation logic.
package ports
