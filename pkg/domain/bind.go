package domain

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// BindContext converts an arbitrary struct (or map) into a render Context.
// It uses "mapstructure" tags to match template keys, so hosts can keep typed
// view models and hand them to Render without building maps by hand.
func BindContext(v any) (Context, error) {
	var out map[string]any
	if err := mapstructure.Decode(v, &out); err != nil {
		return nil, fmt.Errorf("failed to bind context: %w", err)
	}
	return Context(out), nil
}
