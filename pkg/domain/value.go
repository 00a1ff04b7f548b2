package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Context holds the data a single render resolves against.
// It is treated as immutable for the duration of one render call:
// the engine never writes to it.
type Context map[string]any

// Resolve walks a dot-separated path against the context.
// It returns (value, true) on success, or (nil, false) if any segment along
// the path is absent or the traversed value is not a mapping. Absence anywhere
// degrades to "missing" rather than an error.
func (c Context) Resolve(path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	var cur any = map[string]any(c)
	for _, seg := range strings.Split(path, ".") {
		m, ok := asMapping(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// asMapping normalizes the mapping shapes that decoded JSON/YAML produce.
func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Context:
		return m, true
	default:
		return nil, false
	}
}

// ItemScope builds the per-iteration scope for one loop body copy.
// Only the element's own field shape is visible inside the copy; an element
// that is not a mapping yields an empty scope, so variables in the body
// resolve missing.
func ItemScope(v any) Context {
	if m, ok := asMapping(v); ok {
		return Context(m)
	}
	return Context{}
}

// Sequence reports whether v is an ordered sequence and returns its elements.
// Decoded JSON and YAML both produce []any for arrays.
func Sequence(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

// Truthy applies generic dynamic-language coercion rules to a resolved value:
// a missing value, empty string, numeric zero, and boolean false are falsy;
// anything else is truthy. Note the asymmetry: an empty sequence or empty
// mapping is an object, not an empty string, and is therefore truthy.
func Truthy(v any, ok bool) bool {
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case uint64:
		return t != 0
	case float64:
		return t != 0
	case float32:
		return t != 0
	default:
		return true
	}
}

// Stringify renders a resolved value as template output. Numbers and booleans
// use their natural textual form. Sequences and mappings are not expected here
// (a loop should have consumed them); their formatting falls back to fmt and
// is not part of the public contract.
func Stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
