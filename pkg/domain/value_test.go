package domain

import "testing"

func TestResolve(t *testing.T) {
	ctx := Context{
		"name": "Ada",
		"user": map[string]any{
			"profile": map[string]any{
				"city": "London",
			},
			"isAdmin": false,
		},
		"count": 3,
	}

	tests := []struct {
		name   string
		path   string
		want   any
		wantOK bool
	}{
		{"top level", "name", "Ada", true},
		{"nested", "user.profile.city", "London", true},
		{"nested falsy value is still present", "user.isAdmin", false, true},
		{"missing top level", "missing", nil, false},
		{"missing intermediate", "user.settings.theme", nil, false},
		{"traversal into scalar", "name.length", nil, false},
		{"traversal into number", "count.value", nil, false},
		{"empty path", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ctx.Resolve(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    any
		ok   bool
		want bool
	}{
		{"missing", nil, false, false},
		{"nil value", nil, true, false},
		{"false", false, true, false},
		{"true", true, true, true},
		{"empty string", "", true, false},
		{"non-empty string", "x", true, true},
		{"zero int", 0, true, false},
		{"zero float", 0.0, true, false},
		{"nonzero", 42, true, true},
		{"negative", -1, true, true},
		// The asymmetry: an empty sequence is an object, not an empty
		// string, so it is truthy.
		{"empty sequence", []any{}, true, true},
		{"empty mapping", map[string]any{}, true, true},
		{"populated sequence", []any{1}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truthy(tt.v, tt.ok); got != tt.want {
				t.Errorf("Truthy(%v, %v) = %v, want %v", tt.v, tt.ok, got, tt.want)
			}
		})
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"string", "hi", "hi"},
		{"int", 42, "42"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"float without exponent", 1000000.0, "1000000"},
		{"float fraction", 2.5, "2.5"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stringify(tt.v); got != tt.want {
				t.Errorf("Stringify(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestItemScope(t *testing.T) {
	scope := ItemScope(map[string]any{"name": "Al"})
	if v, ok := scope.Resolve("name"); !ok || v != "Al" {
		t.Fatalf("expected item field to resolve, got %v (%v)", v, ok)
	}

	// A scalar element exposes no fields.
	scope = ItemScope("plain")
	if _, ok := scope.Resolve("name"); ok {
		t.Fatal("expected scalar element scope to resolve nothing")
	}
}
