package eval

import (
	"context"
	"testing"

	"github.com/aretw0/wicker/internal/parser"
	"github.com/aretw0/wicker/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func render(t *testing.T, src string, data map[string]any) string {
	t.Helper()
	return New().Render(context.Background(), parser.Parse(src), domain.Context(data), All)
}

func TestRender_NoDirectivesUnchanged(t *testing.T) {
	src := `<div class="x"><p>plain</p></div>`
	assert.Equal(t, src, render(t, src, map[string]any{"unused": 1}))
}

func TestRender_Variables(t *testing.T) {
	data := map[string]any{
		"name": "Ada",
		"user": map[string]any{"city": "London"},
		"n":    3,
		"ok":   true,
	}

	tests := []struct {
		name, src, want string
	}{
		{"braces", "Hi {{ name }}", "Hi Ada"},
		{"tag", `Hi <text data="name" />`, "Hi Ada"},
		{"dotted path", "{{ user.city }}", "London"},
		{"number", "{{ n }}", "3"},
		{"boolean", "{{ ok }}", "true"},
		{"missing renders empty", "[{{ missing }}]", "[]"},
		{"missing nested renders empty", `[<text data="user.zip" />]`, "[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.src, data))
		})
	}
}

func TestRender_Conditionals(t *testing.T) {
	tests := []struct {
		name string
		src  string
		data map[string]any
		want string
	}{
		{
			"first truthy branch wins",
			`{{#if a}}A{{else if b}}B{{else}}C{{/if}}`,
			map[string]any{"a": false, "b": "yes"},
			"B",
		},
		{
			"primary branch shadows later truthy branches",
			`{{#if a}}A{{else if b}}B{{/if}}`,
			map[string]any{"a": 1, "b": 1},
			"A",
		},
		{
			"falls through to else",
			`{{#if a}}A{{else}}E{{/if}}`,
			map[string]any{"a": 0},
			"E",
		},
		{
			"no else yields empty",
			`[{{#if a}}A{{/if}}]`,
			map[string]any{},
			"[]",
		},
		{
			"missing condition is falsy, not an error",
			`{{#if ghost.field}}A{{else}}E{{/if}}`,
			map[string]any{},
			"E",
		},
		{
			"tag dialect guest",
			`<if data="user.isAdmin">Admin<else />Guest</if>`,
			map[string]any{"user": map[string]any{"isAdmin": false}},
			"Guest",
		},
		{
			"tag dialect elseif",
			`<if data="a">A<elseif data="b" />B<else />C</if>`,
			map[string]any{"b": "x"},
			"B",
		},
		{
			// Regression for the truthiness asymmetry: an empty sequence
			// is an object, so the primary branch renders.
			"empty sequence is truthy",
			`{{#if items}}have{{else}}none{{/if}}`,
			map[string]any{"items": []any{}},
			"have",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.src, tt.data))
		})
	}
}

func TestRender_Loops(t *testing.T) {
	users := []any{
		map[string]any{"name": "Al"},
		map[string]any{"name": "Bo"},
		map[string]any{"name": "Cy"},
	}

	t.Run("braces order and count", func(t *testing.T) {
		out := render(t, `{{#each users}}<li>{{ name }}</li>{{/each}}`, map[string]any{"users": users})
		assert.Equal(t, "<li>Al</li><li>Bo</li><li>Cy</li>", out)
	})

	t.Run("tag dialect", func(t *testing.T) {
		out := render(t, `<each data="users"><li><text data="name" /></li></each>`, map[string]any{"users": users})
		assert.Equal(t, "<li>Al</li><li>Bo</li><li>Cy</li>", out)
	})

	t.Run("item scope replaces the outer context", func(t *testing.T) {
		// "name" exists only on the elements; "outer" only outside.
		out := render(t, `{{#each users}}{{ name }}{{ outer }};{{/each}}`, map[string]any{
			"users": users[:1],
			"outer": "X",
		})
		assert.Equal(t, "Al;", out)
	})

	t.Run("conditional inside loop sees item fields", func(t *testing.T) {
		items := []any{
			map[string]any{"name": "a", "done": true},
			map[string]any{"name": "b", "done": false},
		}
		out := render(t, `{{#each todos}}{{#if done}}[x]{{else}}[ ]{{/if}}{{ name }} {{/each}}`, map[string]any{"todos": items})
		assert.Equal(t, "[x]a [ ]b ", out)
	})

	t.Run("missing key substitutes empty", func(t *testing.T) {
		out := render(t, `<ul>{{#each ghosts}}<li>x</li>{{/each}}</ul>`, map[string]any{})
		assert.Equal(t, "<ul></ul>", out)
	})

	t.Run("non-sequence substitutes empty", func(t *testing.T) {
		out := render(t, `<ul><each data="users"><li>x</li></each></ul>`, map[string]any{"users": "oops"})
		assert.Equal(t, "<ul></ul>", out)
	})

	t.Run("empty sequence repeats zero times", func(t *testing.T) {
		out := render(t, `<ul>{{#each users}}<li>x</li>{{/each}}</ul>`, map[string]any{"users": []any{}})
		assert.Equal(t, "<ul></ul>", out)
	})
}

func TestRender_LoopDiagnosticHook(t *testing.T) {
	var events []*domain.DiagnosticEvent
	ev := New(WithHooks(domain.RenderHooks{
		OnDiagnostic: func(_ context.Context, e *domain.DiagnosticEvent) {
			events = append(events, e)
		},
	}))

	out := ev.Render(context.Background(), parser.Parse(`{{#each nope}}x{{/each}}done`), domain.Context{}, All)
	assert.Equal(t, "done", out, "render must complete despite the invalid loop source")
	assert.Len(t, events, 1)
	assert.Equal(t, domain.DiagnosticLoopSource, events[0].Kind)
	assert.Equal(t, "nope", events[0].Path)
}

func TestRender_MixedDialectEquivalence(t *testing.T) {
	data := map[string]any{
		"name":  "Ada",
		"users": []any{map[string]any{"name": "Al"}, map[string]any{"name": "Bo"}},
	}

	mixed := `<h1>Hi {{name}}</h1><ul>{{#each users}}<li><text data="name"/></li>{{/each}}</ul>`
	allBraces := `<h1>Hi {{name}}</h1><ul>{{#each users}}<li>{{name}}</li>{{/each}}</ul>`
	allTags := `<h1>Hi <text data="name"/></h1><ul><each data="users"><li><text data="name"/></li></each></ul>`

	want := "<h1>Hi Ada</h1><ul><li>Al</li><li>Bo</li></ul>"
	assert.Equal(t, want, render(t, mixed, data))
	assert.Equal(t, want, render(t, allBraces, data))
	assert.Equal(t, want, render(t, allTags, data))
}

func TestRender_LoopInsideConditionalPasses(t *testing.T) {
	ev := New()
	ctx := context.Background()
	data := domain.Context{
		"show":  true,
		"users": []any{map[string]any{"name": "Al"}, map[string]any{"name": "Bo"}},
	}

	t.Run("braces", func(t *testing.T) {
		src := `{{#if show}}{{#each users}}{{ name }};{{/each}}{{/if}}`

		// The loop pass must expand the loop even though it sits inside a
		// not-yet-selected conditional branch.
		afterLoops := ev.Render(ctx, parser.Parse(src), data, Loops)
		assert.Equal(t, `{{#if show}}Al;Bo;{{/if}}`, afterLoops)

		afterConds := ev.Render(ctx, parser.Parse(afterLoops), data, Conditionals)
		assert.Equal(t, `Al;Bo;`, afterConds)

		afterVars := ev.Render(ctx, parser.Parse(afterConds), data, Variables)
		assert.Equal(t, `Al;Bo;`, afterVars)
		assert.Equal(t, afterVars, ev.Render(ctx, parser.Parse(src), data, All))
	})

	t.Run("tags", func(t *testing.T) {
		src := `<if data="show"><each data="users"><text data="name" />;</each></if>`

		afterLoops := ev.Render(ctx, parser.Parse(src), data, Loops)
		assert.Equal(t, `<if data="show">Al;Bo;</if>`, afterLoops)

		afterConds := ev.Render(ctx, parser.Parse(afterLoops), data, Conditionals)
		assert.Equal(t, `Al;Bo;`, afterConds)
		assert.Equal(t, afterConds, ev.Render(ctx, parser.Parse(src), data, All))
	})

	t.Run("loop in every branch and the else", func(t *testing.T) {
		src := `{{#if show}}{{#each users}}a{{/each}}{{else if other}}{{#each users}}b{{/each}}{{else}}{{#each users}}c{{/each}}{{/if}}`
		afterLoops := ev.Render(ctx, parser.Parse(src), data, Loops)
		assert.Equal(t, `{{#if show}}aa{{else if other}}bb{{else}}cc{{/if}}`, afterLoops)
	})
}

func TestRender_VariableInsideConditionalPasses(t *testing.T) {
	ev := New()
	ctx := context.Background()
	data := domain.Context{"x": 1, "y": 2}

	// The variable pass substitutes inside every branch of an unexpanded
	// conditional; the directive's own markers survive byte for byte.
	src := `{{#if a}}{{ x }}{{else}}{{ y }}{{/if}}`
	out := ev.Render(ctx, parser.Parse(src), data, Variables)
	assert.Equal(t, `{{#if a}}1{{else}}2{{/if}}`, out)
}

func TestRender_PartialPassesChain(t *testing.T) {
	ev := New()
	ctx := context.Background()
	data := domain.Context{
		"greeting": "hello",
		"show":     true,
		"users":    []any{map[string]any{"name": "Al"}},
	}
	src := `{{ greeting }} {{#if show}}yes{{/if}} {{#each users}}{{ name }}{{/each}}`

	// Loops only: variables and conditionals outside loops stay verbatim.
	afterLoops := ev.Render(ctx, parser.Parse(src), data, Loops)
	assert.Equal(t, `{{ greeting }} {{#if show}}yes{{/if}} Al`, afterLoops)

	// Then conditionals.
	afterConds := ev.Render(ctx, parser.Parse(afterLoops), data, Conditionals)
	assert.Equal(t, `{{ greeting }} yes Al`, afterConds)

	// Then variables; the chained result matches a full render.
	afterVars := ev.Render(ctx, parser.Parse(afterConds), data, Variables)
	assert.Equal(t, `hello yes Al`, afterVars)
	assert.Equal(t, afterVars, ev.Render(ctx, parser.Parse(src), data, All))
}
