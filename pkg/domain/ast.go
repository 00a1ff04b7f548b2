package domain

// Dialect identifies which concrete syntax a directive was written in.
// Both dialects share one semantics; the tag only matters for re-emitting
// unexpanded directives verbatim and for diagnostics.
type Dialect string

const (
	// DialectBraces is the brace-delimited syntax: {{ key }}, {{#if}}, {{#each}}.
	DialectBraces Dialect = "braces"
	// DialectTags is the custom-tag syntax: <text/>, <if>, <each>.
	DialectTags Dialect = "tags"
)

// Node is one variant of the parsed template tree.
// The concrete types are Literal, Variable, Conditional and Loop.
type Node interface {
	// Src returns the original source span of the node, so a pass that does
	// not expand this directive kind can re-emit it unchanged.
	Src() string
}

// Literal is a run of plain markup between directives.
type Literal struct {
	Text string
}

func (l *Literal) Src() string { return l.Text }

// Variable is a scalar placeholder: {{ name }} or <text data="name" />.
// Path may be a bare identifier or a dotted chain.
type Variable struct {
	Path    string
	Dialect Dialect
	Raw     string
}

func (v *Variable) Src() string { return v.Raw }

// Branch is one (condition, content) pair of a conditional.
type Branch struct {
	// Path is the condition path resolved against the active scope.
	Path string
	// Marker is the raw source of the marker introducing this branch: the
	// directive opener for branch zero, an else-if marker for the rest.
	Marker string
	Body   []Node
}

// Conditional is a multi-branch directive. Branches are kept in textual
// order; branch zero carries the primary opening condition. Else holds the
// optional fallback content.
//
// The raw marker and closer spans are retained so a pass that does not
// select conditionals can re-emit the directive structurally, with its
// branch contents still walked by the active pass.
type Conditional struct {
	Branches   []Branch
	Else       []Node
	ElseMarker string
	HasElse    bool
	Closer     string
	Dialect    Dialect
	Raw        string
}

func (c *Conditional) Src() string { return c.Raw }

// Loop is an iteration directive: {{#each key}} or <each data="key">.
// Its body is repeated once per sequence element, with the element as the
// entire active scope for the copy.
type Loop struct {
	Path    string
	Body    []Node
	Dialect Dialect
	Raw     string
}

func (l *Loop) Src() string { return l.Raw }
