// Package eval walks the parsed template tree against a render context.
//
// The evaluator preserves the engine's observable ordering contract as a
// structural property rather than a pass order: loop bodies are evaluated
// with the sequence element as the entire active scope, so conditionals and
// variables inside a loop body resolve against the element before anything
// outside the loop can see that content. The three public pass operations
// (loops, conditionals, variables) are the same walk restricted by a mask;
// chaining them in the documented order reproduces a full render.
package eval

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/wicker/pkg/domain"
)

// Pass selects which directive kinds a walk expands. An unselected variable
// or loop is re-emitted verbatim from its original source span; an
// unselected conditional is re-emitted structurally so the pass still
// reaches directives nested in its branches.
type Pass uint8

const (
	Loops Pass = 1 << iota
	Conditionals
	Variables

	All = Loops | Conditionals | Variables
)

// Evaluator renders template trees. It holds no per-render state, so one
// evaluator is safe for concurrent renders.
type Evaluator struct {
	logger *slog.Logger
	hooks  domain.RenderHooks
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the diagnostics logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithHooks registers observability hooks for diagnostics.
func WithHooks(hooks domain.RenderHooks) Option {
	return func(e *Evaluator) {
		e.hooks = hooks
	}
}

// New creates an evaluator. Without options, diagnostics are discarded.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render evaluates nodes against scope, expanding the directive kinds
// selected by pass.
func (e *Evaluator) Render(ctx context.Context, nodes []domain.Node, scope domain.Context, pass Pass) string {
	var b strings.Builder
	for _, n := range nodes {
		switch t := n.(type) {
		case *domain.Literal:
			b.WriteString(t.Text)

		case *domain.Variable:
			if pass&Variables == 0 {
				b.WriteString(t.Raw)
				continue
			}
			// Missing resolves to empty output, never the placeholder text.
			if v, ok := scope.Resolve(t.Path); ok {
				b.WriteString(domain.Stringify(v))
			}

		case *domain.Conditional:
			if pass&Conditionals == 0 {
				// Re-emit the directive structurally, not from its raw span:
				// the active pass must still reach directives nested inside
				// the branches, in every branch, before any branch is chosen.
				for _, br := range t.Branches {
					b.WriteString(br.Marker)
					b.WriteString(e.Render(ctx, br.Body, scope, pass))
				}
				if t.HasElse {
					b.WriteString(t.ElseMarker)
					b.WriteString(e.Render(ctx, t.Else, scope, pass))
				}
				b.WriteString(t.Closer)
				continue
			}
			// First truthy branch wins, in textual order. A condition that
			// resolves missing is falsy, not an error.
			matched := false
			for _, br := range t.Branches {
				if domain.Truthy(scope.Resolve(br.Path)) {
					b.WriteString(e.Render(ctx, br.Body, scope, pass))
					matched = true
					break
				}
			}
			if !matched && t.HasElse {
				b.WriteString(e.Render(ctx, t.Else, scope, pass))
			}

		case *domain.Loop:
			if pass&Loops == 0 {
				// Loop bodies resolve against the sequence element, never the
				// outer scope, so nothing inside them may expand before the
				// loop itself does. The raw span carries the body verbatim.
				b.WriteString(t.Raw)
				continue
			}
			v, ok := scope.Resolve(t.Path)
			seq, isSeq := domain.Sequence(v)
			if !ok || !isSeq {
				e.diagnoseLoop(ctx, t)
				continue
			}
			// Each body copy is fully instantiated against its element,
			// in sequence order.
			for _, item := range seq {
				b.WriteString(e.Render(ctx, t.Body, domain.ItemScope(item), All))
			}
		}
	}
	return b.String()
}

func (e *Evaluator) diagnoseLoop(ctx context.Context, t *domain.Loop) {
	e.logger.Warn("loop source missing or not a sequence, substituting empty content",
		"path", t.Path,
		"dialect", t.Dialect,
	)
	if e.hooks.OnDiagnostic != nil {
		e.hooks.OnDiagnostic(ctx, &domain.DiagnosticEvent{
			Kind:    domain.DiagnosticLoopSource,
			Path:    t.Path,
			Dialect: t.Dialect,
		})
	}
}
