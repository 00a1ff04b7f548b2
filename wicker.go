package wicker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/wicker/internal/adapters/file"
	"github.com/aretw0/wicker/internal/eval"
	"github.com/aretw0/wicker/internal/logging"
	"github.com/aretw0/wicker/internal/materialize"
	"github.com/aretw0/wicker/internal/parser"
	"github.com/aretw0/wicker/pkg/domain"
	"github.com/aretw0/wicker/pkg/ports"
	"golang.org/x/net/html"
)

// inlineTemplate labels RenderSource calls in hooks and logs, where no
// loader identifier exists.
const inlineTemplate = "(inline)"

// Engine is the high-level entry point for the Wicker library.
// It wires a source loader, the evaluator, and the materializer behind a
// simplified API for consumers. An Engine holds no per-render state, so
// concurrent renders are safe.
type Engine struct {
	loader     ports.SourceLoader
	components ports.ComponentLookup
	logger     *slog.Logger
	hooks      domain.RenderHooks
	evaluator  *eval.Evaluator
	Name       string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom SourceLoader, bypassing the default filesystem
// loader.
func WithLoader(l ports.SourceLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithComponents injects the custom-tag lookup used during materialization.
// Without it, rendered fragments are returned without component expansion.
func WithComponents(lookup ports.ComponentLookup) Option {
	return func(e *Engine) {
		e.components = lookup
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRenderHooks registers observability hooks.
func WithRenderHooks(hooks domain.RenderHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// New initializes a new Wicker Engine.
// By default it reads templates from the given root directory.
// If the WithLoader option is provided, root can be empty.
func New(root string, opts ...Option) (*Engine, error) {
	eng := &Engine{}

	// Apply options first to check if a loader is provided
	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		if root == "" {
			return nil, fmt.Errorf("root directory is required when no custom loader is provided")
		}
		absPath, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		eng.Name = filepath.Base(absPath)
		eng.loader = file.New(absPath)
	} else if root != "" {
		// With a custom loader, root only serves as a descriptive label.
		eng.Name = filepath.Base(root)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("engine", eng.Name)
	}

	eng.evaluator = eval.New(
		eval.WithLogger(eng.logger),
		eval.WithHooks(eng.hooks),
	)
	return eng, nil
}

// Render loads a template by identifier, resolves all directives against
// data, and materializes the result into a single root element with
// registered components expanded.
//
// Loading the source is the only suspension point; once the source is in
// hand, the expansion passes run synchronously. An unknown identifier fails
// with domain.ErrTemplateNotFound; substituted markup without an element
// root fails with domain.ErrNoRootElement.
func (e *Engine) Render(ctx context.Context, name string, data map[string]any) (*html.Node, error) {
	start := time.Now()
	if e.hooks.OnRenderStart != nil {
		e.hooks.OnRenderStart(ctx, &domain.RenderEvent{Template: name})
	}

	src, err := e.loader.Load(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrTemplateNotFound) {
			e.logger.Warn("template not found", "template", name)
		}
		e.finish(ctx, name, start, err)
		return nil, fmt.Errorf("failed to load template %q: %w", name, err)
	}

	node, err := e.materializeSource(ctx, src, data)
	e.finish(ctx, name, start, err)
	if err != nil {
		return nil, err
	}
	return node, nil
}

// RenderSource renders an inline template source, skipping the loader.
// Hooks fire with "(inline)" as the template label.
func (e *Engine) RenderSource(ctx context.Context, source string, data map[string]any) (*html.Node, error) {
	start := time.Now()
	if e.hooks.OnRenderStart != nil {
		e.hooks.OnRenderStart(ctx, &domain.RenderEvent{Template: inlineTemplate})
	}
	node, err := e.materializeSource(ctx, source, data)
	e.finish(ctx, inlineTemplate, start, err)
	return node, err
}

// RenderHTML renders a template and serializes the resulting fragment.
func (e *Engine) RenderHTML(ctx context.Context, name string, data map[string]any) (string, error) {
	node, err := e.Render(ctx, name, data)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, node); err != nil {
		return "", fmt.Errorf("failed to serialize fragment: %w", err)
	}
	return buf.String(), nil
}

// Templates returns the identifiers available from the configured loader.
func (e *Engine) Templates(ctx context.Context) ([]string, error) {
	return e.loader.List(ctx)
}

// Loader returns the underlying SourceLoader used by the engine.
func (e *Engine) Loader() ports.SourceLoader {
	return e.loader
}

func (e *Engine) materializeSource(ctx context.Context, source string, data map[string]any) (*html.Node, error) {
	markup := e.evaluator.Render(ctx, parser.Parse(source), domain.Context(data), eval.All)
	return materialize.Fragment(ctx, markup, e.components, e.logger, e.hooks)
}

func (e *Engine) finish(ctx context.Context, name string, start time.Time, err error) {
	if e.hooks.OnRender != nil {
		e.hooks.OnRender(ctx, &domain.RenderEvent{
			Template: name,
			Duration: time.Since(start),
			Err:      err,
		})
	}
}

// ExpandLoops expands both loop dialects in source against data and returns
// the resulting string. Each body copy is fully instantiated against its
// sequence element; other directive kinds outside loops are left untouched.
// A missing or non-sequence loop key substitutes empty content and the
// expansion continues.
func ExpandLoops(source string, data map[string]any) string {
	return expandPass(source, data, eval.Loops)
}

// ExpandConditionals expands both conditional dialects in source against
// data, keeping the content of the first truthy branch (or the else content,
// or nothing). Variables and loops are left untouched, so the result can be
// fed to SubstituteVariables.
func ExpandConditionals(source string, data map[string]any) string {
	return expandPass(source, data, eval.Conditionals)
}

// SubstituteVariables replaces every remaining bare-variable directive in
// both dialects with the stringified resolved value, or empty string when
// the path resolves missing.
func SubstituteVariables(source string, data map[string]any) string {
	return expandPass(source, data, eval.Variables)
}

// Resolve walks a dot-separated path against data, returning the resolved
// value and whether it was present.
func Resolve(data map[string]any, path string) (any, bool) {
	return domain.Context(data).Resolve(path)
}

func expandPass(source string, data map[string]any, pass eval.Pass) string {
	ev := eval.New(eval.WithLogger(logging.NewNop()))
	return ev.Render(context.Background(), parser.Parse(source), domain.Context(data), pass)
}
