// Package materialize turns fully substituted markup into a single root
// element and runs component expansion over it.
package materialize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/wicker/pkg/domain"
	"github.com/aretw0/wicker/pkg/ports"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// maxComponentDepth bounds recursive component expansion so a component that
// emits itself cannot hang a render.
const maxComponentDepth = 64

// Fragment parses markup into exactly one root element, then replaces every
// registered custom tag with its component's rendered output. A nil lookup
// skips expansion. Markup that yields no element at all fails with
// domain.ErrNoRootElement.
func Fragment(ctx context.Context, markup string, lookup ports.ComponentLookup, logger *slog.Logger, hooks domain.RenderHooks) (*html.Node, error) {
	trimmed := strings.TrimSpace(markup)
	if trimmed == "" {
		return nil, domain.ErrNoRootElement
	}

	container := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(trimmed), container)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered markup: %w", err)
	}

	var root *html.Node
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			root = n
			break
		}
	}
	if root == nil {
		return nil, domain.ErrNoRootElement
	}

	if lookup == nil {
		return root, nil
	}
	return expand(ctx, root, lookup, 0, logger, hooks)
}

// expand replaces n (and, recursively, its descendants) with component
// output where the tag is registered. It returns the node now occupying n's
// position, which differs from n when n itself was a component tag.
func expand(ctx context.Context, n *html.Node, lookup ports.ComponentLookup, depth int, logger *slog.Logger, hooks domain.RenderHooks) (*html.Node, error) {
	if n.Type == html.ElementNode {
		if comp, ok := lookup(n.Data); ok {
			if depth >= maxComponentDepth {
				logger.Warn("component expansion depth exceeded, leaving tag unexpanded", "tag", n.Data)
				if hooks.OnDiagnostic != nil {
					hooks.OnDiagnostic(ctx, &domain.DiagnosticEvent{
						Kind: domain.DiagnosticComponentDepth,
						Path: n.Data,
					})
				}
				return n, nil
			}

			repl, err := comp.Render(ctx, attributes(n))
			if err != nil {
				return nil, fmt.Errorf("component %q failed to render: %w", n.Data, err)
			}
			// The component's own output may contain registered tags too.
			repl, err = expand(ctx, repl, lookup, depth+1, logger, hooks)
			if err != nil {
				return nil, err
			}
			if n.Parent != nil {
				n.Parent.InsertBefore(repl, n)
				n.Parent.RemoveChild(n)
			}
			return repl, nil
		}
	}

	for c := n.FirstChild; c != nil; {
		next := c.NextSibling // capture before replacement detaches c
		if _, err := expand(ctx, c, lookup, depth, logger, hooks); err != nil {
			return nil, err
		}
		c = next
	}
	return n, nil
}

func attributes(n *html.Node) map[string]string {
	props := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		props[a.Key] = a.Val
	}
	return props
}
