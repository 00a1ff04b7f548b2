package components

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func stub(name string) Func {
	return func(context.Context, map[string]string) (*html.Node, error) {
		return &html.Node{Type: html.ElementNode, Data: name}, nil
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("Card", stub("div")))

	// HTML parsing lowercases tag names, so lookup is case-insensitive.
	c, ok := reg.Lookup("card")
	require.True(t, ok)
	n, err := c.Render(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "div", n.Data)

	_, ok = reg.Lookup("unknown")
	assert.False(t, ok)
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("card", stub("old")))
	require.NoError(t, reg.Register("card", stub("new")))

	c, _ := reg.Lookup("card")
	n, err := c.Render(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "new", n.Data)
}

func TestRegistry_EmptyTagRejected(t *testing.T) {
	reg := NewRegistry()
	assert.Error(t, reg.Register("", stub("x")))
}

func TestRegistry_Tags(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("card", stub("a")))
	require.NoError(t, reg.Register("Badge", stub("b")))
	assert.ElementsMatch(t, []string{"card", "badge"}, reg.Tags())
}
