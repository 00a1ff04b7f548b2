// Package file implements ports.SourceLoader over a directory of templates.
package file

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/wicker/pkg/domain"
)

// Loader reads template source from files under a root directory.
// A bare identifier (no extension) also resolves with a ".html" suffix, so
// "home" finds "home.html".
type Loader struct {
	root string
}

// New creates a loader rooted at dir.
func New(dir string) *Loader {
	return &Loader{root: dir}
}

// Load reads the source for a template identifier.
func (l *Loader) Load(ctx context.Context, name string) (string, error) {
	rel := filepath.Clean(filepath.FromSlash(name))
	if rel == "." || filepath.IsAbs(rel) || strings.HasPrefix(rel, "..") {
		// Identifiers must stay inside the root.
		return "", fmt.Errorf("%q: %w", name, domain.ErrTemplateNotFound)
	}

	candidates := []string{rel}
	if filepath.Ext(rel) == "" {
		candidates = append(candidates, rel+".html")
	}
	for _, c := range candidates {
		data, err := os.ReadFile(filepath.Join(l.root, c))
		if err == nil {
			return string(data), nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to read template %q: %w", name, err)
		}
	}
	return "", fmt.Errorf("%q: %w", name, domain.ErrTemplateNotFound)
}

// List walks the root and returns the identifiers of all ".html" files,
// relative to the root, with forward slashes.
func (l *Loader) List(ctx context.Context) ([]string, error) {
	var names []string
	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".html" {
			return nil
		}
		rel, err := filepath.Rel(l.root, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return names, nil
}
