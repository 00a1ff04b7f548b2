// Package parser turns template source into the shared directive tree.
//
// Two dialect front-ends (braces.go, tags.go) emit the same domain.Node
// variants, so evaluation logic stays single-sourced. Parsing never fails:
// an unterminated or malformed directive degrades to literal text, matching
// how an unmatched pattern simply stays in the output.
package parser

import (
	"regexp"
	"strings"

	"github.com/aretw0/wicker/pkg/domain"
)

type token int

const (
	tokBraces token = iota
	tokTagText
	tokTagIf
	tokTagEach
)

// Parse scans source into a template tree.
func Parse(src string) []domain.Node {
	var (
		nodes []domain.Node
		lit   strings.Builder
		pos   int
	)
	flush := func() {
		if lit.Len() > 0 {
			nodes = append(nodes, &domain.Literal{Text: lit.String()})
			lit.Reset()
		}
	}

	for pos < len(src) {
		i, kind := nextDirective(src, pos)
		if i < 0 {
			lit.WriteString(src[pos:])
			break
		}
		lit.WriteString(src[pos:i])

		node, end, ok := parseDirective(src, i, kind)
		if !ok {
			// Not a well-formed directive after all. Keep one byte as
			// literal and rescan; the remainder may still contain valid
			// directives.
			lit.WriteByte(src[i])
			pos = i + 1
			continue
		}
		flush()
		nodes = append(nodes, node)
		pos = end
	}
	flush()
	return nodes
}

func parseDirective(src string, i int, kind token) (domain.Node, int, bool) {
	switch kind {
	case tokBraces:
		return parseBraces(src, i)
	case tokTagText:
		return parseTagText(src, i)
	case tokTagIf:
		return parseTagIf(src, i)
	case tokTagEach:
		return parseTagEach(src, i)
	}
	return nil, 0, false
}

// nextDirective finds the earliest directive opener at or after pos.
func nextDirective(src string, pos int) (int, token) {
	best := -1
	kind := tokBraces

	if i := strings.Index(src[pos:], "{{"); i >= 0 {
		best = pos + i
	}
	for _, cand := range []struct {
		name string
		k    token
	}{
		{"<text", tokTagText},
		{"<if", tokTagIf},
		{"<each", tokTagEach},
	} {
		i := indexTag(src, pos, cand.name)
		if i >= 0 && (best < 0 || i < best) {
			best, kind = i, cand.k
		}
	}
	return best, kind
}

// indexTag finds name in src at or after pos, requiring a tag boundary after
// it so "<ifx" or "<texture" never match.
func indexTag(src string, pos int, name string) int {
	for {
		i := strings.Index(src[pos:], name)
		if i < 0 {
			return -1
		}
		abs := pos + i
		j := abs + len(name)
		if j < len(src) && (isSpace(src[j]) || src[j] == '>' || src[j] == '/') {
			return abs
		}
		pos = abs + 1
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// validPath accepts bare identifiers and dot-separated chains.
func validPath(p string) bool {
	if p == "" {
		return false
	}
	for _, seg := range strings.Split(p, ".") {
		if seg == "" {
			return false
		}
		for _, r := range seg {
			switch {
			case r >= 'a' && r <= 'z':
			case r >= 'A' && r <= 'Z':
			case r >= '0' && r <= '9':
			case r == '_' || r == '$' || r == '-':
			default:
				return false
			}
		}
	}
	return true
}

var dataAttrRe = regexp.MustCompile(`\bdata\s*=\s*"([^"]*)"`)

// dataAttr extracts the data="…" attribute from a tag's attribute region.
func dataAttr(attrs string) (string, bool) {
	m := dataAttrRe.FindStringSubmatch(attrs)
	if m == nil {
		return "", false
	}
	return m[1], true
}
