package parser

import (
	"strings"

	"github.com/aretw0/wicker/pkg/domain"
)

// Tag-dialect directives: <text data="key" />, <if data="path">…</if> with
// <elseif data="path" /> / <else /> markers, and <each data="key">…</each>.

func parseTagText(src string, i int) (domain.Node, int, bool) {
	gt := strings.IndexByte(src[i:], '>')
	if gt < 0 {
		return nil, 0, false
	}
	gt += i
	if src[gt-1] != '/' {
		// <text> is only valid self-closing.
		return nil, 0, false
	}
	path, ok := dataAttr(src[i+len("<text") : gt-1])
	if !ok || !validPath(path) {
		return nil, 0, false
	}
	end := gt + 1
	return &domain.Variable{
		Path:    path,
		Dialect: domain.DialectTags,
		Raw:     src[i:end],
	}, end, true
}

func parseTagIf(src string, i int) (domain.Node, int, bool) {
	gt := strings.IndexByte(src[i:], '>')
	if gt < 0 {
		return nil, 0, false
	}
	gt += i
	if src[gt-1] == '/' {
		// A body-less conditional cannot select anything.
		return nil, 0, false
	}
	cond, ok := dataAttr(src[i+len("<if") : gt])
	if !ok || !validPath(cond) {
		return nil, 0, false
	}

	bodyStart := gt + 1
	bodyEnd, end, ok := matchTagClose(src, bodyStart, "<if", "</if>")
	if !ok {
		return nil, 0, false
	}

	branches, elseMarker, elseBody, hasElse := splitTagBranches(src[bodyStart:bodyEnd], cond, src[i:bodyStart])
	node := &domain.Conditional{
		Branches:   branches,
		ElseMarker: elseMarker,
		HasElse:    hasElse,
		Closer:     src[bodyEnd:end],
		Dialect:    domain.DialectTags,
		Raw:        src[i:end],
	}
	if hasElse {
		node.Else = Parse(elseBody)
	}
	return node, end, true
}

func parseTagEach(src string, i int) (domain.Node, int, bool) {
	gt := strings.IndexByte(src[i:], '>')
	if gt < 0 {
		return nil, 0, false
	}
	gt += i
	if src[gt-1] == '/' {
		return nil, 0, false
	}
	key, ok := dataAttr(src[i+len("<each") : gt])
	if !ok || !validPath(key) {
		return nil, 0, false
	}

	bodyStart := gt + 1
	bodyEnd, end, ok := matchTagClose(src, bodyStart, "<each", "</each>")
	if !ok {
		return nil, 0, false
	}

	return &domain.Loop{
		Path:    key,
		Body:    Parse(src[bodyStart:bodyEnd]),
		Dialect: domain.DialectTags,
		Raw:     src[i:end],
	}, end, true
}

// matchTagClose finds the closing tag matching an already-consumed opener,
// counting nested openers of the same tag name.
func matchTagClose(src string, from int, open, close string) (int, int, bool) {
	depth := 1
	j := from
	for {
		io := indexTag(src, j, open)
		ic := strings.Index(src[j:], close)
		if ic < 0 {
			return 0, 0, false
		}
		ic += j
		if io >= 0 && io < ic {
			depth++
			j = io + len(open)
			continue
		}
		depth--
		if depth == 0 {
			return ic, ic + len(close), true
		}
		j = ic + len(close)
	}
}

// splitTagBranches cuts a conditional body at depth-zero <elseif data="p" />
// and <else /> markers. Mirrors splitBracesBranches for the tag dialect.
func splitTagBranches(body, primary, opener string) ([]domain.Branch, string, string, bool) {
	type marker struct {
		pos, width int
		cond       string
	}
	var (
		markers []marker
		elsePos = -1
		elseEnd int
		depth   int
		j       int
	)

	for j < len(body) {
		i := strings.IndexByte(body[j:], '<')
		if i < 0 {
			break
		}
		i += j
		rest := body[i:]
		switch {
		case tagAt(rest, "<if"):
			depth++
			j = i + len("<if")
		case strings.HasPrefix(rest, "</if>"):
			if depth > 0 {
				depth--
			}
			j = i + len("</if>")
		case depth == 0 && tagAt(rest, "<elseif"):
			gt := strings.IndexByte(rest, '>')
			if gt < 0 || rest[gt-1] != '/' {
				j = i + 1
				continue
			}
			cond, ok := dataAttr(rest[len("<elseif"):gt])
			if !ok || !validPath(cond) {
				j = i + 1
				continue
			}
			markers = append(markers, marker{pos: i, width: gt + 1, cond: cond})
			j = i + gt + 1
		case depth == 0 && tagAt(rest, "<else"):
			gt := strings.IndexByte(rest, '>')
			if gt < 0 || rest[gt-1] != '/' {
				j = i + 1
				continue
			}
			elsePos = i
			elseEnd = i + gt + 1
			j = len(body) // first else terminates splitting
		default:
			j = i + 1
		}
	}

	limit := len(body)
	if elsePos >= 0 {
		limit = elsePos
	}

	branches := make([]domain.Branch, 0, len(markers)+1)
	cond, mark := primary, opener
	start := 0
	for _, m := range markers {
		branches = append(branches, domain.Branch{Path: cond, Marker: mark, Body: Parse(body[start:m.pos])})
		cond, mark = m.cond, body[m.pos:m.pos+m.width]
		start = m.pos + m.width
	}
	branches = append(branches, domain.Branch{Path: cond, Marker: mark, Body: Parse(body[start:limit])})

	if elsePos >= 0 {
		return branches, body[elsePos:elseEnd], body[elseEnd:], true
	}
	return branches, "", "", false
}

// tagAt reports whether s begins with name followed by a tag boundary.
func tagAt(s, name string) bool {
	if !strings.HasPrefix(s, name) {
		return false
	}
	if len(s) == len(name) {
		return false
	}
	b := s[len(name)]
	return isSpace(b) || b == '>' || b == '/'
}
