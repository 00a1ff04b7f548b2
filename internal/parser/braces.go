package parser

import (
	"strings"

	"github.com/aretw0/wicker/pkg/domain"
)

// Brace-dialect directives: {{ key }}, {{#if path}}…{{/if}}, {{#each key}}…{{/each}}.

func parseBraces(src string, i int) (domain.Node, int, bool) {
	rest := src[i+2:]
	switch {
	case strings.HasPrefix(rest, "#if") && len(rest) > 3 && isSpace(rest[3]):
		return parseBracesIf(src, i)
	case strings.HasPrefix(rest, "#each") && len(rest) > 5 && isSpace(rest[5]):
		return parseBracesEach(src, i)
	}

	// Bare variable. Stray markers like {{/if}} fail path validation and
	// stay literal; a stray {{else}} resolves as the (missing) key "else",
	// which substitutes to empty just as the pass ordering implies.
	close := strings.Index(rest, "}}")
	if close < 0 {
		return nil, 0, false
	}
	path := strings.TrimSpace(rest[:close])
	if !validPath(path) {
		return nil, 0, false
	}
	end := i + 2 + close + 2
	return &domain.Variable{
		Path:    path,
		Dialect: domain.DialectBraces,
		Raw:     src[i:end],
	}, end, true
}

func parseBracesIf(src string, i int) (domain.Node, int, bool) {
	openClose := strings.Index(src[i:], "}}")
	if openClose < 0 {
		return nil, 0, false
	}
	openEnd := i + openClose + 2
	cond := strings.TrimSpace(src[i+len("{{#if") : openEnd-2])
	if !validPath(cond) {
		return nil, 0, false
	}

	bodyStart := openEnd
	bodyEnd, end, ok := matchBracesClose(src, openEnd, "{{#if", "{{/if}}")
	if !ok {
		return nil, 0, false
	}

	branches, elseMarker, elseBody, hasElse := splitBracesBranches(src[bodyStart:bodyEnd], cond, src[i:openEnd])
	node := &domain.Conditional{
		Branches:   branches,
		ElseMarker: elseMarker,
		HasElse:    hasElse,
		Closer:     src[bodyEnd:end],
		Dialect:    domain.DialectBraces,
		Raw:        src[i:end],
	}
	if hasElse {
		node.Else = Parse(elseBody)
	}
	return node, end, true
}

func parseBracesEach(src string, i int) (domain.Node, int, bool) {
	openClose := strings.Index(src[i:], "}}")
	if openClose < 0 {
		return nil, 0, false
	}
	openEnd := i + openClose + 2
	key := strings.TrimSpace(src[i+len("{{#each") : openEnd-2])
	if !validPath(key) {
		return nil, 0, false
	}

	bodyEnd, end, ok := matchBracesClose(src, openEnd, "{{#each", "{{/each}}")
	if !ok {
		return nil, 0, false
	}

	return &domain.Loop{
		Path:    key,
		Body:    Parse(src[openEnd:bodyEnd]),
		Dialect: domain.DialectBraces,
		Raw:     src[i:end],
	}, end, true
}

// matchBracesClose finds the closer matching an already-consumed opener,
// counting nested openers of the same directive. It returns the closer's
// start offset and the offset just past it.
func matchBracesClose(src string, from int, open, close string) (int, int, bool) {
	depth := 1
	j := from
	for {
		io := strings.Index(src[j:], open)
		ic := strings.Index(src[j:], close)
		if ic < 0 {
			return 0, 0, false
		}
		ic += j
		if io >= 0 {
			io += j
		}
		if io >= 0 && io < ic {
			// Only a real opener (followed by whitespace) deepens nesting.
			if k := io + len(open); k < len(src) && isSpace(src[k]) {
				depth++
			}
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

// splitBracesBranches cuts a conditional body at depth-zero {{else if p}} and
// {{else}} markers, in textual order. The primary condition becomes branch
// zero, carrying opener as its marker. The first {{else}} ends branch
// splitting; anything after it belongs to the else content.
func splitBracesBranches(body, primary, opener string) ([]domain.Branch, string, string, bool) {
	type marker struct {
		pos, width int
		cond       string
	}
	var (
		markers  []marker
		elsePos  = -1
		elseEnd  int
		depth    int
		j        int
	)

	for j < len(body) {
		i := strings.Index(body[j:], "{{")
		if i < 0 {
			break
		}
		i += j
		rest := body[i+2:]
		switch {
		case strings.HasPrefix(rest, "#if") && len(rest) > 3 && isSpace(rest[3]):
			depth++
			j = i + len("{{#if")
		case strings.HasPrefix(rest, "/if}}"):
			if depth > 0 {
				depth--
			}
			j = i + len("{{/if}}")
		case depth == 0 && strings.HasPrefix(rest, "else}}"):
			elsePos = i
			elseEnd = i + len("{{else}}")
			j = len(body) // first else terminates splitting
		case depth == 0 && strings.HasPrefix(rest, "else if") && len(rest) > 7 && isSpace(rest[7]):
			ce := strings.Index(rest, "}}")
			if ce < 0 {
				j = i + 2
				continue
			}
			cond := strings.TrimSpace(rest[7:ce])
			if !validPath(cond) {
				j = i + 2
				continue
			}
			markers = append(markers, marker{pos: i, width: 2 + ce + 2, cond: cond})
			j = i + 2 + ce + 2
		default:
			j = i + 2
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
