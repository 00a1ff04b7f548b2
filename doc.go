/*
Package wicker is a dual-dialect HTML template rendering engine: it resolves
variable interpolation, multi-branch conditionals and sequence iteration in
a markup fragment, and materializes the result into a single root element.

Two interchangeable syntaxes express the same directives and mix freely in
one fragment:

	Handlebars-style:  {{ key }}   {{#if path}} … {{else if p}} … {{else}} … {{/if}}   {{#each key}} … {{/each}}
	XML-style:         <text data="key" />   <if data="path"> … <elseif data="p" /> … <else /> … </if>   <each data="key"> … </each>

Paths are bare identifiers or dot-separated chains resolved against the
render context; a missing path degrades to empty output for variables and to
falsy for conditions, never to an error.

# Ordering semantics

Loop bodies establish per-item scope before anything else sees their
content: conditionals and variables inside a loop body resolve against the
sequence element, not the outer context. Outside of loops, conditionals
select their branch before remaining variables substitute. The three pass
operations (ExpandLoops, ExpandConditionals, SubstituteVariables) expose
exactly this order as chainable string transforms.

# Usage

	eng, err := wicker.New("./templates")
	if err != nil {
		log.Fatal(err)
	}

	node, err := eng.Render(ctx, "profile", map[string]any{
		"name":  "Ada",
		"users": []any{map[string]any{"name": "Al"}, map[string]any{"name": "Bo"}},
	})

The default loader reads templates from a directory; custom loaders (memory,
HTTP fetch, Redis-cached) plug in through the WithLoader option, and custom
tags are expanded through an injected component lookup (WithComponents).
*/
package wicker
