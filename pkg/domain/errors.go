package domain

import "errors"

// ErrTemplateNotFound is returned when a template identifier does not resolve
// to a known resource in the configured loader.
var ErrTemplateNotFound = errors.New("template not found")

// ErrNoRootElement is returned when the fully substituted markup yields no
// element at all (empty or text-only output). Every rendered template must
// have a single element root so it can be attached to a parent container.
var ErrNoRootElement = errors.New("rendered markup has no root element")
