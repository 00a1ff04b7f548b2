package domain

import (
	"context"
	"time"
)

// DiagnosticKind categorizes a non-fatal warning emitted during a render.
type DiagnosticKind string

const (
	// DiagnosticLoopSource: a loop key was missing or not a sequence.
	// The directive was replaced with empty content and the render continued.
	DiagnosticLoopSource DiagnosticKind = "loop_source_invalid"
	// DiagnosticComponentDepth: component expansion hit its recursion cap.
	DiagnosticComponentDepth DiagnosticKind = "component_depth_exceeded"
)

// RenderEvent describes one render call for observability hooks.
type RenderEvent struct {
	Template string        `json:"template"`
	Duration time.Duration `json:"duration,omitempty"`
	Err      error         `json:"-"`
}

// DiagnosticEvent describes a recovered, non-fatal condition.
type DiagnosticEvent struct {
	Kind    DiagnosticKind `json:"kind"`
	Path    string         `json:"path,omitempty"`
	Dialect Dialect        `json:"dialect,omitempty"`
}

// RenderHooks defines callbacks for engine observability.
// Hooks never alter control flow; a nil field is simply skipped.
type RenderHooks struct {
	OnRenderStart func(context.Context, *RenderEvent)
	OnRender      func(context.Context, *RenderEvent)
	OnDiagnostic  func(context.Context, *DiagnosticEvent)
}
