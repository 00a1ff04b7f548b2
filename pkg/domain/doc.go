/*
Package domain contains the core domain models for the Wicker render engine.

It defines the render context, the template tree produced by the dialect
parsers, and the typed errors shared across the engine. This package is kept
pure and free of I/O so the evaluation semantics can be tested in isolation,
following Hexagonal Architecture principles.

# Key Entities

  - Context: The data mapping supplied to a render call, against which all
    dot paths resolve.
  - Node: A tagged variant of the parsed template tree (Literal, Variable,
    Conditional, Loop).
  - RenderHooks: Observability callbacks for the render lifecycle and for
    non-fatal diagnostics.
*/
package domain
