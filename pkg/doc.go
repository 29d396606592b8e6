// Package pkg provides the libraries behind the breadboard tool.
//
// # Overview
//
// Breadboard turns a typed Go description of a signal graph into the binary
// blueprint container the host game loads, wrapped in a prefab document.
// The pkg directory is organized into three areas:
//
//  1. Building: [breadboard] (typed wires, nodes, expression evaluators) and
//     [expr] (the expression AST evaluator nodes carry)
//  2. Encoding: [blueprint] (the block/section/entry container) and [codec]
//     (its legacy byte-level primitives)
//  3. Delivery: [prefab] (document packaging and export), [sink] (file,
//     redis and mongo storage) and [config] (TOML settings)
//
// # Data Flow
//
//	builder calls on a breadboard.Board
//	         ↓
//	    [breadboard] assigns wire identifiers, lays out sections
//	         ↓
//	    [blueprint] encodes the container (base64)
//	         ↓
//	    [prefab] wraps it in the host document
//	         ↓
//	    [sink] stores <name>.blueprint
//
// # Quick Start
//
//	b := breadboard.New()
//	t := b.TargetInfo()
//	b.Switch(b.Constant(1), t.Present)
//
//	s, _ := sink.NewFileSink("out")
//	exp := prefab.NewExporter(nil, s, nil)
//	res, err := exp.Export(ctx, "Trigger", b)
//
// # Supporting Packages
//
//   - [errors]: coded errors and the PROGRAM_ERROR panic used for misuse
//   - [observability]: export and render hooks for metrics or tracing
//   - [render/nodelink]: Graphviz diagrams of a board's wiring
//   - [buildinfo]: version information injected at link time
//
// [breadboard]: https://pkg.go.dev/github.com/matzehuels/breadboard/pkg/breadboard
// [expr]: https://pkg.go.dev/github.com/matzehuels/breadboard/pkg/expr
// [blueprint]: https://pkg.go.dev/github.com/matzehuels/breadboard/pkg/blueprint
// [codec]: https://pkg.go.dev/github.com/matzehuels/breadboard/pkg/codec
// [prefab]: https://pkg.go.dev/github.com/matzehuels/breadboard/pkg/prefab
// [sink]: https://pkg.go.dev/github.com/matzehuels/breadboard/pkg/sink
// [config]: https://pkg.go.dev/github.com/matzehuels/breadboard/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/breadboard/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/breadboard/pkg/observability
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/breadboard/pkg/render/nodelink
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/breadboard/pkg/buildinfo
package pkg
