// Package nodelink renders breadboards as node-link diagrams.
//
// # Overview
//
// Each node becomes a box labelled with its index and host component name,
// and each wire becomes an arrow from the producing node to the consuming
// node. Arrows are coloured by value kind and labelled with the output and
// input positions they connect.
//
// # Usage
//
// Convert a board to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(b, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [Render] does both in one call and reports the render to the
// observability hooks.
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include parameters (constant values,
//     gate thresholds, expression text).
//
// The generated DOT uses left-to-right layout (rankdir=LR), matching the
// order nodes are placed on the host's editor canvas.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. The DOT text can also be processed with external Graphviz tools.
package nodelink
