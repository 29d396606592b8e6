// Package render holds visualisations of breadboards.
//
// The [nodelink] subpackage draws a board's wiring as a Graphviz diagram,
// which is the quickest way to check what a builder function produced
// before loading the prefab in the host.
//
// [nodelink]: github.com/matzehuels/breadboard/pkg/render/nodelink
package render
