package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/breadboard/pkg/breadboard"
	"github.com/matzehuels/breadboard/pkg/errors"
	"github.com/matzehuels/breadboard/pkg/observability"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes node parameters in labels.
	// When false, only the index and component name are shown.
	Detailed bool
}

var kindColors = map[breadboard.ValueKind]string{
	breadboard.KindNumber:   "black",
	breadboard.KindVector3:  "blue",
	breadboard.KindRotation: "darkgreen",
	breadboard.KindText:     "purple",
}

// ToDOT converts a board to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(b *breadboard.Board, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	nodes := b.Nodes()
	for i, n := range nodes {
		fmt.Fprintf(&buf, "  n%d [label=%q];\n", i, fmtLabel(i, n, opts.Detailed))
	}

	buf.WriteString("\n")
	for i, n := range nodes {
		for j, in := range n.Inputs() {
			kind := nodes[in.Node].Outputs()[in.Output]
			fmt.Fprintf(&buf, "  n%d -> n%d [label=\"%d:%d\", color=%s];\n",
				in.Node, i, in.Output, j, kindColors[kind])
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(i int, n breadboard.Node, detailed bool) string {
	label := fmt.Sprintf("%d: %s", i, n.Name())
	if !detailed {
		return label
	}
	if params := fmtParams(n); params != "" {
		label += "\n" + params
	}
	return label
}

func fmtParams(n breadboard.Node) string {
	f := func(v float32) string { return strconv.FormatFloat(float64(v), 'f', -1, 32) }

	switch n := n.(type) {
	case breadboard.Constant:
		return f(n.Value)
	case breadboard.RandomRange:
		return fmt.Sprintf("[%s, %s]", f(n.Min), f(n.Max))
	case breadboard.Altitude:
		return n.Mode.String()
	case breadboard.Speed:
		return n.Mode.String()
	case breadboard.Velocity:
		return n.Mode.String()
	case breadboard.WeightedSum:
		return "factor: " + f(n.Multiplier)
	case breadboard.Gate:
		return fmt.Sprintf("threshold: %s\nopen: %s", f(n.Threshold), f(n.OpenValue))
	case breadboard.Expression:
		return strings.ReplaceAll(n.Text(), ",", ",\n")
	}
	return ""
}

// Render converts b to DOT and renders it to SVG, reporting the render to
// the registered observability hooks.
func Render(ctx context.Context, b *breadboard.Board, opts Options) ([]byte, error) {
	hooks := observability.Render()
	start := time.Now()
	hooks.OnRenderStart(ctx, "svg", b.Len())

	svg, err := RenderSVG(ctx, ToDOT(b, opts))
	hooks.OnRenderComplete(ctx, "svg", len(svg), time.Since(start), err)
	return svg, err
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
