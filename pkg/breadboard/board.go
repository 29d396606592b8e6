package breadboard

import (
	"crypto/rand"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/breadboard/pkg/errors"
	"github.com/matzehuels/breadboard/pkg/expr"
)

// Layout places nodes on the host's editor canvas. Node i is drawn at
// x = Spacing*i, y = 0.
type Layout struct {
	Spacing float32
	Width   float32
	Height  float32
}

// DefaultLayout returns the layout the host's own editor uses for freshly
// placed nodes.
func DefaultLayout() Layout {
	return Layout{Spacing: 200, Width: 25, Height: 25}
}

// Option configures a [Board].
type Option func(*Board)

// WithLogger sets the logger used for debug output. A nil logger selects
// log.Default().
func WithLogger(l *log.Logger) Option { return func(b *Board) { b.logger = l } }

// WithRand sets the entropy source for wire identifiers. Tests use it to
// make serialization deterministic; the default is crypto/rand.
func WithRand(r io.Reader) Option { return func(b *Board) { b.rand = r } }

// WithLayout overrides [DefaultLayout].
func WithLayout(l Layout) Option { return func(b *Board) { b.layout = l } }

// Board is an append-only graph of nodes. The zero value is not usable; use
// [New].
type Board struct {
	nodes  []Node
	logger *log.Logger
	rand   io.Reader
	layout Layout
}

// New creates an empty board.
func New(opts ...Option) *Board {
	b := &Board{
		rand:   rand.Reader,
		layout: DefaultLayout(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = log.Default()
	}
	if b.rand == nil {
		b.rand = rand.Reader
	}
	return b
}

// Len returns the number of nodes on the board.
func (b *Board) Len() int { return len(b.nodes) }

// Node returns a copy of the node at index i. Changing the copy does not
// change the board.
// It panics with a PROGRAM_ERROR if i is out of range.
func (b *Board) Node(i int) Node {
	if i < 0 || i >= len(b.nodes) {
		errors.Panicf("node index %d out of range [0, %d)", i, len(b.nodes))
	}
	return detach(b.nodes[i])
}

// Nodes returns copies of the nodes in insertion order.
func (b *Board) Nodes() []Node {
	nodes := make([]Node, len(b.nodes))
	for i, n := range b.nodes {
		nodes[i] = detach(n)
	}
	return nodes
}

// detach copies the slices and expression trees a node shares with the
// board. The other node types are plain values.
func detach(n Node) Node {
	switch n := n.(type) {
	case Expression:
		exprs := make([]*expr.Expr, len(n.Exprs))
		for i, e := range n.Exprs {
			exprs[i] = e.Clone()
		}
		return Expression{Slots: slices.Clone(n.Slots), Exprs: exprs, Kinds: slices.Clone(n.Kinds)}
	case WeightedSum:
		n.Terms = slices.Clone(n.Terms)
		return n
	}
	return n
}

// Layout returns the board's canvas layout.
func (b *Board) Layout() Layout { return b.layout }

// check rejects wires that were not issued by b.
func (b *Board) check(w AnyWire) Address {
	switch owner := w.owner(); {
	case owner == nil:
		errors.Panicf("%s wire is not attached to any board", w.Kind())
	case owner != b:
		errors.Panicf("%s wire %s belongs to a different board", w.Kind(), w.Address())
	}
	return w.Address()
}

// add appends n and returns its index.
func (b *Board) add(n Node) int {
	b.nodes = append(b.nodes, n)
	i := len(b.nodes) - 1
	b.logger.Debug("node appended", "index", i, "node", n.Name(), "inputs", len(n.Inputs()), "outputs", len(n.Outputs()))
	return i
}

func wireOf[K Kind](b *Board, node, output int) Wire[K] {
	return Wire[K]{addr: Address{Node: node, Output: output}, board: b}
}

// addSingle appends a node with one output of kind K.
func addSingle[K Kind](b *Board, n Node) Wire[K] {
	return wireOf[K](b, b.add(n), 0)
}
