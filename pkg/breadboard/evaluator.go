package breadboard

import (
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/breadboard/pkg/blueprint"
	"github.com/matzehuels/breadboard/pkg/errors"
	"github.com/matzehuels/breadboard/pkg/expr"
)

// Expression is an expression node: one expression per output over a shared
// set of at most five input slots.
type Expression struct {
	Slots []Address    // slot i reads Slots[i]
	Exprs []*expr.Expr // one per output
	Kinds []ValueKind  // output kinds, parallel to Exprs
}

func (Expression) TypeID() uuid.UUID      { return evaluatorType }
func (Expression) Name() string           { return "Evaluator" }
func (n Expression) Outputs() []ValueKind { return slices.Clone(n.Kinds) }
func (n Expression) Inputs() []Address    { return slices.Clone(n.Slots) }

// Text returns the comma-joined expression list stored for the host.
func (n Expression) Text() string { return expr.Join(n.Exprs) }

func (n Expression) Params() *blueprint.Section {
	return blueprint.NewSection().Set(0, blueprint.String(n.Text()))
}

// Evaluator assembles one expression node. Bind inputs with
// [Evaluator.Input], add outputs with [Emit], then append the node with
// [Evaluator.Commit].
type Evaluator struct {
	board     *Board
	slots     []Address
	exprs     []*expr.Expr
	kinds     []ValueKind
	node      int
	committed bool
}

// NewEvaluator starts a new expression node on b.
func (b *Board) NewEvaluator() *Evaluator {
	return &Evaluator{board: b, node: -1}
}

// Slot returns the slot bound to w, binding the next free slot if w is not
// bound yet. It reports false when all slots are taken by other wires.
// It panics with a PROGRAM_ERROR if w belongs to a different board.
func (ev *Evaluator) Slot(w AnyWire) (expr.Slot, bool) {
	ev.mutable()
	addr := ev.board.check(w)
	if i := slices.Index(ev.slots, addr); i >= 0 {
		return expr.Slot(i), true
	}
	if len(ev.slots) == expr.MaxSlots {
		return 0, false
	}
	ev.slots = append(ev.slots, addr)
	return expr.Slot(len(ev.slots) - 1), true
}

// Input returns a slot leaf reading w. Repeated calls with the same wire
// return the same slot.
// It panics with a PROGRAM_ERROR if w belongs to a different board or if
// five other wires are already bound.
func (ev *Evaluator) Input(w AnyWire) *expr.Expr {
	s, ok := ev.Slot(w)
	if !ok {
		errors.Panicf("no slot available for %s: expression node already reads %d wires", w.Address(), expr.MaxSlots)
	}
	return expr.Input(s)
}

// Len returns the number of outputs added so far.
func (ev *Evaluator) Len() int { return len(ev.exprs) }

// Commit appends the node to the board and returns its index.
// It panics with a PROGRAM_ERROR if no output was added or the node was
// already committed.
func (ev *Evaluator) Commit() int {
	ev.mutable()
	if len(ev.exprs) == 0 {
		errors.Panicf("expression node has no outputs")
	}
	ev.committed = true
	ev.node = ev.board.add(Expression{
		Slots: ev.slots,
		Exprs: ev.exprs,
		Kinds: ev.kinds,
	})
	return ev.node
}

func (ev *Evaluator) mutable() {
	if ev.committed {
		errors.Panicf("expression node %d is already committed", ev.node)
	}
}

// Output is a pending output of an [Evaluator]. It resolves to a wire once
// the evaluator is committed.
type Output[K Kind] struct {
	ev    *Evaluator
	index int
}

// Emit adds a copy of e as the next output of ev, producing a value of
// kind K. Later changes to e do not reach the board.
// It panics with a PROGRAM_ERROR if e reads a slot that has no wire bound.
func Emit[K Kind](ev *Evaluator, e *expr.Expr) Output[K] {
	ev.mutable()
	for s, used := range e.Slots() {
		if used && s >= len(ev.slots) {
			errors.Panicf("expression %s reads slot %s but only %d inputs are bound", e, expr.Slot(s), len(ev.slots))
		}
	}
	ev.exprs = append(ev.exprs, e.Clone())
	ev.kinds = append(ev.kinds, kindOf[K]())
	return Output[K]{ev: ev, index: len(ev.exprs) - 1}
}

// Index returns the output index on the expression node.
func (o Output[K]) Index() int { return o.index }

// Wire returns the committed output.
// It panics with a PROGRAM_ERROR if the evaluator is not committed yet.
func (o Output[K]) Wire() Wire[K] {
	if o.ev == nil || !o.ev.committed {
		errors.Panicf("output %d read before its expression node was committed", o.index)
	}
	return wireOf[K](o.ev.board, o.ev.node, o.index)
}

// NewVector appends an expression node emitting the literal vector
// (x, y, z). It reads no wires.
// It panics with a PROGRAM_ERROR if a component is NaN or infinite.
func (b *Board) NewVector(x, y, z float64) Wire[Vector3] {
	ev := b.NewEvaluator()
	out := Emit[Vector3](ev, expr.New(expr.OpVector, expr.Float(x), expr.Float(y), expr.Float(z)))
	ev.Commit()
	return out.Wire()
}
