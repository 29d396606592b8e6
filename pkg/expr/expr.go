package expr

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/breadboard/pkg/errors"
)

// MaxSlots is the number of input slots an expression node offers.
const MaxSlots = 5

// Slot names one of the five inputs of an expression node.
type Slot uint8

const (
	SlotA Slot = iota
	SlotB
	SlotC
	SlotD
	SlotE
)

// String returns the slot's printed name, "a" through "e".
func (s Slot) String() string {
	if s < MaxSlots {
		return string(rune('a' + s))
	}
	return "Slot(" + strconv.Itoa(int(s)) + ")"
}

// Expr is a node of an expression tree. Build values with [Input], [Int],
// [Float] and [New]; the fields are exported for inspection only.
type Expr struct {
	Op    Op
	Slot  Slot    // OpInput only
	Int   int64   // OpInt only
	Float float64 // OpFloat only
	Args  []*Expr
}

// Input returns a leaf reading slot s.
// It panics with a PROGRAM_ERROR if s is not one of SlotA..SlotE.
func Input(s Slot) *Expr {
	if s >= MaxSlots {
		errors.Panicf("slot %d out of range, only %d inputs exist", s, MaxSlots)
	}
	return &Expr{Op: OpInput, Slot: s}
}

// Int returns an integer literal leaf.
func Int(v int64) *Expr { return &Expr{Op: OpInt, Int: v} }

// Float returns a floating-point literal leaf.
// It panics with a PROGRAM_ERROR if v is NaN or infinite; the host has no
// literal for them.
func Float(v float64) *Expr {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		errors.Panicf("float literal %v is not finite", v)
	}
	return &Expr{Op: OpFloat, Float: v}
}

// New applies op to args.
// It panics with a PROGRAM_ERROR if op is a leaf, unknown, or given the
// wrong number of operands, or if any operand is nil.
func New(op Op, args ...*Expr) *Expr {
	if op >= opCount || opTable[op].style == styleLeaf {
		errors.Panicf("%s is not an operator", op)
	}
	if want := opTable[op].arity; len(args) != want {
		errors.Panicf("%s takes %d operands, got %d", op, want, len(args))
	}
	for i, a := range args {
		if a == nil {
			errors.Panicf("%s operand %d is nil", op, i)
		}
	}
	return &Expr{Op: op, Args: args}
}

// Clone returns a deep copy of e.
func (e *Expr) Clone() *Expr {
	c := *e
	if e.Args != nil {
		c.Args = make([]*Expr, len(e.Args))
		for i, a := range e.Args {
			c.Args[i] = a.Clone()
		}
	}
	return &c
}

// Walk calls fn for e and every node below it, parents first.
func (e *Expr) Walk(fn func(*Expr)) {
	fn(e)
	for _, a := range e.Args {
		a.Walk(fn)
	}
}

// Slots reports which input slots e reads.
func (e *Expr) Slots() [MaxSlots]bool {
	var used [MaxSlots]bool
	e.Walk(func(n *Expr) {
		if n.Op == OpInput {
			used[n.Slot] = true
		}
	})
	return used
}

// String renders e in the host's syntax.
func (e *Expr) String() string {
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (e *Expr) write(sb *strings.Builder) {
	info := opTable[e.Op]
	switch info.style {
	case styleLeaf:
		switch e.Op {
		case OpInput:
			sb.WriteString(e.Slot.String())
		case OpInt:
			sb.WriteString(strconv.FormatInt(e.Int, 10))
		case OpFloat:
			sb.WriteString(strconv.FormatFloat(e.Float, 'f', -1, 64))
		}
	case styleCall:
		sb.WriteString(info.token)
		sb.WriteByte('(')
		for i, a := range e.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			a.write(sb)
		}
		sb.WriteByte(')')
	case styleProperty:
		e.Args[0].group(sb)
		sb.WriteByte('.')
		sb.WriteString(info.token)
	case styleInfix:
		e.Args[0].group(sb)
		sb.WriteByte(' ')
		sb.WriteString(info.token)
		sb.WriteByte(' ')
		e.Args[1].group(sb)
	case stylePrefix:
		sb.WriteString(info.token)
		e.Args[0].group(sb)
	}
}

func (e *Expr) group(sb *strings.Builder) {
	sb.WriteByte('(')
	e.write(sb)
	sb.WriteByte(')')
}

// Join renders several expressions as the comma-separated list stored by an
// expression node, one expression per output.
func Join(exprs []*Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ",")
}
