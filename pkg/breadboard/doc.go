// Package breadboard builds typed signal graphs and compiles them into the
// host's blueprint container.
//
// # Overview
//
// A [Board] is an append-only list of nodes. Every builder call appends
// exactly one node and returns typed [Wire] handles to its outputs:
//
//	b := breadboard.New()
//	speed := b.Speed(breadboard.SpeedForwards)
//	limit := b.Constant(120)
//	over := b.Gt(speed, limit)
//
// Because a node can only consume wires returned by earlier calls, a board
// is acyclic by construction and node indices never change.
//
// # Value Kinds
//
// Wires carry one of four kinds: [Number], [Vector3], [Rotation] or [Text].
// The kind is a type parameter of [Wire], so wiring a Vector3 into a
// Number-only input is a compile error rather than a runtime check.
//
// Several operators share one expression token and differ by operand kind:
// [Board.Mul] multiplies numbers, [Board.Dot] takes the dot product of two
// vectors, [Board.Rotate] applies a rotation to a vector, [Board.Scale]
// scales a vector and [Board.ComposeRotations] composes two rotations with
// the right-hand operand applied first. There is deliberately no division of
// a vector by a rotation; rotate by [Board.RotationInverse] instead.
//
// # Expression Nodes
//
// Algebraic operators compile to expression nodes. An [Evaluator] binds up
// to five distinct input wires to the slots a..e (a wire used twice takes
// one slot) and may produce several outputs over that shared slot set:
//
//	ev := b.NewEvaluator()
//	v := ev.Input(velocity)
//	x := breadboard.Emit[breadboard.Number](ev, expr.New(expr.OpGetX, v))
//	y := breadboard.Emit[breadboard.Number](ev, expr.New(expr.OpGetY, v))
//	ev.Commit()
//	use(x.Wire(), y.Wire())
//
// # Parameters
//
// Numeric node parameters outside the host's accepted range are clamped to
// the nearest bound, never rejected. Constants, gate thresholds and random
// ranges accept [-10000, 10000]; the multiply node's factor accepts
// [-100, 100].
//
// # Misuse
//
// Contract violations panic with a PROGRAM_ERROR (see package errors): a
// wire passed to a board that did not create it, a sixth distinct input to
// one expression node, an expression reading an unbound slot, or a board
// too large for the container's identifier fields.
//
// # Serialization
//
// [Board.Blueprint] assigns a fresh random identifier to every node output
// and to every input descriptor, then lays the nodes out as sections of
// block 0. Identifiers are drawn anew on each call, so two serializations of
// one board differ byte-wise but are structurally equivalent.
//
// A Board is not safe for concurrent use.
package breadboard
