// Package expr defines the expression language evaluated by expression
// nodes.
//
// An [Expr] is a small tree. Leaves are literals ([Int], [Float]) or one of
// five input slots ([Input] with [SlotA]..[SlotE]). Interior nodes apply an
// [Op] with a fixed arity of one to three operands:
//
//	e := expr.New(expr.OpMul, expr.Input(expr.SlotA), expr.Float(2))
//	fmt.Println(e) // (a) * (2)
//
// The printed form is what the host parses: every operand of an operator is
// wrapped in parentheses and slots print as lowercase letters. Several ops
// share a printed name and differ only in arity or operand kinds (Max with
// two, three or one vector operand; Atan with one or two).
//
// The package is untyped. Which value kinds an operator accepts is enforced
// by the typed builders in package breadboard.
package expr
