package expr

import "fmt"

// Op identifies an operator or leaf kind.
type Op uint8

const (
	// Leaves
	OpInput Op = iota
	OpInt
	OpFloat

	// Scalar functions
	OpSin
	OpCos
	OpTan
	OpSqrt
	OpAsin
	OpAcos
	OpAtan
	OpAtan2
	OpExp
	OpLog
	OpPow
	OpAbs // componentwise on vectors
	OpSign
	OpRound
	OpFloor
	OpCeil
	OpMax2
	OpMax3
	OpMaxV // largest vector component
	OpMin2
	OpMin3
	OpMinV // smallest vector component
	OpIf

	// Vector and rotation functions
	OpVector
	OpFromToRot
	OpFromEuler
	OpFromEulerV
	OpToEulerV
	OpAngle // rotation angle, taken from the real part of the quaternion
	OpAxis
	OpAngleBetween
	OpSetX
	OpSetY
	OpSetZ

	// Previous-frame outputs of the node itself, by output index
	OpOutputV
	OpOutput

	// Properties
	OpGetX
	OpGetY
	OpGetZ
	OpMagnitude
	OpSqrMagnitude
	OpInverse

	// Binary operators
	OpAdd
	OpSub
	OpCross
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNe
	OpGt
	OpGte
	OpLt
	OpLte
	OpAnd
	OpOr
	OpFalseCoalesce

	// Unary operators
	OpNot
	OpNegate

	opCount
)

// style selects how an operator is printed.
type style uint8

const (
	styleLeaf     style = iota
	styleCall           // Name(a, b)
	styleProperty       // (a).name
	styleInfix          // (a) sym (b)
	stylePrefix         // sym(a)
)

type opInfo struct {
	ident string // Go-side name, for diagnostics
	token string // printed name
	arity int
	style style
}

var opTable = [opCount]opInfo{
	OpInput: {"Input", "", 0, styleLeaf},
	OpInt:   {"Int", "", 0, styleLeaf},
	OpFloat: {"Float", "", 0, styleLeaf},

	OpSin:   {"Sin", "Sin", 1, styleCall},
	OpCos:   {"Cos", "Cos", 1, styleCall},
	OpTan:   {"Tan", "Tan", 1, styleCall},
	OpSqrt:  {"Sqrt", "Sqrt", 1, styleCall},
	OpAsin:  {"Asin", "Asin", 1, styleCall},
	OpAcos:  {"Acos", "Acos", 1, styleCall},
	OpAtan:  {"Atan", "Atan", 1, styleCall},
	OpAtan2: {"Atan2", "Atan", 2, styleCall},
	OpExp:   {"Exp", "Exp", 1, styleCall},
	OpLog:   {"Log", "Log", 1, styleCall},
	OpPow:   {"Pow", "Pow", 2, styleCall},
	OpAbs:   {"Abs", "Abs", 1, styleCall},
	OpSign:  {"Sign", "Sign", 1, styleCall},
	OpRound: {"Round", "Round", 1, styleCall},
	OpFloor: {"Floor", "Floor", 1, styleCall},
	OpCeil:  {"Ceil", "Ceil", 1, styleCall},
	OpMax2:  {"Max2", "Max", 2, styleCall},
	OpMax3:  {"Max3", "Max", 3, styleCall},
	OpMaxV:  {"MaxV", "Max", 1, styleCall},
	OpMin2:  {"Min2", "Min", 2, styleCall},
	OpMin3:  {"Min3", "Min", 3, styleCall},
	OpMinV:  {"MinV", "Min", 1, styleCall},
	OpIf:    {"If", "If", 3, styleCall},

	OpVector:       {"Vector", "Vector", 3, styleCall},
	OpFromToRot:    {"FromToRot", "FromToRot", 2, styleCall},
	OpFromEuler:    {"FromEuler", "FromEuler", 3, styleCall},
	OpFromEulerV:   {"FromEulerV", "FromEuler", 1, styleCall},
	OpToEulerV:     {"ToEulerV", "ToEuler", 1, styleCall},
	OpAngle:        {"Angle", "Angle", 1, styleCall},
	OpAxis:         {"Axis", "Axis", 1, styleCall},
	OpAngleBetween: {"AngleBetween", "Angle", 2, styleCall},
	OpSetX:         {"SetX", "setX", 2, styleCall},
	OpSetY:         {"SetY", "setY", 2, styleCall},
	OpSetZ:         {"SetZ", "setZ", 2, styleCall},

	OpOutputV: {"OutputV", "outputV", 1, styleCall},
	OpOutput:  {"Output", "output", 1, styleCall},

	OpGetX:         {"GetX", "x", 1, styleProperty},
	OpGetY:         {"GetY", "y", 1, styleProperty},
	OpGetZ:         {"GetZ", "z", 1, styleProperty},
	OpMagnitude:    {"Magnitude", "magnitude", 1, styleProperty},
	OpSqrMagnitude: {"SqrMagnitude", "sqrMagnitude", 1, styleProperty},
	OpInverse:      {"Inverse", "inverse", 1, styleProperty},

	OpAdd:           {"Add", "+", 2, styleInfix},
	OpSub:           {"Sub", "-", 2, styleInfix},
	OpCross:         {"Cross", "x", 2, styleInfix},
	OpMul:           {"Mul", "*", 2, styleInfix},
	OpDiv:           {"Div", "/", 2, styleInfix},
	OpMod:           {"Mod", "%", 2, styleInfix},
	OpEq:            {"Eq", "=", 2, styleInfix},
	OpNe:            {"Ne", "!=", 2, styleInfix},
	OpGt:            {"Gt", ">", 2, styleInfix},
	OpGte:           {"Gte", ">=", 2, styleInfix},
	OpLt:            {"Lt", "<", 2, styleInfix},
	OpLte:           {"Lte", "<=", 2, styleInfix},
	OpAnd:           {"And", "&", 2, styleInfix},
	OpOr:            {"Or", "|", 2, styleInfix},
	OpFalseCoalesce: {"FalseCoalesce", "or", 2, styleInfix},

	OpNot:    {"Not", "!", 1, stylePrefix},
	OpNegate: {"Negate", "-", 1, stylePrefix},
}

// String returns the operator's Go-side name.
func (op Op) String() string {
	if op < opCount {
		return opTable[op].ident
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Arity returns the number of operands op takes. Leaves have arity 0.
func (op Op) Arity() int {
	if op < opCount {
		return opTable[op].arity
	}
	return -1
}

// Token returns the name the host parses for op.
func (op Op) Token() string {
	if op < opCount {
		return opTable[op].token
	}
	return ""
}

// Ops returns every operator that takes operands, in declaration order.
func Ops() []Op {
	ops := make([]Op, 0, opCount)
	for op := OpSin; op < opCount; op++ {
		ops = append(ops, op)
	}
	return ops
}
