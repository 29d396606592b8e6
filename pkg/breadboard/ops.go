package breadboard

import "github.com/matzehuels/breadboard/pkg/expr"

// unary, binary and ternary append a single-output expression node applying
// op to its operands in slot order.

func unary[R, A Kind](b *Board, op expr.Op, a Wire[A]) Wire[R] {
	ev := b.NewEvaluator()
	out := Emit[R](ev, expr.New(op, ev.Input(a)))
	ev.Commit()
	return out.Wire()
}

func binary[R, A, B Kind](b *Board, op expr.Op, x Wire[A], y Wire[B]) Wire[R] {
	ev := b.NewEvaluator()
	out := Emit[R](ev, expr.New(op, ev.Input(x), ev.Input(y)))
	ev.Commit()
	return out.Wire()
}

func ternary[R, A, B, C Kind](b *Board, op expr.Op, x Wire[A], y Wire[B], z Wire[C]) Wire[R] {
	ev := b.NewEvaluator()
	out := Emit[R](ev, expr.New(op, ev.Input(x), ev.Input(y), ev.Input(z)))
	ev.Commit()
	return out.Wire()
}

// If selects t while cond is truthy and f otherwise.
func If[K Kind](b *Board, cond Wire[Number], t, f Wire[K]) Wire[K] {
	return ternary[K](b, expr.OpIf, cond, t, f)
}

// Scalar functions.

func (b *Board) Sin(angle Wire[Number]) Wire[Number]    { return unary[Number](b, expr.OpSin, angle) }
func (b *Board) Cos(angle Wire[Number]) Wire[Number]    { return unary[Number](b, expr.OpCos, angle) }
func (b *Board) Tan(angle Wire[Number]) Wire[Number]    { return unary[Number](b, expr.OpTan, angle) }
func (b *Board) Sqrt(n Wire[Number]) Wire[Number]       { return unary[Number](b, expr.OpSqrt, n) }
func (b *Board) Asin(n Wire[Number]) Wire[Number]       { return unary[Number](b, expr.OpAsin, n) }
func (b *Board) Acos(n Wire[Number]) Wire[Number]       { return unary[Number](b, expr.OpAcos, n) }
func (b *Board) Atan(n Wire[Number]) Wire[Number]       { return unary[Number](b, expr.OpAtan, n) }
func (b *Board) Exp(exponent Wire[Number]) Wire[Number] { return unary[Number](b, expr.OpExp, exponent) }
func (b *Board) Log(n Wire[Number]) Wire[Number]        { return unary[Number](b, expr.OpLog, n) }
func (b *Board) Abs(n Wire[Number]) Wire[Number]        { return unary[Number](b, expr.OpAbs, n) }
func (b *Board) Sign(n Wire[Number]) Wire[Number]       { return unary[Number](b, expr.OpSign, n) }
func (b *Board) Round(n Wire[Number]) Wire[Number]      { return unary[Number](b, expr.OpRound, n) }
func (b *Board) Floor(n Wire[Number]) Wire[Number]      { return unary[Number](b, expr.OpFloor, n) }
func (b *Board) Ceil(n Wire[Number]) Wire[Number]       { return unary[Number](b, expr.OpCeil, n) }
func (b *Board) Negate(n Wire[Number]) Wire[Number]     { return unary[Number](b, expr.OpNegate, n) }

// Atan2 returns the angle of the point (x, y).
func (b *Board) Atan2(x, y Wire[Number]) Wire[Number] {
	return binary[Number](b, expr.OpAtan2, x, y)
}

func (b *Board) Pow(base, exponent Wire[Number]) Wire[Number] {
	return binary[Number](b, expr.OpPow, base, exponent)
}

func (b *Board) Max2(x, y Wire[Number]) Wire[Number] { return binary[Number](b, expr.OpMax2, x, y) }
func (b *Board) Min2(x, y Wire[Number]) Wire[Number] { return binary[Number](b, expr.OpMin2, x, y) }

func (b *Board) Max3(x, y, z Wire[Number]) Wire[Number] {
	return ternary[Number](b, expr.OpMax3, x, y, z)
}

func (b *Board) Min3(x, y, z Wire[Number]) Wire[Number] {
	return ternary[Number](b, expr.OpMin3, x, y, z)
}

// Vector functions.

// AbsV takes the absolute value of each component.
func (b *Board) AbsV(v Wire[Vector3]) Wire[Vector3] { return unary[Vector3](b, expr.OpAbs, v) }

// MaxV returns the largest component of v.
func (b *Board) MaxV(v Wire[Vector3]) Wire[Number] { return unary[Number](b, expr.OpMaxV, v) }

// MinV returns the smallest component of v.
func (b *Board) MinV(v Wire[Vector3]) Wire[Number] { return unary[Number](b, expr.OpMinV, v) }

// Vector assembles a vector from three numbers.
func (b *Board) Vector(x, y, z Wire[Number]) Wire[Vector3] {
	return ternary[Vector3](b, expr.OpVector, x, y, z)
}

func (b *Board) SetX(v Wire[Vector3], x Wire[Number]) Wire[Vector3] {
	return binary[Vector3](b, expr.OpSetX, v, x)
}

func (b *Board) SetY(v Wire[Vector3], y Wire[Number]) Wire[Vector3] {
	return binary[Vector3](b, expr.OpSetY, v, y)
}

func (b *Board) SetZ(v Wire[Vector3], z Wire[Number]) Wire[Vector3] {
	return binary[Vector3](b, expr.OpSetZ, v, z)
}

func (b *Board) X(v Wire[Vector3]) Wire[Number]            { return unary[Number](b, expr.OpGetX, v) }
func (b *Board) Y(v Wire[Vector3]) Wire[Number]            { return unary[Number](b, expr.OpGetY, v) }
func (b *Board) Z(v Wire[Vector3]) Wire[Number]            { return unary[Number](b, expr.OpGetZ, v) }
func (b *Board) Magnitude(v Wire[Vector3]) Wire[Number]    { return unary[Number](b, expr.OpMagnitude, v) }
func (b *Board) SqrMagnitude(v Wire[Vector3]) Wire[Number] { return unary[Number](b, expr.OpSqrMagnitude, v) }

// AngleBetween returns the angle between two vectors in degrees.
func (b *Board) AngleBetween(from, to Wire[Vector3]) Wire[Number] {
	return binary[Number](b, expr.OpAngleBetween, from, to)
}

// Rotation functions.

// RotationBetween returns the rotation turning from onto to.
func (b *Board) RotationBetween(from, to Wire[Vector3]) Wire[Rotation] {
	return binary[Rotation](b, expr.OpFromToRot, from, to)
}

func (b *Board) RotationFromEuler(pitch, yaw, roll Wire[Number]) Wire[Rotation] {
	return ternary[Rotation](b, expr.OpFromEuler, pitch, yaw, roll)
}

func (b *Board) RotationFromEulerVector(v Wire[Vector3]) Wire[Rotation] {
	return unary[Rotation](b, expr.OpFromEulerV, v)
}

func (b *Board) RotationToEuler(r Wire[Rotation]) Wire[Vector3] {
	return unary[Vector3](b, expr.OpToEulerV, r)
}

// RotationAngle returns the rotation's angle. The host derives it from the
// real part of the quaternion.
func (b *Board) RotationAngle(r Wire[Rotation]) Wire[Number] {
	return unary[Number](b, expr.OpAngle, r)
}

func (b *Board) RotationAxis(r Wire[Rotation]) Wire[Vector3] {
	return unary[Vector3](b, expr.OpAxis, r)
}

func (b *Board) RotationInverse(r Wire[Rotation]) Wire[Rotation] {
	return unary[Rotation](b, expr.OpInverse, r)
}

// Arithmetic.

func (b *Board) Add(x, y Wire[Number]) Wire[Number]     { return binary[Number](b, expr.OpAdd, x, y) }
func (b *Board) AddV(x, y Wire[Vector3]) Wire[Vector3]  { return binary[Vector3](b, expr.OpAdd, x, y) }
func (b *Board) Sub(x, y Wire[Number]) Wire[Number]     { return binary[Number](b, expr.OpSub, x, y) }
func (b *Board) SubV(x, y Wire[Vector3]) Wire[Vector3]  { return binary[Vector3](b, expr.OpSub, x, y) }
func (b *Board) Cross(x, y Wire[Vector3]) Wire[Vector3] { return binary[Vector3](b, expr.OpCross, x, y) }
func (b *Board) Mul(x, y Wire[Number]) Wire[Number]     { return binary[Number](b, expr.OpMul, x, y) }
func (b *Board) Div(x, y Wire[Number]) Wire[Number]     { return binary[Number](b, expr.OpDiv, x, y) }
func (b *Board) Mod(x, y Wire[Number]) Wire[Number]     { return binary[Number](b, expr.OpMod, x, y) }

// Concat joins two strings.
func (b *Board) Concat(x, y Wire[Text]) Wire[Text] { return binary[Text](b, expr.OpAdd, x, y) }

// RemoveInstances removes the first occurrence of y from x.
func (b *Board) RemoveInstances(x, y Wire[Text]) Wire[Text] {
	return binary[Text](b, expr.OpSub, x, y)
}

// Dot returns the dot product of two vectors.
func (b *Board) Dot(x, y Wire[Vector3]) Wire[Number] { return binary[Number](b, expr.OpMul, x, y) }

// Rotate applies r to v.
func (b *Board) Rotate(v Wire[Vector3], r Wire[Rotation]) Wire[Vector3] {
	return binary[Vector3](b, expr.OpMul, v, r)
}

// Scale multiplies every component of v by n.
func (b *Board) Scale(n Wire[Number], v Wire[Vector3]) Wire[Vector3] {
	return binary[Vector3](b, expr.OpMul, n, v)
}

// ComposeRotations returns the rotation applying y, then x.
func (b *Board) ComposeRotations(x, y Wire[Rotation]) Wire[Rotation] {
	return binary[Rotation](b, expr.OpMul, x, y)
}

// ScalarDiv divides every component of v by n.
func (b *Board) ScalarDiv(v Wire[Vector3], n Wire[Number]) Wire[Vector3] {
	return binary[Vector3](b, expr.OpDiv, v, n)
}

// Comparison and logic. Results are 1 for true and 0 for false.

func (b *Board) Eq(x, y Wire[Number]) Wire[Number]  { return binary[Number](b, expr.OpEq, x, y) }
func (b *Board) Ne(x, y Wire[Number]) Wire[Number]  { return binary[Number](b, expr.OpNe, x, y) }
func (b *Board) Gt(x, y Wire[Number]) Wire[Number]  { return binary[Number](b, expr.OpGt, x, y) }
func (b *Board) Gte(x, y Wire[Number]) Wire[Number] { return binary[Number](b, expr.OpGte, x, y) }
func (b *Board) Lt(x, y Wire[Number]) Wire[Number]  { return binary[Number](b, expr.OpLt, x, y) }
func (b *Board) Lte(x, y Wire[Number]) Wire[Number] { return binary[Number](b, expr.OpLte, x, y) }
func (b *Board) And(x, y Wire[Number]) Wire[Number] { return binary[Number](b, expr.OpAnd, x, y) }
func (b *Board) Or(x, y Wire[Number]) Wire[Number]  { return binary[Number](b, expr.OpOr, x, y) }
func (b *Board) Not(n Wire[Number]) Wire[Number]    { return unary[Number](b, expr.OpNot, n) }

// FalseCoalesce yields x when it is truthy and y otherwise.
func (b *Board) FalseCoalesce(x, y Wire[Number]) Wire[Number] {
	return binary[Number](b, expr.OpFalseCoalesce, x, y)
}
