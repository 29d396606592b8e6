package breadboard

import "testing"

func TestOperatorRendering(t *testing.T) {
	b := New()
	n, m, k := b.Constant(1), b.Constant(2), b.Constant(3)
	v, u := b.Position(), b.Velocity(SpeedForwards)
	r, q := b.RotationBetween(v, u), b.RotationFromEulerVector(v)
	// No node emits text; reuse a constant's address for rendering only.
	s := b.Concat(wireOf[Text](b, 0, 0), wireOf[Text](b, 1, 0))

	tests := []struct {
		name string
		fn   func() AnyWire
		text string
		kind ValueKind
	}{
		{"concat", func() AnyWire { return b.Concat(s, s) }, "(a) + (a)", KindText},
		{"sin", func() AnyWire { return b.Sin(n) }, "Sin(a)", KindNumber},
		{"atan2", func() AnyWire { return b.Atan2(n, m) }, "Atan(a, b)", KindNumber},
		{"pow", func() AnyWire { return b.Pow(n, m) }, "Pow(a, b)", KindNumber},
		{"max3", func() AnyWire { return b.Max3(n, m, k) }, "Max(a, b, c)", KindNumber},
		{"min2", func() AnyWire { return b.Min2(n, m) }, "Min(a, b)", KindNumber},
		{"absv", func() AnyWire { return b.AbsV(v) }, "Abs(a)", KindVector3},
		{"maxv", func() AnyWire { return b.MaxV(v) }, "Max(a)", KindNumber},
		{"minv", func() AnyWire { return b.MinV(v) }, "Min(a)", KindNumber},
		{"if", func() AnyWire { return If(b, n, v, u) }, "If(a, b, c)", KindVector3},
		{"if repeated", func() AnyWire { return If(b, n, n, m) }, "If(a, a, b)", KindNumber},
		{"vector", func() AnyWire { return b.Vector(n, m, k) }, "Vector(a, b, c)", KindVector3},
		{"rotation between", func() AnyWire { return b.RotationBetween(v, u) }, "FromToRot(a, b)", KindRotation},
		{"from euler", func() AnyWire { return b.RotationFromEuler(n, m, k) }, "FromEuler(a, b, c)", KindRotation},
		{"to euler", func() AnyWire { return b.RotationToEuler(r) }, "ToEuler(a)", KindVector3},
		{"angle", func() AnyWire { return b.RotationAngle(r) }, "Angle(a)", KindNumber},
		{"axis", func() AnyWire { return b.RotationAxis(r) }, "Axis(a)", KindVector3},
		{"angle between", func() AnyWire { return b.AngleBetween(v, u) }, "Angle(a, b)", KindNumber},
		{"set x", func() AnyWire { return b.SetX(v, n) }, "setX(a, b)", KindVector3},
		{"set y", func() AnyWire { return b.SetY(v, n) }, "setY(a, b)", KindVector3},
		{"set z", func() AnyWire { return b.SetZ(v, n) }, "setZ(a, b)", KindVector3},
		{"x", func() AnyWire { return b.X(v) }, "(a).x", KindNumber},
		{"sqr magnitude", func() AnyWire { return b.SqrMagnitude(v) }, "(a).sqrMagnitude", KindNumber},
		{"inverse", func() AnyWire { return b.RotationInverse(r) }, "(a).inverse", KindRotation},
		{"addv", func() AnyWire { return b.AddV(v, u) }, "(a) + (b)", KindVector3},
		{"remove instances", func() AnyWire { return b.RemoveInstances(s, s) }, "(a) - (a)", KindText},
		{"cross", func() AnyWire { return b.Cross(v, u) }, "(a) x (b)", KindVector3},
		{"dot", func() AnyWire { return b.Dot(v, u) }, "(a) * (b)", KindNumber},
		{"rotate", func() AnyWire { return b.Rotate(v, r) }, "(a) * (b)", KindVector3},
		{"scale", func() AnyWire { return b.Scale(n, v) }, "(a) * (b)", KindVector3},
		{"compose", func() AnyWire { return b.ComposeRotations(r, q) }, "(a) * (b)", KindRotation},
		{"scalar div", func() AnyWire { return b.ScalarDiv(v, n) }, "(a) / (b)", KindVector3},
		{"mod", func() AnyWire { return b.Mod(n, m) }, "(a) % (b)", KindNumber},
		{"eq", func() AnyWire { return b.Eq(n, m) }, "(a) = (b)", KindNumber},
		{"gte", func() AnyWire { return b.Gte(n, m) }, "(a) >= (b)", KindNumber},
		{"and", func() AnyWire { return b.And(n, m) }, "(a) & (b)", KindNumber},
		{"or", func() AnyWire { return b.Or(n, m) }, "(a) | (b)", KindNumber},
		{"not", func() AnyWire { return b.Not(n) }, "!(a)", KindNumber},
		{"false coalesce", func() AnyWire { return b.FalseCoalesce(n, m) }, "(a) or (b)", KindNumber},
		{"negate", func() AnyWire { return b.Negate(n) }, "-(a)", KindNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tt.fn()
			if w.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", w.Kind(), tt.kind)
			}
			if w.Address() != (Address{Node: b.Len() - 1}) {
				t.Errorf("Address() = %v, want output 0 of the last node", w.Address())
			}
			node := lastExpression(t, b)
			if got := node.Text(); got != tt.text {
				t.Errorf("Text() = %q, want %q", got, tt.text)
			}
			if got := node.Outputs(); len(got) != 1 || got[0] != tt.kind {
				t.Errorf("Outputs() = %v, want [%v]", got, tt.kind)
			}
		})
	}
}
