package breadboard

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/matzehuels/breadboard/pkg/blueprint"
	"github.com/matzehuels/breadboard/pkg/errors"
	"github.com/matzehuels/breadboard/pkg/expr"
)

func wantProgramError(t *testing.T, fn func()) {
	t.Helper()
	if err := errors.Catch(fn); !errors.Is(err, errors.ErrCodeProgram) {
		t.Errorf("error = %v, want PROGRAM_ERROR", err)
	}
}

func param(t *testing.T, n Node, id blueprint.EntryID) blueprint.Value {
	t.Helper()
	v, ok := n.Params().Get(id)
	if !ok {
		t.Fatalf("%s has no parameter %d", n.Name(), id)
	}
	return v
}

func TestConstantClamping(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{5, 5},
		{20000, 10000},
		{-20000, -10000},
		{10000, 10000},
	}

	for _, tt := range tests {
		b := New()
		w := b.Constant(tt.in)
		if got := param(t, b.Node(w.Address().Node), 0); got != blueprint.Float32(tt.want) {
			t.Errorf("Constant(%v) stored %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRandomRangeClamping(t *testing.T) {
	tests := []struct {
		name     string
		min, max float32
		want     blueprint.Vector2
	}{
		{"in range", -1, 1, blueprint.Vector2{X: -1, Y: 1}},
		{"both out of range", -20000, 20000, blueprint.Vector2{X: -10000, Y: 10000}},
		{"max below min", 5, 1, blueprint.Vector2{X: 5, Y: 5}},
		{"min above limit", 20000, 0, blueprint.Vector2{X: 10000, Y: 10000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			b.RandomRange(tt.min, tt.max)
			if got := param(t, b.Node(0), 0); got != tt.want {
				t.Errorf("stored %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMultiply(t *testing.T) {
	b := New()
	x, y := b.Constant(1), b.Constant(2)
	w := b.Multiply(500, x, y, x)

	n := b.Node(w.Address().Node).(WeightedSum)
	if n.Multiplier != 100 {
		t.Errorf("Multiplier = %v, want 100", n.Multiplier)
	}
	want := []Address{{0, 0}, {1, 0}, {0, 0}}
	if diff := cmp.Diff(want, n.Inputs()); diff != "" {
		t.Errorf("Inputs() mismatch (-want +got):\n%s", diff)
	}

	wantProgramError(t, func() { b.Multiply(1) })
}

func TestSwitch(t *testing.T) {
	b := New()
	pass, sel := b.Constant(3), b.Constant(1)

	w := b.Switch(pass, sel)
	g := b.Node(w.Address().Node).(Gate)
	if g.Threshold != 0.5 || g.OpenValue != 0 {
		t.Errorf("defaults = (%v, %v), want (0.5, 0)", g.Threshold, g.OpenValue)
	}

	w = b.Switch(pass, sel, WithThreshold(-50000), WithOpenValue(7))
	g = b.Node(w.Address().Node).(Gate)
	if g.Threshold != -10000 || g.OpenValue != 7 {
		t.Errorf("options = (%v, %v), want (-10000, 7)", g.Threshold, g.OpenValue)
	}
	if diff := cmp.Diff([]Address{{0, 0}, {1, 0}}, g.Inputs()); diff != "" {
		t.Errorf("Inputs() mismatch (-want +got):\n%s", diff)
	}
	if got := param(t, g, 1); got != blueprint.Float32(7) {
		t.Errorf("open value parameter = %v, want 7", got)
	}
}

func TestSensorParams(t *testing.T) {
	b := New()
	b.Altitude(AltitudeTerrainAndSea)
	b.Speed(SpeedForwards)
	b.Velocity(SpeedMagnitude)
	b.Position()

	tests := []struct {
		node int
		want blueprint.Value
		kind ValueKind
	}{
		{0, blueprint.Uint32(4), KindNumber},
		{1, blueprint.Uint32(3), KindNumber},
		{2, blueprint.Uint32(0), KindVector3},
	}
	for _, tt := range tests {
		n := b.Node(tt.node)
		if got := param(t, n, 0); got != tt.want {
			t.Errorf("%s mode = %v, want %v", n.Name(), got, tt.want)
		}
		if got := n.Outputs(); len(got) != 1 || got[0] != tt.kind {
			t.Errorf("%s outputs = %v, want [%v]", n.Name(), got, tt.kind)
		}
	}
	if n := b.Node(3); n.Params().Len() != 0 {
		t.Errorf("Position has %d parameters, want 0", n.Params().Len())
	}
	if b.Node(1).TypeID() != b.Node(2).TypeID() {
		t.Error("Speed and Velocity must share the host component")
	}
}

func TestModeValidation(t *testing.T) {
	b := New()
	wantProgramError(t, func() { b.Altitude(AltitudeMode(5)) })
	wantProgramError(t, func() { b.Speed(SpeedMode(1)) })
	wantProgramError(t, func() { b.Velocity(SpeedMode(2)) })
	if b.Len() != 0 {
		t.Errorf("Len() = %d after rejected calls, want 0", b.Len())
	}
}

func TestTargetInfoOutputs(t *testing.T) {
	b := New()
	b.Constant(0)
	ti := b.TargetInfo()

	wires := []AnyWire{ti.Present, ti.Distance, ti.Altitude, ti.Bearing, ti.Position, ti.Velocity, ti.Volume}
	kinds := b.Node(1).Outputs()
	if len(kinds) != len(wires) {
		t.Fatalf("TargetInfo has %d outputs, want %d", len(kinds), len(wires))
	}
	for i, w := range wires {
		if w.Address() != (Address{Node: 1, Output: i}) {
			t.Errorf("output %d address = %v", i, w.Address())
		}
		if w.Kind() != kinds[i] {
			t.Errorf("output %d kind = %v, node declares %v", i, w.Kind(), kinds[i])
		}
	}
}

func TestCrossBoardMisuse(t *testing.T) {
	x := New()
	y := New()
	foreign := x.Constant(1)
	own := y.Constant(2)
	vec := x.Position()

	tests := []struct {
		name string
		fn   func()
	}{
		{"unary", func() { y.Negate(foreign) }},
		{"second operand", func() { y.Add(own, foreign) }},
		{"vector operand", func() { y.Magnitude(vec) }},
		{"if", func() { If(y, own, foreign, own) }},
		{"multiply", func() { y.Multiply(1, own, foreign) }},
		{"switch", func() { y.Switch(own, foreign) }},
		{"evaluator", func() { y.NewEvaluator().Input(foreign) }},
		{"zero wire", func() { y.Sin(Wire[Number]{}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := y.Len()
			wantProgramError(t, tt.fn)
			if y.Len() != before {
				t.Errorf("rejected call appended a node")
			}
		})
	}
}

func TestNodeOutOfRange(t *testing.T) {
	b := New()
	b.Constant(1)
	wantProgramError(t, func() { b.Node(1) })
	wantProgramError(t, func() { b.Node(-1) })
}

func TestNodesIsACopy(t *testing.T) {
	b := New()
	b.Constant(1)
	nodes := b.Nodes()
	nodes[0] = Position{}
	if _, ok := b.Node(0).(Constant); !ok {
		t.Error("modifying Nodes() changed the board")
	}
}

func TestReturnedNodesDoNotAliasTheBoard(t *testing.T) {
	b := New()
	x, y := b.Constant(1), b.Constant(2)
	b.Multiply(1, x, y)
	e := expr.New(expr.OpNegate, expr.Input(expr.SlotA))
	ev := b.NewEvaluator()
	ev.Input(x)
	Emit[Number](ev, e)
	ev.Commit()

	sum := b.Nodes()[2].(WeightedSum)
	sum.Terms[0] = Address{Node: 1}

	n := b.Node(3).(Expression)
	n.Slots[0] = Address{Node: 1}
	n.Kinds[0] = KindText
	n.Exprs[0].Op = expr.OpNot
	n.Exprs[0].Args[0].Slot = expr.SlotE
	e.Op = expr.OpSin

	if got := b.Node(2).Inputs()[0]; got != (Address{Node: 0}) {
		t.Errorf("multiply term 0 = %s after editing a copy, want 0.0", got)
	}
	got := b.Node(3).(Expression)
	if got.Text() != "-(a)" {
		t.Errorf("expression text = %q after editing copies, want -(a)", got.Text())
	}
	if got.Slots[0] != (Address{Node: 0}) || got.Kinds[0] != KindNumber {
		t.Errorf("expression node = %v %v after editing a copy", got.Slots, got.Kinds)
	}
}

func TestComponentName(t *testing.T) {
	b := New()
	b.Velocity(SpeedMagnitude)
	b.NewVector(1, 2, 3)

	for i, want := range []string{"Speed", "Evaluator"} {
		got, ok := ComponentName(b.Node(i).TypeID())
		if !ok || got != want {
			t.Errorf("ComponentName(node %d) = %q, %v, want %q", i, got, ok, want)
		}
	}
	if _, ok := ComponentName(uuid.Nil); ok {
		t.Error("ComponentName(Nil) should not be found")
	}
}
