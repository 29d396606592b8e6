package breadboard

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/matzehuels/breadboard/pkg/blueprint"
	"github.com/matzehuels/breadboard/pkg/codec"
	"github.com/matzehuels/breadboard/pkg/errors"
)

// counter is a deterministic entropy source.
type counter struct{ next byte }

func (c *counter) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = c.next
		c.next++
	}
	return len(p), nil
}

func section(t *testing.T, blk *blueprint.Block, id blueprint.SectionID) *blueprint.Section {
	t.Helper()
	s, ok := blk.Lookup(id)
	if !ok {
		t.Fatalf("section %d missing", id)
	}
	return s
}

func ids(t *testing.T, s *blueprint.Section, id blueprint.EntryID) []uuid.UUID {
	t.Helper()
	v, ok := s.Get(id)
	if !ok {
		t.Fatalf("entry %d missing", id)
	}
	var raw blueprint.Raw
	switch v := v.(type) {
	case blueprint.Bytes:
		raw = blueprint.Raw(v)
	case blueprint.Raw:
		raw = v
	default:
		t.Fatalf("entry %d is %T, want bytes", id, v)
	}
	out, err := raw.UUIDs()
	if err != nil {
		t.Fatalf("entry %d: %v", id, err)
	}
	return out
}

func negateBoard() *Board {
	b := New()
	b.Negate(b.Constant(5))
	return b
}

func TestNegateBoardLayout(t *testing.T) {
	blk := negateBoard().Block()

	wantIDs := []blueprint.SectionID{3000, 72541, 72542, 72543, 9999}
	if diff := cmp.Diff(wantIDs, blk.IDs()); diff != "" {
		t.Fatalf("section ids mismatch (-want +got):\n%s", diff)
	}
	for _, id := range []blueprint.SectionID{3000, 72541} {
		if n := section(t, blk, id).Len(); n != 0 {
			t.Errorf("reserved section %d has %d entries, want 0", id, n)
		}
	}

	constant := section(t, blk, 72542)
	negate := section(t, blk, 72543)

	if v, _ := constant.Get(0); v != blueprint.Float32(5) {
		t.Errorf("constant value = %v, want 5", v)
	}
	if v, _ := negate.Get(0); v != blueprint.String("-(a)") {
		t.Errorf("expression text = %v, want -(a)", v)
	}

	outputs := ids(t, constant, EntryOutputs)
	if len(outputs) != 1 {
		t.Fatalf("constant has %d output ids, want 1", len(outputs))
	}
	if in := ids(t, constant, EntryInputs); len(in) != 0 {
		t.Errorf("constant has %d input ids, want 0", len(in))
	}
	inputs := ids(t, negate, EntryInputs)
	if len(inputs) != 2 {
		t.Fatalf("negate has %d input ids, want one descriptor of 2", len(inputs))
	}
	if inputs[1] != outputs[0] {
		t.Errorf("input descriptor points at %s, want constant output %s", inputs[1], outputs[0])
	}
	if inputs[0] == outputs[0] {
		t.Error("local input id must be distinct from the source id")
	}

	main := section(t, blk, 9999)
	wantMain := []blueprint.Value{
		blueprint.UUID(codec.SwapGUID(constantType)),
		blueprint.Uint32(72542),
		blueprint.UUID(codec.SwapGUID(evaluatorType)),
		blueprint.Uint32(72543),
	}
	if main.Len() != len(wantMain) {
		t.Fatalf("main section has %d entries, want %d", main.Len(), len(wantMain))
	}
	for i, want := range wantMain {
		if got, _ := main.Get(blueprint.EntryID(i)); got != want {
			t.Errorf("main entry %d = %v, want %v", i, got, want)
		}
	}
}

func TestNegateBoardDecodes(t *testing.T) {
	bp, err := blueprint.DecodeBase64(negateBoard().EncodeBase64())
	if err != nil {
		t.Fatalf("DecodeBase64() error: %v", err)
	}
	blk, ok := bp.Lookup(BoardBlock)
	if !ok {
		t.Fatal("block 0 missing")
	}

	for _, id := range []blueprint.SectionID{reservedSectionA, reservedSectionB} {
		if n := section(t, blk, id).Len(); n != 0 {
			t.Errorf("reserved section %d decoded with %d entries, want 0", id, n)
		}
	}
	if n := section(t, blk, MainSection).Len(); n != 4 {
		t.Errorf("main section decoded with %d entries, want 4", n)
	}

	v, _ := section(t, blk, 72543).Get(0)
	if got := v.(blueprint.Raw).Text(); got != "-(a)" {
		t.Errorf("expression text = %q, want -(a)", got)
	}
	inputs := ids(t, section(t, blk, 72543), EntryInputs)
	outputs := ids(t, section(t, blk, 72542), EntryOutputs)
	if len(inputs) != 2 || len(outputs) != 1 || inputs[1] != outputs[0] {
		t.Errorf("decoded wiring does not connect negate to constant: in=%v out=%v", inputs, outputs)
	}
}

func TestNodePositions(t *testing.T) {
	tests := []struct {
		name   string
		opts   []Option
		layout Layout
	}{
		{"default", nil, Layout{Spacing: 200, Width: 25, Height: 25}},
		{"custom", []Option{WithLayout(Layout{Spacing: 50, Width: 10, Height: 20})}, Layout{Spacing: 50, Width: 10, Height: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.opts...)
			for range 3 {
				b.Position()
			}
			blk := b.Block()
			for i := range 3 {
				s := section(t, blk, FirstNodeSection+blueprint.SectionID(i))
				want := map[blueprint.EntryID]blueprint.Value{
					EntryX:      blueprint.Float32(tt.layout.Spacing * float32(i)),
					EntryY:      blueprint.Float32(0),
					EntryWidth:  blueprint.Float32(tt.layout.Width),
					EntryHeight: blueprint.Float32(tt.layout.Height),
				}
				for id, w := range want {
					if got, _ := s.Get(id); got != w {
						t.Errorf("node %d entry %d = %v, want %v", i, id, got, w)
					}
				}
			}
		})
	}
}

func TestWireIDsAreUnique(t *testing.T) {
	b := New()
	ti := b.TargetInfo()
	d := b.Sub(ti.Distance, b.Constant(100))
	b.Switch(d, ti.Present)
	b.Multiply(2, d, d, ti.Volume)

	blk := b.Block()
	seen := make(map[uuid.UUID]bool)
	sources := make(map[uuid.UUID]bool)
	for i := range b.Len() {
		s := section(t, blk, FirstNodeSection+blueprint.SectionID(i))
		for _, id := range ids(t, s, EntryOutputs) {
			if seen[id] {
				t.Fatalf("output id %s minted twice", id)
			}
			seen[id] = true
			sources[id] = true
		}
		in := ids(t, s, EntryInputs)
		if len(in) != 2*len(b.Node(i).Inputs()) {
			t.Errorf("node %d has %d input ids, want %d", i, len(in), 2*len(b.Node(i).Inputs()))
		}
		for j := 0; j < len(in); j += 2 {
			if seen[in[j]] {
				t.Fatalf("local id %s minted twice", in[j])
			}
			seen[in[j]] = true
			if !sources[in[j+1]] {
				t.Errorf("node %d input %d reads an id no earlier node produced", i, j/2)
			}
		}
	}
	if got := len(ids(t, section(t, blk, FirstNodeSection), EntryOutputs)); got != 7 {
		t.Errorf("target info minted %d output ids, want 7", got)
	}
}

func TestSerializationDeterminismWithSeededRand(t *testing.T) {
	build := func() []byte {
		b := New(WithRand(&counter{}))
		v := b.Velocity(SpeedForwards)
		b.Magnitude(v)
		return b.Encode()
	}
	if !bytes.Equal(build(), build()) {
		t.Error("identical boards with identical entropy encoded differently")
	}

	b := New()
	b.Constant(1)
	if bytes.Equal(b.Encode(), b.Encode()) {
		t.Error("two serializations of one board reused wire ids")
	}
}

func TestMainSectionOverflow(t *testing.T) {
	b := New(WithRand(&counter{}))
	for range 32768 {
		b.Position()
	}
	if err := errors.Catch(func() { b.Block() }); err != nil {
		t.Fatalf("32768 nodes should fit: %v", err)
	}
	b.Position()
	wantProgramError(t, func() { b.Block() })
}
