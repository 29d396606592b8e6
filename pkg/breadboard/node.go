package breadboard

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/breadboard/pkg/blueprint"
	"github.com/matzehuels/breadboard/pkg/errors"
)

// Node is one component on a board.
type Node interface {
	// TypeID returns the host's catalog identifier for the component, in
	// catalog byte order.
	TypeID() uuid.UUID
	// Name returns a short human-readable component name.
	Name() string
	// Params returns a new section holding the node's static parameters.
	Params() *blueprint.Section
	// Outputs returns the kind of every output, in output order.
	Outputs() []ValueKind
	// Inputs returns the wired inputs, in socket order.
	Inputs() []Address
}

// Host catalog identifiers.
var (
	constantType   = uuid.MustParse("9142c70d-7833-41cd-804d-554e990b6904")
	randomType     = uuid.MustParse("268b7db2-bccf-41fd-8cfa-3f21d2f2bacb")
	altitudeType   = uuid.MustParse("ae46572b-dff8-4153-97dc-146108f3a64f")
	positionType   = uuid.MustParse("e20d6a3a-c0b9-4665-8749-7a85c40afabe")
	speedType      = uuid.MustParse("c8f64443-b81f-4b75-8105-18cd6e453539")
	targetInfoType = uuid.MustParse("5390bcf0-d09d-40b8-99a3-8d3752e656c6")
	multiplyType   = uuid.MustParse("930e5331-cecf-408a-8d90-dac6b479d5b0")
	switchType     = uuid.MustParse("581de01e-3754-45f6-9133-f51443844eca")
	evaluatorType  = uuid.MustParse("7cf3b706-757e-428a-bb45-454a17ed710a")
)

var componentNames = map[uuid.UUID]string{
	constantType:   "Constant",
	randomType:     "Random",
	altitudeType:   "Altitude",
	positionType:   "Position",
	speedType:      "Speed",
	targetInfoType: "Target Info",
	multiplyType:   "Multiply",
	switchType:     "Switch",
	evaluatorType:  "Evaluator",
}

// ComponentName returns the component name for a catalog identifier.
// Speed and Velocity share one host component and report "Speed".
func ComponentName(id uuid.UUID) (string, bool) {
	name, ok := componentNames[id]
	return name, ok
}

// Host parameter ranges.
const (
	ValueLimit      = 10000
	MultiplierLimit = 100
)

func clamp(v, lo, hi float32) float32 { return min(max(v, lo), hi) }

func single(k ValueKind) []ValueKind { return []ValueKind{k} }

// Constant emits a fixed number.
type Constant struct {
	Value float32
}

func (Constant) TypeID() uuid.UUID    { return constantType }
func (Constant) Name() string         { return "Constant" }
func (Constant) Outputs() []ValueKind { return single(KindNumber) }
func (Constant) Inputs() []Address    { return nil }
func (n Constant) Params() *blueprint.Section {
	return blueprint.NewSection().Set(0, blueprint.Float32(n.Value))
}

// Constant appends a constant node. v is clamped to ±[ValueLimit].
func (b *Board) Constant(v float32) Wire[Number] {
	return addSingle[Number](b, Constant{Value: clamp(v, -ValueLimit, ValueLimit)})
}

// RandomRange emits a random number in [Min, Max].
type RandomRange struct {
	Min, Max float32
}

func (RandomRange) TypeID() uuid.UUID    { return randomType }
func (RandomRange) Name() string         { return "Random" }
func (RandomRange) Outputs() []ValueKind { return single(KindNumber) }
func (RandomRange) Inputs() []Address    { return nil }
func (n RandomRange) Params() *blueprint.Section {
	return blueprint.NewSection().Set(0, blueprint.Vector2{X: n.Min, Y: n.Max})
}

// RandomRange appends a random number source. min is clamped to
// ±[ValueLimit], then max is clamped to [min, ValueLimit].
func (b *Board) RandomRange(lo, hi float32) Wire[Number] {
	lo = clamp(lo, -ValueLimit, ValueLimit)
	hi = clamp(hi, lo, ValueLimit)
	return addSingle[Number](b, RandomRange{Min: lo, Max: hi})
}

// AltitudeMode selects what an altitude sensor measures against.
type AltitudeMode uint32

const (
	AltitudeSeaLevel AltitudeMode = iota
	AltitudeWaveLevel
	AltitudeTerrainLevel
	AltitudeTerrainAndWave
	AltitudeTerrainAndSea
)

func (m AltitudeMode) String() string {
	switch m {
	case AltitudeSeaLevel:
		return "sea level"
	case AltitudeWaveLevel:
		return "wave level"
	case AltitudeTerrainLevel:
		return "terrain level"
	case AltitudeTerrainAndWave:
		return "terrain and wave"
	case AltitudeTerrainAndSea:
		return "terrain and sea"
	}
	return fmt.Sprintf("AltitudeMode(%d)", uint32(m))
}

// Altitude reads the vehicle's altitude.
type Altitude struct {
	Mode AltitudeMode
}

func (Altitude) TypeID() uuid.UUID    { return altitudeType }
func (Altitude) Name() string         { return "Altitude" }
func (Altitude) Outputs() []ValueKind { return single(KindNumber) }
func (Altitude) Inputs() []Address    { return nil }
func (n Altitude) Params() *blueprint.Section {
	return blueprint.NewSection().Set(0, blueprint.Uint32(n.Mode))
}

// Altitude appends an altitude sensor.
// It panics with a PROGRAM_ERROR if mode is not a declared AltitudeMode.
func (b *Board) Altitude(mode AltitudeMode) Wire[Number] {
	if mode > AltitudeTerrainAndSea {
		errors.Panicf("unknown altitude mode %d", uint32(mode))
	}
	return addSingle[Number](b, Altitude{Mode: mode})
}

// Position reads the vehicle's world position.
type Position struct{}

func (Position) TypeID() uuid.UUID          { return positionType }
func (Position) Name() string               { return "Position" }
func (Position) Outputs() []ValueKind       { return single(KindVector3) }
func (Position) Inputs() []Address          { return nil }
func (Position) Params() *blueprint.Section { return blueprint.NewSection() }

// Position appends a position sensor.
func (b *Board) Position() Wire[Vector3] {
	return addSingle[Vector3](b, Position{})
}

// SpeedMode selects the measurement of a speed or velocity sensor. The host
// numbers its modes sparsely.
type SpeedMode uint32

const (
	SpeedMagnitude SpeedMode = 0
	SpeedForwards  SpeedMode = 3
)

func (m SpeedMode) String() string {
	switch m {
	case SpeedMagnitude:
		return "magnitude"
	case SpeedForwards:
		return "forwards"
	}
	return fmt.Sprintf("SpeedMode(%d)", uint32(m))
}

func checkSpeedMode(m SpeedMode) {
	if m != SpeedMagnitude && m != SpeedForwards {
		errors.Panicf("unknown speed mode %d", uint32(m))
	}
}

// Speed reads the vehicle's speed as a number.
type Speed struct {
	Mode SpeedMode
}

func (Speed) TypeID() uuid.UUID    { return speedType }
func (Speed) Name() string         { return "Speed" }
func (Speed) Outputs() []ValueKind { return single(KindNumber) }
func (Speed) Inputs() []Address    { return nil }
func (n Speed) Params() *blueprint.Section {
	return blueprint.NewSection().Set(0, blueprint.Uint32(n.Mode))
}

// Speed appends a speed sensor.
// It panics with a PROGRAM_ERROR if mode is not a declared SpeedMode.
func (b *Board) Speed(mode SpeedMode) Wire[Number] {
	checkSpeedMode(mode)
	return addSingle[Number](b, Speed{Mode: mode})
}

// Velocity is the speed component in its vector-valued modes.
type Velocity struct {
	Mode SpeedMode
}

func (Velocity) TypeID() uuid.UUID    { return speedType }
func (Velocity) Name() string         { return "Velocity" }
func (Velocity) Outputs() []ValueKind { return single(KindVector3) }
func (Velocity) Inputs() []Address    { return nil }
func (n Velocity) Params() *blueprint.Section {
	return blueprint.NewSection().Set(0, blueprint.Uint32(n.Mode))
}

// Velocity appends a velocity sensor.
// It panics with a PROGRAM_ERROR if mode is not a declared SpeedMode.
func (b *Board) Velocity(mode SpeedMode) Wire[Vector3] {
	checkSpeedMode(mode)
	return addSingle[Vector3](b, Velocity{Mode: mode})
}

// TargetInfo reads the primary target.
type TargetInfo struct{}

var targetInfoOutputs = []ValueKind{
	KindNumber, KindNumber, KindNumber, KindNumber, KindVector3, KindVector3, KindNumber,
}

func (TargetInfo) TypeID() uuid.UUID          { return targetInfoType }
func (TargetInfo) Name() string               { return "Target Info" }
func (TargetInfo) Outputs() []ValueKind       { return slices.Clone(targetInfoOutputs) }
func (TargetInfo) Inputs() []Address          { return nil }
func (TargetInfo) Params() *blueprint.Section { return blueprint.NewSection() }

// TargetInfoOutputs are the outputs of one target info sensor.
type TargetInfoOutputs struct {
	Present  Wire[Number]
	Distance Wire[Number]
	Altitude Wire[Number]
	Bearing  Wire[Number] // degrees relative to forward, in [-180, 180]
	Position Wire[Vector3]
	Velocity Wire[Vector3]
	Volume   Wire[Number]
}

// TargetInfo appends a target info sensor.
func (b *Board) TargetInfo() TargetInfoOutputs {
	i := b.add(TargetInfo{})
	return TargetInfoOutputs{
		Present:  wireOf[Number](b, i, 0),
		Distance: wireOf[Number](b, i, 1),
		Altitude: wireOf[Number](b, i, 2),
		Bearing:  wireOf[Number](b, i, 3),
		Position: wireOf[Vector3](b, i, 4),
		Velocity: wireOf[Vector3](b, i, 5),
		Volume:   wireOf[Number](b, i, 6),
	}
}

// WeightedSum adds its inputs and multiplies the total by Multiplier.
type WeightedSum struct {
	Multiplier float32
	Terms      []Address
}

func (WeightedSum) TypeID() uuid.UUID    { return multiplyType }
func (WeightedSum) Name() string         { return "Multiply" }
func (WeightedSum) Outputs() []ValueKind { return single(KindNumber) }
func (n WeightedSum) Inputs() []Address  { return slices.Clone(n.Terms) }
func (n WeightedSum) Params() *blueprint.Section {
	return blueprint.NewSection().Set(0, blueprint.Float32(n.Multiplier))
}

// Multiply appends a weighted sum of terms. multiplier is clamped to
// ±[MultiplierLimit].
// It panics with a PROGRAM_ERROR if no terms are given.
func (b *Board) Multiply(multiplier float32, terms ...Wire[Number]) Wire[Number] {
	if len(terms) == 0 {
		errors.Panicf("multiply needs at least one input")
	}
	addrs := make([]Address, len(terms))
	for i, t := range terms {
		addrs[i] = b.check(t)
	}
	return addSingle[Number](b, WeightedSum{
		Multiplier: clamp(multiplier, -MultiplierLimit, MultiplierLimit),
		Terms:      addrs,
	})
}

// Gate passes its first input through while the selector is at or above
// Threshold. Below it the switch is open and emits OpenValue.
type Gate struct {
	Passthrough Address
	Selector    Address
	Threshold   float32
	OpenValue   float32
}

func (Gate) TypeID() uuid.UUID    { return switchType }
func (Gate) Name() string         { return "Switch" }
func (Gate) Outputs() []ValueKind { return single(KindNumber) }
func (n Gate) Inputs() []Address  { return []Address{n.Passthrough, n.Selector} }
func (n Gate) Params() *blueprint.Section {
	return blueprint.NewSection().
		Set(0, blueprint.Float32(n.Threshold)).
		Set(1, blueprint.Float32(n.OpenValue))
}

// GateOption configures a switch node.
type GateOption func(*Gate)

// WithThreshold sets the selector level from which the switch passes its
// input through (default 0.5). Clamped to ±[ValueLimit].
func WithThreshold(v float32) GateOption { return func(g *Gate) { g.Threshold = v } }

// WithOpenValue sets the value emitted while the selector is below the
// threshold (default 0). Clamped to ±[ValueLimit].
func WithOpenValue(v float32) GateOption { return func(g *Gate) { g.OpenValue = v } }

// Switch appends a gate over passthrough controlled by selector.
func (b *Board) Switch(passthrough, selector Wire[Number], opts ...GateOption) Wire[Number] {
	g := Gate{
		Passthrough: b.check(passthrough),
		Selector:    b.check(selector),
		Threshold:   0.5,
	}
	for _, opt := range opts {
		opt(&g)
	}
	g.Threshold = clamp(g.Threshold, -ValueLimit, ValueLimit)
	g.OpenValue = clamp(g.OpenValue, -ValueLimit, ValueLimit)
	return addSingle[Number](b, g)
}
