package breadboard

import (
	"io"

	"github.com/google/uuid"

	"github.com/matzehuels/breadboard/pkg/blueprint"
	"github.com/matzehuels/breadboard/pkg/codec"
	"github.com/matzehuels/breadboard/pkg/errors"
)

// Container layout of a board. The host expects the two reserved sections
// even though they stay empty.
const (
	FirstNodeSection blueprint.SectionID = 72542
	MainSection      blueprint.SectionID = 9999

	reservedSectionA blueprint.SectionID = 3000
	reservedSectionB blueprint.SectionID = 72541

	BoardBlock blueprint.BlockIndex = 0
)

// Entries of a node section besides the node's own parameters.
const (
	EntryInputs  blueprint.EntryID = 900
	EntryOutputs blueprint.EntryID = 901
	EntryX       blueprint.EntryID = 8000
	EntryY       blueprint.EntryID = 8001
	EntryWidth   blueprint.EntryID = 8002
	EntryHeight  blueprint.EntryID = 8003
)

// wireMap holds the identifiers minted for one serialization.
type wireMap struct {
	rand    io.Reader
	outputs [][]uuid.UUID // node index -> output index -> id
}

func (m *wireMap) mint() uuid.UUID {
	return uuid.Must(uuid.NewRandomFromReader(m.rand))
}

// assign mints output ids for node i and resolves its inputs against the
// ids of earlier nodes. It returns the input descriptors (a local id
// followed by the source output id, per input) and the output ids, both
// as concatenated 16-byte identifiers.
func (m *wireMap) assign(i int, n Node) (inputs, outputs []byte) {
	for _, addr := range n.Inputs() {
		src := m.output(i, addr)
		local := m.mint()
		inputs = append(inputs, local[:]...)
		inputs = append(inputs, src[:]...)
	}

	count := len(n.Outputs())
	m.outputs[i] = make([]uuid.UUID, count)
	outputs = make([]byte, 0, count*16)
	for o := range m.outputs[i] {
		id := m.mint()
		m.outputs[i][o] = id
		outputs = append(outputs, id[:]...)
	}
	return inputs, outputs
}

func (m *wireMap) output(node int, addr Address) uuid.UUID {
	if addr.Node < 0 || addr.Node >= node {
		errors.Panicf("node %d reads %s, which is not an earlier node", node, addr)
	}
	ids := m.outputs[addr.Node]
	if addr.Output < 0 || addr.Output >= len(ids) {
		errors.Panicf("node %d reads %s, but node %d has %d outputs", node, addr, addr.Node, len(ids))
	}
	return ids[addr.Output]
}

// Block renders the board as the host's breadboard block. Every call mints
// new wire identifiers.
// It panics with a PROGRAM_ERROR if the board has too many nodes for the
// main section's 16-bit entry ids.
func (b *Board) Block() *blueprint.Block {
	m := &wireMap{rand: b.rand, outputs: make([][]uuid.UUID, len(b.nodes))}

	blk := blueprint.NewBlock()
	blk.SetSection(reservedSectionA, blueprint.NewSection())
	blk.SetSection(reservedSectionB, blueprint.NewSection())

	main := blueprint.NewSection()
	outputs := 0
	for i, n := range b.nodes {
		section := blueprint.NewSectionID(uint32(FirstNodeSection) + uint32(i))

		main.Set(blueprint.NewEntryID(2*i), blueprint.UUID(codec.SwapGUID(n.TypeID())))
		main.Set(blueprint.NewEntryID(2*i+1), blueprint.Uint32(section))

		in, out := m.assign(i, n)
		outputs += len(out) / 16

		x := b.layout.Spacing * float32(i)
		blk.SetSection(section, n.Params().
			Set(EntryInputs, blueprint.Bytes(in)).
			Set(EntryOutputs, blueprint.Bytes(out)).
			Set(EntryX, blueprint.Float32(x)).
			Set(EntryY, blueprint.Float32(0)).
			Set(EntryWidth, blueprint.Float32(b.layout.Width)).
			Set(EntryHeight, blueprint.Float32(b.layout.Height)))
	}
	blk.SetSection(MainSection, main)

	b.logger.Debug("wire ids assigned", "nodes", len(b.nodes), "outputs", outputs)
	return blk
}

// Blueprint returns a container holding the board at [BoardBlock].
func (b *Board) Blueprint() *blueprint.Blueprint {
	return blueprint.New().SetBlock(BoardBlock, b.Block())
}

// Encode serializes the board.
func (b *Board) Encode() []byte { return b.Blueprint().Encode() }

// EncodeBase64 serializes the board as the base64 text embedded in the
// host's document.
func (b *Board) EncodeBase64() string { return b.Blueprint().EncodeBase64() }
