package blueprint

import (
	"encoding/base64"
	"math"

	"github.com/matzehuels/breadboard/pkg/codec"
	"github.com/matzehuels/breadboard/pkg/errors"
)

// Blueprint is the outermost container: an ordered set of blocks.
// The zero value is not usable; use [New].
type Blueprint struct {
	order  []BlockIndex
	blocks map[BlockIndex]*Block
}

// New returns an empty blueprint.
func New() *Blueprint {
	return &Blueprint{blocks: make(map[BlockIndex]*Block)}
}

// Block returns the block stored under idx, creating an empty one if needed.
// It panics with a PROGRAM_ERROR if idx does not fit in 3 bytes.
func (bp *Blueprint) Block(idx BlockIndex) *Block {
	if b, ok := bp.blocks[idx]; ok {
		return b
	}
	b := NewBlock()
	bp.SetBlock(idx, b)
	return b
}

// SetBlock stores b under idx, replacing any previous block in place.
// It panics with a PROGRAM_ERROR if idx does not fit in 3 bytes.
func (bp *Blueprint) SetBlock(idx BlockIndex, b *Block) *Blueprint {
	NewBlockIndex(uint32(idx))
	if _, ok := bp.blocks[idx]; !ok {
		bp.order = append(bp.order, idx)
	}
	bp.blocks[idx] = b
	return bp
}

// Lookup returns the block stored under idx without creating it.
func (bp *Blueprint) Lookup(idx BlockIndex) (*Block, bool) {
	b, ok := bp.blocks[idx]
	return b, ok
}

// Indices returns the block indices in emission order.
func (bp *Blueprint) Indices() []BlockIndex {
	return append([]BlockIndex(nil), bp.order...)
}

// Len returns the number of blocks.
func (bp *Blueprint) Len() int { return len(bp.order) }

// Encode serializes the blueprint into the legacy byte layout.
func (bp *Blueprint) Encode() []byte {
	var w codec.Writer
	for _, idx := range bp.order {
		header, body := bp.blocks[idx].encode()
		if len(header) > math.MaxUint16 {
			errors.Panicf("block %d has %d sections, header exceeds 16-bit length",
				idx, len(header)/sectionHeaderSize)
		}

		w.PutU24(uint32(idx))
		w.PutU16(uint16(len(header)))
		w.PutU16(0) // unused
		w.PutLengthWords(len(body))
		w.PutBytes(header)
		w.PutBytes(body)
	}
	return w.Bytes()
}

// EncodeBase64 returns the standard base64 encoding of [Blueprint.Encode],
// the form embedded in the host's blueprint document.
func (bp *Blueprint) EncodeBase64() string {
	return base64.StdEncoding.EncodeToString(bp.Encode())
}
