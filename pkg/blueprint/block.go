package blueprint

import (
	"math"

	"github.com/matzehuels/breadboard/pkg/codec"
	"github.com/matzehuels/breadboard/pkg/errors"
)

// sectionHeaderSize is the size of one section header: a 3-byte id and a
// 4-byte word-swapped offset.
const sectionHeaderSize = 7

// Block is an ordered set of sections.
// The zero value is not usable; use [NewBlock].
type Block struct {
	order    []SectionID
	sections map[SectionID]*Section
}

// NewBlock returns an empty block.
func NewBlock() *Block {
	return &Block{sections: make(map[SectionID]*Section)}
}

// Section returns the section stored under id, creating an empty one if
// needed. It panics with a PROGRAM_ERROR if id does not fit in 3 bytes.
func (b *Block) Section(id SectionID) *Section {
	if s, ok := b.sections[id]; ok {
		return s
	}
	s := NewSection()
	b.SetSection(id, s)
	return s
}

// SetSection stores s under id, replacing any previous section in place.
// It panics with a PROGRAM_ERROR if id does not fit in 3 bytes.
func (b *Block) SetSection(id SectionID, s *Section) *Block {
	NewSectionID(uint32(id))
	if _, ok := b.sections[id]; !ok {
		b.order = append(b.order, id)
	}
	b.sections[id] = s
	return b
}

// Lookup returns the section stored under id without creating it.
func (b *Block) Lookup(id SectionID) (*Section, bool) {
	s, ok := b.sections[id]
	return s, ok
}

// IDs returns the section ids in emission order.
func (b *Block) IDs() []SectionID {
	return append([]SectionID(nil), b.order...)
}

// Len returns the number of sections.
func (b *Block) Len() int { return len(b.order) }

// encode returns the block header and body separately so the caller can
// write their lengths ahead of them.
func (b *Block) encode() (header, body []byte) {
	var h, d codec.Writer
	for _, id := range b.order {
		offset := d.Len()
		if uint64(offset) > math.MaxUint32 {
			errors.Panicf("section %d starts beyond the 32-bit offset range", id)
		}
		b.sections[id].encodeTo(&d)

		h.PutU24(uint32(id))
		h.PutLegacyU32(uint32(offset))
	}
	return h.Bytes(), d.Bytes()
}
