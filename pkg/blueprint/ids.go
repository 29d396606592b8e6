package blueprint

import (
	"github.com/matzehuels/breadboard/pkg/codec"
	"github.com/matzehuels/breadboard/pkg/errors"
)

// BlockIndex identifies a block inside a blueprint. It must be below 2^24.
type BlockIndex uint32

// SectionID identifies a section inside a block. It must be below 2^24.
type SectionID uint32

// EntryID identifies an entry inside a section.
type EntryID uint16

// NewBlockIndex returns n as a BlockIndex.
// It panics with a PROGRAM_ERROR if n does not fit in 3 bytes.
func NewBlockIndex(n uint32) BlockIndex {
	if n >= codec.MaxU24 {
		errors.Panicf("block index %d does not fit in 3 bytes", n)
	}
	return BlockIndex(n)
}

// NewSectionID returns n as a SectionID.
// It panics with a PROGRAM_ERROR if n does not fit in 3 bytes.
func NewSectionID(n uint32) SectionID {
	if n >= codec.MaxU24 {
		errors.Panicf("section id %d does not fit in 3 bytes", n)
	}
	return SectionID(n)
}

// NewEntryID returns n as an EntryID.
// It panics with a PROGRAM_ERROR if n does not fit in 16 bits.
func NewEntryID(n int) EntryID {
	if n < 0 || n > 0xffff {
		errors.Panicf("entry id %d does not fit in 2 bytes", n)
	}
	return EntryID(n)
}
