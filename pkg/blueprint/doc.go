// Package blueprint models the host's nested tag-length-value container and
// encodes it byte-exactly.
//
// # Structure
//
// A [Blueprint] maps 24-bit [BlockIndex] keys to [Block]s. A Block maps
// 24-bit [SectionID] keys to [Section]s. A Section maps 16-bit [EntryID]
// keys to typed [Value]s:
//
//	bp := blueprint.New()
//	blk := bp.Block(0)
//	blk.Section(9999).
//	    Set(0, blueprint.UUID(id)).
//	    Set(1, blueprint.Uint32(72542))
//	payload := bp.EncodeBase64()
//
// Keys are unique within their parent. Setting an existing key replaces the
// value in place. Iteration and emission follow first-insertion order, so
// encoding the same container twice yields identical bytes.
//
// # Wire Layout
//
// Entries are written as a 2-byte id, a 1-byte payload length and the
// little-endian payload. [Bytes], [String] and [Raw] values longer than 255
// bytes are split into several chunks, each re-emitting the entry id.
//
// A block is a header of 7 bytes per section (3-byte section id and the
// word-swapped 32-bit offset of the section inside the body) followed by the
// concatenated section bodies. The blueprint writes, per block, the 3-byte
// index, the 2-byte header length, 2 unused bytes, the body length as a run
// of 16-bit words, then the header and body.
//
// # Decoding
//
// [Decode] is the inverse of [Blueprint.Encode]. The format carries no type
// information, so every decoded value is a [Raw] that can be interpreted
// with its accessor methods. Chunks of one logical value are concatenated.
// Re-encoding a decoded blueprint reproduces the original bytes.
package blueprint
