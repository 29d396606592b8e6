// Package codec implements the low-level byte primitives of the legacy
// container format.
//
// Every integer in the format is little-endian except one: section offsets
// inside a block header use a word-swapped 32-bit encoding where the high
// 16 bits are written first, each half little-endian on its own. For the
// offset 0x12345678 the bytes on the wire are 34 12 78 56.
//
// Other quirks handled here:
//
//   - 24-bit identifiers ([Writer.PutU24]) for block indices and section ids.
//     Values at or above [MaxU24] are a programming error.
//   - Variable-length values are split into chunks of at most [MaxChunk]
//     bytes. Every chunk is prefixed by the same 2-byte entry id and its own
//     1-byte length, so a value of length L occupies ceil(L/255) chunks (one
//     empty chunk when L is 0). See [Chunks] and [Writer.PutChunked].
//   - Block body lengths are written as a run of 16-bit words, each holding
//     min(remaining, 65535), terminated by the first word below 65535. See
//     [LengthWords].
//   - Host catalog GUIDs are published in a different byte order than the
//     wire format uses. [SwapGUID] converts between the two notations.
//
// [Writer] appends to an in-memory buffer and never fails except on
// contract violations. [Reader] is its inverse and reports truncated input
// as an INVALID_FORMAT error wrapping [io.ErrUnexpectedEOF].
package codec
