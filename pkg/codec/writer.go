package codec

import (
	"encoding/binary"
	"math"

	"github.com/matzehuels/breadboard/pkg/errors"
)

const (
	// MaxU24 is the exclusive upper bound of a 3-byte field.
	MaxU24 = 1 << 24

	// MaxChunk is the largest payload a single length-prefixed chunk can carry.
	MaxChunk = math.MaxUint8

	// lengthWordMax is the value of a non-terminal body length word.
	lengthWordMax = math.MaxUint16
)

// Writer appends legacy-encoded values to a growable buffer.
// The zero value is ready to use.
type Writer struct {
	buf []byte
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Bytes returns the written bytes. The slice aliases the writer's buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// PutU8 writes a single byte.
func (w *Writer) PutU8(v uint8) { w.buf = append(w.buf, v) }

// PutU16 writes v as 2 little-endian bytes.
func (w *Writer) PutU16(v uint16) { w.buf = binary.LittleEndian.AppendUint16(w.buf, v) }

// PutU24 writes the low 3 bytes of v, little-endian.
// It panics with a PROGRAM_ERROR if v does not fit in 24 bits.
func (w *Writer) PutU24(v uint32) {
	if v >= MaxU24 {
		errors.Panicf("value %d does not fit in 3 bytes", v)
	}
	w.buf = append(w.buf, byte(v), byte(v>>8), byte(v>>16))
}

// PutU32 writes v as 4 little-endian bytes.
func (w *Writer) PutU32(v uint32) { w.buf = binary.LittleEndian.AppendUint32(w.buf, v) }

// PutLegacyU32 writes v in the word-swapped layout used for section offsets:
// the high 16 bits as a little-endian word, then the low 16 bits.
func (w *Writer) PutLegacyU32(v uint32) {
	w.PutU16(uint16(v >> 16))
	w.PutU16(uint16(v))
}

// PutU64 writes v as 8 little-endian bytes.
func (w *Writer) PutU64(v uint64) { w.buf = binary.LittleEndian.AppendUint64(w.buf, v) }

// PutF32 writes the IEEE-754 bits of v, little-endian.
func (w *Writer) PutF32(v float32) { w.PutU32(math.Float32bits(v)) }

// PutF64 writes the IEEE-754 bits of v, little-endian.
func (w *Writer) PutF64(v float64) { w.PutU64(math.Float64bits(v)) }

// PutBytes writes b verbatim.
func (w *Writer) PutBytes(b []byte) { w.buf = append(w.buf, b...) }

// PutChunked writes data as one or more chunks, each prefixed by id and a
// 1-byte length.
func (w *Writer) PutChunked(id uint16, data []byte) {
	for _, chunk := range Chunks(data) {
		w.PutU16(id)
		w.PutU8(uint8(len(chunk)))
		w.PutBytes(chunk)
	}
}

// PutLengthWords writes n as a run of 16-bit words (see [LengthWords]).
func (w *Writer) PutLengthWords(n int) {
	for _, word := range LengthWords(n) {
		w.PutU16(word)
	}
}

// Chunks splits data into consecutive pieces of at most [MaxChunk] bytes.
// An empty input yields a single empty chunk.
func Chunks(data []byte) [][]byte {
	chunks := make([][]byte, 0, len(data)/MaxChunk+1)
	for {
		n := min(len(data), MaxChunk)
		chunks = append(chunks, data[:n])
		data = data[n:]
		if len(data) == 0 {
			return chunks
		}
	}
}

// LengthWords encodes a non-negative length as 16-bit words. Every word but
// the last is 65535; the last is the remainder and always below 65535, so a
// length that is an exact multiple of 65535 ends with a 0 word.
func LengthWords(n int) []uint16 {
	if n < 0 {
		errors.Panicf("negative length %d", n)
	}
	words := make([]uint16, 0, n/lengthWordMax+1)
	for n >= lengthWordMax {
		words = append(words, lengthWordMax)
		n -= lengthWordMax
	}
	return append(words, uint16(n))
}
