package codec

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/matzehuels/breadboard/pkg/errors"
)

// Reader consumes legacy-encoded values from a byte slice.
type Reader struct {
	data []byte
	off  int
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int { return r.off }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.off }

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, io.ErrUnexpectedEOF,
			"need %d bytes at offset %d, have %d", n, r.off, r.Remaining())
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

// U8 reads one byte.
func (r *Reader) U8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 reads a little-endian 16-bit value.
func (r *Reader) U16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// U24 reads a little-endian 24-bit value.
func (r *Reader) U24() (uint32, error) {
	b, err := r.take(3)
	if err != nil {
		return 0, err
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16, nil
}

// U32 reads a little-endian 32-bit value.
func (r *Reader) U32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// LegacyU32 reads a word-swapped 32-bit value written by [Writer.PutLegacyU32].
func (r *Reader) LegacyU32() (uint32, error) {
	hi, err := r.U16()
	if err != nil {
		return 0, err
	}
	lo, err := r.U16()
	if err != nil {
		return 0, err
	}
	return uint32(hi)<<16 | uint32(lo), nil
}

// F32 reads a little-endian IEEE-754 single.
func (r *Reader) F32() (float32, error) {
	v, err := r.U32()
	return math.Float32frombits(v), err
}

// Bytes reads the next n bytes. The slice aliases the reader's input.
func (r *Reader) Bytes(n int) ([]byte, error) {
	return r.take(n)
}

// LengthWords reads a run of 16-bit length words written by
// [Writer.PutLengthWords] and returns their sum.
func (r *Reader) LengthWords() (int, error) {
	total := 0
	for {
		w, err := r.U16()
		if err != nil {
			return 0, err
		}
		total += int(w)
		if w < lengthWordMax {
			return total, nil
		}
	}
}
