package blueprint

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/matzehuels/breadboard/pkg/codec"
	"github.com/matzehuels/breadboard/pkg/errors"
)

// Kind identifies the payload type of a [Value].
type Kind int

const (
	KindBool Kind = iota
	KindUint32
	KindInt32
	KindFloat32
	KindInt64
	KindFloat64
	KindVector2
	KindUUID
	KindBytes
	KindString
	KindRaw
)

var kindNames = [...]string{
	KindBool:    "bool",
	KindUint32:  "u32",
	KindInt32:   "i32",
	KindFloat32: "f32",
	KindInt64:   "i64",
	KindFloat64: "f64",
	KindVector2: "vec2",
	KindUUID:    "uuid",
	KindBytes:   "bytes",
	KindString:  "string",
	KindRaw:     "raw",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a typed entry payload.
// The set of implementations is closed; it is the list of types below.
type Value interface {
	Kind() Kind
	encode(w *codec.Writer, id EntryID)
}

type (
	Bool    bool
	Uint32  uint32
	Int32   int32
	Float32 float32
	Int64   int64
	Float64 float64
	UUID    uuid.UUID
	Bytes   []byte
	String  string
	// Raw is an untyped payload produced by [Decode].
	Raw []byte
)

// Vector2 is a pair of 32-bit floats, used for ranges such as (min, max).
type Vector2 struct {
	X, Y float32
}

func (Bool) Kind() Kind    { return KindBool }
func (Uint32) Kind() Kind  { return KindUint32 }
func (Int32) Kind() Kind   { return KindInt32 }
func (Float32) Kind() Kind { return KindFloat32 }
func (Int64) Kind() Kind   { return KindInt64 }
func (Float64) Kind() Kind { return KindFloat64 }
func (Vector2) Kind() Kind { return KindVector2 }
func (UUID) Kind() Kind    { return KindUUID }
func (Bytes) Kind() Kind   { return KindBytes }
func (String) Kind() Kind  { return KindString }
func (Raw) Kind() Kind     { return KindRaw }

func header(w *codec.Writer, id EntryID, n uint8) {
	w.PutU16(uint16(id))
	w.PutU8(n)
}

func (v Bool) encode(w *codec.Writer, id EntryID) {
	header(w, id, 1)
	if v {
		w.PutU8(1)
	} else {
		w.PutU8(0)
	}
}

func (v Uint32) encode(w *codec.Writer, id EntryID) {
	header(w, id, 4)
	w.PutU32(uint32(v))
}

func (v Int32) encode(w *codec.Writer, id EntryID) {
	header(w, id, 4)
	w.PutU32(uint32(v))
}

func (v Float32) encode(w *codec.Writer, id EntryID) {
	header(w, id, 4)
	w.PutF32(float32(v))
}

func (v Int64) encode(w *codec.Writer, id EntryID) {
	header(w, id, 8)
	w.PutU64(uint64(v))
}

func (v Float64) encode(w *codec.Writer, id EntryID) {
	header(w, id, 8)
	w.PutF64(float64(v))
}

func (v Vector2) encode(w *codec.Writer, id EntryID) {
	header(w, id, 8)
	w.PutF32(v.X)
	w.PutF32(v.Y)
}

func (v UUID) encode(w *codec.Writer, id EntryID) {
	header(w, id, 16)
	w.PutBytes(v[:])
}

func (v Bytes) encode(w *codec.Writer, id EntryID)  { w.PutChunked(uint16(id), v) }
func (v String) encode(w *codec.Writer, id EntryID) { w.PutChunked(uint16(id), []byte(v)) }
func (v Raw) encode(w *codec.Writer, id EntryID)    { w.PutChunked(uint16(id), v) }

func (v Raw) need(n int, as string) error {
	if len(v) != n {
		return errors.New(errors.ErrCodeInvalidFormat, "%s needs %d bytes, entry has %d", as, n, len(v))
	}
	return nil
}

// Bool interprets the payload as a 1-byte boolean.
func (v Raw) Bool() (bool, error) {
	if err := v.need(1, "bool"); err != nil {
		return false, err
	}
	return v[0] != 0, nil
}

// Uint32 interprets the payload as a little-endian uint32.
func (v Raw) Uint32() (uint32, error) {
	if err := v.need(4, "u32"); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(v), nil
}

// Float32 interprets the payload as a little-endian float32.
func (v Raw) Float32() (float32, error) {
	u, err := v.Uint32()
	return math.Float32frombits(u), err
}

// Vector2 interprets the payload as two little-endian float32s.
func (v Raw) Vector2() (Vector2, error) {
	if err := v.need(8, "vec2"); err != nil {
		return Vector2{}, err
	}
	return Vector2{
		X: math.Float32frombits(binary.LittleEndian.Uint32(v[:4])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(v[4:])),
	}, nil
}

// UUID interprets the payload as 16 raw identifier bytes.
func (v Raw) UUID() (uuid.UUID, error) {
	if err := v.need(16, "uuid"); err != nil {
		return uuid.Nil, err
	}
	return uuid.UUID(v), nil
}

// UUIDs interprets the payload as a sequence of 16-byte identifiers.
func (v Raw) UUIDs() ([]uuid.UUID, error) {
	if len(v)%16 != 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "uuid list length %d is not a multiple of 16", len(v))
	}
	ids := make([]uuid.UUID, len(v)/16)
	for i := range ids {
		copy(ids[i][:], v[i*16:])
	}
	return ids, nil
}

// Text interprets the payload as a string.
func (v Raw) Text() string { return string(v) }
