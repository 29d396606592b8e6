package blueprint

import (
	"encoding/base64"
	"slices"

	"github.com/matzehuels/breadboard/pkg/codec"
	"github.com/matzehuels/breadboard/pkg/errors"
)

// Decode parses bytes produced by [Blueprint.Encode]. Every entry value is
// returned as [Raw].
func Decode(data []byte) (*Blueprint, error) {
	bp := New()
	r := codec.NewReader(data)

	for r.Remaining() > 0 {
		idx, err := r.U24()
		if err != nil {
			return nil, err
		}
		headerLen, err := r.U16()
		if err != nil {
			return nil, err
		}
		if _, err := r.U16(); err != nil {
			return nil, err
		}
		bodyLen, err := r.LengthWords()
		if err != nil {
			return nil, err
		}
		header, err := r.Bytes(int(headerLen))
		if err != nil {
			return nil, err
		}
		body, err := r.Bytes(bodyLen)
		if err != nil {
			return nil, err
		}

		blk, err := decodeBlock(header, body)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "block %d", idx)
		}
		bp.SetBlock(BlockIndex(idx), blk)
	}
	return bp, nil
}

// DecodeBase64 decodes a standard base64 payload and then the blueprint.
func DecodeBase64(s string) (*Blueprint, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode base64")
	}
	return Decode(data)
}

type sectionSpan struct {
	id    SectionID
	start int
}

func decodeBlock(header, body []byte) (*Block, error) {
	if len(header)%sectionHeaderSize != 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"header length %d is not a multiple of %d", len(header), sectionHeaderSize)
	}

	r := codec.NewReader(header)
	spans := make([]sectionSpan, 0, len(header)/sectionHeaderSize)
	for r.Remaining() > 0 {
		id, _ := r.U24()
		offset, _ := r.LegacyU32()
		if int(offset) > len(body) {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"section %d offset %d beyond body of %d bytes", id, offset, len(body))
		}
		if n := len(spans); n > 0 && int(offset) < spans[n-1].start {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"section %d offset %d precedes section %d", id, offset, spans[n-1].id)
		}
		spans = append(spans, sectionSpan{id: SectionID(id), start: int(offset)})
	}

	// Bodies follow header order, so a section ends where the next header
	// entry starts. Empty sections share their start with the next one.
	blk := NewBlock()
	for i, s := range spans {
		end := len(body)
		if i+1 < len(spans) {
			end = spans[i+1].start
		}
		sec, err := decodeSection(body[s.start:end])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "section %d", s.id)
		}
		blk.SetSection(s.id, sec)
	}
	return blk, nil
}

func decodeSection(data []byte) (*Section, error) {
	sec := NewSection()
	r := codec.NewReader(data)

	var (
		prevID   EntryID
		prevFull bool
	)
	for r.Remaining() > 0 {
		id, err := r.U16()
		if err != nil {
			return nil, err
		}
		n, err := r.U8()
		if err != nil {
			return nil, err
		}
		payload, err := r.Bytes(int(n))
		if err != nil {
			return nil, err
		}

		eid := EntryID(id)
		if prevFull && eid == prevID {
			v, _ := sec.Get(eid)
			sec.Set(eid, append(v.(Raw), payload...))
		} else {
			sec.Set(eid, Raw(slices.Clone(payload)))
		}
		prevID, prevFull = eid, int(n) == codec.MaxChunk
	}
	return sec, nil
}
