package blueprint

import "github.com/matzehuels/breadboard/pkg/codec"

// Section is an ordered set of typed entries.
// The zero value is not usable; use [NewSection].
type Section struct {
	order  []EntryID
	values map[EntryID]Value
}

// NewSection returns an empty section.
func NewSection() *Section {
	return &Section{values: make(map[EntryID]Value)}
}

// Set stores v under id and returns s for chaining. Replacing an existing
// entry keeps its original position.
func (s *Section) Set(id EntryID, v Value) *Section {
	if _, ok := s.values[id]; !ok {
		s.order = append(s.order, id)
	}
	s.values[id] = v
	return s
}

// Get returns the value stored under id.
func (s *Section) Get(id EntryID) (Value, bool) {
	v, ok := s.values[id]
	return v, ok
}

// IDs returns the entry ids in emission order.
func (s *Section) IDs() []EntryID {
	return append([]EntryID(nil), s.order...)
}

// Len returns the number of entries.
func (s *Section) Len() int { return len(s.order) }

func (s *Section) encodeTo(w *codec.Writer) {
	for _, id := range s.order {
		s.values[id].encode(w, id)
	}
}
