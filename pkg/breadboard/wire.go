package breadboard

import "fmt"

// Address identifies one output of one node.
type Address struct {
	Node   int // index of the node on its board
	Output int // output index on that node
}

func (a Address) String() string { return fmt.Sprintf("%d.%d", a.Node, a.Output) }

// Wire is a typed handle to a node output. Wires are small values and are
// meant to be copied. The zero Wire belongs to no board and is rejected by
// every builder call.
type Wire[K Kind] struct {
	addr  Address
	board *Board
}

// Address returns the node output the wire reads from.
func (w Wire[K]) Address() Address { return w.addr }

// Kind returns the wire's value kind.
func (w Wire[K]) Kind() ValueKind { return kindOf[K]() }

// Board returns the board that created the wire.
func (w Wire[K]) Board() *Board { return w.board }

func (w Wire[K]) String() string { return fmt.Sprintf("%s@%s", w.Kind(), w.addr) }

func (w Wire[K]) owner() *Board { return w.board }

// AnyWire is satisfied by every [Wire] regardless of its kind.
type AnyWire interface {
	Address() Address
	Kind() ValueKind
	owner() *Board
}

var (
	_ AnyWire = Wire[Number]{}
	_ AnyWire = Wire[Vector3]{}
	_ AnyWire = Wire[Rotation]{}
	_ AnyWire = Wire[Text]{}
)
