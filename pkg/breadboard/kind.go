package breadboard

import "fmt"

// ValueKind is the runtime discriminant of a wire's value kind.
type ValueKind uint8

const (
	KindNumber ValueKind = iota
	KindVector3
	KindRotation
	KindText
)

var kindNames = [...]string{
	KindNumber:   "Number",
	KindVector3:  "Vector3",
	KindRotation: "Rotation",
	KindText:     "Text",
}

func (k ValueKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ValueKind(%d)", uint8(k))
}

// Number is a scalar. Logic operators treat zero as false and anything
// else as true.
type Number struct{}

// Vector3 is a three-component vector.
type Vector3 struct{}

// Rotation is a quaternion.
type Rotation struct{}

// Text is a string value.
type Text struct{}

func (Number) Kind() ValueKind   { return KindNumber }
func (Vector3) Kind() ValueKind  { return KindVector3 }
func (Rotation) Kind() ValueKind { return KindRotation }
func (Text) Kind() ValueKind     { return KindText }

// Kind is the set of value kinds a [Wire] can carry.
type Kind interface {
	Number | Vector3 | Rotation | Text
	Kind() ValueKind
}

func kindOf[K Kind]() ValueKind {
	var k K
	return k.Kind()
}
