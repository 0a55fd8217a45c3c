package node

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/script-1024/giviewer/wire"
)

// Node is one value of a GI document tree. Which payload fields are in use
// depends on the kind.
//
// The zero Node has kind Invalid and encodes to nothing; use the From
// constructors, NewObject or NewList.
type Node struct {
	kind Kind

	// Integer value, or the IEEE bits of a Float or Double.
	bits uint64
	text string
	data []byte

	fields   []Field
	elems    []*Node
	elemKind Kind
}

// Field is an object member.
type Field struct {
	Number int
	Value  *Node
}

func FromUint(v uint64) *Node {
	return &Node{kind: Integer, bits: v}
}

// FromInt stores v, zig-zag encoded when zigzag is set. A negative value
// without zig-zag is refused.
func FromInt(v int64, zigzag bool) (*Node, error) {
	u, err := wire.Unsigned(v, zigzag)
	if err != nil {
		return nil, err
	}
	return FromUint(u), nil
}

func FromFloat32(v float32) *Node {
	return &Node{kind: Float, bits: uint64(math.Float32bits(v))}
}

func FromFloat64(v float64) *Node {
	return &Node{kind: Double, bits: math.Float64bits(v)}
}

func FromString(v string) *Node {
	return &Node{kind: String, text: v}
}

// FromBytes copies v.
func FromBytes(v []byte) *Node {
	return &Node{kind: Bytes, data: bytes.Clone(v)}
}

func NewObject() *Node {
	return &Node{kind: Object}
}

func NewList(elem Kind) *Node {
	return &Node{kind: List, elemKind: elem}
}

// FromFields builds an object by adding each field in turn, so repeated
// numbers merge into lists.
func FromFields(fields ...Field) (*Node, error) {
	res := NewObject()
	for _, f := range fields {
		if err := res.Add(f.Number, f.Value); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// FromSlice builds a list of kind elem.
func FromSlice(elem Kind, elems []*Node) (*Node, error) {
	res := NewList(elem)
	for _, e := range elems {
		if err := res.Append(e); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (n *Node) Kind() Kind {
	return n.kind
}

func (n *Node) WireType() wire.WireType {
	return n.kind.WireType()
}

func (n *Node) mismatch(want Kind) error {
	if want.IsLeaf() && !n.kind.IsLeaf() {
		return fmt.Errorf("%w: %w: want %s, have %s", ErrKindMismatch, ErrNotScalar, want, n.kind)
	}
	return fmt.Errorf("%w: want %s, have %s", ErrKindMismatch, want, n.kind)
}

// IsZero reports whether n is elided on output: a zero scalar, an empty
// string or an empty byte run. Objects and lists are never zero.
func (n *Node) IsZero() bool {
	switch n.kind {
	case Integer:
		return n.bits == 0
	case Float:
		return math.Float32frombits(uint32(n.bits)) == 0
	case Double:
		return math.Float64frombits(n.bits) == 0
	case String:
		return n.text == ""
	case Bytes:
		return len(n.data) == 0
	default:
		return false
	}
}

// Uint returns the raw varint value of an Integer node.
func (n *Node) Uint() (uint64, bool) {
	if n.kind != Integer {
		return 0, false
	}
	return n.bits, true
}

func (n *Node) SetUint(v uint64) error {
	if n.kind != Integer {
		return n.mismatch(Integer)
	}
	n.bits = v
	return nil
}

// Int returns the value of an Integer node as a signed value. With zigzag the
// stored value is zig-zag decoded; without it the stored value must fit an
// int64.
func (n *Node) Int(zigzag bool) (int64, bool) {
	if n.kind != Integer {
		return 0, false
	}
	if zigzag {
		return wire.UnZigZag64(n.bits), true
	}
	return wire.Narrow[int64](n.bits)
}

func (n *Node) SetInt(v int64, zigzag bool) error {
	if n.kind != Integer {
		return n.mismatch(Integer)
	}
	u, err := wire.Unsigned(v, zigzag)
	if err != nil {
		return err
	}
	n.bits = u
	return nil
}

// IntAs narrows the value of an Integer node to T.
func IntAs[T wire.Integer](n *Node, zigzag bool) (T, error) {
	if n.kind != Integer {
		var zero T
		return zero, n.mismatch(Integer)
	}
	if zigzag {
		return wire.CastSigned[T](wire.UnZigZag64(n.bits))
	}
	return wire.Cast[T](n.bits)
}

// EnumAs converts the value of an Integer node to the enum E, failing when
// the value names no member.
func EnumAs[E wire.Enum](n *Node) (E, error) {
	if n.kind != Integer {
		var zero E
		return zero, n.mismatch(Integer)
	}
	return wire.CheckEnum[E](n.bits)
}

func (n *Node) Float32() (float32, bool) {
	if n.kind != Float {
		return 0, false
	}
	return math.Float32frombits(uint32(n.bits)), true
}

func (n *Node) SetFloat32(v float32) error {
	if n.kind != Float {
		return n.mismatch(Float)
	}
	n.bits = uint64(math.Float32bits(v))
	return nil
}

func (n *Node) Float64() (float64, bool) {
	if n.kind != Double {
		return 0, false
	}
	return math.Float64frombits(n.bits), true
}

func (n *Node) SetFloat64(v float64) error {
	if n.kind != Double {
		return n.mismatch(Double)
	}
	n.bits = math.Float64bits(v)
	return nil
}

func (n *Node) Text() (string, bool) {
	if n.kind != String {
		return "", false
	}
	return n.text, true
}

func (n *Node) SetText(v string) error {
	if n.kind != String {
		return n.mismatch(String)
	}
	n.text = v
	return nil
}

// Bytes returns the payload of a Bytes node. The slice is owned by the node.
func (n *Node) Bytes() ([]byte, bool) {
	if n.kind != Bytes {
		return nil, false
	}
	return n.data, true
}

// SetBytes copies v into the node.
func (n *Node) SetBytes(v []byte) error {
	if n.kind != Bytes {
		return n.mismatch(Bytes)
	}
	n.data = bytes.Clone(v)
	return nil
}

// Clone returns a deep copy sharing no memory with n.
func (n *Node) Clone() *Node {
	res := &Node{
		kind:     n.kind,
		bits:     n.bits,
		text:     n.text,
		elemKind: n.elemKind,
	}
	if n.data != nil {
		res.data = bytes.Clone(n.data)
	}
	if n.fields != nil {
		res.fields = make([]Field, len(n.fields))
		for i, f := range n.fields {
			res.fields[i] = Field{Number: f.Number, Value: f.Value.Clone()}
		}
	}
	if n.elems != nil {
		res.elems = make([]*Node, len(n.elems))
		for i, e := range n.elems {
			res.elems[i] = e.Clone()
		}
	}
	return res
}

// String is a one line summary, for logs.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.kind {
	case Integer:
		return "integer(" + strconv.FormatUint(n.bits, 10) + ")"
	case Float:
		f, _ := n.Float32()
		return "float(" + strconv.FormatFloat(float64(f), 'g', -1, 32) + ")"
	case Double:
		f, _ := n.Float64()
		return "double(" + strconv.FormatFloat(f, 'g', -1, 64) + ")"
	case String:
		return "string(" + strconv.Quote(n.text) + ")"
	case Bytes:
		return fmt.Sprintf("bytes[%d]", len(n.data))
	case Object:
		return fmt.Sprintf("object{%d}", len(n.fields))
	case List:
		return fmt.Sprintf("list<%s>[%d]", n.elemKind, len(n.elems))
	default:
		return "<invalid>"
	}
}
