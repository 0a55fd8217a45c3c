package node

import (
	"fmt"
	"iter"

	"github.com/script-1024/giviewer/wire"
)

func validField(field int) error {
	if field <= 0 || field > wire.MaxField {
		return fmt.Errorf("%w: %d", ErrFieldNumber, field)
	}
	return nil
}

func (n *Node) find(field int) int {
	for i := range n.fields {
		if n.fields[i].Number == field {
			return i
		}
	}
	return -1
}

// Len is the number of fields of an object or elements of a list, 0 for
// anything else.
func (n *Node) Len() int {
	switch n.kind {
	case Object:
		return len(n.fields)
	case List:
		return len(n.elems)
	default:
		return 0
	}
}

// Get returns the child under field, or nil.
func (n *Node) Get(field int) *Node {
	v, _ := n.Lookup(field)
	return v
}

func (n *Node) Lookup(field int) (*Node, bool) {
	if n.kind != Object {
		return nil, false
	}
	i := n.find(field)
	if i < 0 {
		return nil, false
	}
	return n.fields[i].Value, true
}

// Set puts v under field, replacing whatever was there. The object takes
// ownership of v.
func (n *Node) Set(field int, v *Node) error {
	if n.kind != Object {
		return ErrNotObject
	}
	if v == nil {
		return ErrNilNode
	}
	if err := validField(field); err != nil {
		return err
	}
	if i := n.find(field); i >= 0 {
		n.fields[i].Value = v
		return nil
	}
	n.fields = append(n.fields, Field{Number: field, Value: v})
	return nil
}

// Add puts v under field. If field is taken, the existing value is promoted
// to a list holding both, or v is appended when it is a list already. Add
// fails, leaving n unchanged, when the kinds do not agree.
func (n *Node) Add(field int, v *Node) error {
	if n.kind != Object {
		return ErrNotObject
	}
	if v == nil {
		return ErrNilNode
	}
	if err := validField(field); err != nil {
		return err
	}
	i := n.find(field)
	if i < 0 {
		n.fields = append(n.fields, Field{Number: field, Value: v})
		return nil
	}
	cur := n.fields[i].Value
	if cur.kind == List {
		if err := cur.Append(v); err != nil {
			return fmt.Errorf("field %d: %w", field, err)
		}
		return nil
	}
	if cur.kind != v.kind {
		return fmt.Errorf("%w: field %d holds %s, cannot add %s", ErrKindMismatch, field, cur.kind, v.kind)
	}
	n.fields[i].Value = &Node{kind: List, elemKind: v.kind, elems: []*Node{cur, v}}
	return nil
}

// Remove takes the child under field out of the object.
func (n *Node) Remove(field int) (*Node, bool) {
	if n.kind != Object {
		return nil, false
	}
	i := n.find(field)
	if i < 0 {
		return nil, false
	}
	v := n.fields[i].Value
	n.fields = append(n.fields[:i], n.fields[i+1:]...)
	return v, true
}

// Fields iterates over an object's members in insertion order.
func (n *Node) Fields() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		if n.kind != Object {
			return
		}
		for _, f := range n.fields {
			if !yield(f.Number, f.Value) {
				return
			}
		}
	}
}

// FieldNumbers lists an object's field numbers in insertion order.
func (n *Node) FieldNumbers() []int {
	if n.kind != Object {
		return nil
	}
	res := make([]int, len(n.fields))
	for i, f := range n.fields {
		res[i] = f.Number
	}
	return res
}

// The Field accessors read a scalar member with implicit presence: an absent
// field reads as the zero value of its kind. A present field of another kind
// is an error.

func (n *Node) member(field int, want Kind) (*Node, error) {
	if n.kind != Object {
		return nil, ErrNotObject
	}
	v, ok := n.Lookup(field)
	if !ok {
		return nil, nil
	}
	if v.kind != want {
		return nil, fmt.Errorf("field %d: %w", field, v.mismatch(want))
	}
	return v, nil
}

func (n *Node) FieldUint(field int) (uint64, error) {
	v, err := n.member(field, Integer)
	if v == nil {
		return 0, err
	}
	return v.bits, nil
}

func (n *Node) FieldInt(field int, zigzag bool) (int64, error) {
	v, err := n.member(field, Integer)
	if v == nil {
		return 0, err
	}
	i, ok := v.Int(zigzag)
	if !ok {
		return 0, fmt.Errorf("field %d: %w: %d as int64", field, wire.ErrOverflow, v.bits)
	}
	return i, nil
}

func (n *Node) FieldFloat32(field int) (float32, error) {
	v, err := n.member(field, Float)
	if v == nil {
		return 0, err
	}
	f, _ := v.Float32()
	return f, nil
}

func (n *Node) FieldFloat64(field int) (float64, error) {
	v, err := n.member(field, Double)
	if v == nil {
		return 0, err
	}
	f, _ := v.Float64()
	return f, nil
}

func (n *Node) FieldText(field int) (string, error) {
	v, err := n.member(field, String)
	if v == nil {
		return "", err
	}
	return v.text, nil
}

func (n *Node) FieldBytes(field int) ([]byte, error) {
	v, err := n.member(field, Bytes)
	if v == nil {
		return nil, err
	}
	return v.data, nil
}
