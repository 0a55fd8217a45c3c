package node

import (
	"fmt"
	"iter"
)

// ElemKind is the kind every element of a list has.
func (n *Node) ElemKind() Kind {
	if n.kind != List {
		return Invalid
	}
	return n.elemKind
}

// Packed reports whether a list is written as one length-delimited run of
// scalar bodies.
func (n *Node) Packed() bool {
	return n.kind == List && n.elemKind.IsScalar()
}

// Append adds v at the end of a list. The list takes ownership of v.
func (n *Node) Append(v *Node) error {
	if n.kind != List {
		return ErrNotList
	}
	if v == nil {
		return ErrNilNode
	}
	if v.kind != n.elemKind {
		return fmt.Errorf("%w: list of %s, cannot append %s", ErrKindMismatch, n.elemKind, v.kind)
	}
	n.elems = append(n.elems, v)
	return nil
}

// Index returns element i, or nil.
func (n *Node) Index(i int) *Node {
	if n.kind != List || i < 0 || i >= len(n.elems) {
		return nil
	}
	return n.elems[i]
}

func (n *Node) SetIndex(i int, v *Node) error {
	if n.kind != List {
		return ErrNotList
	}
	if v == nil {
		return ErrNilNode
	}
	if i < 0 || i >= len(n.elems) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndex, i, len(n.elems))
	}
	if v.kind != n.elemKind {
		return fmt.Errorf("%w: list of %s, cannot hold %s", ErrKindMismatch, n.elemKind, v.kind)
	}
	n.elems[i] = v
	return nil
}

func (n *Node) RemoveAt(i int) (*Node, bool) {
	if n.kind != List || i < 0 || i >= len(n.elems) {
		return nil, false
	}
	v := n.elems[i]
	n.elems = append(n.elems[:i], n.elems[i+1:]...)
	return v, true
}

// Elems iterates over a list's elements in order.
func (n *Node) Elems() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		if n.kind != List {
			return
		}
		for i, e := range n.elems {
			if !yield(i, e) {
				return
			}
		}
	}
}
