package node

import (
	"bytes"
	"cmp"
	"slices"
	"strings"
)

// Compare orders nodes: first by kind, then by value. Objects compare their
// members by ascending field number, so member order does not matter. Floats
// compare by bit pattern.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind {
	case Integer, Float, Double:
		return cmp.Compare(a.bits, b.bits)
	case String:
		return strings.Compare(a.text, b.text)
	case Bytes:
		return bytes.Compare(a.data, b.data)
	case List:
		if c := cmp.Compare(a.elemKind, b.elemKind); c != 0 {
			return c
		}
		if c := cmp.Compare(len(a.elems), len(b.elems)); c != 0 {
			return c
		}
		for i := range a.elems {
			if c := Compare(a.elems[i], b.elems[i]); c != 0 {
				return c
			}
		}
		return 0
	case Object:
		if c := cmp.Compare(len(a.fields), len(b.fields)); c != 0 {
			return c
		}
		af, bf := sortedFields(a), sortedFields(b)
		for i := range af {
			if c := cmp.Compare(af[i].Number, bf[i].Number); c != 0 {
				return c
			}
			if c := Compare(af[i].Value, bf[i].Value); c != 0 {
				return c
			}
		}
		return 0
	default:
		return 0
	}
}

func sortedFields(n *Node) []Field {
	res := slices.Clone(n.fields)
	slices.SortFunc(res, func(x, y Field) int {
		return cmp.Compare(x.Number, y.Number)
	})
	return res
}

// Equal reports whether a and b hold the same fields, kinds and values.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// Equivalent is Equal up to what the encoding can observe: members and
// unpacked list elements that would be elided are ignored.
func Equivalent(a, b *Node) bool {
	return Equal(Canonical(a), Canonical(b))
}

// Canonical returns a copy of n without the members and unpacked list
// elements that encoding elides. A list left with a single element stays a
// list.
func Canonical(n *Node) *Node {
	if n == nil {
		return nil
	}
	switch n.kind {
	case Object:
		res := NewObject()
		for _, f := range n.fields {
			if f.Value.Plan(f.Number).size == 0 {
				continue
			}
			res.fields = append(res.fields, Field{Number: f.Number, Value: Canonical(f.Value)})
		}
		return res
	case List:
		res := NewList(n.elemKind)
		for _, e := range n.elems {
			if !n.Packed() && e.IsZero() {
				continue
			}
			res.elems = append(res.elems, Canonical(e))
		}
		return res
	default:
		return n.Clone()
	}
}
