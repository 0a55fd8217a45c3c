package libdiff

import (
	"github.com/script-1024/giviewer/node"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	default:
		return "?"
	}
}

type Change struct {
	Op   Op
	Path string
	From *node.Node
	To   *node.Node

	// Text is set on a Replace of one string or byte run by another.
	Text []diffpatch.Diff
}

// Diff lists the changes turning from into to. Equal trees give none.
func Diff(from, to *node.Node) []Change {
	return diff(nil, "$", from, to)
}

func diff(dst []Change, path string, from, to *node.Node) []Change {
	if from.Kind() != to.Kind() {
		return append(dst, Change{Op: Replace, Path: path, From: from, To: to})
	}
	switch from.Kind() {
	case node.Object:
		for f, a := range from.Fields() {
			p := node.FieldPath(path, f)
			b, ok := to.Lookup(f)
			if !ok {
				dst = append(dst, Change{Op: Delete, Path: p, From: a})
				continue
			}
			dst = diff(dst, p, a, b)
		}
		for f, b := range to.Fields() {
			if _, ok := from.Lookup(f); !ok {
				dst = append(dst, Change{Op: Insert, Path: node.FieldPath(path, f), To: b})
			}
		}
		return dst
	case node.List:
		if from.ElemKind() != to.ElemKind() {
			return append(dst, Change{Op: Replace, Path: path, From: from, To: to})
		}
		n := min(from.Len(), to.Len())
		for i := range n {
			dst = diff(dst, node.IndexPath(path, i), from.Index(i), to.Index(i))
		}
		for i := n; i < from.Len(); i++ {
			dst = append(dst, Change{Op: Delete, Path: node.IndexPath(path, i), From: from.Index(i)})
		}
		for i := n; i < to.Len(); i++ {
			dst = append(dst, Change{Op: Insert, Path: node.IndexPath(path, i), To: to.Index(i)})
		}
		return dst
	}
	if node.Equal(from, to) {
		return dst
	}
	c := Change{Op: Replace, Path: path, From: from, To: to}
	switch from.Kind() {
	case node.String:
		a, _ := from.Text()
		b, _ := to.Text()
		c.Text = DiffString(a, b)
	case node.Bytes:
		a, _ := from.Bytes()
		b, _ := to.Bytes()
		c.Text = DiffBytes(a, b)
	}
	return append(dst, c)
}
