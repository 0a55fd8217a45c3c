package node

import (
	"fmt"

	"github.com/script-1024/giviewer/debug"
	"github.com/script-1024/giviewer/wire"
)

// Encode writes n as a top-level message, unframed.
func Encode(n *Node) ([]byte, error) {
	p := n.Plan(0)
	w := wire.NewWriter(p.Size())
	if err := n.Write(w, 0, p); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Write emits n under field following p, which must come from n.Plan(field)
// on the unchanged tree. A plan that does not match the tree, in shape or in
// the number of bytes produced, is reported as ErrStalePlan.
func (n *Node) Write(w *wire.Writer, field int, p Plan) error {
	if p.size == 0 {
		return nil
	}
	start := w.Pos()
	if err := n.write(w, field, p); err != nil {
		return err
	}
	if got := w.Pos() - start; got != p.size {
		return fmt.Errorf("%w: %s under field %d wrote %d bytes, planned %d", ErrStalePlan, n, field, got, p.size)
	}
	if debug.Encode() {
		debug.Logf("wrote %s under field %d: %d bytes\n", n, field, p.size)
	}
	return nil
}

func (n *Node) write(w *wire.Writer, field int, p Plan) error {
	if p.kind != n.kind || len(p.children) != n.Len() {
		return fmt.Errorf("%w: planned %s with %d children, have %s", ErrStalePlan, p.kind, len(p.children), n)
	}
	switch n.kind {
	case Integer, Float, Double:
		if field != 0 {
			if err := w.WriteTag(field, n.kind.WireType()); err != nil {
				return err
			}
		}
		return n.writeBody(w)
	case String, Bytes:
		if err := writeHead(w, field, p.body); err != nil {
			return err
		}
		var err error
		if n.kind == String {
			_, err = w.WriteString(n.text)
		} else {
			_, err = w.Write(n.data)
		}
		return err
	case Object:
		if err := writeHead(w, field, p.body); err != nil {
			return err
		}
		for i, f := range n.fields {
			if err := f.Value.Write(w, f.Number, p.children[i]); err != nil {
				return fmt.Errorf("field %d: %w", f.Number, err)
			}
		}
		return nil
	case List:
		if n.Packed() {
			if err := writeHead(w, field, p.body); err != nil {
				return err
			}
			for i, e := range n.elems {
				if err := e.Write(w, 0, p.children[i]); err != nil {
					return fmt.Errorf("[%d]: %w", i, err)
				}
			}
			return nil
		}
		for i, e := range n.elems {
			if err := e.Write(w, field, p.children[i]); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidKind, int(n.kind))
	}
}

func writeHead(w *wire.Writer, field, body int) error {
	if field == 0 {
		return nil
	}
	if err := w.WriteTag(field, wire.Length); err != nil {
		return err
	}
	return w.WriteVarint(uint64(body))
}

func (n *Node) writeBody(w *wire.Writer) error {
	switch n.kind {
	case Integer:
		return w.WriteVarint(n.bits)
	case Float:
		f, _ := n.Float32()
		return w.PutFloat32(f)
	case Double:
		f, _ := n.Float64()
		return w.PutFloat64(f)
	}
	return nil
}
