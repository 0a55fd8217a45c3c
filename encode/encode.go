package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/script-1024/giviewer/convert"
	"github.com/script-1024/giviewer/format"
	"github.com/script-1024/giviewer/node"
	"github.com/script-1024/giviewer/wire"
)

var ErrEncoding = errors.New("encoding error")

const defaultMaxBytes = 32

type EncState struct {
	depth, indent int
	maxDepth      int
	maxBytes      int
	zigzag        bool

	format format.Format
	wire   bool

	Color func(node.Kind, ColorAttr, string) string
}

func Encode(n *node.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:   2,
		maxBytes: defaultMaxBytes,
	}
	for _, opt := range opts {
		opt(es)
	}
	if n == nil {
		return fmt.Errorf("%w: %w", ErrEncoding, node.ErrNilNode)
	}
	switch es.format {
	case format.TreeFormat:
		return encodeTree(n, w, "", es)
	case format.YAMLFormat:
		d, err := convert.ToYAML(n)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return writeString(w, string(d))
	case format.JSONFormat:
		var (
			d   []byte
			err error
		)
		if es.wire {
			d, err = convert.ToJSON(n)
		} else {
			d, err = convert.ToJSONIndent(n)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return writeString(w, string(d)+"\n")
	default:
		return fmt.Errorf("%w: %w", ErrEncoding, format.ErrBadFormat)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func (es *EncState) color(k node.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func encodeTree(n *node.Node, w io.Writer, label string, es *EncState) error {
	line := strings.Repeat(" ", es.indent*es.depth)
	if label != "" {
		line += es.color(n.Kind(), FieldColor, label) + es.color(n.Kind(), SepColor, ":") + " "
	}
	line += es.color(n.Kind(), KindColor, kindLabel(n))
	if v := es.valueString(n); v != "" {
		line += " " + es.color(n.Kind(), ValueColor, v)
	}
	if err := writeString(w, line+"\n"); err != nil {
		return err
	}
	if n.Kind().IsLeaf() || n.Len() == 0 {
		return nil
	}
	if es.maxDepth > 0 && es.depth+1 >= es.maxDepth {
		return writeString(w, strings.Repeat(" ", es.indent*(es.depth+1))+"...\n")
	}
	es.depth++
	defer func() { es.depth-- }()
	for f, c := range n.Fields() {
		if err := encodeTree(c, w, strconv.Itoa(f), es); err != nil {
			return err
		}
	}
	for i, e := range n.Elems() {
		if err := encodeTree(e, w, "["+strconv.Itoa(i)+"]", es); err != nil {
			return err
		}
	}
	return nil
}

func kindLabel(n *node.Node) string {
	switch n.Kind() {
	case node.List:
		return "list<" + n.ElemKind().String() + ">"
	case node.Bytes:
		b, _ := n.Bytes()
		return "bytes[" + strconv.Itoa(len(b)) + "]"
	default:
		return n.Kind().String()
	}
}

func (es *EncState) valueString(n *node.Node) string {
	switch n.Kind() {
	case node.Integer:
		u, _ := n.Uint()
		s := strconv.FormatUint(u, 10)
		if es.zigzag {
			s += " (" + strconv.FormatInt(wire.UnZigZag64(u), 10) + ")"
		}
		return s
	case node.Float:
		f, _ := n.Float32()
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	case node.Double:
		f, _ := n.Float64()
		return strconv.FormatFloat(f, 'g', -1, 64)
	case node.String:
		s, _ := n.Text()
		return strconv.Quote(s)
	case node.Bytes:
		b, _ := n.Bytes()
		if len(b) == 0 {
			return ""
		}
		if es.maxBytes > 0 && len(b) > es.maxBytes {
			return fmt.Sprintf("% x ...", b[:es.maxBytes])
		}
		return fmt.Sprintf("% x", b)
	case node.Object:
		if n.Len() == 0 {
			return "{}"
		}
		return ""
	case node.List:
		return "[" + strconv.Itoa(n.Len()) + "]"
	default:
		return ""
	}
}
