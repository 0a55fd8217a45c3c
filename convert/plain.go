package convert

import (
	"math"
	"strconv"

	"github.com/script-1024/giviewer/node"
)

// Plain projects n onto ordinary Go values: objects become maps keyed by the
// decimal field number, lists slices, integers int where they fit and
// uint64 otherwise, floats float64, strings string and bytes []byte. The
// projection drops kinds and is not reversible.
func Plain(n *node.Node) any {
	switch n.Kind() {
	case node.Integer:
		u, _ := n.Uint()
		if u <= math.MaxInt {
			return int(u)
		}
		return u
	case node.Float:
		f, _ := n.Float32()
		return float64(f)
	case node.Double:
		f, _ := n.Float64()
		return f
	case node.String:
		s, _ := n.Text()
		return s
	case node.Bytes:
		b, _ := n.Bytes()
		return b
	case node.Object:
		res := make(map[string]any, n.Len())
		for f, c := range n.Fields() {
			res[strconv.Itoa(f)] = Plain(c)
		}
		return res
	case node.List:
		res := make([]any, 0, n.Len())
		for _, e := range n.Elems() {
			res = append(res, Plain(e))
		}
		return res
	default:
		return nil
	}
}
