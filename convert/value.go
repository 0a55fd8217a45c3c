package convert

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"

	"github.com/script-1024/giviewer/node"
)

type Value struct {
	Kind  node.Kind `json:"kind"`
	Uint  uint64    `json:"uint,omitempty"`
	Float *float64  `json:"float,omitempty"`
	// Bits holds the IEEE bits, in hex, of a NaN or infinite float.
	Bits   string    `json:"bits,omitempty"`
	Text   string    `json:"text,omitempty"`
	Bytes  Base64    `json:"bytes,omitempty"`
	Elem   node.Kind `json:"elem,omitempty"`
	Fields []Member  `json:"fields,omitempty"`
	Elems  []*Value  `json:"elems,omitempty"`
}

type Member struct {
	Field int    `json:"field"`
	Value *Value `json:"value"`
}

// Base64 is a byte run written as standard base64 text.
type Base64 []byte

func (b Base64) MarshalText() ([]byte, error) {
	res := make([]byte, base64.StdEncoding.EncodedLen(len(b)))
	base64.StdEncoding.Encode(res, b)
	return res, nil
}

func (b *Base64) UnmarshalText(d []byte) error {
	res := make([]byte, base64.StdEncoding.DecodedLen(len(d)))
	n, err := base64.StdEncoding.Decode(res, d)
	if err != nil {
		return err
	}
	*b = res[:n]
	return nil
}

// ToValue converts n to its document model.
func ToValue(n *node.Node) *Value {
	v := &Value{Kind: n.Kind()}
	switch n.Kind() {
	case node.Integer:
		v.Uint, _ = n.Uint()
	case node.Float:
		f, _ := n.Float32()
		v.setFloat(float64(f), uint64(math.Float32bits(f)))
	case node.Double:
		f, _ := n.Float64()
		v.setFloat(f, math.Float64bits(f))
	case node.String:
		v.Text, _ = n.Text()
	case node.Bytes:
		b, _ := n.Bytes()
		v.Bytes = Base64(b)
	case node.Object:
		v.Fields = make([]Member, 0, n.Len())
		for f, c := range n.Fields() {
			v.Fields = append(v.Fields, Member{Field: f, Value: ToValue(c)})
		}
	case node.List:
		v.Elem = n.ElemKind()
		v.Elems = make([]*Value, 0, n.Len())
		for _, e := range n.Elems() {
			v.Elems = append(v.Elems, ToValue(e))
		}
	}
	return v
}

func (v *Value) setFloat(f float64, bits uint64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		v.Bits = strconv.FormatUint(bits, 16)
		return
	}
	v.Float = &f
}

func (v *Value) floatBits() (uint64, bool, error) {
	if v.Bits == "" {
		return 0, false, nil
	}
	bits, err := strconv.ParseUint(v.Bits, 16, 64)
	if err != nil {
		return 0, false, fmt.Errorf("bits %q: %w", v.Bits, err)
	}
	return bits, true, nil
}

// FromValue builds the tree v describes. Repeated field numbers in an object
// merge into a list as they would on the wire.
func FromValue(v *Value) (*node.Node, error) {
	if v == nil {
		return nil, node.ErrNilNode
	}
	switch v.Kind {
	case node.Integer:
		return node.FromUint(v.Uint), nil
	case node.Float:
		bits, ok, err := v.floatBits()
		if err != nil {
			return nil, err
		}
		if ok {
			return node.FromFloat32(math.Float32frombits(uint32(bits))), nil
		}
		var f float64
		if v.Float != nil {
			f = *v.Float
		}
		return node.FromFloat32(float32(f)), nil
	case node.Double:
		bits, ok, err := v.floatBits()
		if err != nil {
			return nil, err
		}
		if ok {
			return node.FromFloat64(math.Float64frombits(bits)), nil
		}
		var f float64
		if v.Float != nil {
			f = *v.Float
		}
		return node.FromFloat64(f), nil
	case node.String:
		return node.FromString(v.Text), nil
	case node.Bytes:
		return node.FromBytes(v.Bytes), nil
	case node.Object:
		res := node.NewObject()
		for _, m := range v.Fields {
			c, err := FromValue(m.Value)
			if err != nil {
				return nil, fmt.Errorf("field %d: %w", m.Field, err)
			}
			if err := res.Add(m.Field, c); err != nil {
				return nil, err
			}
		}
		return res, nil
	case node.List:
		if !v.Elem.Valid() {
			return nil, fmt.Errorf("%w: list of %s", node.ErrInvalidKind, v.Elem)
		}
		res := node.NewList(v.Elem)
		for i, e := range v.Elems {
			c, err := FromValue(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			if err := res.Append(c); err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %d", node.ErrInvalidKind, int(v.Kind))
	}
}
