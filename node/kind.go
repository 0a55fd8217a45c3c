package node

import (
	"fmt"

	"github.com/script-1024/giviewer/wire"
)

// Kind is the value kind of a node. The set is closed.
type Kind int

const (
	Invalid Kind = iota
	Integer
	Float
	Double
	String
	Bytes
	Object
	List
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		Integer: "integer",
		Float:   "float",
		Double:  "double",
		String:  "string",
		Bytes:   "bytes",
		Object:  "object",
		List:    "list",
	}[k]
	if ok {
		return s
	}
	return "<invalid kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = kk
	return nil
}

// ParseKind accepts the names printed by String and a few short forms.
func ParseKind(s string) (Kind, error) {
	k, ok := map[string]Kind{
		"integer": Integer,
		"int":     Integer,
		"i":       Integer,
		"float":   Float,
		"f":       Float,
		"double":  Double,
		"d":       Double,
		"string":  String,
		"s":       String,
		"bytes":   Bytes,
		"b":       Bytes,
		"object":  Object,
		"o":       Object,
		"list":    List,
		"l":       List,
	}[s]
	if !ok {
		return Invalid, fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
	return k, nil
}

func Kinds() []Kind {
	return []Kind{Integer, Float, Double, String, Bytes, Object, List}
}

func (k Kind) Valid() bool {
	return k >= Integer && k <= List
}

// WireType is the framing used for a node of kind k.
func (k Kind) WireType() wire.WireType {
	switch k {
	case Integer:
		return wire.Varint
	case Float:
		return wire.Fixed32
	case Double:
		return wire.Fixed64
	default:
		return wire.Length
	}
}

// IsScalar reports whether k has a fixed width or varint body with no length
// prefix.
func (k Kind) IsScalar() bool {
	switch k {
	case Integer, Float, Double:
		return true
	default:
		return false
	}
}

// IsLeaf reports whether k has no children.
func (k Kind) IsLeaf() bool {
	switch k {
	case Object, List:
		return false
	default:
		return true
	}
}

// KindOf maps a wire type read from a tag to the scalar kind it decodes to.
// Length-delimited payloads need classification and report false.
func KindOf(t wire.WireType) (Kind, bool) {
	switch t {
	case wire.Varint:
		return Integer, true
	case wire.Fixed32:
		return Float, true
	case wire.Fixed64:
		return Double, true
	default:
		return Invalid, false
	}
}
