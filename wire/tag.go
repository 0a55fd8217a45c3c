package wire

import "fmt"

type WireType uint8

const (
	Varint  WireType = 0
	Fixed64 WireType = 1
	Length  WireType = 2
	Fixed32 WireType = 5
)

// MaxField is the largest field number a tag may carry.
const MaxField = 1<<29 - 1

func (t WireType) Valid() bool {
	switch t {
	case Varint, Fixed64, Length, Fixed32:
		return true
	default:
		return false
	}
}

func (t WireType) String() string {
	switch t {
	case Varint:
		return "varint"
	case Fixed64:
		return "fixed64"
	case Length:
		return "length"
	case Fixed32:
		return "fixed32"
	default:
		return fmt.Sprintf("wiretype(%d)", uint8(t))
	}
}

// Tag is a decoded field key.
type Tag struct {
	Field int
	Type  WireType
}

// ParseTag unpacks v. It does not validate the field number.
func ParseTag(v uint64) Tag {
	return Tag{Field: int(v >> 3), Type: WireType(v & 7)}
}

func (t Tag) Uint() uint64 {
	return uint64(t.Field)<<3 | uint64(t.Type&7)
}

// ValidField reports whether t names a field a GI object can hold.
func (t Tag) ValidField() bool {
	return t.Field > 0 && t.Field <= MaxField
}

func (t Tag) String() string {
	return fmt.Sprintf("%d:%s", t.Field, t.Type)
}

// SizeTag is the encoded size of a tag for field; the wire type does not
// change it.
func SizeTag(field int) int {
	return SizeVarint(uint64(field) << 3)
}

func (r *Reader) ReadTag() (Tag, error) {
	v, err := r.ReadVarint()
	if err != nil {
		return Tag{}, err
	}
	return ParseTag(v), nil
}

func (w *Writer) WriteTag(field int, t WireType) error {
	return w.WriteVarint(Tag{Field: field, Type: t}.Uint())
}
