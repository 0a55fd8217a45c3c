package wire

import "fmt"

// Integer is the closed set of narrowing targets.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Enum is an integer type that can tell whether a value names one of its
// members.
type Enum interface {
	Integer
	Valid() bool
}

// Narrow converts v to T, reporting false when it does not fit.
func Narrow[T Integer](v uint64) (T, bool) {
	t := T(v)
	if t < 0 || uint64(t) != v {
		return 0, false
	}
	return t, true
}

// NarrowSigned converts v to T, reporting false when it does not fit.
func NarrowSigned[T Integer](v int64) (T, bool) {
	t := T(v)
	if int64(t) != v || (t < 0) != (v < 0) {
		return 0, false
	}
	return t, true
}

// Cast is Narrow with an error.
func Cast[T Integer](v uint64) (T, error) {
	t, ok := Narrow[T](v)
	if !ok {
		return t, fmt.Errorf("%w: %d as %T", ErrOverflow, v, t)
	}
	return t, nil
}

// CastSigned is NarrowSigned with an error.
func CastSigned[T Integer](v int64) (T, error) {
	t, ok := NarrowSigned[T](v)
	if !ok {
		return t, fmt.Errorf("%w: %d as %T", ErrOverflow, v, t)
	}
	return t, nil
}

// TryCast is Narrow under the name the tree accessors use.
func TryCast[T Integer](v uint64) (T, bool) {
	return Narrow[T](v)
}

// TryCastEnum converts v to E, failing when it does not fit or has no
// member.
func TryCastEnum[E Enum](v uint64) (E, bool) {
	e, ok := Narrow[E](v)
	if !ok || !e.Valid() {
		var zero E
		return zero, false
	}
	return e, true
}

// CastEnum converts v to E and falls back to the zero value of E when v has
// no member, so an invalid enum state is never produced.
func CastEnum[E Enum](v uint64) E {
	e, _ := TryCastEnum[E](v)
	return e
}

// CheckEnum is TryCastEnum with an error.
func CheckEnum[E Enum](v uint64) (E, error) {
	e, ok := TryCastEnum[E](v)
	if !ok {
		return e, fmt.Errorf("%w: %d as %T", ErrEnumValue, v, e)
	}
	return e, nil
}

// AsBool follows the varint convention that anything but zero is true.
func AsBool(v uint64) bool {
	return v != 0
}
