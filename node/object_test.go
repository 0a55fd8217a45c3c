package node

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/script-1024/giviewer/wire"
)

func TestAddMergesToList(t *testing.T) {
	obj := NewObject()
	if err := obj.Add(7, FromUint(5)); err != nil {
		t.Fatal(err)
	}
	if err := obj.Add(7, FromUint(9)); err != nil {
		t.Fatal(err)
	}
	before := obj.Get(7).Clone()
	if before.Kind() != List || before.Len() != 2 {
		t.Fatalf("field 7 = %v", before)
	}

	err := obj.Add(7, FromString("x"))
	if !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("adding a string: %v", err)
	}
	if !Equal(before, obj.Get(7)) {
		t.Errorf("failed add changed field 7 to %v", obj.Get(7))
	}

	if err := obj.Add(7, FromUint(11)); err != nil {
		t.Fatal(err)
	}
	var got []uint64
	for _, e := range obj.Get(7).Elems() {
		v, _ := e.Uint()
		got = append(got, v)
	}
	if diff := cmp.Diff([]uint64{5, 9, 11}, got); diff != "" {
		t.Errorf("elements (-want +got):\n%s", diff)
	}
}

func TestAddScalarMismatch(t *testing.T) {
	obj := mustFields(t, Field{3, FromString("a")})
	if err := obj.Add(3, FromUint(1)); !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("got %v", err)
	}
	if v := obj.Get(3); v.Kind() != String {
		t.Errorf("field 3 = %v", v)
	}
}

func TestFieldNumbers(t *testing.T) {
	obj := NewObject()
	for _, f := range []int{0, -1, wire.MaxField + 1} {
		if err := obj.Set(f, FromUint(1)); !errors.Is(err, ErrFieldNumber) {
			t.Errorf("Set(%d): %v", f, err)
		}
	}
	if err := obj.Set(wire.MaxField, FromUint(1)); err != nil {
		t.Errorf("Set(MaxField): %v", err)
	}
	if err := FromUint(1).Set(1, FromUint(1)); !errors.Is(err, ErrNotObject) {
		t.Errorf("Set on scalar: %v", err)
	}
	if err := obj.Set(2, nil); !errors.Is(err, ErrNilNode) {
		t.Errorf("Set nil: %v", err)
	}
}

func TestSetRemoveOrder(t *testing.T) {
	obj := mustFields(t,
		Field{3, FromUint(3)},
		Field{1, FromUint(1)},
		Field{2, FromUint(2)},
	)
	if err := obj.Set(1, FromString("one")); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{3, 1, 2}, obj.FieldNumbers()); diff != "" {
		t.Errorf("after Set (-want +got):\n%s", diff)
	}
	if v, ok := obj.Remove(3); !ok || v.Kind() != Integer {
		t.Errorf("Remove(3) = %v, %v", v, ok)
	}
	if _, ok := obj.Remove(3); ok {
		t.Error("removed twice")
	}
	if diff := cmp.Diff([]int{1, 2}, obj.FieldNumbers()); diff != "" {
		t.Errorf("after Remove (-want +got):\n%s", diff)
	}
}

func TestImplicitPresence(t *testing.T) {
	doc := mustFields(t,
		Field{1, FromUint(0)},
		Field{2, FromString("")},
		Field{3, FromUint(42)},
	)
	got, err := Decode(mustEncode(t, doc))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.Lookup(1); ok {
		t.Error("zero integer was written")
	}
	if v, err := got.FieldUint(1); err != nil || v != 0 {
		t.Errorf("FieldUint(1) = %d, %v", v, err)
	}
	if v, err := got.FieldText(2); err != nil || v != "" {
		t.Errorf("FieldText(2) = %q, %v", v, err)
	}
	if v, err := got.FieldUint(3); err != nil || v != 42 {
		t.Errorf("FieldUint(3) = %d, %v", v, err)
	}
	if _, err := got.FieldText(3); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("FieldText on integer: %v", err)
	}
	if !Equivalent(doc, got) {
		t.Error("not equivalent after round trip")
	}
	if Equal(doc, got) {
		t.Error("elided fields should make the trees differ")
	}
}

func TestFieldIntZigZag(t *testing.T) {
	v, err := FromInt(-3, true)
	if err != nil {
		t.Fatal(err)
	}
	obj := mustFields(t, Field{1, v})
	got, err := obj.FieldInt(1, true)
	if err != nil || got != -3 {
		t.Errorf("FieldInt = %d, %v", got, err)
	}
	if _, err := FromInt(-3, false); !errors.Is(err, wire.ErrNegative) {
		t.Errorf("negative without zigzag: %v", err)
	}
}

type mode uint8

const (
	modeOff mode = iota
	modeOn
	modeAuto
)

func (m mode) Valid() bool {
	return m <= modeAuto
}

func TestIntAs(t *testing.T) {
	big := FromUint(300)
	if _, err := IntAs[uint8](big, false); !errors.Is(err, wire.ErrOverflow) {
		t.Errorf("300 as uint8: %v", err)
	}
	if v, err := IntAs[uint16](big, false); err != nil || v != 300 {
		t.Errorf("300 as uint16: %d, %v", v, err)
	}
	neg, _ := FromInt(-100, true)
	if v, err := IntAs[int8](neg, true); err != nil || v != -100 {
		t.Errorf("-100 as int8: %d, %v", v, err)
	}
	if _, err := IntAs[int](FromString("x"), false); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("string as int: %v", err)
	}

	if m, err := EnumAs[mode](FromUint(2)); err != nil || m != modeAuto {
		t.Errorf("EnumAs(2) = %v, %v", m, err)
	}
	if _, err := EnumAs[mode](FromUint(3)); !errors.Is(err, wire.ErrEnumValue) {
		t.Errorf("EnumAs(3): %v", err)
	}
}

func TestCloneIndependent(t *testing.T) {
	orig := mustFields(t,
		Field{1, FromBytes([]byte{1, 2, 3})},
		Field{2, mustFields(t, Field{1, FromString("a")})},
		Field{3, mustSlice(t, Integer, FromUint(1))},
	)
	c := orig.Clone()
	if !Equal(orig, c) {
		t.Fatal("clone differs")
	}
	b, _ := c.Get(1).Bytes()
	b[0] = 9
	if err := c.Get(2).Set(1, FromString("b")); err != nil {
		t.Fatal(err)
	}
	if err := c.Get(3).Append(FromUint(2)); err != nil {
		t.Fatal(err)
	}
	if ob, _ := orig.Get(1).Bytes(); ob[0] != 1 {
		t.Error("bytes shared")
	}
	if s, _ := orig.Get(2).FieldText(1); s != "a" {
		t.Error("nested object shared")
	}
	if orig.Get(3).Len() != 1 {
		t.Error("list shared")
	}
}

func TestFromBytesCopies(t *testing.T) {
	src := []byte{1, 2}
	n := FromBytes(src)
	src[0] = 7
	if b, _ := n.Bytes(); b[0] != 1 {
		t.Error("FromBytes aliases its input")
	}
}

func TestListKinds(t *testing.T) {
	l := NewList(String)
	if err := l.Append(FromUint(1)); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("Append integer to strings: %v", err)
	}
	if l.Packed() {
		t.Error("string list packed")
	}
	if !NewList(Double).Packed() {
		t.Error("double list not packed")
	}
	if err := l.Append(FromString("a")); err != nil {
		t.Fatal(err)
	}
	if err := l.SetIndex(1, FromString("b")); !errors.Is(err, ErrIndex) {
		t.Errorf("SetIndex past end: %v", err)
	}
	if v, ok := l.RemoveAt(0); !ok || v.Kind() != String || l.Len() != 0 {
		t.Errorf("RemoveAt = %v, %v", v, ok)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("nope"); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("bad kind: %v", err)
	}
}
