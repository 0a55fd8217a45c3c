package node

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/script-1024/giviewer/wire"
)

func mustFields(t *testing.T, fields ...Field) *Node {
	t.Helper()
	n, err := FromFields(fields...)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func mustSlice(t *testing.T, k Kind, elems ...*Node) *Node {
	t.Helper()
	n, err := FromSlice(k, elems)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func mustEncode(t *testing.T, n *Node) []byte {
	t.Helper()
	b, err := Encode(n)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestEncodeLayout(t *testing.T) {
	tests := []struct {
		name string
		in   func(t *testing.T) *Node
		want []byte
	}{
		{
			name: "varint",
			in: func(t *testing.T) *Node {
				return mustFields(t, Field{1, FromUint(150)})
			},
			want: []byte{0x08, 0x96, 0x01},
		},
		{
			name: "zero elision",
			in: func(t *testing.T) *Node {
				return mustFields(t,
					Field{1, FromUint(0)},
					Field{2, FromString("")},
					Field{3, FromUint(7)},
					Field{4, FromBytes(nil)},
					Field{5, FromFloat32(0)},
				)
			},
			want: []byte{0x18, 0x07},
		},
		{
			name: "negative zero elided",
			in: func(t *testing.T) *Node {
				return mustFields(t, Field{1, FromFloat64(negZero())})
			},
			want: []byte{},
		},
		{
			name: "packed integers",
			in: func(t *testing.T) *Node {
				return mustFields(t, Field{5, mustSlice(t, Integer, FromUint(1), FromUint(2), FromUint(3))})
			},
			want: []byte{0x2a, 0x03, 0x01, 0x02, 0x03},
		},
		{
			name: "packed keeps zero elements",
			in: func(t *testing.T) *Node {
				return mustFields(t, Field{5, mustSlice(t, Integer, FromUint(0), FromUint(1))})
			},
			want: []byte{0x2a, 0x02, 0x00, 0x01},
		},
		{
			name: "packed floats",
			in: func(t *testing.T) *Node {
				return mustFields(t, Field{2, mustSlice(t, Float, FromFloat32(1.5), FromFloat32(0))})
			},
			want: []byte{0x12, 0x08, 0x3f, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			name: "empty packed list elided",
			in: func(t *testing.T) *Node {
				return mustFields(t, Field{5, NewList(Integer)}, Field{1, FromUint(1)})
			},
			want: []byte{0x08, 0x01},
		},
		{
			name: "repeated strings",
			in: func(t *testing.T) *Node {
				return mustFields(t, Field{5, mustSlice(t, String, FromString("a"), FromString("b"), FromString("c"))})
			},
			want: []byte{0x2a, 0x01, 'a', 0x2a, 0x01, 'b', 0x2a, 0x01, 'c'},
		},
		{
			name: "nested objects",
			in: func(t *testing.T) *Node {
				inner := mustFields(t, Field{1, FromUint(1)})
				return mustFields(t, Field{3, inner}, Field{4, NewObject()})
			},
			want: []byte{0x1a, 0x02, 0x08, 0x01, 0x22, 0x00},
		},
		{
			name: "big-endian double",
			in: func(t *testing.T) *Node {
				return mustFields(t, Field{1, FromFloat64(1.5)})
			},
			want: []byte{0x09, 0x3f, 0xf8, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "zigzag",
			in: func(t *testing.T) *Node {
				v, err := FromInt(-1, true)
				if err != nil {
					t.Fatal(err)
				}
				return mustFields(t, Field{1, v})
			},
			want: []byte{0x08, 0x01},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.in(t)
			got := mustEncode(t, n)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Encode (-want +got):\n%s", diff)
			}
			if p := n.Plan(0); p.Size() != len(got) {
				t.Errorf("planned %d bytes, wrote %d", p.Size(), len(got))
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inner := mustFields(t,
		Field{1, FromUint(1)},
		Field{2, FromString("inner")},
	)
	doc := mustFields(t,
		Field{1, FromUint(150)},
		Field{2, FromString("hello")},
		Field{3, inner},
		Field{4, FromFloat64(1.5)},
		Field{5, FromFloat32(2.5)},
		Field{6, FromBytes([]byte{0xff, 0xfe})},
		Field{7, mustSlice(t, String, FromString("x"), FromString("y"))},
		Field{8, FromString("héllo 世界")},
		Field{9, NewObject()},
	)
	b := mustEncode(t, doc)
	got, err := Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(doc, got) {
		t.Errorf("decoded %v differs from %v", got, doc)
	}
	again := mustEncode(t, got)
	if diff := cmp.Diff(b, again); diff != "" {
		t.Errorf("re-encode (-first +second):\n%s", diff)
	}
}

func TestDecodeRepeatedPromotesToList(t *testing.T) {
	got, err := Decode([]byte{0x38, 0x05, 0x38, 0x09})
	if err != nil {
		t.Fatal(err)
	}
	v := got.Get(7)
	if v == nil || v.Kind() != List || v.ElemKind() != Integer || v.Len() != 2 {
		t.Fatalf("field 7 = %v", v)
	}
	if a, _ := v.Index(0).Uint(); a != 5 {
		t.Errorf("[0] = %d", a)
	}
	if b, _ := v.Index(1).Uint(); b != 9 {
		t.Errorf("[1] = %d", b)
	}
}

func TestDecodeEmptyPayload(t *testing.T) {
	got, err := Decode([]byte{0x0a, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	v := got.Get(1)
	if v == nil || v.Kind() != Object || v.Len() != 0 {
		t.Fatalf("field 1 = %v, want empty object", v)
	}
}

func TestDecodeEmptyPayloadFollowsSiblings(t *testing.T) {
	got, err := Decode([]byte{0x0a, 0x02, 'h', 'i', 0x0a, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	want := mustFields(t, Field{1, mustSlice(t, String, FromString("hi"), FromString(""))})
	if !Equal(want, got) {
		t.Errorf("got %v", got.Get(1))
	}
}

func TestDecodeDegrades(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"start group wire type", []byte{0x0b}},
		{"wire type after valid field", []byte{0x08, 0x01, 0x14}},
		{"field zero", []byte{0x00, 0x01}},
		{"mixed wire types in one field", []byte{0x08, 0x01, 0x0d, 0, 0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			b, ok := got.Bytes()
			if !ok {
				t.Fatalf("got %v, want bytes", got)
			}
			if diff := cmp.Diff(tt.in, b); diff != "" {
				t.Errorf("opaque payload (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeMixedPayloadsKeptAsBytes(t *testing.T) {
	// "hi" then a message {1: 1}
	got, err := Decode([]byte{0x0a, 0x02, 'h', 'i', 0x0a, 0x02, 0x08, 0x01})
	if err != nil {
		t.Fatal(err)
	}
	v := got.Get(1)
	if v == nil || v.ElemKind() != Bytes || v.Len() != 2 {
		t.Fatalf("field 1 = %v", v)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want error
	}{
		{"truncated varint", []byte{0x08, 0x80}, wire.ErrBounds},
		{"truncated length", []byte{0x0a, 0x05, 'a'}, wire.ErrBounds},
		{"truncated fixed", []byte{0x0d, 0x01}, wire.ErrBounds},
		{"overlong varint", []byte{0x08, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}, wire.ErrMalformedVarint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.in); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecodeDepthLimit(t *testing.T) {
	var b []byte
	for range MaxDepth + 2 {
		b = append(wire.AppendVarint([]byte{0x0a}, uint64(len(b))), b...)
	}
	n, err := Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	for range MaxDepth {
		n = n.Get(1)
		if n == nil || n.Kind() != Object {
			t.Fatalf("nesting ended early at %v", n)
		}
	}
	if got := n.Get(1); got == nil || got.Kind() != Bytes {
		t.Errorf("beyond the limit: %v", got)
	}
}

func TestStalePlan(t *testing.T) {
	n := mustFields(t, Field{1, FromUint(1)})
	p := n.Plan(0)

	if err := n.Get(1).SetUint(300); err != nil {
		t.Fatal(err)
	}
	w := wire.NewWriter(16)
	if err := n.Write(w, 0, p); !errors.Is(err, ErrStalePlan) {
		t.Errorf("value changed: %v", err)
	}

	n = mustFields(t, Field{1, FromUint(1)})
	p = n.Plan(0)
	if err := n.Set(2, FromUint(2)); err != nil {
		t.Fatal(err)
	}
	w = wire.NewWriter(16)
	if err := n.Write(w, 0, p); !errors.Is(err, ErrStalePlan) {
		t.Errorf("field added: %v", err)
	}
}

func TestWriteNoRoom(t *testing.T) {
	n := mustFields(t, Field{1, FromString("hello")})
	p := n.Plan(0)
	w := wire.NewWriter(p.Size() - 1)
	if err := n.Write(w, 0, p); !errors.Is(err, wire.ErrBounds) {
		t.Errorf("got %v", err)
	}
}

func TestPlanChildren(t *testing.T) {
	n := mustFields(t,
		Field{1, FromString("abc")},
		Field{2, FromUint(0)},
		Field{3, mustSlice(t, Integer, FromUint(300), FromUint(1))},
	)
	p := n.Plan(0)
	if p.Len() != 3 {
		t.Fatalf("%d child plans", p.Len())
	}
	if got := p.Child(0).Size(); got != 5 {
		t.Errorf("string: %d", got)
	}
	if got := p.Child(1).Size(); got != 0 {
		t.Errorf("elided zero: %d", got)
	}
	if got := p.Child(2).Body(); got != 3 {
		t.Errorf("packed body: %d", got)
	}
	if got := p.Size(); got != 5+0+5 {
		t.Errorf("root: %d", got)
	}
	if got := p.Child(9); got.Size() != 0 {
		t.Errorf("out of range child: %v", got)
	}
}

func negZero() float64 {
	return math.Copysign(0, -1)
}
