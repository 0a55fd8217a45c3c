package node

import "testing"

func TestCompare(t *testing.T) {
	obj := func(fs ...Field) *Node {
		n, err := FromFields(fs...)
		if err != nil {
			t.Fatal(err)
		}
		return n
	}
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		{"Integer < Float", FromUint(9), FromFloat32(0), -1},
		{"Double < String", FromFloat64(1), FromString(""), -1},
		{"String < Bytes", FromString("z"), FromBytes(nil), -1},
		{"Object < List", NewObject(), NewList(Integer), -1},

		{"Integer order", FromUint(1), FromUint(2), -1},
		{"Integer equal", FromUint(2), FromUint(2), 0},
		{"String order", FromString("b"), FromString("a"), 1},
		{"Bytes order", FromBytes([]byte{1}), FromBytes([]byte{1, 0}), -1},

		{"Member order ignored",
			obj(Field{1, FromUint(1)}, Field{2, FromUint(2)}),
			obj(Field{2, FromUint(2)}, Field{1, FromUint(1)}),
			0},
		{"Fewer members first",
			obj(Field{1, FromUint(1)}),
			obj(Field{1, FromUint(1)}, Field{2, FromUint(2)}),
			-1},
		{"Member value",
			obj(Field{1, FromUint(1)}),
			obj(Field{1, FromUint(3)}),
			-1},
		{"List element kind", NewList(Integer), NewList(String), -1},
		{"nil first", nil, NewObject(), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.b, tt.a, got, -tt.expected)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	l, _ := FromSlice(String, []*Node{FromString(""), FromString("a")})
	packed, _ := FromSlice(Integer, []*Node{FromUint(0), FromUint(1)})
	n, err := FromFields(
		Field{1, l},
		Field{2, packed},
		Field{3, FromBytes(nil)},
	)
	if err != nil {
		t.Fatal(err)
	}
	c := Canonical(n)
	if c.Len() != 2 {
		t.Fatalf("canonical has %d members", c.Len())
	}
	if c.Get(1).Len() != 1 {
		t.Errorf("empty string element kept: %v", c.Get(1))
	}
	if c.Get(2).Len() != 2 {
		t.Errorf("packed zero dropped: %v", c.Get(2))
	}
}
