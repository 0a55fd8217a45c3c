package classify

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want Class
	}{
		{"empty", nil, Empty},
		{"ascii", []byte("hello, world"), Text},
		{"whitespace controls", []byte("a\tb\r\nc"), Text},
		// 0x48 is field 9 varint, 0x69 its value: text wins
		{"text that is also a message", []byte("Hi"), Text},
		{"message", []byte{0x08, 0x96, 0x01, 0x12, 0x01, 'x'}, Message},
		{"nested message", []byte{0x1a, 0x02, 0x08, 0x01}, Message},
		{"truncated length", []byte{0x12, 0x05, 'x'}, Opaque},
		{"start group", []byte{0x0b, 0x00}, Opaque},
		{"field zero", []byte{0x00, 0x01}, Opaque},
		{"random", []byte{0xff, 0xfe, 0xfd}, Opaque},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.in); got != tt.want {
				t.Errorf("Classify(% x) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsText(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want bool
	}{
		{"two byte", []byte("café"), true},
		{"three byte", []byte("世界"), true},
		{"multibyte at end", []byte{'a', 0xc3, 0xa9}, true},
		{"three byte at end", []byte{0xe4, 0xb8, 0x96}, true},
		{"four byte", []byte("😀"), false},
		{"nul", []byte{'a', 0x00}, false},
		{"escape", []byte{0x1b, '['}, false},
		{"overlong two byte", []byte{0xc0, 0x80}, false},
		{"overlong c1", []byte{0xc1, 0xbf}, false},
		{"overlong three byte", []byte{0xe0, 0x80, 0x80}, false},
		{"surrogate", []byte{0xed, 0xa0, 0x80}, false},
		{"stray continuation", []byte{0x80}, false},
		{"truncated", []byte{0xe4, 0xb8}, false},
		{"bad continuation", []byte{0xc3, 0x41}, false},
		{"max bmp", []byte{0xef, 0xbf, 0xbf}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsText(tt.in); got != tt.want {
				t.Errorf("IsText(% x) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsMessage(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want bool
	}{
		{"empty", nil, true},
		{"fixed32", []byte{0x0d, 1, 2, 3, 4}, true},
		{"fixed64 short", []byte{0x09, 1, 2, 3}, false},
		{"length exact", []byte{0x0a, 0x00}, true},
		{"length past end", []byte{0x0a, 0x01}, false},
		{"huge length", []byte{0x0a, 0xff, 0xff, 0xff, 0xff, 0x0f}, false},
		{"unterminated varint", []byte{0x08, 0x80}, false},
		{"end group", []byte{0x0c}, false},
		{"wire type 6", []byte{0x0e}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMessage(tt.in); got != tt.want {
				t.Errorf("IsMessage(% x) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
