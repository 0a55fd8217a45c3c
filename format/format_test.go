package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %v, %v", f, got, err)
		}
	}
	tests := []struct {
		in   string
		want Format
	}{
		{"y", YAMLFormat},
		{"YML", YAMLFormat},
		{".yaml", YAMLFormat},
		{"J", JSONFormat},
		{".json", JSONFormat},
		{"t", TreeFormat},
	}
	for _, tt := range tests {
		if got, err := ParseFormat(tt.in); err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	for _, in := range []string{"toml", "", "."} {
		if _, err := ParseFormat(in); !errors.Is(err, ErrBadFormat) {
			t.Errorf("ParseFormat(%q): %v", in, err)
		}
	}
	var f Format
	if err := f.UnmarshalText([]byte("json")); err != nil || !f.IsJSON() {
		t.Errorf("UnmarshalText: %v, %v", f, err)
	}
	if _, err := Format(9).MarshalText(); !errors.Is(err, ErrBadFormat) {
		t.Errorf("MarshalText(9): %v", err)
	}
}

func TestForPath(t *testing.T) {
	for _, f := range []Format{YAMLFormat, JSONFormat} {
		got, ok := ForPath("out/doc" + f.Suffix())
		if !ok || got != f {
			t.Errorf("ForPath(%q) = %v, %v", f.Suffix(), got, ok)
		}
	}
	for _, p := range []string{"a.gil", "a.tree", "a.t", "noext", "", "-"} {
		if f, ok := ForPath(p); ok {
			t.Errorf("ForPath(%q) = %v", p, f)
		}
	}
	if got, ok := ForPath("A.YML"); !ok || got != YAMLFormat {
		t.Errorf("ForPath(A.YML) = %v, %v", got, ok)
	}
	if TreeFormat.Suffix() != "" {
		t.Errorf("tree suffix %q", TreeFormat.Suffix())
	}
}
