// Package format names the text renderings of a tree: the indented tree view
// and the YAML and JSON document models that can be read back.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	TreeFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

// names lists the spellings of each format, canonical name and file
// extension first.
var names = [...][]string{
	TreeFormat: {"tree", "", "t"},
	YAMLFormat: {"yaml", "yaml", "y", "yml"},
	JSONFormat: {"json", "json", "j"},
}

// ParseFormat reads a format name, short form or file extension, in any
// case and with or without the leading dot: "json", "J", ".yml".
func ParseFormat(v string) (Format, error) {
	s := strings.ToLower(strings.TrimPrefix(v, "."))
	if s != "" {
		for f, ns := range names {
			for _, n := range ns {
				if n == s {
					return Format(f), nil
				}
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// ForPath is the document format named by the extension of path. The tree
// view is never stored, so a path never selects it.
func ForPath(path string) (Format, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, false
	}
	f, err := ParseFormat(ext)
	if err != nil || !f.Document() {
		return 0, false
	}
	return f, true
}

func (f Format) valid() bool {
	return f >= TreeFormat && f <= JSONFormat
}

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("format(%d)", int(f))
	}
	return names[f][0]
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(names[f][0]), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Document reports whether f can be read back into a tree.
func (f Format) Document() bool { return f == YAMLFormat || f == JSONFormat }

func (f Format) IsJSON() bool { return f == JSONFormat }

// Suffix is the file extension for f, with the dot, or "" for the tree.
func (f Format) Suffix() string {
	if !f.Document() {
		return ""
	}
	return "." + names[f][1]
}

func AllFormats() []Format {
	return []Format{TreeFormat, YAMLFormat, JSONFormat}
}
