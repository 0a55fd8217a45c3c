package gifile

import (
	"fmt"
	"strings"
)

// FileType is the kind of document a GI file carries. Values the format
// does not name read as Unknown.
type FileType int32

const (
	Unknown FileType = iota
	Gip
	Gil
	Gia
	Gir
)

func (t FileType) Valid() bool {
	return t >= Unknown && t <= Gir
}

func (t FileType) String() string {
	switch t {
	case Gip:
		return "gip"
	case Gil:
		return "gil"
	case Gia:
		return "gia"
	case Gir:
		return "gir"
	default:
		return "unknown"
	}
}

// Ext is the file name extension for t, with the dot.
func (t FileType) Ext() string {
	if t == Unknown {
		return ".gi"
	}
	return "." + t.String()
}

func (t FileType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *FileType) UnmarshalText(d []byte) error {
	ft, err := ParseFileType(string(d))
	if err != nil {
		return err
	}
	*t = ft
	return nil
}

func FileTypes() []FileType {
	return []FileType{Gip, Gil, Gia, Gir}
}

func ParseFileType(s string) (FileType, error) {
	s = strings.ToLower(s)
	if s == "unknown" {
		return Unknown, nil
	}
	for _, t := range FileTypes() {
		if t.String() == s {
			return t, nil
		}
	}
	return Unknown, fmt.Errorf("unknown file type %q", s)
}

// FileTypeFromExt maps an extension such as ".gil" to its type, Unknown if
// there is none.
func FileTypeFromExt(ext string) FileType {
	t, err := ParseFileType(strings.TrimPrefix(ext, "."))
	if err != nil {
		return Unknown
	}
	return t
}
