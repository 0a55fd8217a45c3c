package classify

import (
	"github.com/script-1024/giviewer/debug"
	"github.com/script-1024/giviewer/wire"
)

type Class int

const (
	Empty Class = iota
	Text
	Message
	Opaque
)

func (c Class) String() string {
	switch c {
	case Empty:
		return "empty"
	case Text:
		return "text"
	case Message:
		return "message"
	case Opaque:
		return "opaque"
	default:
		return "<unknown class>"
	}
}

// Classify applies the decoding precedence to b.
func Classify(b []byte) Class {
	c := classify(b)
	if debug.Classify() {
		debug.Logf("classify %d bytes: %s\n", len(b), c)
	}
	return c
}

func classify(b []byte) Class {
	switch {
	case len(b) == 0:
		return Empty
	case IsText(b):
		return Text
	case IsMessage(b):
		return Message
	default:
		return Opaque
	}
}

// IsText reports whether b is text the GI format accepts: UTF-8 restricted to
// the Basic Multilingual Plane, without surrogates, overlong forms or control
// characters other than '\n', '\t' and '\r'.
func IsText(b []byte) bool {
	for i := 0; i < len(b); {
		c := b[i]
		i++
		if c < 0x80 {
			if c < 0x20 && c != '\n' && c != '\t' && c != '\r' {
				return false
			}
			continue
		}
		var (
			need int
			cp   rune
			lo   rune
		)
		switch {
		case c&0xe0 == 0xc0:
			if c < 0xc2 {
				return false
			}
			need, cp, lo = 1, rune(c&0x1f), 0x80
		case c&0xf0 == 0xe0:
			need, cp, lo = 2, rune(c&0x0f), 0x800
		default:
			// stray continuation bytes and 4-byte leads
			return false
		}
		if i+need > len(b) {
			return false
		}
		for j := 0; j < need; j++ {
			cc := b[i]
			i++
			if cc&0xc0 != 0x80 {
				return false
			}
			cp = cp<<6 | rune(cc&0x3f)
		}
		if cp < lo {
			return false
		}
		if cp >= 0xd800 && cp <= 0xdfff {
			return false
		}
	}
	return true
}

// IsMessage reports whether b is a sequence of well framed tag/value pairs
// ending exactly at len(b). Field numbers must be in (0, wire.MaxField].
func IsMessage(b []byte) bool {
	r := wire.NewReader(b)
	for r.Remaining() > 0 {
		if !skipField(r) {
			return false
		}
	}
	return true
}

func skipField(r *wire.Reader) bool {
	tag, err := r.ReadTag()
	if err != nil || !tag.ValidField() {
		return false
	}
	switch tag.Type {
	case wire.Varint:
		_, err = r.ReadVarint()
	case wire.Fixed32:
		err = r.Skip(4)
	case wire.Fixed64:
		err = r.Skip(8)
	case wire.Length:
		var n uint64
		n, err = r.ReadVarint()
		if err != nil {
			return false
		}
		if n > uint64(r.Remaining()) {
			return false
		}
		err = r.Skip(int(n))
	default:
		return false
	}
	return err == nil
}
