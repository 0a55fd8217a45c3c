package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Writer fills a fixed size buffer. It never grows: callers plan the exact
// size first and a write past the end is an error.
type Writer struct {
	buf []byte
	pos int
}

func NewWriter(size int) *Writer {
	return &Writer{buf: make([]byte, size)}
}

// WriterOn wraps an existing buffer, writing from its start.
func WriterOn(buf []byte) *Writer {
	return &Writer{buf: buf}
}

func (w *Writer) Len() int       { return len(w.buf) }
func (w *Writer) Pos() int       { return w.pos }
func (w *Writer) Remaining() int { return len(w.buf) - w.pos }

// Bytes returns the whole underlying buffer.
func (w *Writer) Bytes() []byte { return w.buf }

func (w *Writer) room(n int) error {
	if n < 0 || n > len(w.buf)-w.pos {
		return fmt.Errorf("%w: write %d bytes at %d, room for %d", ErrBounds, n, w.pos, w.Remaining())
	}
	return nil
}

func (w *Writer) WriteByte(b byte) error {
	if err := w.room(1); err != nil {
		return err
	}
	w.buf[w.pos] = b
	w.pos++
	return nil
}

func (w *Writer) PutUint32(v uint32) error {
	if err := w.room(4); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(w.buf[w.pos:], v)
	w.pos += 4
	return nil
}

func (w *Writer) PutInt32(v int32) error {
	return w.PutUint32(uint32(v))
}

func (w *Writer) PutUint64(v uint64) error {
	if err := w.room(8); err != nil {
		return err
	}
	binary.BigEndian.PutUint64(w.buf[w.pos:], v)
	w.pos += 8
	return nil
}

func (w *Writer) PutFloat32(v float32) error {
	return w.PutUint32(math.Float32bits(v))
}

func (w *Writer) PutFloat64(v float64) error {
	return w.PutUint64(math.Float64bits(v))
}

// Write implements io.Writer but refuses short writes.
func (w *Writer) Write(p []byte) (int, error) {
	if err := w.room(len(p)); err != nil {
		return 0, err
	}
	n := copy(w.buf[w.pos:], p)
	w.pos += n
	return n, nil
}

func (w *Writer) WriteString(s string) (int, error) {
	if err := w.room(len(s)); err != nil {
		return 0, err
	}
	n := copy(w.buf[w.pos:], s)
	w.pos += n
	return n, nil
}

// Seek implements io.Seeker with the same rules as Reader.Seek.
func (w *Writer) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = int64(w.pos)
	case io.SeekEnd:
		base = int64(len(w.buf))
	default:
		return int64(w.pos), fmt.Errorf("%w: %d", ErrWhence, whence)
	}
	next := base + offset
	if next < 0 || next > int64(len(w.buf)) {
		return int64(w.pos), fmt.Errorf("%w: seek to %d (len %d)", ErrBounds, next, len(w.buf))
	}
	w.pos = int(next)
	return next, nil
}
