package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Reader is a cursor over an immutable byte slice.
type Reader struct {
	data []byte
	pos  int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) Len() int       { return len(r.data) }
func (r *Reader) Pos() int       { return r.pos }
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// Available reports whether n more bytes can be read.
func (r *Reader) Available(n int) bool {
	return n >= 0 && n <= len(r.data)-r.pos
}

func (r *Reader) need(n int) error {
	if !r.Available(n) {
		return fmt.Errorf("%w: need %d bytes at %d, have %d", ErrBounds, n, r.pos, r.Remaining())
	}
	return nil
}

func (r *Reader) ReadByte() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *Reader) Uint32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

func (r *Reader) Uint64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v, nil
}

func (r *Reader) Float32() (float32, error) {
	v, err := r.Uint32()
	return math.Float32frombits(v), err
}

func (r *Reader) Float64() (float64, error) {
	v, err := r.Uint64()
	return math.Float64frombits(v), err
}

// Span returns the next n bytes without copying them and advances past them.
// The result aliases the reader's data.
func (r *Reader) Span(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.data[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return b, nil
}

// Text reads n bytes as a string. The cursor never consumes a length prefix
// on its own.
func (r *Reader) Text(n int) (string, error) {
	b, err := r.Span(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Seek implements io.Seeker. Seeking to exactly the end is allowed, anything
// outside [0, Len()] fails.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = int64(r.pos)
	case io.SeekEnd:
		base = int64(len(r.data))
	default:
		return int64(r.pos), fmt.Errorf("%w: %d", ErrWhence, whence)
	}
	next := base + offset
	if next < 0 || next > int64(len(r.data)) {
		return int64(r.pos), fmt.Errorf("%w: seek to %d (len %d)", ErrBounds, next, len(r.data))
	}
	r.pos = int(next)
	return next, nil
}

// Skip advances n bytes.
func (r *Reader) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// Slice returns an independent reader over data[start:start+length]. The
// receiver's position is unaffected.
func (r *Reader) Slice(start, length int) (*Reader, error) {
	if start < 0 || length < 0 || start > len(r.data) || length > len(r.data)-start {
		return nil, fmt.Errorf("%w: slice [%d:+%d] (len %d)", ErrBounds, start, length, len(r.data))
	}
	return NewReader(r.data[start : start+length : start+length]), nil
}

// Rest returns the unread bytes without advancing.
func (r *Reader) Rest() []byte {
	return r.data[r.pos:]
}
