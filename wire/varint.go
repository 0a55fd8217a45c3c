package wire

import (
	"fmt"
	"math/bits"
)

// MaxVarintLen is the longest varint accepted, enough for a uint64.
const MaxVarintLen = 10

// ReadVarint decodes one varint. Running out of data is a bounds error; a
// tenth byte that still has its continuation bit set is ErrMalformedVarint.
func (r *Reader) ReadVarint() (uint64, error) {
	var v uint64
	start := r.pos
	for i := 0; i < MaxVarintLen; i++ {
		b, err := r.ReadByte()
		if err != nil {
			r.pos = start
			return 0, err
		}
		v |= uint64(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			return v, nil
		}
	}
	r.pos = start
	return 0, fmt.Errorf("%w: no terminator within %d bytes at %d", ErrMalformedVarint, MaxVarintLen, start)
}

// WriteVarint writes the minimal encoding of v.
func (w *Writer) WriteVarint(v uint64) error {
	if err := w.room(SizeVarint(v)); err != nil {
		return err
	}
	for v >= 0x80 {
		w.buf[w.pos] = byte(v) | 0x80
		w.pos++
		v >>= 7
	}
	w.buf[w.pos] = byte(v)
	w.pos++
	return nil
}

// WriteSigned writes v, zig-zag transformed when zigzag is set. Negative
// values without zig-zag are refused rather than written as ten byte
// two's complement.
func (w *Writer) WriteSigned(v int64, zigzag bool) error {
	u, err := unsigned(v, zigzag)
	if err != nil {
		return err
	}
	return w.WriteVarint(u)
}

// AppendVarint appends the encoding of v to dst.
func AppendVarint(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// SizeVarint returns len(AppendVarint(nil, v)) without encoding.
func SizeVarint(v uint64) int {
	n := bits.Len64(v)
	if n == 0 {
		return 1
	}
	return (n + 6) / 7
}

// SizeSigned is SizeVarint for a signed value with the same rules as
// WriteSigned.
func SizeSigned(v int64, zigzag bool) (int, error) {
	u, err := unsigned(v, zigzag)
	if err != nil {
		return 0, err
	}
	return SizeVarint(u), nil
}

// Unsigned maps v to the stored varint value.
func Unsigned(v int64, zigzag bool) (uint64, error) {
	return unsigned(v, zigzag)
}

func unsigned(v int64, zigzag bool) (uint64, error) {
	if zigzag {
		return ZigZag64(v), nil
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegative, v)
	}
	return uint64(v), nil
}

func ZigZag32(v int32) uint32 {
	return uint32(v<<1) ^ uint32(v>>31)
}

func UnZigZag32(v uint32) int32 {
	return int32(v>>1) ^ -int32(v&1)
}

func ZigZag64(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

func UnZigZag64(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}
