package wire

import (
	"errors"
	"math"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

var varintSamples = []uint64{
	0, 1, 2, 127, 128, 255, 256, 300, 16383, 16384,
	1<<21 - 1, 1 << 21, 1<<28 - 1, 1 << 28, 1<<35 - 1, 1 << 35,
	1<<42 + 5, 1<<49 - 1, 1 << 56, 1<<63 - 1, 1 << 63, math.MaxUint64,
}

func TestVarintSizeLaw(t *testing.T) {
	for _, v := range varintSamples {
		enc := AppendVarint(nil, v)
		if got := SizeVarint(v); got != len(enc) {
			t.Errorf("SizeVarint(%d) = %d, encoded %d bytes", v, got, len(enc))
		}
		if want := protowire.AppendVarint(nil, v); string(want) != string(enc) {
			t.Errorf("AppendVarint(%d) = %x, want %x", v, enc, want)
		}
		got, err := NewReader(enc).ReadVarint()
		if err != nil {
			t.Fatalf("ReadVarint(%x): %v", enc, err)
		}
		if got != v {
			t.Errorf("ReadVarint(%x) = %d, want %d", enc, got, v)
		}
	}
}

func TestWriteVarintMatchesAppend(t *testing.T) {
	for _, v := range varintSamples {
		w := NewWriter(SizeVarint(v))
		if err := w.WriteVarint(v); err != nil {
			t.Fatalf("WriteVarint(%d): %v", v, err)
		}
		if w.Remaining() != 0 {
			t.Errorf("WriteVarint(%d) left %d bytes", v, w.Remaining())
		}
		if string(w.Bytes()) != string(AppendVarint(nil, v)) {
			t.Errorf("WriteVarint(%d) = %x", v, w.Bytes())
		}
	}
}

func TestWriteVarintNoRoom(t *testing.T) {
	w := NewWriter(1)
	if err := w.WriteVarint(300); !errors.Is(err, ErrBounds) {
		t.Fatalf("got %v, want ErrBounds", err)
	}
	if w.Pos() != 0 {
		t.Errorf("position moved to %d on failed write", w.Pos())
	}
}

func TestReadVarintMalformed(t *testing.T) {
	data := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	r := NewReader(data)
	if _, err := r.ReadVarint(); !errors.Is(err, ErrMalformedVarint) {
		t.Fatalf("got %v, want ErrMalformedVarint", err)
	}
	if r.Pos() != 0 {
		t.Errorf("position %d after failure, want 0", r.Pos())
	}
}

func TestReadVarintTruncated(t *testing.T) {
	r := NewReader([]byte{0x80, 0x80})
	if _, err := r.ReadVarint(); !errors.Is(err, ErrBounds) {
		t.Fatalf("got %v, want ErrBounds", err)
	}
}

func TestZigZagLaw(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 2, -2, 63, -64, math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64} {
		if got := UnZigZag64(ZigZag64(n)); got != n {
			t.Errorf("UnZigZag64(ZigZag64(%d)) = %d", n, got)
		}
		if want := protowire.EncodeZigZag(n); ZigZag64(n) != want {
			t.Errorf("ZigZag64(%d) = %d, want %d", n, ZigZag64(n), want)
		}
	}
	for _, n := range []int32{0, 1, -1, 1000, -1000, math.MaxInt32, math.MinInt32} {
		if got := UnZigZag32(ZigZag32(n)); got != n {
			t.Errorf("UnZigZag32(ZigZag32(%d)) = %d", n, got)
		}
		if uint64(ZigZag32(n)) != ZigZag64(int64(n)) {
			t.Errorf("ZigZag32(%d) disagrees with ZigZag64", n)
		}
	}
}

func TestSignedRequiresZigZag(t *testing.T) {
	if _, err := SizeSigned(-3, false); !errors.Is(err, ErrNegative) {
		t.Errorf("SizeSigned: got %v, want ErrNegative", err)
	}
	w := NewWriter(10)
	if err := w.WriteSigned(-3, false); !errors.Is(err, ErrNegative) {
		t.Errorf("WriteSigned: got %v, want ErrNegative", err)
	}
	if w.Pos() != 0 {
		t.Errorf("rejected write moved cursor to %d", w.Pos())
	}
	n, err := SizeSigned(-3, true)
	if err != nil || n != 1 {
		t.Errorf("SizeSigned(-3, zigzag) = %d, %v", n, err)
	}
	if err := w.WriteSigned(-3, true); err != nil {
		t.Fatal(err)
	}
	if w.Bytes()[0] != 5 {
		t.Errorf("zig-zag -3 wrote %x, want 05", w.Bytes()[0])
	}
}
