// Package wire provides the low-level primitives of the GI wire format.
//
// The GI format is a schema-less variant of the protocol buffer wire format.
// This package knows nothing about nodes or classification: it only moves
// bytes.
//
// # Cursors
//
// A [Reader] walks an immutable byte slice and a [Writer] fills a buffer that
// was sized ahead of time:
//
//	r := wire.NewReader(data)
//	size, err := r.Uint32()
//	sub, err := r.Slice(20, int(length))
//
//	w := wire.NewWriter(n)
//	err = w.PutUint32(size)
//
// Fixed width integers and floats are big-endian. Every access past the end
// of the buffer fails with an error wrapping [ErrBounds].
//
// # Varints
//
// Varints are base-128, least significant group first, with the high bit of
// each byte as continuation flag. At most [MaxVarintLen] bytes are read.
// [SizeVarint] computes the encoded length without encoding, which the node
// package uses to plan output buffers exactly.
//
// Negative integers are only encoded through zig-zag ([ZigZag64]); asking to
// encode a negative value without it fails with [ErrNegative].
//
// # Narrowing
//
// Decoded varints are uint64. [Cast], [TryCast], [CastEnum] and
// [TryCastEnum] narrow them to concrete integer and enum types, failing
// rather than truncating.
//
// # Tags
//
// A [Tag] is a field number and a [WireType] packed in one varint.
package wire
