package encode

import "github.com/script-1024/giviewer/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Depth limits how many levels of the tree format are shown; 0 shows all.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}

// MaxBytes limits how many bytes of a byte run the tree format shows.
func MaxBytes(n int) EncodeOption {
	return func(es *EncState) { es.maxBytes = n }
}

// ZigZag shows integers of the tree format with their zig-zag decoding.
func ZigZag(v bool) EncodeOption {
	return func(es *EncState) { es.zigzag = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeWire writes JSON on a single line.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
