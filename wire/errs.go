package wire

import "errors"

var (
	ErrBounds          = errors.New("out of bounds")
	ErrMalformedVarint = errors.New("malformed varint")
	ErrNegative        = errors.New("negative value without zig-zag")
	ErrOverflow        = errors.New("value does not fit")
	ErrEnumValue       = errors.New("no such enum value")
	ErrWhence          = errors.New("invalid whence")
)
