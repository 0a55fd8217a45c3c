package gifile

import (
	"errors"
	"fmt"
)

var (
	ErrTooSmall      = errors.New("file too small")
	ErrTooLarge      = errors.New("file too large")
	ErrSizeMismatch  = errors.New("total size mismatch")
	ErrHeadMagic     = errors.New("bad head magic")
	ErrContentLength = errors.New("content length mismatch")
	ErrTailMagic     = errors.New("bad tail magic")
	ErrVersion       = errors.New("unsupported version")
	ErrRootKind      = errors.New("root must be an object or bytes")
)

// FrameError reports a frame field that does not hold what the file length
// or the format requires.
type FrameError struct {
	Err    error
	Offset int
	Want   int64
	Got    int64
}

func (e *FrameError) Error() string {
	switch e.Err {
	case ErrHeadMagic, ErrTailMagic:
		return fmt.Sprintf("%v at %d: want %#04x, got %#04x", e.Err, e.Offset, e.Want, e.Got)
	default:
		return fmt.Sprintf("%v at %d: want %d, got %d", e.Err, e.Offset, e.Want, e.Got)
	}
}

func (e *FrameError) Unwrap() error {
	return e.Err
}
