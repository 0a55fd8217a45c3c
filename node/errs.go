package node

import "errors"

var (
	ErrKindMismatch = errors.New("kind mismatch")
	ErrNotObject    = errors.New("not an object")
	ErrNotList      = errors.New("not a list")
	ErrNotScalar    = errors.New("not a scalar")
	ErrFieldNumber  = errors.New("invalid field number")
	ErrIndex        = errors.New("index out of range")
	ErrNilNode      = errors.New("nil node")
	ErrInvalidKind  = errors.New("invalid kind")
	ErrStalePlan    = errors.New("size plan does not match tree")
	ErrPath         = errors.New("bad path")
)
