package gifile

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/script-1024/giviewer/debug"
	"github.com/script-1024/giviewer/node"
	"github.com/script-1024/giviewer/wire"
)

const (
	HeadMagic = 0x0326
	TailMagic = 0x0679

	// Version is what writers emit.
	Version = 1

	// FrameSize is the length of a file with no content.
	FrameSize  = 24
	headerSize = 20
)

// File is a decoded GI file. Root is an Object, or Bytes when the content
// could not be read as a message.
type File struct {
	Type    FileType
	Version int32
	Root    *node.Node
}

func New(t FileType) *File {
	return &File{Type: t, Version: Version, Root: node.NewObject()}
}

// Info is the frame of a file, without its content decoded.
type Info struct {
	Size          int
	Version       int32
	Type          FileType
	RawType       int32
	ContentLength int
}

// ReadInfo validates the frame of b.
func ReadInfo(b []byte) (*Info, error) {
	if len(b) < FrameSize {
		return nil, &FrameError{Err: ErrTooSmall, Want: FrameSize, Got: int64(len(b))}
	}
	if len(b) > math.MaxInt32 {
		return nil, &FrameError{Err: ErrTooLarge, Want: math.MaxInt32, Got: int64(len(b))}
	}
	r := wire.NewReader(b)
	// the length checks above make these reads safe
	size, _ := r.Int32()
	version, _ := r.Int32()
	head, _ := r.Int32()
	rawType, _ := r.Int32()
	clen, _ := r.Int32()

	if int(size) != len(b)-4 {
		return nil, &FrameError{Err: ErrSizeMismatch, Offset: 0, Want: int64(len(b) - 4), Got: int64(size)}
	}
	if head != HeadMagic {
		return nil, &FrameError{Err: ErrHeadMagic, Offset: 8, Want: HeadMagic, Got: int64(head)}
	}
	if int(clen) != len(b)-FrameSize {
		return nil, &FrameError{Err: ErrContentLength, Offset: 16, Want: int64(len(b) - FrameSize), Got: int64(clen)}
	}
	if _, err := r.Seek(-4, io.SeekEnd); err != nil {
		return nil, err
	}
	if tail, _ := r.Int32(); tail != TailMagic {
		return nil, &FrameError{Err: ErrTailMagic, Offset: len(b) - 4, Want: TailMagic, Got: int64(tail)}
	}
	info := &Info{
		Size:          len(b),
		Version:       version,
		Type:          wire.CastEnum[FileType](uint64(uint32(rawType))),
		RawType:       rawType,
		ContentLength: int(clen),
	}
	if debug.File() {
		debug.Logf("frame: %d bytes, version %d, type %s (%d), content %d\n",
			info.Size, info.Version, info.Type, info.RawType, info.ContentLength)
	}
	return info, nil
}

// Decode validates the frame of b and decodes its content. The returned
// tree shares no memory with b.
func Decode(b []byte) (*File, error) {
	info, err := ReadInfo(b)
	if err != nil {
		return nil, err
	}
	root, err := node.Decode(b[headerSize : headerSize+info.ContentLength])
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	return &File{Type: info.Type, Version: info.Version, Root: root}, nil
}

// Encode frames the encoded root of f. A zero version is written as
// Version; any other version than Version is refused.
func Encode(f *File) ([]byte, error) {
	version := f.Version
	if version == 0 {
		version = Version
	}
	if version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, f.Version)
	}
	if f.Root == nil {
		return nil, fmt.Errorf("root: %w", node.ErrNilNode)
	}
	switch k := f.Root.Kind(); k {
	case node.Object, node.Bytes:
	default:
		return nil, fmt.Errorf("%w, have %s", ErrRootKind, k)
	}
	p := f.Root.Plan(0)
	if p.Size() > math.MaxInt32-FrameSize {
		return nil, &FrameError{Err: ErrTooLarge, Want: math.MaxInt32 - FrameSize, Got: int64(p.Size())}
	}
	total := p.Size() + FrameSize
	w := wire.NewWriter(total)
	for _, v := range []int32{int32(total - 4), version, HeadMagic, int32(f.Type), int32(p.Size())} {
		if err := w.PutInt32(v); err != nil {
			return nil, err
		}
	}
	if err := f.Root.Write(w, 0, p); err != nil {
		return nil, err
	}
	if err := w.PutInt32(TailMagic); err != nil {
		return nil, err
	}
	if debug.File() {
		debug.Logf("encoded %s file: %d bytes, content %d\n", f.Type, total, p.Size())
	}
	return w.Bytes(), nil
}

// Open reads and decodes the file at path.
func Open(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// OpenInfo checks the frame of the file at path without decoding its
// content.
func OpenInfo(path string) (*Info, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	info, err := ReadInfo(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return info, nil
}

// Save encodes f and writes it to path.
func (f *File) Save(path string) error {
	b, err := Encode(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
