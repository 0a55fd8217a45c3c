package node

import (
	"github.com/script-1024/giviewer/classify"
	"github.com/script-1024/giviewer/debug"
	"github.com/script-1024/giviewer/wire"
)

// MaxDepth bounds message nesting. A message payload deeper than this is
// kept as bytes.
const MaxDepth = 512

// Decode reads b as a top-level message.
//
// Length-delimited payloads are classified: empty payloads become empty
// objects, text becomes strings, well framed payloads are decoded as nested
// objects and everything else is kept as bytes. A repeated field number
// becomes a list.
//
// If a tag at this level has an unsupported wire type or an unusable field
// number, the whole of b is returned as a single Bytes node instead: an
// unparseable region is carried along inert, not reported. The same applies
// when one field number carries both scalars and payloads, or scalars of
// different wire types. Repeated payloads that classify differently from
// each other are all kept as bytes.
//
// An empty payload among repeated strings or byte runs takes their kind and
// reads as "" or an empty run. Being empty it is elided on encode, so such
// an entry does not survive a re-encode.
//
// Errors are reserved for malformed varints and truncated bodies.
func Decode(b []byte) (*Node, error) {
	return decodeMessage(b, 0)
}

type entry struct {
	tag  wire.Tag
	bits uint64
	raw  []byte
}

func decodeMessage(b []byte, depth int) (*Node, error) {
	entries, ok, err := scan(b)
	if err != nil {
		return nil, err
	}
	if ok {
		var obj *Node
		obj, ok, err = build(entries, depth)
		if err != nil {
			return nil, err
		}
		if ok {
			return obj, nil
		}
	}
	if debug.Decode() {
		debug.Logf("decode: keeping %d bytes at depth %d opaque\n", len(b), depth)
	}
	return FromBytes(b), nil
}

// scan splits b into tag/value entries. It reports false, without error, on
// the first tag the format cannot represent.
func scan(b []byte) ([]entry, bool, error) {
	r := wire.NewReader(b)
	var res []entry
	for r.Remaining() > 0 {
		tag, err := r.ReadTag()
		if err != nil {
			return nil, false, err
		}
		if !tag.Type.Valid() || !tag.ValidField() {
			if debug.Decode() {
				debug.Logf("decode: unsupported tag %s at %d\n", tag, r.Pos())
			}
			return nil, false, nil
		}
		e := entry{tag: tag}
		switch tag.Type {
		case wire.Varint:
			e.bits, err = r.ReadVarint()
		case wire.Fixed32:
			var v uint32
			v, err = r.Uint32()
			e.bits = uint64(v)
		case wire.Fixed64:
			e.bits, err = r.Uint64()
		case wire.Length:
			var n uint64
			n, err = r.ReadVarint()
			if err != nil {
				return nil, false, err
			}
			var size int
			size, err = wire.Cast[int](n)
			if err == nil {
				e.raw, err = r.Span(size)
			}
		}
		if err != nil {
			return nil, false, err
		}
		res = append(res, e)
	}
	return res, true, nil
}

type group struct {
	field   int
	entries []entry
}

func groupEntries(entries []entry) []group {
	var groups []group
	at := map[int]int{}
	for _, e := range entries {
		i, ok := at[e.tag.Field]
		if !ok {
			i = len(groups)
			at[e.tag.Field] = i
			groups = append(groups, group{field: e.tag.Field})
		}
		groups[i].entries = append(groups[i].entries, e)
	}
	return groups
}

func build(entries []entry, depth int) (*Node, bool, error) {
	obj := NewObject()
	for _, g := range groupEntries(entries) {
		nodes, ok, err := groupNodes(g, depth)
		if err != nil || !ok {
			return nil, ok, err
		}
		for _, v := range nodes {
			if err := obj.Add(g.field, v); err != nil {
				// groupNodes yields a single kind per group
				return nil, false, nil
			}
		}
	}
	return obj, true, nil
}

func groupNodes(g group, depth int) ([]*Node, bool, error) {
	wt := g.entries[0].tag.Type
	for _, e := range g.entries[1:] {
		if e.tag.Type != wt {
			if debug.Decode() {
				debug.Logf("decode: field %d mixes %s and %s\n", g.field, wt, e.tag.Type)
			}
			return nil, false, nil
		}
	}
	res := make([]*Node, len(g.entries))
	if k, ok := KindOf(wt); ok {
		for i, e := range g.entries {
			res[i] = &Node{kind: k, bits: e.bits}
		}
		return res, true, nil
	}

	kind := Invalid
	mixed := false
	for i, e := range g.entries {
		v, err := decodePayload(e.raw, depth)
		if err != nil {
			return nil, false, err
		}
		res[i] = v
		if v == nil {
			continue
		}
		if kind == Invalid {
			kind = v.kind
		} else if kind != v.kind {
			mixed = true
		}
	}
	for i, e := range g.entries {
		switch {
		case mixed:
			res[i] = FromBytes(e.raw)
		case res[i] != nil:
		case kind == String:
			res[i] = FromString("")
		case kind == Bytes:
			res[i] = FromBytes(nil)
		default:
			res[i] = NewObject()
		}
	}
	if mixed && debug.Decode() {
		debug.Logf("decode: field %d payloads classify differently, keeping bytes\n", g.field)
	}
	return res, true, nil
}

// decodePayload returns nil for an empty payload, whose kind is settled by
// the other entries of its field.
func decodePayload(raw []byte, depth int) (*Node, error) {
	switch classify.Classify(raw) {
	case classify.Empty:
		return nil, nil
	case classify.Text:
		return FromString(string(raw)), nil
	case classify.Message:
		if depth+1 > MaxDepth {
			return FromBytes(raw), nil
		}
		return decodeMessage(raw, depth+1)
	default:
		return FromBytes(raw), nil
	}
}
