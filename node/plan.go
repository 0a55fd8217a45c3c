package node

import "github.com/script-1024/giviewer/wire"

// Plan records how many bytes a node and each of its children occupy when
// written under a given field number. It is computed by Node.Plan and read
// by Node.Write; nothing mutates it after it is built.
//
// A size of 0 means the node is omitted.
type Plan struct {
	kind     Kind
	size     int
	body     int
	children []Plan
}

// Size is the number of bytes Write produces, framing included.
func (p Plan) Size() int { return p.size }

// Body is the length of the content, without tag or length prefix.
func (p Plan) Body() int { return p.body }

func (p Plan) Kind() Kind { return p.kind }

func (p Plan) Len() int { return len(p.children) }

// Child is the plan of the i'th field of an object or element of a list.
func (p Plan) Child(i int) Plan {
	if i < 0 || i >= len(p.children) {
		return Plan{}
	}
	return p.children[i]
}

// Plan sizes n for output under field. Field 0 means unframed: an object
// writes only its members (the root of a file), a scalar only its body (an
// element of a packed list), a string or byte run only its content.
//
// Zero scalars, empty strings and empty byte runs plan to size 0 when framed.
// Unframed scalars are never elided since packed runs cannot skip positions.
// Nested objects are always written, even when empty.
func (n *Node) Plan(field int) Plan {
	p := Plan{kind: n.kind}
	switch n.kind {
	case Integer, Float, Double:
		if field != 0 && n.IsZero() {
			return p
		}
		p.body = n.scalarBody()
		p.size = framed(field, p.body, false)
	case String, Bytes:
		if field != 0 && n.IsZero() {
			return p
		}
		p.body = len(n.data)
		if n.kind == String {
			p.body = len(n.text)
		}
		p.size = framed(field, p.body, true)
	case Object:
		p.children = make([]Plan, len(n.fields))
		for i, f := range n.fields {
			cp := f.Value.Plan(f.Number)
			p.children[i] = cp
			p.body += cp.size
		}
		p.size = framed(field, p.body, true)
	case List:
		p.children = make([]Plan, len(n.elems))
		if n.Packed() {
			for i, e := range n.elems {
				cp := e.Plan(0)
				p.children[i] = cp
				p.body += cp.size
			}
			if len(n.elems) == 0 {
				return p
			}
			p.size = framed(field, p.body, true)
			return p
		}
		for i, e := range n.elems {
			cp := e.Plan(field)
			p.children[i] = cp
			p.body += cp.size
		}
		p.size = p.body
	}
	return p
}

func (n *Node) scalarBody() int {
	switch n.kind {
	case Integer:
		return wire.SizeVarint(n.bits)
	case Float:
		return 4
	case Double:
		return 8
	default:
		return 0
	}
}

func framed(field, body int, length bool) int {
	if field == 0 {
		return body
	}
	size := wire.SizeTag(field) + body
	if length {
		size += wire.SizeVarint(uint64(body))
	}
	return size
}
