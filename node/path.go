package node

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path addresses nodes in a tree: "$" is the root, ".N" the member with
// field number N, "[i]" element i of a list, "[*]" every element and ".."
// any descendant.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *int
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	afterSubtree := false
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Subtree:
			buf.WriteString("..")
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil && afterSubtree:
			fmt.Fprintf(buf, "%d", *x.Field)
		case x.Field != nil:
			fmt.Fprintf(buf, ".%d", *x.Field)
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
		afterSubtree = x.Subtree
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	var rest string
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest = frag[2:]
			if rest != "" && rest[0] != '[' {
				rest = "." + rest
			}
			break
		}
		field, tail, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = tail
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		if parent.Subtree {
			parent.Next = &Path{}
		}
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u), false, nil
}

func parseField(frag string) (int, string, error) {
	i := strings.IndexAny(frag, ".[")
	if i == -1 {
		i = len(frag)
	}
	f, err := strconv.Atoi(frag[:i])
	if err != nil {
		return 0, "", fmt.Errorf("field %q: not a number", frag[:i])
	}
	if err := validField(f); err != nil {
		return 0, "", err
	}
	return f, frag[i:], nil
}

// GetPath returns the node at path, or nil without error when there is none.
// The result is shared with n, not copied.
func (n *Node) GetPath(path string) (*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := n
	for ; p != nil; p = p.Next {
		if p.IndexAll {
			return nil, fmt.Errorf("%w: any index in get", ErrPath)
		}
		if p.Subtree {
			return nil, fmt.Errorf("%w: recurse .. in get", ErrPath)
		}
		switch {
		case p.Index != nil:
			if res.kind != List {
				return nil, fmt.Errorf("%w: index into %s", ErrNotList, res.kind)
			}
			res = res.Index(*p.Index)
		case p.Field != nil:
			if res.kind != Object {
				return nil, fmt.Errorf("%w: field %d of %s", ErrNotObject, *p.Field, res.kind)
			}
			res = res.Get(*p.Field)
		}
		if res == nil {
			return nil, nil
		}
	}
	return res, nil
}

// ListPath appends to dst every node path matches.
func (n *Node) ListPath(dst []*Node, path string) ([]*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return n.listPath(dst, p), nil
}

func (n *Node) listPath(dst []*Node, p *Path) []*Node {
	if p == nil {
		return append(dst, n)
	}
	if p.Subtree {
		_ = n.Visit(func(x *Node, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			dst = x.listPath(dst, p.Next)
			return !x.kind.IsLeaf(), nil
		})
		return dst
	}
	switch {
	case p.Field != nil:
		if v := n.Get(*p.Field); v != nil {
			dst = v.listPath(dst, p.Next)
		}
	case p.Index != nil:
		if v := n.Index(*p.Index); v != nil {
			dst = v.listPath(dst, p.Next)
		}
	case p.IndexAll:
		for _, e := range n.elems {
			dst = e.listPath(dst, p.Next)
		}
	default:
		dst = n.listPath(dst, p.Next)
	}
	return dst
}

// SetPath puts v at path, replacing what is there. Missing objects along
// the way are created; list elements must exist. On error n is unchanged.
func (n *Node) SetPath(path string, v *Node) error {
	p, err := ParsePath(path)
	if err != nil {
		return err
	}
	parent, last, g, err := n.walkParent(p, true)
	if err != nil {
		return err
	}
	if last == nil {
		return fmt.Errorf("%w: cannot replace the root", ErrPath)
	}
	if last.Index != nil {
		err = parent.SetIndex(*last.Index, v)
	} else {
		err = parent.Set(*last.Field, v)
	}
	if err != nil {
		return err
	}
	return g.attach()
}

// DeletePath removes the node at path. It reports false when nothing is
// there.
func (n *Node) DeletePath(path string) (bool, error) {
	p, err := ParsePath(path)
	if err != nil {
		return false, err
	}
	parent, last, _, err := n.walkParent(p, false)
	if err != nil || parent == nil {
		return false, err
	}
	if last == nil {
		return false, fmt.Errorf("%w: cannot delete the root", ErrPath)
	}
	if last.Index != nil {
		_, ok := parent.RemoveAt(*last.Index)
		return ok, nil
	}
	_, ok := parent.Remove(*last.Field)
	return ok, nil
}

// graft is a chain of objects built for a path not yet in the tree. It is
// set under field of at only after the update below it succeeds.
type graft struct {
	at    *Node
	field int
	chain *Node
}

func (g *graft) attach() error {
	if g == nil {
		return nil
	}
	return g.at.Set(g.field, g.chain)
}

// walkParent follows all but the last step of p. The root path has no last
// step. With create, missing objects are built detached and returned as a
// graft for the caller to attach.
func (n *Node) walkParent(p *Path, create bool) (*Node, *Path, *graft, error) {
	if p.Field == nil && p.Index == nil && !p.IndexAll && !p.Subtree {
		return n, nil, nil, nil
	}
	var g *graft
	cur := n
	for ; p.Next != nil; p = p.Next {
		if p.IndexAll || p.Subtree {
			return nil, nil, nil, fmt.Errorf("%w: wildcard in update", ErrPath)
		}
		var next *Node
		switch {
		case p.Index != nil:
			if cur.kind != List {
				return nil, nil, nil, fmt.Errorf("%w: index into %s", ErrNotList, cur.kind)
			}
			next = cur.Index(*p.Index)
			if next == nil {
				return nil, nil, nil, fmt.Errorf("%w: %d (len %d)", ErrIndex, *p.Index, len(cur.elems))
			}
		case p.Field != nil:
			if cur.kind != Object {
				return nil, nil, nil, fmt.Errorf("%w: field %d of %s", ErrNotObject, *p.Field, cur.kind)
			}
			next = cur.Get(*p.Field)
			if next == nil {
				if !create {
					return nil, nil, nil, nil
				}
				if err := validField(*p.Field); err != nil {
					return nil, nil, nil, err
				}
				next = NewObject()
				if g == nil {
					g = &graft{at: cur, field: *p.Field, chain: next}
				} else if err := cur.Set(*p.Field, next); err != nil {
					return nil, nil, nil, err
				}
			}
		}
		cur = next
	}
	if p.IndexAll || p.Subtree {
		return nil, nil, nil, fmt.Errorf("%w: wildcard in update", ErrPath)
	}
	return cur, p, g, nil
}
