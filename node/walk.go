package node

import "strconv"

// Visit calls f on n and, when f returns true, on its descendants, then
// calls f again with isPost set once the children are done.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, fl := range n.fields {
			if err := fl.Value.Visit(f); err != nil {
				return err
			}
		}
		for _, e := range n.elems {
			if err := e.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// WalkFunc receives each node with its path. Returning false skips the
// node's children.
type WalkFunc func(path string, n *Node) (bool, error)

// Walk visits n and its descendants depth first, in member order, passing
// paths of the form accepted by GetPath.
func Walk(n *Node, f WalkFunc) error {
	return walk("$", n, f)
}

func walk(path string, n *Node, f WalkFunc) error {
	dive, err := f(path, n)
	if err != nil || !dive {
		return err
	}
	for _, fl := range n.fields {
		if err := walk(FieldPath(path, fl.Number), fl.Value, f); err != nil {
			return err
		}
	}
	for i, e := range n.elems {
		if err := walk(IndexPath(path, i), e, f); err != nil {
			return err
		}
	}
	return nil
}

func FieldPath(parent string, field int) string {
	return parent + "." + strconv.Itoa(field)
}

func IndexPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}
