package libdiff

import (
	"fmt"
	"strings"

	"github.com/script-1024/giviewer/node"
)

// Apply returns a copy of n with changes made to it. Applying Diff(a, b) to
// a gives a tree equal to b.
func Apply(n *node.Node, changes []Change) (*node.Node, error) {
	res := n.Clone()
	var deletes []Change
	for _, c := range changes {
		switch c.Op {
		case Delete:
			deletes = append(deletes, c)
		case Replace:
			if c.Path == "$" {
				res = c.To.Clone()
				continue
			}
			if err := res.SetPath(c.Path, c.To.Clone()); err != nil {
				return nil, fmt.Errorf("%s: %w", c.Path, err)
			}
		case Insert:
			if err := insert(res, c); err != nil {
				return nil, fmt.Errorf("%s: %w", c.Path, err)
			}
		}
	}
	// list tails go last first so earlier indices stay valid
	for i := len(deletes) - 1; i >= 0; i-- {
		c := deletes[i]
		ok, err := res.DeletePath(c.Path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Path, err)
		}
		if !ok {
			return nil, fmt.Errorf("%s: nothing to delete", c.Path)
		}
	}
	return res, nil
}

func insert(n *node.Node, c Change) error {
	if !strings.HasSuffix(c.Path, "]") {
		return n.SetPath(c.Path, c.To.Clone())
	}
	parent, err := n.GetPath(c.Path[:strings.LastIndexByte(c.Path, '[')])
	if err != nil {
		return err
	}
	if parent == nil {
		return node.ErrPath
	}
	return parent.Append(c.To.Clone())
}
