// Package query selects nodes of a tree with expr-lang expressions.
//
// An expression is evaluated once per node, depth first, with these
// variables:
//
//	path   the node's path, "$.3[0]"
//	field  the field number the node sits under, 0 for the root and
//	       list elements
//	kind   "integer", "float", "double", "string", "bytes", "object" or "list"
//	value  the node as a plain value, see convert.Plain
//	len    members of an object, elements of a list, bytes of a string or
//	       byte run, 0 for numbers
//
// and these functions:
//
//	getpath(p)  plain value at path p from the root, nil if absent
//	zigzag(i)   zig-zag decoding of integer i
//	text(b)     b as a string
//
// A node matches when the expression yields true.
package query

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/script-1024/giviewer/convert"
	"github.com/script-1024/giviewer/node"
	"github.com/script-1024/giviewer/wire"
)

type Env map[string]any

type Query struct {
	src  string
	prg  *vm.Program
	root *rootRef
}

// rootRef lets the compiled getpath function see the tree being searched.
type rootRef struct {
	n *node.Node
}

type Match struct {
	Path string
	Node *node.Node
}

func Compile(src string) (*Query, error) {
	q := &Query{src: src, root: &rootRef{}}
	opts := append(exprOpts(q.root),
		expr.Env(Env{
			"path":  "",
			"field": 0,
			"kind":  "",
			"value": nil,
			"len":   0,
		}),
		expr.AsBool(),
	)
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}
	q.prg = prg
	return q, nil
}

func (q *Query) String() string {
	return q.src
}

func exprOpts(root *rootRef) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			if root.n == nil {
				return nil, nil
			}
			res, err := root.n.GetPath(params[0].(string))
			if err != nil || res == nil {
				return nil, err
			}
			return convert.Plain(res), nil
		},
			new(func(string) any)),
		expr.Function("zigzag", func(params ...any) (any, error) {
			switch v := params[0].(type) {
			case int:
				return int(wire.UnZigZag64(uint64(v))), nil
			case uint64:
				return int(wire.UnZigZag64(v)), nil
			default:
				return nil, fmt.Errorf("zigzag of %T", v)
			}
		}),
		expr.Function("text", func(params ...any) (any, error) {
			switch v := params[0].(type) {
			case []byte:
				return string(v), nil
			case string:
				return v, nil
			default:
				return nil, fmt.Errorf("text of %T", v)
			}
		}),
	}
}

// Eval runs the query against one node.
func (q *Query) Eval(path string, field int, n *node.Node) (bool, error) {
	res, err := expr.Run(q.prg, env(path, field, n))
	if err != nil {
		return false, fmt.Errorf("%s at %s: %w", q.src, path, err)
	}
	b, _ := res.(bool)
	return b, nil
}

func env(path string, field int, n *node.Node) Env {
	e := Env{
		"path":  path,
		"field": field,
		"kind":  n.Kind().String(),
		"value": convert.Plain(n),
		"len":   n.Len(),
	}
	switch n.Kind() {
	case node.String:
		s, _ := n.Text()
		e["len"] = len(s)
	case node.Bytes:
		b, _ := n.Bytes()
		e["len"] = len(b)
	}
	return e
}

var lastField = regexp.MustCompile(`\.(\d+)$`)

// Find walks root and returns every node the query matches, in walk order.
func (q *Query) Find(root *node.Node) ([]Match, error) {
	q.root.n = root
	defer func() { q.root.n = nil }()
	var res []Match
	err := node.Walk(root, func(path string, n *node.Node) (bool, error) {
		field := 0
		if m := lastField.FindStringSubmatch(path); m != nil {
			field, _ = strconv.Atoi(m[1])
		}
		ok, err := q.Eval(path, field, n)
		if err != nil {
			return false, err
		}
		if ok {
			res = append(res, Match{Path: path, Node: n})
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
