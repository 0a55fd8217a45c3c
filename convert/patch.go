package convert

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/script-1024/giviewer/debug"
	"github.com/script-1024/giviewer/node"
)

// Patch applies an RFC 6902 JSON patch to the document model of n and
// returns the resulting tree. Pointers address the model, so the value of
// the first member of the root is "/fields/0/value".
func Patch(n *node.Node, patch []byte) (*node.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	doc, err := ToJSON(n)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("applying %d patch operations to %s\n", len(ops), n)
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, err
	}
	return FromJSON(out)
}

// MergePatch applies an RFC 7386 merge patch to the document model of n.
// Members are held in a list, so a merge patch replaces the whole list.
func MergePatch(n *node.Node, patch []byte) (*node.Node, error) {
	doc, err := ToJSON(n)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("merge patch on %s: %s\n", n, patch)
	}
	out, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, err
	}
	return FromJSON(out)
}
