package libdiff

import (
	"fmt"
	"io"

	"github.com/script-1024/giviewer/encode"
	"github.com/script-1024/giviewer/node"
)

// Write prints one line per change. Style, when not nil, decorates each line
// according to its op.
func Write(w io.Writer, changes []Change, style func(Op, string) string) error {
	if style == nil {
		style = func(_ Op, s string) string { return s }
	}
	for _, c := range changes {
		var line string
		switch c.Op {
		case Insert:
			line = fmt.Sprintf("+ %s: %s", c.Path, summary(c.To))
		case Delete:
			line = fmt.Sprintf("- %s: %s", c.Path, summary(c.From))
		case Replace:
			if c.Text != nil {
				sep := ""
				if c.From.Kind() == node.Bytes {
					sep = " "
				}
				line = fmt.Sprintf("~ %s: %s", c.Path, FormatText(c.Text, sep))
			} else {
				line = fmt.Sprintf("~ %s: %s -> %s", c.Path, summary(c.From), summary(c.To))
			}
		}
		if _, err := io.WriteString(w, style(c.Op, line)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func summary(n *node.Node) string {
	if n.Kind().IsLeaf() {
		return encode.MustString(n)
	}
	return n.String()
}
