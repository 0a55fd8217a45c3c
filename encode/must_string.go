package encode

import (
	"bytes"
	"strings"

	"github.com/script-1024/giviewer/node"
)

func MustString(n *node.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
