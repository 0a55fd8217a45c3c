package convert

import (
	"github.com/goccy/go-yaml"
	"github.com/script-1024/giviewer/node"
)

func ToYAML(n *node.Node) ([]byte, error) {
	return yaml.Marshal(ToValue(n))
}

func FromYAML(d []byte) (*node.Node, error) {
	v := &Value{}
	if err := yaml.UnmarshalWithOptions(d, v, yaml.DisallowUnknownField()); err != nil {
		return nil, err
	}
	return FromValue(v)
}
