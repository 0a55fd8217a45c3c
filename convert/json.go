package convert

import (
	"bytes"
	"encoding/json"

	"github.com/script-1024/giviewer/node"
)

func ToJSON(n *node.Node) ([]byte, error) {
	return json.Marshal(ToValue(n))
}

func ToJSONIndent(n *node.Node) ([]byte, error) {
	return json.MarshalIndent(ToValue(n), "", "  ")
}

// FromJSON reads a document written by ToJSON. Unknown keys are an error.
func FromJSON(d []byte) (*node.Node, error) {
	v := &Value{}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return nil, err
	}
	return FromValue(v)
}
