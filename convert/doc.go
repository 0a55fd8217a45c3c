// Package convert maps node trees to and from a document model that
// survives JSON and YAML unchanged, and applies JSON patches to trees
// through it.
//
// A tree becomes a Value per node:
//
//	{"kind": "object", "fields": [
//	  {"field": 1, "value": {"kind": "integer", "uint": 150}},
//	  {"field": 2, "value": {"kind": "string", "text": "hi"}}]}
//
// Integers keep their raw varint value, bytes are base64 and floats that
// JSON cannot spell are carried as their IEEE bits.
package convert
