// Package node holds the document tree of a GI payload.
//
// A Node is one of seven kinds: the scalars Integer, Float and Double, the
// length-delimited String and Bytes, and the containers Object and List.
// Objects map field numbers to children in insertion order; a field number
// that occurs more than once on the wire is held as a List.
//
// Encoding is two passes. Node.Plan computes the size of every node under a
// field number without touching the tree, and Node.Write emits bytes
// following that plan into a wire.Writer sized exactly for it. Decode goes
// the other way and never fails on content it cannot interpret: such a
// region is kept as a Bytes node.
package node
