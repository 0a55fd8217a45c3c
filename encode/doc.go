// Package encode renders node trees as text.
//
// The tree format is for people: one line per node, members prefixed by
// their field number and list elements by their index, optionally coloured.
//
//	object
//	  1: integer 150
//	  2: string "hello"
//	  3: list<integer> [2]
//	    [0]: integer 1
//	    [1]: integer 2
//
// The YAML and JSON formats write the lossless document model of package
// convert, which can be read back.
package encode
