// Package libdiff computes structural differences between node trees.
//
// Diff pairs object members by field number and list elements by index.
// A change is reported at the shallowest path where the trees stop
// agreeing: a missing member is a Delete, a new one an Insert, and a node
// whose kind or value changed a Replace. Replaced strings and byte runs
// also carry a character level diff.
package libdiff
