// Package debug holds switches for diagnostic output, read once from the
// environment, and the logger used behind them.
//
//	GI_DEBUG_DECODE    tree decoding
//	GI_DEBUG_CLASSIFY  payload classification
//	GI_DEBUG_ENCODE    size plans and writes
//	GI_DEBUG_FILE      container framing
//	GI_DEBUG_PATCH     document patches
//
// Values are parsed with strconv.ParseBool.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Decode   bool
	Classify bool
	Encode   bool
	File     bool
	Patch    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("GI_DEBUG_DECODE")
	d.Classify = boolEnv("GI_DEBUG_CLASSIFY")
	d.Encode = boolEnv("GI_DEBUG_ENCODE")
	d.File = boolEnv("GI_DEBUG_FILE")
	d.Patch = boolEnv("GI_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Classify() bool {
	return d.Classify
}
func Encode() bool {
	return d.Encode
}
func File() bool {
	return d.File
}
func Patch() bool {
	return d.Patch
}

// Logf writes to stderr. JSON-ish arguments (maps, slices of any, JSON
// values) are rendered indented; anything implementing fmt.Stringer, such as
// a *node.Node, renders itself.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case []byte:
			args[i] = fmt.Sprintf("% x", a)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
