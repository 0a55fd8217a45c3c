package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/script-1024/giviewer/node"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	want := 3
	if cfg.Delete {
		want = 2
	}
	if len(args) != want {
		return fmt.Errorf("%w: set requires a path, a value unless -d, and a file", cli.ErrUsage)
	}
	path, file := args[0], args[len(args)-1]
	if path != "" && path[0] != '$' {
		path = "$" + path
	}
	f, err := getGIFile(cc, file)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	if cfg.Delete {
		ok, err := f.Root.DeletePath(path)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s: nothing at %s", file, path)
		}
	} else {
		v, err := parseValue(args[1])
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if err := f.Root.SetPath(path, v); err != nil {
			return err
		}
	}
	return putGIFile(cc, f, file, cfg.InPlace)
}

// parseValue reads a node written as kind:text.
func parseValue(s string) (*node.Node, error) {
	kind, text, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("value %q: expected kind:value", s)
	}
	switch strings.ToLower(kind) {
	case "integer", "int", "i":
		v, err := strconv.ParseUint(text, 0, 64)
		if err != nil {
			return nil, err
		}
		return node.FromUint(v), nil
	case "sint":
		v, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return nil, err
		}
		return node.FromInt(v, true)
	case "float", "f":
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, err
		}
		return node.FromFloat32(float32(v)), nil
	case "double", "d":
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, err
		}
		return node.FromFloat64(v), nil
	case "string", "s":
		return node.FromString(text), nil
	case "bytes", "b":
		v, err := hex.DecodeString(strings.ReplaceAll(text, " ", ""))
		if err != nil {
			return nil, err
		}
		return node.FromBytes(v), nil
	case "object", "o":
		if text != "" {
			return nil, fmt.Errorf("value %q: an object takes no text", s)
		}
		return node.NewObject(), nil
	default:
		return nil, fmt.Errorf("value %q: unknown kind %q", s, kind)
	}
}
