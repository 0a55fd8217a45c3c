package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/script-1024/giviewer/convert"
	"github.com/script-1024/giviewer/format"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch, and a file to which to apply it", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	file := args[1]
	f, err := getGIFile(cc, file)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	if cfg.Merge {
		f.Root, err = convert.MergePatch(f.Root, p)
	} else {
		f.Root, err = convert.Patch(f.Root, p)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	return putGIFile(cc, f, file, cfg.InPlace)
}

// getPatch reads the patch argument, a file or with -s the patch itself, as
// JSON. YAML patches are converted.
func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) ([]byte, error) {
	var (
		d   []byte
		err error
		src = arg
	)
	if cfg.String {
		d = []byte(arg)
		src = ""
	} else {
		d, err = readInput(cc, arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	if cfg.docFormat(cfg.InFormat, src) == format.JSONFormat {
		return d, nil
	}
	j, err := yaml.YAMLToJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: patch: %w", cli.ErrUsage, err)
	}
	return j, nil
}
