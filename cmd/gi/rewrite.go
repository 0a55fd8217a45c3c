package main

import (
	"bytes"
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/script-1024/giviewer/gifile"
	"github.com/script-1024/giviewer/node"
)

func rewrite(cfg *RewriteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rewrite.Parse(cc, args)
	if err != nil {
		cfg.Rewrite.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	changed := false
	for _, file := range inputs(args) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		f, err := gifile.Decode(d)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		f.Root = node.Canonical(f.Root)
		out, err := gifile.Encode(f)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if bytes.Equal(d, out) {
			continue
		}
		changed = true
		if cfg.Check {
			fmt.Fprintf(cc.Out, "%s\n", file)
			continue
		}
		if err := putGIFile(cc, f, file, cfg.InPlace); err != nil {
			return err
		}
	}
	if cfg.Check && changed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
