package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/script-1024/giviewer/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getGIFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getGIFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		a, b = b, a
	}
	changes := libdiff.Diff(a.Root, b.Root)
	if a.Type != b.Type {
		fmt.Fprintf(cc.Out, "~ type: %s -> %s\n", a.Type, b.Type)
	}
	var style func(libdiff.Op, string) string
	if cfg.useColor(cc.Out) {
		style = diffStyle
	}
	if err := libdiff.Write(cc.Out, changes, style); err != nil {
		return err
	}
	if len(changes) > 0 || a.Type != b.Type {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffStyle(op libdiff.Op, line string) string {
	switch op {
	case libdiff.Insert:
		return color.GreenString("%s", line)
	case libdiff.Delete:
		return color.RedString("%s", line)
	default:
		return color.YellowString("%s", line)
	}
}
