package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/script-1024/giviewer/encode"
	"github.com/script-1024/giviewer/query"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires an expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := inputs(args[1:])
	for _, file := range files {
		f, err := getGIFile(cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		ms, err := q.Find(f.Root)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, q, err)
		}
		for _, m := range ms {
			prefix := ""
			if len(files) > 1 {
				prefix = file + ":"
			}
			if cfg.Paths {
				fmt.Fprintf(cc.Out, "%s%s\n", prefix, m.Path)
				continue
			}
			fmt.Fprintf(cc.Out, "%s%s: %s\n", prefix, m.Path, findSummary(m))
		}
	}
	return nil
}

func findSummary(m query.Match) string {
	if m.Node.Kind().IsLeaf() {
		return m.Node.Kind().String() + " " + encode.MustString(m.Node)
	}
	return m.Node.String()
}
