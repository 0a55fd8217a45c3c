package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/script-1024/giviewer/convert"
	"github.com/script-1024/giviewer/format"
	"github.com/script-1024/giviewer/gifile"
	"github.com/script-1024/giviewer/node"
)

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		cfg.Load.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: load takes at most one document", cli.ErrUsage)
	}
	t, err := cfg.fileType()
	if err != nil {
		return err
	}
	file := "-"
	if len(args) == 1 {
		file = args[0]
	}
	root, err := loadDoc(cc, cfg.MainConfig, file)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", file, err)
	}
	f := gifile.New(t)
	f.Root = root
	return putGIFile(cc, f, file, false)
}

func loadDoc(cc *cli.Context, cfg *MainConfig, file string) (*node.Node, error) {
	d, err := readInput(cc, file)
	if err != nil {
		return nil, err
	}
	switch cfg.docFormat(cfg.InFormat, file) {
	case format.JSONFormat:
		return convert.FromJSON(d)
	case format.YAMLFormat:
		return convert.FromYAML(d)
	default:
		return nil, fmt.Errorf("%w: documents are yaml or json", cli.ErrUsage)
	}
}
