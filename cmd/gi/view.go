package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/script-1024/giviewer/encode"
	"github.com/script-1024/giviewer/node"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputs(args)
	for i, file := range files {
		f, err := getGIFile(cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if len(files) > 1 {
			fmt.Fprintf(cc.Out, "# %s (%s)\n", file, f.Type)
		}
		if err := viewNode(cfg.MainConfig, cc.Out, f.Root); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if i < len(files)-1 {
			cc.Out.Write([]byte("\n---\n"))
		}
	}
	return nil
}

func viewNode(cfg *MainConfig, w io.Writer, n *node.Node) error {
	return encode.Encode(n, w, cfg.encOpts(w, cfg.viewFormat())...)
}
