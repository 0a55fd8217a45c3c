package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/script-1024/giviewer/encode"
	"github.com/script-1024/giviewer/format"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	f := cfg.docFormat(cfg.OutFormat, cfg.Out)
	if f == format.TreeFormat {
		return fmt.Errorf("%w: dump writes yaml or json", cli.ErrUsage)
	}
	files := inputs(args)
	for i, file := range files {
		gf, err := getGIFile(cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		opts := []encode.EncodeOption{encode.EncodeFormat(f), encode.EncodeWire(cfg.WireOut)}
		if err := encode.Encode(gf.Root, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if i < len(files)-1 && f == format.YAMLFormat {
			cc.Out.Write([]byte("---\n"))
		}
	}
	return nil
}
