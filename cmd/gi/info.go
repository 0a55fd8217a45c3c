package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/script-1024/giviewer/gifile"
)

func info(cfg *InfoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Info.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		inf, err := gifile.ReadInfo(d)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		typ := inf.Type.String()
		if inf.Type == gifile.Unknown {
			typ = fmt.Sprintf("%s (%d)", typ, inf.RawType)
		}
		fmt.Fprintf(cc.Out, "%s: size=%d version=%d type=%s content=%d\n",
			file, inf.Size, inf.Version, typ, inf.ContentLength)
	}
	return nil
}
