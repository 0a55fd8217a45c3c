package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/script-1024/giviewer/node"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a node path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := node.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, file := range inputs(args[1:]) {
		if err := getFile(cfg, cc, file, path); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
	}
	return nil
}

func getFile(cfg *GetConfig, cc *cli.Context, file, path string) error {
	f, err := getGIFile(cc, file)
	if err != nil {
		return err
	}
	res, err := f.Root.ListPath(nil, path)
	if err != nil {
		return err
	}
	for i, n := range res {
		if i > 0 {
			cc.Out.Write([]byte("---\n"))
		}
		if err := viewNode(cfg.MainConfig, cc.Out, n); err != nil {
			return err
		}
	}
	return nil
}
