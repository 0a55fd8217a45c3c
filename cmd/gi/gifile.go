package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/script-1024/giviewer/gifile"
)

func suffix(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getGIFile(cc *cli.Context, path string) (*gifile.File, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	return gifile.Decode(d)
}

// putGIFile writes f back to path when inPlace is set, and to the output
// otherwise.
func putGIFile(cc *cli.Context, f *gifile.File, path string, inPlace bool) error {
	d, err := gifile.Encode(f)
	if err != nil {
		return fmt.Errorf("error encoding: %w", err)
	}
	if inPlace {
		if path == "-" {
			return fmt.Errorf("%w: cannot rewrite stdin in place", cli.ErrUsage)
		}
		return os.WriteFile(path, d, 0644)
	}
	_, err = cc.Out.Write(d)
	return err
}

// inputs is args, or stdin when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
