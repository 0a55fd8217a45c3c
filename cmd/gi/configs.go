package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/script-1024/giviewer/encode"
	"github.com/script-1024/giviewer/format"
	"github.com/script-1024/giviewer/gifile"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='render with color'"`
	ZigZag  bool `cli:"name=z aliases=zigzag desc='show integers zig-zag decoded too'"`
	Depth   int  `cli:"name=depth desc='levels of the tree to show, 0 for all'"`
	Bytes   int  `cli:"name=bytes desc='bytes of a byte run to show'"`
	WireOut bool `cli:"name=wire desc='output json on one line'"`

	J bool `cli:"name=j aliases=json desc='documents in json'"`
	Y bool `cli:"name=y aliases=yaml desc='documents in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// docFormat is the document format for dump, load and patch input: -I or
// -O when given, then -j or -y, then the suffix of path, then YAML.
func (cfg *MainConfig) docFormat(given *format.Format, path string) format.Format {
	if given != nil {
		return *given
	}
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	if f, ok := format.ForPath(path); ok {
		return f
	}
	return format.YAMLFormat
}

// viewFormat is the output format of view and get: the tree unless a
// document format is asked for.
func (cfg *MainConfig) viewFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	return format.TreeFormat
}

func (cfg *MainConfig) encOpts(w io.Writer, f format.Format) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.EncodeWire(cfg.WireOut),
		encode.ZigZag(cfg.ZigZag),
		encode.Depth(cfg.Depth),
	}
	if cfg.Bytes > 0 {
		res = append(res, encode.MaxBytes(cfg.Bytes))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type InfoConfig struct {
	*MainConfig
	Info *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	InPlace bool `cli:"name=i desc='rewrite the file in place'"`
	Delete  bool `cli:"name=d aliases=delete desc='delete the node at path'"`

	Set *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type LoadConfig struct {
	*MainConfig
	Type string `cli:"name=type desc='file type gip, gil, gia or gir; default from -o'"`

	Load *cli.Command
}

func (cfg *LoadConfig) fileType() (gifile.FileType, error) {
	if cfg.Type != "" {
		t, err := gifile.ParseFileType(cfg.Type)
		if err != nil {
			return gifile.Unknown, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		return t, nil
	}
	return gifile.FileTypeFromExt(suffix(cfg.Out)), nil
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge   bool `cli:"name=merge desc='patch is an RFC 7386 merge patch'"`
	String  bool `cli:"name=s desc='patch arg as string'"`
	InPlace bool `cli:"name=i desc='rewrite the file in place'"`

	Patch *cli.Command
}

type FindConfig struct {
	*MainConfig
	Paths bool `cli:"name=p desc='print only paths'"`

	Find *cli.Command
}

type RewriteConfig struct {
	*MainConfig
	InPlace bool `cli:"name=i desc='rewrite files in place'"`
	Check   bool `cli:"name=check desc='exit 1 if a file would change'"`

	Rewrite *cli.Command
}
