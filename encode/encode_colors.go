package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/script-1024/giviewer/node"
)

type Colorable struct {
	Kind node.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	KindColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range node.Kinds() {
		able := Colorable{Kind: k, Attr: KindColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = node.Integer
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = node.Float
	colors.Map[able] = color.RGB(128, 168, 236).SprintfFunc()
	able.Kind = node.Double
	colors.Map[able] = color.RGB(128, 168, 236).SprintfFunc()

	able.Kind = node.String
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = node.Bytes
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = node.Object
	colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
	able.Kind = node.List
	colors.Map[able] = color.CyanString

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k node.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k node.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
