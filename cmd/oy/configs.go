package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/sgriffith3/orderedYAML/encode"
	"github.com/sgriffith3/orderedYAML/ir"
	"github.com/sgriffith3/orderedYAML/order"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	Mapping  int `cli:"name=indent desc='mapping indent'"`
	Sequence int `cli:"name=seq desc='sequence indent'"`
	Offset   int `cli:"name=offset desc='sequence dash offset'"`

	Template, Rules string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) fileOpt(dst *string) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, a string) (any, error) {
		*dst = a
		return a, nil
	})
}

// resolver builds the order resolver from the -t and -r options. Both files
// go through the order-preserving decoder so the template's key order and
// the rule file's pattern order mean what they say.
func (cfg *MainConfig) resolver() (*order.Resolver, error) {
	var (
		template *ir.Node
		rules    order.Rules
		err      error
	)
	if cfg.Template != "" {
		template, err = loadNode(cfg.Template)
		if err != nil {
			return nil, err
		}
	}
	if cfg.Rules != "" {
		rules, err = loadRules(cfg.Rules)
		if err != nil {
			return nil, err
		}
	}
	return order.NewResolver(rules, template)
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.Option {
	var res []encode.Option
	if cfg.Mapping > 0 {
		res = append(res, encode.Indent(cfg.Mapping))
	}
	if cfg.Sequence > 0 {
		res = append(res, encode.SequenceIndent(cfg.Sequence))
	}
	if cfg.Offset > 0 {
		res = append(res, encode.SequenceOffset(cfg.Offset))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
