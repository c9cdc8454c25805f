package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "t",
			Aliases:     []string{"template"},
			Description: "example document whose key order is the ordering template",
			Type:        cli.NamedFuncOpt(cfg.fileOpt(&cfg.Template), "(filepath)"),
		},
		&cli.Opt{
			Name:        "r",
			Aliases:     []string{"rules"},
			Description: "rule file mapping path patterns to key lists",
			Type:        cli.NamedFuncOpt(cfg.fileOpt(&cfg.Rules), "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "oy").
		WithSynopsis("oy [opts] command [opts]").
		WithDescription("oy renders YAML with deterministic, rule-driven key order.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return oyMain(cfg, cc, args)
		}).
		WithSubs(
			DumpCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg))
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("dump").
		WithAliases("d").
		WithSynopsis("dump [files]").
		WithDescription("reorder documents and print them").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view reordered documents in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("di").
		WithSynopsis("diff [files]").
		WithDescription("show what reordering changes; exits 1 when it changes anything").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
