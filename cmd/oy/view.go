package main

import (
	"github.com/scott-cotton/cli"

	"github.com/sgriffith3/orderedYAML/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	resolver, err := cfg.resolver()
	if err != nil {
		return err
	}
	opts := append(cfg.encOpts(cc.Out), encode.EncodeColors(encode.NewColors()))
	if len(args) == 0 {
		return dumpReader(cc.Out, cc.In, "-", resolver, opts)
	}
	for i, file := range args {
		f, done, err := openInput(file)
		if err != nil {
			return err
		}
		err = dumpReader(cc.Out, f, file, resolver, opts)
		done()
		if err != nil {
			return err
		}
		if i < len(args)-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
