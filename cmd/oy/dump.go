package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	orderedyaml "github.com/sgriffith3/orderedYAML"
	"github.com/sgriffith3/orderedYAML/decode"
	"github.com/sgriffith3/orderedYAML/encode"
	"github.com/sgriffith3/orderedYAML/order"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	resolver, err := cfg.resolver()
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
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

func dumpReader(w io.Writer, r io.Reader, name string, resolver *order.Resolver, opts []encode.Option) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", name, err)
	}
	docs := bytes.Split(in, []byte("\n---\n"))
	n := len(docs)
	for i, doc := range docs {
		node, err := decode.Parse(doc)
		if err != nil {
			return fmt.Errorf("error decoding %s document %d: %w", name, i, err)
		}
		ordered, err := orderedyaml.Reshape(node, resolver)
		if err != nil {
			return fmt.Errorf("error reordering %s document %d: %w", name, i, err)
		}
		if err := encode.Encode(ordered, w, opts...); err != nil {
			return fmt.Errorf("error encoding %s document %d: %w", name, i, err)
		}
		if i < n-1 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
	}
	return nil
}
