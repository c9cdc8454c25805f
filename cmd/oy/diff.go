package main

import (
	"bytes"
	"fmt"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	orderedyaml "github.com/sgriffith3/orderedYAML"
	"github.com/sgriffith3/orderedYAML/encode"
	"github.com/sgriffith3/orderedYAML/ir"
	"github.com/sgriffith3/orderedYAML/libdiff"
)

// diff renders each document twice, in its natural order and in the resolved
// order, and shows which mappings moved plus the textual difference. Exits 1
// when reordering changes anything, so it doubles as an ordering check in
// scripts.
func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	resolver, err := cfg.resolver()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	differs := false
	for _, file := range args {
		node, err := loadNode(file)
		if err != nil {
			return err
		}
		ordered, err := orderedyaml.Reshape(node, resolver)
		if err != nil {
			return fmt.Errorf("error reordering %s: %w", file, err)
		}
		changes := libdiff.KeyOrder(node, ordered)
		if len(changes) == 0 {
			continue
		}
		differs = true
		for _, ch := range changes {
			fmt.Fprintf(cc.Out, "%s: %s\n", file, ch)
		}
		before, err := render(node)
		if err != nil {
			return err
		}
		after, err := render(ordered)
		if err != nil {
			return err
		}
		diffCfg := diffpatch.New()
		diffs := diffCfg.DiffMain(before, after, true)
		diffs = diffCfg.DiffCleanupSemantic(diffs)
		if _, err := cc.Out.Write([]byte(diffCfg.DiffPrettyText(diffs))); err != nil {
			return err
		}
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func render(node *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
