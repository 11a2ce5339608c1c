// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command irdump builds one of a fixed set of demo functions with the
// ir package's Builder and SSABuilder, then prints its control-flow
// graph, dominator tree and natural-loop forest. It exists to exercise
// the library end to end, the way cmd/internal/gc drives
// cmd/compile/internal/ssa.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/coreir/ir/internal/obslog"
	"github.com/coreir/ir/ir"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var scenario string
	var logLevel string

	cmd := &cobra.Command{
		Use:   "irdump",
		Short: "Build a demo function and print its derived analyses",
		RunE: func(cmd *cobra.Command, args []string) error {
			build, ok := scenarios[scenario]
			if !ok {
				return errors.Errorf("unknown scenario %q (want one of: %s)", scenario, scenarioNames())
			}
			log := obslog.New(logLevel)
			defer func() { _ = log.Sync() }()

			f, entry, err := build(log)
			if err != nil {
				return errors.Wrapf(err, "building scenario %q", scenario)
			}
			dump(cmd.OutOrStdout(), f, entry)
			return nil
		},
	}

	cmd.Flags().StringVar(&scenario, "scenario", "linear", fmt.Sprintf("demo scenario to build (%s)", scenarioNames()))
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "obslog level: debug, info, or warn")
	return cmd
}

func scenarioNames() string {
	return strings.Join(scenarioOrder, ", ")
}

// dump prints f's blocks, the CFG derived from its Layout, its dominator
// tree, and its natural-loop forest.
func dump(w io.Writer, f *ir.Func, entry ir.Block) {
	cfg := ir.BuildCFG(f)
	dom := ir.BuildDomTree(cfg, entry)
	loops := ir.BuildLoopForest(cfg, dom)

	fmt.Fprintf(w, "func %s: %d blocks, %d insts, %d values\n", f.Name, f.NumBlocks(), f.NumInsts(), f.NumValues())
	for _, b := range cfg.BlockOrder() {
		fmt.Fprintf(w, "  %s:\n", b)
		for _, inst := range f.Layout.AllBlockInsts(b) {
			fmt.Fprintf(w, "    %s = %s\n", inst, f.DFG.InstData(inst).Op)
		}
		fmt.Fprintf(w, "    succs=%v preds=%v\n", cfg.Successors(b), cfg.Predecessors(b))
		if idom, ok := dom.Idom(b); ok {
			fmt.Fprintf(w, "    idom=%s\n", idom)
		} else {
			fmt.Fprintf(w, "    idom=<none>\n")
		}
		if lp, ok := loops.GetLoop(b); ok {
			fmt.Fprintf(w, "    loop header=%s depth=%d\n", lp.Header, lp.Depth())
		}
	}
}

var scenarioOrder = []string{"linear", "diamond", "loop", "ssa-across-branch", "trivial-phi"}

var scenarios = map[string]func(obslog.Logger) (*ir.Func, ir.Block, error){
	"linear":            buildLinear,
	"diamond":           buildDiamond,
	"loop":              buildLoop,
	"ssa-across-branch": buildSSAAcrossBranch,
	"trivial-phi":       buildTrivialPhi,
}
