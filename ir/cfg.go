// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "github.com/coreir/ir/entity"

// Edge is one end of a control-flow edge: the block on the other side,
// and that block's index for the matching edge in its own Preds/Succs
// slice. Mirroring the edge both ways lets a consumer walk from a
// successor straight back to "which predecessor slot am I" without a
// linear search — the same trick cmd/compile/internal/ssa's Block.Succs
// uses.
type Edge struct {
	Block Block
	Index int
}

// CFG is the control-flow graph derived from a Function's Layout and
// terminator instructions (spec.md §4.5). It is a read-only snapshot:
// mutating the Function after building a CFG does not update it.
type CFG struct {
	succs *entity.SecondaryMap[Block, []Edge]
	preds *entity.SecondaryMap[Block, []Edge]
	order []Block
}

// BuildCFG derives the control-flow graph of f from its current Layout.
// A jump contributes one successor edge, a brif contributes two (which
// may be the same block, stored with multiplicity), a br_table
// contributes one edge per arm plus the default, and return/trap
// contribute none.
func BuildCFG(f *Func) *CFG {
	c := &CFG{
		succs: entity.NewSecondaryMap[Block, []Edge](),
		preds: entity.NewSecondaryMap[Block, []Edge](),
	}
	it := f.Layout.Blocks()
	for b, ok := it.Next(); ok; b, ok = it.Next() {
		c.order = append(c.order, b)
	}
	for _, b := range c.order {
		last, ok := f.Layout.LastInst(b)
		if !ok {
			continue
		}
		for _, bc := range f.DFG.InstCalls(last) {
			c.addEdge(b, bc.Target)
		}
	}
	return c
}

func (c *CFG) addEdge(from, to Block) {
	predIdx := len(c.preds.Get(to))
	succIdx := len(c.succs.Get(from))
	c.succs.Set(from, append(c.succs.Get(from), Edge{Block: to, Index: predIdx}))
	c.preds.Set(to, append(c.preds.Get(to), Edge{Block: from, Index: succIdx}))
}

// BlockOrder returns the blocks in the layout order the CFG was built
// from.
func (c *CFG) BlockOrder() []Block { return c.order }

// SuccEdges returns b's outgoing edges in terminator order.
func (c *CFG) SuccEdges(b Block) []Edge { return c.succs.Get(b) }

// PredEdges returns b's incoming edges, in the order their source
// blocks were visited while building the CFG.
func (c *CFG) PredEdges(b Block) []Edge { return c.preds.Get(b) }

// Successors returns b's successor blocks, with duplicates preserved
// when a branch targets the same block more than once (e.g. both arms
// of a brif).
func (c *CFG) Successors(b Block) []Block {
	edges := c.succs.Get(b)
	out := make([]Block, len(edges))
	for i, e := range edges {
		out[i] = e.Block
	}
	return out
}

// Predecessors returns b's predecessor blocks, with duplicates
// preserved.
func (c *CFG) Predecessors(b Block) []Block {
	edges := c.preds.Get(b)
	out := make([]Block, len(edges))
	for i, e := range edges {
		out[i] = e.Block
	}
	return out
}

// NumSuccs and NumPreds report edge counts directly, without allocating
// a slice.
func (c *CFG) NumSuccs(b Block) int { return len(c.succs.Get(b)) }
func (c *CFG) NumPreds(b Block) int { return len(c.preds.Get(b)) }
