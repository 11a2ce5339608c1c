// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// snapshot is a diffable summary of a function's derived analyses, used
// so a mismatch prints a structural diff instead of a single boolean.
type snapshot struct {
	Blocks     []Block
	Succs      map[Block][]Block
	LoopDepths map[Block]int
	Headers    map[Block]bool
}

func snapshotOf(f *Func, entry Block) snapshot {
	cfg := BuildCFG(f)
	dom := BuildDomTree(cfg, entry)
	lf := BuildLoopForest(cfg, dom)

	snap := snapshot{
		Blocks:     cfg.BlockOrder(),
		Succs:      make(map[Block][]Block),
		LoopDepths: make(map[Block]int),
		Headers:    make(map[Block]bool),
	}
	for _, b := range cfg.BlockOrder() {
		snap.Succs[b] = cfg.Successors(b)
		snap.LoopDepths[b] = lf.LoopDepth(b)
		if lf.IsLoopHeader(b) {
			snap.Headers[b] = true
		}
	}
	return snap
}

// TestEndToEndLinearSnapshot exercises the full CFG/dominance/loop
// pipeline on a straight-line two-block function and diffs the result
// against a hand-built expectation, catching any analysis whose output
// shape changed even if no single assertion on it would have failed.
func TestEndToEndLinearSnapshot(t *testing.T) {
	f := NewFunc("linear")
	b := NewBuilder(f)
	entry, exit := b.CreateBlock(), b.CreateBlock()
	b.AppendBlock(entry)
	b.AppendBlock(exit)
	b.SwitchToBlock(entry)
	_, err := b.Jump(exit, nil)
	require.NoError(t, err)
	b.SwitchToBlock(exit)
	_, err = b.Return(nil)
	require.NoError(t, err)

	got := snapshotOf(f, entry)
	want := snapshot{
		Blocks:     []Block{entry, exit},
		Succs:      map[Block][]Block{entry: {exit}, exit: nil},
		LoopDepths: map[Block]int{entry: 0, exit: 0},
		Headers:    map[Block]bool{},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("linear snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestEndToEndLoopSnapshot(t *testing.T) {
	f := NewFunc("loop")
	b := NewBuilder(f)
	entry, header, body, exit := b.CreateBlock(), b.CreateBlock(), b.CreateBlock(), b.CreateBlock()
	b.AppendBlock(entry)
	b.AppendBlock(header)
	b.AppendBlock(body)
	b.AppendBlock(exit)

	b.SwitchToBlock(entry)
	_, err := b.Jump(header, nil)
	require.NoError(t, err)

	b.SwitchToBlock(header)
	cond, err := b.Const(TypeI32, 1)
	require.NoError(t, err)
	_, err = b.Brif(cond, body, nil, exit, nil)
	require.NoError(t, err)

	b.SwitchToBlock(body)
	_, err = b.Jump(header, nil)
	require.NoError(t, err)

	b.SwitchToBlock(exit)
	_, err = b.Return(nil)
	require.NoError(t, err)

	got := snapshotOf(f, entry)
	want := snapshot{
		Blocks: []Block{entry, header, body, exit},
		Succs: map[Block][]Block{
			entry:  {header},
			header: {body, exit},
			body:   {header},
			exit:   nil,
		},
		LoopDepths: map[Block]int{entry: 0, header: 0, body: 0, exit: 0},
		Headers:    map[Block]bool{header: true},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("loop snapshot mismatch (-want +got):\n%s", diff)
	}
}

// TestEndToEndSSAAcrossBranchFeedsBinary builds the SSA-across-branch
// scenario directly (mirroring cmd/irdump's demo) and checks the merged
// value actually reaches the downstream multiply rather than just
// existing as an orphaned block parameter.
func TestEndToEndSSAAcrossBranchFeedsBinary(t *testing.T) {
	f := NewFunc("ssa-across-branch")
	b := NewBuilder(f)
	s := NewSSABuilder(b)
	x := s.DeclareVariable(TypeI32)

	entry, left, right, join := b.CreateBlock(), b.CreateBlock(), b.CreateBlock(), b.CreateBlock()
	b.AppendBlock(entry)
	b.AppendBlock(left)
	b.AppendBlock(right)
	b.AppendBlock(join)
	s.SealBlock(entry)

	b.SwitchToBlock(entry)
	cond, err := b.Const(TypeI32, 1)
	require.NoError(t, err)
	_, err = s.Brif(entry, cond, left, nil, right, nil)
	require.NoError(t, err)
	s.SealBlock(left)
	s.SealBlock(right)

	b.SwitchToBlock(left)
	three, err := b.Const(TypeI32, 3)
	require.NoError(t, err)
	s.DefVar(left, x, three)
	_, err = s.Jump(left, join, nil)
	require.NoError(t, err)

	b.SwitchToBlock(right)
	four, err := b.Const(TypeI32, 4)
	require.NoError(t, err)
	s.DefVar(right, x, four)
	_, err = s.Jump(right, join, nil)
	require.NoError(t, err)
	s.SealBlock(join)

	b.SwitchToBlock(join)
	merged := s.UseVar(join, x)
	two, err := b.Const(TypeI32, 2)
	require.NoError(t, err)
	product, err := b.Binary(OpMul, TypeI32, merged, two)
	require.NoError(t, err)
	_, err = b.Return([]Value{product})
	require.NoError(t, err)

	mulInst := f.DFG.ValueDefInst(product)
	require.Equal(t, []Value{merged, two}, f.DFG.InstArgs(mulInst))
	require.Contains(t, f.DFG.BlockParams(join), merged)
}
