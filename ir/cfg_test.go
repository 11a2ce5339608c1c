// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildCFGLinear(t *testing.T) {
	f := NewFunc("linear")
	b := NewBuilder(f)
	entry := b.CreateBlock()
	exit := b.CreateBlock()
	b.AppendBlock(entry)
	b.AppendBlock(exit)

	b.SwitchToBlock(entry)
	_, err := b.Jump(exit, nil)
	require.NoError(t, err)
	b.SwitchToBlock(exit)
	_, err = b.Return(nil)
	require.NoError(t, err)

	cfg := BuildCFG(f)
	require.Equal(t, []Block{entry, exit}, cfg.BlockOrder())
	require.Equal(t, []Block{exit}, cfg.Successors(entry))
	require.Equal(t, []Block{entry}, cfg.Predecessors(exit))
	require.Equal(t, 0, cfg.NumSuccs(exit))
	require.Equal(t, 0, cfg.NumPreds(entry))
}

func TestBuildCFGDiamond(t *testing.T) {
	f := NewFunc("diamond")
	b := NewBuilder(f)
	entry, left, right, join := b.CreateBlock(), b.CreateBlock(), b.CreateBlock(), b.CreateBlock()
	b.AppendBlock(entry)
	b.AppendBlock(left)
	b.AppendBlock(right)
	b.AppendBlock(join)

	b.SwitchToBlock(entry)
	cond, err := b.Const(TypeI32, 1)
	require.NoError(t, err)
	_, err = b.Brif(cond, left, nil, right, nil)
	require.NoError(t, err)

	b.SwitchToBlock(left)
	_, err = b.Jump(join, nil)
	require.NoError(t, err)

	b.SwitchToBlock(right)
	_, err = b.Jump(join, nil)
	require.NoError(t, err)

	b.SwitchToBlock(join)
	_, err = b.Return(nil)
	require.NoError(t, err)

	cfg := BuildCFG(f)
	require.ElementsMatch(t, []Block{left, right}, cfg.Successors(entry))
	require.ElementsMatch(t, []Block{left, right}, cfg.Predecessors(join))
	require.Equal(t, 2, cfg.NumPreds(join))

	// Edge.Index round-trips: join's pred edge from left points back at
	// left's succ slot for join, and vice versa.
	for _, pe := range cfg.PredEdges(join) {
		succEdges := cfg.SuccEdges(pe.Block)
		require.Less(t, pe.Index, len(succEdges))
		require.Equal(t, join, succEdges[pe.Index].Block)
	}
}

func TestBuildCFGBrifSameTargetStoresMultiplicity(t *testing.T) {
	f := NewFunc("same-target")
	b := NewBuilder(f)
	entry, target := b.CreateBlock(), b.CreateBlock()
	b.AppendBlock(entry)
	b.AppendBlock(target)

	b.SwitchToBlock(entry)
	cond, err := b.Const(TypeI32, 1)
	require.NoError(t, err)
	_, err = b.Brif(cond, target, nil, target, nil)
	require.NoError(t, err)

	b.SwitchToBlock(target)
	_, err = b.Return(nil)
	require.NoError(t, err)

	cfg := BuildCFG(f)
	require.Equal(t, []Block{target, target}, cfg.Successors(entry))
	require.Equal(t, 2, cfg.NumPreds(target))
}

func TestBuildCFGReturnHasNoSuccessors(t *testing.T) {
	f := NewFunc("ret-only")
	b := NewBuilder(f)
	entry := b.CreateBlock()
	b.AppendBlock(entry)
	b.SwitchToBlock(entry)
	_, err := b.Return(nil)
	require.NoError(t, err)

	cfg := BuildCFG(f)
	require.Empty(t, cfg.Successors(entry))
}
