// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDFGInstResultsAndArgs(t *testing.T) {
	g := newDataFlowGraph()
	blk := g.CreateBlock()
	inst := g.MakeInst(InstData{Op: OpAdd})
	p0 := g.AppendBlockParam(blk, TypeI32)
	p1 := g.AppendBlockParam(blk, TypeI32)
	g.SetInstArgs(inst, []Value{p0, p1})
	require.Equal(t, []Value{p0, p1}, g.InstArgs(inst))

	r := g.AppendInstResult(inst, TypeI32)
	require.Equal(t, []Value{r}, g.InstResults(inst))
	ty, ok := g.ValueType(r)
	require.True(t, ok)
	require.Equal(t, TypeI32, ty)
}

func TestDFGBlockParamsOrderPreserved(t *testing.T) {
	g := newDataFlowGraph()
	blk := g.CreateBlock()
	var want []Value
	for i := 0; i < 5; i++ {
		want = append(want, g.AppendBlockParam(blk, TypeI32))
	}
	require.Equal(t, want, g.BlockParams(blk))
}

func TestResolveAliasesChainAndCompression(t *testing.T) {
	g := newDataFlowGraph()
	blk := g.CreateBlock()
	a := g.AppendBlockParam(blk, TypeI32)
	b := g.AppendBlockParam(blk, TypeI32)
	c := g.AppendBlockParam(blk, TypeI32)

	g.ChangeToAlias(a, b)
	g.ChangeToAlias(b, c)

	require.Equal(t, c, g.ResolveAliases(a))
	// Path compression: a's alias pointer now goes straight to c.
	require.True(t, g.IsAlias(a))
	require.Equal(t, c, g.ResolveAliases(a))
}

func TestChangeToAliasRejectsCycle(t *testing.T) {
	g := newDataFlowGraph()
	blk := g.CreateBlock()
	a := g.AppendBlockParam(blk, TypeI32)
	b := g.AppendBlockParam(blk, TypeI32)
	g.ChangeToAlias(a, b)
	require.Panics(t, func() { g.ChangeToAlias(b, a) })
}

func TestAppendBranchArgSingleCallOnly(t *testing.T) {
	g := newDataFlowGraph()
	target := g.CreateBlock()
	other := g.CreateBlock()
	brif := g.MakeInst(InstData{Op: OpBrif})
	g.SetInstCalls(brif, []BlockCall{g.NewBlockCall(target, nil), g.NewBlockCall(other, nil)})
	require.Panics(t, func() { g.AppendBranchArg(brif, Value(0)) })

	jump := g.MakeInst(InstData{Op: OpJump})
	g.SetInstCalls(jump, []BlockCall{g.NewBlockCall(target, nil)})
	v := g.AppendBlockParam(target, TypeI32)
	g.AppendBranchArg(jump, v)
	require.Equal(t, []Value{v}, g.BlockCallArgs(g.InstCalls(jump)[0]))
}

func TestAppendCallArgByIndex(t *testing.T) {
	g := newDataFlowGraph()
	thenB := g.CreateBlock()
	elseB := g.CreateBlock()
	brif := g.MakeInst(InstData{Op: OpBrif})
	g.SetInstCalls(brif, []BlockCall{g.NewBlockCall(thenB, nil), g.NewBlockCall(elseB, nil)})
	v := g.AppendBlockParam(elseB, TypeI32)
	g.AppendCallArg(brif, 1, v)
	require.Equal(t, []Value{v}, g.BlockCallArgs(g.InstCalls(brif)[1]))
	require.Empty(t, g.BlockCallArgs(g.InstCalls(brif)[0]))
}

func TestValueTypeFailsForRemovedParamWithoutAlias(t *testing.T) {
	g := newDataFlowGraph()
	blk := g.CreateBlock()
	v := g.AppendBlockParam(blk, TypeI32)
	g.RemoveBlockParam(v)
	_, ok := g.ValueType(v)
	require.False(t, ok)
}
