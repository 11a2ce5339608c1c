// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildDiamondFunc returns entry -> {left, right} -> join -> return.
func buildDiamondFunc(t *testing.T) (*Func, Block, Block, Block, Block) {
	t.Helper()
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

	return f, entry, left, right, join
}

func TestDomTreeDiamond(t *testing.T) {
	f, entry, left, right, join := buildDiamondFunc(t)
	cfg := BuildCFG(f)
	dom := BuildDomTree(cfg, entry)

	_, ok := dom.Idom(entry)
	require.False(t, ok)

	idomLeft, ok := dom.Idom(left)
	require.True(t, ok)
	require.Equal(t, entry, idomLeft)

	idomRight, ok := dom.Idom(right)
	require.True(t, ok)
	require.Equal(t, entry, idomRight)

	idomJoin, ok := dom.Idom(join)
	require.True(t, ok)
	require.Equal(t, entry, idomJoin)

	require.True(t, dom.Dominates(entry, join))
	require.False(t, dom.Dominates(left, join))
	require.False(t, dom.Dominates(right, join))
	require.True(t, dom.Dominates(entry, entry))

	require.ElementsMatch(t, []Block{left, right, join}, dom.Children(entry))
}

func TestDomTreeUnreachableBlock(t *testing.T) {
	f, entry, _, _, _ := buildDiamondFunc(t)
	b := NewBuilder(f)
	orphan := b.CreateBlock()
	b.AppendBlock(orphan)
	b.SwitchToBlock(orphan)
	_, err := b.Return(nil)
	require.NoError(t, err)

	cfg := BuildCFG(f)
	dom := BuildDomTree(cfg, entry)
	require.False(t, dom.IsReachable(orphan))
	_, ok := dom.Idom(orphan)
	require.False(t, ok)
	require.False(t, dom.Dominates(entry, orphan))
	// Reflexivity holds unconditionally, even for an unreachable block.
	require.True(t, dom.Dominates(orphan, orphan))
}

func TestDomTreeLoopHeaderDominatesBody(t *testing.T) {
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

	cfg := BuildCFG(f)
	dom := BuildDomTree(cfg, entry)

	require.True(t, dom.Dominates(header, body))
	require.True(t, dom.Dominates(header, exit))
	require.False(t, dom.Dominates(body, header))

	idomHeader, ok := dom.Idom(header)
	require.True(t, ok)
	require.Equal(t, entry, idomHeader)

	idomBody, ok := dom.Idom(body)
	require.True(t, ok)
	require.Equal(t, header, idomBody)
}

func TestDomTreeReversePostorderStartsAtEntry(t *testing.T) {
	f, entry, _, _, _ := buildDiamondFunc(t)
	cfg := BuildCFG(f)
	dom := BuildDomTree(cfg, entry)
	rpo := dom.ReversePostorder()
	require.NotEmpty(t, rpo)
	require.Equal(t, entry, rpo[0])
}
