// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayoutBlockOrder(t *testing.T) {
	l := NewLayout()
	b0, b1, b2 := Block(0), Block(1), Block(2)
	l.AppendBlock(b0)
	l.AppendBlock(b1)
	l.AppendBlock(b2)
	require.Equal(t, []Block{b0, b1, b2}, l.AllBlocks())

	entry, ok := l.EntryBlock()
	require.True(t, ok)
	require.Equal(t, b0, entry)
}

func TestLayoutInsertBeforeAndAfter(t *testing.T) {
	l := NewLayout()
	b0, b1, b2 := Block(0), Block(1), Block(2)
	l.AppendBlock(b0)
	l.AppendBlock(b2)
	l.InsertBlockBefore(b1, b2)
	require.Equal(t, []Block{b0, b1, b2}, l.AllBlocks())

	b3 := Block(3)
	l.InsertBlockAfter(b3, b0)
	require.Equal(t, []Block{b0, b3, b1, b2}, l.AllBlocks())
}

func TestLayoutRemoveBlockDetachesButKeepsInsts(t *testing.T) {
	l := NewLayout()
	b0, b1 := Block(0), Block(1)
	l.AppendBlock(b0)
	l.AppendBlock(b1)
	i0 := Inst(0)
	l.AppendInst(i0, b0)

	l.RemoveBlock(b0)
	require.Equal(t, []Block{b1}, l.AllBlocks())
	require.False(t, l.IsBlockInserted(b0))

	blk, ok := l.InstBlock(i0)
	require.True(t, ok)
	require.Equal(t, b0, blk)
}

func TestLayoutInstOrderWithinBlock(t *testing.T) {
	l := NewLayout()
	b0 := Block(0)
	l.AppendBlock(b0)
	i0, i1, i2 := Inst(0), Inst(1), Inst(2)
	l.AppendInst(i0, b0)
	l.AppendInst(i2, b0)
	l.InsertInstBefore(i1, i2)
	require.Equal(t, []Inst{i0, i1, i2}, l.AllBlockInsts(b0))

	last, ok := l.LastInst(b0)
	require.True(t, ok)
	require.Equal(t, i2, last)
}

func TestLayoutInsertInstAfter(t *testing.T) {
	l := NewLayout()
	b0 := Block(0)
	l.AppendBlock(b0)
	i0, i1 := Inst(0), Inst(1)
	l.AppendInst(i0, b0)
	l.InsertInstAfter(i1, i0)
	require.Equal(t, []Inst{i0, i1}, l.AllBlockInsts(b0))
}

func TestLayoutRemoveInst(t *testing.T) {
	l := NewLayout()
	b0 := Block(0)
	l.AppendBlock(b0)
	i0, i1, i2 := Inst(0), Inst(1), Inst(2)
	l.AppendInst(i0, b0)
	l.AppendInst(i1, b0)
	l.AppendInst(i2, b0)
	l.RemoveInst(i1)
	require.Equal(t, []Inst{i0, i2}, l.AllBlockInsts(b0))
	require.False(t, l.IsInstInserted(i1))
}

func TestLayoutEmptyEntryBlock(t *testing.T) {
	l := NewLayout()
	_, ok := l.EntryBlock()
	require.False(t, ok)
}

func TestLayoutDoubleInsertPanics(t *testing.T) {
	l := NewLayout()
	b0 := Block(0)
	l.AppendBlock(b0)
	require.Panics(t, func() { l.AppendBlock(b0) })
}
