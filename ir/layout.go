// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "github.com/coreir/ir/entity"

// blockNode is a block's intrusive position in the Layout's doubly-linked
// block order.
type blockNode struct {
	prev, next         Block
	firstInst, lastInst Inst
	inLayout           bool
}

// instNode is an instruction's intrusive position within its block's
// doubly-linked instruction order.
type instNode struct {
	prev, next Inst
	block      Block
	inLayout   bool
}

// Layout maintains the order of blocks within a Function and of
// instructions within each block, via two intrusive doubly-linked lists
// (spec.md §3, §4.3). Existence in the DFG is independent of being "in
// the layout": MakeInst/CreateBlock allocate entities the Layout doesn't
// yet know about, and RemoveInst/RemoveBlock detach without destroying.
type Layout struct {
	blocks *entity.SecondaryMap[Block, blockNode]
	insts  *entity.SecondaryMap[Inst, instNode]

	firstBlock, lastBlock Block
}

// NewLayout returns an empty Layout.
func NewLayout() *Layout {
	return &Layout{
		blocks:     entity.NewSecondaryMap[Block, blockNode](),
		insts:      entity.NewSecondaryMap[Inst, instNode](),
		firstBlock: invalidBlock,
		lastBlock:  invalidBlock,
	}
}

// Clear resets the Layout to empty; entities remain live in the DFG.
func (l *Layout) Clear() {
	l.blocks.Clear()
	l.insts.Clear()
	l.firstBlock = invalidBlock
	l.lastBlock = invalidBlock
}

// EntryBlock returns the first block in layout order — the function's
// entry, by convention (spec.md §3).
func (l *Layout) EntryBlock() (Block, bool) {
	if l.firstBlock == invalidBlock {
		return invalidBlock, false
	}
	return l.firstBlock, true
}

// IsBlockInserted reports whether b currently has a position in the
// layout.
func (l *Layout) IsBlockInserted(b Block) bool {
	return l.blocks.Get(b).inLayout
}

// AppendBlock inserts b at the end of the block order. b must not already
// be inserted.
func (l *Layout) AppendBlock(b Block) {
	l.requireNotInserted(b)
	node := blockNode{prev: l.lastBlock, next: invalidBlock, firstInst: invalidInst, lastInst: invalidInst, inLayout: true}
	l.blocks.Set(b, node)
	if l.lastBlock != invalidBlock {
		l.setBlockNext(l.lastBlock, b)
	} else {
		l.firstBlock = b
	}
	l.lastBlock = b
}

// InsertBlockBefore inserts b immediately before anchor, which must
// already be in the layout.
func (l *Layout) InsertBlockBefore(b, anchor Block) {
	l.requireNotInserted(b)
	an := l.blocks.Get(anchor)
	if !an.inLayout {
		panic("ir: InsertBlockBefore anchor is not in the layout")
	}
	prev := an.prev
	node := blockNode{prev: prev, next: anchor, firstInst: invalidInst, lastInst: invalidInst, inLayout: true}
	l.blocks.Set(b, node)
	an.prev = b
	l.blocks.Set(anchor, an)
	if prev != invalidBlock {
		l.setBlockNext(prev, b)
	} else {
		l.firstBlock = b
	}
}

// InsertBlockAfter inserts b immediately after anchor, which must already
// be in the layout.
func (l *Layout) InsertBlockAfter(b, anchor Block) {
	l.requireNotInserted(b)
	an := l.blocks.Get(anchor)
	if !an.inLayout {
		panic("ir: InsertBlockAfter anchor is not in the layout")
	}
	next := an.next
	node := blockNode{prev: anchor, next: next, firstInst: invalidInst, lastInst: invalidInst, inLayout: true}
	l.blocks.Set(b, node)
	an.next = b
	l.blocks.Set(anchor, an)
	if next != invalidBlock {
		nn := l.blocks.Get(next)
		nn.prev = b
		l.blocks.Set(next, nn)
	} else {
		l.lastBlock = b
	}
}

// RemoveBlock detaches b from the layout; b's instructions remain
// assigned to b in the DFG sense (InstBlock still reports b) but are no
// longer reachable through block iteration.
func (l *Layout) RemoveBlock(b Block) {
	node := l.blocks.Get(b)
	if !node.inLayout {
		return
	}
	if node.prev != invalidBlock {
		l.setBlockNext(node.prev, node.next)
	} else {
		l.firstBlock = node.next
	}
	if node.next != invalidBlock {
		pn := l.blocks.Get(node.next)
		pn.prev = node.prev
		l.blocks.Set(node.next, pn)
	} else {
		l.lastBlock = node.prev
	}
	node.inLayout = false
	l.blocks.Set(b, node)
}

func (l *Layout) setBlockNext(b, next Block) {
	n := l.blocks.Get(b)
	n.next = next
	l.blocks.Set(b, n)
}

func (l *Layout) requireNotInserted(b Block) {
	if l.blocks.Get(b).inLayout {
		panic("ir: block is already inserted in the layout")
	}
}

// BlockIter walks the block order starting at Layout.EntryBlock.
type BlockIter struct {
	l   *Layout
	cur Block
}

// Blocks returns an iterator over blocks in layout order.
func (l *Layout) Blocks() *BlockIter {
	return &BlockIter{l: l, cur: l.firstBlock}
}

// Next returns the next block and true, or (invalid, false) at the end.
func (it *BlockIter) Next() (Block, bool) {
	if it.cur == invalidBlock {
		return invalidBlock, false
	}
	b := it.cur
	it.cur = it.l.blocks.Get(b).next
	return b, true
}

// AllBlocks returns every block in layout order as a slice. Mutating the
// layout afterward does not retroactively affect the returned slice.
func (l *Layout) AllBlocks() []Block {
	var out []Block
	for b, ok := l.Blocks().Next(); ok; b, ok = l.nextAfter(b) {
		out = append(out, b)
	}
	return out
}

func (l *Layout) nextAfter(b Block) (Block, bool) {
	next := l.blocks.Get(b).next
	if next == invalidBlock {
		return invalidBlock, false
	}
	return next, true
}

// InstBlock returns the block i is currently inserted into.
func (l *Layout) InstBlock(i Inst) (Block, bool) {
	n := l.insts.Get(i)
	if !n.inLayout {
		return invalidBlock, false
	}
	return n.block, true
}

// IsInstInserted reports whether i currently has a position in the
// layout.
func (l *Layout) IsInstInserted(i Inst) bool {
	return l.insts.Get(i).inLayout
}

// AppendInst appends i to the end of block's instruction order. i must
// not already be inserted anywhere.
func (l *Layout) AppendInst(i Inst, block Block) {
	l.requireInstNotInserted(i)
	bn := l.blocks.Get(block)
	node := instNode{prev: bn.lastInst, next: invalidInst, block: block, inLayout: true}
	l.insts.Set(i, node)
	if bn.lastInst != invalidInst {
		l.setInstNext(bn.lastInst, i)
	} else {
		bn.firstInst = i
	}
	bn.lastInst = i
	l.blocks.Set(block, bn)
}

// InsertInstBefore inserts i immediately before anchor, copying anchor's
// block assignment. anchor must already be inserted, per spec.md §4.3;
// otherwise ErrInstNotInserted is the documented failure the Builder
// surfaces (this low-level method panics, matching the "precondition
// violation is a bug" stance of the rest of the Layout API — Builder
// wraps it with the checked error).
func (l *Layout) InsertInstBefore(i, anchor Inst) {
	l.requireInstNotInserted(i)
	an := l.insts.Get(anchor)
	if !an.inLayout {
		panic("ir: InsertInstBefore anchor is not inserted")
	}
	block := an.block
	prev := an.prev
	node := instNode{prev: prev, next: anchor, block: block, inLayout: true}
	l.insts.Set(i, node)
	an.prev = i
	l.insts.Set(anchor, an)
	bn := l.blocks.Get(block)
	if prev != invalidInst {
		l.setInstNext(prev, i)
	} else {
		bn.firstInst = i
		l.blocks.Set(block, bn)
	}
}

// InsertInstAfter inserts i immediately after anchor, copying anchor's
// block assignment. anchor must already be inserted.
func (l *Layout) InsertInstAfter(i, anchor Inst) {
	l.requireInstNotInserted(i)
	an := l.insts.Get(anchor)
	if !an.inLayout {
		panic("ir: InsertInstAfter anchor is not inserted")
	}
	block := an.block
	next := an.next
	node := instNode{prev: anchor, next: next, block: block, inLayout: true}
	l.insts.Set(i, node)
	an.next = i
	l.insts.Set(anchor, an)
	bn := l.blocks.Get(block)
	if next != invalidInst {
		nn := l.insts.Get(next)
		nn.prev = i
		l.insts.Set(next, nn)
	} else {
		bn.lastInst = i
		l.blocks.Set(block, bn)
	}
}

// RemoveInst detaches i from its block's order without destroying it in
// the DFG.
func (l *Layout) RemoveInst(i Inst) {
	node := l.insts.Get(i)
	if !node.inLayout {
		return
	}
	bn := l.blocks.Get(node.block)
	if node.prev != invalidInst {
		l.setInstNext(node.prev, node.next)
	} else {
		bn.firstInst = node.next
	}
	if node.next != invalidInst {
		nn := l.insts.Get(node.next)
		nn.prev = node.prev
		l.insts.Set(node.next, nn)
	} else {
		bn.lastInst = node.prev
	}
	l.blocks.Set(node.block, bn)
	node.inLayout = false
	l.insts.Set(i, node)
}

func (l *Layout) setInstNext(i, next Inst) {
	n := l.insts.Get(i)
	n.next = next
	l.insts.Set(i, n)
}

func (l *Layout) requireInstNotInserted(i Inst) {
	if l.insts.Get(i).inLayout {
		panic("ir: instruction is already inserted in the layout")
	}
}

// InstIter walks a block's instruction order.
type InstIter struct {
	l   *Layout
	cur Inst
}

// BlockInsts returns an iterator over block's instructions in order.
func (l *Layout) BlockInsts(block Block) *InstIter {
	return &InstIter{l: l, cur: l.blocks.Get(block).firstInst}
}

// Next returns the next instruction and true, or (invalid, false) at the
// end of the block.
func (it *InstIter) Next() (Inst, bool) {
	if it.cur == invalidInst {
		return invalidInst, false
	}
	i := it.cur
	it.cur = it.l.insts.Get(i).next
	return i, true
}

// AllBlockInsts returns every instruction in block, in order, as a slice.
func (l *Layout) AllBlockInsts(block Block) []Inst {
	var out []Inst
	it := l.BlockInsts(block)
	for i, ok := it.Next(); ok; i, ok = it.Next() {
		out = append(out, i)
	}
	return out
}

// LastInst returns the last instruction in block, if any — the
// terminator of a well-formed non-empty block.
func (l *Layout) LastInst(block Block) (Inst, bool) {
	last := l.blocks.Get(block).lastInst
	if last == invalidInst {
		return invalidInst, false
	}
	return last, true
}
