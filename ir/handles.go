// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ir implements a typed, SSA control-flow-graph intermediate
// representation: the data-flow graph, the layout that orders it, a
// construction-time builder, and the analyses (CFG, dominator tree, loop
// forest, on-demand SSA construction) that later optimization and
// code-generation passes read.
package ir

import "fmt"

// invalidIndex is the reserved "none" index shared by every handle kind:
// the maximum representable uint32, per spec.md §3.
const invalidIndex = ^uint32(0)

// Block identifies a basic block. Block(0) is a valid handle — the first
// block a Func mints; the reserved invalid value is Block(invalidIndex),
// returned by lookups that found nothing.
type Block uint32

// Inst identifies an instruction's storage in the DFG, independent of
// whether it is currently inserted into the Layout.
type Inst uint32

// Value identifies an SSA value: either an instruction result or a block
// parameter.
type Value uint32

// StackSlot, GlobalValue, JumpTable, SigRef, FuncRef and DynamicType are
// handles into the peripheral side tables described in spec.md §4.9; the
// core only ever stores and compares them, never interprets their payload.
type (
	StackSlot   uint32
	GlobalValue uint32
	JumpTable   uint32
	SigRef      uint32
	FuncRef     uint32
	DynamicType uint32
)

// invalidBlock etc. are the canonical "none" value for each handle kind.
const (
	invalidBlock       = Block(invalidIndex)
	invalidInst        = Inst(invalidIndex)
	invalidValue       = Value(invalidIndex)
	invalidStackSlot   = StackSlot(invalidIndex)
	invalidGlobalValue = GlobalValue(invalidIndex)
	invalidJumpTable   = JumpTable(invalidIndex)
	invalidSigRef      = SigRef(invalidIndex)
	invalidFuncRef     = FuncRef(invalidIndex)
	invalidDynamicType = DynamicType(invalidIndex)
)

func blockFromIndex(i int) Block             { return Block(i) }
func instFromIndex(i int) Inst               { return Inst(i) }
func valueFromIndex(i int) Value             { return Value(i) }
func dynamicTypeFromIndex(i int) DynamicType { return DynamicType(i) }
func funcRefFromIndex(i int) FuncRef         { return FuncRef(i) }

// Index implements entity.Handle.
func (b Block) Index() int { return int(b) }

// Index implements entity.Handle.
func (i Inst) Index() int { return int(i) }

// Index implements entity.Handle.
func (v Value) Index() int { return int(v) }

// Index implements entity.Handle.
func (d DynamicType) Index() int { return int(d) }

// Index implements entity.Handle.
func (f FuncRef) Index() int { return int(f) }

// Valid reports whether the handle denotes a real entity rather than the
// reserved "none" sentinel.
func (b Block) Valid() bool { return b != invalidBlock }
func (i Inst) Valid() bool  { return i != invalidInst }
func (v Value) Valid() bool { return v != invalidValue }
func (s StackSlot) Valid() bool   { return s != invalidStackSlot }
func (g GlobalValue) Valid() bool { return g != invalidGlobalValue }
func (j JumpTable) Valid() bool   { return j != invalidJumpTable }
func (s SigRef) Valid() bool      { return s != invalidSigRef }
func (f FuncRef) Valid() bool     { return f != invalidFuncRef }
func (d DynamicType) Valid() bool { return d != invalidDynamicType }

func (b Block) String() string {
	if !b.Valid() {
		return "block<none>"
	}
	return fmt.Sprintf("b%d", uint32(b))
}

func (i Inst) String() string {
	if !i.Valid() {
		return "inst<none>"
	}
	return fmt.Sprintf("v%d", uint32(i))
}

func (v Value) String() string {
	if !v.Valid() {
		return "value<none>"
	}
	return fmt.Sprintf("v%d", uint32(v))
}
