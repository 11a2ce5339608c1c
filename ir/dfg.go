// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "github.com/coreir/ir/entity"

// DataFlowGraph owns every instruction, value and block-parameter list in
// a Function, independent of their order — order is the Layout's job
// (layout.go). It is the "DFG" of spec.md §4.2.
type DataFlowGraph struct {
	insts  *entity.PrimaryMap[Inst, InstData]
	values *entity.PrimaryMap[Value, valueData]
	blocks *entity.PrimaryMap[Block, blockData]

	argPool     *entity.ListPool[Value]    // instruction plain-value operands
	resultPool  *entity.ListPool[Value]    // instruction results
	paramPool   *entity.ListPool[Value]    // block parameters
	callArgPool *entity.ListPool[BlockArg] // BlockCall argument lists
}

func newDataFlowGraph() *DataFlowGraph {
	return &DataFlowGraph{
		insts:       entity.NewPrimaryMap[Inst, InstData](instFromIndex),
		values:      entity.NewPrimaryMap[Value, valueData](valueFromIndex),
		blocks:      entity.NewPrimaryMap[Block, blockData](blockFromIndex),
		argPool:     entity.NewListPool[Value](),
		resultPool:  entity.NewListPool[Value](),
		paramPool:   entity.NewListPool[Value](),
		callArgPool: entity.NewListPool[BlockArg](),
	}
}

// CreateBlock allocates a new Block with no parameters. The block does
// not appear in any Layout order until Layout.AppendBlock (or
// InsertBlockBefore/After) is called on it.
func (g *DataFlowGraph) CreateBlock() Block {
	return g.blocks.Push(blockData{})
}

// NumBlocks returns the number of blocks ever allocated, independent of
// layout membership.
func (g *DataFlowGraph) NumBlocks() int { return g.blocks.Len() }

// MakeInst allocates an instruction carrying data, with no layout effect
// and no results yet (use AppendInstResult for those).
func (g *DataFlowGraph) MakeInst(data InstData) Inst {
	return g.insts.Push(data)
}

// NumInsts returns the number of instructions ever allocated, independent
// of layout membership.
func (g *DataFlowGraph) NumInsts() int { return g.insts.Len() }

// NumValues returns the number of values ever allocated.
func (g *DataFlowGraph) NumValues() int { return g.values.Len() }

// InstData returns a mutable pointer to inst's payload.
func (g *DataFlowGraph) InstData(inst Inst) *InstData {
	d := g.insts.GetPtr(inst)
	if d == nil {
		panic("ir: InstData on unallocated instruction")
	}
	return d
}

// SetInstArgs replaces inst's plain-Value operand list.
func (g *DataFlowGraph) SetInstArgs(inst Inst, args []Value) {
	g.InstData(inst).args = g.argPool.FromSlice(args)
}

// InstArgs returns inst's plain-Value operands.
func (g *DataFlowGraph) InstArgs(inst Inst) []Value {
	return g.argPool.Get(g.InstData(inst).args)
}

// SetInstCalls attaches calls (a branch's BlockCalls) to inst.
func (g *DataFlowGraph) SetInstCalls(inst Inst, calls []BlockCall) {
	g.InstData(inst).calls = calls
}

// InstCalls returns inst's BlockCalls (empty for non-branch opcodes).
func (g *DataFlowGraph) InstCalls(inst Inst) []BlockCall {
	return g.InstData(inst).calls
}

// NewBlockCall allocates a BlockCall targeting block with the given
// argument list.
func (g *DataFlowGraph) NewBlockCall(target Block, args []BlockArg) BlockCall {
	return BlockCall{Target: target, args: g.callArgPool.FromSlice(args)}
}

// BlockCallArgs returns bc's argument list.
func (g *DataFlowGraph) BlockCallArgs(bc BlockCall) []BlockArg {
	return g.callArgPool.Get(bc.args)
}

// AppendCallArg appends a Value to the argument list of the callIdx'th
// BlockCall on branch. Used by the SSA builder to extend a predecessor's
// branch when it discovers a new block parameter on the target after the
// branch was already emitted — callIdx picks out which outgoing edge
// when branch is a multi-target brif or br_table.
func (g *DataFlowGraph) AppendCallArg(branch Inst, callIdx int, arg Value) {
	d := g.InstData(branch)
	if callIdx < 0 || callIdx >= len(d.calls) {
		panic("ir: AppendCallArg call index out of range")
	}
	d.calls[callIdx].args = g.callArgPool.Push(d.calls[callIdx].args, ValueBlockArg(arg))
}

// AppendBranchArg is AppendCallArg specialized to a single-target branch
// (a jump), per spec.md §4.2.
func (g *DataFlowGraph) AppendBranchArg(branch Inst, arg Value) {
	if len(g.InstData(branch).calls) != 1 {
		panic("ir: AppendBranchArg requires an instruction with exactly one BlockCall")
	}
	g.AppendCallArg(branch, 0, arg)
}

// AppendInstResult adds a result Value of type ty to inst; order among an
// instruction's results is significant and preserved.
func (g *DataFlowGraph) AppendInstResult(inst Inst, ty Type) Value {
	d := g.InstData(inst)
	idx := d.results.Len()
	v := g.values.Push(valueData{origin: originResult, typ: ty, defInst: inst, resultIdx: idx})
	d.results = g.resultPool.Push(d.results, v)
	return v
}

// InstResults returns inst's result values in append order.
func (g *DataFlowGraph) InstResults(inst Inst) []Value {
	return g.resultPool.Get(g.InstData(inst).results)
}

// AppendBlockParam adds a parameter of type ty to block; order among a
// block's parameters is significant and preserved.
func (g *DataFlowGraph) AppendBlockParam(block Block, ty Type) Value {
	bd := g.blocks.GetPtr(block)
	if bd == nil {
		panic("ir: AppendBlockParam on unallocated block")
	}
	idx := bd.params.Len()
	v := g.values.Push(valueData{origin: originParam, typ: ty, defBlock: block, paramIdx: idx})
	bd.params = g.paramPool.Push(bd.params, v)
	return v
}

// BlockParams returns block's parameters in append order.
func (g *DataFlowGraph) BlockParams(block Block) []Value {
	bd := g.blocks.GetPtr(block)
	if bd == nil {
		return nil
	}
	return g.paramPool.Get(bd.params)
}

// RemoveBlockParam marks v's param slot as removed: v becomes invalid as
// a def, though any alias edges already pointing at it still resolve
// through change_to_alias as normal. Used by trivial-phi elimination,
// which removes the sentinel parameter and replaces it with an alias.
func (g *DataFlowGraph) RemoveBlockParam(v Value) {
	vd := g.values.GetPtr(v)
	if vd == nil || vd.origin != originParam {
		panic("ir: RemoveBlockParam on a value that is not a live block parameter")
	}
	vd.removed = true
}

// ValueType resolves v's aliases and returns its Type. It fails (ok ==
// false) when v is a removed block parameter with no alias installed —
// the one case spec.md §4.2 calls out where a value has no usable type.
func (g *DataFlowGraph) ValueType(v Value) (Type, bool) {
	root := g.ResolveAliases(v)
	vd, ok := g.values.Get(root)
	if !ok {
		return TypeInvalid, false
	}
	if vd.origin == originParam && vd.removed {
		return TypeInvalid, false
	}
	return vd.typ, true
}

// ResolveAliases walks v's alias chain to its non-alias root, compressing
// the path as it goes so repeated resolution is amortized O(1). It always
// terminates: ChangeToAlias refuses to install an edge that would create
// a cycle, so the chain is acyclic by construction.
func (g *DataFlowGraph) ResolveAliases(v Value) Value {
	root := v
	for {
		vd, ok := g.values.Get(root)
		if !ok || vd.origin != originAlias {
			break
		}
		root = vd.aliasTo
	}
	for cur := v; cur != root; {
		vd := g.values.GetPtr(cur)
		next := vd.aliasTo
		vd.aliasTo = root
		cur = next
	}
	return root
}

// ChangeToAlias installs from := alias(to), used by SSA trivial-phi
// elimination to collapse a redundant sentinel onto its single real
// definition. It panics if either value is invalid or if the edge would
// close a cycle — both indicate a bug in the caller, not a runtime
// condition (spec.md §7: alias-cycle detection is an assertion, not an
// error return).
func (g *DataFlowGraph) ChangeToAlias(from, to Value) {
	if !from.Valid() || !to.Valid() {
		panic("ir: ChangeToAlias requires two valid values")
	}
	if g.ResolveAliases(to) == from {
		panic("ir: ChangeToAlias would create an alias cycle")
	}
	vd := g.values.GetPtr(from)
	if vd == nil {
		panic("ir: ChangeToAlias on an unallocated value")
	}
	vd.origin = originAlias
	vd.aliasTo = to
}

// IsAlias reports whether v is currently an alias (without resolving it).
func (g *DataFlowGraph) IsAlias(v Value) bool {
	vd, ok := g.values.Get(v)
	return ok && vd.origin == originAlias
}

// ValueDefBlock returns the block a param Value is defined in, for use by
// the SSA builder and loop/dominance-adjacent passes that need to know
// where a sentinel phi lives. Only meaningful for origin == originParam;
// it panics otherwise.
func (g *DataFlowGraph) ValueDefBlock(v Value) Block {
	vd, ok := g.values.Get(v)
	if !ok || vd.origin != originParam {
		panic("ir: ValueDefBlock on a non-parameter value")
	}
	return vd.defBlock
}

// ValueDefInst returns the instruction a result Value is defined by. Only
// meaningful for origin == originResult; it panics otherwise.
func (g *DataFlowGraph) ValueDefInst(v Value) Inst {
	vd, ok := g.values.Get(v)
	if !ok || vd.origin != originResult {
		panic("ir: ValueDefInst on a non-result value")
	}
	return vd.defInst
}
