// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "github.com/coreir/ir/internal/obslog"

// Builder is a thin facade holding {function, current_block}, per
// spec.md §4.4. Each opcode-shaped method packages the payload, calls
// DFG.MakeInst, appends the instruction into the current block, and adds
// result values as needed; the Builder enforces no deeper invariant than
// "there is a current block" — well-formedness is a separate pass.
//
// The Builder is the one place in this module that logs. The analyses
// (cfg.go, domtree.go, loop.go, ssa.go) are pure functions over a *Func
// and stay silent, matching the split between cmd/compile/internal/ssa
// and its driver.
type Builder struct {
	f   *Func
	cur Block
	set bool
	log obslog.Logger
}

// NewBuilder returns a Builder that will insert into f, logging nothing.
func NewBuilder(f *Func) *Builder { return &Builder{f: f, log: obslog.Nop()} }

// NewBuilderWithLogger returns a Builder that reports non-fatal
// conditions (duplicate branch targets, and similar) through log.
func NewBuilderWithLogger(f *Func, log obslog.Logger) *Builder {
	return &Builder{f: f, log: log}
}

// Func returns the function being built.
func (b *Builder) Func() *Func { return b.f }

// CreateBlock allocates a new block without inserting it into the
// layout.
func (b *Builder) CreateBlock() Block { return b.f.DFG.CreateBlock() }

// AppendBlock appends blk to the end of the function's layout.
func (b *Builder) AppendBlock(blk Block) { b.f.Layout.AppendBlock(blk) }

// SwitchToBlock directs subsequent instruction-emitting calls at blk.
func (b *Builder) SwitchToBlock(blk Block) {
	b.cur = blk
	b.set = true
}

// CurrentBlock returns the block instructions are currently appended to.
func (b *Builder) CurrentBlock() (Block, bool) { return b.cur, b.set }

// AppendBlockParam adds a parameter of type ty to blk.
func (b *Builder) AppendBlockParam(blk Block, ty Type) Value {
	return b.f.DFG.AppendBlockParam(blk, ty)
}

func (b *Builder) requireCurrent() (Block, error) {
	if !b.set {
		return invalidBlock, wrapf(ErrNoCurrentBlock, "builder")
	}
	return b.cur, nil
}

// emit allocates an instruction from data and appends it to the current
// block.
func (b *Builder) emit(data InstData) (Inst, error) {
	blk, err := b.requireCurrent()
	if err != nil {
		return invalidInst, err
	}
	inst := b.f.DFG.MakeInst(data)
	b.f.Layout.AppendInst(inst, blk)
	return inst, nil
}

// InsertInstBefore allocates an instruction from data and inserts it
// before anchor, which must already be in the layout.
func (b *Builder) InsertInstBefore(data InstData, anchor Inst) (Inst, error) {
	if !b.f.Layout.IsInstInserted(anchor) {
		return invalidInst, wrapf(ErrInstNotInserted, "anchor %s", anchor)
	}
	inst := b.f.DFG.MakeInst(data)
	b.f.Layout.InsertInstBefore(inst, anchor)
	return inst, nil
}

func toBlockArgs(vs []Value) []BlockArg {
	out := make([]BlockArg, len(vs))
	for i, v := range vs {
		out[i] = ValueBlockArg(v)
	}
	return out
}

// Nullary emits a zero-operand, single-result instruction.
func (b *Builder) Nullary(op Opcode, resultTy Type) (Value, error) {
	inst, err := b.emit(InstData{Op: op})
	if err != nil {
		return invalidValue, err
	}
	return b.f.DFG.AppendInstResult(inst, resultTy), nil
}

// Const emits an OpConst carrying an integer immediate.
func (b *Builder) Const(ty Type, imm int64) (Value, error) {
	inst, err := b.emit(InstData{Op: OpConst, AuxInt: imm})
	if err != nil {
		return invalidValue, err
	}
	return b.f.DFG.AppendInstResult(inst, ty), nil
}

// Undef emits an OpUndef: the SSA builder's synthesized value for a
// variable used before any definition reaches it (spec.md §4.7 step 3).
func (b *Builder) Undef(ty Type) (Value, error) {
	inst, err := b.emit(InstData{Op: OpUndef})
	if err != nil {
		return invalidValue, err
	}
	return b.f.DFG.AppendInstResult(inst, ty), nil
}

// Unary emits a one-operand, single-result instruction.
func (b *Builder) Unary(op Opcode, resultTy Type, arg Value) (Value, error) {
	inst, err := b.emit(InstData{Op: op})
	if err != nil {
		return invalidValue, err
	}
	b.f.DFG.SetInstArgs(inst, []Value{arg})
	return b.f.DFG.AppendInstResult(inst, resultTy), nil
}

// Binary emits a two-operand, single-result instruction.
func (b *Builder) Binary(op Opcode, resultTy Type, x, y Value) (Value, error) {
	inst, err := b.emit(InstData{Op: op})
	if err != nil {
		return invalidValue, err
	}
	b.f.DFG.SetInstArgs(inst, []Value{x, y})
	return b.f.DFG.AppendInstResult(inst, resultTy), nil
}

// ICmp emits an integer comparison; the result is a boolean-valued i32.
func (b *Builder) ICmp(cc IntCC, x, y Value) (Value, error) {
	inst, err := b.emit(InstData{Op: OpICmp, Aux: cc})
	if err != nil {
		return invalidValue, err
	}
	b.f.DFG.SetInstArgs(inst, []Value{x, y})
	return b.f.DFG.AppendInstResult(inst, TypeI32), nil
}

// FCmp emits a floating-point comparison; the result is a boolean-valued
// i32.
func (b *Builder) FCmp(cc FloatCC, x, y Value) (Value, error) {
	inst, err := b.emit(InstData{Op: OpFCmp, Aux: cc})
	if err != nil {
		return invalidValue, err
	}
	b.f.DFG.SetInstArgs(inst, []Value{x, y})
	return b.f.DFG.AppendInstResult(inst, TypeI32), nil
}

// Load emits a memory load of type ty from addr.
func (b *Builder) Load(ty Type, addr Value) (Value, error) {
	inst, err := b.emit(InstData{Op: OpLoad})
	if err != nil {
		return invalidValue, err
	}
	b.f.DFG.SetInstArgs(inst, []Value{addr})
	return b.f.DFG.AppendInstResult(inst, ty), nil
}

// Store emits a memory store of val to addr.
func (b *Builder) Store(addr, val Value) (Inst, error) {
	inst, err := b.emit(InstData{Op: OpStore})
	if err != nil {
		return invalidInst, err
	}
	b.f.DFG.SetInstArgs(inst, []Value{addr, val})
	return inst, nil
}

// AtomicRmw emits an atomic read-modify-write of operand into *addr.
func (b *Builder) AtomicRmw(op AtomicRmwOp, resultTy Type, addr, operand Value) (Value, error) {
	inst, err := b.emit(InstData{Op: OpAtomicRmw, Aux: op})
	if err != nil {
		return invalidValue, err
	}
	b.f.DFG.SetInstArgs(inst, []Value{addr, operand})
	return b.f.DFG.AppendInstResult(inst, resultTy), nil
}

// Select emits a branchless select: cond ? x : y.
func (b *Builder) Select(resultTy Type, cond, x, y Value) (Value, error) {
	inst, err := b.emit(InstData{Op: OpSelect})
	if err != nil {
		return invalidValue, err
	}
	b.f.DFG.SetInstArgs(inst, []Value{cond, x, y})
	return b.f.DFG.AppendInstResult(inst, resultTy), nil
}

// Call emits a direct call through ref with args, returning the call
// instruction and its result values (one per resultTypes entry).
func (b *Builder) Call(ref FuncRef, args []Value, resultTypes []Type) (Inst, []Value, error) {
	inst, err := b.emit(InstData{Op: OpCall, Aux: ref})
	if err != nil {
		return invalidInst, nil, err
	}
	b.f.DFG.SetInstArgs(inst, args)
	results := make([]Value, len(resultTypes))
	for i, ty := range resultTypes {
		results[i] = b.f.DFG.AppendInstResult(inst, ty)
	}
	return inst, results, nil
}

// TryCall emits a call that branches to okTarget on normal return
// (passing okArgs, which may reference the call's own results via
// BlockArgTryCallRet) or to errTarget on exception (via errArgs).
func (b *Builder) TryCall(ref FuncRef, args []Value, resultTypes []Type, okTarget Block, okArgs []BlockArg, errTarget Block, errArgs []BlockArg) (Inst, []Value, error) {
	inst, err := b.emit(InstData{Op: OpTryCall, Aux: ref})
	if err != nil {
		return invalidInst, nil, err
	}
	b.f.DFG.SetInstArgs(inst, args)
	results := make([]Value, len(resultTypes))
	for i, ty := range resultTypes {
		results[i] = b.f.DFG.AppendInstResult(inst, ty)
	}
	okCall := b.f.DFG.NewBlockCall(okTarget, okArgs)
	errCall := b.f.DFG.NewBlockCall(errTarget, errArgs)
	b.f.DFG.SetInstCalls(inst, []BlockCall{okCall, errCall})
	return inst, results, nil
}

// Jump emits an unconditional branch to target, passing args to its
// parameters.
func (b *Builder) Jump(target Block, args []Value) (Inst, error) {
	inst, err := b.emit(InstData{Op: OpJump})
	if err != nil {
		return invalidInst, err
	}
	call := b.f.DFG.NewBlockCall(target, toBlockArgs(args))
	b.f.DFG.SetInstCalls(inst, []BlockCall{call})
	return inst, nil
}

// Brif emits a conditional branch: to thenTarget (with thenArgs) if cond
// is nonzero, else to elseTarget (with elseArgs).
func (b *Builder) Brif(cond Value, thenTarget Block, thenArgs []Value, elseTarget Block, elseArgs []Value) (Inst, error) {
	if thenTarget == elseTarget {
		b.log.Warnw("brif has identical then/else targets", "block", thenTarget)
	}
	inst, err := b.emit(InstData{Op: OpBrif})
	if err != nil {
		return invalidInst, err
	}
	b.f.DFG.SetInstArgs(inst, []Value{cond})
	thenCall := b.f.DFG.NewBlockCall(thenTarget, toBlockArgs(thenArgs))
	elseCall := b.f.DFG.NewBlockCall(elseTarget, toBlockArgs(elseArgs))
	b.f.DFG.SetInstCalls(inst, []BlockCall{thenCall, elseCall})
	return inst, nil
}

// BrTableArm is one non-default arm of a br_table.
type BrTableArm struct {
	Target Block
	Args   []Value
}

// BrTable emits a multiway branch on index: to targets[index] (or
// defaultTarget if index is out of range).
func (b *Builder) BrTable(index Value, defaultTarget Block, defaultArgs []Value, targets []BrTableArm) (Inst, error) {
	inst, err := b.emit(InstData{Op: OpBrTable})
	if err != nil {
		return invalidInst, err
	}
	b.f.DFG.SetInstArgs(inst, []Value{index})
	calls := make([]BlockCall, 0, 1+len(targets))
	calls = append(calls, b.f.DFG.NewBlockCall(defaultTarget, toBlockArgs(defaultArgs)))
	for _, arm := range targets {
		calls = append(calls, b.f.DFG.NewBlockCall(arm.Target, toBlockArgs(arm.Args)))
	}
	b.f.DFG.SetInstCalls(inst, calls)
	return inst, nil
}

// Return emits a function return carrying args.
func (b *Builder) Return(args []Value) (Inst, error) {
	inst, err := b.emit(InstData{Op: OpReturn})
	if err != nil {
		return invalidInst, err
	}
	b.f.DFG.SetInstArgs(inst, args)
	return inst, nil
}

// Trap emits an unconditional trap.
func (b *Builder) Trap() (Inst, error) {
	blk, _ := b.requireCurrent()
	b.log.Debugw("emitting trap", "block", blk)
	return b.emit(InstData{Op: OpTrap})
}
