// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/pkg/errors"

	"github.com/coreir/ir/internal/obslog"
	"github.com/coreir/ir/ir"
)

// buildLinear builds a three-block straight-line chain with no branches:
// entry -> mid -> exit, threading one variable through def_var/use_var
// with no phi ever needed.
func buildLinear(log obslog.Logger) (*ir.Func, ir.Block, error) {
	f := ir.NewFunc("linear")
	b := ir.NewBuilderWithLogger(f, log)
	s := ir.NewSSABuilder(b)

	entry := b.CreateBlock()
	b.AppendBlock(entry)
	s.SealBlock(entry)

	b.SwitchToBlock(entry)
	x := s.DeclareVariable(ir.TypeI32)
	one, err := b.Const(ir.TypeI32, 1)
	if err != nil {
		return nil, 0, err
	}
	s.DefVar(entry, x, one)

	mid := b.CreateBlock()
	b.AppendBlock(mid)
	if _, err := s.Jump(entry, mid, nil); err != nil {
		return nil, 0, err
	}
	s.SealBlock(mid)

	b.SwitchToBlock(mid)
	v := s.UseVar(mid, x)
	two, err := b.Const(ir.TypeI32, 2)
	if err != nil {
		return nil, 0, err
	}
	sum, err := b.Binary(ir.OpAdd, ir.TypeI32, v, two)
	if err != nil {
		return nil, 0, err
	}
	s.DefVar(mid, x, sum)

	exit := b.CreateBlock()
	b.AppendBlock(exit)
	if _, err := s.Jump(mid, exit, nil); err != nil {
		return nil, 0, err
	}
	s.SealBlock(exit)

	b.SwitchToBlock(exit)
	result := s.UseVar(exit, x)
	if _, err := b.Return([]ir.Value{result}); err != nil {
		return nil, 0, err
	}
	return f, entry, nil
}

// buildDiamond builds entry -[brif]-> {thenB, elseB} -> merge, where each
// arm assigns a different constant to the same variable: merge's use_var
// must discover a genuine (non-trivial) phi.
func buildDiamond(log obslog.Logger) (*ir.Func, ir.Block, error) {
	f := ir.NewFunc("diamond")
	b := ir.NewBuilderWithLogger(f, log)
	s := ir.NewSSABuilder(b)

	entry := b.CreateBlock()
	b.AppendBlock(entry)
	cond := b.AppendBlockParam(entry, ir.TypeI32)
	s.SealBlock(entry)

	thenB := b.CreateBlock()
	elseB := b.CreateBlock()
	merge := b.CreateBlock()
	b.AppendBlock(thenB)
	b.AppendBlock(elseB)
	b.AppendBlock(merge)

	b.SwitchToBlock(entry)
	x := s.DeclareVariable(ir.TypeI32)
	if _, err := s.Brif(entry, cond, thenB, nil, elseB, nil); err != nil {
		return nil, 0, err
	}
	s.SealBlock(thenB)
	s.SealBlock(elseB)

	b.SwitchToBlock(thenB)
	ten, err := b.Const(ir.TypeI32, 10)
	if err != nil {
		return nil, 0, err
	}
	s.DefVar(thenB, x, ten)
	if _, err := s.Jump(thenB, merge, nil); err != nil {
		return nil, 0, err
	}

	b.SwitchToBlock(elseB)
	twenty, err := b.Const(ir.TypeI32, 20)
	if err != nil {
		return nil, 0, err
	}
	s.DefVar(elseB, x, twenty)
	if _, err := s.Jump(elseB, merge, nil); err != nil {
		return nil, 0, err
	}
	s.SealBlock(merge)

	b.SwitchToBlock(merge)
	result := s.UseVar(merge, x)
	if _, err := b.Return([]ir.Value{result}); err != nil {
		return nil, 0, err
	}
	return f, entry, nil
}

// buildLoop builds a counting loop: entry seeds i=0, header tests i<5 and
// branches to body or exit, body increments i and jumps back to header.
// header's use_var of i must create an incomplete phi (header isn't
// sealed until the back edge from body exists), exercising BuildLoopForest's
// back-edge discovery at the same time.
func buildLoop(log obslog.Logger) (*ir.Func, ir.Block, error) {
	f := ir.NewFunc("loop")
	b := ir.NewBuilderWithLogger(f, log)
	s := ir.NewSSABuilder(b)

	entry := b.CreateBlock()
	header := b.CreateBlock()
	body := b.CreateBlock()
	exit := b.CreateBlock()
	b.AppendBlock(entry)
	b.AppendBlock(header)
	b.AppendBlock(body)
	b.AppendBlock(exit)
	s.SealBlock(entry)

	b.SwitchToBlock(entry)
	i := s.DeclareVariable(ir.TypeI32)
	zero, err := b.Const(ir.TypeI32, 0)
	if err != nil {
		return nil, 0, err
	}
	s.DefVar(entry, i, zero)
	if _, err := s.Jump(entry, header, nil); err != nil {
		return nil, 0, err
	}

	b.SwitchToBlock(header)
	cur := s.UseVar(header, i) // header not sealed: installs an incomplete phi
	five, err := b.Const(ir.TypeI32, 5)
	if err != nil {
		return nil, 0, err
	}
	cond, err := b.ICmp(ir.IntSLT, cur, five)
	if err != nil {
		return nil, 0, err
	}
	if _, err := s.Brif(header, cond, body, nil, exit, nil); err != nil {
		return nil, 0, err
	}
	s.SealBlock(body) // body's only predecessor (header) is now known

	b.SwitchToBlock(body)
	curBody := s.UseVar(body, i)
	one, err := b.Const(ir.TypeI32, 1)
	if err != nil {
		return nil, 0, err
	}
	next, err := b.Binary(ir.OpAdd, ir.TypeI32, curBody, one)
	if err != nil {
		return nil, 0, err
	}
	s.DefVar(body, i, next)
	if _, err := s.Jump(body, header, nil); err != nil {
		return nil, 0, err
	}
	s.SealBlock(header) // entry and body, header's only two preds, now known
	s.SealBlock(exit)   // exit's only predecessor (header) is now known

	b.SwitchToBlock(exit)
	final := s.UseVar(exit, i)
	if _, err := b.Return([]ir.Value{final}); err != nil {
		return nil, 0, err
	}
	return f, entry, nil
}

// buildSSAAcrossBranch is a diamond whose merge block additionally
// performs an operation on the merged value, showing a phi feeding a
// normal instruction rather than being returned directly.
func buildSSAAcrossBranch(log obslog.Logger) (*ir.Func, ir.Block, error) {
	f := ir.NewFunc("ssa_across_branch")
	b := ir.NewBuilderWithLogger(f, log)
	s := ir.NewSSABuilder(b)

	entry := b.CreateBlock()
	b.AppendBlock(entry)
	cond := b.AppendBlockParam(entry, ir.TypeI32)
	s.SealBlock(entry)

	thenB := b.CreateBlock()
	elseB := b.CreateBlock()
	merge := b.CreateBlock()
	b.AppendBlock(thenB)
	b.AppendBlock(elseB)
	b.AppendBlock(merge)

	b.SwitchToBlock(entry)
	x := s.DeclareVariable(ir.TypeI32)
	if _, err := s.Brif(entry, cond, thenB, nil, elseB, nil); err != nil {
		return nil, 0, err
	}
	s.SealBlock(thenB)
	s.SealBlock(elseB)

	b.SwitchToBlock(thenB)
	a, err := b.Const(ir.TypeI32, 3)
	if err != nil {
		return nil, 0, err
	}
	s.DefVar(thenB, x, a)
	if _, err := s.Jump(thenB, merge, nil); err != nil {
		return nil, 0, err
	}

	b.SwitchToBlock(elseB)
	c, err := b.Const(ir.TypeI32, 7)
	if err != nil {
		return nil, 0, err
	}
	s.DefVar(elseB, x, c)
	if _, err := s.Jump(elseB, merge, nil); err != nil {
		return nil, 0, err
	}
	s.SealBlock(merge)

	b.SwitchToBlock(merge)
	phi := s.UseVar(merge, x)
	hundred, err := b.Const(ir.TypeI32, 100)
	if err != nil {
		return nil, 0, err
	}
	scaled, err := b.Binary(ir.OpMul, ir.TypeI32, phi, hundred)
	if err != nil {
		return nil, 0, err
	}
	if _, err := b.Return([]ir.Value{scaled}); err != nil {
		return nil, 0, err
	}
	return f, entry, nil
}

// buildTrivialPhi is a diamond where both arms assign the *same* value to
// the variable: merge's use_var must build a sentinel phi and then
// immediately collapse it back to that single value via ChangeToAlias.
func buildTrivialPhi(log obslog.Logger) (*ir.Func, ir.Block, error) {
	f := ir.NewFunc("trivial_phi")
	b := ir.NewBuilderWithLogger(f, log)
	s := ir.NewSSABuilder(b)

	entry := b.CreateBlock()
	b.AppendBlock(entry)
	cond := b.AppendBlockParam(entry, ir.TypeI32)
	s.SealBlock(entry)

	thenB := b.CreateBlock()
	elseB := b.CreateBlock()
	merge := b.CreateBlock()
	b.AppendBlock(thenB)
	b.AppendBlock(elseB)
	b.AppendBlock(merge)

	b.SwitchToBlock(entry)
	x := s.DeclareVariable(ir.TypeI32)
	shared, err := b.Const(ir.TypeI32, 42)
	if err != nil {
		return nil, 0, err
	}
	if _, err := s.Brif(entry, cond, thenB, nil, elseB, nil); err != nil {
		return nil, 0, err
	}
	s.SealBlock(thenB)
	s.SealBlock(elseB)

	b.SwitchToBlock(thenB)
	s.DefVar(thenB, x, shared)
	if _, err := s.Jump(thenB, merge, nil); err != nil {
		return nil, 0, err
	}

	b.SwitchToBlock(elseB)
	s.DefVar(elseB, x, shared)
	if _, err := s.Jump(elseB, merge, nil); err != nil {
		return nil, 0, err
	}
	s.SealBlock(merge)

	b.SwitchToBlock(merge)
	result := s.UseVar(merge, x)
	if result != shared {
		return nil, 0, errors.Errorf("trivial-phi scenario: expected use_var to resolve to the shared constant, got a distinct value")
	}
	if _, err := b.Return([]ir.Value{result}); err != nil {
		return nil, 0, err
	}
	return f, entry, nil
}
