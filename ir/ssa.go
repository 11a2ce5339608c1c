// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "fmt"

// Variable is a frontend-level local variable, distinct from a Value: a
// Variable may have many definitions across a function (one per
// assignment site); SSABuilder maps each (block, Variable) pair to the
// single Value live at the end of that block (spec.md §4.7, after Braun,
// Buchwald, Hack, Leißa, Mallon and Zwinkau, "Simple and Efficient
// Construction of SSA Form").
type Variable uint32

func (v Variable) String() string { return fmt.Sprintf("var%d", uint32(v)) }

type predEdge struct {
	pred    Block
	branch  Inst
	callIdx int
}

// SSABuilder constructs SSA form on demand while a function is being
// built, inserting block parameters as sentinel phis only where a
// variable's value actually depends on control flow, and collapsing
// them again immediately when they turn out trivial.
//
// def_var/use_var are specified as an explicit worklist/result-stack
// state machine rather than native recursion: ReadVariableRecursive's
// call chain can be as deep as the longest run of single-predecessor
// blocks in the function, which is not bounded by any loop or program
// structure the caller controls.
type SSABuilder struct {
	b *Builder
	f *Func

	varTypes map[Variable]Type
	nextVar  Variable

	currentDef     map[Block]map[Variable]Value
	incompletePhis map[Block]map[Variable]Value
	sealed         map[Block]bool
	preds          map[Block][]predEdge

	isPhiValue map[Value]bool
	operandsOf map[Value][]Value
	phiUsers   map[Value][]Value
}

// NewSSABuilder returns an SSABuilder that constructs SSA form for b's
// function as instructions are emitted through it.
func NewSSABuilder(b *Builder) *SSABuilder {
	return &SSABuilder{
		b:              b,
		f:              b.Func(),
		varTypes:       make(map[Variable]Type),
		currentDef:     make(map[Block]map[Variable]Value),
		incompletePhis: make(map[Block]map[Variable]Value),
		sealed:         make(map[Block]bool),
		preds:          make(map[Block][]predEdge),
		isPhiValue:     make(map[Value]bool),
		operandsOf:     make(map[Value][]Value),
		phiUsers:       make(map[Value][]Value),
	}
}

// Func returns the underlying function.
func (s *SSABuilder) Func() *Func { return s.f }

// DeclareVariable allocates a new Variable of the given type.
func (s *SSABuilder) DeclareVariable(ty Type) Variable {
	v := s.nextVar
	s.nextVar++
	s.varTypes[v] = ty
	return v
}

// DefVar records val as v's current definition at the end of block —
// WriteVariable in the paper.
func (s *SSABuilder) DefVar(block Block, v Variable, val Value) {
	s.writeVar(block, v, val)
}

func (s *SSABuilder) writeVar(block Block, v Variable, val Value) {
	m := s.currentDef[block]
	if m == nil {
		m = make(map[Variable]Value)
		s.currentDef[block] = m
	}
	m[v] = val
}

// IsSealed reports whether block has been sealed.
func (s *SSABuilder) IsSealed(block Block) bool { return s.sealed[block] }

// Jump emits an unconditional branch and records the resulting
// predecessor edge.
func (s *SSABuilder) Jump(from, target Block, args []Value) (Inst, error) {
	inst, err := s.b.Jump(target, args)
	if err != nil {
		return inst, err
	}
	s.recordPred(target, from, inst, 0)
	return inst, nil
}

// Brif emits a conditional branch and records both resulting
// predecessor edges.
func (s *SSABuilder) Brif(from Block, cond Value, thenTarget Block, thenArgs []Value, elseTarget Block, elseArgs []Value) (Inst, error) {
	inst, err := s.b.Brif(cond, thenTarget, thenArgs, elseTarget, elseArgs)
	if err != nil {
		return inst, err
	}
	s.recordPred(thenTarget, from, inst, 0)
	s.recordPred(elseTarget, from, inst, 1)
	return inst, nil
}

// BrTable emits a multiway branch and records a predecessor edge per
// arm, including the default.
func (s *SSABuilder) BrTable(from Block, index Value, defaultTarget Block, defaultArgs []Value, targets []BrTableArm) (Inst, error) {
	inst, err := s.b.BrTable(index, defaultTarget, defaultArgs, targets)
	if err != nil {
		return inst, err
	}
	s.recordPred(defaultTarget, from, inst, 0)
	for i, arm := range targets {
		s.recordPred(arm.Target, from, inst, i+1)
	}
	return inst, nil
}

func (s *SSABuilder) recordPred(target, from Block, branch Inst, callIdx int) {
	s.preds[target] = append(s.preds[target], predEdge{pred: from, branch: branch, callIdx: callIdx})
}

// ssaFrame is one level of the explicit call stack simulating
// ReadVariableRecursive/AddPhiOperands.
type ssaFrame struct {
	block    Block
	variable Variable
	phase    int // 0: entry, 1: awaiting single-pred child, 2: gathering phi operands
	out      *Value

	phi       Value
	preds     []predEdge
	predIdx   int
	childSlot Value // scratch: where a pushed child frame deposits its result
}

// UseVar returns the Value live for v at the end of block — ReadVariable
// in the paper — computed by an explicit stack of ssaFrames rather than
// native recursion.
func (s *SSABuilder) UseVar(block Block, v Variable) Value {
	var result Value
	stack := []*ssaFrame{{block: block, variable: v, out: &result}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		switch top.phase {
		case 0:
			if m := s.currentDef[top.block]; m != nil {
				if val, ok := m[top.variable]; ok {
					*top.out = val
					stack = stack[:len(stack)-1]
					continue
				}
			}
			if !s.sealed[top.block] {
				ty := s.varTypes[top.variable]
				phi := s.f.DFG.AppendBlockParam(top.block, ty)
				s.isPhiValue[phi] = true
				if s.incompletePhis[top.block] == nil {
					s.incompletePhis[top.block] = make(map[Variable]Value)
				}
				s.incompletePhis[top.block][top.variable] = phi
				s.writeVar(top.block, top.variable, phi)
				*top.out = phi
				stack = stack[:len(stack)-1]
				continue
			}
			preds := s.preds[top.block]
			switch len(preds) {
			case 0:
				ty := s.varTypes[top.variable]
				val := s.undefIn(top.block, ty)
				s.writeVar(top.block, top.variable, val)
				*top.out = val
				stack = stack[:len(stack)-1]
			case 1:
				top.phase = 1
				stack = append(stack, &ssaFrame{block: preds[0].pred, variable: top.variable, out: &top.childSlot})
			default:
				ty := s.varTypes[top.variable]
				phi := s.f.DFG.AppendBlockParam(top.block, ty)
				s.isPhiValue[phi] = true
				s.writeVar(top.block, top.variable, phi)
				top.phi = phi
				top.preds = preds
				top.predIdx = 0
				top.phase = 2
			}

		case 1:
			val := top.childSlot
			s.writeVar(top.block, top.variable, val)
			*top.out = val
			stack = stack[:len(stack)-1]

		case 2:
			if top.predIdx > 0 {
				edge := top.preds[top.predIdx-1]
				val := top.childSlot
				s.operandsOf[top.phi] = append(s.operandsOf[top.phi], val)
				s.f.DFG.AppendCallArg(edge.branch, edge.callIdx, val)
				if s.isPhiValue[val] {
					s.phiUsers[val] = append(s.phiUsers[val], top.phi)
				}
			}
			if top.predIdx < len(top.preds) {
				edge := top.preds[top.predIdx]
				top.predIdx++
				stack = append(stack, &ssaFrame{block: edge.pred, variable: top.variable, out: &top.childSlot})
				continue
			}
			final := s.finalizePhi(top.phi)
			*top.out = final
			stack = stack[:len(stack)-1]
		}
	}

	return result
}

// SealBlock declares that every predecessor of block is now known, per
// spec.md §4.7: AddPhiOperands runs for every sentinel phi block created
// while block was open, and SealBlock is the one place a variable's
// operand-gather may legitimately observe predecessors it didn't have
// yet when the sentinel was created.
func (s *SSABuilder) SealBlock(block Block) {
	pending := s.incompletePhis[block]
	delete(s.incompletePhis, block)
	preds := s.preds[block]
	for v, phi := range pending {
		for _, edge := range preds {
			val := s.UseVar(edge.pred, v)
			s.operandsOf[phi] = append(s.operandsOf[phi], val)
			s.f.DFG.AppendCallArg(edge.branch, edge.callIdx, val)
			if s.isPhiValue[val] {
				s.phiUsers[val] = append(s.phiUsers[val], phi)
			}
		}
		s.finalizePhi(phi)
	}
	s.sealed[block] = true
}

// finalizePhi applies trivial-phi elimination to phi and propagates the
// effect to any other phi that used phi as one of its own operands,
// since collapsing one sentinel can trivialize another — TryRemoveTrivialPhi
// in the paper, run to a fixpoint over an explicit worklist instead of
// mutual recursion between TryRemoveTrivialPhi and its callers' callers.
func (s *SSABuilder) finalizePhi(phi Value) Value {
	worklist := []Value{phi}
	queued := map[Value]bool{phi: true}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		delete(queued, cur)

		_, collapsed := s.collapseIfTrivial(cur)
		if !collapsed {
			continue
		}
		for _, user := range s.phiUsers[cur] {
			if user != cur && !queued[user] {
				worklist = append(worklist, user)
				queued[user] = true
			}
		}
		delete(s.phiUsers, cur)
	}

	return s.f.DFG.ResolveAliases(phi)
}

// collapseIfTrivial checks phi's recorded operands for triviality (every
// operand is either phi itself or one other common value) and, if
// trivial, removes the sentinel block parameter and aliases it to that
// common value.
func (s *SSABuilder) collapseIfTrivial(phi Value) (Value, bool) {
	operands, tracked := s.operandsOf[phi]
	if !tracked {
		return invalidValue, false
	}
	var same Value = invalidValue
	for _, raw := range operands {
		op := s.f.DFG.ResolveAliases(raw)
		if op == phi || op == same {
			continue
		}
		if same.Valid() {
			return invalidValue, false // genuinely merges >1 distinct value
		}
		same = op
	}

	if !same.Valid() {
		// every operand was a self-reference: phi is unreachable code.
		ty, _ := s.f.DFG.ValueType(phi)
		blk := s.f.DFG.ValueDefBlock(phi)
		same = s.undefIn(blk, ty)
	}

	s.f.DFG.RemoveBlockParam(phi)
	s.f.DFG.ChangeToAlias(phi, same)
	delete(s.operandsOf, phi)
	return same, true
}

// undefIn inserts a standalone OpUndef instruction into block without
// disturbing the Builder's current-block cursor, since finalization can
// run while the frontend is positioned somewhere else entirely.
func (s *SSABuilder) undefIn(block Block, ty Type) Value {
	inst := s.f.DFG.MakeInst(InstData{Op: OpUndef})
	s.f.Layout.AppendInst(inst, block)
	return s.f.DFG.AppendInstResult(inst, ty)
}
