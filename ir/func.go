// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// Func owns a DFG, a Layout and the peripheral side tables for one
// function, per spec.md §3's lifecycle rule: entities are created via the
// DFG or Layout APIs and released only when the Function is destroyed.
type Func struct {
	Name string

	DFG    *DataFlowGraph
	Layout *Layout

	DebugTags *DebugTags
	InstLocs  *SourceLocTable[Inst]
	BlockLocs *SourceLocTable[Block]
	Files     *FileTable

	dynamicTypes *DynamicTypes
	funcRefs     *FuncMetadataTable
}

// NewFunc returns an empty Function ready for Builder-driven construction.
func NewFunc(name string) *Func {
	return &Func{
		Name:         name,
		DFG:          newDataFlowGraph(),
		Layout:       NewLayout(),
		DebugTags:    newDebugTags(),
		InstLocs:     NewSourceLocTable[Inst](),
		BlockLocs:    NewSourceLocTable[Block](),
		Files:        NewFileTable(),
		dynamicTypes: newDynamicTypes(),
		funcRefs:     newFuncMetadataTable(),
	}
}

// NumValues, NumInsts and NumBlocks pass through to the DFG; they count
// every entity ever allocated, independent of Layout membership.
func (f *Func) NumValues() int { return f.DFG.NumValues() }
func (f *Func) NumInsts() int  { return f.DFG.NumInsts() }
func (f *Func) NumBlocks() int { return f.DFG.NumBlocks() }

// EntryBlock returns the function's entry block: the first block in
// layout order.
func (f *Func) EntryBlock() (Block, bool) { return f.Layout.EntryBlock() }

// DeclareDynamicType registers info in the dynamic-type table and returns
// its handle.
func (f *Func) DeclareDynamicType(info DynamicTypeInfo) DynamicType {
	return f.dynamicTypes.Push(info)
}

// DynamicTypeInfo returns the info registered for dt.
func (f *Func) DynamicTypeInfo(dt DynamicType) (DynamicTypeInfo, bool) {
	return f.dynamicTypes.Get(dt)
}

// DeclareFuncRef registers meta in the function-metadata table and
// returns its handle.
func (f *Func) DeclareFuncRef(meta FuncMetadata) FuncRef {
	return f.funcRefs.Push(meta)
}

// FuncRefMetadata returns the metadata registered for ref.
func (f *Func) FuncRefMetadata(ref FuncRef) (FuncMetadata, bool) {
	return f.funcRefs.Get(ref)
}
