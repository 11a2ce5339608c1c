// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "github.com/coreir/ir/entity"

// DebugTag is one entry of an instruction's debug-tag list: either a
// frontend-defined "user" tag or a reference to a StackSlot, per
// spec.md §4.9.
type DebugTag struct {
	IsStackSlot bool
	User        uint32
	Slot        StackSlot
}

// DebugTags is the per-instruction debug-tag side table. Tag lists are
// immutable once attached, so CloneTags is a cheap shared-range copy
// rather than a deep copy: two instructions can point at the same
// backing range without either one ever mutating it in place.
type DebugTags struct {
	pool *entity.ListPool[DebugTag]
	tags *entity.SecondaryMap[Inst, entity.List]
}

func newDebugTags() *DebugTags {
	return &DebugTags{
		pool: entity.NewListPool[DebugTag](),
		tags: entity.NewSecondaryMap[Inst, entity.List](),
	}
}

// SetTags replaces inst's tag list wholesale.
func (d *DebugTags) SetTags(inst Inst, tags []DebugTag) {
	d.tags.Set(inst, d.pool.FromSlice(tags))
}

// Tags returns inst's debug tags, or nil if none were ever set.
func (d *DebugTags) Tags(inst Inst) []DebugTag {
	l := d.tags.Get(inst)
	if l.Empty() {
		return nil
	}
	return d.pool.Get(l)
}

// CloneTags makes to share from's tag list. O(1): it copies the (offset,
// length) handle, not the underlying tags.
func (d *DebugTags) CloneTags(from, to Inst) {
	d.tags.Set(to, d.tags.Get(from))
}

// SourceLoc is a source position attached to an entity: a file (interned,
// see FileTable), a line and a column.
type SourceLoc struct {
	File   int
	Line   int32
	Column int32
}

// FileTable interns source file path strings so SourceLoc can carry a
// small int instead of repeating the path per entity.
type FileTable struct {
	byName map[string]int
	names  []string
}

// NewFileTable returns an empty FileTable.
func NewFileTable() *FileTable {
	return &FileTable{byName: make(map[string]int)}
}

// Intern returns the (stable) id for name, allocating one if this is the
// first time name has been seen.
func (t *FileTable) Intern(name string) int {
	if id, ok := t.byName[name]; ok {
		return id
	}
	id := len(t.names)
	t.names = append(t.names, name)
	t.byName[name] = id
	return id
}

// Name returns the file path previously interned as id.
func (t *FileTable) Name(id int) string {
	if id < 0 || id >= len(t.names) {
		return ""
	}
	return t.names[id]
}

// SourceLocTable attaches a SourceLoc to any handle kind K (Inst or
// Block, in this module) sparsely, reading as the zero SourceLoc
// ({File:0, Line:0, Column:0}) for entities nobody ever annotated.
type SourceLocTable[K entity.Handle] struct {
	locs *entity.SecondaryMap[K, SourceLoc]
}

// NewSourceLocTable returns an empty SourceLocTable.
func NewSourceLocTable[K entity.Handle]() *SourceLocTable[K] {
	return &SourceLocTable[K]{locs: entity.NewSecondaryMap[K, SourceLoc]()}
}

// Set records loc for k.
func (t *SourceLocTable[K]) Set(k K, loc SourceLoc) { t.locs.Set(k, loc) }

// Get returns the SourceLoc recorded for k, or the zero value.
func (t *SourceLocTable[K]) Get(k K) SourceLoc { return t.locs.Get(k) }

// DynamicTypeInfo is the payload of a DynamicType entry: the fixed-width
// vector type it scales from, and the GlobalValue holding the runtime
// scale factor.
type DynamicTypeInfo struct {
	BaseVectorType   Type
	ScaleGlobalValue GlobalValue
}

// DynamicTypes is the PrimaryMap of DynamicType handles to their info,
// per spec.md §4.9.
type DynamicTypes = entity.PrimaryMap[DynamicType, DynamicTypeInfo]

func newDynamicTypes() *DynamicTypes {
	return entity.NewPrimaryMap[DynamicType, DynamicTypeInfo](dynamicTypeFromIndex)
}

// Linkage classifies how a FuncRef's external name should be treated by
// the (out of scope) linker.
type Linkage uint8

const (
	LinkageImport Linkage = iota
	LinkageExport
	LinkageLocal
)

func (l Linkage) String() string {
	switch l {
	case LinkageImport:
		return "import"
	case LinkageExport:
		return "export"
	case LinkageLocal:
		return "local"
	default:
		return "linkage<?>"
	}
}

// FuncMetadata is the payload of a FuncRef entry.
type FuncMetadata struct {
	ExternalName string
	Sig          SigRef
	Linkage      Linkage
}

// FuncMetadataTable is the PrimaryMap of FuncRef handles to their
// metadata, per spec.md §4.9.
type FuncMetadataTable = entity.PrimaryMap[FuncRef, FuncMetadata]

func newFuncMetadataTable() *FuncMetadataTable {
	return entity.NewPrimaryMap[FuncRef, FuncMetadata](funcRefFromIndex)
}
