// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "github.com/coreir/ir/entity"

// blockData is the DFG's per-Block record: just its ordered parameter
// list. Instruction order lives in the Layout, not here, per spec.md §3.
type blockData struct {
	params entity.List // of Value, owned by DFG.paramPool
}
