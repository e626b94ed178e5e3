/*
 * Copyright 2025 Lumen Project Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sccp

import (
    `github.com/lumenlang/lumen/internal/ir`
)

// _ExecEdges is the reachability ledger: the set of flow edges proven
// executable and the blocks reachable through them. Both sets only ever
// grow during analysis.
type _ExecEdges struct {
    edges  map[_FlowEdge]struct{}
    blocks map[*ir.BasicBlock]struct{}
}

func newExecEdges() *_ExecEdges {
    return &_ExecEdges {
        edges  : make(map[_FlowEdge]struct{}),
        blocks : make(map[*ir.BasicBlock]struct{}),
    }
}

// markEdge inserts the edge and reports whether the edge is new and whether
// its destination just became reachable for the first time.
func (self *_ExecEdges) markEdge(bb *ir.BasicBlock, to *ir.BasicBlock) (newEdge bool, newBlock bool) {
    e := _FlowEdge { bb: bb, to: to }
    if _, ok := self.edges[e]; ok {
        return false, false
    }
    self.edges[e] = struct{}{}
    if _, ok := self.blocks[to]; !ok {
        self.blocks[to] = struct{}{}
        return true, true
    }
    return true, false
}

// markBlock forces a block reachable without an incoming edge, used to seed
// the entry block.
func (self *_ExecEdges) markBlock(bb *ir.BasicBlock) {
    self.blocks[bb] = struct{}{}
}

func (self *_ExecEdges) edgeExecutable(bb *ir.BasicBlock, to *ir.BasicBlock) bool {
    _, ok := self.edges[_FlowEdge { bb: bb, to: to }]
    return ok
}

func (self *_ExecEdges) blockExecutable(bb *ir.BasicBlock) bool {
    _, ok := self.blocks[bb]
    return ok
}

func (self *_ExecEdges) blockCount() int {
    return len(self.blocks)
}
