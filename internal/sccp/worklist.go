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
    `github.com/oleiade/lane`

    `github.com/lumenlang/lumen/internal/ir`
)

// _FlowEdge is a control-flow edge between two basic blocks.
type _FlowEdge struct {
    bb *ir.BasicBlock
    to *ir.BasicBlock
}

// _SSAEdge connects a value definition to one of its use sites. The use
// field holds a *ir.IrPhi, an ir.IrNode or an ir.IrTerminator.
type _SSAEdge struct {
    def ir.ValueId
    bb  *ir.BasicBlock
    use interface{}
}

// _FlowWorklist is a FIFO queue of flow edges with O(1) duplicate
// suppression, an edge queued twice before being drained is kept once.
type _FlowWorklist struct {
    q *lane.Queue
    s map[_FlowEdge]struct{}
}

func newFlowWorklist() *_FlowWorklist {
    return &_FlowWorklist {
        q: lane.NewQueue(),
        s: make(map[_FlowEdge]struct{}),
    }
}

func (self *_FlowWorklist) push(e _FlowEdge) bool {
    if _, ok := self.s[e]; ok {
        return false
    }
    self.s[e] = struct{}{}
    self.q.Enqueue(e)
    return true
}

func (self *_FlowWorklist) pop() (_FlowEdge, bool) {
    if self.q.Empty() {
        return _FlowEdge {}, false
    }
    e := self.q.Dequeue().(_FlowEdge)
    delete(self.s, e)
    return e, true
}

func (self *_FlowWorklist) empty() bool {
    return self.q.Empty()
}

func (self *_FlowWorklist) clear() {
    for !self.q.Empty() {
        self.q.Dequeue()
    }
    for e := range self.s {
        delete(self.s, e)
    }
}

// _SSAWorklist is the same queue shape over SSA edges.
type _SSAWorklist struct {
    q *lane.Queue
    s map[_SSAEdge]struct{}
}

func newSSAWorklist() *_SSAWorklist {
    return &_SSAWorklist {
        q: lane.NewQueue(),
        s: make(map[_SSAEdge]struct{}),
    }
}

func (self *_SSAWorklist) push(e _SSAEdge) bool {
    if _, ok := self.s[e]; ok {
        return false
    }
    self.s[e] = struct{}{}
    self.q.Enqueue(e)
    return true
}

func (self *_SSAWorklist) pop() (_SSAEdge, bool) {
    if self.q.Empty() {
        return _SSAEdge {}, false
    }
    e := self.q.Dequeue().(_SSAEdge)
    delete(self.s, e)
    return e, true
}

func (self *_SSAWorklist) empty() bool {
    return self.q.Empty()
}

func (self *_SSAWorklist) clear() {
    for !self.q.Empty() {
        self.q.Dequeue()
    }
    for e := range self.s {
        delete(self.s, e)
    }
}
