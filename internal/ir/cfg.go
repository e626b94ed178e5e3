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

package ir

import (
    `fmt`
    `strings`

    `github.com/oleiade/lane`
)

// BasicBlock is a straight-line run of instructions with a single
// terminator. Pred is derived state, it is recomputed by Function.Rebuild
// and must not be edited directly.
type BasicBlock struct {
    Id   int
    Phi  []*IrPhi
    Ins  []IrNode
    Term IrTerminator
    Pred []*BasicBlock
}

func (self *BasicBlock) String() string {
    buf := make([]string, 0, len(self.Phi) + len(self.Ins) + 2)
    buf = append(buf, fmt.Sprintf("bb_%d:", self.Id))
    for _, p := range self.Phi {
        buf = append(buf, "    " + p.String())
    }
    for _, v := range self.Ins {
        buf = append(buf, "    " + v.String())
    }
    if self.Term != nil {
        buf = append(buf, "    " + strings.ReplaceAll(self.Term.String(), "\n", "\n    "))
    }
    return strings.Join(buf, "\n")
}

// AddPhi appends a phi node merging the given incoming values.
func (self *BasicBlock) AddPhi(r ValueId, in map[*BasicBlock]ValueId) *IrPhi {
    vv := make(map[*BasicBlock]*ValueId, len(in))
    for bb, v := range in {
        p := v
        vv[bb] = &p
    }
    ret := &IrPhi { R: r, V: vv }
    self.Phi = append(self.Phi, ret)
    return ret
}

// Function is an ordered list of basic blocks, the first block is the entry.
type Function struct {
    Name    string
    Params  []ValueId
    Blocks  []*BasicBlock
    maxbb   int
    maxval  ValueId
}

// NewFunction creates a function with nparams parameter values and a single
// empty entry block.
func NewFunction(name string, nparams int) *Function {
    fn := &Function { Name: name }
    for i := 0; i < nparams; i++ {
        fn.Params = append(fn.Params, fn.NewValue())
    }
    fn.NewBlock()
    return fn
}

// NewValue allocates a fresh SSA value id.
func (self *Function) NewValue() ValueId {
    self.maxval++
    return self.maxval
}

// NewBlock appends a fresh empty block to the function.
func (self *Function) NewBlock() *BasicBlock {
    self.maxbb++
    bb := &BasicBlock { Id: self.maxbb }
    self.Blocks = append(self.Blocks, bb)
    return bb
}

// Entry returns the entry block.
func (self *Function) Entry() *BasicBlock {
    if len(self.Blocks) == 0 {
        panic("ir: function without blocks: " + self.Name)
    } else {
        return self.Blocks[0]
    }
}

// MaxValue returns the highest value id allocated so far.
func (self *Function) MaxValue() ValueId {
    return self.maxval
}

// RemoveBlocks drops every block matched by pred from the block list. The
// caller is responsible for fixing up phis and calling Rebuild afterwards.
func (self *Function) RemoveBlocks(pred func(bb *BasicBlock) bool) int {
    nb := 0
    ret := self.Blocks[:0]
    for _, bb := range self.Blocks {
        if pred(bb) {
            nb++
        } else {
            ret = append(ret, bb)
        }
    }
    self.Blocks = ret
    return nb
}

// Rebuild recomputes every block's predecessor list from the terminators.
// Multiple edges between the same block pair collapse into one predecessor
// entry, matching the one-incoming-value-per-predecessor phi shape.
func (self *Function) Rebuild() {
    for _, bb := range self.Blocks {
        bb.Pred = bb.Pred[:0]
    }
    for _, bb := range self.Blocks {
        seen := make(map[int]struct{})
        for it := bb.Term.Successors(); it.Next(); {
            to := it.Block()
            if _, ok := seen[to.Id]; !ok {
                seen[to.Id] = struct{}{}
                to.Pred = append(to.Pred, bb)
            }
        }
    }
}

// PostOrder invokes action on every block reachable from the entry, in
// post-order over a depth-first traversal.
func (self *Function) PostOrder(action func(bb *BasicBlock)) {
    self.postorder(self.Entry(), action)
}

// ReversePostOrder invokes action on every block reachable from the entry,
// in reverse post-order.
func (self *Function) ReversePostOrder(action func(bb *BasicBlock)) {
    var ret []*BasicBlock
    self.postorder(self.Entry(), func(bb *BasicBlock) { ret = append(ret, bb) })
    for i := len(ret) - 1; i >= 0; i-- {
        action(ret[i])
    }
}

func (self *Function) postorder(root *BasicBlock, action func(bb *BasicBlock)) {
    st := lane.NewStack()
    st.Push(root)
    vis := map[int]struct{} { root.Id: {} }

    /* iterative DFS, a block is emitted once all its successors are visited */
    for !st.Empty() {
        tail := true
        this := st.Head().(*BasicBlock)

        /* push the first unvisited successor */
        for it := this.Term.Successors(); it.Next(); {
            if p := it.Block(); p != nil {
                if _, ok := vis[p.Id]; !ok {
                    tail = false
                    vis[p.Id] = struct{}{}
                    st.Push(p)
                    break
                }
            }
        }

        /* all the successors are visited, pop the current node */
        if tail {
            action(st.Pop().(*BasicBlock))
        }
    }
}

func (self *Function) String() string {
    buf := make([]string, 0, len(self.Blocks) + 1)
    buf = append(buf, fmt.Sprintf("func %s(%d params) {", self.Name, len(self.Params)))
    for _, bb := range self.Blocks {
        buf = append(buf, bb.String())
    }
    buf = append(buf, "}")
    return strings.Join(buf, "\n")
}

// Module is a named collection of functions.
type Module struct {
    Name  string
    Funcs []*Function
}

func NewModule(name string) *Module {
    return &Module { Name: name }
}

func (self *Module) AddFunction(fn *Function) {
    self.Funcs = append(self.Funcs, fn)
}

func (self *Module) String() string {
    buf := make([]string, 0, len(self.Funcs) + 1)
    buf = append(buf, fmt.Sprintf("module %s", self.Name))
    for _, fn := range self.Funcs {
        buf = append(buf, fn.String())
    }
    return strings.Join(buf, "\n\n")
}
