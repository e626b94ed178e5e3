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
    `sort`
    `strings`
)

// IrSuccessors iterates the successor blocks of a terminator. Value reports
// the case key when the underlying edge belongs to a switch case.
type IrSuccessors interface {
    Next() bool
    Block() *BasicBlock
    Value() (int64, bool)
}

type IrTerminator interface {
    fmt.Stringer
    Successors() IrSuccessors
    irterminator()
}

func (*IrJump)        irterminator() {}
func (*IrBranch)      irterminator() {}
func (*IrSwitch)      irterminator() {}
func (*IrReturn)      irterminator() {}
func (*IrUnreachable) irterminator() {}

type _Successors struct {
    i int
    b []*BasicBlock
    v []int64
    k []bool
}

func (self *_Successors) Next() bool {
    self.i++
    return self.i <= len(self.b)
}

func (self *_Successors) Block() *BasicBlock {
    return self.b[self.i - 1]
}

func (self *_Successors) Value() (int64, bool) {
    if i := self.i - 1; self.k == nil || !self.k[i] {
        return 0, false
    } else {
        return self.v[i], true
    }
}

// IrJump transfers control unconditionally.
type IrJump struct {
    To *BasicBlock
}

func (self *IrJump) String() string {
    return fmt.Sprintf("goto bb_%d", self.To.Id)
}

func (self *IrJump) Successors() IrSuccessors {
    return &_Successors { b: []*BasicBlock { self.To } }
}

// IrBranch transfers control to Then when Cond is true, to Else otherwise.
type IrBranch struct {
    Cond ValueId
    Then *BasicBlock
    Else *BasicBlock
}

func (self *IrBranch) String() string {
    return fmt.Sprintf("if %s then bb_%d else bb_%d", self.Cond, self.Then.Id, self.Else.Id)
}

func (self *IrBranch) Usages() []*ValueId {
    return []*ValueId { &self.Cond }
}

func (self *IrBranch) Successors() IrSuccessors {
    return &_Successors { b: []*BasicBlock { self.Then, self.Else } }
}

// IrSwitch transfers control to the case matching V, or to Ln when nothing
// matches. Successor iteration is deterministic, cases come first in key
// order, the default edge comes last.
type IrSwitch struct {
    V  ValueId
    Br map[int64]*BasicBlock
    Ln *BasicBlock
}

func (self *IrSwitch) String() string {
    nb := len(self.Br)
    ret := make([]string, 0, nb + 1)

    /* add each case */
    for _, k := range self.keys() {
        ret = append(ret, fmt.Sprintf("  %d => bb_%d,", k, self.Br[k].Id))
    }

    /* default branch */
    ret = append(ret, fmt.Sprintf("  _ => bb_%d,", self.Ln.Id))
    return fmt.Sprintf("switch %s {\n%s\n}", self.V, strings.Join(ret, "\n"))
}

func (self *IrSwitch) keys() []int64 {
    ks := make([]int64, 0, len(self.Br))
    for k := range self.Br {
        ks = append(ks, k)
    }
    sort.Slice(ks, func(i int, j int) bool { return ks[i] < ks[j] })
    return ks
}

func (self *IrSwitch) Usages() []*ValueId {
    return []*ValueId { &self.V }
}

func (self *IrSwitch) Successors() IrSuccessors {
    ks := self.keys()
    it := &_Successors {
        b: make([]*BasicBlock, 0, len(ks) + 1),
        v: make([]int64, 0, len(ks) + 1),
        k: make([]bool, 0, len(ks) + 1),
    }
    for _, k := range ks {
        it.b = append(it.b, self.Br[k])
        it.v = append(it.v, k)
        it.k = append(it.k, true)
    }
    it.b = append(it.b, self.Ln)
    it.v = append(it.v, 0)
    it.k = append(it.k, false)
    return it
}

// IrReturn leaves the function, R may be Vnone for void returns.
type IrReturn struct {
    R ValueId
}

func (self *IrReturn) String() string {
    if self.R == Vnone {
        return "ret"
    } else {
        return fmt.Sprintf("ret %s", self.R)
    }
}

func (self *IrReturn) Usages() []*ValueId {
    if self.R == Vnone {
        return nil
    } else {
        return []*ValueId { &self.R }
    }
}

func (self *IrReturn) Successors() IrSuccessors {
    return &_Successors {}
}

// IrUnreachable marks a point the program can never reach.
type IrUnreachable struct{}

func (self *IrUnreachable) String() string {
    return "unreachable"
}

func (self *IrUnreachable) Successors() IrSuccessors {
    return &_Successors {}
}
