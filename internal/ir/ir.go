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

// ValueId identifies an SSA value within a function. The zero value means
// "no value", every real definition gets a non-zero id from the function's
// allocator.
type ValueId uint32

const (
    Vnone ValueId = 0
)

func (self ValueId) String() string {
    if self == Vnone {
        return "_"
    } else {
        return fmt.Sprintf("%%%d", uint32(self))
    }
}

// Pos is the source location an instruction was lowered from.
type Pos struct {
    Line int32
    Col  int32
}

func (self Pos) String() string {
    return fmt.Sprintf("%d:%d", self.Line, self.Col)
}

type IrNode interface {
    fmt.Stringer
    irnode()
}

func (*IrConst)      irnode() {}
func (*IrUnaryExpr)  irnode() {}
func (*IrBinaryExpr) irnode() {}
func (*IrCast)       irnode() {}
func (*IrLoad)       irnode() {}
func (*IrStore)      irnode() {}
func (*IrCall)       irnode() {}

// IrUsages is implemented by every node that reads SSA values. The returned
// pointers alias the node's own operand fields, so rewriting a use is a
// plain pointer store.
type IrUsages interface {
    Usages() []*ValueId
}

// IrDefinitions is implemented by every node that defines SSA values.
type IrDefinitions interface {
    Definitions() []*ValueId
}

type IrUnaryOp uint8

const (
    IrOpNegate IrUnaryOp = iota
    IrOpNot
    IrOpComplement
)

func (self IrUnaryOp) String() string {
    switch self {
        case IrOpNegate     : return "neg"
        case IrOpNot        : return "not"
        case IrOpComplement : return "bnot"
        default             : panic("ir: invalid unary operator")
    }
}

type IrBinaryOp uint8

const (
    IrOpAdd IrBinaryOp = iota
    IrOpSub
    IrOpMul
    IrOpDiv
    IrOpMod
    IrOpAnd
    IrOpOr
    IrOpXor
    IrOpShl
    IrOpShr
    IrCmpEq
    IrCmpNe
    IrCmpLt
    IrCmpLe
    IrCmpGt
    IrCmpGe
    IrOpLogicAnd
    IrOpLogicOr
)

func (self IrBinaryOp) IsComparison() bool {
    return self >= IrCmpEq && self <= IrCmpGe
}

func (self IrBinaryOp) String() string {
    switch self {
        case IrOpAdd      : return "add"
        case IrOpSub      : return "sub"
        case IrOpMul      : return "mul"
        case IrOpDiv      : return "div"
        case IrOpMod      : return "mod"
        case IrOpAnd      : return "and"
        case IrOpOr       : return "or"
        case IrOpXor      : return "xor"
        case IrOpShl      : return "shl"
        case IrOpShr      : return "shr"
        case IrCmpEq      : return "eq"
        case IrCmpNe      : return "ne"
        case IrCmpLt      : return "lt"
        case IrCmpLe      : return "le"
        case IrCmpGt      : return "gt"
        case IrCmpGe      : return "ge"
        case IrOpLogicAnd : return "land"
        case IrOpLogicOr  : return "lor"
        default           : panic("ir: invalid binary operator")
    }
}

// IrConst materializes a literal.
type IrConst struct {
    R   ValueId
    V   Lit
    Src Pos
}

func (self *IrConst) String() string {
    return fmt.Sprintf("%s = const %s", self.R, self.V)
}

func (self *IrConst) Definitions() []*ValueId {
    return []*ValueId { &self.R }
}

// IrUnaryExpr applies a unary operator to a value.
type IrUnaryExpr struct {
    R   ValueId
    V   ValueId
    Op  IrUnaryOp
    Src Pos
}

func (self *IrUnaryExpr) String() string {
    return fmt.Sprintf("%s = %s %s", self.R, self.Op, self.V)
}

func (self *IrUnaryExpr) Usages() []*ValueId {
    return []*ValueId { &self.V }
}

func (self *IrUnaryExpr) Definitions() []*ValueId {
    return []*ValueId { &self.R }
}

// IrBinaryExpr applies a binary operator to two values.
type IrBinaryExpr struct {
    R   ValueId
    X   ValueId
    Y   ValueId
    Op  IrBinaryOp
    Src Pos
}

func (self *IrBinaryExpr) String() string {
    return fmt.Sprintf("%s = %s %s, %s", self.R, self.Op, self.X, self.Y)
}

func (self *IrBinaryExpr) Usages() []*ValueId {
    return []*ValueId { &self.X, &self.Y }
}

func (self *IrBinaryExpr) Definitions() []*ValueId {
    return []*ValueId { &self.R }
}

// IrCast converts a value to another scalar type.
type IrCast struct {
    R   ValueId
    V   ValueId
    Ty  Type
    Src Pos
}

func (self *IrCast) String() string {
    return fmt.Sprintf("%s = cast %s to %s", self.R, self.V, self.Ty)
}

func (self *IrCast) Usages() []*ValueId {
    return []*ValueId { &self.V }
}

func (self *IrCast) Definitions() []*ValueId {
    return []*ValueId { &self.R }
}

// IrLoad reads a value of type Ty through the Mem pointer.
type IrLoad struct {
    R   ValueId
    Mem ValueId
    Ty  Type
    Src Pos
}

func (self *IrLoad) String() string {
    return fmt.Sprintf("%s = load %s *%s", self.R, self.Ty, self.Mem)
}

func (self *IrLoad) Usages() []*ValueId {
    return []*ValueId { &self.Mem }
}

func (self *IrLoad) Definitions() []*ValueId {
    return []*ValueId { &self.R }
}

// IrStore writes V through the Mem pointer.
type IrStore struct {
    Mem ValueId
    V   ValueId
    Src Pos
}

func (self *IrStore) String() string {
    return fmt.Sprintf("store %s, *%s", self.V, self.Mem)
}

func (self *IrStore) Usages() []*ValueId {
    return []*ValueId { &self.V, &self.Mem }
}

// IrCall invokes a function, R may be Vnone for void calls.
type IrCall struct {
    R    ValueId
    Fn   string
    Args []ValueId
    Src  Pos
}

func (self *IrCall) String() string {
    args := make([]string, 0, len(self.Args))
    for _, v := range self.Args {
        args = append(args, v.String())
    }
    if self.R == Vnone {
        return fmt.Sprintf("call %s(%s)", self.Fn, strings.Join(args, ", "))
    } else {
        return fmt.Sprintf("%s = call %s(%s)", self.R, self.Fn, strings.Join(args, ", "))
    }
}

func (self *IrCall) Usages() []*ValueId {
    ret := make([]*ValueId, 0, len(self.Args))
    for i := range self.Args {
        ret = append(ret, &self.Args[i])
    }
    return ret
}

func (self *IrCall) Definitions() []*ValueId {
    if self.R == Vnone {
        return nil
    } else {
        return []*ValueId { &self.R }
    }
}

// IrPhi merges one value per predecessor block. Incoming values are stored
// behind pointers so use rewriting works the same way as for instructions.
type IrPhi struct {
    R   ValueId
    V   map[*BasicBlock]*ValueId
    Src Pos
}

func (self *IrPhi) String() string {
    ids := make([]int, 0, len(self.V))
    tab := make(map[int]string, len(self.V))
    for bb, v := range self.V {
        ids = append(ids, bb.Id)
        tab[bb.Id] = v.String()
    }
    sort.Ints(ids)
    ret := make([]string, 0, len(ids))
    for _, id := range ids {
        ret = append(ret, fmt.Sprintf("bb_%d: %s", id, tab[id]))
    }
    return fmt.Sprintf("%s = phi { %s }", self.R, strings.Join(ret, ", "))
}

func (self *IrPhi) Usages() []*ValueId {
    ret := make([]*ValueId, 0, len(self.V))
    for _, v := range self.V {
        ret = append(ret, v)
    }
    return ret
}

func (self *IrPhi) Definitions() []*ValueId {
    return []*ValueId { &self.R }
}
