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
    `math`
    `testing`

    `github.com/stretchr/testify/require`

    `github.com/lumenlang/lumen/internal/ir`
)

func mapEnv(m map[ir.ValueId]LatticeValue) _Env {
    return func(v ir.ValueId) LatticeValue {
        return m[v]
    }
}

func TestEvalInstr_OperandRules(t *testing.T) {
    env := mapEnv(map[ir.ValueId]LatticeValue {
        1: constValue(ir.Int(ir.I32, 5)),
        2: constValue(ir.Int(ir.I32, 10)),
        3: topValue(),
        4: bottomValue(),
    })

    /* both constants fold */
    r := evalInstr(&ir.IrBinaryExpr { R: 9, X: 1, Y: 2, Op: ir.IrOpAdd }, env)
    require.True(t, r.IsConst())
    require.Equal(t, ir.Int(ir.I32, 15), r.Lit())

    /* a top operand keeps the result optimistic */
    r = evalInstr(&ir.IrBinaryExpr { R: 9, X: 1, Y: 3, Op: ir.IrOpAdd }, env)
    require.True(t, r.IsTop())

    /* a bottom operand dominates, even alongside a top one */
    r = evalInstr(&ir.IrBinaryExpr { R: 9, X: 3, Y: 4, Op: ir.IrOpAdd }, env)
    require.True(t, r.IsBottom())

    /* literals are themselves */
    r = evalInstr(&ir.IrConst { R: 9, V: ir.BoolLit(true) }, env)
    require.Equal(t, constValue(ir.BoolLit(true)), r)

    /* loads and calls are never constant */
    require.True(t, evalInstr(&ir.IrLoad { R: 9, Mem: 1, Ty: ir.I32 }, env).IsBottom())
    require.True(t, evalInstr(&ir.IrCall { R: 9, Fn: "f", Args: []ir.ValueId { 1 } }, env).IsBottom())
}

func TestFoldBinary_SignedOverflow(t *testing.T) {
    max := ir.Int(ir.I32, math.MaxInt32)
    one := ir.Int(ir.I32, 1)

    /* i32 max + 1 overflows, no fold */
    _, ok := foldBinary(ir.IrOpAdd, max, one)
    require.False(t, ok)

    /* the same payload fits in i64 */
    r, ok := foldBinary(ir.IrOpAdd, ir.Int(ir.I64, math.MaxInt32), ir.Int(ir.I64, 1))
    require.True(t, ok)
    require.Equal(t, ir.Int(ir.I64, math.MaxInt32 + 1), r)

    /* i64 boundary */
    _, ok = foldBinary(ir.IrOpAdd, ir.Int(ir.I64, math.MaxInt64), ir.Int(ir.I64, 1))
    require.False(t, ok)

    /* min - 1 underflows */
    _, ok = foldBinary(ir.IrOpSub, ir.Int(ir.I8, -128), ir.Int(ir.I8, 1))
    require.False(t, ok)

    /* multiplication overflow */
    _, ok = foldBinary(ir.IrOpMul, ir.Int(ir.I16, 0x4000), ir.Int(ir.I16, 2))
    require.False(t, ok)

    /* negating the minimum value has no representation */
    _, ok = foldUnary(ir.IrOpNegate, ir.Int(ir.I32, math.MinInt32))
    require.False(t, ok)
    r, ok = foldUnary(ir.IrOpNegate, ir.Int(ir.I32, 42))
    require.True(t, ok)
    require.Equal(t, ir.Int(ir.I32, -42), r)
}

func TestFoldBinary_DivMod(t *testing.T) {
    /* division by zero is not folded */
    _, ok := foldBinary(ir.IrOpDiv, ir.Int(ir.I32, 10), ir.Int(ir.I32, 0))
    require.False(t, ok)
    _, ok = foldBinary(ir.IrOpMod, ir.Int(ir.I32, 10), ir.Int(ir.I32, 0))
    require.False(t, ok)
    _, ok = foldBinary(ir.IrOpDiv, ir.Uint(ir.U32, 10), ir.Uint(ir.U32, 0))
    require.False(t, ok)

    /* MinInt / -1 overflows */
    _, ok = foldBinary(ir.IrOpDiv, ir.Int(ir.I32, math.MinInt32), ir.Int(ir.I32, -1))
    require.False(t, ok)
    _, ok = foldBinary(ir.IrOpMod, ir.Int(ir.I64, math.MinInt64), ir.Int(ir.I64, -1))
    require.False(t, ok)

    /* truncating division */
    r, ok := foldBinary(ir.IrOpDiv, ir.Int(ir.I32, -7), ir.Int(ir.I32, 2))
    require.True(t, ok)
    require.Equal(t, ir.Int(ir.I32, -3), r)
    r, ok = foldBinary(ir.IrOpMod, ir.Int(ir.I32, -7), ir.Int(ir.I32, 2))
    require.True(t, ok)
    require.Equal(t, ir.Int(ir.I32, -1), r)
}

func TestFoldBinary_Unsigned(t *testing.T) {
    /* unsigned wrap-around is not folded */
    _, ok := foldBinary(ir.IrOpAdd, ir.Uint(ir.U8, 255), ir.Uint(ir.U8, 1))
    require.False(t, ok)
    _, ok = foldBinary(ir.IrOpSub, ir.Uint(ir.U16, 0), ir.Uint(ir.U16, 1))
    require.False(t, ok)
    _, ok = foldBinary(ir.IrOpMul, ir.Uint(ir.U64, math.MaxUint64), ir.Uint(ir.U64, 2))
    require.False(t, ok)

    r, ok := foldBinary(ir.IrOpAdd, ir.Uint(ir.U8, 200), ir.Uint(ir.U8, 55))
    require.True(t, ok)
    require.Equal(t, ir.Uint(ir.U8, 255), r)
}

func TestFoldBinary_Shifts(t *testing.T) {
    /* shift count at or past the operand width is not folded */
    _, ok := foldBinary(ir.IrOpShl, ir.Int(ir.I32, 1), ir.Int(ir.I32, 32))
    require.False(t, ok)
    _, ok = foldBinary(ir.IrOpShr, ir.Uint(ir.U8, 1), ir.Uint(ir.U8, 8))
    require.False(t, ok)
    _, ok = foldBinary(ir.IrOpShl, ir.Int(ir.I32, 1), ir.Int(ir.I32, -1))
    require.False(t, ok)

    /* shifting out significant bits is not folded */
    _, ok = foldBinary(ir.IrOpShl, ir.Int(ir.I32, 0x40000000), ir.Int(ir.I32, 1))
    require.False(t, ok)
    _, ok = foldBinary(ir.IrOpShl, ir.Uint(ir.U8, 0x80), ir.Uint(ir.U8, 1))
    require.False(t, ok)

    r, ok := foldBinary(ir.IrOpShl, ir.Int(ir.I32, 3), ir.Int(ir.I32, 4))
    require.True(t, ok)
    require.Equal(t, ir.Int(ir.I32, 48), r)
    r, ok = foldBinary(ir.IrOpShr, ir.Int(ir.I32, -16), ir.Int(ir.I32, 2))
    require.True(t, ok)
    require.Equal(t, ir.Int(ir.I32, -4), r)
}

func TestFoldBinary_MixedTypes(t *testing.T) {
    _, ok := foldBinary(ir.IrOpAdd, ir.Int(ir.I32, 1), ir.Int(ir.I64, 1))
    require.False(t, ok)
    _, ok = foldBinary(ir.IrCmpEq, ir.Int(ir.I32, 1), ir.Uint(ir.U32, 1))
    require.False(t, ok)
}

func TestFoldBinary_Comparisons(t *testing.T) {
    r, ok := foldBinary(ir.IrCmpLt, ir.Int(ir.I32, -1), ir.Int(ir.I32, 1))
    require.True(t, ok)
    require.Equal(t, ir.BoolLit(true), r)

    /* unsigned comparison is by magnitude */
    r, ok = foldBinary(ir.IrCmpGt, ir.Uint(ir.U32, 0xFFFFFFFF), ir.Uint(ir.U32, 1))
    require.True(t, ok)
    require.Equal(t, ir.BoolLit(true), r)

    r, ok = foldBinary(ir.IrCmpLe, ir.CharLit('a'), ir.CharLit('b'))
    require.True(t, ok)
    require.Equal(t, ir.BoolLit(true), r)

    r, ok = foldBinary(ir.IrCmpEq, ir.Float(ir.F64, 1.5), ir.Float(ir.F64, 1.5))
    require.True(t, ok)
    require.Equal(t, ir.BoolLit(true), r)

    /* booleans only support equality */
    _, ok = foldBinary(ir.IrCmpLt, ir.BoolLit(false), ir.BoolLit(true))
    require.False(t, ok)
    r, ok = foldBinary(ir.IrCmpNe, ir.BoolLit(false), ir.BoolLit(true))
    require.True(t, ok)
    require.Equal(t, ir.BoolLit(true), r)
}

func TestFoldBinary_Logic(t *testing.T) {
    r, ok := foldBinary(ir.IrOpLogicAnd, ir.BoolLit(true), ir.BoolLit(false))
    require.True(t, ok)
    require.Equal(t, ir.BoolLit(false), r)
    r, ok = foldBinary(ir.IrOpLogicOr, ir.BoolLit(true), ir.BoolLit(false))
    require.True(t, ok)
    require.Equal(t, ir.BoolLit(true), r)
    _, ok = foldBinary(ir.IrOpLogicAnd, ir.Int(ir.I32, 1), ir.Int(ir.I32, 1))
    require.False(t, ok)
}

func TestFoldFloat_SpecialValues(t *testing.T) {
    /* overflow to infinity is not folded */
    _, ok := foldBinary(ir.IrOpMul, ir.Float(ir.F64, math.MaxFloat64), ir.Float(ir.F64, 2))
    require.False(t, ok)

    /* 0/0 is NaN, x/0 is infinite, neither folds */
    _, ok = foldBinary(ir.IrOpDiv, ir.Float(ir.F64, 0), ir.Float(ir.F64, 0))
    require.False(t, ok)
    _, ok = foldBinary(ir.IrOpDiv, ir.Float(ir.F64, 1), ir.Float(ir.F64, 0))
    require.False(t, ok)

    /* F32 arithmetic happens in single precision */
    r, ok := foldBinary(ir.IrOpAdd, ir.Float(ir.F32, 0.1), ir.Float(ir.F32, 0.2))
    require.True(t, ok)
    require.Equal(t, ir.Float(ir.F32, float64(float32(0.1) + float32(0.2))), r)

    /* F32 overflow to infinity is caught even when the f64 sum is finite */
    _, ok = foldBinary(ir.IrOpMul, ir.Float(ir.F32, math.MaxFloat32), ir.Float(ir.F32, 2))
    require.False(t, ok)
}

func TestFoldCast(t *testing.T) {
    /* lossless conversions propagate */
    r, ok := foldCast(ir.Int(ir.I8, -5), ir.I64)
    require.True(t, ok)
    require.Equal(t, ir.Int(ir.I64, -5), r)

    r, ok = foldCast(ir.Uint(ir.U8, 200), ir.U32)
    require.True(t, ok)
    require.Equal(t, ir.Uint(ir.U32, 200), r)

    r, ok = foldCast(ir.Uint(ir.U32, 0xFFFFFFFF), ir.I64)
    require.True(t, ok)
    require.Equal(t, ir.Int(ir.I64, 0xFFFFFFFF), r)

    r, ok = foldCast(ir.CharLit('é'), ir.U32)
    require.True(t, ok)
    require.Equal(t, ir.Uint(ir.U32, uint64('é')), r)

    r, ok = foldCast(ir.Float(ir.F32, 1.5), ir.F64)
    require.True(t, ok)
    require.Equal(t, ir.Float(ir.F64, 1.5), r)

    r, ok = foldCast(ir.Int(ir.I32, 7), ir.I32)
    require.True(t, ok)
    require.Equal(t, ir.Int(ir.I32, 7), r)

    /* potentially lossy conversions do not */
    _, ok = foldCast(ir.Int(ir.I64, 1), ir.I32)
    require.False(t, ok)
    _, ok = foldCast(ir.Int(ir.I32, 1), ir.U32)
    require.False(t, ok)
    _, ok = foldCast(ir.Uint(ir.U32, 1), ir.I32)
    require.False(t, ok)
    _, ok = foldCast(ir.Float(ir.F64, 1), ir.F32)
    require.False(t, ok)
    _, ok = foldCast(ir.Int(ir.I32, 65), ir.Char)
    require.False(t, ok)
}

func TestEvalPhi_ExecutableEdgesOnly(t *testing.T) {
    fn := ir.NewFunction("phi", 0)
    a := fn.NewBlock()
    b := fn.NewBlock()
    j := fn.NewBlock()
    x := fn.NewValue()
    y := fn.NewValue()
    r := fn.NewValue()

    p := &ir.IrPhi { R: r, V: map[*ir.BasicBlock]*ir.ValueId { a: &x, b: &y } }
    env := mapEnv(map[ir.ValueId]LatticeValue {
        x: constValue(ir.Int(ir.I32, 5)),
        y: constValue(ir.Int(ir.I32, 7)),
    })

    /* no executable incoming edge yet, stays top */
    ex := newExecEdges()
    require.True(t, evalPhi(p, j, ex, env).IsTop())

    /* only the edge from a is executable, the value from b is ignored */
    ex.markEdge(a, j)
    require.Equal(t, constValue(ir.Int(ir.I32, 5)), evalPhi(p, j, ex, env))

    /* both edges executable, distinct constants meet to bottom */
    ex.markEdge(b, j)
    require.True(t, evalPhi(p, j, ex, env).IsBottom())
}
