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

    `github.com/lumenlang/lumen/internal/ir`
)

// _Env resolves the current lattice value of an SSA value.
type _Env func(v ir.ValueId) LatticeValue

// evalInstr abstractly interprets one instruction under env. Memory reads
// and calls always evaluate to bottom, there is no alias or interprocedural
// reasoning here.
func evalInstr(v ir.IrNode, env _Env) LatticeValue {
    switch p := v.(type) {
        default: {
            return bottomValue()
        }

        /* literals are themselves */
        case *ir.IrConst: {
            return constValue(p.V)
        }

        /* unary expressions */
        case *ir.IrUnaryExpr: {
            return evalArgs(env, []ir.ValueId { p.V }, func(in []ir.Lit) (ir.Lit, bool) {
                return foldUnary(p.Op, in[0])
            })
        }

        /* binary expressions */
        case *ir.IrBinaryExpr: {
            return evalArgs(env, []ir.ValueId { p.X, p.Y }, func(in []ir.Lit) (ir.Lit, bool) {
                return foldBinary(p.Op, in[0], in[1])
            })
        }

        /* type conversions */
        case *ir.IrCast: {
            return evalArgs(env, []ir.ValueId { p.V }, func(in []ir.Lit) (ir.Lit, bool) {
                return foldCast(in[0], p.Ty)
            })
        }
    }
}

// evalArgs applies the lattice rules over the operands: any bottom operand
// forces bottom, any top operand keeps the result top, otherwise all
// operands are constants and fold decides. A failed fold is bottom.
func evalArgs(env _Env, args []ir.ValueId, fold func(in []ir.Lit) (ir.Lit, bool)) LatticeValue {
    in := make([]ir.Lit, 0, len(args))
    top := false

    /* classify the operands */
    for _, a := range args {
        switch v := env(a); {
            case v.IsBottom() : return bottomValue()
            case v.IsTop()    : top = true
            default           : in = append(in, v.Lit())
        }
    }

    /* stay optimistic while any operand is still top */
    if top {
        return topValue()
    }

    /* all operands are constants, attempt the fold */
    if lit, ok := fold(in); ok {
        return constValue(lit)
    } else {
        return bottomValue()
    }
}

// evalPhi meets the incoming values restricted to executable edges. Edges
// not yet proven executable contribute nothing, a phi with no executable
// incoming edge stays top.
func evalPhi(p *ir.IrPhi, bb *ir.BasicBlock, exec *_ExecEdges, env _Env) LatticeValue {
    r := topValue()
    for src, v := range p.V {
        if exec.edgeExecutable(src, bb) {
            r = meet(r, env(*v))
        }
    }
    return r
}

func foldUnary(op ir.IrUnaryOp, v ir.Lit) (ir.Lit, bool) {
    t := v.Type()

    switch op {
        default: {
            return ir.Lit {}, false
        }

        /* arithmetic negation */
        case ir.IrOpNegate: {
            switch {
                case t.IsSigned() : return foldNegInt(t, v.Int())
                case t.IsFloat()  : return foldFloat(t, -v.Float())
                default           : return ir.Lit {}, false
            }
        }

        /* logical not */
        case ir.IrOpNot: {
            if t != ir.Bool {
                return ir.Lit {}, false
            } else {
                return ir.BoolLit(!v.Bool()), true
            }
        }

        /* bitwise complement */
        case ir.IrOpComplement: {
            switch {
                case t.IsSigned()   : return ir.Int(t, ^v.Int()), true
                case t.IsUnsigned() : return ir.Uint(t, ^v.Uint() & ir.MaxUint(t)), true
                default             : return ir.Lit {}, false
            }
        }
    }
}

func foldNegInt(t ir.Type, a int64) (ir.Lit, bool) {
    if a == ir.MinInt(t) {
        return ir.Lit {}, false
    } else {
        return ir.Int(t, -a), true
    }
}

func foldBinary(op ir.IrBinaryOp, x ir.Lit, y ir.Lit) (ir.Lit, bool) {
    t := x.Type()

    /* mixed-type expressions are never folded */
    if t != y.Type() {
        return ir.Lit {}, false
    }

    /* comparisons fold to booleans */
    if op.IsComparison() {
        return foldCompare(op, x, y)
    }

    /* everything else folds within the operand type */
    switch {
        case op == ir.IrOpLogicAnd : return foldLogic(t, x, y, true)
        case op == ir.IrOpLogicOr  : return foldLogic(t, x, y, false)
        case t.IsSigned()          : return foldSigned(op, t, x.Int(), y.Int())
        case t.IsUnsigned()        : return foldUnsigned(op, t, x.Uint(), y.Uint())
        case t.IsFloat()           : return foldFloatOp(op, t, x.Float(), y.Float())
        default                    : return ir.Lit {}, false
    }
}

func foldLogic(t ir.Type, x ir.Lit, y ir.Lit, isAnd bool) (ir.Lit, bool) {
    if t != ir.Bool {
        return ir.Lit {}, false
    } else if isAnd {
        return ir.BoolLit(x.Bool() && y.Bool()), true
    } else {
        return ir.BoolLit(x.Bool() || y.Bool()), true
    }
}

func foldCompare(op ir.IrBinaryOp, x ir.Lit, y ir.Lit) (ir.Lit, bool) {
    var c int
    t := x.Type()

    /* compute the three-way ordering per type class */
    switch {
        default: {
            return ir.Lit {}, false
        }

        /* booleans only support equality */
        case t == ir.Bool: {
            if op != ir.IrCmpEq && op != ir.IrCmpNe {
                return ir.Lit {}, false
            } else if x.Bool() == y.Bool() {
                c = 0
            } else {
                c = 1
            }
        }

        /* signed integers */
        case t.IsSigned(): {
            c = cmpI64(x.Int(), y.Int())
        }

        /* unsigned integers and characters order by magnitude */
        case t.IsUnsigned() || t == ir.Char: {
            c = cmpU64(x.Uint(), y.Uint())
        }

        /* float literals are always finite, total ordering is sound */
        case t.IsFloat(): {
            c = cmpF64(x.Float(), y.Float())
        }
    }

    switch op {
        case ir.IrCmpEq : return ir.BoolLit(c == 0), true
        case ir.IrCmpNe : return ir.BoolLit(c != 0), true
        case ir.IrCmpLt : return ir.BoolLit(c < 0), true
        case ir.IrCmpLe : return ir.BoolLit(c <= 0), true
        case ir.IrCmpGt : return ir.BoolLit(c > 0), true
        case ir.IrCmpGe : return ir.BoolLit(c >= 0), true
        default         : return ir.Lit {}, false
    }
}

func cmpI64(a int64, b int64) int {
    switch {
        case a < b  : return -1
        case a > b  : return 1
        default     : return 0
    }
}

func cmpU64(a uint64, b uint64) int {
    switch {
        case a < b  : return -1
        case a > b  : return 1
        default     : return 0
    }
}

func cmpF64(a float64, b float64) int {
    switch {
        case a < b  : return -1
        case a > b  : return 1
        default     : return 0
    }
}

func foldSigned(op ir.IrBinaryOp, t ir.Type, a int64, b int64) (ir.Lit, bool) {
    var r int64
    var ovf bool

    switch op {
        default: {
            return ir.Lit {}, false
        }

        /* checked arithmetic */
        case ir.IrOpAdd: r, ovf = addOvfI64(a, b)
        case ir.IrOpSub: r, ovf = subOvfI64(a, b)
        case ir.IrOpMul: r, ovf = mulOvfI64(a, b)

        /* division and remainder trap on zero divisors and on the
         * minimum-value corner case */
        case ir.IrOpDiv: {
            if b == 0 || (a == ir.MinInt(t) && b == -1) {
                return ir.Lit {}, false
            }
            r = a / b
        }

        case ir.IrOpMod: {
            if b == 0 || (a == ir.MinInt(t) && b == -1) {
                return ir.Lit {}, false
            }
            r = a % b
        }

        /* bitwise operations on sign-extended payloads stay in range */
        case ir.IrOpAnd: r = a & b
        case ir.IrOpOr : r = a | b
        case ir.IrOpXor: r = a ^ b

        /* shifts with out-of-range counts or dropped bits are not folded */
        case ir.IrOpShl: {
            if b < 0 || b >= int64(t.Bits()) {
                return ir.Lit {}, false
            }
            if r = a << uint(b); r >> uint(b) != a {
                return ir.Lit {}, false
            }
        }

        case ir.IrOpShr: {
            if b < 0 || b >= int64(t.Bits()) {
                return ir.Lit {}, false
            }
            r = a >> uint(b)
        }
    }

    /* reject anything that escapes the operand width */
    if ovf || r < ir.MinInt(t) || r > ir.MaxInt(t) {
        return ir.Lit {}, false
    } else {
        return ir.Int(t, r), true
    }
}

func foldUnsigned(op ir.IrBinaryOp, t ir.Type, a uint64, b uint64) (ir.Lit, bool) {
    var r uint64
    var ovf bool

    switch op {
        default: {
            return ir.Lit {}, false
        }

        case ir.IrOpAdd: {
            if r = a + b; r < a {
                ovf = true
            }
        }

        case ir.IrOpSub: {
            if b > a {
                return ir.Lit {}, false
            }
            r = a - b
        }

        case ir.IrOpMul: {
            if r = a * b; a != 0 && r / a != b {
                ovf = true
            }
        }

        case ir.IrOpDiv: {
            if b == 0 {
                return ir.Lit {}, false
            }
            r = a / b
        }

        case ir.IrOpMod: {
            if b == 0 {
                return ir.Lit {}, false
            }
            r = a % b
        }

        case ir.IrOpAnd: r = a & b
        case ir.IrOpOr : r = a | b
        case ir.IrOpXor: r = a ^ b

        case ir.IrOpShl: {
            if b >= uint64(t.Bits()) {
                return ir.Lit {}, false
            }
            if r = a << b; r >> b != a {
                return ir.Lit {}, false
            }
        }

        case ir.IrOpShr: {
            if b >= uint64(t.Bits()) {
                return ir.Lit {}, false
            }
            r = a >> b
        }
    }

    if ovf || r > ir.MaxUint(t) {
        return ir.Lit {}, false
    } else {
        return ir.Uint(t, r), true
    }
}

func foldFloatOp(op ir.IrBinaryOp, t ir.Type, a float64, b float64) (ir.Lit, bool) {
    var r float64

    /* F32 arithmetic is performed in single precision */
    if t == ir.F32 {
        x, y := float32(a), float32(b)
        switch op {
            case ir.IrOpAdd : r = float64(x + y)
            case ir.IrOpSub : r = float64(x - y)
            case ir.IrOpMul : r = float64(x * y)
            case ir.IrOpDiv : r = float64(x / y)
            default         : return ir.Lit {}, false
        }
    } else {
        switch op {
            case ir.IrOpAdd : r = a + b
            case ir.IrOpSub : r = a - b
            case ir.IrOpMul : r = a * b
            case ir.IrOpDiv : r = a / b
            default         : return ir.Lit {}, false
        }
    }
    return foldFloat(t, r)
}

// foldFloat demotes NaN and infinite results to "no fold", propagating them
// as constants is unsound for downstream comparisons.
func foldFloat(t ir.Type, r float64) (ir.Lit, bool) {
    if math.IsNaN(r) || math.IsInf(r, 0) {
        return ir.Lit {}, false
    } else {
        return ir.Float(t, r), true
    }
}

// foldCast propagates only conversions that provably preserve the value:
// integer widening that keeps the sign, float widening, and character to
// wide-enough integer conversions. Everything else is lossy and yields no
// fold, which the evaluator turns into bottom.
func foldCast(v ir.Lit, to ir.Type) (ir.Lit, bool) {
    from := v.Type()

    switch {
        default: {
            return ir.Lit {}, false
        }

        /* identity */
        case from == to: {
            return v, true
        }

        /* sign-extending widening */
        case from.IsSigned() && to.IsSigned() && to.Bits() > from.Bits(): {
            return ir.Int(to, v.Int()), true
        }

        /* zero-extending widening */
        case from.IsUnsigned() && to.IsUnsigned() && to.Bits() > from.Bits(): {
            return ir.Uint(to, v.Uint()), true
        }

        /* unsigned to strictly wider signed always fits */
        case from.IsUnsigned() && to.IsSigned() && to.Bits() > from.Bits(): {
            return ir.Int(to, int64(v.Uint())), true
        }

        /* character code points widen losslessly */
        case from == ir.Char && to.IsUnsigned() && to.Bits() >= 32: {
            return ir.Uint(to, v.Uint()), true
        }

        case from == ir.Char && to.IsSigned() && to.Bits() > 32: {
            return ir.Int(to, int64(v.Uint())), true
        }

        /* float widening */
        case from == ir.F32 && to == ir.F64: {
            return ir.Float(ir.F64, v.Float()), true
        }
    }
}
