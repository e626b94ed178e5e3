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

// branchTargets abstractly interprets a terminator and returns the
// successor blocks proven live under env. A constant branch condition or
// switch selector selects a single edge, anything else keeps every outgoing
// edge live.
func branchTargets(term ir.IrTerminator, env _Env) []*ir.BasicBlock {
    switch p := term.(type) {
        default: {
            panic("sccp: invalid terminator")
        }

        /* returns and unreachables have no outgoing edges */
        case *ir.IrReturn      : return nil
        case *ir.IrUnreachable : return nil

        /* unconditional jumps always take their edge */
        case *ir.IrJump: {
            return []*ir.BasicBlock { p.To }
        }

        /* conditional branches */
        case *ir.IrBranch: {
            if v := env(p.Cond); v.IsConst() && v.Lit().Type() == ir.Bool {
                if v.Lit().Bool() {
                    return []*ir.BasicBlock { p.Then }
                } else {
                    return []*ir.BasicBlock { p.Else }
                }
            }
            return []*ir.BasicBlock { p.Then, p.Else }
        }

        /* multi-way switches */
        case *ir.IrSwitch: {
            if v := env(p.V); v.IsConst() {
                if k, ok := caseKey(v.Lit()); ok {
                    if to, ok := p.Br[k]; ok {
                        return []*ir.BasicBlock { to }
                    } else {
                        return []*ir.BasicBlock { p.Ln }
                    }
                }
            }
            ret := make([]*ir.BasicBlock, 0, len(p.Br) + 1)
            for it := p.Successors(); it.Next(); {
                ret = append(ret, it.Block())
            }
            return ret
        }
    }
}

// caseKey projects a constant selector onto the switch key space. Floats
// never match a case key, and neither does an unsigned selector wide enough
// to alias a negative key.
func caseKey(v ir.Lit) (int64, bool) {
    t := v.Type()
    switch {
        case t.IsSigned()   : return v.Int(), true
        case t.IsUnsigned() : return unsignedKey(v.Uint())
        case t == ir.Char   : return int64(v.Rune()), true
        case t == ir.Bool   : if v.Bool() { return 1, true } else { return 0, true }
        default             : return 0, false
    }
}

func unsignedKey(v uint64) (int64, bool) {
    if v > math.MaxInt64 {
        return 0, false
    } else {
        return int64(v), true
    }
}
