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

// _Rewriter consumes the converged analysis and mutates the function:
// constant branches become jumps, unreachable blocks are dropped, trivial
// phis collapse into direct references, and constant-valued instructions
// are replaced with literals. The result must stay valid SSA.
type _Rewriter struct {
    fn    *ir.Function
    an    *_Analyzer
    stats *Statistics
}

func newRewriter(fn *ir.Function, an *_Analyzer, stats *Statistics) *_Rewriter {
    return &_Rewriter { fn: fn, an: an, stats: stats }
}

func (self *_Rewriter) apply() {
    self.simplifyBranches()
    self.removeDeadBlocks()
    self.simplifyPhis()
    self.substituteConstants()
    self.fn.Rebuild()
}

// simplifyBranches converts every terminator with a constant selector in a
// reachable block into an unconditional jump onto the taken edge, and drops
// the dead edges from the target phis.
func (self *_Rewriter) simplifyBranches() {
    for _, bb := range self.fn.Blocks {
        if !self.an.exec.blockExecutable(bb) {
            continue
        }

        switch p := bb.Term.(type) {
            default: {
                continue
            }

            /* conditional branch on a constant boolean */
            case *ir.IrBranch: {
                v := self.an.lattice(p.Cond)
                if !v.IsConst() || v.Lit().Type() != ir.Bool {
                    continue
                }
                taken, dead := p.Then, p.Else
                if !v.Lit().Bool() {
                    taken, dead = p.Else, p.Then
                }
                bb.Term = &ir.IrJump { To: taken }
                self.dropEdge(bb, dead, taken)
            }

            /* switch on a constant selector */
            case *ir.IrSwitch: {
                v := self.an.lattice(p.V)
                if !v.IsConst() {
                    continue
                }
                k, ok := caseKey(v.Lit())
                if !ok {
                    continue
                }
                taken := p.Ln
                if to, ok := p.Br[k]; ok {
                    taken = to
                }
                bb.Term = &ir.IrJump { To: taken }
                for it := p.Successors(); it.Next(); {
                    self.dropEdge(bb, it.Block(), taken)
                }
            }
        }
        self.stats.BranchesEliminated++
    }
}

// dropEdge removes bb's dead edge into to from to's phis, unless the block
// keeps a live edge to the same target.
func (self *_Rewriter) dropEdge(bb *ir.BasicBlock, to *ir.BasicBlock, taken *ir.BasicBlock) {
    if to == taken {
        return
    }
    for _, p := range to.Phi {
        delete(p.V, bb)
    }
}

// removeDeadBlocks deletes every block the analysis never proved reachable
// and unhooks them from the phis of surviving successors.
func (self *_Rewriter) removeDeadBlocks() {
    dead := lane.NewQueue()
    for _, bb := range self.fn.Blocks {
        if !self.an.exec.blockExecutable(bb) {
            dead.Enqueue(bb)
        }
    }

    /* adjust phi nodes in the surviving targets */
    for !dead.Empty() {
        bb := dead.Dequeue().(*ir.BasicBlock)
        for it := bb.Term.Successors(); it.Next(); {
            for _, p := range it.Block().Phi {
                delete(p.V, bb)
            }
        }
    }

    /* drop the blocks themselves */
    self.stats.BlocksRemoved += self.fn.RemoveBlocks(func(bb *ir.BasicBlock) bool {
        return !self.an.exec.blockExecutable(bb)
    })
}

// simplifyPhis collapses phis left with a single incoming entry, or with
// all entries naming the same value, into direct references. Replacements
// are resolved for the whole function before any phi is dropped, one
// trivial phi may feed another and every use must end up at the base value.
func (self *_Rewriter) simplifyPhis() {
    repl := make(map[ir.ValueId]ir.ValueId)

    /* collect the trivial phis */
    for _, bb := range self.fn.Blocks {
        for _, p := range bb.Phi {
            if src, ok := phiSource(p); ok && src != p.R {
                repl[p.R] = src
            }
        }
    }

    /* resolve chains down to the base value, a chain that never leaves the
     * trivial set has no base definition and those phis are kept */
    for v := range repl {
        if to, ok := chaseSource(repl, v); ok {
            repl[v] = to
        } else {
            delete(repl, v)
        }
    }

    /* nothing resolved, nothing to rewrite */
    if len(repl) == 0 {
        return
    }

    /* drop the collapsed phis */
    for _, bb := range self.fn.Blocks {
        phi := bb.Phi
        bb.Phi = bb.Phi[:0]
        for _, p := range phi {
            if _, ok := repl[p.R]; ok {
                self.stats.PhisSimplified++
            } else {
                bb.Phi = append(bb.Phi, p)
            }
        }
    }

    /* rewrite every surviving use in one sweep */
    self.replaceUses(repl)
}

// chaseSource follows a chain of trivial phi replacements to its end, it
// reports failure when the chain loops back into itself.
func chaseSource(repl map[ir.ValueId]ir.ValueId, v ir.ValueId) (ir.ValueId, bool) {
    seen := make(map[ir.ValueId]struct{})
    for {
        to, ok := repl[v]
        if !ok {
            return v, true
        }
        if _, cyc := seen[v]; cyc {
            return ir.Vnone, false
        }
        seen[v] = struct{}{}
        v = to
    }
}

// phiSource returns the unique incoming value of p, if there is one.
func phiSource(p *ir.IrPhi) (ir.ValueId, bool) {
    var src ir.ValueId
    if len(p.V) == 0 {
        return ir.Vnone, false
    }
    for _, v := range p.V {
        if src == ir.Vnone {
            src = *v
        } else if *v != src {
            return ir.Vnone, false
        }
    }
    return src, true
}

// replaceUses rewrites every use per the replacement map, through the usage
// pointers exposed by the nodes themselves.
func (self *_Rewriter) replaceUses(repl map[ir.ValueId]ir.ValueId) {
    sub := func(ids []*ir.ValueId) {
        for _, r := range ids {
            if to, ok := repl[*r]; ok {
                *r = to
            }
        }
    }
    for _, bb := range self.fn.Blocks {
        for _, p := range bb.Phi {
            sub(p.Usages())
        }
        for _, v := range bb.Ins {
            if use, ok := v.(ir.IrUsages); ok {
                sub(use.Usages())
            }
        }
        if use, ok := bb.Term.(ir.IrUsages); ok {
            sub(use.Usages())
        }
    }
}

// substituteConstants materializes every constant-valued definition as a
// literal instruction, preserving the source location of the node it
// replaces. Constant phis turn into literals at the head of their block so
// the definition still precedes every use.
func (self *_Rewriter) substituteConstants() {
    for _, bb := range self.fn.Blocks {
        var head []ir.IrNode

        /* constant phis */
        phi := bb.Phi
        bb.Phi = bb.Phi[:0]
        for _, p := range phi {
            if v := self.an.lattice(p.R); v.IsConst() {
                head = append(head, &ir.IrConst { R: p.R, V: v.Lit(), Src: p.Src })
                self.stats.InstructionsReplaced++
            } else {
                bb.Phi = append(bb.Phi, p)
            }
        }

        /* constant instructions */
        for i, v := range bb.Ins {
            def, ok := v.(ir.IrDefinitions)
            if !ok {
                continue
            }
            if _, ok := v.(*ir.IrConst); ok {
                continue
            }
            rs := def.Definitions()
            if len(rs) != 1 {
                continue
            }
            if lv := self.an.lattice(*rs[0]); lv.IsConst() {
                bb.Ins[i] = &ir.IrConst { R: *rs[0], V: lv.Lit(), Src: srcOf(v) }
                self.stats.InstructionsReplaced++
            }
        }

        if len(head) != 0 {
            bb.Ins = append(head, bb.Ins...)
        }
    }
}

func srcOf(v ir.IrNode) ir.Pos {
    switch p := v.(type) {
        case *ir.IrConst      : return p.Src
        case *ir.IrUnaryExpr  : return p.Src
        case *ir.IrBinaryExpr : return p.Src
        case *ir.IrCast       : return p.Src
        case *ir.IrLoad       : return p.Src
        case *ir.IrStore      : return p.Src
        case *ir.IrCall       : return p.Src
        default               : return ir.Pos {}
    }
}
