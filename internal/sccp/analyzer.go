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
    `fmt`
    `os`

    `github.com/davecgh/go-spew/spew`

    `github.com/lumenlang/lumen/internal/ir`
    `github.com/lumenlang/lumen/internal/opts`
)

type _Cell struct {
    v    LatticeValue
    uses []_SSAEdge
}

// _Analyzer runs the dual-worklist fixed point over one function. All
// state is scoped to the instance, independent functions can be analyzed by
// separate analyzers concurrently.
type _Analyzer struct {
    fn    *ir.Function
    opt   opts.Options
    cells map[ir.ValueId]*_Cell
    lits  map[ir.ValueId]struct{}
    flow  *_FlowWorklist
    ssa   *_SSAWorklist
    exec  *_ExecEdges
    seen  map[*ir.BasicBlock]struct{}
    iters int
    fail  error
}

func newAnalyzer(fn *ir.Function, opt opts.Options) *_Analyzer {
    ret := &_Analyzer {
        fn    : fn,
        opt   : opt,
        cells : make(map[ir.ValueId]*_Cell),
        lits  : make(map[ir.ValueId]struct{}),
        flow  : newFlowWorklist(),
        ssa   : newSSAWorklist(),
        exec  : newExecEdges(),
        seen  : make(map[*ir.BasicBlock]struct{}),
    }
    ret.collect()
    return ret
}

// collect seeds the lattice and builds the def -> use edge lists in one
// scan. Parameters start at bottom, everything else starts at top.
func (self *_Analyzer) collect() {
    addUse := func(bb *ir.BasicBlock, use interface{}, ids []*ir.ValueId) {
        for _, r := range ids {
            c := self.cell(*r)
            c.uses = append(c.uses, _SSAEdge { def: *r, bb: bb, use: use })
        }
    }

    /* parameters are unknown at compile time */
    for _, p := range self.fn.Params {
        self.cell(p).v = bottomValue()
    }

    /* uses from phis, instructions and terminators */
    for _, bb := range self.fn.Blocks {
        for _, p := range bb.Phi {
            self.cell(p.R)
            addUse(bb, p, p.Usages())
        }
        for _, v := range bb.Ins {
            if def, ok := v.(ir.IrDefinitions); ok {
                for _, r := range def.Definitions() {
                    self.cell(*r)
                }
                if _, ok := v.(*ir.IrConst); ok {
                    self.lits[*def.Definitions()[0]] = struct{}{}
                }
            }
            if use, ok := v.(ir.IrUsages); ok {
                addUse(bb, v, use.Usages())
            }
        }
        if use, ok := bb.Term.(ir.IrUsages); ok {
            addUse(bb, bb.Term, use.Usages())
        }
    }
}

func (self *_Analyzer) cell(v ir.ValueId) *_Cell {
    if c, ok := self.cells[v]; ok {
        return c
    }
    c := new(_Cell)
    self.cells[v] = c
    return c
}

func (self *_Analyzer) lattice(v ir.ValueId) LatticeValue {
    return self.cell(v).v
}

// update commits a lattice transition. Any transition that is not downward
// is an evaluator bug and aborts the analysis with full diagnostic detail.
func (self *_Analyzer) update(v ir.ValueId, nv LatticeValue) {
    c := self.cell(v)
    if c.v == nv {
        return
    }
    if !descends(c.v, nv) {
        if self.fail == nil {
            self.fail = &LatticeError { Func: self.fn.Name, Value: v, Old: c.v, New: nv }
        }
        return
    }
    c.v = nv
    for _, e := range c.uses {
        self.ssa.push(e)
    }
}

func (self *_Analyzer) visitPhis(bb *ir.BasicBlock) {
    for _, p := range bb.Phi {
        self.update(p.R, evalPhi(p, bb, self.exec, self.lattice))
    }
}

func (self *_Analyzer) visitInstr(v ir.IrNode) {
    if def, ok := v.(ir.IrDefinitions); ok {
        lv := evalInstr(v, self.lattice)
        for _, r := range def.Definitions() {
            self.update(*r, lv)
        }
    }
}

func (self *_Analyzer) visitTerm(bb *ir.BasicBlock) {
    for _, to := range branchTargets(bb.Term, self.lattice) {
        if newEdge, _ := self.exec.markEdge(bb, to); newEdge {
            self.flow.push(_FlowEdge { bb: bb, to: to })
        }
    }
}

// visitBlock evaluates a block's phis, straight-line code and terminator
// the first time the block is proven reachable.
func (self *_Analyzer) visitBlock(bb *ir.BasicBlock) {
    self.seen[bb] = struct{}{}
    self.visitPhis(bb)
    for _, v := range bb.Ins {
        self.visitInstr(v)
    }
    self.visitTerm(bb)
}

// analyze drives the fixed point: the flow worklist is drained by visiting
// newly reachable blocks, the SSA worklist by re-evaluating single uses of
// changed values, alternating until both are empty or the iteration cap is
// hit.
func (self *_Analyzer) analyze() error {
    entry := self.fn.Entry()
    self.exec.markBlock(entry)
    self.visitBlock(entry)

    for (!self.flow.empty() || !self.ssa.empty()) && self.fail == nil {
        self.iters++

        /* runaway protection, checked once per alternation round */
        if self.iters > self.opt.MaxIterations {
            fmt.Fprintf(os.Stderr, "sccp: warning: %s: iteration limit (%d) exceeded, keeping conservative partial results\n", self.fn.Name, self.opt.MaxIterations)
            self.degrade()
            break
        }

        if self.opt.Verbose {
            fmt.Printf("sccp: %s: iteration %d\n", self.fn.Name, self.iters)
        }

        /* drain the flow worklist */
        for self.fail == nil {
            e, ok := self.flow.pop()
            if !ok {
                break
            }

            /* phis see one more executable edge, the rest of the block
             * runs only on first reach */
            self.visitPhis(e.to)
            if _, ok := self.seen[e.to]; !ok {
                self.visitBlock(e.to)
            }
        }

        /* drain the SSA worklist */
        for self.fail == nil {
            e, ok := self.ssa.pop()
            if !ok {
                break
            }

            /* uses inside unreachable blocks are not evaluated */
            if !self.exec.blockExecutable(e.bb) {
                continue
            }

            switch u := e.use.(type) {
                case *ir.IrPhi       : self.update(u.R, evalPhi(u, e.bb, self.exec, self.lattice))
                case ir.IrTerminator : self.visitTerm(e.bb)
                case ir.IrNode       : self.visitInstr(u)
                default              : panic("sccp: invalid SSA edge use site")
            }
        }
    }

    if self.fail == nil && self.opt.Verbose {
        self.report()
    }
    return self.fail
}

// degrade makes the partial state safe to rewrite from after an iteration
// limit overrun: pending work could still lower any derived cell or prove
// more edges live, so only literal definitions stay constant and every
// block reachable from the current executable set is assumed live.
func (self *_Analyzer) degrade() {
    self.flow.clear()
    self.ssa.clear()

    /* reachability closure over all outgoing edges */
    wl := make([]*ir.BasicBlock, 0, len(self.fn.Blocks))
    for _, bb := range self.fn.Blocks {
        if self.exec.blockExecutable(bb) {
            wl = append(wl, bb)
        }
    }
    for len(wl) > 0 {
        bb := wl[0]
        wl = wl[1:]
        for it := bb.Term.Successors(); it.Next(); {
            if _, newBlock := self.exec.markEdge(bb, it.Block()); newBlock {
                wl = append(wl, it.Block())
            }
        }
    }

    /* keep only trivially proven constants */
    for v, c := range self.cells {
        if c.v.IsConst() {
            if _, ok := self.lits[v]; !ok {
                c.v = bottomValue()
            }
        }
    }
}

func (self *_Analyzer) report() {
    state := make(map[string]string, len(self.cells))
    for v, c := range self.cells {
        state[v.String()] = c.v.String()
    }
    fmt.Printf("sccp: %s: converged after %d iterations, %d of %d blocks reachable\n", self.fn.Name, self.iters, self.exec.blockCount(), len(self.fn.Blocks))
    fmt.Printf("sccp: %s: lattice state: %s", self.fn.Name, spew.Sdump(state))
}

// statistics summarizes the converged analysis, rewrite counters are filled
// in later by the rewriter.
func (self *_Analyzer) statistics() Statistics {
    ret := Statistics {
        Functions      : 1,
        Iterations     : self.iters,
        ValuesAnalyzed : len(self.cells),
        BlocksVisited  : len(self.seen),
    }
    for _, c := range self.cells {
        if c.v.IsConst() {
            ret.ConstantsFound++
        }
    }
    return ret
}
