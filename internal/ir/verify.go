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
)

// VerifyFunction checks the structural SSA and CFG invariants of fn:
// every block is terminated, successors and phi sources are members of the
// function, phi sources are actual predecessors, every value has exactly
// one definition, and every use refers to a defined value.
func VerifyFunction(fn *Function) error {
    if len(fn.Blocks) == 0 {
        return fmt.Errorf("ir: function %s has no blocks", fn.Name)
    }

    /* block membership and id uniqueness */
    ids := make(map[int]struct{}, len(fn.Blocks))
    member := make(map[*BasicBlock]struct{}, len(fn.Blocks))
    for _, bb := range fn.Blocks {
        if _, ok := ids[bb.Id]; ok {
            return fmt.Errorf("ir: function %s: duplicate block id bb_%d", fn.Name, bb.Id)
        }
        ids[bb.Id] = struct{}{}
        member[bb] = struct{}{}
    }

    /* terminators and successor membership */
    for _, bb := range fn.Blocks {
        if bb.Term == nil {
            return fmt.Errorf("ir: function %s: bb_%d has no terminator", fn.Name, bb.Id)
        }
        for it := bb.Term.Successors(); it.Next(); {
            if _, ok := member[it.Block()]; !ok {
                return fmt.Errorf("ir: function %s: bb_%d branches to a block not in the function", fn.Name, bb.Id)
            }
        }
    }

    /* single definition per value */
    defs := make(map[ValueId]struct{})
    define := func(bb *BasicBlock, r ValueId) error {
        if r == Vnone {
            return nil
        }
        if _, ok := defs[r]; ok {
            return fmt.Errorf("ir: function %s: bb_%d: multiple definitions of %s", fn.Name, bb.Id, r)
        }
        defs[r] = struct{}{}
        return nil
    }
    for _, p := range fn.Params {
        defs[p] = struct{}{}
    }
    for _, bb := range fn.Blocks {
        for _, p := range bb.Phi {
            if err := define(bb, p.R); err != nil {
                return err
            }
        }
        for _, v := range bb.Ins {
            if def, ok := v.(IrDefinitions); ok {
                for _, r := range def.Definitions() {
                    if err := define(bb, *r); err != nil {
                        return err
                    }
                }
            }
        }
    }

    /* phi sources must be predecessors carrying defined values */
    preds := predecessors(fn)
    for _, bb := range fn.Blocks {
        for _, p := range bb.Phi {
            for src, v := range p.V {
                if _, ok := member[src]; !ok {
                    return fmt.Errorf("ir: function %s: bb_%d: phi %s references removed block bb_%d", fn.Name, bb.Id, p.R, src.Id)
                }
                if _, ok := preds[bb][src]; !ok {
                    return fmt.Errorf("ir: function %s: bb_%d: phi %s references non-predecessor bb_%d", fn.Name, bb.Id, p.R, src.Id)
                }
                if _, ok := defs[*v]; !ok {
                    return fmt.Errorf("ir: function %s: bb_%d: phi %s uses undefined value %s", fn.Name, bb.Id, p.R, *v)
                }
            }
        }
    }

    /* every use must refer to a defined value */
    for _, bb := range fn.Blocks {
        for _, v := range bb.Ins {
            if use, ok := v.(IrUsages); ok {
                for _, r := range use.Usages() {
                    if _, ok := defs[*r]; !ok {
                        return fmt.Errorf("ir: function %s: bb_%d: %s uses undefined value %s", fn.Name, bb.Id, v, *r)
                    }
                }
            }
        }
        if use, ok := bb.Term.(IrUsages); ok {
            for _, r := range use.Usages() {
                if _, ok := defs[*r]; !ok {
                    return fmt.Errorf("ir: function %s: bb_%d: terminator uses undefined value %s", fn.Name, bb.Id, *r)
                }
            }
        }
    }
    return nil
}

// predecessors computes the predecessor relation without touching the
// cached Pred slices, the verifier must not rely on derived state.
func predecessors(fn *Function) map[*BasicBlock]map[*BasicBlock]struct{} {
    ret := make(map[*BasicBlock]map[*BasicBlock]struct{}, len(fn.Blocks))
    for _, bb := range fn.Blocks {
        ret[bb] = make(map[*BasicBlock]struct{})
    }
    for _, bb := range fn.Blocks {
        if bb.Term == nil {
            continue
        }
        for it := bb.Term.Successors(); it.Next(); {
            if m, ok := ret[it.Block()]; ok {
                m[bb] = struct{}{}
            }
        }
    }
    return ret
}
