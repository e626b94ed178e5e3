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
    `sync`

    `github.com/bytedance/gopkg/util/gopool`
    `go.uber.org/multierr`

    `github.com/lumenlang/lumen/internal/ir`
    `github.com/lumenlang/lumen/internal/opts`
)

// Pass is the sparse conditional constant propagation pass. One Pass value
// may be reused across modules, all mutable analysis state is scoped to a
// single function run.
type Pass struct {
    opt opts.Options
}

func NewPass(opt opts.Options) *Pass {
    return &Pass { opt: opt }
}

func (self *Pass) Name() string {
    return "Sparse Conditional Constant Propagation"
}

// Run analyzes and rewrites every function of m in place. A failure in one
// function is reported but does not stop the others. The returned
// statistics are merged over all functions.
func (self *Pass) Run(m *ir.Module) (Statistics, error) {
    var ret Statistics
    var err error

    /* disabled pass is a transparent no-op */
    if !self.opt.Enabled {
        return ret, nil
    }

    /* analyze functions in parallel when configured, each worker owns
     * disjoint per-function state and the pool caps the worker count at
     * the configured parallelism */
    if self.opt.Parallelism > 1 {
        var mu sync.Mutex
        var wg sync.WaitGroup
        pool := gopool.NewPool("sccp", int32(self.opt.Parallelism), gopool.NewConfig())
        for _, fn := range m.Funcs {
            fn := fn
            wg.Add(1)
            pool.Go(func() {
                defer wg.Done()
                st, fe := self.runFunction(fn)
                mu.Lock()
                ret.Merge(st)
                err = multierr.Append(err, fe)
                mu.Unlock()
            })
        }
        wg.Wait()
    } else {
        for _, fn := range m.Funcs {
            st, fe := self.runFunction(fn)
            ret.Merge(st)
            err = multierr.Append(err, fe)
        }
    }

    if self.opt.Verbose {
        fmt.Printf("sccp: module %s:\n%s\n", m.Name, ret)
    }
    return ret, err
}

// runFunction performs the full precondition / analyze / rewrite /
// postcondition sequence on a single function.
func (self *Pass) runFunction(fn *ir.Function) (Statistics, error) {
    var ret Statistics

    /* malformed input skips the function */
    if err := ir.VerifyFunction(fn); err != nil {
        return ret, &PreconditionError { Func: fn.Name, Reason: err }
    }

    /* run the fixed point, a monotonicity violation aborts the function
     * before anything was mutated */
    an := newAnalyzer(fn, self.opt)
    if err := an.analyze(); err != nil {
        return ret, err
    }

    /* rewrite from the converged state */
    ret = an.statistics()
    newRewriter(fn, an, &ret).apply()

    /* the rewrite must leave valid SSA behind */
    if err := ir.VerifyFunction(fn); err != nil {
        return ret, &PostconditionError { Func: fn.Name, Reason: err }
    }
    return ret, nil
}
