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

package lumen

import (
    `github.com/lumenlang/lumen/internal/ir`
    `github.com/lumenlang/lumen/internal/opts`
    `github.com/lumenlang/lumen/internal/sccp`
)

// Statistics is the per-module optimization report.
type Statistics = sccp.Statistics

// PassName returns the human-readable identifier of the optimization pass.
func PassName() string {
    return sccp.NewPass(opts.GetDefaultOptions()).Name()
}

// Optimize runs sparse conditional constant propagation over every function
// of mod, mutating it in place. A failure in one function does not stop the
// others, all failures are reported in the returned error.
func Optimize(mod *ir.Module, options ...Option) (Statistics, error) {
    o := opts.GetDefaultOptions()
    for _, fn := range options {
        fn(&o)
    }
    return sccp.NewPass(o).Run(mod)
}
