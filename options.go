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
    `fmt`

    `github.com/lumenlang/lumen/internal/opts`
)

// Option is the property setter function for opts.Options.
type Option func(*opts.Options)

// WithVerbose enables per-iteration diagnostics and the final
// human-readable statistics report.
func WithVerbose(v bool) Option {
    return func(o *opts.Options) { o.Verbose = v }
}

// WithEnabled turns the whole pass into a no-op when set to false, the
// module passes through untouched.
func WithEnabled(v bool) Option {
    return func(o *opts.Options) { o.Enabled = v }
}

// WithMaxIterations bounds the fixed-point loop. When the bound is hit the
// analysis stops with conservative partial results instead of failing.
//
// The default value of this option is "100", it can also be configured
// with the `LUMEN_SCCP_MAX_ITERATIONS` environment variable.
func WithMaxIterations(n int) Option {
    if n < 1 {
        panic(fmt.Sprintf("lumen: invalid iteration limit: %d", n))
    } else {
        return func(o *opts.Options) { o.MaxIterations = n }
    }
}

// WithParallelism sets how many functions may be analyzed concurrently.
// Every function gets its own analyzer state, so results do not depend on
// this setting.
//
// The default value of this option is "1".
func WithParallelism(n int) Option {
    if n < 1 {
        panic(fmt.Sprintf("lumen: invalid parallelism: %d", n))
    } else {
        return func(o *opts.Options) { o.Parallelism = n }
    }
}

// OptionsFromFile loads the recognized options from a TOML file and returns
// them as a single Option.
func OptionsFromFile(path string) (Option, error) {
    v, err := opts.FromFile(path)
    if err != nil {
        return nil, err
    }
    return func(o *opts.Options) { *o = v }, nil
}
