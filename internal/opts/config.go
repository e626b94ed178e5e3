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

package opts

import (
    `fmt`

    `github.com/BurntSushi/toml`
)

type _FileConfig struct {
    Verbose       *bool `toml:"verbose"`
    Enabled       *bool `toml:"enabled"`
    Parallelism   *int  `toml:"parallelism"`
    MaxIterations *int  `toml:"max_iterations"`
}

// FromFile loads options from a TOML file, keys not present in the file
// keep their default values.
func FromFile(path string) (Options, error) {
    var cfg _FileConfig
    ret := GetDefaultOptions()

    /* parse the file */
    meta, err := toml.DecodeFile(path, &cfg)
    if err != nil {
        return ret, fmt.Errorf("opts: cannot load %q: %w", path, err)
    }

    /* unknown keys are configuration mistakes, not extensions */
    if un := meta.Undecoded(); len(un) != 0 {
        return ret, fmt.Errorf("opts: unknown option %q in %q", un[0].String(), path)
    }

    /* apply the overrides */
    if cfg.Verbose       != nil { ret.Verbose       = *cfg.Verbose }
    if cfg.Enabled       != nil { ret.Enabled       = *cfg.Enabled }
    if cfg.Parallelism   != nil { ret.Parallelism   = *cfg.Parallelism }
    if cfg.MaxIterations != nil { ret.MaxIterations = *cfg.MaxIterations }

    /* range checks */
    if ret.MaxIterations < 1 {
        return ret, fmt.Errorf("opts: max_iterations must be positive in %q", path)
    }
    if ret.Parallelism < 1 {
        return ret, fmt.Errorf("opts: parallelism must be positive in %q", path)
    }
    return ret, nil
}
