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
    `os`
    `strconv`
)

const (
    _DefaultMaxIterations = 100 // cutoff for the fixed-point loop
)

var (
    MaxIterations = parseOrDefault("LUMEN_SCCP_MAX_ITERATIONS", _DefaultMaxIterations, 1)
)

func parseOrDefault(key string, def int, min int) int {
    if env := os.Getenv(key); env == "" {
        return def
    } else if val, err := strconv.ParseUint(env, 0, 64); err != nil {
        panic("lumen: invalid value for " + key)
    } else if ret := int(val); ret < min {
        panic("lumen: value too small for " + key)
    } else {
        return ret
    }
}
