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

// Options are the tunable knobs of the optimizer, immutable for the
// duration of a pass invocation.
type Options struct {
    Verbose       bool
    Enabled       bool
    Parallelism   int
    MaxIterations int
}

func GetDefaultOptions() Options {
    return Options {
        Verbose       : false,
        Enabled       : true,
        Parallelism   : 1,
        MaxIterations : MaxIterations,
    }
}
