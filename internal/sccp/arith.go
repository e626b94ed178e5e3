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
)

// 64-bit signed arithmetic with explicit overflow reporting. Narrower
// widths are handled by range checks in the callers, these only need to be
// exact at the full 64-bit width.

func addOvfI64(a int64, b int64) (int64, bool) {
    r := a + b
    return r, (a > 0 && b > 0 && r < 0) || (a < 0 && b < 0 && r >= 0)
}

func subOvfI64(a int64, b int64) (int64, bool) {
    r := a - b
    return r, (b > 0 && r > a) || (b < 0 && r < a)
}

func mulOvfI64(a int64, b int64) (int64, bool) {
    if a == 0 || b == 0 {
        return 0, false
    }
    if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
        return 0, true
    }
    r := a * b
    return r, r / b != a
}
