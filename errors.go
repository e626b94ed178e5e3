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
    `github.com/lumenlang/lumen/internal/sccp`
)

// PreconditionError occurs when the input IR of a function is structurally
// invalid, analysis of that function is skipped.
type PreconditionError = sccp.PreconditionError

// PostconditionError occurs when the rewritten IR fails structural
// validation, the caller decides whether to keep the result.
type PostconditionError = sccp.PostconditionError

// LatticeError occurs when an evaluator bug attempts an upward lattice
// transition, the pass aborts for the affected function.
type LatticeError = sccp.LatticeError
