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

    `github.com/lumenlang/lumen/internal/ir`
)

// PreconditionError reports malformed input IR, analysis of the offending
// function is skipped entirely.
type PreconditionError struct {
    Func   string
    Reason error
}

func (self *PreconditionError) Error() string {
    return fmt.Sprintf("PreconditionError(%s): %s", self.Func, self.Reason)
}

func (self *PreconditionError) Unwrap() error {
    return self.Reason
}

// PostconditionError reports that the rewritten IR failed structural
// validation, the caller decides whether to keep the result.
type PostconditionError struct {
    Func   string
    Reason error
}

func (self *PostconditionError) Error() string {
    return fmt.Sprintf("PostconditionError(%s): %s", self.Func, self.Reason)
}

func (self *PostconditionError) Unwrap() error {
    return self.Reason
}

// LatticeError reports a lattice update that would have moved a value
// upward. This is an internal logic error in the evaluator, never a
// property of the input, and it aborts the pass for the function.
type LatticeError struct {
    Func  string
    Value ir.ValueId
    Old   LatticeValue
    New   LatticeValue
}

func (self *LatticeError) Error() string {
    return fmt.Sprintf(
        "LatticeError(%s): monotonicity violation on %s: %s -> %s",
        self.Func,
        self.Value,
        self.Old,
        self.New,
    )
}
