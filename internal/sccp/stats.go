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
    `strings`
)

// Statistics accumulates what the pass did to one function, Merge folds the
// per-function records into a module-level report.
type Statistics struct {
    Functions            int
    ValuesAnalyzed       int
    BlocksVisited        int
    Iterations           int
    ConstantsFound       int
    BranchesEliminated   int
    BlocksRemoved        int
    InstructionsReplaced int
    PhisSimplified       int
}

func (self *Statistics) Merge(other Statistics) {
    self.Functions            += other.Functions
    self.ValuesAnalyzed       += other.ValuesAnalyzed
    self.BlocksVisited        += other.BlocksVisited
    self.Iterations           += other.Iterations
    self.ConstantsFound       += other.ConstantsFound
    self.BranchesEliminated   += other.BranchesEliminated
    self.BlocksRemoved        += other.BlocksRemoved
    self.InstructionsReplaced += other.InstructionsReplaced
    self.PhisSimplified       += other.PhisSimplified
}

// Changed reports whether the rewrite altered the IR at all.
func (self Statistics) Changed() bool {
    return self.BranchesEliminated != 0 ||
           self.BlocksRemoved != 0 ||
           self.InstructionsReplaced != 0 ||
           self.PhisSimplified != 0
}

func (self Statistics) String() string {
    buf := []string {
        "SCCP Statistics {",
        fmt.Sprintf("    functions             : %d", self.Functions),
        fmt.Sprintf("    values analyzed       : %d", self.ValuesAnalyzed),
        fmt.Sprintf("    blocks visited        : %d", self.BlocksVisited),
        fmt.Sprintf("    iterations            : %d", self.Iterations),
        fmt.Sprintf("    constants found       : %d", self.ConstantsFound),
        fmt.Sprintf("    branches eliminated   : %d", self.BranchesEliminated),
        fmt.Sprintf("    blocks removed        : %d", self.BlocksRemoved),
        fmt.Sprintf("    instructions replaced : %d", self.InstructionsReplaced),
        fmt.Sprintf("    phi nodes simplified  : %d", self.PhisSimplified),
        "}",
    }
    return strings.Join(buf, "\n")
}
