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
    `testing`

    `github.com/stretchr/testify/require`

    `github.com/lumenlang/lumen/internal/ir`
)

func TestFlowWorklist_FIFO(t *testing.T) {
    fn := ir.NewFunction("wl", 0)
    b0 := fn.Entry()
    b1 := fn.NewBlock()
    b2 := fn.NewBlock()
    wl := newFlowWorklist()
    require.True(t, wl.empty())
    require.True(t, wl.push(_FlowEdge { bb: b0, to: b1 }))
    require.True(t, wl.push(_FlowEdge { bb: b0, to: b2 }))
    require.True(t, wl.push(_FlowEdge { bb: b1, to: b2 }))
    e, ok := wl.pop()
    require.True(t, ok)
    require.Equal(t, _FlowEdge { bb: b0, to: b1 }, e)
    e, ok = wl.pop()
    require.True(t, ok)
    require.Equal(t, _FlowEdge { bb: b0, to: b2 }, e)
    e, ok = wl.pop()
    require.True(t, ok)
    require.Equal(t, _FlowEdge { bb: b1, to: b2 }, e)
    require.True(t, wl.empty())
    _, ok = wl.pop()
    require.False(t, ok)
}

func TestFlowWorklist_DuplicateSuppression(t *testing.T) {
    fn := ir.NewFunction("wl", 0)
    b0 := fn.Entry()
    b1 := fn.NewBlock()
    wl := newFlowWorklist()
    require.True(t, wl.push(_FlowEdge { bb: b0, to: b1 }))
    require.False(t, wl.push(_FlowEdge { bb: b0, to: b1 }))
    _, ok := wl.pop()
    require.True(t, ok)
    require.True(t, wl.empty())

    /* once drained the same edge may be queued again */
    require.True(t, wl.push(_FlowEdge { bb: b0, to: b1 }))
}

func TestSSAWorklist_DuplicateSuppression(t *testing.T) {
    fn := ir.NewFunction("wl", 0)
    b0 := fn.Entry()
    v1 := fn.NewValue()
    v2 := fn.NewValue()
    use := &ir.IrBinaryExpr { R: v2, X: v1, Y: v1, Op: ir.IrOpAdd }
    wl := newSSAWorklist()
    require.True(t, wl.push(_SSAEdge { def: v1, bb: b0, use: use }))
    require.False(t, wl.push(_SSAEdge { def: v1, bb: b0, use: use }))
    require.True(t, wl.push(_SSAEdge { def: v2, bb: b0, use: use }))
    e, ok := wl.pop()
    require.True(t, ok)
    require.Equal(t, v1, e.def)
    e, ok = wl.pop()
    require.True(t, ok)
    require.Equal(t, v2, e.def)
    require.True(t, wl.empty())
}

func TestWorklist_Clear(t *testing.T) {
    fn := ir.NewFunction("wl", 0)
    b0 := fn.Entry()
    b1 := fn.NewBlock()
    wl := newFlowWorklist()
    wl.push(_FlowEdge { bb: b0, to: b1 })
    wl.push(_FlowEdge { bb: b1, to: b0 })
    wl.clear()
    require.True(t, wl.empty())
    require.True(t, wl.push(_FlowEdge { bb: b0, to: b1 }))
}

func TestExecEdges_FirstReach(t *testing.T) {
    fn := ir.NewFunction("exec", 0)
    b0 := fn.Entry()
    b1 := fn.NewBlock()
    b2 := fn.NewBlock()
    ex := newExecEdges()
    ex.markBlock(b0)
    require.True(t, ex.blockExecutable(b0))
    require.Equal(t, 1, ex.blockCount())

    newEdge, newBlock := ex.markEdge(b0, b1)
    require.True(t, newEdge)
    require.True(t, newBlock)

    newEdge, newBlock = ex.markEdge(b0, b1)
    require.False(t, newEdge)
    require.False(t, newBlock)

    /* a second edge into an already reachable block is new, the block is not */
    newEdge, newBlock = ex.markEdge(b2, b1)
    require.True(t, newEdge)
    require.False(t, newBlock)

    require.True(t, ex.edgeExecutable(b0, b1))
    require.False(t, ex.edgeExecutable(b1, b0))
    require.True(t, ex.blockExecutable(b1))
    require.False(t, ex.blockExecutable(b2))
    require.Equal(t, 2, ex.blockCount())
}
