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

package ir

import (
    `math`
    `testing`

    `github.com/stretchr/testify/require`
)

func TestType_Bounds(t *testing.T) {
    require.Equal(t, int64(math.MinInt8), MinInt(I8))
    require.Equal(t, int64(math.MaxInt8), MaxInt(I8))
    require.Equal(t, int64(math.MinInt64), MinInt(I64))
    require.Equal(t, int64(math.MaxInt64), MaxInt(I64))
    require.Equal(t, uint64(math.MaxUint8), MaxUint(U8))
    require.Equal(t, uint64(math.MaxUint64), MaxUint(U64))
    require.Panics(t, func() { MinInt(U8) })
    require.Panics(t, func() { MaxUint(I8) })
}

func TestType_Classes(t *testing.T) {
    for _, ty := range []Type { I8, I16, I32, I64 } {
        require.True(t, ty.IsSigned())
        require.True(t, ty.IsInteger())
        require.False(t, ty.IsFloat())
    }
    for _, ty := range []Type { U8, U16, U32, U64 } {
        require.True(t, ty.IsUnsigned())
        require.True(t, ty.IsInteger())
    }
    require.True(t, F32.IsFloat())
    require.True(t, F64.IsFloat())
    require.False(t, Bool.IsInteger())
    require.False(t, Char.IsInteger())
    require.Equal(t, 8, I8.Bits())
    require.Equal(t, 32, Char.Bits())
    require.Equal(t, 64, F64.Bits())
}

func TestLit_Roundtrip(t *testing.T) {
    require.Equal(t, int64(-5), Int(I8, -5).Int())
    require.Equal(t, int64(math.MinInt64), Int(I64, math.MinInt64).Int())
    require.Equal(t, uint64(255), Uint(U8, 255).Uint())
    require.Equal(t, 2.5, Float(F64, 2.5).Float())
    require.Equal(t, true, BoolLit(true).Bool())
    require.Equal(t, 'é', CharLit('é').Rune())
}

func TestLit_RangeChecks(t *testing.T) {
    require.Panics(t, func() { Int(I8, 128) })
    require.Panics(t, func() { Int(I8, -129) })
    require.Panics(t, func() { Uint(U16, 65536) })
    require.Panics(t, func() { Int(U8, 1) })
    require.Panics(t, func() { Uint(I8, 1) })
    require.Panics(t, func() { Float(I32, 1) })
    require.NotPanics(t, func() { Int(I8, 127) })
    require.NotPanics(t, func() { Uint(U16, 65535) })
}

func TestLit_FloatsAreFinite(t *testing.T) {
    require.Panics(t, func() { Float(F64, math.NaN()) })
    require.Panics(t, func() { Float(F64, math.Inf(1)) })
    require.Panics(t, func() { Float(F64, math.Inf(-1)) })
    require.Panics(t, func() { Float(F32, math.NaN()) })

    /* F32 rounding that overflows to infinity is rejected too */
    require.Panics(t, func() { Float(F32, 2 * math.MaxFloat32) })
    require.NotPanics(t, func() { Float(F32, math.MaxFloat32) })
    require.NotPanics(t, func() { Float(F64, math.MaxFloat64) })
}

func TestLit_Comparable(t *testing.T) {
    /* same type and payload is one value */
    require.Equal(t, Int(I32, 42), Int(I32, 42))
    require.NotEqual(t, Int(I32, 42), Int(I64, 42))
    require.NotEqual(t, Int(I32, 42), Int(I32, 43))

    /* F32 payloads canonicalize to single precision */
    require.Equal(t, Float(F32, 0.1), Float(F32, float64(float32(0.1))))

    /* literals work as map keys */
    m := map[Lit]int { Int(I32, 1): 1, BoolLit(true): 2 }
    require.Equal(t, 1, m[Int(I32, 1)])
    require.Equal(t, 2, m[BoolLit(true)])
}
