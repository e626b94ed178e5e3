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
    `fmt`
    `math`
)

// Lit is a typed scalar literal. Integer, boolean and character payloads
// live in the i field, floating point payloads in the f field, so two
// literals of the same type and value always compare equal with "==".
type Lit struct {
    t Type
    i uint64
    f float64
}

// MinInt returns the smallest value representable by a signed type.
func MinInt(t Type) int64 {
    if !t.IsSigned() {
        panic("ir: MinInt on a non-signed type: " + t.String())
    } else {
        return -1 << (t.Bits() - 1)
    }
}

// MaxInt returns the largest value representable by a signed type.
func MaxInt(t Type) int64 {
    if !t.IsSigned() {
        panic("ir: MaxInt on a non-signed type: " + t.String())
    } else {
        return 1 << (t.Bits() - 1) - 1
    }
}

// MaxUint returns the largest value representable by an unsigned type.
func MaxUint(t Type) uint64 {
    if !t.IsUnsigned() {
        panic("ir: MaxUint on a non-unsigned type: " + t.String())
    } else if t.Bits() == 64 {
        return math.MaxUint64
    } else {
        return 1 << t.Bits() - 1
    }
}

// Int constructs a signed integer literal, it panics if v does not fit in t.
func Int(t Type, v int64) Lit {
    if !t.IsSigned() {
        panic("ir: integer literal of a non-signed type: " + t.String())
    } else if v < MinInt(t) || v > MaxInt(t) {
        panic(fmt.Sprintf("ir: integer literal out of range for %s: %d", t, v))
    } else {
        return Lit { t: t, i: uint64(v) }
    }
}

// Uint constructs an unsigned integer literal, it panics if v does not fit in t.
func Uint(t Type, v uint64) Lit {
    if !t.IsUnsigned() {
        panic("ir: unsigned literal of a non-unsigned type: " + t.String())
    } else if v > MaxUint(t) {
        panic(fmt.Sprintf("ir: unsigned literal out of range for %s: %d", t, v))
    } else {
        return Lit { t: t, i: v }
    }
}

// Float constructs a floating point literal. F32 payloads are rounded to
// single precision so equal constants have a single representation. NaN and
// infinite payloads panic, literals carry finite values only, which keeps
// total ordering on float constants sound.
func Float(t Type, v float64) Lit {
    switch t {
        case F32 : v = float64(float32(v))
        case F64 : break
        default  : panic("ir: float literal of a non-float type: " + t.String())
    }
    if math.IsNaN(v) || math.IsInf(v, 0) {
        panic(fmt.Sprintf("ir: float literal out of range for %s: %g", t, v))
    }
    return Lit { t: t, f: v }
}

// BoolLit constructs a boolean literal.
func BoolLit(v bool) Lit {
    if v {
        return Lit { t: Bool, i: 1 }
    } else {
        return Lit { t: Bool, i: 0 }
    }
}

// CharLit constructs a character literal.
func CharLit(v rune) Lit {
    return Lit { t: Char, i: uint64(uint32(v)) }
}

func (self Lit) Type() Type {
    return self.t
}

func (self Lit) Int() int64 {
    return int64(self.i)
}

func (self Lit) Uint() uint64 {
    return self.i
}

func (self Lit) Float() float64 {
    return self.f
}

func (self Lit) Bool() bool {
    return self.i != 0
}

func (self Lit) Rune() rune {
    return rune(uint32(self.i))
}

func (self Lit) String() string {
    switch {
        case self.t.IsSigned()   : return fmt.Sprintf("(%s) %d", self.t, self.Int())
        case self.t.IsUnsigned() : return fmt.Sprintf("(%s) %d", self.t, self.Uint())
        case self.t.IsFloat()    : return fmt.Sprintf("(%s) %g", self.t, self.Float())
        case self.t == Bool      : return fmt.Sprintf("(bool) %v", self.Bool())
        case self.t == Char      : return fmt.Sprintf("(char) %q", self.Rune())
        default                  : panic("ir: invalid literal type")
    }
}
