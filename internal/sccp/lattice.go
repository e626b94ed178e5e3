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
    `github.com/lumenlang/lumen/internal/ir`
)

type _LatKind uint8

const (
    _L_top _LatKind = iota
    _L_const
    _L_bottom
)

// LatticeValue is the three-level constant lattice over a single SSA value:
// top (no evidence yet), a known constant, or bottom (proven variable).
// The zero value is top.
type LatticeValue struct {
    k _LatKind
    c ir.Lit
}

func topValue() LatticeValue {
    return LatticeValue {}
}

func bottomValue() LatticeValue {
    return LatticeValue { k: _L_bottom }
}

func constValue(c ir.Lit) LatticeValue {
    return LatticeValue { k: _L_const, c: c }
}

func (self LatticeValue) IsTop() bool {
    return self.k == _L_top
}

func (self LatticeValue) IsConst() bool {
    return self.k == _L_const
}

func (self LatticeValue) IsBottom() bool {
    return self.k == _L_bottom
}

// Lit returns the constant payload, it panics unless IsConst.
func (self LatticeValue) Lit() ir.Lit {
    if self.k != _L_const {
        panic("sccp: lattice value is not a constant")
    } else {
        return self.c
    }
}

func (self LatticeValue) String() string {
    switch self.k {
        case _L_top    : return "⊤"
        case _L_const  : return self.c.String()
        case _L_bottom : return "⊥"
        default        : panic("sccp: invalid lattice value")
    }
}

// meet combines two lattice values. Top is the identity, bottom is
// absorbing, equal constants meet to themselves and distinct constants
// meet to bottom.
func meet(a LatticeValue, b LatticeValue) LatticeValue {
    switch {
        case a.IsTop()    : return b
        case b.IsTop()    : return a
        case a.IsBottom() : return a
        case b.IsBottom() : return b
        case a.c == b.c   : return a
        default           : return bottomValue()
    }
}

// descends reports whether a transition from old to new moves downward in
// the lattice, which is the only legal direction: top may become anything,
// a constant may only stay itself or fall to bottom, bottom is final.
func descends(old LatticeValue, new LatticeValue) bool {
    switch {
        case old == new    : return true
        case old.IsTop()   : return true
        case old.IsConst() : return new.IsBottom()
        default            : return false
    }
}
