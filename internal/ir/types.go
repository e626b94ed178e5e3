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

// Type identifies one of the scalar types representable in the IR.
type Type uint8

const (
    I8 Type = iota
    I16
    I32
    I64
    U8
    U16
    U32
    U64
    F32
    F64
    Bool
    Char
)

func (self Type) IsSigned() bool {
    return self >= I8 && self <= I64
}

func (self Type) IsUnsigned() bool {
    return self >= U8 && self <= U64
}

func (self Type) IsInteger() bool {
    return self.IsSigned() || self.IsUnsigned()
}

func (self Type) IsFloat() bool {
    return self == F32 || self == F64
}

func (self Type) Bits() int {
    switch self {
        case I8  , U8         : return 8
        case I16 , U16        : return 16
        case I32 , U32        : return 32
        case I64 , U64        : return 64
        case F32              : return 32
        case F64              : return 64
        case Bool             : return 1
        case Char             : return 32
        default               : panic("ir: invalid type")
    }
}

func (self Type) String() string {
    switch self {
        case I8   : return "i8"
        case I16  : return "i16"
        case I32  : return "i32"
        case I64  : return "i64"
        case U8   : return "u8"
        case U16  : return "u16"
        case U32  : return "u32"
        case U64  : return "u64"
        case F32  : return "f32"
        case F64  : return "f64"
        case Bool : return "bool"
        case Char : return "char"
        default   : panic("ir: invalid type")
    }
}
