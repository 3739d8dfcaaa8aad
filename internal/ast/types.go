// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ast is the arena-backed AST produced by the parser: an
// [Interface], its [TypeDef] arena, and the structural [Type] universe
// referenced by function signatures and typedef bodies.
//
// Nothing in this package mutates an [Interface] after [parser.Parse]
// returns it; every downstream pass (TypeInfo, the serde solver, each
// emitter) only reads it.
package ast

import "github.com/webviewrpc/bindgen/internal/arena"

// TypeDefId is a stable reference into an [Interface]'s typedef arena.
type TypeDefId = arena.Id

// Width is an integer bit width, one of 8, 16, 32, 64, or 128.
type Width int

const (
	W8 Width = 8
	W16 Width = 16
	W32 Width = 32
	W64 Width = 64
	W128 Width = 128
)

// Bits returns the number of bits in w.
func (w Width) Bits() int { return int(w) }

// Type is the structural type universe: bool, integers, floats, char,
// string, and the container shapes list/tuple/option/result, plus a
// reference to a named [TypeDef] by [TypeDefId].
//
// Type is a closed sum: every concrete type below implements it, and
// emitters are expected to switch over all of them exhaustively.
type Type interface {
	isType()
}

type (
	// Bool is the boolean type.
	Bool struct{}

	// Uint is an unsigned integer of the given width.
	Uint struct{ Width Width }

	// Int is a signed integer of the given width.
	Int struct{ Width Width }

	// Float32 is an IEEE-754 single-precision float.
	Float32 struct{}

	// Float64 is an IEEE-754 double-precision float.
	Float64 struct{}

	// Char is a Unicode scalar value.
	Char struct{}

	// String is a UTF-8 string.
	String struct{}

	// List is a homogeneous sequence of Elem. List{Elem: Uint{W8}} is the
	// distinguished "bytes" case; emitters must special-case it.
	List struct{ Elem Type }

	// Tuple is a fixed-length heterogeneous sequence.
	Tuple struct{ Elems []Type }

	// Option is a possibly-absent value of Elem.
	Option struct{ Elem Type }

	// Result is a value that is either Ok or Err. Either side may be nil,
	// meaning that side carries no payload; both may be nil.
	Result struct{ Ok, Err Type }

	// Id references a named TypeDef by arena id.
	Id struct{ Ref TypeDefId }
)

func (Bool) isType()    {}
func (Uint) isType()    {}
func (Int) isType()     {}
func (Float32) isType() {}
func (Float64) isType() {}
func (Char) isType()    {}
func (String) isType()  {}
func (List) isType()    {}
func (Tuple) isType()   {}
func (Option) isType()  {}
func (Result) isType()  {}
func (Id) isType()      {}

// IsBytes reports whether t is the distinguished list<u8> bytes case.
func IsBytes(t Type) bool {
	l, ok := t.(List)
	if !ok {
		return false
	}
	u, ok := l.Elem.(Uint)
	return ok && u.Width == W8
}
