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

package ast

import "github.com/webviewrpc/bindgen/internal/arena"

// Interface is the top-level artifact of parsing a single world document.
type Interface struct {
	// Name is the interface identifier, kebab-case as written in source.
	Name string
	// Docs holds the trimmed, line-preserved documentation attached to
	// the interface declaration itself, if any.
	Docs []string

	// TypeDefs is the dense, id-indexed arena of every type definition
	// declared in the interface, in declaration order.
	TypeDefs *arena.Arena[TypeDef]

	// Functions is every free function declared at the interface level,
	// in declaration order. Functions belonging to a Resource are not
	// repeated here; they live on that TypeDef's Resource.Methods.
	Functions []Function
}

// TypeDef is a single named type declaration: an identifier, its
// documentation, and a [TypeDefKind] payload.
type TypeDef struct {
	Name string
	Docs []string
	Kind TypeDefKind
}

// TypeDefKind is the closed sum of type-definition shapes a [TypeDef] may
// carry. Every concrete kind below implements it.
type TypeDefKind interface {
	isTypeDefKind()
}

type (
	// Alias is a transparent rename of another type.
	Alias struct{ Type Type }

	// Record is an ordered product type.
	Record struct{ Fields []RecordField }

	// Flags is a bitset over named fields; bit position is declaration
	// order. The backing width is derived, not stored here — see
	// FlagsWidth.
	Flags struct{ Fields []FlagsField }

	// Variant is a tagged sum where each case may carry a payload.
	Variant struct{ Cases []VariantCase }

	// Enum is a tagged sum with no payloads.
	Enum struct{ Cases []EnumCase }

	// Union is a tagged sum keyed by structural position rather than by
	// name; display names are synthesized (see unioncase.go).
	Union struct{ Cases []UnionCase }

	// Resource is an opaque handle type whose functions become methods.
	Resource struct{ Methods []Function }
)

func (Alias) isTypeDefKind()    {}
func (Record) isTypeDefKind()   {}
func (Flags) isTypeDefKind()    {}
func (Variant) isTypeDefKind()  {}
func (Enum) isTypeDefKind()     {}
func (Union) isTypeDefKind()    {}
func (Resource) isTypeDefKind() {}

// RecordField is a single named, typed field of a Record.
type RecordField struct {
	Name string
	Type Type
	Docs []string
}

// FlagsField is a single named bit of a Flags declaration.
type FlagsField struct {
	Name string
	Docs []string
}

// VariantCase is a single named, optionally-payload-carrying case of a
// Variant. Type is nil when the case carries no payload.
type VariantCase struct {
	Name string
	Type Type
	Docs []string
}

// EnumCase is a single named, payload-free case of an Enum.
type EnumCase struct {
	Name string
	Docs []string
}

// UnionCase is a single positional, typed case of a Union.
type UnionCase struct {
	Type Type
	Docs []string
}

// Function is a single callable operation: an identifier, ordered
// parameters, and an optional result.
type Function struct {
	Name   string
	Params []Param
	Result *FunctionResult // nil when the function returns nothing
	Docs   []string
}

// Param is a single named, typed function parameter.
type Param struct {
	Name string
	Type Type
}

// FunctionResult is either a single anonymous type, or a named tuple of
// results (mirroring WIT-style multi-value returns).
type FunctionResult struct {
	// Anon is set when the function returns a single unnamed value.
	Anon Type
	// Named is set when the function returns a named tuple of values;
	// mutually exclusive with Anon.
	Named []Param
}

// IsAnon reports whether this result is a single anonymous type.
func (r *FunctionResult) IsAnon() bool { return r.Anon != nil }

// FlagsWidth returns the derived backing width for a Flags declaration
// with n fields: the smallest of {8,16,32,64,128} with bit-count >= n.
// ok is false when n exceeds 128, the flag-overflow condition.
func FlagsWidth(n int) (w Width, ok bool) {
	switch {
	case n <= 8:
		return W8, true
	case n <= 16:
		return W16, true
	case n <= 32:
		return W32, true
	case n <= 64:
		return W64, true
	case n <= 128:
		return W128, true
	default:
		return 0, false
	}
}
