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

package bindgen

import "github.com/webviewrpc/bindgen/internal/ast"

// The data model lives in internal/ast so that the lexer, parser,
// analyzer, solver, and every emitter under internal/gen can share it
// without importing this package (which would be a cycle, since this
// package's Generate dispatches into internal/gen). These aliases are
// the public names for it.
type (
	Interface = ast.Interface
	TypeDefId = ast.TypeDefId
	TypeDef   = ast.TypeDef

	TypeDefKind = ast.TypeDefKind
	Alias       = ast.Alias
	Record      = ast.Record
	Flags       = ast.Flags
	Variant     = ast.Variant
	Enum        = ast.Enum
	Union       = ast.Union
	Resource    = ast.Resource

	RecordField  = ast.RecordField
	FlagsField   = ast.FlagsField
	VariantCase  = ast.VariantCase
	EnumCase     = ast.EnumCase
	UnionCase    = ast.UnionCase

	Type    = ast.Type
	Bool    = ast.Bool
	Uint    = ast.Uint
	Int     = ast.Int
	Float32 = ast.Float32
	Float64 = ast.Float64
	Char    = ast.Char
	String  = ast.String
	List    = ast.List
	Tuple   = ast.Tuple
	Option  = ast.Option
	Result  = ast.Result
	Id      = ast.Id
	Width   = ast.Width

	Function       = ast.Function
	Param          = ast.Param
	FunctionResult = ast.FunctionResult
)

const (
	W8   = ast.W8
	W16  = ast.W16
	W32  = ast.W32
	W64  = ast.W64
	W128 = ast.W128
)

// UnionCaseNames returns a stable, collision-disambiguated UpperCamelCase
// display name for each case of a Union; see [ast.UnionCaseNames].
func UnionCaseNames(iface *Interface, cases []UnionCase) []string {
	return ast.UnionCaseNames(iface, cases)
}

// FlagsWidth returns the derived backing width for a Flags declaration
// with n fields, per §4.2's flags_repr rule.
func FlagsWidth(n int) (Width, bool) {
	return ast.FlagsWidth(n)
}
