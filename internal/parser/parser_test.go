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

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webviewrpc/bindgen/internal/ast"
	"github.com/webviewrpc/bindgen/internal/parser"
	"github.com/webviewrpc/bindgen/internal/perr"
)

// chars.wit from S1: an alias plus two functions exercising both a
// named alias return type and a primitive parameter type.
const charsSrc = `
interface chars {
	alias a = string;

	func take-char(x: char);
	func return-char() -> a;
}
`

func TestParseCharsScenario(t *testing.T) {
	t.Parallel()

	iface, err := parser.Parse(charsSrc, nil)
	require.NoError(t, err)

	require.Equal(t, 1, iface.TypeDefs.Len())
	a := iface.TypeDefs.Get(1)
	assert.Equal(t, "a", a.Name)
	_, isAlias := a.Kind.(ast.Alias)
	assert.True(t, isAlias)

	require.Len(t, iface.Functions, 2)
	assert.Equal(t, "take-char", iface.Functions[0].Name)
	require.Len(t, iface.Functions[0].Params, 1)
	_, isChar := iface.Functions[0].Params[0].Type.(ast.Char)
	assert.True(t, isChar)

	assert.Equal(t, "return-char", iface.Functions[1].Name)
	require.NotNil(t, iface.Functions[1].Result)
	id, isID := iface.Functions[1].Result.Anon.(ast.Id)
	require.True(t, isID)
	assert.Equal(t, "a", iface.TypeDefs.Get(id.Ref).Name)
}

// flags.wit from S2: three fields, deriving a u8 backing width.
func TestParseFlagsScenarioDerivesU8Width(t *testing.T) {
	t.Parallel()

	src := `
interface flags {
	flags perm { read, write, execute }
}
`
	iface, err := parser.Parse(src, nil)
	require.NoError(t, err)

	def := iface.TypeDefs.Get(1)
	flags, ok := def.Kind.(ast.Flags)
	require.True(t, ok)
	assert.Len(t, flags.Fields, 3)

	w, ok := ast.FlagsWidth(len(flags.Fields))
	require.True(t, ok)
	assert.Equal(t, ast.W8, w)
}

// empty.wit from S3: no functions, no types.
func TestParseEmptyScenario(t *testing.T) {
	t.Parallel()

	iface, err := parser.Parse("interface empty {}", nil)
	require.NoError(t, err)

	assert.Equal(t, "empty", iface.Name)
	assert.Equal(t, 0, iface.TypeDefs.Len())
	assert.Empty(t, iface.Functions)
}

// variants.wit from S4: a two-case variant, one carrying a payload.
func TestParseVariantsScenario(t *testing.T) {
	t.Parallel()

	src := `
interface variants {
	variant v { a(u32), b }
}
`
	iface, err := parser.Parse(src, nil)
	require.NoError(t, err)

	def := iface.TypeDefs.Get(1)
	v, ok := def.Kind.(ast.Variant)
	require.True(t, ok)
	require.Len(t, v.Cases, 2)

	assert.Equal(t, "a", v.Cases[0].Name)
	u, ok := v.Cases[0].Type.(ast.Uint)
	require.True(t, ok)
	assert.Equal(t, ast.W32, u.Width)

	assert.Equal(t, "b", v.Cases[1].Name)
	assert.Nil(t, v.Cases[1].Type)
}

// S5: a disallowed bidirectional-override codepoint at byte offset 7
// must fail before any token is produced, and must not return a partial
// AST alongside the error.
func TestParseBidiOverrideAtByteSeven(t *testing.T) {
	t.Parallel()

	src := "interfa‮ce x {}"
	iface, err := parser.Parse(src, nil)
	require.Error(t, err)
	assert.Nil(t, iface)

	var ii *perr.InputInvalidError
	require.ErrorAs(t, err, &ii)
	assert.Equal(t, perr.BidiOverride, ii.Reason)
	assert.Equal(t, 7, ii.Offset)
}

// S6: a two-alias cycle must name both members and expose no AST.
func TestParseAliasCycle(t *testing.T) {
	t.Parallel()

	src := `
interface cyclic {
	alias x = y;
	alias y = x;
}
`
	iface, err := parser.Parse(src, nil)
	require.Error(t, err)
	assert.Nil(t, iface)

	var cycle *perr.CycleError
	require.ErrorAs(t, err, &cycle)
	assert.ElementsMatch(t, []string{"x", "y"}, cycle.Members)
}

// Universal property 1: parse is a pure function of its input.
func TestParseDeterminism(t *testing.T) {
	t.Parallel()

	iface1, err := parser.Parse(charsSrc, nil)
	require.NoError(t, err)
	iface2, err := parser.Parse(charsSrc, nil)
	require.NoError(t, err)

	assert.Equal(t, iface1, iface2)
}

// Universal property 3: declaration order is preserved through to the
// AST's iteration order, for both type definitions and functions.
func TestParseOrderingPreservation(t *testing.T) {
	t.Parallel()

	src := `
interface ordered {
	alias z = string;
	alias a = string;
	alias m = string;

	func third();
	func first();
	func second();
}
`
	iface, err := parser.Parse(src, nil)
	require.NoError(t, err)

	var names []string
	for _, def := range iface.TypeDefs.All {
		names = append(names, def.Name)
	}
	assert.Equal(t, []string{"z", "a", "m"}, names)

	var fnNames []string
	for _, fn := range iface.Functions {
		fnNames = append(fnNames, fn.Name)
	}
	assert.Equal(t, []string{"third", "first", "second"}, fnNames)
}

// Universal property 5: flags with more than 128 fields overflow the
// largest representable backing width.
func TestParseFlagOverflow(t *testing.T) {
	t.Parallel()

	var b []byte
	b = append(b, []byte("interface overflow {\n\tflags many {\n")...)
	for i := 0; i < 129; i++ {
		b = append(b, []byte("\t\tf"+itoa(i)+",\n")...)
	}
	b = append(b, []byte("\t}\n}\n")...)

	iface, err := parser.Parse(string(b), nil)
	require.Error(t, err)
	assert.Nil(t, iface)

	var overflow *perr.FlagOverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, "many", overflow.Identifier)
	assert.Equal(t, 129, overflow.NumFields)
}

// Universal property 7: a duplicate top-level identifier, whether
// between two type definitions or a type definition and a function,
// is rejected.
func TestParseDuplicateIdentifier(t *testing.T) {
	t.Parallel()

	src := `
interface dup {
	alias thing = string;
	alias thing = string;
}
`
	_, err := parser.Parse(src, nil)
	require.Error(t, err)

	var dupErr *perr.DuplicateIdentifierError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "thing", dupErr.Identifier)
}

// Universal property 8: codepoint validation runs before tokenizing, so
// a disallowed codepoint anywhere in the source is reported even when
// it falls inside what would otherwise be a comment or identifier.
func TestParseCodepointValidationPrecedesTokenizing(t *testing.T) {
	t.Parallel()

	src := "interface x { // greet‮name\n}"
	_, err := parser.Parse(src, nil)
	require.Error(t, err)

	var ii *perr.InputInvalidError
	require.ErrorAs(t, err, &ii)
	assert.Equal(t, perr.BidiOverride, ii.Reason)
}

func TestParseUnresolvedReferenceSuggestsCandidates(t *testing.T) {
	t.Parallel()

	src := `
interface typo {
	alias greeting = string;
	func take(x: greting);
}
`
	_, err := parser.Parse(src, nil)
	require.Error(t, err)

	var resolveErr *perr.ResolveError
	require.ErrorAs(t, err, &resolveErr)
	assert.Equal(t, "greting", resolveErr.Identifier)
	assert.Contains(t, resolveErr.Candidates, "greeting")
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	return string(digits)
}
