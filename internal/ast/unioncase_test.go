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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/webviewrpc/bindgen/internal/arena"
	"github.com/webviewrpc/bindgen/internal/ast"
)

func TestUnionCaseNamesDeterministic(t *testing.T) {
	t.Parallel()

	iface := &ast.Interface{TypeDefs: arena.New[ast.TypeDef]()}
	cases := []ast.UnionCase{
		{Type: ast.String{}},
		{Type: ast.Uint{Width: ast.W32}},
	}

	first := ast.UnionCaseNames(iface, cases)
	second := ast.UnionCaseNames(iface, cases)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"String", "U32"}, first)
}

// Universal property 6: structural-name collisions are disambiguated by
// ordinal, in case order.
func TestUnionCaseNamesDisambiguatesCollisions(t *testing.T) {
	t.Parallel()

	iface := &ast.Interface{TypeDefs: arena.New[ast.TypeDef]()}
	cases := []ast.UnionCase{
		{Type: ast.String{}},
		{Type: ast.String{}},
		{Type: ast.Uint{Width: ast.W8}},
		{Type: ast.String{}},
	}

	names := ast.UnionCaseNames(iface, cases)
	assert.Equal(t, []string{"String0", "String1", "U8", "String3"}, names)
}

func TestFlagsWidth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n    int
		want ast.Width
		ok   bool
	}{
		{0, ast.W8, true},
		{1, ast.W8, true},
		{8, ast.W8, true},
		{9, ast.W16, true},
		{32, ast.W32, true},
		{33, ast.W64, true},
		{128, ast.W128, true},
		{129, 0, false},
	}
	for _, c := range cases {
		w, ok := ast.FlagsWidth(c.n)
		assert.Equal(t, c.ok, ok, "n=%d", c.n)
		if c.ok {
			assert.Equal(t, c.want, w, "n=%d", c.n)
		}
	}
}
