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

	"github.com/webviewrpc/bindgen/internal/ast"
)

func TestIsBytesRecognizesListOfU8(t *testing.T) {
	t.Parallel()

	assert.True(t, ast.IsBytes(ast.List{Elem: ast.Uint{Width: ast.W8}}))
	assert.False(t, ast.IsBytes(ast.List{Elem: ast.Uint{Width: ast.W32}}))
	assert.False(t, ast.IsBytes(ast.List{Elem: ast.String{}}))
	assert.False(t, ast.IsBytes(ast.String{}))
}

func TestWidthBits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8, ast.W8.Bits())
	assert.Equal(t, 32, ast.W32.Bits())
	assert.Equal(t, 128, ast.W128.Bits())
}

func TestFunctionResultIsAnon(t *testing.T) {
	t.Parallel()

	withAnon := &ast.FunctionResult{Anon: ast.String{}}
	assert.True(t, withAnon.IsAnon())

	var empty ast.FunctionResult
	assert.False(t, empty.IsAnon())
}
