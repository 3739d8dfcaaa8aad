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

package guestjs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webviewrpc/bindgen/internal/gen/guestjs"
	"github.com/webviewrpc/bindgen/internal/parser"
)

type fakeBundle struct {
	files map[string][]byte
	order []string
}

func newFakeBundle() *fakeBundle { return &fakeBundle{files: make(map[string][]byte)} }

func (b *fakeBundle) Insert(path string, contents []byte) error {
	b.order = append(b.order, path)
	b.files[path] = contents
	return nil
}

// S4: variants.wit with a two-case variant v { a(u32), b }.
func TestGenerateVariantsScenario(t *testing.T) {
	t.Parallel()

	src := `
interface variants {
	variant v { a(u32), b }
}
`
	iface, err := parser.Parse(src, nil)
	require.NoError(t, err)

	out := newFakeBundle()
	g := guestjs.New(guestjs.Options{})
	require.NoError(t, g.Generate("variants", iface, out, 0))

	body := string(out.files["variants.js"])
	assert.Contains(t, body, "function deserializeV(de)")
	assert.Contains(t, body, "case 0:\n    return { A: deserializeU32(de) }")
	assert.Contains(t, body, "case 1:\n    return { B: null }")
	assert.Contains(t, body, "unknown variant case")
}

// S3: empty.wit produces exactly one file with no helper snippets
// bundled, since the capability bitset is empty.
func TestGenerateEmptyScenarioBundlesNoHelpers(t *testing.T) {
	t.Parallel()

	iface, err := parser.Parse("interface empty {}", nil)
	require.NoError(t, err)

	out := newFakeBundle()
	g := guestjs.New(guestjs.Options{})
	require.NoError(t, g.Generate("empty", iface, out, 0))

	require.Len(t, out.order, 1)
	body := string(out.files["empty.js"])
	assert.NotContains(t, body, "deserializeVarint")
	assert.NotContains(t, body, "function deserializeBool")
}

func TestGenerateCharFunctionBundlesStringUtilities(t *testing.T) {
	t.Parallel()

	src := `
interface chars {
	func take-char(x: char);
	func return-char() -> char;
}
`
	iface, err := parser.Parse(src, nil)
	require.NoError(t, err)

	out := newFakeBundle()
	g := guestjs.New(guestjs.Options{})
	require.NoError(t, g.Generate("chars", iface, out, 0))

	body := string(out.files["chars.js"])
	assert.Contains(t, body, "__text_decoder")
	assert.Contains(t, body, "__text_encoder")
	assert.Contains(t, body, "export function takeChar(x)")
}
