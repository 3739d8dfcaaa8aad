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

package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webviewrpc/bindgen/internal/gen/markdown"
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

func TestGenerateIncludesTypeAndFunctionSections(t *testing.T) {
	t.Parallel()

	src := `
interface shapes {
	/// Describes a 2D point.
	record point { x: u32, y: u32 }

	/// Returns the origin.
	func origin() -> point;
}
`
	iface, err := parser.Parse(src, nil)
	require.NoError(t, err)

	out := newFakeBundle()
	g := markdown.New(markdown.Options{})
	require.NoError(t, g.Generate("shapes", iface, out, 0))

	body := string(out.files["shapes.md"])
	assert.Contains(t, body, "# shapes")
	assert.Contains(t, body, "## Struct point")
	assert.Contains(t, body, "Describes a 2D point.")
	assert.Contains(t, body, "### Function origin")
	assert.Contains(t, body, "Returns the origin.")
}

func TestGenerateTypeRefLinksToAnchor(t *testing.T) {
	t.Parallel()

	src := `
interface shapes {
	record point { x: u32, y: u32 }
	func origin() -> point;
}
`
	iface, err := parser.Parse(src, nil)
	require.NoError(t, err)

	out := newFakeBundle()
	g := markdown.New(markdown.Options{})
	require.NoError(t, g.Generate("shapes", iface, out, 0))

	body := string(out.files["shapes.md"])
	assert.Contains(t, body, "[point](#point)")
}

// Anchor fragments are snake_case, not kebab-case, so a multi-word
// identifier written with hyphens still links to a valid Markdown
// heading anchor (GitHub and most renderers lowercase and hyphenate
// headings themselves, but never split on an existing underscore).
func TestGenerateTypeRefAnchorIsSnakeCase(t *testing.T) {
	t.Parallel()

	src := `
interface shapes {
	record bounding-box { width: u32, height: u32 }
	func default-box() -> bounding-box;
}
`
	iface, err := parser.Parse(src, nil)
	require.NoError(t, err)

	out := newFakeBundle()
	g := markdown.New(markdown.Options{})
	require.NoError(t, g.Generate("shapes", iface, out, 0))

	body := string(out.files["shapes.md"])
	assert.Contains(t, body, "[bounding-box](#bounding_box)")
	assert.NotContains(t, body, "(#bounding-box)")
}
