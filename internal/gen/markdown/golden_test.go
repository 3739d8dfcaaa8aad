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
	"github.com/webviewrpc/bindgen/internal/testdata"
)

func TestGoldenCorpus(t *testing.T) {
	t.Parallel()

	testdata.RunAll(t, func(t *testing.T, c *testdata.Case) {
		exp, ok := c.Expect["markdown"]
		if !ok {
			t.Skip("no markdown expectations for this fixture")
		}

		iface, err := parser.Parse(c.Source, nil)
		require.NoError(t, err)

		out := newFakeBundle()
		g := markdown.New(markdown.Options{})
		require.NoError(t, g.Generate(c.Name, iface, out, 0))

		var body string
		for _, contents := range out.files {
			body += string(contents)
		}

		for _, want := range exp.Contains {
			assert.Contains(t, body, want)
		}
		for _, notWant := range exp.NotContains {
			assert.NotContains(t, body, notWant)
		}
	})
}
