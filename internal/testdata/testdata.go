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

// Package testdata loads the shared corpus of interface fixtures used by
// the emitter test suites, so that a single scenario (an
// interface source plus the substrings each emitter's output must and
// must not contain) only has to be written down once.
package testdata

import (
	"bytes"
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var corpus embed.FS

// Expectation lists substrings a single emitter's output for a [Case]
// must, and must not, contain.
type Expectation struct {
	Contains    []string `yaml:"contains"`
	NotContains []string `yaml:"not_contains"`
}

// Case is a single named interface fixture together with per-emitter
// expectations, keyed by emitter name ("host", "guestts", "guestjs",
// "markdown").
type Case struct {
	Name   string `yaml:"-"`
	Source string `yaml:"source"`

	Expect map[string]Expectation `yaml:"expect"`
}

// Harness generalizes testing.TB with the Run method it needs to spawn
// one subtest per fixture.
type Harness[T any] interface {
	testing.TB
	Run(string, func(T)) bool
}

// RunAll loads every fixture in the corpus, in filename order, and
// invokes f once per case in its own subtest.
func RunAll[T Harness[T]](t T, f func(T, *Case)) {
	t.Helper()

	err := fs.WalkDir(corpus, ".", func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err, "loading fixture %q", path)
		if d.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		data, err := fs.ReadFile(corpus, path)
		require.NoError(t, err, "loading fixture %q", path)

		var c Case
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		require.NoError(t, dec.Decode(&c), "decoding fixture %q", path)
		c.Name = strings.TrimSuffix(filepath.Base(path), ".yaml")

		t.Run(c.Name, func(t T) {
			if t, ok := any(t).(*testing.T); ok {
				t.Parallel()
			}
			f(t, &c)
		})
		return nil
	})
	require.NoError(t, err)
}
