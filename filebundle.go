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

import "fmt"

// FileBundle is an ordered mapping from relative, forward-slash path to
// file contents. It is the only handoff between the core and whatever
// writes the result to disk or pipes it through a formatter; once a
// bundle is returned to the caller, nothing in this package retains a
// reference to its contents.
//
// Iteration order matches insertion order, which in turn matches the
// order emitters called [FileBundle.Insert] in — not sorted path order.
type FileBundle struct {
	order []string
	files map[string][]byte
}

// NewFileBundle returns an empty bundle.
func NewFileBundle() *FileBundle {
	return &FileBundle{files: make(map[string][]byte)}
}

// Insert adds a file at path. It is an error to insert the same path
// twice, even with identical contents — the original tauri-bindgen
// implementation this is descended from panics on that condition via
// its underlying index map; returning an error here is the one
// deliberate behavioral change from that original (Go style strongly
// prefers reporting caller mistakes as errors over panicking on them).
func (b *FileBundle) Insert(path string, contents []byte) error {
	if _, ok := b.files[path]; ok {
		return fmt.Errorf("bindgen: duplicate file path %q", path)
	}
	b.order = append(b.order, path)
	b.files[path] = contents
	return nil
}

// Get returns the contents stored at path, and whether path is present.
func (b *FileBundle) Get(path string) ([]byte, bool) {
	c, ok := b.files[path]
	return c, ok
}

// Paths returns every path in insertion order.
func (b *FileBundle) Paths() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Len returns the number of files in the bundle.
func (b *FileBundle) Len() int { return len(b.order) }

// All iterates over every (path, contents) pair in insertion order.
func (b *FileBundle) All(yield func(path string, contents []byte) bool) {
	for _, p := range b.order {
		if !yield(p, b.files[p]) {
			return
		}
	}
}
