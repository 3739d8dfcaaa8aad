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

import (
	"github.com/webviewrpc/bindgen/internal/gen/guestjs"
	"github.com/webviewrpc/bindgen/internal/gen/guestts"
	"github.com/webviewrpc/bindgen/internal/gen/host"
	"github.com/webviewrpc/bindgen/internal/gen/markdown"
	"github.com/webviewrpc/bindgen/internal/parser"
)

// ParseStr lexes, parses, and resolves source into an Interface.
// includeDocsFor is called once, with the empty string, to decide
// whether the interface's own top-level doc comment is kept; doc
// comments on declarations inside the interface are always kept. A nil
// includeDocsFor keeps all documentation.
func ParseStr(source string, includeDocsFor func(path string) bool) (*Interface, error) {
	return parser.Parse(source, includeDocsFor)
}

// Generator is the uniform entry point every target emitter implements:
// render iface as one world named worldName, appending the result into
// out. hash is typically HashStr of the original source text; none of
// the current emitters writes it into its output.
type Generator interface {
	Generate(worldName string, iface *Interface, out *FileBundle, hash uint64) error
}

type hostGenerator struct{ g *host.Generator }

func (h hostGenerator) Generate(worldName string, iface *Interface, out *FileBundle, hash uint64) error {
	return h.g.Generate(worldName, iface, out, hash)
}

// NewHostGenerator returns the Rust host-side Generator.
func NewHostGenerator(opts HostOptions) Generator {
	return hostGenerator{g: host.New(opts)}
}

type guestTypedGenerator struct{ g *guestts.Generator }

func (h guestTypedGenerator) Generate(worldName string, iface *Interface, out *FileBundle, hash uint64) error {
	return h.g.Generate(worldName, iface, out, hash)
}

// NewGuestTypedGenerator returns the strongly typed TypeScript guest-side
// Generator.
func NewGuestTypedGenerator(opts GuestTypedOptions) Generator {
	return guestTypedGenerator{g: guestts.New(opts)}
}

type guestScriptingGenerator struct{ g *guestjs.Generator }

func (h guestScriptingGenerator) Generate(worldName string, iface *Interface, out *FileBundle, hash uint64) error {
	return h.g.Generate(worldName, iface, out, hash)
}

// NewGuestScriptingGenerator returns the plain-JavaScript guest-side
// Generator.
func NewGuestScriptingGenerator(opts GuestScriptingOptions) Generator {
	return guestScriptingGenerator{g: guestjs.New(opts)}
}

type markdownGenerator struct{ g *markdown.Generator }

func (h markdownGenerator) Generate(worldName string, iface *Interface, out *FileBundle, hash uint64) error {
	return h.g.Generate(worldName, iface, out, hash)
}

// NewMarkdownGenerator returns the Markdown reference-documentation
// Generator.
func NewMarkdownGenerator(opts MarkdownOptions) Generator {
	return markdownGenerator{g: markdown.New(opts)}
}
