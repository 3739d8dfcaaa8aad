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

// Package markdown renders an [ast.Interface] as a single human-readable
// reference document: one section per type definition, one section per
// free function, cross-linked by anchor.
package markdown

import (
	"fmt"
	"strings"

	"github.com/stoewer/go-strcase"

	"github.com/webviewrpc/bindgen/internal/ast"
)

// Options configures the markdown emitter. It is currently empty; it
// exists so the constructor shape matches every other emitter's.
type Options struct{}

// Generator renders an Interface to a single Markdown file.
type Generator struct {
	opts Options
}

// New returns a Generator configured by opts.
func New(opts Options) *Generator { return &Generator{opts: opts} }

// Generate writes "<interface-name>.md" into out.
func (g *Generator) Generate(worldName string, iface *ast.Interface, out Bundle, hash uint64) error {
	var typedefs []string
	for _, def := range iface.TypeDefs.All {
		typedefs = append(typedefs, g.printTypeDef(iface, def))
	}

	var functions []string
	for _, fn := range iface.Functions {
		functions = append(functions, g.printFunction(iface, fn))
	}

	contents := fmt.Sprintf(
		"# %s\n\n%s\n\n## Type definitions\n\n%s\n\n## Functions\n\n%s\n",
		iface.Name,
		printDocs(iface.Docs),
		strings.Join(typedefs, "\n"),
		strings.Join(functions, "\n"),
	)

	filename := strcase.KebabCase(worldName) + ".md"
	return out.Insert(filename, []byte(contents))
}

// Bundle is the subset of *bindgen.FileBundle every emitter depends on.
type Bundle interface {
	Insert(path string, contents []byte) error
}

func (g *Generator) printTypeDef(iface *ast.Interface, def *ast.TypeDef) string {
	ident := def.Name
	docs := printDocs(def.Docs)

	switch kind := def.Kind.(type) {
	case ast.Alias:
		return fmt.Sprintf("## Alias %s\n\n`%s`\n\n%s", ident, g.printTy(iface, kind.Type), docs)

	case ast.Record:
		var fields strings.Builder
		for _, f := range kind.Fields {
			fmt.Fprintf(&fields, "#### %s: `%s`\n%s\n", f.Name, g.printTy(iface, f.Type), printDocs(f.Docs))
		}
		return fmt.Sprintf("## Struct %s\n\n%s\n\n### Fields\n\n%s", ident, docs, fields.String())

	case ast.Flags:
		var fields strings.Builder
		for _, f := range kind.Fields {
			fmt.Fprintf(&fields, "#### %s\n%s\n", f.Name, printDocs(f.Docs))
		}
		return fmt.Sprintf("## Flags %s\n\n%s\n\n### Fields\n\n%s", ident, docs, fields.String())

	case ast.Variant:
		var cases strings.Builder
		for _, c := range kind.Cases {
			tyStr := ""
			if c.Type != nil {
				tyStr = ": `" + g.printTy(iface, c.Type) + "`"
			}
			fmt.Fprintf(&cases, "#### %s%s\n%s\n", c.Name, tyStr, printDocs(c.Docs))
		}
		return fmt.Sprintf("## Variant %s\n\n%s\n\n### Cases\n\n%s", ident, docs, cases.String())

	case ast.Enum:
		var cases strings.Builder
		for _, c := range kind.Cases {
			fmt.Fprintf(&cases, "#### %s\n%s\n", c.Name, printDocs(c.Docs))
		}
		return fmt.Sprintf("## Enum %s\n\n%s\n\n### Cases\n\n%s", ident, docs, cases.String())

	case ast.Union:
		var cases strings.Builder
		for _, c := range kind.Cases {
			fmt.Fprintf(&cases, "#### `%s`\n%s\n", g.printTy(iface, c.Type), printDocs(c.Docs))
		}
		return fmt.Sprintf("## Union %s\n\n%s\n\n### Cases\n\n%s", ident, docs, cases.String())

	case ast.Resource:
		var methods strings.Builder
		for _, fn := range kind.Methods {
			fmt.Fprintf(&methods, "### Method %s\n\n`func %s (%s)%s`\n\n%s\n",
				fn.Name, fn.Name, g.printParams(iface, fn.Params), g.printResult(iface, fn.Result), printDocs(fn.Docs))
		}
		return fmt.Sprintf("## Resource %s\n\n%s\n\n### Methods\n\n%s", ident, docs, methods.String())

	default:
		panic(fmt.Sprintf("markdown: unhandled TypeDefKind %T", kind))
	}
}

func (g *Generator) printFunction(iface *ast.Interface, fn ast.Function) string {
	return fmt.Sprintf("### Function %s\n\n`func %s (%s)%s`\n\n%s",
		fn.Name, fn.Name, g.printParams(iface, fn.Params), g.printResult(iface, fn.Result), printDocs(fn.Docs))
}

func (g *Generator) printParams(iface *ast.Interface, params []ast.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%s: %s", p.Name, g.printTy(iface, p.Type))
	}
	return strings.Join(parts, ", ")
}

func (g *Generator) printResult(iface *ast.Interface, result *ast.FunctionResult) string {
	if result == nil {
		return ""
	}
	if result.IsAnon() {
		if t, ok := result.Anon.(ast.Tuple); ok && len(t.Elems) == 0 {
			return ""
		}
		return fmt.Sprintf(" -> %s", g.printTy(iface, result.Anon))
	}
	return fmt.Sprintf(" -> (%s)", g.printParams(iface, result.Named))
}

func (g *Generator) printTy(iface *ast.Interface, t ast.Type) string {
	switch t := t.(type) {
	case ast.Bool:
		return "bool"
	case ast.Uint:
		return fmt.Sprintf("u%d", t.Width.Bits())
	case ast.Int:
		return fmt.Sprintf("s%d", t.Width.Bits())
	case ast.Float32:
		return "float32"
	case ast.Float64:
		return "float64"
	case ast.Char:
		return "char"
	case ast.String:
		return "string"
	case ast.List:
		return fmt.Sprintf("list<%s>", g.printTy(iface, t.Elem))
	case ast.Tuple:
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = g.printTy(iface, e)
		}
		return fmt.Sprintf("tuple<%s>", strings.Join(parts, ", "))
	case ast.Option:
		return fmt.Sprintf("option<%s>", g.printTy(iface, t.Elem))
	case ast.Result:
		ok, errT := "_", "_"
		if t.Ok != nil {
			ok = g.printTy(iface, t.Ok)
		}
		if t.Err != nil {
			errT = g.printTy(iface, t.Err)
		}
		return fmt.Sprintf("result<%s, %s>", ok, errT)
	case ast.Id:
		def := iface.TypeDefs.Get(t.Ref)
		return fmt.Sprintf("[%s](#%s)", def.Name, strcase.SnakeCase(def.Name))
	default:
		panic(fmt.Sprintf("markdown: unhandled Type %T", t))
	}
}

func printDocs(docs []string) string {
	trimmed := make([]string, len(docs))
	for i, l := range docs {
		trimmed[i] = strings.TrimSpace(l)
	}
	return strings.Join(trimmed, "\n")
}
