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

// Package guestts emits a strongly typed TypeScript guest module: one
// exported function per IDL function, typed parameters and return type,
// each body a single call into the host's invoke bridge. It never emits
// the on-wire (de)serialization logic itself — that's [guestjs]'s job,
// for callers that can't carry a TypeScript toolchain.
package guestts

import (
	"fmt"
	"strings"

	"github.com/stoewer/go-strcase"

	"github.com/webviewrpc/bindgen/internal/ast"
)

// Options configures [New].
type Options struct {
	// Async selects between `async function` (returning a Promise) and a
	// plain synchronous wrapper. The invoke bridge itself is always
	// asynchronous; a non-async wrapper returns the Promise directly
	// rather than awaiting it.
	Async bool
}

// Bundle is the subset of *bindgen.FileBundle every emitter depends on.
type Bundle interface {
	Insert(path string, contents []byte) error
}

// Generator renders an Interface to a single .ts file.
type Generator struct {
	opts Options
}

// New returns a Generator configured by opts.
func New(opts Options) *Generator { return &Generator{opts: opts} }

// Generate writes "<interface-name>.ts" into out.
func (g *Generator) Generate(worldName string, iface *ast.Interface, out Bundle, hash uint64) error {
	var b strings.Builder

	for _, def := range iface.TypeDefs.All {
		if _, isResource := def.Kind.(ast.Resource); isResource {
			continue
		}
		b.WriteString(g.printTypeDef(iface, def))
		b.WriteString("\n\n")
	}

	for _, fn := range iface.Functions {
		b.WriteString(g.printFunction(iface, worldName, fn))
		b.WriteString("\n\n")
	}

	filename := strcase.KebabCase(worldName) + ".ts"
	return out.Insert(filename, []byte(b.String()))
}

func (g *Generator) printTypeDef(iface *ast.Interface, def *ast.TypeDef) string {
	ident := strcase.UpperCamelCase(def.Name)

	switch kind := def.Kind.(type) {
	case ast.Alias:
		return fmt.Sprintf("export type %s = %s;", ident, g.printTy(iface, kind.Type))

	case ast.Record:
		var fields strings.Builder
		for _, f := range kind.Fields {
			fmt.Fprintf(&fields, "    %s: %s;\n", strcase.LowerCamelCase(f.Name), g.printTy(iface, f.Type))
		}
		return fmt.Sprintf("export interface %s {\n%s}", ident, fields.String())

	case ast.Flags:
		var fields strings.Builder
		for _, f := range kind.Fields {
			fmt.Fprintf(&fields, "    %s: boolean;\n", strcase.LowerCamelCase(f.Name))
		}
		return fmt.Sprintf("export interface %s {\n%s}", ident, fields.String())

	case ast.Variant:
		var cases []string
		for _, c := range kind.Cases {
			caseIdent := strcase.UpperCamelCase(c.Name)
			if c.Type == nil {
				cases = append(cases, fmt.Sprintf("{ %s: null }", caseIdent))
				continue
			}
			cases = append(cases, fmt.Sprintf("{ %s: %s }", caseIdent, g.printTy(iface, c.Type)))
		}
		return fmt.Sprintf("export type %s =\n    | %s;", ident, strings.Join(cases, "\n    | "))

	case ast.Enum:
		names := make([]string, len(kind.Cases))
		for i, c := range kind.Cases {
			names[i] = fmt.Sprintf("\"%s\"", c.Name)
		}
		return fmt.Sprintf("export type %s = %s;", ident, strings.Join(names, " | "))

	case ast.Union:
		names := ast.UnionCaseNames(iface, kind.Cases)
		cases := make([]string, len(kind.Cases))
		for i, c := range kind.Cases {
			cases[i] = fmt.Sprintf("{ %s: %s }", names[i], g.printTy(iface, c.Type))
		}
		return fmt.Sprintf("export type %s =\n    | %s;", ident, strings.Join(cases, "\n    | "))

	case ast.Resource:
		return ""

	default:
		panic(fmt.Sprintf("guestts: unhandled TypeDefKind %T", kind))
	}
}

func (g *Generator) printFunction(iface *ast.Interface, worldName string, fn ast.Function) string {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = fmt.Sprintf("%s: %s", strcase.LowerCamelCase(p.Name), g.printTy(iface, p.Type))
	}

	resultTy := g.printResult(iface, fn.Result)

	args := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		args[i] = strcase.LowerCamelCase(p.Name)
	}
	argsObj := strings.Join(args, ", ")

	name := strcase.LowerCamelCase(fn.Name)
	invokeCall := fmt.Sprintf("invoke(%q, %q, [%s])", worldName, fn.Name, argsObj)

	if g.opts.Async {
		return fmt.Sprintf("export async function %s(%s): Promise<%s> {\n    return await %s;\n}",
			name, strings.Join(params, ", "), resultTy, invokeCall)
	}
	return fmt.Sprintf("export function %s(%s): Promise<%s> {\n    return %s;\n}",
		name, strings.Join(params, ", "), resultTy, invokeCall)
}

func (g *Generator) printResult(iface *ast.Interface, result *ast.FunctionResult) string {
	if result == nil {
		return "void"
	}
	if result.IsAnon() {
		return g.printTy(iface, result.Anon)
	}
	parts := make([]string, len(result.Named))
	for i, p := range result.Named {
		parts[i] = g.printTy(iface, p.Type)
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}

func (g *Generator) printTy(iface *ast.Interface, t ast.Type) string {
	switch t := t.(type) {
	case ast.Bool:
		return "boolean"
	case ast.Uint, ast.Int:
		return "number"
	case ast.Float32, ast.Float64:
		return "number"
	case ast.Char:
		return "string"
	case ast.String:
		return "string"
	case ast.List:
		if ast.IsBytes(t) {
			return "Uint8Array"
		}
		return fmt.Sprintf("Array<%s>", g.printTy(iface, t.Elem))
	case ast.Tuple:
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = g.printTy(iface, e)
		}
		return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
	case ast.Option:
		return fmt.Sprintf("%s | undefined", g.printTy(iface, t.Elem))
	case ast.Result:
		ok, errT := "void", "void"
		if t.Ok != nil {
			ok = g.printTy(iface, t.Ok)
		}
		if t.Err != nil {
			errT = g.printTy(iface, t.Err)
		}
		return fmt.Sprintf("{ ok: %s } | { err: %s }", ok, errT)
	case ast.Id:
		def := iface.TypeDefs.Get(t.Ref)
		return strcase.UpperCamelCase(def.Name)
	default:
		panic(fmt.Sprintf("guestts: unhandled Type %T", t))
	}
}
