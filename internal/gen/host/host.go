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

// Package host emits the host-side Rust binding: a trait of methods
// mirroring the interface's functions, and an add_to_router function
// that registers each one against the IPC router under the interface's
// namespace.
package host

import (
	"fmt"
	"strings"

	"github.com/stoewer/go-strcase"

	"github.com/webviewrpc/bindgen/internal/ast"
)

// Options configures [New].
type Options struct {
	// Async selects between sync handler methods (func_wrap) and async
	// ones (func_wrap_async), matching whichever calling convention the
	// router supports on the target this binding is generated for.
	Async bool
	// Tracing wraps each handler closure body in
	// tracing::instrument::Instrument::in_current_span, so it runs inside
	// the caller's current span; no new span is created.
	Tracing bool
}

// Bundle is the subset of *bindgen.FileBundle every emitter depends on.
type Bundle interface {
	Insert(path string, contents []byte) error
}

// Generator renders an Interface to a single Rust source file.
type Generator struct {
	opts Options
}

// New returns a Generator configured by opts.
func New(opts Options) *Generator { return &Generator{opts: opts} }

// Generate writes "<interface-name>.rs" into out.
func (g *Generator) Generate(worldName string, iface *ast.Interface, out Bundle, hash uint64) error {
	modName := strcase.SnakeCase(worldName)

	var b strings.Builder
	fmt.Fprintf(&b, "#[allow(unused_imports, unused_variables, dead_code)]\n")
	fmt.Fprintf(&b, "#[rustfmt::skip]\n")
	fmt.Fprintf(&b, "pub mod %s {\n", modName)
	fmt.Fprintf(&b, "    use ::tauri_bindgen_host::serde;\n")
	fmt.Fprintf(&b, "    use ::tauri_bindgen_host::bitflags;\n")

	for _, def := range iface.TypeDefs.All {
		b.WriteString(g.printTypeDef(iface, def))
	}

	traitName := strcase.UpperCamelCase(worldName)
	fmt.Fprintf(&b, "    pub trait %s: Sized {\n", traitName)
	for _, fn := range iface.Functions {
		b.WriteString(g.printTraitMethod(iface, fn))
	}
	fmt.Fprintf(&b, "    }\n")

	b.WriteString(g.printAddToRouter(iface, modName, traitName))
	fmt.Fprintf(&b, "}\n")

	filename := modName + ".rs"
	return out.Insert(filename, []byte(b.String()))
}

func (g *Generator) printTypeDef(iface *ast.Interface, def *ast.TypeDef) string {
	ident := strcase.UpperCamelCase(def.Name)
	const derive = "    #[derive(Clone, Debug, serde::Serialize, serde::Deserialize)]\n"

	switch kind := def.Kind.(type) {
	case ast.Alias:
		return fmt.Sprintf("    pub type %s = %s;\n", ident, g.printTy(iface, kind.Type))

	case ast.Record:
		var fields strings.Builder
		for _, f := range kind.Fields {
			fmt.Fprintf(&fields, "        pub %s: %s,\n", strcase.SnakeCase(f.Name), g.printTy(iface, f.Type))
		}
		return fmt.Sprintf("%s    pub struct %s {\n%s    }\n", derive, ident, fields.String())

	case ast.Flags:
		w, _ := ast.FlagsWidth(len(kind.Fields))
		var fields strings.Builder
		for i, f := range kind.Fields {
			fmt.Fprintf(&fields, "            const %s = 1 << %d;\n", strings.ToUpper(strcase.SnakeCase(f.Name)), i)
		}
		return fmt.Sprintf(
			"    bitflags::bitflags! {\n%s        pub struct %s: u%d {\n%s        }\n    }\n",
			derive, ident, w.Bits(), fields.String(),
		)

	case ast.Variant:
		var cases strings.Builder
		for _, c := range kind.Cases {
			caseIdent := strcase.UpperCamelCase(c.Name)
			if c.Type == nil {
				fmt.Fprintf(&cases, "        %s,\n", caseIdent)
				continue
			}
			fmt.Fprintf(&cases, "        %s(%s),\n", caseIdent, g.printTy(iface, c.Type))
		}
		return fmt.Sprintf("%s    pub enum %s {\n%s    }\n", derive, ident, cases.String())

	case ast.Enum:
		var cases strings.Builder
		for _, c := range kind.Cases {
			fmt.Fprintf(&cases, "        %s,\n", strcase.UpperCamelCase(c.Name))
		}
		return fmt.Sprintf("%s    pub enum %s {\n%s    }\n", derive, ident, cases.String())

	case ast.Union:
		names := ast.UnionCaseNames(iface, kind.Cases)
		var cases strings.Builder
		for i, c := range kind.Cases {
			fmt.Fprintf(&cases, "        %s(%s),\n", names[i], g.printTy(iface, c.Type))
		}
		return fmt.Sprintf("%s    pub enum %s {\n%s    }\n", derive, ident, cases.String())

	case ast.Resource:
		// An opaque handle: the host owns the real value behind an id.
		// Only the handle type is emitted; the resource's Methods appear
		// neither in the trait nor in add_to_router.
		return fmt.Sprintf("    pub struct %s(pub u32);\n", ident)

	default:
		panic(fmt.Sprintf("host: unhandled TypeDefKind %T", kind))
	}
}

func (g *Generator) printTraitMethod(iface *ast.Interface, fn ast.Function) string {
	docs := printDocs(fn.Docs, "        ")
	params := make([]string, 0, len(fn.Params)+1)
	params = append(params, "&self")
	for _, p := range fn.Params {
		params = append(params, fmt.Sprintf("%s: %s", strcase.SnakeCase(p.Name), g.printTy(iface, p.Type)))
	}
	ret := g.printResult(iface, fn.Result)
	return fmt.Sprintf("%s        fn %s(%s)%s;\n", docs, strcase.SnakeCase(fn.Name), strings.Join(params, ", "), ret)
}

func (g *Generator) printResult(iface *ast.Interface, result *ast.FunctionResult) string {
	if result == nil {
		return ""
	}
	if result.IsAnon() {
		return fmt.Sprintf(" -> %s", g.printTy(iface, result.Anon))
	}
	parts := make([]string, len(result.Named))
	for i, p := range result.Named {
		parts[i] = g.printTy(iface, p.Type)
	}
	return fmt.Sprintf(" -> (%s)", strings.Join(parts, ", "))
}

func (g *Generator) printAddToRouter(iface *ast.Interface, modName, traitName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "    pub fn add_to_router<T, U>(\n")
	fmt.Fprintf(&b, "        router: &mut ::tauri_bindgen_host::ipc_router_wip::Router<T>,\n")
	fmt.Fprintf(&b, "        get_cx: impl Fn(&T) -> &U + Send + Sync + 'static,\n")
	fmt.Fprintf(&b, "    ) -> Result<(), ::tauri_bindgen_host::ipc_router_wip::Error>\n")
	fmt.Fprintf(&b, "    where\n")
	fmt.Fprintf(&b, "        T: Send + Sync + 'static,\n")
	fmt.Fprintf(&b, "        U: %s + Send + Sync + 'static,\n", traitName)
	fmt.Fprintf(&b, "    {\n")
	fmt.Fprintf(&b, "        let wrapped_get_cx = ::std::sync::Arc::new(get_cx);\n")

	define := "func_wrap"
	if g.opts.Async {
		define = "func_wrap_async"
	}

	for _, fn := range iface.Functions {
		fnName := strcase.SnakeCase(fn.Name)
		fmt.Fprintf(&b, "        let get_cx = ::std::sync::Arc::clone(&wrapped_get_cx);\n")
		fmt.Fprintf(&b, "        router\n")
		fmt.Fprintf(&b, "            .%s(\n", define)
		fmt.Fprintf(&b, "                %q,\n", modName)
		fmt.Fprintf(&b, "                %q,\n", fnName)

		argPattern, args := g.printCallArgs(fn.Params)
		body := fmt.Sprintf("Ok(ctx.%s(%s))", fnName, args)
		if g.opts.Tracing {
			body = fmt.Sprintf("::tracing::instrument::Instrument::in_current_span(async { %s }).await", body)
		}

		fmt.Fprintf(&b, "                move |ctx: ::tauri_bindgen_host::ipc_router_wip::Caller<T>, p: %s| {\n", argPattern.ty)
		fmt.Fprintf(&b, "                    let ctx = get_cx(ctx.data());\n")
		fmt.Fprintf(&b, "                    %s\n", body)
		fmt.Fprintf(&b, "                },\n")
		fmt.Fprintf(&b, "            )?;\n")
	}

	fmt.Fprintf(&b, "        Ok(())\n")
	fmt.Fprintf(&b, "    }\n")
	return b.String()
}

type argShape struct{ ty string }

func (g *Generator) printCallArgs(params []ast.Param) (argShape, string) {
	switch len(params) {
	case 0:
		return argShape{ty: "()"}, ""
	case 1:
		return argShape{ty: "_"}, "p"
	default:
		parts := make([]string, len(params))
		for i := range params {
			parts[i] = fmt.Sprintf("p.%d", i)
		}
		tyParts := make([]string, len(params))
		for i := range params {
			tyParts[i] = "_"
		}
		return argShape{ty: fmt.Sprintf("(%s)", strings.Join(tyParts, ", "))}, strings.Join(parts, ", ")
	}
}

func (g *Generator) printTy(iface *ast.Interface, t ast.Type) string {
	switch t := t.(type) {
	case ast.Bool:
		return "bool"
	case ast.Uint:
		return fmt.Sprintf("u%d", t.Width.Bits())
	case ast.Int:
		return fmt.Sprintf("i%d", t.Width.Bits())
	case ast.Float32:
		return "f32"
	case ast.Float64:
		return "f64"
	case ast.Char:
		return "char"
	case ast.String:
		return "String"
	case ast.List:
		if ast.IsBytes(t) {
			return "Vec<u8>"
		}
		return fmt.Sprintf("Vec<%s>", g.printTy(iface, t.Elem))
	case ast.Tuple:
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = g.printTy(iface, e)
		}
		return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
	case ast.Option:
		return fmt.Sprintf("Option<%s>", g.printTy(iface, t.Elem))
	case ast.Result:
		ok, errT := "()", "()"
		if t.Ok != nil {
			ok = g.printTy(iface, t.Ok)
		}
		if t.Err != nil {
			errT = g.printTy(iface, t.Err)
		}
		return fmt.Sprintf("Result<%s, %s>", ok, errT)
	case ast.Id:
		def := iface.TypeDefs.Get(t.Ref)
		return strcase.UpperCamelCase(def.Name)
	default:
		panic(fmt.Sprintf("host: unhandled Type %T", t))
	}
}

func printDocs(docs []string, indent string) string {
	if len(docs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, l := range docs {
		fmt.Fprintf(&b, "%s///%s\n", indent, l)
	}
	return b.String()
}
