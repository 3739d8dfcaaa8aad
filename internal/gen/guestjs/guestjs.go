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

// Package guestjs emits a plain-JavaScript guest module for hosts that
// can't carry a TypeScript build step: hand-rolled (de)serializer
// functions for every type definition, a bundled set of primitive codec
// helper snippets selected by capability, and one invoke-wrapping
// function per IDL function.
package guestjs

import (
	"embed"
	"fmt"
	"strings"

	"github.com/stoewer/go-strcase"

	"github.com/webviewrpc/bindgen/internal/ast"
	"github.com/webviewrpc/bindgen/internal/serde"
)

//go:embed snippets/*.js
var snippetsFS embed.FS

func snippet(name string) string {
	b, err := snippetsFS.ReadFile("snippets/" + name)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// Options configures [New]. Neither field changes a single byte of the
// emitted output; both exist so the caller can record which
// post-processor it intends to run on the result.
type Options struct {
	Prettier bool
	Romefmt  bool
}

// Bundle is the subset of *bindgen.FileBundle every emitter depends on.
type Bundle interface {
	Insert(path string, contents []byte) error
}

// Generator renders an Interface to a single .js file.
type Generator struct {
	opts Options
}

// New returns a Generator configured by opts.
func New(opts Options) *Generator { return &Generator{opts: opts} }

// Generate writes "<interface-name>.js" into out.
func (g *Generator) Generate(worldName string, iface *ast.Interface, out Bundle, hash uint64) error {
	caps := serde.CollectFromFunctions(iface)

	var b strings.Builder
	b.WriteString(g.printSerdeUtils(caps))

	for _, def := range iface.TypeDefs.All {
		if _, ok := def.Kind.(ast.Resource); ok {
			continue
		}
		b.WriteString(g.printSerializeTypeDef(iface, def))
		b.WriteString("\n")
		b.WriteString(g.printDeserializeTypeDef(iface, def))
		b.WriteString("\n")
	}

	for _, fn := range iface.Functions {
		b.WriteString(g.printFunction(iface, worldName, fn))
		b.WriteString("\n")
	}

	filename := strcase.KebabCase(worldName) + ".js"
	return out.Insert(filename, []byte(b.String()))
}

// printSerdeUtils assembles the bundled helper snippets in the same
// fixed order the capability bitset was closed in: the Deserializer
// and Serializer classes unconditionally, then varint support, then each primitive
// deserializer, then each primitive serializer, then the shared
// text-codec singletons.
func (g *Generator) printSerdeUtils(caps serde.Capabilities) string {
	var b strings.Builder
	b.WriteString(snippet("deserializer.js"))
	b.WriteString(snippet("serializer.js"))

	if caps.Has(serde.CapVarintMax) {
		b.WriteString(snippet("varint_max.js"))
	}
	if caps.Has(serde.CapVarint | serde.CapDe) {
		b.WriteString(snippet("de_varint.js"))
	}
	if caps.Has(serde.CapBool | serde.CapDe) {
		b.WriteString(snippet("de_bool.js"))
	}

	type widthed struct {
		cap  serde.Capabilities
		name string
	}
	unsignedDe := []widthed{
		{serde.CapU8, "de_u8.js"}, {serde.CapU16, "de_u16.js"}, {serde.CapU32, "de_u32.js"},
		{serde.CapU64, "de_u64.js"}, {serde.CapU128, "de_u128.js"},
	}
	for _, w := range unsignedDe {
		if caps.Has(w.cap | serde.CapDe) {
			b.WriteString(snippet(w.name))
		}
	}
	signedDe := []widthed{
		{serde.CapS8, "de_s8.js"}, {serde.CapS16, "de_s16.js"}, {serde.CapS32, "de_s32.js"},
		{serde.CapS64, "de_s64.js"}, {serde.CapS128, "de_s128.js"},
	}
	for _, w := range signedDe {
		if caps.Has(w.cap | serde.CapDe) {
			b.WriteString(snippet(w.name))
		}
	}
	if caps.Has(serde.CapFloat32 | serde.CapDe) {
		b.WriteString(snippet("de_f32.js"))
	}
	if caps.Has(serde.CapFloat64 | serde.CapDe) {
		b.WriteString(snippet("de_f64.js"))
	}
	if caps.Has(serde.CapChar | serde.CapDe) {
		b.WriteString(snippet("de_char.js"))
	}
	if caps.Has(serde.CapString | serde.CapDe) {
		b.WriteString(snippet("de_string.js"))
	}
	if caps.Has(serde.CapBytes | serde.CapDe) {
		b.WriteString(snippet("de_bytes.js"))
	}
	if caps.Has(serde.CapOption | serde.CapDe) {
		b.WriteString(snippet("de_option.js"))
	}
	if caps.Has(serde.CapResult | serde.CapDe) {
		b.WriteString(snippet("de_result.js"))
	}
	if caps.Has(serde.CapList | serde.CapDe) {
		b.WriteString(snippet("de_list.js"))
	}

	if caps.Has(serde.CapVarint | serde.CapSer) {
		b.WriteString(snippet("ser_varint.js"))
	}
	if caps.Has(serde.CapBool | serde.CapSer) {
		b.WriteString(snippet("ser_bool.js"))
	}
	unsignedSer := []widthed{
		{serde.CapU8, "ser_u8.js"}, {serde.CapU16, "ser_u16.js"}, {serde.CapU32, "ser_u32.js"},
		{serde.CapU64, "ser_u64.js"}, {serde.CapU128, "ser_u128.js"},
	}
	for _, w := range unsignedSer {
		if caps.Has(w.cap | serde.CapSer) {
			b.WriteString(snippet(w.name))
		}
	}
	signedSer := []widthed{
		{serde.CapS8, "ser_s8.js"}, {serde.CapS16, "ser_s16.js"}, {serde.CapS32, "ser_s32.js"},
		{serde.CapS64, "ser_s64.js"}, {serde.CapS128, "ser_s128.js"},
	}
	for _, w := range signedSer {
		if caps.Has(w.cap | serde.CapSer) {
			b.WriteString(snippet(w.name))
		}
	}
	if caps.Has(serde.CapFloat32 | serde.CapSer) {
		b.WriteString(snippet("ser_f32.js"))
	}
	if caps.Has(serde.CapFloat64 | serde.CapSer) {
		b.WriteString(snippet("ser_f64.js"))
	}
	if caps.Has(serde.CapChar | serde.CapSer) {
		b.WriteString(snippet("ser_char.js"))
	}
	if caps.Has(serde.CapString | serde.CapSer) {
		b.WriteString(snippet("ser_string.js"))
	}
	if caps.Has(serde.CapBytes | serde.CapSer) {
		b.WriteString(snippet("ser_bytes.js"))
	}
	if caps.Has(serde.CapOption | serde.CapSer) {
		b.WriteString(snippet("ser_option.js"))
	}
	if caps.Has(serde.CapResult | serde.CapSer) {
		b.WriteString(snippet("ser_result.js"))
	}
	if caps.Has(serde.CapList | serde.CapSer) {
		b.WriteString(snippet("ser_list.js"))
	}

	if caps.Has(serde.CapStrUtil | serde.CapDe) {
		b.WriteString("const __text_decoder = new TextDecoder('utf-8');\n")
	}
	if caps.Has(serde.CapStrUtil | serde.CapSer) {
		b.WriteString("const __text_encoder = new TextEncoder();\n")
	}

	return b.String()
}

func flagsHelperSuffix(w ast.Width) string {
	switch w {
	case ast.W8:
		return "U8"
	case ast.W16:
		return "U16"
	case ast.W32:
		return "U32"
	case ast.W64:
		return "U64"
	default:
		return "U128"
	}
}

func (g *Generator) printDeserializeTy(iface *ast.Interface, t ast.Type) string {
	switch t := t.(type) {
	case ast.Bool:
		return "deserializeBool(de)"
	case ast.Uint:
		return fmt.Sprintf("deserializeU%d(de)", t.Width.Bits())
	case ast.Int:
		return fmt.Sprintf("deserializeS%d(de)", t.Width.Bits())
	case ast.Float32:
		return "deserializeF32(de)"
	case ast.Float64:
		return "deserializeF64(de)"
	case ast.Char:
		return "deserializeChar(de)"
	case ast.String:
		return "deserializeString(de)"
	case ast.Tuple:
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = g.printDeserializeTy(iface, e)
		}
		return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
	case ast.List:
		if ast.IsBytes(t) {
			return "deserializeBytes(de)"
		}
		inner := g.printDeserializeTy(iface, t.Elem)
		return fmt.Sprintf("deserializeList(de, (de) => %s)", inner)
	case ast.Option:
		inner := g.printDeserializeTy(iface, t.Elem)
		return fmt.Sprintf("deserializeOption(de, (de) => %s)", inner)
	case ast.Result:
		ok := "() => {}"
		if t.Ok != nil {
			ok = fmt.Sprintf("(de) => %s", g.printDeserializeTy(iface, t.Ok))
		}
		errFn := "() => {}"
		if t.Err != nil {
			errFn = fmt.Sprintf("(de) => %s", g.printDeserializeTy(iface, t.Err))
		}
		return fmt.Sprintf("deserializeResult(de, %s, %s)", ok, errFn)
	case ast.Id:
		def := iface.TypeDefs.Get(t.Ref)
		ident := strcase.UpperCamelCase(def.Name)
		if _, ok := def.Kind.(ast.Resource); ok {
			return fmt.Sprintf("%s.deserialize(de)", ident)
		}
		return fmt.Sprintf("deserialize%s(de)", ident)
	default:
		panic(fmt.Sprintf("guestjs: unhandled Type %T", t))
	}
}

func (g *Generator) printDeserializeTypeDef(iface *ast.Interface, def *ast.TypeDef) string {
	ident := strcase.UpperCamelCase(def.Name)

	switch kind := def.Kind.(type) {
	case ast.Alias:
		inner := g.printDeserializeTy(iface, kind.Type)
		return fmt.Sprintf("function deserialize%s(de) {\n    return %s\n}", ident, inner)

	case ast.Record:
		fields := make([]string, len(kind.Fields))
		for i, f := range kind.Fields {
			fields[i] = fmt.Sprintf("%s: %s", strcase.LowerCamelCase(f.Name), g.printDeserializeTy(iface, f.Type))
		}
		return fmt.Sprintf("function deserialize%s(de) {\n    return {\n        %s\n    }\n}", ident, strings.Join(fields, ",\n        "))

	case ast.Flags:
		w, _ := ast.FlagsWidth(len(kind.Fields))
		return fmt.Sprintf("function deserialize%s(de) {\n    return deserialize%s(de)\n}", ident, flagsHelperSuffix(w))

	case ast.Variant:
		var cases strings.Builder
		for tag, c := range kind.Cases {
			inner := "null"
			if c.Type != nil {
				inner = g.printDeserializeTy(iface, c.Type)
			}
			fmt.Fprintf(&cases, "case %d:\n    return { %s: %s }\n", tag, strcase.UpperCamelCase(c.Name), inner)
		}
		return fmt.Sprintf("function deserialize%s(de) {\n    const tag = deserializeU32(de)\n\n    switch (tag) {\n        %s\n        default:\n            throw new Error(`unknown variant case ${tag}`)\n    }\n}", ident, cases.String())

	case ast.Enum:
		var cases strings.Builder
		for tag, c := range kind.Cases {
			fmt.Fprintf(&cases, "case %d:\n    return \"%s\"\n", tag, strcase.UpperCamelCase(c.Name))
		}
		return fmt.Sprintf("function deserialize%s(de) {\n    const tag = deserializeU32(de)\n\n    switch (tag) {\n        %s\n        default:\n            throw new Error(`unknown enum case ${tag}`)\n    }\n}", ident, cases.String())

	case ast.Union:
		names := ast.UnionCaseNames(iface, kind.Cases)
		var cases strings.Builder
		for tag, c := range kind.Cases {
			inner := g.printDeserializeTy(iface, c.Type)
			fmt.Fprintf(&cases, "case %d:\n    return { %s: %s }\n", tag, names[tag], inner)
		}
		return fmt.Sprintf("function deserialize%s(de) {\n    const tag = deserializeU32(de)\n\n    switch (tag) {\n        %s\n        default:\n            throw new Error(`unknown union case ${tag}`)\n    }\n}", ident, cases.String())

	case ast.Resource:
		return ""

	default:
		panic(fmt.Sprintf("guestjs: unhandled TypeDefKind %T", kind))
	}
}

func (g *Generator) printSerializeTy(iface *ast.Interface, ident string, t ast.Type) string {
	switch t := t.(type) {
	case ast.Bool:
		return fmt.Sprintf("serializeBool(out, %s)", ident)
	case ast.Uint:
		return fmt.Sprintf("serializeU%d(out, %s)", t.Width.Bits(), ident)
	case ast.Int:
		return fmt.Sprintf("serializeS%d(out, %s)", t.Width.Bits(), ident)
	case ast.Float32:
		return fmt.Sprintf("serializeF32(out, %s)", ident)
	case ast.Float64:
		return fmt.Sprintf("serializeF64(out, %s)", ident)
	case ast.Char:
		return fmt.Sprintf("serializeChar(out, %s)", ident)
	case ast.String:
		return fmt.Sprintf("serializeString(out, %s)", ident)
	case ast.List:
		if ast.IsBytes(t) {
			return fmt.Sprintf("serializeBytes(out, %s)", ident)
		}
		inner := g.printSerializeTy(iface, "v", t.Elem)
		return fmt.Sprintf("serializeList(out, (out, v) => %s, %s)", inner, ident)
	case ast.Tuple:
		if len(t.Elems) == 0 {
			return "{}"
		}
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = g.printSerializeTy(iface, fmt.Sprintf("%s[%d]", ident, i), e)
		}
		return fmt.Sprintf("{%s}", strings.Join(parts, ";"))
	case ast.Option:
		inner := g.printSerializeTy(iface, "v", t.Elem)
		return fmt.Sprintf("serializeOption(out, (out, v) => %s, %s)", inner, ident)
	case ast.Result:
		ok := "{}"
		if t.Ok != nil {
			ok = g.printSerializeTy(iface, "v", t.Ok)
		}
		errFn := "{}"
		if t.Err != nil {
			errFn = g.printSerializeTy(iface, "v", t.Err)
		}
		return fmt.Sprintf("serializeResult(out, (out, v) => %s, (out, v) => %s, %s)", ok, errFn, ident)
	case ast.Id:
		def := iface.TypeDefs.Get(t.Ref)
		if _, ok := def.Kind.(ast.Resource); ok {
			return fmt.Sprintf("%s.serialize(out)", ident)
		}
		return fmt.Sprintf("serialize%s(out, %s)", strcase.UpperCamelCase(def.Name), ident)
	default:
		panic(fmt.Sprintf("guestjs: unhandled Type %T", t))
	}
}

func (g *Generator) printSerializeTypeDef(iface *ast.Interface, def *ast.TypeDef) string {
	ident := strcase.UpperCamelCase(def.Name)

	switch kind := def.Kind.(type) {
	case ast.Alias:
		inner := g.printSerializeTy(iface, "val", kind.Type)
		return fmt.Sprintf("function serialize%s(out, val) {\n    %s\n}", ident, inner)

	case ast.Record:
		fields := make([]string, len(kind.Fields))
		for i, f := range kind.Fields {
			fields[i] = g.printSerializeTy(iface, "val."+strcase.LowerCamelCase(f.Name), f.Type)
		}
		return fmt.Sprintf("function serialize%s(out, val) {\n    %s\n}", ident, strings.Join(fields, ",\n    "))

	case ast.Flags:
		w, _ := ast.FlagsWidth(len(kind.Fields))
		return fmt.Sprintf("function serialize%s(out, val) {\n    return serialize%s(out, val)\n}", ident, flagsHelperSuffix(w))

	case ast.Variant:
		var cases strings.Builder
		for tag, c := range kind.Cases {
			propAccess := "val." + strcase.UpperCamelCase(c.Name)
			inner := ""
			if c.Type != nil {
				inner = g.printSerializeTy(iface, propAccess, c.Type)
			}
			// TODO: this tests truthiness of the case payload, not its
			// presence; a falsy payload (0, "", false) picks the wrong
			// case. Replace with an explicit `in`/hasOwnProperty check.
			fmt.Fprintf(&cases, "if (%s) {\n    serializeU32(out, %d);\n    %s\n\n    return\n}\n", propAccess, tag, inner)
		}
		return fmt.Sprintf("function serialize%s(out, val) {\n    %s\n\n    throw new Error(\"unknown variant case\")\n}", ident, cases.String())

	case ast.Enum:
		var cases strings.Builder
		for tag, c := range kind.Cases {
			fmt.Fprintf(&cases, "case \"%s\":\n    serializeU32(out, %d)\n    return\n", strcase.UpperCamelCase(c.Name), tag)
		}
		return fmt.Sprintf("function serialize%s(out, val) {\n    switch (val) {\n        %s\n        default:\n            throw new Error(\"unknown enum case\")\n    }\n}", ident, cases.String())

	case ast.Union:
		names := ast.UnionCaseNames(iface, kind.Cases)
		var cases strings.Builder
		for tag, c := range kind.Cases {
			propAccess := "val." + names[tag]
			inner := g.printSerializeTy(iface, propAccess, c.Type)
			// TODO: same truthiness caveat as the variant serializer above.
			fmt.Fprintf(&cases, "if (%s) {\n    serializeU32(out, %d);\n\n    return %s\n}\n", propAccess, tag, inner)
		}
		return fmt.Sprintf("function serialize%s(out, val) {\n    %s\n\n    throw new Error(\"unknown union case\")\n}", ident, cases.String())

	case ast.Resource:
		return ""

	default:
		panic(fmt.Sprintf("guestjs: unhandled TypeDefKind %T", kind))
	}
}

func (g *Generator) printFunction(iface *ast.Interface, worldName string, fn ast.Function) string {
	name := strcase.LowerCamelCase(fn.Name)

	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = strcase.LowerCamelCase(p.Name)
	}

	var serialize strings.Builder
	serialize.WriteString("    const out = new Serializer()\n")
	for _, p := range fn.Params {
		fmt.Fprintf(&serialize, "    %s\n", g.printSerializeTy(iface, strcase.LowerCamelCase(p.Name), p.Type))
	}

	deserialize := g.printDeserializeFunctionResult(iface, fn.Result)

	return fmt.Sprintf(
		"export function %s(%s) {\n%s    return fetch(%q, { method: 'POST', body: out.finish() })%s\n}",
		name, strings.Join(params, ", "), serialize.String(), "/ipc/"+worldName+"/"+fn.Name, deserialize,
	)
}

func (g *Generator) printDeserializeFunctionResult(iface *ast.Interface, result *ast.FunctionResult) string {
	if result == nil {
		return ""
	}
	if result.IsAnon() {
		inner := g.printDeserializeTy(iface, result.Anon)
		return fmt.Sprintf("\n        .then(r => r.arrayBuffer())\n        .then(bytes => {\n            const de = new Deserializer(new Uint8Array(bytes))\n\n            return %s\n        })", inner)
	}
	parts := make([]string, len(result.Named))
	for i, p := range result.Named {
		parts[i] = g.printDeserializeTy(iface, p.Type)
	}
	return fmt.Sprintf("\n        .then(r => r.arrayBuffer())\n        .then(bytes => {\n            const de = new Deserializer(Uint8Array.from(bytes))\n\n            return [%s]\n        })", strings.Join(parts, ", "))
}
