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

import "github.com/webviewrpc/bindgen/internal/ast"

// TypeInfo is the per-TypeDef usage summary an emitter can consult to
// decide how to shape a type's generated declaration (for example,
// whether a guest-side type needs both an encoder and a decoder, or
// only one). None of the emitters under internal/gen reads it.
type TypeInfo struct {
	// ReadFrom is set if this type ever appears in a function result
	// (something the host serializes and the guest deserializes).
	ReadFrom bool
	// WrittenTo is set if this type ever appears in a function
	// parameter (something the guest serializes and the host
	// deserializes).
	WrittenTo bool
	// Optional is set if this type is ever wrapped in an Option.
	Optional bool
	// InList is set if this type is ever an element of a List.
	InList bool
	// InResult is set if this type is ever the Ok or Err payload of a
	// Result.
	InResult bool
	// IsResource is set if this type def is itself a Resource.
	IsResource bool
}

// TypeInfos maps every TypeDefId in an Interface's arena to its
// TypeInfo, computed once by [AnalyzeTypeInfo].
type TypeInfos map[ast.TypeDefId]*TypeInfo

func (infos TypeInfos) entry(id ast.TypeDefId) *TypeInfo {
	info, ok := infos[id]
	if !ok {
		info = &TypeInfo{}
		infos[id] = info
	}
	return info
}

// AnalyzeTypeInfo walks every function signature (including resource
// methods) and every typedef body reachable from one, and returns the
// usage-flag summary for each type definition touched. A TypeDef that
// no function signature ever reaches transitively (dead code in the
// IDL source) is absent from the result, except that every Resource
// typedef has an entry with IsResource set.
//
// log receives one line per function walked, tagged "typeinfo"; pass
// nil to discard it.
func AnalyzeTypeInfo(iface *ast.Interface, log LogSink) TypeInfos {
	infos := make(TypeInfos)
	visited := make(map[ast.TypeDefId]bool)

	walkFn := func(fn ast.Function, written, read bool) {
		log.log("typeinfo", "walking function "+fn.Name)
		for _, p := range fn.Params {
			analyzeType(iface, p.Type, infos, visited, true, false)
		}
		if fn.Result != nil {
			if fn.Result.IsAnon() {
				analyzeType(iface, fn.Result.Anon, infos, visited, false, true)
			} else {
				for _, p := range fn.Result.Named {
					analyzeType(iface, p.Type, infos, visited, false, true)
				}
			}
		}
	}

	for _, fn := range iface.Functions {
		walkFn(fn, true, true)
	}
	for id, def := range iface.TypeDefs.All {
		if res, ok := def.Kind.(ast.Resource); ok {
			infos.entry(id).IsResource = true
			for _, fn := range res.Methods {
				walkFn(fn, true, true)
			}
		}
	}

	return infos
}

func analyzeType(iface *ast.Interface, t ast.Type, infos TypeInfos, visited map[ast.TypeDefId]bool, written, read bool) {
	switch t := t.(type) {
	case ast.List:
		analyzeType(iface, t.Elem, infos, visited, written, read)
		if id, ok := t.Elem.(ast.Id); ok {
			infos.entry(id.Ref).InList = true
		}
	case ast.Option:
		analyzeType(iface, t.Elem, infos, visited, written, read)
		if id, ok := t.Elem.(ast.Id); ok {
			infos.entry(id.Ref).Optional = true
		}
	case ast.Result:
		if t.Ok != nil {
			analyzeType(iface, t.Ok, infos, visited, written, read)
			if id, ok := t.Ok.(ast.Id); ok {
				infos.entry(id.Ref).InResult = true
			}
		}
		if t.Err != nil {
			analyzeType(iface, t.Err, infos, visited, written, read)
			if id, ok := t.Err.(ast.Id); ok {
				infos.entry(id.Ref).InResult = true
			}
		}
	case ast.Tuple:
		for _, e := range t.Elems {
			analyzeType(iface, e, infos, visited, written, read)
		}
	case ast.Id:
		analyzeTypeDef(iface, t.Ref, infos, visited, written, read)
	}
}

func analyzeTypeDef(iface *ast.Interface, id ast.TypeDefId, infos TypeInfos, visited map[ast.TypeDefId]bool, written, read bool) {
	info := infos.entry(id)
	if written {
		info.WrittenTo = true
	}
	if read {
		info.ReadFrom = true
	}
	if visited[id] {
		return
	}
	visited[id] = true

	def := iface.TypeDefs.Get(id)
	switch k := def.Kind.(type) {
	case ast.Alias:
		analyzeType(iface, k.Type, infos, visited, written, read)
	case ast.Record:
		for _, f := range k.Fields {
			analyzeType(iface, f.Type, infos, visited, written, read)
		}
	case ast.Variant:
		for _, c := range k.Cases {
			if c.Type != nil {
				analyzeType(iface, c.Type, infos, visited, written, read)
			}
		}
	case ast.Union:
		for _, c := range k.Cases {
			analyzeType(iface, c.Type, infos, visited, written, read)
		}
	case ast.Resource:
		info.IsResource = true
		for _, fn := range k.Methods {
			for _, p := range fn.Params {
				analyzeType(iface, p.Type, infos, visited, true, false)
			}
			if fn.Result != nil {
				if fn.Result.IsAnon() {
					analyzeType(iface, fn.Result.Anon, infos, visited, false, true)
				} else {
					for _, p := range fn.Result.Named {
						analyzeType(iface, p.Type, infos, visited, false, true)
					}
				}
			}
		}
	}
}
