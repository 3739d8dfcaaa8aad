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

// Package serde solves, for a single interface, which primitive codec
// helpers an emitted artifact needs: a bitset closed under the
// composition rules a value's shape implies (a char needs a u64 varint
// helper and the string-utility text encoder/decoder, a list needs a
// u64 length prefix, and so on).
package serde

import "github.com/webviewrpc/bindgen/internal/ast"

// Capabilities is a bitset of primitive codec helpers that some emitted
// artifact requires, closed under the OR-implication rules in [Close].
// Rather than have every emitter independently track which helpers it
// has already referenced, [CollectFromFunctions] produces one bitset per
// artifact and each emitter renders its snippets in a fixed, capability-
// gated order.
type Capabilities uint32

const (
	CapBool Capabilities = 1 << iota
	CapU8
	CapU16
	CapU32
	CapU64
	CapU128
	CapS8
	CapS16
	CapS32
	CapS64
	CapS128
	CapUnsigned
	CapSigned
	CapVarint
	CapVarintMax
	CapFloat32
	CapFloat64
	CapChar
	CapString
	CapBytes
	CapOption
	CapResult
	CapList
	CapStrUtil
	CapSer
	CapDe
)

// Has reports whether every bit in want is set in c.
func (c Capabilities) Has(want Capabilities) bool { return c&want == want }

// Close applies the composition rules from the serde-capability solver
// to a fixpoint: every bit that some other set bit implies is added,
// repeatedly, until nothing changes. Because every rule only ever adds
// bits, and the alphabet is finite, this always terminates.
func (c Capabilities) Close() Capabilities {
	for {
		next := c
		if c.Has(CapChar) {
			next |= CapU64 | CapStrUtil
		}
		if c.Has(CapString) {
			next |= CapU64 | CapStrUtil
		}
		if c.Has(CapBytes) {
			next |= CapU64
		}
		if c.Has(CapList) {
			next |= CapU64
		}
		if c.Has(CapOption) {
			next |= CapU32
		}
		if c.Has(CapResult) {
			next |= CapU32
		}
		if c&(CapU8|CapU16|CapU32|CapU64|CapU128) != 0 {
			next |= CapVarint | CapUnsigned
		}
		if c&(CapS8|CapS16|CapS32|CapS64|CapS128) != 0 {
			next |= CapVarint | CapSigned
		}
		if c.Has(CapVarint) {
			next |= CapVarintMax
		}

		if next == c {
			return c
		}
		c = next
	}
}

// direction records whether a type was reached through a function
// parameter (serialized by the guest, deserialized by the host — SER)
// or a function result (the reverse — DE).
type direction int

const (
	dirSer direction = iota
	dirDe
)

// CollectFromFunctions walks every parameter type and result type of
// every function in iface (including resource methods), threading
// through typedef bodies transitively, and returns the closed
// capability bitset the emitted artifact needs.
func CollectFromFunctions(iface *ast.Interface) Capabilities {
	var caps Capabilities
	visited := make(map[ast.TypeDefId]bool)

	walkFn := func(fn ast.Function) {
		for _, p := range fn.Params {
			caps |= CapSer
			collectType(iface, p.Type, &caps, visited)
		}
		if fn.Result != nil {
			caps |= CapDe
			if fn.Result.IsAnon() {
				collectType(iface, fn.Result.Anon, &caps, visited)
			} else {
				for _, p := range fn.Result.Named {
					collectType(iface, p.Type, &caps, visited)
				}
			}
		}
	}

	for _, fn := range iface.Functions {
		walkFn(fn)
	}
	for _, def := range iface.TypeDefs.All {
		if res, ok := def.Kind.(ast.Resource); ok {
			for _, fn := range res.Methods {
				walkFn(fn)
			}
		}
	}

	return caps.Close()
}

func collectType(iface *ast.Interface, t ast.Type, caps *Capabilities, visited map[ast.TypeDefId]bool) {
	if t == nil {
		return
	}
	switch t := t.(type) {
	case ast.Bool:
		*caps |= CapBool
	case ast.Uint:
		*caps |= widthCap(t.Width, false)
	case ast.Int:
		*caps |= widthCap(t.Width, true)
	case ast.Float32:
		*caps |= CapFloat32
	case ast.Float64:
		*caps |= CapFloat64
	case ast.Char:
		*caps |= CapChar
	case ast.String:
		*caps |= CapString
	case ast.List:
		if ast.IsBytes(t) {
			*caps |= CapBytes
			return
		}
		*caps |= CapList
		collectType(iface, t.Elem, caps, visited)
	case ast.Tuple:
		for _, e := range t.Elems {
			collectType(iface, e, caps, visited)
		}
	case ast.Option:
		*caps |= CapOption
		collectType(iface, t.Elem, caps, visited)
	case ast.Result:
		*caps |= CapResult
		collectType(iface, t.Ok, caps, visited)
		collectType(iface, t.Err, caps, visited)
	case ast.Id:
		collectTypeDef(iface, t.Ref, caps, visited)
	}
}

func collectTypeDef(iface *ast.Interface, id ast.TypeDefId, caps *Capabilities, visited map[ast.TypeDefId]bool) {
	if visited[id] {
		return
	}
	visited[id] = true

	def := iface.TypeDefs.Get(id)
	switch k := def.Kind.(type) {
	case ast.Alias:
		collectType(iface, k.Type, caps, visited)
	case ast.Record:
		for _, f := range k.Fields {
			collectType(iface, f.Type, caps, visited)
		}
	case ast.Flags:
		if w, ok := ast.FlagsWidth(len(k.Fields)); ok {
			*caps |= widthCap(w, false)
		}
	case ast.Variant:
		*caps |= CapU32
		for _, c := range k.Cases {
			collectType(iface, c.Type, caps, visited)
		}
	case ast.Enum:
		*caps |= CapU32
	case ast.Union:
		*caps |= CapU32
		for _, c := range k.Cases {
			collectType(iface, c.Type, caps, visited)
		}
	case ast.Resource:
		*caps |= CapU32
	}
}

func widthCap(w ast.Width, signed bool) Capabilities {
	switch {
	case signed:
		switch w {
		case ast.W8:
			return CapS8
		case ast.W16:
			return CapS16
		case ast.W32:
			return CapS32
		case ast.W64:
			return CapS64
		default:
			return CapS128
		}
	default:
		switch w {
		case ast.W8:
			return CapU8
		case ast.W16:
			return CapU16
		case ast.W32:
			return CapU32
		case ast.W64:
			return CapU64
		default:
			return CapU128
		}
	}
}
