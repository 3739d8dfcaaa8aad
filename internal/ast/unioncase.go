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

package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stoewer/go-strcase"
)

// UnionCaseNames returns a stable, human-readable UpperCamelCase name for
// each case of a Union, derived structurally from its member type.
// Collisions (two cases that render to the same structural name) are
// disambiguated by appending the case's ordinal.
//
// The result is deterministic for a fixed arena and case list: calling
// this twice with the same inputs always returns the same names.
func UnionCaseNames(iface *Interface, cases []UnionCase) []string {
	names := make([]string, len(cases))
	seen := make(map[string]int, len(cases))
	for i, c := range cases {
		names[i] = typeCamelName(iface, c.Type)
		seen[names[i]]++
	}

	for i, name := range names {
		if seen[name] <= 1 {
			continue
		}
		names[i] = name + strconv.Itoa(i)
	}
	return names
}

// typeCamelName renders t as an UpperCamelCase structural name, suitable
// both for synthesized union-case names and for naming generic helper
// instantiations (e.g. a "ListString" serde helper).
func typeCamelName(iface *Interface, t Type) string {
	switch t := t.(type) {
	case Bool:
		return "Bool"
	case Uint:
		return "U" + strconv.Itoa(t.Width.Bits())
	case Int:
		return "S" + strconv.Itoa(t.Width.Bits())
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	case Char:
		return "Char"
	case String:
		return "String"
	case List:
		if IsBytes(t) {
			return "Bytes"
		}
		return "List" + typeCamelName(iface, t.Elem)
	case Tuple:
		var b strings.Builder
		b.WriteString("Tuple")
		for _, e := range t.Elems {
			b.WriteString(typeCamelName(iface, e))
		}
		return b.String()
	case Option:
		return "Option" + typeCamelName(iface, t.Elem)
	case Result:
		ok, errT := "Unit", "Unit"
		if t.Ok != nil {
			ok = typeCamelName(iface, t.Ok)
		}
		if t.Err != nil {
			errT = typeCamelName(iface, t.Err)
		}
		return "Result" + ok + errT
	case Id:
		def := iface.TypeDefs.Get(t.Ref)
		return strcase.UpperCamelCase(def.Name)
	default:
		panic(fmt.Sprintf("ast: unhandled Type %T", t))
	}
}
