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

package parser

// rawTypeDef is a type definition as collected during the first parsing
// pass, before its body's type references are resolved.
type rawTypeDef struct {
	name   string
	offset int
	docs   []string
	kind   rawTypeDefKind
}

type rawTypeDefKind interface {
	isRawTypeDefKind()
}

type (
	rawAlias struct{ ty rawType }
	rawRecord struct{ fields []rawRecordField }
	rawFlags  struct{ fields []rawFlagsField }
	rawVariant struct{ cases []rawVariantCase }
	rawEnum    struct{ cases []rawEnumCase }
	rawUnion   struct{ cases []rawUnionCase }
	rawResourceDef struct{ methods []rawFunction }
)

func (rawAlias) isRawTypeDefKind()      {}
func (rawRecord) isRawTypeDefKind()     {}
func (rawFlags) isRawTypeDefKind()      {}
func (rawVariant) isRawTypeDefKind()    {}
func (rawEnum) isRawTypeDefKind()       {}
func (rawUnion) isRawTypeDefKind()      {}
func (rawResourceDef) isRawTypeDefKind() {}

type rawRecordField struct {
	name   string
	offset int
	ty     rawType
	docs   []string
}

type rawFlagsField struct {
	name   string
	offset int
	docs   []string
}

type rawVariantCase struct {
	name   string
	offset int
	ty     rawType // nil when the case carries no payload
	docs   []string
}

type rawEnumCase struct {
	name   string
	offset int
	docs   []string
}

type rawUnionCase struct {
	ty   rawType
	docs []string
}

type rawFunction struct {
	name   string
	offset int
	params []rawParam
	result *rawFunctionResult
	docs   []string
}

type rawParam struct {
	name   string
	offset int
	ty     rawType
}

type rawFunctionResult struct {
	anon  rawType
	named []rawParam
}
