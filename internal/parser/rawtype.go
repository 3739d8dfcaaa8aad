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

// rawType is the type syntax as it comes out of the parser, before name
// resolution: named references are kept as bare identifiers (rawRef)
// since the TypeDef they name may not have been parsed yet. Once every
// declaration in the interface has been collected, resolve.go lowers a
// tree of rawType into the real ast.Type, replacing every rawRef with
// the ast.Id its name resolves to.
type rawType interface {
	isRawType()
}

type (
	rawBool    struct{}
	rawUint    struct{ width int }
	rawInt     struct{ width int }
	rawFloat32 struct{}
	rawFloat64 struct{}
	rawChar    struct{}
	rawString  struct{}
	rawList    struct{ elem rawType }
	rawTuple   struct{ elems []rawType }
	rawOption  struct{ elem rawType }
	// rawResult's ok/err are nil when that side used the `_` placeholder.
	rawResult struct{ ok, err rawType }
	rawRef    struct {
		name   string
		offset int
	}
)

func (rawBool) isRawType()    {}
func (rawUint) isRawType()    {}
func (rawInt) isRawType()     {}
func (rawFloat32) isRawType() {}
func (rawFloat64) isRawType() {}
func (rawChar) isRawType()    {}
func (rawString) isRawType()  {}
func (rawList) isRawType()    {}
func (rawTuple) isRawType()   {}
func (rawOption) isRawType()  {}
func (rawResult) isRawType()  {}
func (rawRef) isRawType()     {}

// primitiveTypes maps the primitive type keywords to their rawType.
var primitiveTypes = map[string]rawType{
	"bool":    rawBool{},
	"u8":      rawUint{8},
	"u16":     rawUint{16},
	"u32":     rawUint{32},
	"u64":     rawUint{64},
	"u128":    rawUint{128},
	"s8":      rawInt{8},
	"s16":     rawInt{16},
	"s32":     rawInt{32},
	"s64":     rawInt{64},
	"s128":    rawInt{128},
	"float32": rawFloat32{},
	"float64": rawFloat64{},
	"char":    rawChar{},
	"string":  rawString{},
}
