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

import "github.com/cespare/xxhash/v2"

// HashStr returns a stable 64-bit content hash of source. Callers pass
// this alongside a parsed Interface into [Generator.Generate]; none of
// the current emitters writes it into the generated artifacts, and this
// package tracks no notion of incremental recompilation itself.
func HashStr(source string) uint64 {
	return xxhash.Sum64String(source)
}
