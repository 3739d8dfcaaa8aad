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

import "github.com/webviewrpc/bindgen/internal/serde"

// Capabilities is a bitset of primitive codec helpers that some emitted
// artifact requires, closed under the OR-implication rules in [Close].
// The real definition lives in internal/serde so that internal/gen/guestjs
// can compute and consume it without importing this package (which would
// be a cycle, since this package's Generate dispatches into internal/gen).
type Capabilities = serde.Capabilities

const (
	CapBool      = serde.CapBool
	CapU8        = serde.CapU8
	CapU16       = serde.CapU16
	CapU32       = serde.CapU32
	CapU64       = serde.CapU64
	CapU128      = serde.CapU128
	CapS8        = serde.CapS8
	CapS16       = serde.CapS16
	CapS32       = serde.CapS32
	CapS64       = serde.CapS64
	CapS128      = serde.CapS128
	CapUnsigned  = serde.CapUnsigned
	CapSigned    = serde.CapSigned
	CapVarint    = serde.CapVarint
	CapVarintMax = serde.CapVarintMax
	CapFloat32   = serde.CapFloat32
	CapFloat64   = serde.CapFloat64
	CapChar      = serde.CapChar
	CapString    = serde.CapString
	CapBytes     = serde.CapBytes
	CapOption    = serde.CapOption
	CapResult    = serde.CapResult
	CapList      = serde.CapList
	CapStrUtil   = serde.CapStrUtil
	CapSer       = serde.CapSer
	CapDe        = serde.CapDe
)

// CollectFromFunctions walks every function of iface (including resource
// methods) and returns the closed capability bitset the emitted artifact
// needs; see [internal/serde.CollectFromFunctions].
func CollectFromFunctions(iface *Interface) Capabilities {
	return serde.CollectFromFunctions(iface)
}
