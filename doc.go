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

// Package bindgen parses a small interface-definition language describing
// the RPC surface between a host process and guest code running inside an
// embedded webview, and emits bindings for both sides from a single
// source of truth.
//
// To use this package, parse an interface with [ParseStr], then hand the
// result to one of the emitters under internal/gen (host, guest-typed,
// guest-scripting, or markdown) via [Generator.Generate] on the value
// returned by [NewHostGenerator], [NewGuestTypedGenerator],
// [NewGuestScriptingGenerator] or [NewMarkdownGenerator].
//
// # Support Status
//
// The following are out of scope for this package; see SPEC_FULL.md for
// the full list:
//
//   - Executing or type-checking generated code against a live host
//     program.
//   - Formatting or optimizing emitted source text; that is left to the
//     target language's own tooling.
//   - Incremental recompilation beyond the content hash exposed by
//     [HashStr].
package bindgen
