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

// LogSink receives one line of diagnostic output per call, tagged with
// the component that produced it. [AnalyzeTypeInfo] is the only entry
// point that accepts one, and tags its lines "typeinfo". It is an
// explicit parameter everywhere this package accepts one, never a package-level variable or a
// build-tag-gated global: a single process may run this package's
// entry points concurrently for unrelated inputs, and nothing here
// should let one caller's debug verbosity leak into another's.
//
// A nil LogSink discards everything.
type LogSink func(component, msg string)

func (f LogSink) log(component, msg string) {
	if f == nil {
		return
	}
	f(component, msg)
}
