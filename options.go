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

import (
	"github.com/webviewrpc/bindgen/internal/gen/guestjs"
	"github.com/webviewrpc/bindgen/internal/gen/guestts"
	"github.com/webviewrpc/bindgen/internal/gen/host"
	"github.com/webviewrpc/bindgen/internal/gen/markdown"
)

// HostOptions configures [NewHostGenerator]: Async selects between
// sync and async handler registration (func_wrap or func_wrap_async);
// trait methods are emitted as plain fn either way. Tracing additionally
// wraps each handler body in span instrumentation.
type HostOptions = host.Options

// GuestTypedOptions configures [NewGuestTypedGenerator].
type GuestTypedOptions = guestts.Options

// GuestScriptingOptions configures [NewGuestScriptingGenerator]. Neither
// field changes a single byte of the emitted output; both exist so the
// caller can record which post-processor it intends to run.
type GuestScriptingOptions = guestjs.Options

// MarkdownOptions configures [NewMarkdownGenerator]. It is currently
// empty; it exists so the constructor shape matches every other
// emitter's.
type MarkdownOptions = markdown.Options
