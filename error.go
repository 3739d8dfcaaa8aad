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

import "github.com/webviewrpc/bindgen/internal/perr"

// The structured error kinds the parser and resolver can return. All of
// them implement error; none of them render source snippets or carets,
// since turning a byte offset into a human diagnostic is the caller's
// job (it owns the source text and the decision of how to display it).
type (
	InputInvalidError        = perr.InputInvalidError
	LexError                 = perr.LexError
	ParseError               = perr.ParseError
	ResolveError             = perr.ResolveError
	DuplicateIdentifierError = perr.DuplicateIdentifierError
	CycleError               = perr.CycleError
	FlagOverflowError        = perr.FlagOverflowError
	MultiError               = perr.MultiError
)

// InputInvalidReason distinguishes the three codepoint-validation
// failures the lexer checks for before tokenizing.
type InputInvalidReason = perr.InputInvalidReason

const (
	BidiOverride        = perr.BidiOverride
	DeprecatedCodepoint = perr.DeprecatedCodepoint
	ControlCode         = perr.ControlCode
)
