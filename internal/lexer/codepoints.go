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

package lexer

import (
	"unicode"

	"github.com/webviewrpc/bindgen/internal/perr"
)

// deprecatedCodepoints is checked before the generic unicode.IsControl
// sweep. None of its members is a control character, so that sweep alone
// would let them through.
var deprecatedCodepoints = map[rune]bool{
	0x0149: true,
	0x0673: true,
	0x0F77: true,
	0x0F79: true,
	0x17A3: true,
	0x17A4: true,
	0x17B4: true,
	0x17B5: true,
}

func isBidiOverride(r rune) bool {
	return (r >= 0x202A && r <= 0x202E) || (r >= 0x2066 && r <= 0x2069)
}

// ValidateCodepoints scans source rune-by-rune, before any tokenizing
// happens, and rejects bidirectional-override characters (CVE-2021-42574),
// a handful of deprecated Unicode codepoints, and any other control
// character besides LF, CR, and TAB.
//
// The offset carried by the returned error is a byte offset into source,
// not a rune index.
func ValidateCodepoints(source string) error {
	for i, r := range source {
		switch {
		case isBidiOverride(r):
			return &perr.InputInvalidError{Reason: perr.BidiOverride, Offset: i, Rune: r}
		case deprecatedCodepoints[r]:
			return &perr.InputInvalidError{Reason: perr.DeprecatedCodepoint, Offset: i, Rune: r}
		case r == '\n' || r == '\r' || r == '\t':
			// allowed whitespace controls
		case unicode.IsControl(r):
			return &perr.InputInvalidError{Reason: perr.ControlCode, Offset: i, Rune: r}
		}
	}
	return nil
}
