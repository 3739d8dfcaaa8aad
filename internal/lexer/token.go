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

// Kind identifies the shape of a [Token].
type Kind int

const (
	EOF Kind = iota
	Ident
	DocComment // text following `///`, comment marker stripped
	LBrace
	RBrace
	LParen
	RParen
	LAngle
	RAngle
	Comma
	Colon
	Semicolon
	Question
	Arrow // "->"
	Equals
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Ident:
		return "identifier"
	case DocComment:
		return "doc comment"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case LAngle:
		return "'<'"
	case RAngle:
		return "'>'"
	case Comma:
		return "','"
	case Colon:
		return "':'"
	case Semicolon:
		return "';'"
	case Question:
		return "'?'"
	case Arrow:
		return "'->'"
	case Equals:
		return "'='"
	default:
		return "unknown"
	}
}

// Token is a single lexical unit, together with the byte offset it
// starts at (used for diagnostics) and, for Ident and DocComment, its
// text.
type Token struct {
	Kind   Kind
	Offset int
	Text   string
}
