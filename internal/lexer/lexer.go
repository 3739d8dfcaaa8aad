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

// Package lexer turns validated IDL source into a flat token stream.
// Identifiers are kept exactly as written (kebab-case); it is up to
// emitters to rewrite them into their target's conventions.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/webviewrpc/bindgen/internal/perr"
)

// Lex runs codepoint validation and then tokenizes source, returning the
// full token stream terminated by an EOF token.
func Lex(source string) ([]Token, error) {
	if err := ValidateCodepoints(source); err != nil {
		return nil, err
	}

	l := &lexer{src: source}
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

type lexer struct {
	src string
	pos int
}

func (l *lexer) next() (Token, error) {
	l.skipTrivia()
	if l.pos >= len(l.src) {
		return Token{Kind: EOF, Offset: l.pos}, nil
	}

	start := l.pos
	if strings.HasPrefix(l.src[l.pos:], "///") {
		return l.lexDocComment(start), nil
	}

	r, size := utf8.DecodeRuneInString(l.src[l.pos:])

	switch r {
	case '{':
		l.pos += size
		return Token{Kind: LBrace, Offset: start}, nil
	case '}':
		l.pos += size
		return Token{Kind: RBrace, Offset: start}, nil
	case '(':
		l.pos += size
		return Token{Kind: LParen, Offset: start}, nil
	case ')':
		l.pos += size
		return Token{Kind: RParen, Offset: start}, nil
	case '<':
		l.pos += size
		return Token{Kind: LAngle, Offset: start}, nil
	case '>':
		l.pos += size
		return Token{Kind: RAngle, Offset: start}, nil
	case ',':
		l.pos += size
		return Token{Kind: Comma, Offset: start}, nil
	case ':':
		l.pos += size
		return Token{Kind: Colon, Offset: start}, nil
	case ';':
		l.pos += size
		return Token{Kind: Semicolon, Offset: start}, nil
	case '?':
		l.pos += size
		return Token{Kind: Question, Offset: start}, nil
	case '=':
		l.pos += size
		return Token{Kind: Equals, Offset: start}, nil
	case '-':
		if strings.HasPrefix(l.src[l.pos:], "->") {
			l.pos += 2
			return Token{Kind: Arrow, Offset: start}, nil
		}
		return Token{}, &perr.LexError{Offset: start, Message: "unexpected '-'"}
	}

	if isIdentStart(r) {
		return l.lexIdent(), nil
	}

	return Token{}, &perr.LexError{Offset: start, Message: "unexpected character " + string(r)}
}

// skipTrivia consumes whitespace and comments, turning any `///` line
// comment it encounters into a pending doc comment that next() returns
// as its own token so the parser can attach it to the following
// declaration.
func (l *lexer) skipTrivia() {
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		switch {
		case unicode.IsSpace(r):
			l.pos += size
		case strings.HasPrefix(l.src[l.pos:], "///"):
			// Doc comments become their own DocComment token, tokenized
			// by next(); stop skipping trivia so it can see the prefix.
			return
		case strings.HasPrefix(l.src[l.pos:], "//"):
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

func (l *lexer) lexIdent() Token {
	start := l.pos
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !isIdentCont(r) {
			break
		}
		l.pos += size
	}
	return Token{Kind: Ident, Offset: start, Text: l.src[start:l.pos]}
}

func (l *lexer) lexDocComment(start int) Token {
	l.pos += 3 // skip "///"
	lineStart := l.pos
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.pos++
	}
	text := strings.TrimRight(l.src[lineStart:l.pos], " \t\r")
	text = strings.TrimPrefix(text, " ")
	return Token{Kind: DocComment, Offset: start, Text: text}
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentCont(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}
