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

// Package parser turns a token stream into a fully resolved [ast.Interface]:
// it parses declarations into an intermediate representation that still
// carries bare-identifier type references (since forward references are
// permitted), then lowers that representation once every declaration has
// been seen, resolving references and rejecting cycles along the way.
package parser

import (
	"github.com/webviewrpc/bindgen/internal/ast"
	"github.com/webviewrpc/bindgen/internal/lexer"
	"github.com/webviewrpc/bindgen/internal/perr"
)

// Parse tokenizes and parses source into a fully resolved [ast.Interface].
//
// includeDocsFor governs whether documentation attached to included
// files is retained; since this implementation does not (yet) support
// cross-file `include` directives, it is consulted exactly once, with
// the empty string standing in for the document being parsed, to decide
// whether to keep the interface's own top-level doc comment. A nil
// includeDocsFor keeps all documentation.
func Parse(source string, includeDocsFor func(path string) bool) (*ast.Interface, error) {
	toks, err := lexer.Lex(source)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}
	iface, err := p.parseInterface()
	if err != nil {
		return nil, err
	}

	if includeDocsFor != nil && !includeDocsFor("") {
		iface.docs = nil
	}

	return lower(iface)
}

// rawInterface is the whole document, pre-lowering.
type rawInterface struct {
	name     string
	docs     []string
	typedefs []rawTypeDef
	funcs    []rawFunction
}

type parser struct {
	toks []lexer.Token
	pos  int
	pendingDocs []string
}

func (p *parser) peek() lexer.Token  { return p.toks[p.pos] }
func (p *parser) advance() lexer.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// takeDocs drains any doc comments accumulated immediately before the
// next real token (skipTrivia in the lexer only elides whitespace and
// `//` comments, so doc comments show up as DocComment tokens in the
// stream and must be consumed explicitly here).
func (p *parser) takeDocs() []string {
	var docs []string
	for p.peek().Kind == lexer.DocComment {
		docs = append(docs, p.advance().Text)
	}
	return docs
}

func (p *parser) expect(k lexer.Kind) (lexer.Token, error) {
	if p.peek().Kind != k {
		return lexer.Token{}, p.unexpected(k.String())
	}
	return p.advance(), nil
}

func (p *parser) expectKeyword(kw string) error {
	tok := p.peek()
	if tok.Kind != lexer.Ident || tok.Text != kw {
		return p.unexpected("'" + kw + "'")
	}
	p.advance()
	return nil
}

func (p *parser) unexpected(expected ...string) error {
	tok := p.peek()
	got := tok.Kind.String()
	if tok.Kind == lexer.Ident {
		got = "identifier " + tok.Text
	}
	return &perr.ParseError{Offset: tok.Offset, Got: got, Expected: expected}
}

func (p *parser) parseInterface() (*rawInterface, error) {
	docs := p.takeDocs()
	if err := p.expectKeyword("interface"); err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBrace); err != nil {
		return nil, err
	}

	iface := &rawInterface{name: name.Text, docs: docs}

	var errs error
	for p.peek().Kind != lexer.RBrace {
		if p.peek().Kind == lexer.EOF {
			return nil, p.unexpected("'}'")
		}

		declDocs := p.takeDocs()
		kw := p.peek()
		if kw.Kind != lexer.Ident {
			return nil, p.unexpected("declaration")
		}

		var err error
		switch kw.Text {
		case "alias":
			err = p.parseAlias(iface, declDocs)
		case "record":
			err = p.parseRecord(iface, declDocs)
		case "flags":
			err = p.parseFlags(iface, declDocs)
		case "variant":
			err = p.parseVariant(iface, declDocs)
		case "enum":
			err = p.parseEnum(iface, declDocs)
		case "union":
			err = p.parseUnion(iface, declDocs)
		case "resource":
			err = p.parseResource(iface, declDocs)
		case "func":
			var fn rawFunction
			fn, err = p.parseFunc(declDocs)
			if err == nil {
				iface.funcs = append(iface.funcs, fn)
			}
		default:
			err = p.unexpected("'alias'", "'record'", "'flags'", "'variant'", "'enum'", "'union'", "'resource'", "'func'")
		}

		errs = perr.Combine(errs, err)
		if err != nil {
			// A malformed declaration doesn't leave enough structure to
			// safely keep parsing subsequent ones as independent; stop.
			return nil, errs
		}
	}
	p.advance() // RBrace

	if _, err := p.expect(lexer.EOF); err != nil {
		errs = perr.Combine(errs, err)
	}

	if errs != nil {
		return nil, errs
	}
	return iface, nil
}
