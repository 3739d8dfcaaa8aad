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

package parser

import "github.com/webviewrpc/bindgen/internal/lexer"

func (p *parser) parseAlias(iface *rawInterface, docs []string) error {
	p.advance() // "alias"
	name, err := p.expect(lexer.Ident)
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.Equals); err != nil {
		return err
	}
	ty, err := p.parseType()
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.Semicolon); err != nil {
		return err
	}
	iface.typedefs = append(iface.typedefs, rawTypeDef{
		name: name.Text, offset: name.Offset, docs: docs,
		kind: rawAlias{ty: ty},
	})
	return nil
}

func (p *parser) parseRecord(iface *rawInterface, docs []string) error {
	p.advance() // "record"
	name, err := p.expect(lexer.Ident)
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.LBrace); err != nil {
		return err
	}

	var fields []rawRecordField
	for p.peek().Kind != lexer.RBrace {
		fieldDocs := p.takeDocs()
		fname, err := p.expect(lexer.Ident)
		if err != nil {
			return err
		}
		if _, err := p.expect(lexer.Colon); err != nil {
			return err
		}
		ty, err := p.parseType()
		if err != nil {
			return err
		}
		fields = append(fields, rawRecordField{name: fname.Text, offset: fname.Offset, ty: ty, docs: fieldDocs})
		if !p.consumeComma() {
			break
		}
	}
	if _, err := p.expect(lexer.RBrace); err != nil {
		return err
	}

	iface.typedefs = append(iface.typedefs, rawTypeDef{
		name: name.Text, offset: name.Offset, docs: docs,
		kind: rawRecord{fields: fields},
	})
	return nil
}

func (p *parser) parseFlags(iface *rawInterface, docs []string) error {
	p.advance() // "flags"
	name, err := p.expect(lexer.Ident)
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.LBrace); err != nil {
		return err
	}

	var fields []rawFlagsField
	for p.peek().Kind != lexer.RBrace {
		fieldDocs := p.takeDocs()
		fname, err := p.expect(lexer.Ident)
		if err != nil {
			return err
		}
		fields = append(fields, rawFlagsField{name: fname.Text, offset: fname.Offset, docs: fieldDocs})
		if !p.consumeComma() {
			break
		}
	}
	if _, err := p.expect(lexer.RBrace); err != nil {
		return err
	}

	iface.typedefs = append(iface.typedefs, rawTypeDef{
		name: name.Text, offset: name.Offset, docs: docs,
		kind: rawFlags{fields: fields},
	})
	return nil
}

func (p *parser) parseVariant(iface *rawInterface, docs []string) error {
	p.advance() // "variant"
	name, err := p.expect(lexer.Ident)
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.LBrace); err != nil {
		return err
	}

	var cases []rawVariantCase
	for p.peek().Kind != lexer.RBrace {
		caseDocs := p.takeDocs()
		cname, err := p.expect(lexer.Ident)
		if err != nil {
			return err
		}
		var ty rawType
		if p.peek().Kind == lexer.LParen {
			p.advance()
			ty, err = p.parseType()
			if err != nil {
				return err
			}
			if _, err := p.expect(lexer.RParen); err != nil {
				return err
			}
		}
		cases = append(cases, rawVariantCase{name: cname.Text, offset: cname.Offset, ty: ty, docs: caseDocs})
		if !p.consumeComma() {
			break
		}
	}
	if _, err := p.expect(lexer.RBrace); err != nil {
		return err
	}

	iface.typedefs = append(iface.typedefs, rawTypeDef{
		name: name.Text, offset: name.Offset, docs: docs,
		kind: rawVariant{cases: cases},
	})
	return nil
}

func (p *parser) parseEnum(iface *rawInterface, docs []string) error {
	p.advance() // "enum"
	name, err := p.expect(lexer.Ident)
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.LBrace); err != nil {
		return err
	}

	var cases []rawEnumCase
	for p.peek().Kind != lexer.RBrace {
		caseDocs := p.takeDocs()
		cname, err := p.expect(lexer.Ident)
		if err != nil {
			return err
		}
		cases = append(cases, rawEnumCase{name: cname.Text, offset: cname.Offset, docs: caseDocs})
		if !p.consumeComma() {
			break
		}
	}
	if _, err := p.expect(lexer.RBrace); err != nil {
		return err
	}

	iface.typedefs = append(iface.typedefs, rawTypeDef{
		name: name.Text, offset: name.Offset, docs: docs,
		kind: rawEnum{cases: cases},
	})
	return nil
}

func (p *parser) parseUnion(iface *rawInterface, docs []string) error {
	p.advance() // "union"
	name, err := p.expect(lexer.Ident)
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.LBrace); err != nil {
		return err
	}

	var cases []rawUnionCase
	for p.peek().Kind != lexer.RBrace {
		caseDocs := p.takeDocs()
		ty, err := p.parseType()
		if err != nil {
			return err
		}
		cases = append(cases, rawUnionCase{ty: ty, docs: caseDocs})
		if !p.consumeComma() {
			break
		}
	}
	if _, err := p.expect(lexer.RBrace); err != nil {
		return err
	}

	iface.typedefs = append(iface.typedefs, rawTypeDef{
		name: name.Text, offset: name.Offset, docs: docs,
		kind: rawUnion{cases: cases},
	})
	return nil
}

func (p *parser) parseResource(iface *rawInterface, docs []string) error {
	p.advance() // "resource"
	name, err := p.expect(lexer.Ident)
	if err != nil {
		return err
	}
	if _, err := p.expect(lexer.LBrace); err != nil {
		return err
	}

	var methods []rawFunction
	for p.peek().Kind != lexer.RBrace {
		methodDocs := p.takeDocs()
		if p.peek().Kind != lexer.Ident || p.peek().Text != "func" {
			return p.unexpected("'func'")
		}
		fn, err := p.parseFunc(methodDocs)
		if err != nil {
			return err
		}
		methods = append(methods, fn)
	}
	if _, err := p.expect(lexer.RBrace); err != nil {
		return err
	}

	iface.typedefs = append(iface.typedefs, rawTypeDef{
		name: name.Text, offset: name.Offset, docs: docs,
		kind: rawResourceDef{methods: methods},
	})
	return nil
}

// parseFunc parses a function declaration starting at its leading
// "func" keyword, which it consumes itself; both the interface's top
// level and resource bodies call it with "func" as the next token.
func (p *parser) parseFunc(docs []string) (rawFunction, error) {
	p.advance() // "func"
	name, err := p.expect(lexer.Ident)
	if err != nil {
		return rawFunction{}, err
	}
	if _, err := p.expect(lexer.LParen); err != nil {
		return rawFunction{}, err
	}

	var params []rawParam
	for p.peek().Kind != lexer.RParen {
		pname, err := p.expect(lexer.Ident)
		if err != nil {
			return rawFunction{}, err
		}
		if _, err := p.expect(lexer.Colon); err != nil {
			return rawFunction{}, err
		}
		ty, err := p.parseType()
		if err != nil {
			return rawFunction{}, err
		}
		params = append(params, rawParam{name: pname.Text, offset: pname.Offset, ty: ty})
		if !p.consumeComma() {
			break
		}
	}
	if _, err := p.expect(lexer.RParen); err != nil {
		return rawFunction{}, err
	}

	var result *rawFunctionResult
	if p.peek().Kind == lexer.Arrow {
		p.advance()
		r, err := p.parseFunctionResult()
		if err != nil {
			return rawFunction{}, err
		}
		result = r
	}

	if _, err := p.expect(lexer.Semicolon); err != nil {
		return rawFunction{}, err
	}

	return rawFunction{name: name.Text, offset: name.Offset, params: params, result: result, docs: docs}, nil
}

// parseFunctionResult parses either a single anonymous type, or a
// parenthesized named tuple `(name: type, ...)`.
func (p *parser) parseFunctionResult() (*rawFunctionResult, error) {
	if p.peek().Kind != lexer.LParen {
		ty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &rawFunctionResult{anon: ty}, nil
	}

	p.advance() // LParen
	var named []rawParam
	for p.peek().Kind != lexer.RParen {
		pname, err := p.expect(lexer.Ident)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.Colon); err != nil {
			return nil, err
		}
		ty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		named = append(named, rawParam{name: pname.Text, offset: pname.Offset, ty: ty})
		if !p.consumeComma() {
			break
		}
	}
	if _, err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}
	return &rawFunctionResult{named: named}, nil
}

// consumeComma consumes a comma if present and reports whether another
// element follows it: false when there is no comma, and also when the
// comma sits directly before a closing '}' or ')', allowing callers to
// support an optional trailing comma before a closing delimiter.
func (p *parser) consumeComma() bool {
	if p.peek().Kind != lexer.Comma {
		return false
	}
	p.advance()
	return p.peek().Kind != lexer.RBrace && p.peek().Kind != lexer.RParen
}
