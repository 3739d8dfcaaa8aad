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

// parseType parses a single Type production: a primitive keyword, one
// of the container shapes (list/tuple/option/result), or a reference to
// a named TypeDef, which is left unresolved until lower() runs.
func (p *parser) parseType() (rawType, error) {
	tok := p.peek()
	if tok.Kind != lexer.Ident {
		return nil, p.unexpected("type")
	}

	if prim, ok := primitiveTypes[tok.Text]; ok {
		p.advance()
		return prim, nil
	}

	switch tok.Text {
	case "list":
		p.advance()
		elem, err := p.parseAngleType()
		if err != nil {
			return nil, err
		}
		return rawList{elem: elem}, nil
	case "option":
		p.advance()
		elem, err := p.parseAngleType()
		if err != nil {
			return nil, err
		}
		return rawOption{elem: elem}, nil
	case "tuple":
		p.advance()
		if _, err := p.expect(lexer.LAngle); err != nil {
			return nil, err
		}
		var elems []rawType
		for p.peek().Kind != lexer.RAngle {
			elem, err := p.parseType()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
			if p.peek().Kind != lexer.Comma {
				break
			}
			p.advance()
		}
		if _, err := p.expect(lexer.RAngle); err != nil {
			return nil, err
		}
		return rawTuple{elems: elems}, nil
	case "result":
		p.advance()
		if p.peek().Kind != lexer.LAngle {
			return rawResult{}, nil // bare `result`, both sides absent
		}
		p.advance()
		ok, err := p.parseResultSide()
		if err != nil {
			return nil, err
		}
		var errSide rawType
		if p.peek().Kind == lexer.Comma {
			p.advance()
			errSide, err = p.parseResultSide()
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(lexer.RAngle); err != nil {
			return nil, err
		}
		return rawResult{ok: ok, err: errSide}, nil
	}

	p.advance()
	return rawRef{name: tok.Text, offset: tok.Offset}, nil
}

// parseResultSide parses one side of a `result<ok, err>` type list,
// where `_` stands for an absent side.
func (p *parser) parseResultSide() (rawType, error) {
	if p.peek().Kind == lexer.Ident && p.peek().Text == "_" {
		p.advance()
		return nil, nil
	}
	return p.parseType()
}

func (p *parser) parseAngleType() (rawType, error) {
	if _, err := p.expect(lexer.LAngle); err != nil {
		return nil, err
	}
	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RAngle); err != nil {
		return nil, err
	}
	return elem, nil
}
