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

import (
	"iter"
	"slices"

	"github.com/webviewrpc/bindgen/internal/arena"
	"github.com/webviewrpc/bindgen/internal/ast"
	"github.com/webviewrpc/bindgen/internal/perr"
	"github.com/webviewrpc/bindgen/internal/scc"
	"github.com/webviewrpc/bindgen/internal/suggest"
)

// scope carries everything resolution needs: the name->id table for
// named-type references, and bookkeeping for duplicate-identifier and
// cycle diagnostics.
type scope struct {
	iface *ast.Interface
	ids   map[string]arena.Id
	names []string // declaration order, for suggestion candidates

	declaredAt map[string]int // first occurrence offset, for duplicate checks
	aliasEdges map[arena.Id]arena.Id
}

// lower converts a fully-parsed rawInterface into a resolved
// ast.Interface, running name resolution, duplicate-identifier checks,
// flag-width derivation, and alias-cycle detection along the way.
func lower(raw *rawInterface) (*ast.Interface, error) {
	iface := &ast.Interface{
		Name:     raw.name,
		Docs:     raw.docs,
		TypeDefs: arena.New[ast.TypeDef](),
	}

	s := &scope{
		iface:      iface,
		ids:        make(map[string]arena.Id, len(raw.typedefs)),
		declaredAt: make(map[string]int, len(raw.typedefs)+len(raw.funcs)),
		aliasEdges: make(map[arena.Id]arena.Id),
	}

	var errs error

	// Pass 1: allocate an arena slot per typedef so forward references
	// resolve, and register every top-level name for duplicate checking.
	ids := make([]arena.Id, len(raw.typedefs))
	for i, rt := range raw.typedefs {
		errs = perr.Combine(errs, s.declare(rt.name, rt.offset))
		id := iface.TypeDefs.Alloc(ast.TypeDef{Name: rt.name, Docs: rt.docs})
		ids[i] = id
		s.ids[rt.name] = id
		s.names = append(s.names, rt.name)
	}
	for _, fn := range raw.funcs {
		errs = perr.Combine(errs, s.declare(fn.name, fn.offset))
	}

	// Pass 2: lower each typedef's body now that every name is known.
	for i, rt := range raw.typedefs {
		kind, err := s.lowerKind(ids[i], rt.name, rt.kind)
		if err != nil {
			errs = perr.Combine(errs, err)
			continue
		}
		iface.TypeDefs.Get(ids[i]).Kind = kind
	}

	// Pass 3: lower top-level functions.
	for _, rf := range raw.funcs {
		fn, err := s.lowerFunction(rf)
		if err != nil {
			errs = perr.Combine(errs, err)
			continue
		}
		iface.Functions = append(iface.Functions, fn)
	}

	if cycleErr := s.checkCycles(); cycleErr != nil {
		errs = perr.Combine(errs, cycleErr)
	}

	if errs != nil {
		return nil, errs
	}
	return iface, nil
}

func (s *scope) declare(name string, offset int) error {
	if first, ok := s.declaredAt[name]; ok {
		return &perr.DuplicateIdentifierError{Identifier: name, First: first, Second: offset}
	}
	s.declaredAt[name] = offset
	return nil
}

func (s *scope) lowerKind(id arena.Id, name string, raw rawTypeDefKind) (ast.TypeDefKind, error) {
	switch k := raw.(type) {
	case rawAlias:
		ty, err := s.lowerType(k.ty)
		if err != nil {
			return nil, err
		}
		if ref, ok := ty.(ast.Id); ok {
			s.aliasEdges[id] = ref.Ref
		}
		return ast.Alias{Type: ty}, nil

	case rawRecord:
		fields := make([]ast.RecordField, len(k.fields))
		var errs error
		for i, f := range k.fields {
			ty, err := s.lowerType(f.ty)
			errs = perr.Combine(errs, err)
			fields[i] = ast.RecordField{Name: f.name, Type: ty, Docs: f.docs}
		}
		if errs != nil {
			return nil, errs
		}
		return ast.Record{Fields: fields}, nil

	case rawFlags:
		if _, ok := ast.FlagsWidth(len(k.fields)); !ok {
			return nil, &perr.FlagOverflowError{Identifier: name, NumFields: len(k.fields)}
		}
		fields := make([]ast.FlagsField, len(k.fields))
		for i, f := range k.fields {
			fields[i] = ast.FlagsField{Name: f.name, Docs: f.docs}
		}
		return ast.Flags{Fields: fields}, nil

	case rawVariant:
		cases := make([]ast.VariantCase, len(k.cases))
		var errs error
		for i, c := range k.cases {
			var ty ast.Type
			if c.ty != nil {
				var err error
				ty, err = s.lowerType(c.ty)
				errs = perr.Combine(errs, err)
			}
			cases[i] = ast.VariantCase{Name: c.name, Type: ty, Docs: c.docs}
		}
		if errs != nil {
			return nil, errs
		}
		return ast.Variant{Cases: cases}, nil

	case rawEnum:
		cases := make([]ast.EnumCase, len(k.cases))
		for i, c := range k.cases {
			cases[i] = ast.EnumCase{Name: c.name, Docs: c.docs}
		}
		return ast.Enum{Cases: cases}, nil

	case rawUnion:
		cases := make([]ast.UnionCase, len(k.cases))
		var errs error
		for i, c := range k.cases {
			ty, err := s.lowerType(c.ty)
			errs = perr.Combine(errs, err)
			cases[i] = ast.UnionCase{Type: ty, Docs: c.docs}
		}
		if errs != nil {
			return nil, errs
		}
		return ast.Union{Cases: cases}, nil

	case rawResourceDef:
		methods := make([]ast.Function, len(k.methods))
		var errs error
		for i, m := range k.methods {
			fn, err := s.lowerFunction(m)
			errs = perr.Combine(errs, err)
			methods[i] = fn
		}
		if errs != nil {
			return nil, errs
		}
		return ast.Resource{Methods: methods}, nil
	}
	panic("parser: unhandled rawTypeDefKind")
}

func (s *scope) lowerFunction(rf rawFunction) (ast.Function, error) {
	var errs error

	seen := make(map[string]int, len(rf.params))
	params := make([]ast.Param, len(rf.params))
	for i, p := range rf.params {
		if first, ok := seen[p.name]; ok {
			errs = perr.Combine(errs, &perr.DuplicateIdentifierError{Identifier: p.name, First: first, Second: p.offset})
		} else {
			seen[p.name] = p.offset
		}

		ty, err := s.lowerType(p.ty)
		errs = perr.Combine(errs, err)
		params[i] = ast.Param{Name: p.name, Type: ty}
	}

	var result *ast.FunctionResult
	if rf.result != nil {
		if rf.result.anon != nil {
			ty, err := s.lowerType(rf.result.anon)
			errs = perr.Combine(errs, err)
			result = &ast.FunctionResult{Anon: ty}
		} else {
			named := make([]ast.Param, len(rf.result.named))
			for i, p := range rf.result.named {
				ty, err := s.lowerType(p.ty)
				errs = perr.Combine(errs, err)
				named[i] = ast.Param{Name: p.name, Type: ty}
			}
			result = &ast.FunctionResult{Named: named}
		}
	}

	if errs != nil {
		return ast.Function{}, errs
	}
	return ast.Function{Name: rf.name, Params: params, Result: result, Docs: rf.docs}, nil
}

func (s *scope) lowerType(raw rawType) (ast.Type, error) {
	switch t := raw.(type) {
	case nil:
		return nil, nil
	case rawBool:
		return ast.Bool{}, nil
	case rawUint:
		return ast.Uint{Width: ast.Width(t.width)}, nil
	case rawInt:
		return ast.Int{Width: ast.Width(t.width)}, nil
	case rawFloat32:
		return ast.Float32{}, nil
	case rawFloat64:
		return ast.Float64{}, nil
	case rawChar:
		return ast.Char{}, nil
	case rawString:
		return ast.String{}, nil
	case rawList:
		elem, err := s.lowerType(t.elem)
		if err != nil {
			return nil, err
		}
		return ast.List{Elem: elem}, nil
	case rawTuple:
		elems := make([]ast.Type, len(t.elems))
		var errs error
		for i, e := range t.elems {
			ty, err := s.lowerType(e)
			errs = perr.Combine(errs, err)
			elems[i] = ty
		}
		if errs != nil {
			return nil, errs
		}
		return ast.Tuple{Elems: elems}, nil
	case rawOption:
		elem, err := s.lowerType(t.elem)
		if err != nil {
			return nil, err
		}
		return ast.Option{Elem: elem}, nil
	case rawResult:
		ok, err := s.lowerType(t.ok)
		if err != nil {
			return nil, err
		}
		errT, err := s.lowerType(t.err)
		if err != nil {
			return nil, err
		}
		return ast.Result{Ok: ok, Err: errT}, nil
	case rawRef:
		id, ok := s.ids[t.name]
		if !ok {
			return nil, &perr.ResolveError{
				Offset:     t.offset,
				Identifier: t.name,
				Candidates: suggest.Candidates(t.name, s.names),
			}
		}
		return ast.Id{Ref: id}, nil
	}
	panic("parser: unhandled rawType")
}

// checkCycles detects alias chains that transitively alias themselves.
// Only Alias typedefs can introduce a cycle: records, variants, unions,
// and resources may reference any type, including back through
// list/option/result, without it counting as a cycle (invariant 3).
func (s *scope) checkCycles() error {
	graph := func(id arena.Id) iter.Seq[arena.Id] {
		return func(yield func(arena.Id) bool) {
			if dep, ok := s.aliasEdges[id]; ok {
				yield(dep)
			}
		}
	}

	// arena.Id(0) is reserved and never a real typedef, so it is safe to
	// use as a synthetic root with an edge to every alias.
	synthetic := func(id arena.Id) iter.Seq[arena.Id] {
		return func(yield func(arena.Id) bool) {
			if id != 0 {
				graph(id)(yield)
				return
			}
			for alias := range s.aliasEdges {
				if !yield(alias) {
					return
				}
			}
		}
	}

	dag := scc.Sort(arena.Id(0), synthetic)

	var errs error
	reported := make(map[int]bool)
	for id := range s.aliasEdges {
		c := dag.ForNode(id)
		if c == nil || reported[c.Index()] || !c.Cyclic(synthetic) {
			continue
		}
		reported[c.Index()] = true

		// Arena ids are allocated in declaration order.
		members := slices.Clone(c.Members())
		slices.Sort(members)
		names := make([]string, 0, len(members))
		for _, m := range members {
			names = append(names, s.iface.TypeDefs.Get(m).Name)
		}
		errs = perr.Combine(errs, &perr.CycleError{Members: names})
	}
	return errs
}
