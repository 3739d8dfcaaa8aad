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

// Package perr defines the structured error kinds surfaced by the lexer,
// parser, and resolver. Every kind carries enough structured data (byte
// offsets, candidate identifiers, conflicting positions) for a caller to
// render its own diagnostics; none of them render source snippets or
// carets themselves — that's left to the caller, same as the rest of
// this package's error-handling story.
package perr

import (
	"fmt"
	"strings"
)

// InputInvalidReason distinguishes the three codepoint-validation
// failures the lexer checks for before tokenizing.
type InputInvalidReason int

const (
	BidiOverride InputInvalidReason = iota
	DeprecatedCodepoint
	ControlCode
)

func (r InputInvalidReason) String() string {
	switch r {
	case BidiOverride:
		return "bidirectional-override"
	case DeprecatedCodepoint:
		return "deprecated-codepoint"
	case ControlCode:
		return "control-code"
	default:
		return "unknown-input-invalid-reason"
	}
}

// InputInvalidError reports a disallowed codepoint found during the
// pre-tokenization validation pass. Offset is a byte offset into the
// source, not a rune index.
type InputInvalidError struct {
	Reason  InputInvalidReason
	Offset  int
	Rune    rune
}

func (e *InputInvalidError) Error() string {
	return fmt.Sprintf("input invalid: %s at byte offset %d (U+%04X)", e.Reason, e.Offset, e.Rune)
}

// LexError reports an unexpected character or unterminated literal.
type LexError struct {
	Offset  int
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at byte offset %d: %s", e.Offset, e.Message)
}

// ParseError reports an unexpected token, together with the set of
// tokens that would have been acceptable at that point.
type ParseError struct {
	Offset   int
	Got      string
	Expected []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at byte offset %d: unexpected %s, expected one of [%s]",
		e.Offset, e.Got, strings.Join(e.Expected, ", "))
}

// ResolveError reports a reference to an identifier that is not declared
// anywhere in the interface's top-level scope, together with nearest-
// neighbor suggestions.
type ResolveError struct {
	Offset     int
	Identifier string
	Candidates []string
}

func (e *ResolveError) Error() string {
	if len(e.Candidates) == 0 {
		return fmt.Sprintf("resolve error at byte offset %d: unknown identifier %q", e.Offset, e.Identifier)
	}
	return fmt.Sprintf("resolve error at byte offset %d: unknown identifier %q (did you mean one of: %s?)",
		e.Offset, e.Identifier, strings.Join(e.Candidates, ", "))
}

// DuplicateIdentifierError reports two declarations in the same scope
// that share a name.
type DuplicateIdentifierError struct {
	Identifier       string
	First, Second int
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("duplicate identifier %q declared at byte offsets %d and %d",
		e.Identifier, e.First, e.Second)
}

// CycleError reports a cycle among the named TypeDefs (currently only
// alias chains can form one; records/variants/unions read through
// ids without transitively requiring acyclicity).
type CycleError struct {
	Members []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected among type definitions: %s", strings.Join(e.Members, " -> "))
}

// FlagOverflowError reports a flags declaration with more than 128
// fields, which has no representable backing width.
type FlagOverflowError struct {
	Identifier string
	NumFields  int
}

func (e *FlagOverflowError) Error() string {
	return fmt.Sprintf("flags %q has %d fields, exceeding the maximum of 128", e.Identifier, e.NumFields)
}

// MultiError aggregates independent errors collected from otherwise
// recoverable declarations. Errs are in the order they were combined,
// which follows the resolver's passes rather than source position.
type MultiError struct {
	Errs []error
}

func (e *MultiError) Error() string {
	parts := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("%d errors:\n  %s", len(e.Errs), strings.Join(parts, "\n  "))
}

func (e *MultiError) Unwrap() []error { return e.Errs }

// Combine implements the accumulator fold used by the parser and
// resolver to merge a running error (possibly nil, possibly already a
// *MultiError) with the result of validating one more independent
// declaration:
//
//	(nil, nil)   -> nil, extend whatever was ok
//	(nil, err)   -> wrap err as the start of a Multi
//	(err, nil)   -> keep err as-is (ok side contributes nothing)
//	(err, err)   -> append to the running Multi
func Combine(running, next error) error {
	switch {
	case running == nil && next == nil:
		return nil
	case running == nil:
		return &MultiError{Errs: []error{next}}
	case next == nil:
		return running
	default:
		m, ok := running.(*MultiError)
		if !ok {
			m = &MultiError{Errs: []error{running}}
		}
		m.Errs = append(m.Errs, next)
		return m
	}
}
