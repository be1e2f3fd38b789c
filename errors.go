// The MIT License (MIT)
//
// Copyright (c) 2021 The minml Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package minml

import (
	"github.com/minml-lang/minml/ast"
	"github.com/minml-lang/minml/types"
)

// ErrorKind discriminates the failure modes of inference.
type ErrorKind int

const (
	// ErrUnboundName reports a name reference with no environment entry.
	ErrUnboundName ErrorKind = iota
	// ErrUnification reports two type shapes which cannot be made equal.
	ErrUnification
	// ErrOccursCheck reports a self-referential (infinite) type.
	ErrOccursCheck
	// ErrUnsupportedPattern reports a tuple-destructuring pattern, which is
	// not yet implemented.
	ErrUnsupportedPattern
	// ErrInvariant reports an internal bookkeeping defect in the engine.
	// Unlike the other kinds it indicates a bug, not a user error.
	ErrInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnboundName:
		return "unbound name"
	case ErrUnification:
		return "unification failure"
	case ErrOccursCheck:
		return "occurs check failure"
	case ErrUnsupportedPattern:
		return "unsupported pattern"
	case ErrInvariant:
		return "invariant violation"
	}
	return "unknown error"
}

// Error is the failure value produced by inference. The first failure aborts
// the whole run; no partial results are produced past the failing node.
type Error struct {
	Kind ErrorKind
	Pos  ast.Pos
	msg  string
}

func (e *Error) Error() string {
	if e.Pos != (ast.Pos{}) {
		return e.Pos.String() + ": " + e.msg
	}
	return e.msg
}

// Message returns the failure description without the source position.
func (e *Error) Message() string { return e.msg }

func unboundError(name string) *Error {
	return &Error{Kind: ErrUnboundName, msg: "Variable " + name + " not found"}
}

func unifyError(a, b types.Type) *Error {
	return &Error{Kind: ErrUnification, msg: "Failed to unify " + types.TypeString(a) + " with " + types.TypeString(b)}
}

func arityError(a, b *types.Tuple) *Error {
	return &Error{Kind: ErrUnification, msg: "Cannot unify tuples with differing arity: " + types.TypeString(a) + " and " + types.TypeString(b)}
}

func occursError(t types.Type) *Error {
	return &Error{Kind: ErrOccursCheck, msg: "Recursive type found in " + types.TypeString(t) + ", occurs check failed"}
}

func patternError(p ast.Pattern) *Error {
	return &Error{Kind: ErrUnsupportedPattern, msg: "Tuple patterns are not supported: " + ast.PatternString(p)}
}

func invariantError(msg string) *Error {
	return &Error{Kind: ErrInvariant, msg: msg}
}
