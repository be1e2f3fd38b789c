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

package ast

import (
	"strconv"

	"github.com/minml-lang/minml/types"
)

// Pos is a source position attached to every syntax node.
type Pos struct {
	Line, Column int
}

func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Node is implemented by all syntax nodes.
type Node interface {
	// Position returns the source position of the node.
	Position() Pos
}

// Expr is the base for all expressions.
type Expr interface {
	Node
	// Name of the syntax-type of the expression.
	ExprName() string
	// Type returns the inferred type of an expression. Expression types are
	// only available after annotating inference.
	Type() types.Type
}

// Pattern is the base for binding and parameter patterns.
type Pattern interface {
	Node
	// Name of the syntax-type of the pattern.
	PatternName() string
	// Type returns the inferred type of the pattern. Pattern types are only
	// available after annotating inference.
	Type() types.Type
}

var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*Ident)(nil)
	_ Expr = (*Tuple)(nil)
	_ Expr = (*Func)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*If)(nil)

	_ Pattern = (*AnyPattern)(nil)
	_ Pattern = (*UnitPattern)(nil)
	_ Pattern = (*VarPattern)(nil)
	_ Pattern = (*TuplePattern)(nil)
)

// LiteralKind describes which ground type a literal belongs to.
type LiteralKind int

const (
	IntLit LiteralKind = iota
	FloatLit
	StringLit
	BoolLit
	UnitLit
)

// Constant literal: `1`, `3.14`, `"x"`, `true`, `()`
type Literal struct {
	Kind     LiteralKind
	Syntax   string
	Pos      Pos
	inferred types.Type
}

// Returns the syntax of e.
func (e *Literal) ExprName() string { return e.Syntax }

func (e *Literal) Position() Pos { return e.Pos }

// Get the inferred (or assigned) type of e.
func (e *Literal) Type() types.Type { return types.RealType(e.inferred) }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Literal) SetType(t types.Type) { e.inferred = t }

// Name reference
type Ident struct {
	Name     string
	Pos      Pos
	inferred types.Type
}

// "Ident"
func (e *Ident) ExprName() string { return "Ident" }

func (e *Ident) Position() Pos { return e.Pos }

// Get the inferred (or assigned) type of e.
func (e *Ident) Type() types.Type { return types.RealType(e.inferred) }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Ident) SetType(t types.Type) { e.inferred = t }

// Tuple expression: `(a, b)` with arity >= 2
type Tuple struct {
	Elems    []Expr
	Pos      Pos
	inferred types.Type
}

// "Tuple"
func (e *Tuple) ExprName() string { return "Tuple" }

func (e *Tuple) Position() Pos { return e.Pos }

// Get the inferred (or assigned) type of e.
func (e *Tuple) Type() types.Type { return types.RealType(e.inferred) }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Tuple) SetType(t types.Type) { e.inferred = t }

// Abstraction: `fun x -> x`. Functions take a single parameter pattern;
// multi-parameter functions are nested (curried) abstractions.
type Func struct {
	Param    Pattern
	Body     *Body
	Pos      Pos
	inferred types.Type
}

// "Func"
func (e *Func) ExprName() string { return "Func" }

func (e *Func) Position() Pos { return e.Pos }

// Get the inferred (or assigned) type of e.
func (e *Func) Type() types.Type { return types.RealType(e.inferred) }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Func) SetType(t types.Type) { e.inferred = t }

// Application: `f x`. Applications take a single argument; multi-argument
// calls are nested applications.
type Call struct {
	Func     Expr
	Arg      Expr
	Pos      Pos
	inferred types.Type
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

func (e *Call) Position() Pos { return e.Pos }

// Get the inferred (or assigned) type of e.
func (e *Call) Type() types.Type { return types.RealType(e.inferred) }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *Call) SetType(t types.Type) { e.inferred = t }

// Conditional: `if c then a else b`
type If struct {
	Cond     Expr
	Then     Expr
	Else     Expr
	Pos      Pos
	inferred types.Type
}

// "If"
func (e *If) ExprName() string { return "If" }

func (e *If) Position() Pos { return e.Pos }

// Get the inferred (or assigned) type of e.
func (e *If) Type() types.Type { return types.RealType(e.inferred) }

// Assign a type to e. Type assignments should occur indirectly, during inference.
func (e *If) SetType(t types.Type) { e.inferred = t }

// Body is a sequence of nested let-bindings followed by a single result
// expression. Bodies appear as function bodies and as the right-hand sides
// of bindings.
type Body struct {
	Lets []*Binding
	Expr Expr
}

// Get the inferred (or assigned) type of the body's result expression.
func (b *Body) Type() types.Type { return b.Expr.Type() }

func (b *Body) Position() Pos {
	if len(b.Lets) > 0 {
		return b.Lets[0].Position()
	}
	return b.Expr.Position()
}

// Let-binding: `let [rec] pat = body`. The binding's pattern may be a bound
// name, a wildcard, or unit; tuple patterns are rejected during inference.
type Binding struct {
	Rec      bool
	Pat      Pattern
	Body     *Body
	Pos      Pos
	inferred types.Type
}

func (b *Binding) Position() Pos { return b.Pos }

// Get the inferred (or assigned) generalized type of the binding.
func (b *Binding) Type() types.Type { return types.RealType(b.inferred) }

// Assign a type to b. Type assignments should occur indirectly, during inference.
func (b *Binding) SetType(t types.Type) { b.inferred = t }

// Program is an ordered sequence of top-level let-bindings.
type Program struct {
	Bindings []*Binding
}

// Wildcard pattern: `_`
type AnyPattern struct {
	Pos      Pos
	inferred types.Type
}

// "Any"
func (p *AnyPattern) PatternName() string { return "Any" }

func (p *AnyPattern) Position() Pos { return p.Pos }

// Get the inferred (or assigned) type of p.
func (p *AnyPattern) Type() types.Type { return types.RealType(p.inferred) }

// Assign a type to p. Type assignments should occur indirectly, during inference.
func (p *AnyPattern) SetType(t types.Type) { p.inferred = t }

// Unit pattern: `()`
type UnitPattern struct {
	Pos      Pos
	inferred types.Type
}

// "Unit"
func (p *UnitPattern) PatternName() string { return "Unit" }

func (p *UnitPattern) Position() Pos { return p.Pos }

// Get the inferred (or assigned) type of p.
func (p *UnitPattern) Type() types.Type { return types.RealType(p.inferred) }

// Assign a type to p. Type assignments should occur indirectly, during inference.
func (p *UnitPattern) SetType(t types.Type) { p.inferred = t }

// Bound-name pattern: `x`
type VarPattern struct {
	Name     string
	Pos      Pos
	inferred types.Type
}

// "Var"
func (p *VarPattern) PatternName() string { return "Var" }

func (p *VarPattern) Position() Pos { return p.Pos }

// Get the inferred (or assigned) type of p.
func (p *VarPattern) Type() types.Type { return types.RealType(p.inferred) }

// Assign a type to p. Type assignments should occur indirectly, during inference.
func (p *VarPattern) SetType(t types.Type) { p.inferred = t }

// Tuple-destructuring pattern: `(a, b)`. Accepted by the syntax but not yet
// supported by inference, which reports it as an error.
type TuplePattern struct {
	Pats []Pattern
	Pos  Pos
}

// "Tuple"
func (p *TuplePattern) PatternName() string { return "Tuple" }

func (p *TuplePattern) Position() Pos { return p.Pos }

// Tuple patterns are never assigned a type.
func (p *TuplePattern) Type() types.Type { return nil }
