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

// construct provides combinators for building seed-environment types and
// syntax trees, primarily for declaring primitive operators and for tests.
package construct

import (
	"github.com/minml-lang/minml/ast"
	"github.com/minml-lang/minml/types"
)

// Types

// schemeLevel derives the level stamp for a hand-built composite: generic
// children make the composite generic, so instantiation knows to copy it.
func schemeLevel(ts ...types.Type) int {
	l := 0
	for _, t := range ts {
		if tl := types.LevelOf(t); tl > l {
			l = tl
		}
	}
	return l
}

// Type constant: `int`, `bool`, etc
func TConst(name string) *types.Const {
	return &types.Const{Name: name}
}

// Function type: `int -> int`
func TArrow(arg, ret types.Type) *types.Arrow {
	return types.NewArrow(arg, ret, schemeLevel(arg, ret))
}

// Curried two-argument function type: `int -> int -> int`
func TArrow2(arg1, arg2, ret types.Type) *types.Arrow {
	return TArrow(arg1, TArrow(arg2, ret))
}

// Curried three-argument function type: `bool -> 'a -> 'a -> 'a`
func TArrow3(arg1, arg2, arg3, ret types.Type) *types.Arrow {
	return TArrow(arg1, TArrow(arg2, TArrow(arg3, ret)))
}

// Tuple type: `(int * bool)`
func TTuple(elems ...types.Type) *types.Tuple {
	return types.NewTuple(elems, schemeLevel(elems...))
}

// Expressions

// Integer literal
func Int(syntax string) *ast.Literal {
	return &ast.Literal{Kind: ast.IntLit, Syntax: syntax}
}

// Floating-point literal
func Float(syntax string) *ast.Literal {
	return &ast.Literal{Kind: ast.FloatLit, Syntax: syntax}
}

// String literal
func Str(syntax string) *ast.Literal {
	return &ast.Literal{Kind: ast.StringLit, Syntax: syntax}
}

// Boolean literal
func Bool(syntax string) *ast.Literal {
	return &ast.Literal{Kind: ast.BoolLit, Syntax: syntax}
}

// Unit literal: `()`
func Unit() *ast.Literal {
	return &ast.Literal{Kind: ast.UnitLit, Syntax: "()"}
}

// Name reference
func Var(name string) *ast.Ident {
	return &ast.Ident{Name: name}
}

// Tuple expression: `(a, b)`
func Tuple(elems ...ast.Expr) *ast.Tuple {
	return &ast.Tuple{Elems: elems}
}

// Abstraction with a named parameter: `fun x -> body`
func Func(param string, body ast.Expr) *ast.Func {
	return &ast.Func{Param: PVar(param), Body: Body(body)}
}

// Abstraction over an arbitrary pattern and body.
func FuncPat(param ast.Pattern, body *ast.Body) *ast.Func {
	return &ast.Func{Param: param, Body: body}
}

// Application: `f x`, curried for multiple arguments.
func Call(f ast.Expr, args ...ast.Expr) ast.Expr {
	e := f
	for _, arg := range args {
		e = &ast.Call{Func: e, Arg: arg}
	}
	return e
}

// Conditional: `if c then a else b`
func If(cond, then, els ast.Expr) *ast.If {
	return &ast.If{Cond: cond, Then: then, Else: els}
}

// Bodies, bindings, programs

// Body wraps a result expression, optionally preceded by nested
// let-bindings: `let a = 1 in expr`
func Body(expr ast.Expr, lets ...*ast.Binding) *ast.Body {
	return &ast.Body{Lets: lets, Expr: expr}
}

// Non-recursive let-binding: `let pat = body`
func Let(pat ast.Pattern, body *ast.Body) *ast.Binding {
	return &ast.Binding{Pat: pat, Body: body}
}

// Recursive let-binding: `let rec pat = body`
func LetRec(pat ast.Pattern, body *ast.Body) *ast.Binding {
	return &ast.Binding{Rec: true, Pat: pat, Body: body}
}

// Program of top-level bindings.
func Prog(bindings ...*ast.Binding) *ast.Program {
	return &ast.Program{Bindings: bindings}
}

// Patterns

// Wildcard pattern: `_`
func PAny() *ast.AnyPattern { return &ast.AnyPattern{} }

// Unit pattern: `()`
func PUnit() *ast.UnitPattern { return &ast.UnitPattern{} }

// Bound-name pattern: `x`
func PVar(name string) *ast.VarPattern { return &ast.VarPattern{Name: name} }

// Tuple-destructuring pattern: `(a, b)` (rejected by inference)
func PTuple(pats ...ast.Pattern) *ast.TuplePattern { return &ast.TuplePattern{Pats: pats} }
