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

// WalkExpr visits e and its sub-expressions in depth-first order.
func WalkExpr(e Expr, f func(Expr)) {
	switch e := e.(type) {
	case *Literal, *Ident:
		f(e)

	case *Tuple:
		f(e)
		for _, el := range e.Elems {
			WalkExpr(el, f)
		}

	case *Func:
		f(e)
		WalkBody(e.Body, f)

	case *Call:
		f(e)
		WalkExpr(e.Func, f)
		WalkExpr(e.Arg, f)

	case *If:
		f(e)
		WalkExpr(e.Cond, f)
		WalkExpr(e.Then, f)
		WalkExpr(e.Else, f)

	case nil:

	default:
		panic("unknown expression type: " + e.ExprName())
	}
}

// WalkBody visits the expressions within a binding body in depth-first order.
func WalkBody(b *Body, f func(Expr)) {
	for _, let := range b.Lets {
		WalkBody(let.Body, f)
	}
	WalkExpr(b.Expr, f)
}

// WalkProgram visits every expression in a program in depth-first order.
func WalkProgram(p *Program, f func(Expr)) {
	for _, b := range p.Bindings {
		WalkBody(b.Body, f)
	}
}
