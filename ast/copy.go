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

// CopyExpr returns a deep copy of an expression. Inferred types are not
// carried over to the copy.
func CopyExpr(e Expr) Expr {
	switch et := e.(type) {
	case *Literal:
		return &Literal{Kind: et.Kind, Syntax: et.Syntax, Pos: et.Pos}

	case *Ident:
		return &Ident{Name: et.Name, Pos: et.Pos}

	case *Tuple:
		elems := make([]Expr, len(et.Elems))
		for i, el := range et.Elems {
			elems[i] = CopyExpr(el)
		}
		return &Tuple{Elems: elems, Pos: et.Pos}

	case *Func:
		return &Func{Param: CopyPattern(et.Param), Body: CopyBody(et.Body), Pos: et.Pos}

	case *Call:
		return &Call{Func: CopyExpr(et.Func), Arg: CopyExpr(et.Arg), Pos: et.Pos}

	case *If:
		return &If{Cond: CopyExpr(et.Cond), Then: CopyExpr(et.Then), Else: CopyExpr(et.Else), Pos: et.Pos}

	case nil:
		return nil
	}
	panic("unknown expression type: " + e.ExprName())
}

// CopyPattern returns a deep copy of a pattern.
func CopyPattern(p Pattern) Pattern {
	switch pt := p.(type) {
	case *AnyPattern:
		return &AnyPattern{Pos: pt.Pos}
	case *UnitPattern:
		return &UnitPattern{Pos: pt.Pos}
	case *VarPattern:
		return &VarPattern{Name: pt.Name, Pos: pt.Pos}
	case *TuplePattern:
		pats := make([]Pattern, len(pt.Pats))
		for i, sub := range pt.Pats {
			pats[i] = CopyPattern(sub)
		}
		return &TuplePattern{Pats: pats, Pos: pt.Pos}
	}
	panic("unknown pattern type: " + p.PatternName())
}

// CopyBody returns a deep copy of a binding body.
func CopyBody(b *Body) *Body {
	lets := make([]*Binding, len(b.Lets))
	for i, let := range b.Lets {
		lets[i] = CopyBinding(let)
	}
	return &Body{Lets: lets, Expr: CopyExpr(b.Expr)}
}

// CopyBinding returns a deep copy of a let-binding.
func CopyBinding(b *Binding) *Binding {
	return &Binding{Rec: b.Rec, Pat: CopyPattern(b.Pat), Body: CopyBody(b.Body), Pos: b.Pos}
}

// CopyProgram returns a deep copy of a program.
func CopyProgram(p *Program) *Program {
	bindings := make([]*Binding, len(p.Bindings))
	for i, b := range p.Bindings {
		bindings[i] = CopyBinding(b)
	}
	return &Program{Bindings: bindings}
}
