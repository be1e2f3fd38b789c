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
	"strings"
)

// ExprString returns a source-like string representation of an expression.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, false, e)
	return sb.String()
}

// PatternString returns a source-like string representation of a pattern.
func PatternString(p Pattern) string {
	var sb strings.Builder
	patternString(&sb, p)
	return sb.String()
}

// BindingString returns a source-like string representation of a binding.
func BindingString(b *Binding) string {
	var sb strings.Builder
	bindingString(&sb, b)
	return sb.String()
}

// ProgramString returns a source-like string representation of a program,
// one top-level binding per line.
func ProgramString(p *Program) string {
	var sb strings.Builder
	for i, b := range p.Bindings {
		if i > 0 {
			sb.WriteByte('\n')
		}
		bindingString(&sb, b)
	}
	return sb.String()
}

func exprString(sb *strings.Builder, simple bool, e Expr) {
	switch et := e.(type) {
	case *Literal:
		sb.WriteString(et.Syntax)

	case *Ident:
		sb.WriteString(et.Name)

	case *Tuple:
		sb.WriteByte('(')
		for i, el := range et.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, false, el)
		}
		sb.WriteByte(')')

	case *Func:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("fun ")
		patternString(sb, et.Param)
		sb.WriteString(" -> ")
		bodyString(sb, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *Call:
		if simple {
			sb.WriteByte('(')
		}
		// Application is left-associative, so a call in function position
		// needs no parentheses of its own.
		if _, ok := et.Func.(*Call); ok {
			exprString(sb, false, et.Func)
		} else {
			exprString(sb, true, et.Func)
		}
		sb.WriteByte(' ')
		exprString(sb, true, et.Arg)
		if simple {
			sb.WriteByte(')')
		}

	case *If:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("if ")
		exprString(sb, false, et.Cond)
		sb.WriteString(" then ")
		exprString(sb, false, et.Then)
		sb.WriteString(" else ")
		exprString(sb, false, et.Else)
		if simple {
			sb.WriteByte(')')
		}

	case nil:
		sb.WriteString("<nil>")

	default:
		sb.WriteString("<unknown " + e.ExprName() + ">")
	}
}

func bodyString(sb *strings.Builder, b *Body) {
	for _, let := range b.Lets {
		bindingString(sb, let)
		sb.WriteString(" in ")
	}
	exprString(sb, false, b.Expr)
}

func bindingString(sb *strings.Builder, b *Binding) {
	sb.WriteString("let ")
	if b.Rec {
		sb.WriteString("rec ")
	}
	patternString(sb, b.Pat)
	sb.WriteString(" = ")
	bodyString(sb, b.Body)
}

func patternString(sb *strings.Builder, p Pattern) {
	switch pt := p.(type) {
	case *AnyPattern:
		sb.WriteByte('_')
	case *UnitPattern:
		sb.WriteString("()")
	case *VarPattern:
		sb.WriteString(pt.Name)
	case *TuplePattern:
		sb.WriteByte('(')
		for i, sub := range pt.Pats {
			if i > 0 {
				sb.WriteString(", ")
			}
			patternString(sb, sub)
		}
		sb.WriteByte(')')
	default:
		sb.WriteString("<unknown pattern>")
	}
}
