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

// topLevel is the binding-level of top-level declarations. Entering a
// binding's right-hand side increments the current level; leaving it
// decrements it back.
const topLevel = 0

func (ti *InferenceContext) inferExpr(env *TypeEnv, e ast.Expr) (types.Type, error) {
	switch e := e.(type) {
	case *ast.Literal:
		var t types.Type
		switch e.Kind {
		case ast.IntLit:
			t = types.Int
		case ast.FloatLit:
			t = types.Float
		case ast.StringLit:
			t = types.String
		case ast.BoolLit:
			t = types.Bool
		case ast.UnitLit:
			t = types.Unit
		default:
			return nil, ti.fail(e, invariantError("Unknown literal kind for "+e.Syntax))
		}
		if ti.annotate {
			e.SetType(t)
		}
		return t, nil

	case *ast.Ident:
		t, ok := env.Lookup(e.Name)
		if !ok {
			return nil, ti.fail(e, unboundError(e.Name))
		}
		ti.clearInstLookup()
		t = ti.instantiate(ti.level, t)
		if ti.annotate {
			e.SetType(t)
		}
		return t, nil

	case *ast.Tuple:
		if len(e.Elems) < 2 {
			return nil, ti.fail(e, invariantError("Tuple expressions must have an arity of at least 2"))
		}
		elems := make([]types.Type, len(e.Elems))
		for i, el := range e.Elems {
			t, err := ti.inferExpr(env, el)
			if err != nil {
				return nil, err
			}
			elems[i] = t
		}
		t := types.NewTuple(elems, ti.level)
		if ti.annotate {
			e.SetType(t)
		}
		return t, nil

	case *ast.Func:
		paramEnv, paramType, err := ti.bindParam(env, e.Param)
		if err != nil {
			return nil, err
		}
		ret, err := ti.inferBody(paramEnv, e.Body)
		if err != nil {
			return nil, err
		}
		t := types.NewArrow(paramType, ret, ti.level)
		if ti.annotate {
			e.SetType(t)
		}
		return t, nil

	case *ast.Call:
		ft, err := ti.inferExpr(env, e.Func)
		if err != nil {
			return nil, err
		}
		at, err := ti.inferExpr(env, e.Arg)
		if err != nil {
			return nil, err
		}
		ret := ti.newVar()
		if err := ti.unify(ft, types.NewArrow(at, ret, ti.level)); err != nil {
			return nil, ti.fail(e, err)
		}
		if ti.annotate {
			e.SetType(ret)
		}
		return ret, nil

	case *ast.If:
		ct, err := ti.inferExpr(env, e.Cond)
		if err != nil {
			return nil, err
		}
		if err := ti.unify(ct, types.Bool); err != nil {
			return nil, ti.fail(e.Cond, err)
		}
		tt, err := ti.inferExpr(env, e.Then)
		if err != nil {
			return nil, err
		}
		et, err := ti.inferExpr(env, e.Else)
		if err != nil {
			return nil, err
		}
		if err := ti.unify(tt, et); err != nil {
			return nil, ti.fail(e, err)
		}
		if ti.annotate {
			e.SetType(tt)
		}
		return tt, nil
	}

	var exprName string
	if e != nil {
		exprName = "(" + e.ExprName() + ")"
	} else {
		exprName = "(nil)"
	}
	return nil, ti.fail(e, invariantError("Unhandled expression "+exprName))
}

// bindParam binds a function parameter pattern: a named pattern introduces a
// fresh type-variable and extends the environment; wildcard and unit produce
// a fresh placeholder without naming an identifier. Tuple patterns are not
// supported.
func (ti *InferenceContext) bindParam(env *TypeEnv, pat ast.Pattern) (*TypeEnv, types.Type, error) {
	switch pat := pat.(type) {
	case *ast.AnyPattern:
		tv := ti.newVar()
		if ti.annotate {
			pat.SetType(tv)
		}
		return env, tv, nil

	case *ast.UnitPattern:
		tv := ti.newVar()
		if ti.annotate {
			pat.SetType(tv)
		}
		return env, tv, nil

	case *ast.VarPattern:
		tv := ti.newVar()
		if ti.annotate {
			pat.SetType(tv)
		}
		return env.Declare(pat.Name, tv), tv, nil

	case *ast.TuplePattern:
		return nil, nil, ti.fail(pat, patternError(pat))
	}
	return nil, nil, ti.fail(pat, invariantError("Unhandled pattern ("+pat.PatternName()+")"))
}

// inferBody folds the body's nested let-bindings left to right, each
// extending the environment for the next, then infers the result expression
// in the fully extended environment.
func (ti *InferenceContext) inferBody(env *TypeEnv, b *ast.Body) (types.Type, error) {
	for _, let := range b.Lets {
		next, _, err := ti.inferBinding(env, let)
		if err != nil {
			return nil, err
		}
		env = next
	}
	return ti.inferExpr(env, b.Expr)
}

// inferBinding infers a let-binding's right-hand side one level deeper than
// the current scope, generalizes the result at the outer level, certifies it
// finite with the occurs check, and binds the pattern name in the outer
// environment. A recursive binding pre-binds its own name to a fresh
// type-variable so the right-hand side may refer to itself.
func (ti *InferenceContext) inferBinding(env *TypeEnv, b *ast.Binding) (*TypeEnv, types.Type, error) {
	if pat, ok := b.Pat.(*ast.TuplePattern); ok {
		return nil, nil, ti.fail(pat, patternError(pat))
	}

	ti.enterLevel()
	rhsEnv := env
	var recVar *types.Var
	if b.Rec {
		if pat, ok := b.Pat.(*ast.VarPattern); ok {
			recVar = ti.newVar()
			rhsEnv = rhsEnv.Declare(pat.Name, recVar)
		}
	}
	t, err := ti.inferBody(rhsEnv, b.Body)
	if err != nil {
		ti.leaveLevel()
		return nil, nil, err
	}
	if recVar != nil {
		if err := ti.unify(recVar, t); err != nil {
			ti.leaveLevel()
			return nil, nil, ti.fail(b, err)
		}
	}
	ti.leaveLevel()

	if t, err = ti.generalize(t); err != nil {
		return nil, nil, ti.fail(b, err)
	}
	if err := ti.occursCheck(t); err != nil {
		return nil, nil, ti.fail(b, err)
	}
	if ti.annotate {
		b.SetType(t)
	}

	switch pat := b.Pat.(type) {
	case *ast.VarPattern:
		if ti.annotate {
			pat.SetType(t)
		}
		env = env.Declare(pat.Name, t)
	case *ast.AnyPattern:
		if ti.annotate {
			pat.SetType(t)
		}
	case *ast.UnitPattern:
		if ti.annotate {
			pat.SetType(t)
		}
	}
	return env, t, nil
}
