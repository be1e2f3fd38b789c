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

package minml_test

import (
	"testing"

	. "github.com/minml-lang/minml"
	. "github.com/minml-lang/minml/construct"
)

func BenchmarkRecursiveLet(b *testing.B) {
	env := NewTypeEnv(nil)
	ctx := NewContext()

	env = env.Declare("add", TArrow2(TConst("int"), TConst("int"), TConst("int")))
	env = env.Declare("somebool", TConst("bool"))

	expr := FuncPat(PVar("x"), Body(
		Call(Var("f"), Var("x")),
		LetRec(PVar("f"), Body(
			Func("x", If(
				Var("somebool"),
				Var("x"),
				Call(Var("f"), Call(Var("add"), Var("x"), Var("x")))))))))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ty, err := ctx.Infer(expr, env)
		if err != nil || ty == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLetGeneralization(b *testing.B) {
	env := NewTypeEnv(nil)
	ctx := NewContext()

	expr := FuncPat(PAny(), Body(
		Tuple(
			Call(Var("pair"), Call(Var("id"), Int("1")), Call(Var("id"), Bool("true"))),
			Call(Var("id"), Var("pair"))),
		Let(PVar("id"), Body(Func("x", Var("x")))),
		Let(PVar("pair"), Body(
			FuncPat(PVar("a"), Body(
				Func("b", Tuple(Var("a"), Var("b")))))))))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ty, err := ctx.Infer(expr, env)
		if err != nil || ty == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkProgram(b *testing.B) {
	env := NewTypeEnv(nil)
	ctx := NewContext()

	env = env.Declare("add", TArrow2(TConst("int"), TConst("int"), TConst("int")))

	prog := Prog(
		Let(PVar("id"), Body(Func("x", Var("x")))),
		Let(PVar("double"), Body(Func("x", Call(Var("add"), Var("x"), Var("x"))))),
		LetRec(PVar("iter"), Body(
			Func("x", If(
				Call(Var("id"), Bool("true")),
				Var("x"),
				Call(Var("iter"), Call(Var("double"), Var("x"))))))),
		Let(PVar("main"), Body(Call(Var("iter"), Int("1")))),
	)

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		ts, _, err := ctx.InferProgram(prog, env)
		if err != nil || ts == nil {
			b.Fatal(err)
		}
	}
}
