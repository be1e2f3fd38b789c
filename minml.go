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

// minml is the Hindley-Milner type-inference engine of a small ML-family
// language front-end.
//
// Inference uses level-based generalization over a mutable type-graph:
// type-variables are union-find cells which are linked during unification,
// and let-polymorphism is implemented with generalize/instantiate governed
// by integer binding-levels instead of repeated free-variable computation.
// Level lowering caused by deep unifications is recorded once and propagated
// to ancestor nodes lazily, which keeps generalization sub-quadratic.
//
// Given an untyped, position-annotated program and a seed environment of
// primitive operator types, the engine produces the inferred (possibly
// polymorphic) type of every top-level binding, an optionally type-annotated
// copy of the program, and the final threaded environment, or the first
// type error encountered.
//
// Supported Features:
//
//   - Ground types (int, float, string, bool, unit), unary arrows, tuples
//   - Let-polymorphism with level-scoped generalization
//   - Recursive (self-referential) let-bindings
//   - Occurs-check rejection of infinite types
//   - Deterministic type-variable naming across runs
//
// Links:
//
// Efficient Generalization with Levels (Oleg Kiselyov): http://okmij.org/ftp/ML/generalization.html#levels
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
package minml
