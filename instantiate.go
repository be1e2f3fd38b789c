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
	"github.com/minml-lang/minml/types"
)

// instantiate deep-copies the sub-graph of t reachable through generic
// nodes, replacing each distinct generic variable with a fresh variable at
// the given level. Every occurrence of the same generic variable maps to the
// same fresh variable within one instantiation (the memo must be cleared
// between instantiations), so shared structure such as `'a -> 'a` is
// preserved in each instance. Non-generic sub-graphs are shared by
// reference, never copied.
func (ti *InferenceContext) instantiate(level int, t types.Type) types.Type {
	switch t := t.(type) {
	case *types.Var:
		switch {
		case t.IsLinkVar():
			return ti.instantiate(level, t.Link())
		case t.IsGenericVar():
			if tv, ok := ti.instLookup[t.Id()]; ok {
				return tv
			}
			tv := ti.varTracker.New(level)
			ti.instLookup[t.Id()] = tv
			return tv
		default:
			return t
		}

	case *types.Arrow:
		if t.Levels.New != types.GenericVarLevel {
			return t
		}
		return types.NewArrow(ti.instantiate(level, t.Arg), ti.instantiate(level, t.Return), level)

	case *types.Tuple:
		if t.Levels.New != types.GenericVarLevel {
			return t
		}
		elems := make([]types.Type, len(t.Elems))
		for i, el := range t.Elems {
			elems[i] = ti.instantiate(level, el)
		}
		return types.NewTuple(elems, level)
	}
	return t
}
