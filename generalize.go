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

// generalize promotes the type-variables of t which are scoped deeper than
// the current level to the generic level, making t a polymorphic scheme.
// All pending level repairs are forced first, so promotion decisions are
// made against authoritative levels.
func (ti *InferenceContext) generalize(t types.Type) (types.Type, error) {
	return ti.generalizeAt(ti.level, t)
}

func (ti *InferenceContext) generalizeAt(level int, t types.Type) (types.Type, error) {
	if err := ti.forceLevelUpdates(); err != nil {
		return nil, err
	}
	t = types.RealType(t)
	if err := ti.generalizeVisit(level, t); err != nil {
		return nil, err
	}
	return t, nil
}

// generalizeVisit walks the sub-graph scoped deeper than level. Unbound
// variables are promoted to generic; composite levels are re-derived
// bottom-up as the maximum of their children's resulting levels and
// re-stabilized. Nodes at or below level stay untouched and remain shared
// with the outer scope. Re-encountering an in-progress composite means the
// graph is cyclic; the walk stops there rather than looping.
func (ti *InferenceContext) generalizeVisit(level int, t types.Type) error {
	switch t := types.RealType(t).(type) {
	case *types.Var:
		if t.IsUnboundVar() && t.Level() > level {
			t.SetGeneric()
		}
		return nil

	case *types.Arrow:
		ls := t.LevelBounds()
		if ls.New <= level {
			return nil
		}
		if ti.visiting.Contains(ls) {
			return occursError(t)
		}
		ti.visiting.Insert(ls)
		err := ti.generalizeVisit(level, t.Arg)
		if err == nil {
			err = ti.generalizeVisit(level, t.Return)
		}
		ti.visiting.Remove(ls)
		if err != nil {
			return err
		}
		l := maxLevel(types.LevelOf(t.Arg), types.LevelOf(t.Return))
		ls.Old, ls.New = l, l
		return nil

	case *types.Tuple:
		ls := t.LevelBounds()
		if ls.New <= level {
			return nil
		}
		if ti.visiting.Contains(ls) {
			return occursError(t)
		}
		ti.visiting.Insert(ls)
		l := 0
		var err error
		for _, el := range t.Elems {
			if err = ti.generalizeVisit(level, el); err != nil {
				break
			}
			l = maxLevel(l, types.LevelOf(el))
		}
		ti.visiting.Remove(ls)
		if err != nil {
			return err
		}
		ls.Old, ls.New = l, l
		return nil
	}
	return nil
}

func maxLevel(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// occursCheck certifies that t is finite. It must run after every
// generalization: unification links variables without walking the linked
// type, so a cyclic graph can exist until this check rejects it.
func (ti *InferenceContext) occursCheck(t types.Type) error {
	switch t := types.RealType(t).(type) {
	case *types.Arrow:
		ls := t.LevelBounds()
		if ti.visiting.Contains(ls) {
			return occursError(t)
		}
		ti.visiting.Insert(ls)
		err := ti.occursCheck(t.Arg)
		if err == nil {
			err = ti.occursCheck(t.Return)
		}
		ti.visiting.Remove(ls)
		return err

	case *types.Tuple:
		ls := t.LevelBounds()
		if ti.visiting.Contains(ls) {
			return occursError(t)
		}
		ti.visiting.Insert(ls)
		var err error
		for _, el := range t.Elems {
			if err = ti.occursCheck(el); err != nil {
				break
			}
		}
		ti.visiting.Remove(ls)
		return err
	}
	return nil
}
