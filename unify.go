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

// updateLevel bounds the level of t to level, resolving t through link
// chains first. Unbound variables are lowered immediately. Composite nodes
// only have their New bound lowered; a node which was level-stable is
// enqueued on the pending queue so its children can be re-bounded lazily,
// which is what keeps level propagation sub-quadratic.
func (ti *InferenceContext) updateLevel(level int, t types.Type) error {
	switch t := types.RealType(t).(type) {
	case *types.Var:
		if t.IsGenericVar() {
			return invariantError("Generic type-variable was not instantiated before level adjustment")
		}
		if t.Level() > level {
			t.SetLevel(level)
		}
		return nil

	case types.Composite:
		ls := t.LevelBounds()
		if ls.New == types.GenericVarLevel {
			return invariantError("Generalized " + t.TypeName() + " cannot be level-adjusted")
		}
		if ti.visiting.Contains(ls) {
			return occursError(t)
		}
		if ls.New > level {
			if ls.Stable() {
				ti.pending = append(ti.pending, t)
			}
			ls.New = level
		}
		return nil

	case *types.Const:
		return nil
	}
	return invariantError("Unexpected type " + t.TypeName() + " during level adjustment")
}

// unifyAtLevel bounds both sides to level before unifying them. Used for
// the children of composite nodes, which must not outlive the lower of
// their parents' scopes.
func (ti *InferenceContext) unifyAtLevel(level int, a, b types.Type) error {
	a, b = types.RealType(a), types.RealType(b)
	if err := ti.updateLevel(level, a); err != nil {
		return err
	}
	if err := ti.updateLevel(level, b); err != nil {
		return err
	}
	return ti.unify(a, b)
}

// unify makes a and b equal by linking type-variables and recursing through
// composite shapes. Linking always points the deeper variable at the
// shallower one, so surviving variables stay at the shallowest possible
// scope. Composite nodes join the visiting set for the duration of their
// children's unification; re-encountering a member signals an infinite type.
func (ti *InferenceContext) unify(a, b types.Type) error {
	if a == b {
		return nil
	}
	a, b = types.RealType(a), types.RealType(b)
	if a == b {
		return nil
	}

	// unify type-variables:

	avar, _ := a.(*types.Var)
	bvar, _ := b.(*types.Var)
	switch {
	case avar == nil && bvar != nil:
		return ti.unify(b, a)

	case avar != nil:
		if avar.IsGenericVar() {
			return invariantError("Generic type-variable was not instantiated before unification")
		}
		if bvar != nil {
			if bvar.IsGenericVar() {
				return invariantError("Generic type-variable was not instantiated before unification")
			}
			if avar.Level() > bvar.Level() {
				avar.SetLink(b)
			} else {
				bvar.SetLink(a)
			}
			return nil
		}
		// Bound the concrete side to the variable's scope before linking,
		// so no type escapes the scope the variable belongs to.
		if err := ti.updateLevel(avar.Level(), b); err != nil {
			return err
		}
		avar.SetLink(b)
		return nil
	}

	// unify concrete types:

	switch a := a.(type) {
	case *types.Const:
		if b, ok := b.(*types.Const); ok && a.Name == b.Name {
			return nil
		}

	case *types.Arrow:
		b, ok := b.(*types.Arrow)
		if !ok {
			break
		}
		la, lb := a.LevelBounds(), b.LevelBounds()
		if la.New == types.GenericVarLevel || lb.New == types.GenericVarLevel {
			return invariantError("Generic arrow was not instantiated before unification")
		}
		if ti.visiting.Contains(la) || ti.visiting.Contains(lb) {
			return occursError(a)
		}
		min := la.New
		if lb.New < min {
			min = lb.New
		}
		ti.visiting.Insert(la)
		ti.visiting.Insert(lb)
		err := ti.unifyAtLevel(min, a.Arg, b.Arg)
		if err == nil {
			err = ti.unifyAtLevel(min, a.Return, b.Return)
		}
		ti.visiting.Remove(la)
		ti.visiting.Remove(lb)
		if err != nil {
			return err
		}
		// The min level is provisional; generalization re-derives the
		// authoritative level bottom-up from the children.
		la.New, lb.New = min, min
		return nil

	case *types.Tuple:
		b, ok := b.(*types.Tuple)
		if !ok {
			break
		}
		if len(a.Elems) != len(b.Elems) {
			return arityError(a, b)
		}
		la, lb := a.LevelBounds(), b.LevelBounds()
		if la.New == types.GenericVarLevel || lb.New == types.GenericVarLevel {
			return invariantError("Generic tuple was not instantiated before unification")
		}
		if ti.visiting.Contains(la) || ti.visiting.Contains(lb) {
			return occursError(a)
		}
		min := la.New
		if lb.New < min {
			min = lb.New
		}
		ti.visiting.Insert(la)
		ti.visiting.Insert(lb)
		var err error
		for i := range a.Elems {
			if err = ti.unifyAtLevel(min, a.Elems[i], b.Elems[i]); err != nil {
				break
			}
		}
		ti.visiting.Remove(la)
		ti.visiting.Remove(lb)
		if err != nil {
			return err
		}
		la.New, lb.New = min, min
		return nil
	}

	return unifyError(a, b)
}

// forceLevelUpdates drains the pending level-repair queue, re-bounding each
// queued node's children to the node's lowered level and re-stabilizing the
// node. Nodes still owned by an enclosing active scope are kept queued for
// a later drain. Must run before generalization.
func (ti *InferenceContext) forceLevelUpdates() error {
	pending := ti.pending
	ti.pending = nil
	var retry []types.Composite
	for _, c := range pending {
		var err error
		if retry, err = ti.adjustLevels(retry, c); err != nil {
			ti.pending = retry
			return err
		}
	}
	ti.pending = retry
	return nil
}

func (ti *InferenceContext) adjustLevels(acc []types.Composite, c types.Composite) ([]types.Composite, error) {
	ls := c.LevelBounds()
	if ls.Old <= ti.level {
		// Still in scope at the current level; repair on a later drain.
		return append(acc, c), nil
	}
	if ls.Stable() {
		return acc, nil
	}
	level := ls.New
	ti.visiting.Insert(ls)
	var err error
	switch c := c.(type) {
	case *types.Arrow:
		if acc, err = ti.boundChild(acc, level, c.Arg); err == nil {
			acc, err = ti.boundChild(acc, level, c.Return)
		}
	case *types.Tuple:
		for _, el := range c.Elems {
			if acc, err = ti.boundChild(acc, level, el); err != nil {
				break
			}
		}
	}
	ti.visiting.Remove(ls)
	if err != nil {
		return acc, err
	}
	ls.Old, ls.New = level, level
	return acc, nil
}

func (ti *InferenceContext) boundChild(acc []types.Composite, level int, t types.Type) ([]types.Composite, error) {
	switch t := types.RealType(t).(type) {
	case *types.Var:
		if t.IsGenericVar() {
			return acc, invariantError("Generic type-variable found during level repair")
		}
		if t.Level() > level {
			t.SetLevel(level)
		}
		return acc, nil

	case types.Composite:
		ls := t.LevelBounds()
		if ti.visiting.Contains(ls) {
			return acc, occursError(t)
		}
		if ls.New > level {
			ls.New = level
		}
		return ti.adjustLevels(acc, t)
	}
	return acc, nil
}
