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
	"errors"
	"testing"

	"github.com/minml-lang/minml/types"
)

func TestUnifyLinksDeeperToShallower(t *testing.T) {
	ctx := NewContext()

	shallow := types.NewVar(0, 1)
	deep := types.NewVar(1, 3)

	if err := ctx.unify(shallow, deep); err != nil {
		t.Fatal(err)
	}
	if !deep.IsLinkVar() {
		t.Fatal("the deeper variable must link to the shallower one")
	}
	if types.RealType(deep) != types.Type(shallow) {
		t.Fatalf("link target: %#v", deep.Link())
	}
	if !shallow.IsUnboundVar() || shallow.Level() != 1 {
		t.Fatalf("the shallower variable must survive unchanged at its level")
	}
}

func TestUnifyIsSymmetric(t *testing.T) {
	ctx := NewContext()

	tv := types.NewVar(0, 1)
	if err := ctx.unify(types.Int, tv); err != nil {
		t.Fatal(err)
	}
	if types.RealType(tv) != types.Type(types.Int) {
		t.Fatalf("expected tv to resolve to int, got %s", types.TypeString(tv))
	}
}

func TestUnifyGroundMismatch(t *testing.T) {
	ctx := NewContext()

	err := ctx.unify(types.Int, types.Bool)
	var e *Error
	if !errors.As(err, &e) || e.Kind != ErrUnification {
		t.Fatalf("error: %v", err)
	}
	if e.Message() != "Failed to unify int with bool" {
		t.Fatalf("error: %s", e.Message())
	}

	// Constants unify by name, not by allocation.
	if err := ctx.unify(&types.Const{Name: "int"}, types.Int); err != nil {
		t.Fatal(err)
	}
}

func TestUnifyShapeMismatch(t *testing.T) {
	ctx := NewContext()

	arrow := types.NewArrow(types.Int, types.Int, 0)
	tuple := types.NewTuple([]types.Type{types.Int, types.Int}, 0)
	err := ctx.unify(arrow, tuple)
	var e *Error
	if !errors.As(err, &e) || e.Kind != ErrUnification {
		t.Fatalf("error: %v", err)
	}
	if e.Message() != "Failed to unify int -> int with (int * int)" {
		t.Fatalf("error: %s", e.Message())
	}
}

func TestUnifyTupleArityMismatch(t *testing.T) {
	ctx := NewContext()

	a := types.NewTuple([]types.Type{types.Int, types.Int}, 0)
	b := types.NewTuple([]types.Type{types.Int, types.Int, types.Int}, 0)
	err := ctx.unify(a, b)
	var e *Error
	if !errors.As(err, &e) || e.Kind != ErrUnification {
		t.Fatalf("error: %v", err)
	}
	if e.Message() != "Cannot unify tuples with differing arity: (int * int) and (int * int * int)" {
		t.Fatalf("error: %s", e.Message())
	}
}

func TestUnifyRejectsGenericVariables(t *testing.T) {
	ctx := NewContext()

	err := ctx.unify(types.NewGenericVar(0), types.Int)
	var e *Error
	if !errors.As(err, &e) || e.Kind != ErrInvariant {
		t.Fatalf("error: %v", err)
	}
}

func TestUnifyRecursesThroughComposites(t *testing.T) {
	ctx := NewContext()

	arg := types.NewVar(0, 1)
	ret := types.NewVar(1, 1)
	a := types.NewArrow(arg, ret, 1)
	b := types.NewArrow(types.Int, types.Bool, 1)

	if err := ctx.unify(a, b); err != nil {
		t.Fatal(err)
	}
	if s := types.TypeString(a); s != "int -> bool" {
		t.Fatalf("type: %s", s)
	}
}

func TestUpdateLevelLowersUnboundVariable(t *testing.T) {
	ctx := NewContext()

	tv := types.NewVar(0, 3)
	if err := ctx.updateLevel(1, tv); err != nil {
		t.Fatal(err)
	}
	if tv.Level() != 1 {
		t.Fatalf("level: %d", tv.Level())
	}

	// Levels are only ever lowered.
	if err := ctx.updateLevel(2, tv); err != nil {
		t.Fatal(err)
	}
	if tv.Level() != 1 {
		t.Fatalf("level: %d", tv.Level())
	}
}

// Lowering a stable composite must not eagerly walk its children: the node
// is queued for lazy repair and only its New bound moves.
func TestUpdateLevelDefersCompositeRepair(t *testing.T) {
	ctx := NewContext()

	child := types.NewVar(0, 3)
	arrow := types.NewArrow(child, types.Int, 3)

	if err := ctx.updateLevel(1, arrow); err != nil {
		t.Fatal(err)
	}
	if arrow.Levels.Old != 3 || arrow.Levels.New != 1 {
		t.Fatalf("levels: %+v", arrow.Levels)
	}
	if child.Level() != 3 {
		t.Fatalf("children must not be repaired eagerly, child level: %d", child.Level())
	}
	if len(ctx.pending) != 1 {
		t.Fatalf("pending: %d", len(ctx.pending))
	}

	// Draining the queue re-bounds the children and re-stabilizes the node.
	if err := ctx.forceLevelUpdates(); err != nil {
		t.Fatal(err)
	}
	if child.Level() != 1 {
		t.Fatalf("child level after repair: %d", child.Level())
	}
	if !arrow.Levels.Stable() || arrow.Levels.New != 1 {
		t.Fatalf("levels after repair: %+v", arrow.Levels)
	}
	if len(ctx.pending) != 0 {
		t.Fatalf("pending after repair: %d", len(ctx.pending))
	}
}

// A queued node still owned by an enclosing active scope is kept queued for
// a later drain rather than repaired mid-scope.
func TestForceLevelUpdatesDefersInScopeNodes(t *testing.T) {
	ctx := NewContext()
	ctx.level = 2

	child := types.NewVar(0, 2)
	arrow := types.NewArrow(child, types.Int, 2)

	if err := ctx.updateLevel(1, arrow); err != nil {
		t.Fatal(err)
	}
	if err := ctx.forceLevelUpdates(); err != nil {
		t.Fatal(err)
	}
	if child.Level() != 2 {
		t.Fatalf("child must not be repaired while its node is in scope, level: %d", child.Level())
	}
	if len(ctx.pending) != 1 {
		t.Fatalf("pending: %d", len(ctx.pending))
	}

	ctx.level = 0
	if err := ctx.forceLevelUpdates(); err != nil {
		t.Fatal(err)
	}
	if child.Level() != 1 {
		t.Fatalf("child level after repair: %d", child.Level())
	}
	if len(ctx.pending) != 0 {
		t.Fatalf("pending after repair: %d", len(ctx.pending))
	}
}

func TestUnifyLowersCompositeLevels(t *testing.T) {
	ctx := NewContext()

	low := types.NewArrow(types.Int, types.Int, 1)
	hi := types.NewArrow(types.NewVar(0, 3), types.NewVar(1, 3), 3)

	if err := ctx.unify(low, hi); err != nil {
		t.Fatal(err)
	}
	if low.Levels.New != 1 || hi.Levels.New != 1 {
		t.Fatalf("levels: %+v %+v", low.Levels, hi.Levels)
	}
}
