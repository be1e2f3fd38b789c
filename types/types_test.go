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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealTypeFollowsLinkChains(t *testing.T) {
	a := NewVar(0, 0)
	b := NewVar(1, 0)
	c := NewVar(2, 0)
	a.SetLink(b)
	b.SetLink(c)
	c.SetLink(Int)

	require.Equal(t, Type(Int), RealType(a))
	// Resolution is idempotent.
	require.Equal(t, RealType(a), RealType(RealType(a)))

	// Unbound and generic variables resolve to themselves.
	tv := NewVar(3, 0)
	assert.Same(t, tv, RealType(tv))
	gv := NewGenericVar(4)
	assert.Same(t, gv, RealType(gv))
}

func TestVarStates(t *testing.T) {
	tv := NewVar(0, 2)
	assert.Equal(t, UnboundVar, tv.VarType())
	assert.Equal(t, 2, tv.Level())

	tv.SetGeneric()
	assert.Equal(t, GenericVar, tv.VarType())

	tv = NewVar(1, 2)
	tv.SetLink(Bool)
	assert.Equal(t, LinkVar, tv.VarType())
	assert.Equal(t, Type(Bool), tv.Link())
}

func TestVarFlatten(t *testing.T) {
	a := NewVar(0, 0)
	b := NewVar(1, 0)
	a.SetLink(b)
	b.SetLink(Int)

	a.Flatten()
	require.Equal(t, Type(Int), a.Link())
}

func TestVarNames(t *testing.T) {
	assert.Equal(t, "a", VarName(0))
	assert.Equal(t, "z", VarName(25))
	assert.Equal(t, "t26", VarName(26))
	assert.Equal(t, "t100", VarName(100))
	assert.Equal(t, "b", NewVar(1, 0).Name())
}

func TestLevelOf(t *testing.T) {
	assert.Equal(t, 3, LevelOf(NewVar(0, 3)))
	assert.Equal(t, GenericVarLevel, LevelOf(NewGenericVar(0)))
	assert.Equal(t, 2, LevelOf(NewArrow(Int, Int, 2)))
	assert.Equal(t, 0, LevelOf(Int))

	linked := NewVar(0, 5)
	linked.SetLink(NewTuple([]Type{Int, Bool}, 1))
	assert.Equal(t, 1, LevelOf(linked))
}

func TestLevelsStable(t *testing.T) {
	ls := Levels{Old: 2, New: 2}
	assert.True(t, ls.Stable())
	ls.New = 1
	assert.False(t, ls.Stable())
}

func TestTypeString(t *testing.T) {
	a := NewGenericVar(7)
	b := NewGenericVar(9)

	cases := []struct {
		ty   Type
		want string
	}{
		{Int, "int"},
		{NewVar(3, 0), "'_a"},
		{a, "'a"},
		{NewArrow(Int, Bool, 0), "int -> bool"},
		{NewArrow(a, a, GenericVarLevel), "'a -> 'a"},
		{NewArrow(a, b, GenericVarLevel), "'a -> 'b"},
		// Names are assigned in order of first encounter, not by id.
		{NewArrow(b, a, GenericVarLevel), "'a -> 'b"},
		{NewArrow(NewArrow(a, b, GenericVarLevel), a, GenericVarLevel), "('a -> 'b) -> 'a"},
		{NewArrow(Int, NewArrow(Int, Int, 0), 0), "int -> int -> int"},
		{NewTuple([]Type{Int, Bool}, 0), "(int * bool)"},
		{NewTuple([]Type{Int, NewArrow(a, a, GenericVarLevel)}, GenericVarLevel), "(int * ('a -> 'a))"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TypeString(c.ty))
	}
}

func TestTypeStringLinkedVariables(t *testing.T) {
	tv := NewVar(0, 0)
	tv.SetLink(NewArrow(Int, Int, 0))
	require.Equal(t, "int -> int", TypeString(tv))

	arg := NewVar(1, 0)
	arg.SetLink(Bool)
	require.Equal(t, "bool -> int", TypeString(NewArrow(arg, Int, 0)))
}

func TestTypeStringCyclicTypes(t *testing.T) {
	tv := NewVar(0, 0)
	arrow := NewArrow(tv, NewVar(1, 0), 0)
	tv.SetLink(arrow)

	// Cyclic graphs can transiently exist before the occurs check rejects
	// them; printing must terminate.
	require.Equal(t, "... -> '_a", TypeString(arrow))
}
