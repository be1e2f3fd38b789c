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
	"github.com/benbjohnson/immutable"

	"github.com/minml-lang/minml/types"
)

var emptyEnvMap = immutable.NewSortedMap(nil)

// TypeEnv is a persistent type-environment containing mappings from
// identifiers to declared or inferred types. Extension never mutates an
// environment in place; Declare returns a new environment value, so every
// scope holds an independent snapshot and the most recent entry for a name
// shadows older ones.
type TypeEnv struct {
	// Next unused type-variable id for generic variables declared through
	// the environment.
	NextVarId int

	m *immutable.SortedMap
}

// Create an empty type-environment, or a child of parent which inherits its
// bindings and variable-id counter.
func NewTypeEnv(parent *TypeEnv) *TypeEnv {
	if parent != nil {
		return &TypeEnv{NextVarId: parent.NextVarId, m: parent.m}
	}
	return &TypeEnv{m: emptyEnvMap}
}

func (e *TypeEnv) freshId() int {
	id := e.NextVarId
	e.NextVarId++
	return id
}

// Create a generic type-variable with a unique id, for building polymorphic
// seed types such as `'a -> 'a -> bool`.
func (e *TypeEnv) NewGenericVar() *types.Var { return types.NewGenericVar(e.freshId()) }

// Declare a type for an identifier, returning the extended environment.
func (e *TypeEnv) Declare(name string, t types.Type) *TypeEnv {
	return &TypeEnv{NextVarId: e.NextVarId, m: e.m.Set(name, t)}
}

// Lookup the type bound to a name, honoring shadowing.
func (e *TypeEnv) Lookup(name string) (types.Type, bool) {
	t, ok := e.m.Get(name)
	if !ok {
		return nil, false
	}
	return t.(types.Type), true
}

// Len returns the number of names bound in the environment.
func (e *TypeEnv) Len() int { return e.m.Len() }

// Range iterates over the bindings in the environment, ordered by name.
// If f returns false, iteration stops.
func (e *TypeEnv) Range(f func(string, types.Type) bool) {
	iter := e.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(types.Type)) {
			return
		}
	}
}
