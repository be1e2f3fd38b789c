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

// Type is the base interface for all types in the inference graph.
type Type interface {
	TypeName() string
}

func (t *Var) TypeName() string   { return "Var" }
func (t *Const) TypeName() string { return "Const" }
func (t *Arrow) TypeName() string { return "Arrow" }
func (t *Tuple) TypeName() string { return "Tuple" }

// Levels is the pair of binding-levels carried by composite (arrow and
// tuple) nodes. Old and New diverge only while a level repair for the node
// is pending; once the repair runs the node is re-stabilized with Old == New.
type Levels struct {
	Old, New int
}

// Stable reports whether no level repair is pending for the node.
func (l *Levels) Stable() bool { return l.Old == l.New }

// Composite is implemented by type nodes which carry level bounds.
type Composite interface {
	Type
	LevelBounds() *Levels
}

func (t *Arrow) LevelBounds() *Levels { return &t.Levels }
func (t *Tuple) LevelBounds() *Levels { return &t.Levels }

// Type constant: `int` or `bool`
type Const struct {
	Name string
}

// Predeclared ground types.
var (
	Int    = &Const{Name: "int"}
	Float  = &Const{Name: "float"}
	String = &Const{Name: "string"}
	Bool   = &Const{Name: "bool"}
	Unit   = &Const{Name: "unit"}
)

// Function type: `int -> int`. Functions take a single argument;
// multi-argument functions are curried.
type Arrow struct {
	Arg    Type
	Return Type
	Levels Levels
}

// Create a new arrow type with both level bounds stamped to level.
func NewArrow(arg, ret Type, level int) *Arrow {
	return &Arrow{Arg: arg, Return: ret, Levels: Levels{Old: level, New: level}}
}

// Tuple type: `int * bool`. Tuples have a fixed arity of two or more.
type Tuple struct {
	Elems  []Type
	Levels Levels
}

// Create a new tuple type with both level bounds stamped to level.
func NewTuple(elems []Type, level int) *Tuple {
	return &Tuple{Elems: elems, Levels: Levels{Old: level, New: level}}
}

// Get the underlying type for a chain of linked type-variables, when applicable.
func RealType(t Type) Type {
	for {
		tv, ok := t.(*Var)
		if !ok {
			return t
		}
		if !tv.IsLinkVar() {
			return t
		}
		t = tv.Link()
	}
}

// LevelOf returns the binding-level recorded for t: the level of an unbound
// or generic type-variable, or the New bound of a composite node. Ground
// types are level-less and report the outermost level.
func LevelOf(t Type) int {
	switch t := RealType(t).(type) {
	case *Var:
		return t.Level()
	case Composite:
		return t.LevelBounds().New
	default:
		return 0
	}
}
