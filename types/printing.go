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
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{
			visiting: make(map[*Levels]bool, 8),
			names:    make(map[int]string, 8),
		}
	},
}

type typePrinter struct {
	sb strings.Builder
	// Composite nodes on the current print path. Inference permits cyclic
	// graphs to exist until the occurs check runs, and error messages may
	// print such types; revisited nodes print as "...".
	visiting map[*Levels]bool
	// Display names assigned to type-variables in order of first
	// encounter within a single TypeString call.
	names map[int]string
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	p.sb.Reset()
	for k := range p.visiting {
		delete(p.visiting, k)
	}
	for k := range p.names {
		delete(p.names, k)
	}
	printerPool.Put(p)
}

func (p *typePrinter) varName(tv *Var) string {
	if name, ok := p.names[tv.Id()]; ok {
		return name
	}
	name := VarName(len(p.names))
	p.names[tv.Id()] = name
	return name
}

// TypeString returns a string representation of a Type.
//
// Type-variables print with names assigned in order of first encounter, so
// structurally equal types print identically: generic variables as 'a, 'b,
// ...; unbound variables as '_a, '_b, ... Tuple types are always
// parenthesized, so `int * bool` prints as `(int * bool)`.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case *Var:
		switch {
		case t.IsLinkVar():
			typeString(p, simple, t.Link())
		case t.IsGenericVar():
			p.sb.WriteByte('\'')
			p.sb.WriteString(p.varName(t))
		default:
			p.sb.WriteString("'_")
			p.sb.WriteString(p.varName(t))
		}

	case *Const:
		p.sb.WriteString(t.Name)

	case *Arrow:
		if p.visiting[&t.Levels] {
			p.sb.WriteString("...")
			return
		}
		p.visiting[&t.Levels] = true
		// simple means the arrow appears in argument position and must
		// be parenthesized.
		if simple {
			p.sb.WriteByte('(')
		}
		typeString(p, true, t.Arg)
		p.sb.WriteString(" -> ")
		typeString(p, false, t.Return)
		if simple {
			p.sb.WriteByte(')')
		}
		delete(p.visiting, &t.Levels)

	case *Tuple:
		if p.visiting[&t.Levels] {
			p.sb.WriteString("...")
			return
		}
		p.visiting[&t.Levels] = true
		p.sb.WriteByte('(')
		for i, el := range t.Elems {
			if i > 0 {
				p.sb.WriteString(" * ")
			}
			typeString(p, true, el)
		}
		p.sb.WriteByte(')')
		delete(p.visiting, &t.Levels)

	default:
		p.sb.WriteString("<unknown>")
	}
}
