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

	set "github.com/hashicorp/go-set/v2"

	"github.com/minml-lang/minml/ast"
	"github.com/minml-lang/minml/internal/typeutil"
	"github.com/minml-lang/minml/types"
)

// InferenceContext is a re-usable inference session. It owns every piece of
// mutable inference state: the type-variable allocator, the current
// binding-level, the pending level-repair queue, the in-progress visiting
// set, and the per-lookup instantiation memo. State is reset automatically
// between runs, so successive runs on the same input are independent and
// produce identical generated variable names.
//
// An inference context cannot be used concurrently.
type InferenceContext struct {
	varTracker typeutil.VarTracker
	level      int
	// Composite nodes whose New level bound was lowered while they were
	// level-stable; their children still need to be re-bounded. Drained
	// lazily by forceLevelUpdates before generalization.
	pending []types.Composite
	// Level-bound handles of composite nodes currently being traversed by
	// unification, level repair, or the occurs check. Re-encountering a
	// member signals a cyclic type.
	visiting *set.Set[*types.Levels]
	// Instantiation memo: maps a generic variable's id to its fresh copy,
	// so shared variables stay shared within one instantiation.
	instLookup map[int]*types.Var

	err         error
	invalid     ast.Node
	annotate    bool
	initialized bool
	needsReset  bool
}

// Create a new inference context. A context may be re-used across runs.
func NewContext() *InferenceContext {
	ti := &InferenceContext{}
	ti.init()
	return ti
}

func (ti *InferenceContext) init() {
	ti.visiting = set.New[*types.Levels](8)
	ti.instLookup = make(map[int]*types.Var, 16)
	ti.initialized = true
}

func (ti *InferenceContext) reset() {
	ti.clearInstLookup()
	ti.varTracker.Reset()
	ti.visiting = set.New[*types.Levels](8)
	ti.level, ti.pending, ti.err, ti.invalid, ti.needsReset = 0, nil, nil, nil, false
}

// Reset the state of the context. The context is reset automatically before
// each run.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset()
}

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the syntax node which caused inference to fail.
func (ti *InferenceContext) InvalidNode() ast.Node { return ti.invalid }

func (ti *InferenceContext) clearInstLookup() {
	for id := range ti.instLookup {
		delete(ti.instLookup, id)
	}
}

func (ti *InferenceContext) enterLevel() { ti.level++ }
func (ti *InferenceContext) leaveLevel() { ti.level-- }

func (ti *InferenceContext) newVar() *types.Var { return ti.varTracker.New(ti.level) }

// fail records the first failing node and attaches its position to the
// error, if the error does not already carry one.
func (ti *InferenceContext) fail(n ast.Node, err error) error {
	var e *Error
	if errors.As(err, &e) && e.Pos == (ast.Pos{}) && n != nil {
		e.Pos = n.Position()
	}
	if ti.err == nil {
		ti.invalid, ti.err = n, err
	}
	return err
}

func (ti *InferenceContext) begin(env *TypeEnv) {
	if ti.needsReset {
		ti.reset()
	} else if !ti.initialized {
		ti.init()
	}
	ti.varTracker.NextId = env.NextVarId
	ti.needsReset = true
}

// Infer the type of expr within env. The expression's type is generalized.
//
// A type-environment may be shared across runs; inference never modifies it.
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (types.Type, error) {
	nocopy := true
	_, t, err := ti.inferRoot(expr, env, nocopy)
	return t, err
}

// Infer the type of expr within env. A type-annotated copy of expr is
// returned; the original expression is left untouched.
func (ti *InferenceContext) Annotate(expr ast.Expr, env *TypeEnv) (ast.Expr, error) {
	nocopy := false
	ti.annotate = true
	root, _, err := ti.inferRoot(expr, env, nocopy)
	ti.annotate = false
	return root, err
}

// Infer the type of expr within env. Type-annotations are added directly
// to expr. All sub-expressions of expr must have unique addresses.
func (ti *InferenceContext) AnnotateDirect(expr ast.Expr, env *TypeEnv) error {
	nocopy := true
	ti.annotate = true
	_, _, err := ti.inferRoot(expr, env, nocopy)
	ti.annotate = false
	return err
}

func (ti *InferenceContext) inferRoot(root ast.Expr, env *TypeEnv, nocopy bool) (ast.Expr, types.Type, error) {
	if root == nil {
		return nil, nil, errors.New("Empty expression")
	}
	if !nocopy {
		root = ast.CopyExpr(root)
	}
	ti.begin(env)
	t, err := ti.inferExpr(env, root)
	if err != nil {
		return root, nil, err
	}
	if t, err = ti.generalizeAt(topLevel-1, t); err != nil {
		return root, nil, ti.fail(root, err)
	}
	if err = ti.occursCheck(t); err != nil {
		return root, nil, ti.fail(root, err)
	}
	ti.varTracker.FlattenLinks()
	return root, t, nil
}

// Infer the types of every top-level binding of prog within env, in order.
// On success the ordered top-level types are returned along with the final
// environment, which maps every bound top-level name to its (possibly
// generalized) type. The first error aborts the remainder of the program.
//
// A type-environment may be shared across runs; inference never modifies it.
func (ti *InferenceContext) InferProgram(prog *ast.Program, env *TypeEnv) ([]types.Type, *TypeEnv, error) {
	nocopy := true
	_, ts, env, err := ti.inferProgramRoot(prog, env, nocopy)
	return ts, env, err
}

// Infer the types of every top-level binding of prog within env. A
// type-annotated copy of prog is returned along with the final environment;
// the original program is left untouched.
func (ti *InferenceContext) AnnotateProgram(prog *ast.Program, env *TypeEnv) (*ast.Program, *TypeEnv, error) {
	nocopy := false
	ti.annotate = true
	root, _, env, err := ti.inferProgramRoot(prog, env, nocopy)
	ti.annotate = false
	return root, env, err
}

func (ti *InferenceContext) inferProgramRoot(prog *ast.Program, env *TypeEnv, nocopy bool) (*ast.Program, []types.Type, *TypeEnv, error) {
	if prog == nil || len(prog.Bindings) == 0 {
		return nil, nil, env, errors.New("Empty program")
	}
	if !nocopy {
		prog = ast.CopyProgram(prog)
	}
	ti.begin(env)
	ts := make([]types.Type, 0, len(prog.Bindings))
	for _, b := range prog.Bindings {
		next, t, err := ti.inferBinding(env, b)
		if err != nil {
			return prog, nil, env, err
		}
		env = next
		ts = append(ts, t)
	}
	ti.varTracker.FlattenLinks()
	return prog, ts, env, nil
}
