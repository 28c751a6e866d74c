//  Copyright (c) 2026 Alexander Kosarev.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package eqbool

import "github.com/kosarev/eqbool/dag"

// Expr is a boundary-level expression object bound to a Context. Two Exprs
// from the same Context returned for the same underlying dag.Handle are
// always the same object (see Context.wrap), so Go's native == between
// *Expr pointers already captures "same handle" for any pair obtained
// through normal construction. It does not, however, capture pairs merged
// after the fact by IsEquiv — use Equal for that; see Equal's doc comment.
type Expr struct {
	ctx *Context
	h   dag.Handle
}

// ID returns this expression's canonical identifier: the value to compare
// to tell whether two expressions denote the same proposition, after
// accounting for any equivalence merges Context.IsEquiv has performed. Two
// Exprs from the same Context have equal ID if and only if Equal reports
// true for them.
func (e *Expr) ID() int {
	return int(e.ctx.find(e.h))
}

// Kind reports the outward-facing shape of the expression.
func (e *Expr) Kind() dag.Kind {
	return e.ctx.dc.Kind(e.h)
}

// Term returns the term key, panicking if this expression is not a term.
func (e *Expr) Term() any {
	return e.ctx.dc.Term(e.h)
}

// Args returns this expression's children as already-wrapped Exprs,
// panicking if this expression's Kind has none (constants and terms).
func (e *Expr) Args() []*Expr {
	hs := e.ctx.dc.Args(e.h)
	out := make([]*Expr, len(hs))
	for i, h := range hs {
		out[i] = e.ctx.wrap(h)
	}
	return out
}

// String renders a deterministic S-expression-like form of the expression.
func (e *Expr) String() string {
	return e.ctx.dc.Print(e.h)
}

// Equal reports whether e and other denote the same proposition: either by
// handle identity, or because a prior Context.IsEquiv call proved them
// equivalent and merged them. This is the Go-idiomatic stand-in for the
// host language's operator-overloaded equality (spec'd as handle equality,
// not semantic equivalence, see DESIGN.md's Open Question resolution); Go's
// native == on *Expr compares pointers, which is strictly narrower.
func (e *Expr) Equal(other *Expr) bool {
	return e.ctx == other.ctx && e.ctx.find(e.h) == other.ctx.find(other.h)
}

func (e *Expr) checkSameContext(others ...*Expr) {
	for _, o := range others {
		if o.ctx != e.ctx {
			panic(&CrossContextError{})
		}
	}
}

// Not returns the negation of e.
func (e *Expr) Not() *Expr {
	return e.ctx.wrap(e.ctx.dc.Not(e.h))
}

// Or returns the disjunction of e and others.
func (e *Expr) Or(others ...*Expr) *Expr {
	e.checkSameContext(others...)
	return e.ctx.wrap(e.ctx.dc.Or(e.handles(others)...))
}

// And returns the conjunction of e and others.
func (e *Expr) And(others ...*Expr) *Expr {
	e.checkSameContext(others...)
	return e.ctx.wrap(e.ctx.dc.And(e.handles(others)...))
}

// IfElse returns "if e then then_ else else_".
func (e *Expr) IfElse(then, else_ *Expr) *Expr {
	e.checkSameContext(then, else_)
	return e.ctx.wrap(e.ctx.dc.IfElse(e.h, then.h, else_.h))
}

// Eq returns the biconditional of e and other.
func (e *Expr) Eq(other *Expr) *Expr {
	e.checkSameContext(other)
	return e.ctx.wrap(e.ctx.dc.Eq(e.h, other.h))
}

// Neq returns the exclusive-or of e and other.
func (e *Expr) Neq(other *Expr) *Expr {
	e.checkSameContext(other)
	return e.ctx.wrap(e.ctx.dc.Neq(e.h, other.h))
}

func (e *Expr) handles(others []*Expr) []dag.Handle {
	hs := make([]dag.Handle, 0, len(others)+1)
	hs = append(hs, e.h)
	for _, o := range others {
		hs = append(hs, o.h)
	}
	return hs
}
