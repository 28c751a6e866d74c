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

// Package eqbool is the user-facing boundary over package dag: it wraps raw
// Handles in identity-stable *Expr objects, adds operator-style methods,
// and — the one piece of state the core engine deliberately does not own —
// merges the identity of expression pairs once IsEquiv proves them
// equivalent, without ever touching the underlying arena, whose nodes are
// never mutated after allocation.
package eqbool

import (
	"go.uber.org/zap"

	"github.com/kosarev/eqbool/dag"
	"github.com/kosarev/eqbool/internal/obslog"
)

// Context is a boundary-level wrapper around a dag.Context. Like its
// wrapped Context, it is not safe for concurrent mutation and shares
// nothing with other Contexts.
type Context struct {
	dc  *dag.Context
	log *zap.Logger

	exprCache map[dag.Handle]*Expr
	// parent implements union-find over proven-equivalent handle pairs,
	// with path compression in find. It is purely a façade-level identity
	// merge; dc's arena is never touched by it.
	parent map[dag.Handle]dag.Handle
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithLogger attaches a zap logger for Debug-level tracing of
// equivalence-merge events; the same logger is handed to the underlying
// dag.Context. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.log = l
		}
	}
}

// NewContext creates a fresh Context, eagerly producing the constants.
func NewContext(opts ...Option) *Context {
	c := &Context{
		log:       obslog.Nop(),
		exprCache: make(map[dag.Handle]*Expr),
		parent:    make(map[dag.Handle]dag.Handle),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.dc = dag.NewContext(dag.WithLogger(c.log))
	return c
}

// False is the constant false expression.
func (c *Context) False() *Expr { return c.wrap(dag.False) }

// True is the constant true expression.
func (c *Context) True() *Expr { return c.wrap(dag.True) }

// Get returns the expression for the hashable key, allocating a new term on
// first use. Repeated calls with an equal key return the identical *Expr
// object.
func (c *Context) Get(key any) (*Expr, error) {
	h, err := c.dc.Get(key)
	if err != nil {
		return nil, err
	}
	return c.wrap(h), nil
}

// IsEquiv decides semantic equivalence of a and b, proxying to the
// decider. When it proves the pair equivalent, it additionally merges their
// identity in this Context (see Expr.Equal), as permitted — but not
// required of the core — by the decider's result-caching contract.
func (c *Context) IsEquiv(a, b *Expr, opts ...dag.BudgetOption) Result {
	c.checkSameContext(a, b)
	r := c.dc.IsEquiv(a.h, b.h, opts...)
	if r == Equivalent {
		c.union(a.h, b.h)
		c.log.Debug("merged equivalent expressions", zap.Stringer("a", a.h), zap.Stringer("b", b.h))
	}
	return r
}

func (c *Context) checkSameContext(exprs ...*Expr) {
	for _, e := range exprs {
		if e.ctx != c {
			panic(&CrossContextError{})
		}
	}
}

// wrap returns the identity-stable *Expr for h, creating it on first use.
func (c *Context) wrap(h dag.Handle) *Expr {
	if e, ok := c.exprCache[h]; ok {
		return e
	}
	e := &Expr{ctx: c, h: h}
	c.exprCache[h] = e
	return e
}

// find returns the union-find root of h, path-compressing as it goes.
func (c *Context) find(h dag.Handle) dag.Handle {
	p, ok := c.parent[h]
	if !ok {
		return h
	}
	root := c.find(p)
	c.parent[h] = root
	return root
}

// union merges the equivalence classes of a and b.
func (c *Context) union(a, b dag.Handle) {
	ra, rb := c.find(a), c.find(b)
	if ra != rb {
		c.parent[ra] = rb
	}
}
