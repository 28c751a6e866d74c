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

package dag

import "go.uber.org/zap"

// Context owns one expression DAG: its arena, its hash-cons table, and the
// decider's proven-pair cache. A Context is not safe for concurrent
// mutation — all constructor and decider calls on one Context must be
// serialized by the caller — but independent Contexts share nothing and may
// be driven from different goroutines freely.
type Context struct {
	arena *arena
	cons  *hashCons
	log   *zap.Logger

	// equivCache records pairs already proven equivalent or inequivalent by
	// IsEquiv, keyed by the pair with the smaller handle first, so that
	// repeat queries on the same pair short-circuit the decider entirely.
	equivCache map[eqKey]Equiv
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithLogger attaches a zap logger used for Debug-level tracing: Get logs
// each newly interned term and IsEquiv logs decider budget exhaustion. The
// other constructors and the decider's backtracks are not logged. Callers
// that don't pass WithLogger get zap.NewNop(), so a Context never logs
// unless asked to.
func WithLogger(l *zap.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.log = l
		}
	}
}

// NewContext creates a fresh Context with the constants already allocated.
func NewContext(opts ...Option) *Context {
	c := &Context{
		arena:      newArena(),
		cons:       newHashCons(),
		log:        zap.NewNop(),
		equivCache: make(map[eqKey]Equiv),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// checkHandle panics with *UnboundHandleError if h does not refer to a slot
// this Context's arena actually allocated. This is the "unbound handle"
// fatal error kind: a programmer bug, not a recoverable condition.
func (c *Context) checkHandle(h Handle) {
	idx := h.Index()
	if idx < 0 || idx >= c.arena.len() {
		panic(&UnboundHandleError{Handle: h})
	}
}

// Get returns the term Handle for key, allocating one on first use and
// returning the same Handle on every subsequent call with an equal key.
// It returns ErrUnhashableKey if key's dynamic type is not comparable.
func (c *Context) Get(key any) (Handle, error) {
	if !isHashable(key) {
		return 0, ErrUnhashableKey
	}
	if h, ok := c.cons.terms[key]; ok {
		return h, nil
	}
	h := c.arena.alloc(node{kind: storedTerm, term: key})
	c.cons.terms[key] = h
	c.log.Debug("interned new term", zap.Any("key", key), zap.Int32("handle", int32(h)))
	return h, nil
}

// Kind reports the outward-facing Kind of h: the constants, a term, a
// negation, or one of the compound node shapes.
func (c *Context) Kind(h Handle) Kind {
	c.checkHandle(h)
	if h.Index() == 0 {
		if h == True {
			return KindTrue
		}
		return KindFalse
	}
	if h.Negated() {
		return KindNot
	}
	switch c.arena.get(h).kind {
	case storedTerm:
		return KindTerm
	case storedOr:
		return KindOr
	case storedIfElse:
		return KindIfElse
	case storedEq:
		return KindEq
	default:
		return KindFalse
	}
}

// Term returns the caller-supplied key for a term handle. It panics with
// *TypeMisuseError if h is not a term.
func (c *Context) Term(h Handle) any {
	c.checkHandle(h)
	if c.Kind(h) != KindTerm {
		panic(&TypeMisuseError{Handle: h, Kind: c.Kind(h), Op: "Term"})
	}
	return c.arena.get(h).term
}

// Args returns the child handles of a compound expression:
//   - KindNot:    the single unnegated child, h.Negate().
//   - KindOr:     the (already sorted, deduplicated) disjuncts.
//   - KindIfElse: [condition, then, else].
//   - KindEq:     [left, right].
//
// It panics with *TypeMisuseError for the constants and for terms, which
// have no children.
func (c *Context) Args(h Handle) []Handle {
	c.checkHandle(h)
	kind := c.Kind(h)
	if kind == KindNot {
		return []Handle{h.Negate()}
	}
	n := c.arena.get(h)
	switch kind {
	case KindOr:
		out := make([]Handle, len(n.orArgs))
		copy(out, n.orArgs)
		return out
	case KindIfElse:
		return []Handle{n.ifI, n.ifT, n.ifE}
	case KindEq:
		return []Handle{n.eqA, n.eqB}
	default:
		panic(&TypeMisuseError{Handle: h, Kind: kind, Op: "Args"})
	}
}
