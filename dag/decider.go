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

import (
	"time"

	"go.uber.org/zap"
)

// Equiv is the tri-state result of a semantic equivalence query: the
// decider either proves the two expressions equivalent, proves them
// distinguishable, or exhausts its resource budget without deciding either
// way.
type Equiv uint8

const (
	// EquivUnknown means the decider's budget was exhausted before it could
	// reach a verdict. Callers may retry with a larger Budget.
	EquivUnknown Equiv = iota
	// EquivTrue means the two expressions are semantically equivalent.
	EquivTrue
	// EquivFalse means the two expressions are not semantically equivalent.
	EquivFalse
)

func (r Equiv) String() string {
	switch r {
	case EquivTrue:
		return "true"
	case EquivFalse:
		return "false"
	default:
		return "unknown"
	}
}

// Budget bounds the decider's search so that pathological inputs return
// EquivUnknown instead of running forever. The zero Budget is unlimited.
type Budget struct {
	maxVisits    int
	maxConflicts int
	timeout      time.Duration
}

// BudgetOption configures a Budget passed to IsEquiv.
type BudgetOption func(*Budget)

// WithMaxVisits bounds the number of decision-node visits the search may
// make.
func WithMaxVisits(n int) BudgetOption {
	return func(b *Budget) { b.maxVisits = n }
}

// WithMaxConflicts bounds the number of times the search may fully explore
// both branches of a decision without finding a satisfying assignment
// (i.e. the number of backtracks).
func WithMaxConflicts(n int) BudgetOption {
	return func(b *Budget) { b.maxConflicts = n }
}

// WithTimeout bounds the search's wall-clock duration.
func WithTimeout(d time.Duration) BudgetOption {
	return func(b *Budget) { b.timeout = d }
}

// budgetState is the live counters threaded through one search.
type budgetState struct {
	budget    Budget
	visits    int
	conflicts int
	deadline  time.Time
	hasDead   bool
}

func newBudgetState(opts []BudgetOption) *budgetState {
	var b Budget
	for _, opt := range opts {
		opt(&b)
	}
	s := &budgetState{budget: b}
	if b.timeout > 0 {
		s.deadline = time.Now().Add(b.timeout)
		s.hasDead = true
	}
	return s
}

func (s *budgetState) exceeded() bool {
	if s.budget.maxVisits > 0 && s.visits > s.budget.maxVisits {
		return true
	}
	if s.budget.maxConflicts > 0 && s.conflicts > s.budget.maxConflicts {
		return true
	}
	if s.hasDead && time.Now().After(s.deadline) {
		return true
	}
	return false
}

// three-valued truth used while evaluating a partial assignment.
type tvalue int8

const (
	tFalse tvalue = iota
	tTrue
	tUnknown
)

// IsEquiv decides semantic equivalence of a and b. The fast path is a
// handle comparison; failing that, it forms xor(a, b) = not(eq(a, b)) and
// searches for a satisfying assignment of the free term variables via a
// DPLL-style decision procedure over the DAG, without ever materializing a
// CNF translation. If no assignment satisfies the xor, the expressions are
// equivalent. Proven pairs (in either direction) are cached on the Context
// so repeat queries on the same pair are free.
func (c *Context) IsEquiv(a, b Handle, opts ...BudgetOption) Equiv {
	c.checkHandle(a)
	c.checkHandle(b)

	if a == b {
		return EquivTrue
	}

	ck := canonicalEqKey(a, b)
	if v, ok := c.equivCache[ck]; ok {
		return v
	}

	eq := c.Eq(a, b)
	if eq == True {
		c.equivCache[ck] = EquivTrue
		return EquivTrue
	}
	if eq == False {
		c.equivCache[ck] = EquivFalse
		return EquivFalse
	}

	goal := eq.Negate()
	state := newBudgetState(opts)
	sat, ok := c.decide(goal, make(map[int]bool), state)
	if !ok {
		c.log.Debug("decider budget exhausted", zap.Stringer("a", a), zap.Stringer("b", b))
		return EquivUnknown
	}

	result := EquivTrue
	if sat {
		result = EquivFalse
	}
	c.equivCache[ck] = result
	return result
}

func canonicalEqKey(a, b Handle) eqKey {
	if a > b {
		a, b = b, a
	}
	return eqKey{A: a, B: b}
}

// decide searches for a satisfying assignment of h under the partial
// assignment of term-variable indices to booleans in assign. It returns
// (satisfiable, ok); ok is false if the budget ran out before a verdict
// could be reached.
func (c *Context) decide(h Handle, assign map[int]bool, state *budgetState) (bool, bool) {
	state.visits++
	if state.exceeded() {
		return false, false
	}

	v, free := c.eval3(h, assign)
	switch v {
	case tTrue:
		return true, true
	case tFalse:
		return false, true
	}

	idx := free.Index()

	assign[idx] = true
	satT, okT := c.decide(h, assign, state)
	if okT && satT {
		delete(assign, idx)
		return true, true
	}

	assign[idx] = false
	satF, okF := c.decide(h, assign, state)
	delete(assign, idx)
	if okF && satF {
		return true, true
	}

	if okT && okF {
		state.conflicts++
		return false, true
	}
	return false, false
}

// eval3 evaluates h under the partial assignment, short-circuiting wherever
// the result is determined regardless of the unassigned variables (e.g. an
// or with one true argument), and otherwise returns tUnknown together with
// an unassigned term handle worth branching on next. This plays the role
// spec'd as unit propagation: a node whose value is pinned down by its
// currently-assigned children never forces a fresh decision.
func (c *Context) eval3(h Handle, assign map[int]bool) (tvalue, Handle) {
	if h == False {
		return tFalse, 0
	}
	if h == True {
		return tTrue, 0
	}

	v, free := c.eval3Unsigned(h.Index(), assign)
	if h.Negated() {
		switch v {
		case tTrue:
			v = tFalse
		case tFalse:
			v = tTrue
		}
	}
	return v, free
}

func (c *Context) eval3Unsigned(idx int, assign map[int]bool) (tvalue, Handle) {
	n := &c.arena.nodes[idx]
	switch n.kind {
	case storedTerm:
		if val, ok := assign[idx]; ok {
			if val {
				return tTrue, 0
			}
			return tFalse, 0
		}
		return tUnknown, Handle(idx << 1)

	case storedOr:
		var free Handle
		anyUnknown := false
		for _, a := range n.orArgs {
			av, af := c.eval3(a, assign)
			if av == tTrue {
				return tTrue, 0
			}
			if av == tUnknown {
				anyUnknown = true
				if free == 0 {
					free = af
				}
			}
		}
		if anyUnknown {
			return tUnknown, free
		}
		return tFalse, 0

	case storedIfElse:
		iv, ifree := c.eval3(n.ifI, assign)
		switch iv {
		case tTrue:
			return c.eval3(n.ifT, assign)
		case tFalse:
			return c.eval3(n.ifE, assign)
		default:
			tv, _ := c.eval3(n.ifT, assign)
			ev, _ := c.eval3(n.ifE, assign)
			if tv == ev && tv != tUnknown {
				return tv, 0
			}
			return tUnknown, ifree
		}

	case storedEq:
		av, afree := c.eval3(n.eqA, assign)
		if av == tUnknown {
			return tUnknown, afree
		}
		bv, bfree := c.eval3(n.eqB, assign)
		if bv == tUnknown {
			return tUnknown, bfree
		}
		if av == bv {
			return tTrue, 0
		}
		return tFalse, 0

	default:
		return tFalse, 0
	}
}
