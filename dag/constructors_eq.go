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

// Eq returns the canonical handle for the biconditional "a == b":
//  1. identical operands are True, complementary operands are False,
//  2. a constant operand reduces eq to its partner (possibly negated),
//  3. otherwise the pair is ordered so the smaller handle comes first, and
//     if that first operand is negative both operands are flipped (since
//     eq(not x, not y) == eq(x, y)), before the pair is interned.
func (c *Context) Eq(a, b Handle) Handle {
	c.checkHandle(a)
	c.checkHandle(b)

	if a == b {
		return True
	}
	if a == b.Negate() {
		return False
	}

	if a.IsConst() {
		if a == True {
			return b
		}
		return b.Negate()
	}
	if b.IsConst() {
		if b == True {
			return a
		}
		return a.Negate()
	}

	if a > b {
		a, b = b, a
	}
	if a.Negated() {
		a, b = a.Negate(), b.Negate()
	}

	key := eqKey{A: a, B: b}
	if h, ok := c.cons.eqs[key]; ok {
		return h
	}
	h := c.arena.alloc(node{kind: storedEq, eqA: a, eqB: b})
	c.cons.eqs[key] = h
	return h
}

// Neq is the negation of Eq and shares its storage entirely; no separate
// node kind exists for disequality.
func (c *Context) Neq(a, b Handle) Handle {
	return c.Eq(a, b).Negate()
}
