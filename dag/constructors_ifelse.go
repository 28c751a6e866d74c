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

// IfElse returns the canonical handle for the ternary conditional
// "if i then t else e", applying, in order:
//  1. a constant condition picks its branch outright,
//  2. a constant then-branch rewrites to an or/and of the condition,
//  3. a constant else-branch rewrites symmetrically,
//  4. identical branches collapse to that branch,
//  5. complementary branches rewrite to an eq of the condition and the
//     then-branch,
//  6. a condition equal to the then-branch (or to the negation of the
//     else-branch) rewrites to or,
//  7. a condition equal to the else-branch (or to the negation of the
//     then-branch) rewrites to and,
//  8. the condition's polarity is normalized before the triple is interned,
//     so that ifelse(not(i), t, e) and ifelse(i, e, t) share a node.
func (c *Context) IfElse(i, t, e Handle) Handle {
	c.checkHandle(i)
	c.checkHandle(t)
	c.checkHandle(e)

	if i.IsConst() {
		if i == True {
			return t
		}
		return e
	}

	if t == True {
		return c.Or(i, e)
	}
	if t == False {
		return c.And(i.Negate(), e)
	}

	if e == True {
		return c.Or(i.Negate(), t)
	}
	if e == False {
		return c.And(i, t)
	}

	if t == e {
		return t
	}
	if t == e.Negate() {
		return c.Eq(i, t)
	}

	if i == t || i == e.Negate() {
		return c.Or(t, e)
	}
	if i == e || i == t.Negate() {
		return c.And(t, e)
	}

	if i.Negated() {
		i, t, e = i.Negate(), e, t
	}

	key := ifelseKey{I: i, T: t, E: e}
	if h, ok := c.cons.ifelses[key]; ok {
		return h
	}
	h := c.arena.alloc(node{kind: storedIfElse, ifI: i, ifT: t, ifE: e})
	c.cons.ifelses[key] = h
	return h
}
