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

import "sort"

// Not returns the logical negation of a. It never touches the arena or the
// hash-cons table: negation is carried entirely in the handle's low bit.
func (c *Context) Not(a Handle) Handle {
	c.checkHandle(a)
	return a.Negate()
}

// Or returns the canonical handle for the disjunction of args, applying the
// local normalizations of flatten / drop-false / absorb-true / dedupe /
// complement-detection / sort before consulting the hash-cons table:
//  1. flatten nested, unnegated or-nodes into this one's argument list,
//  2. drop every literal False,
//  3. if any argument is True, the whole disjunction is True,
//  4. deduplicate by handle,
//  5. if any two survivors are complementary, the whole disjunction is True,
//  6. zero survivors collapse to False, one survivor is returned unchanged,
//  7. the rest are sorted and interned.
func (c *Context) Or(args ...Handle) Handle {
	flat := make([]Handle, 0, len(args))
	for _, a := range args {
		c.checkHandle(a)
		n := c.arena.get(a)
		if !a.Negated() && n.kind == storedOr {
			flat = append(flat, n.orArgs...)
		} else {
			flat = append(flat, a)
		}
	}

	seen := make(map[Handle]struct{}, len(flat))
	kept := make([]Handle, 0, len(flat))
	for _, h := range flat {
		if h == False {
			continue
		}
		if h == True {
			return True
		}
		if _, ok := seen[h]; ok {
			continue
		}
		if _, ok := seen[h.Negate()]; ok {
			return True
		}
		seen[h] = struct{}{}
		kept = append(kept, h)
	}

	switch len(kept) {
	case 0:
		return False
	case 1:
		return kept[0]
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i] < kept[j] })
	return c.internOr(kept)
}

// And is De Morgan's dual of Or: and(args) = not(or(not(a0), ..., not(an))).
// It shares or's node pool and normalization entirely; no separate node
// kind exists for conjunction.
func (c *Context) And(args ...Handle) Handle {
	neg := make([]Handle, len(args))
	for i, a := range args {
		c.checkHandle(a)
		neg[i] = a.Negate()
	}
	return c.Or(neg...).Negate()
}

// internOr looks up (or allocates) the arena node for an already-normalized,
// sorted, duplicate- and complement-free argument list of arity >= 2.
func (c *Context) internOr(sorted []Handle) Handle {
	key := orKey(sorted)
	if h, ok := c.cons.ors[key]; ok {
		return h
	}
	h := c.arena.alloc(node{kind: storedOr, orArgs: sorted})
	c.cons.ors[key] = h
	return h
}
