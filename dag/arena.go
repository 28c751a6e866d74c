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

// arena owns every node ever allocated in a Context. It only ever grows:
// nodes are never freed or mutated individually, and the whole arena is
// reclaimed together when the owning Context becomes garbage.
type arena struct {
	nodes []node
}

// newArena creates an arena with its reserved constant slot already in
// place at index 0 (Handle False/True, see Handle's doc comment).
func newArena() *arena {
	return &arena{nodes: []node{{kind: storedConst}}}
}

// alloc appends n and returns the unnegated Handle for its new index. The
// caller must have already confirmed via the hash-cons table that no node
// with this structural key exists.
func (a *arena) alloc(n node) Handle {
	idx := len(a.nodes)
	a.nodes = append(a.nodes, n)
	return Handle(idx << 1)
}

// get returns the stored node for h's arena slot, ignoring h's polarity.
func (a *arena) get(h Handle) *node {
	return &a.nodes[h.Index()]
}

// len reports how many slots are currently allocated, including the
// reserved constant slot.
func (a *arena) len() int {
	return len(a.nodes)
}
