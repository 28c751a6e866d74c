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
	"fmt"
	"reflect"
	"strings"
)

// ifelseKey and eqKey are fixed-arity structural keys; being plain structs
// of comparable fields, Go lets us use them directly as map keys, which is
// the whole point of hash-consing: structurally identical constructor calls
// collide on the same key and therefore return the same Handle.
type ifelseKey struct {
	I, T, E Handle
}

type eqKey struct {
	A, B Handle
}

// hashCons maps structural keys to the arena index that already holds that
// structure, so constructors can look up before they allocate. or's variadic
// argument lists aren't themselves comparable, so they are canonicalized to
// a string key; term keys are used as-is as map keys, since the caller
// contract (see ErrUnhashableKey) requires them to already be comparable.
type hashCons struct {
	terms   map[any]Handle
	ors     map[string]Handle
	ifelses map[ifelseKey]Handle
	eqs     map[eqKey]Handle
}

func newHashCons() *hashCons {
	return &hashCons{
		terms:   make(map[any]Handle),
		ors:     make(map[string]Handle),
		ifelses: make(map[ifelseKey]Handle),
		eqs:     make(map[eqKey]Handle),
	}
}

// orKey builds the canonical string key for an already-sorted, deduplicated
// argument list. Each handle is written in decimal and separated by a comma,
// which cannot appear in a decimal number, so the key is unambiguous.
func orKey(args []Handle) string {
	var b strings.Builder
	for i, h := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", int(h))
	}
	return b.String()
}

// isHashable reports whether v can safely be used as a Go map key, i.e. its
// dynamic type supports ==. Slices, maps, and funcs (and composites
// containing them) are not comparable and must be rejected per the term-key
// contract rather than panicking inside the hash-cons table.
func isHashable(v any) bool {
	if v == nil {
		return true
	}
	t := reflect.TypeOf(v)
	return t.Comparable()
}
