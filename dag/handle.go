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

// Package dag implements the hash-consed expression DAG at the core of the
// eqbool engine: node storage, literal-polarity tagging, the local
// normalization performed by each constructor, and the semantic equivalence
// decider. Everything in this package is single-threaded and non-persistent;
// callers are responsible for serializing access to one Context (see
// Context's doc comment).
package dag

import "fmt"

// Handle refers to a canonical expression within one Context. The high bits
// identify an arena slot; the low bit carries polarity, so that negating a
// handle is the constant-time operation Handle ^ 1. Handle zero is the
// constant false, and Handle one (its negation) is the constant true.
//
// A Handle is only meaningful relative to the Context that produced it;
// using a Handle from one Context with another Context's methods is a
// programmer error (see UnboundHandleError).
type Handle int32

const (
	// False is the constant false handle, reserved and eagerly present in
	// every Context.
	False Handle = 0
	// True is the constant true handle: the negation of False.
	True Handle = 1
)

// Negate returns the logical negation of h. It never touches the arena or
// the hash-cons table.
func (h Handle) Negate() Handle {
	return h ^ 1
}

// Index returns the arena slot this handle refers to, ignoring polarity.
func (h Handle) Index() int {
	return int(h >> 1)
}

// Negated reports whether h carries negative polarity.
func (h Handle) Negated() bool {
	return h&1 == 1
}

// IsConst reports whether h is the constant False or True.
func (h Handle) IsConst() bool {
	return h.Index() == 0
}

func (h Handle) String() string {
	return fmt.Sprintf("#%d", int(h))
}
