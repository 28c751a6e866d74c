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

// node is one arena slot: an un-negated expression of one storedKind. Once
// allocated, a node is never mutated; negation and all further combination
// happen through Handle arithmetic and new nodes, never in place.
type node struct {
	kind storedKind

	// term is populated for storedTerm; it is the caller-supplied key.
	term any

	// orArgs is populated for storedOr: sorted, deduplicated, free of
	// complementary pairs and constants, arity >= 2.
	orArgs []Handle

	// ifI, ifT, ifE are populated for storedIfElse.
	ifI, ifT, ifE Handle

	// eqA, eqB are populated for storedEq, with eqA <= eqB.
	eqA, eqB Handle
}
