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

package eqbool

import "github.com/kosarev/eqbool/dag"

// Result is the tri-state outcome of Context.IsEquiv.
type Result = dag.Equiv

const (
	// Unknown means the decider's budget was exhausted before reaching a
	// verdict; callers may retry with a larger budget.
	Unknown = dag.EquivUnknown
	// Equivalent means the two expressions were proven semantically equal.
	Equivalent = dag.EquivTrue
	// NotEquivalent means the two expressions were proven distinguishable.
	NotEquivalent = dag.EquivFalse
)
