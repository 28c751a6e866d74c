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

// CrossContextError is a fatal programmer error: an operation was given
// expressions that belong to two different Contexts. Expressions are only
// meaningful relative to the Context that built them, so mixing them is a
// bug in the caller, not a recoverable condition — see the dag package's
// UnboundHandleError for the equivalent error at the core layer.
type CrossContextError struct{}

func (e *CrossContextError) Error() string {
	return "eqbool: operation mixes expressions from different contexts"
}
