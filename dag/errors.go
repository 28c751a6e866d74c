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
	"errors"
	"fmt"
)

// ErrUnhashableKey is returned by Context.Get when the supplied term key's
// dynamic type is not comparable (e.g. a slice, map, or func), and so can
// never be used to dedupe repeated Get calls for "the same" term.
var ErrUnhashableKey = errors.New("eqbool/dag: term key is not hashable")

// UnboundHandleError is a fatal programmer error: a Handle was passed to a
// Context that never allocated it (most commonly, a Handle from a different
// Context). It is not meant to be handled by normal control flow; callers
// that can reach this should fix the bug that produced the stray Handle.
type UnboundHandleError struct {
	Handle Handle
}

func (e *UnboundHandleError) Error() string {
	return fmt.Sprintf("eqbool/dag: handle %s is not bound to this context's arena", e.Handle)
}

// TypeMisuseError is a fatal programmer error: an introspection accessor was
// called on a handle whose kind doesn't support it (e.g. Args on a term).
type TypeMisuseError struct {
	Handle Handle
	Kind   Kind
	Op     string
}

func (e *TypeMisuseError) Error() string {
	return fmt.Sprintf("eqbool/dag: %s is invalid on %s handle %s", e.Op, e.Kind, e.Handle)
}
