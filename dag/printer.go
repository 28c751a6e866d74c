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
	"strings"
)

// Print renders h as a deterministic S-expression-like string: constants
// print as 0/1, terms print their key's default formatting, or prints as
// "(a | b | ...)", ifelse as "(i ? t : e)", eq as "(a = b)", and negation
// wraps its argument in "~". Or arguments are printed in the same order the
// hash-cons table stores them (sorted ascending by handle), so equal
// expressions always print identically.
func (c *Context) Print(h Handle) string {
	c.checkHandle(h)

	if h == False {
		return "0"
	}
	if h == True {
		return "1"
	}
	if h.Negated() {
		return "~" + c.Print(h.Negate())
	}

	n := c.arena.get(h)
	switch n.kind {
	case storedTerm:
		return fmt.Sprintf("%v", n.term)
	case storedOr:
		parts := make([]string, len(n.orArgs))
		for i, a := range n.orArgs {
			parts[i] = c.Print(a)
		}
		return "(" + strings.Join(parts, " | ") + ")"
	case storedIfElse:
		return fmt.Sprintf("(%s ? %s : %s)", c.Print(n.ifI), c.Print(n.ifT), c.Print(n.ifE))
	case storedEq:
		return fmt.Sprintf("(%s = %s)", c.Print(n.eqA), c.Print(n.eqB))
	default:
		return "?"
	}
}
