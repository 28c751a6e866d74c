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

package dag_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/kosarev/eqbool/dag"
)

func TestPrintConstants(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	require.Equal(t, "0", c.Print(dag.False))
	require.Equal(t, "1", c.Print(dag.True))
}

func TestPrintTermAndNegation(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	a, err := c.Get("a")
	require.NoError(t, err)

	require.Equal(t, "a", c.Print(a))
	require.Equal(t, "~a", c.Print(c.Not(a)))
}

func TestPrintIsDeterministicAcrossConstructionOrder(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	a, err := c.Get("a")
	require.NoError(t, err)
	b, err := c.Get("b")
	require.NoError(t, err)
	cc, err := c.Get("c")
	require.NoError(t, err)

	e1 := c.Or(a, c.Or(b, cc))
	e2 := c.Or(cc, c.Or(a, b))
	if diff := cmp.Diff(c.Print(e1), c.Print(e2)); diff != "" {
		t.Errorf("independently-built equal structures printed differently (-e1 +e2):\n%s", diff)
	}
}

func TestPrintIfElseAndEq(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	a, err := c.Get("a")
	require.NoError(t, err)
	b, err := c.Get("b")
	require.NoError(t, err)
	cc, err := c.Get("c")
	require.NoError(t, err)

	require.Equal(t, "(a ? b : c)", c.Print(c.IfElse(a, b, cc)))

	d, err := c.Get("d")
	require.NoError(t, err)
	require.Equal(t, "(a = d)", c.Print(c.Eq(a, d)))
}
