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

func terms(t *testing.T, c *dag.Context, keys ...string) []dag.Handle {
	t.Helper()
	out := make([]dag.Handle, len(keys))
	for i, k := range keys {
		h, err := c.Get(k)
		require.NoError(t, err)
		out[i] = h
	}
	return out
}

func TestNotInvolution(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	a := terms(t, c, "a")[0]
	require.Equal(t, a, c.Not(c.Not(a)))
}

func TestOrIdentityAndAnnihilator(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	a := terms(t, c, "a")[0]

	require.Equal(t, a, c.Or(a, dag.False))
	require.Equal(t, dag.True, c.Or(a, dag.True))
}

func TestAndIdentityAndAnnihilator(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	a := terms(t, c, "a")[0]

	require.Equal(t, a, c.And(a, dag.True))
	require.Equal(t, dag.False, c.And(a, dag.False))
}

func TestComplementLaws(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	a := terms(t, c, "a")[0]

	require.Equal(t, dag.True, c.Or(a, c.Not(a)))
	require.Equal(t, dag.False, c.And(a, c.Not(a)))
}

func TestIdempotence(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	a := terms(t, c, "a")[0]

	require.Equal(t, a, c.Or(a, a))
	require.Equal(t, a, c.And(a, a))
}

func TestOrCommutativity(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	a, b := terms(t, c, "a", "b")[0], terms(t, c, "a", "b")[1]

	require.Equal(t, c.Or(a, b), c.Or(b, a))
}

func TestOrAssociativity(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	hs := terms(t, c, "a", "b", "c")
	a, b, cc := hs[0], hs[1], hs[2]

	require.Equal(t, c.Or(c.Or(a, b), cc), c.Or(a, c.Or(b, cc)))
}

func TestDeMorgan(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	hs := terms(t, c, "a", "b")
	a, b := hs[0], hs[1]

	// not(a | b) == not(a) & not(b)
	require.Equal(t, c.Not(c.Or(a, b)), c.And(c.Not(a), c.Not(b)))
	// not(a & b) == not(a) | not(b)
	require.Equal(t, c.Not(c.And(a, b)), c.Or(c.Not(a), c.Not(b)))
}

func TestHashConsingSharesStructurallyEqualExpressions(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	hs := terms(t, c, "a", "b", "c")
	a, b, cc := hs[0], hs[1], hs[2]

	e1 := c.Or(a, c.Or(b, cc))
	e2 := c.Or(cc, c.Or(a, b))
	require.Equal(t, e1, e2, "independently-built equal structures must share one handle")
}

func TestGetIsIdempotentByKey(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	h1, err := c.Get("a")
	require.NoError(t, err)
	h2, err := c.Get("a")
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}

func TestGetRejectsUnhashableKey(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	_, err := c.Get([]int{1, 2, 3})
	require.ErrorIs(t, err, dag.ErrUnhashableKey)
}

func TestArgsRoundTrip(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	hs := terms(t, c, "a", "b", "c")
	a, b, cc := hs[0], hs[1], hs[2]

	or := c.Or(a, b, cc)
	require.Equal(t, or, c.Or(c.Args(or)...))
	if diff := cmp.Diff([]dag.Handle{a, b, cc}, c.Args(or)); diff != "" {
		t.Errorf("or's Args did not reproduce its sorted operands (-want +got):\n%s", diff)
	}

	ie := c.IfElse(a, b, cc)
	args := c.Args(ie)
	require.Equal(t, ie, c.IfElse(args[0], args[1], args[2]))

	eq := c.Eq(a, b)
	args = c.Args(eq)
	require.Equal(t, eq, c.Eq(args[0], args[1]))

	if diff := cmp.Diff([]dag.Handle{a}, c.Args(c.Not(a))); diff != "" {
		t.Errorf("Not's Args did not reproduce its single child (-want +got):\n%s", diff)
	}
}

func TestIfElseConstantCondition(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	a, b := terms(t, c, "a", "b")[0], terms(t, c, "a", "b")[1]

	require.Equal(t, a, c.IfElse(dag.True, a, b))
	require.Equal(t, b, c.IfElse(dag.False, a, b))
}

func TestIfElseEqualsEqWhenElseIsNegatedThen(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	a, b := terms(t, c, "a", "b")[0], terms(t, c, "a", "b")[1]

	require.Equal(t, c.Eq(a, b), c.IfElse(a, b, c.Not(b)))
}

func TestIfElsePolarityNormalizedCondition(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	hs := terms(t, c, "a", "b", "c")
	a, b, cc := hs[0], hs[1], hs[2]

	require.Equal(t, c.IfElse(a, b, cc), c.IfElse(c.Not(a), cc, b))
}

func TestEqCommutativeAndComplement(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	a, b := terms(t, c, "a", "b")[0], terms(t, c, "a", "b")[1]

	require.Equal(t, c.Eq(a, b), c.Eq(b, a))
	require.Equal(t, dag.True, c.Eq(a, a))
	require.Equal(t, dag.False, c.Eq(a, c.Not(a)))
}

func TestNeqIsNegatedEq(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	a, b := terms(t, c, "a", "b")[0], terms(t, c, "a", "b")[1]

	require.Equal(t, c.Not(c.Eq(a, b)), c.Neq(a, b))
}

func TestEqNormalizesPolarityOfBothOperandsTogether(t *testing.T) {
	t.Parallel()
	c := dag.NewContext()
	a, b := terms(t, c, "a", "b")[0], terms(t, c, "a", "b")[1]

	// eq(~a, ~b) == eq(a, b)
	require.Equal(t, c.Eq(a, b), c.Eq(c.Not(a), c.Not(b)))
}
