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

// Command eqbool-demo exercises the eqbool API end to end in demo mode. It
// takes no positional arguments, reads no files, and is not part of
// eqbool's stable surface — it exists to give the engine a runnable sanity
// check and a place to show its API by example.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kosarev/eqbool/dag"
	"github.com/kosarev/eqbool/eqbool"
	"github.com/kosarev/eqbool/internal/obslog"
)

var verbose bool

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eqbool-demo",
		Short: "Exercise the eqbool boolean-expression equivalence engine in demo mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log decider and hash-cons activity at debug level")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "eqbool-demo: assertion failed:", err)
		os.Exit(1)
	}
}

// assertion is one internal self-check the demo runs; failures are
// reported with enough context to diagnose a regression without a
// debugger.
type assertion struct {
	name string
	ok   bool
	got  string
}

func runDemo(out io.Writer) error {
	logger := obslog.Nop()
	if verbose {
		logger = obslog.NewDevelopment()
	}
	defer logger.Sync() //nolint:errcheck

	ctx := eqbool.NewContext(eqbool.WithLogger(logger))

	var checks []assertion
	record := func(name string, ok bool, got string) {
		checks = append(checks, assertion{name: name, ok: ok, got: got})
	}

	f, t := ctx.False(), ctx.True()
	record("false | not(false) == true", f.Or(f.Not()) == t, f.Or(f.Not()).String())

	a, err := ctx.Get("a")
	if err != nil {
		return fmt.Errorf("get(a): %w", err)
	}
	b, err := ctx.Get("b")
	if err != nil {
		return fmt.Errorf("get(b): %w", err)
	}
	c, err := ctx.Get("c")
	if err != nil {
		return fmt.Errorf("get(c): %w", err)
	}
	d, err := ctx.Get("d")
	if err != nil {
		return fmt.Errorf("get(d): %w", err)
	}

	e := b.Not().Or(a.IfElse(b, b.Not()).Not())
	want := a.Not().Or(b.Not())
	record("De Morgan / ifelse collapse", e == want, e.String())

	record("or associativity", a.Or(b).Or(c) == a.Or(b.Or(c)), a.Or(b).Or(c).String())

	e1 := a.And(b.Or(c).Or(a.Not().Or(b.Not().Or(d.Or(c.Not())).And(c.Or(b.Not())))))
	record("e1 != a by handle before proof", !e1.Equal(a), e1.String())

	result := ctx.IsEquiv(e1, a)
	record("is_equiv(e1, a) == true", result == eqbool.Equivalent, result.String())
	record("e1 == a after merge", e1.Equal(a), fmt.Sprintf("ids %d/%d", e1.ID(), a.ID()))

	record("ifelse(a,b,not(b)) == eq(a,b)", a.IfElse(b, b.Not()) == a.Eq(b), a.IfElse(b, b.Not()).String())
	record("ifelse(true,a,b) == a", t.IfElse(a, b) == a, t.IfElse(a, b).String())
	record("ifelse(false,a,b) == b", f.IfElse(a, b) == b, f.IfElse(a, b).String())

	budgeted := ctx.IsEquiv(a, b, dag.WithMaxVisits(1))
	record("a tiny budget never proves unrelated terms equivalent", budgeted != eqbool.Equivalent, budgeted.String())

	ok := true
	for _, chk := range checks {
		status := "ok"
		if !chk.ok {
			status = "FAIL"
			ok = false
		}
		fmt.Fprintf(out, "[%s] %s (%s)\n", status, chk.name, chk.got)
	}
	if !ok {
		return fmt.Errorf("one or more internal assertions failed")
	}
	logger.Info("demo completed", zap.Int("checks", len(checks)))
	return nil
}
