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

// Package obslog centralizes how eqbool builds its zap loggers, so every
// package that accepts a *zap.Logger option treats "none supplied" the same
// way: silent by default, never surprising a caller who hasn't opted in.
package obslog

import "go.uber.org/zap"

// Nop returns the logger used when no logger option is supplied.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// NewDevelopment builds a human-readable, Debug-level logger suitable for
// the CLI demo and local debugging. It never returns an error to the
// caller: if zap's development config somehow fails to build (it cannot,
// absent a broken stderr), it falls back to Nop rather than making every
// caller handle a logger-construction error for what should be a one-line
// diagnostics knob.
func NewDevelopment() *zap.Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		return Nop()
	}
	return l
}
