// Copyright 2025 The Grail Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package rules provides a registry of custom derivative rules for
// forward-mode differentiation.
//
//	import "github.com/grail-ml/grail/rules"
//
//	func main() {
//	    reg := rules.NewRegistry()
//	    reg.Register("square", rules.Rule{
//	        Primal:     func(x float64) float64 { return x * x },
//	        Derivative: func(x float64) float64 { return 2 * x },
//	    })
//	    y := reg.ApplyNamed("square", dual.Seed(5)) // {25, 10}
//	}
//
// Applying a rule under an unregistered name returns the input unchanged
// (identity fallback) rather than an error.
package rules

import "github.com/grail-ml/grail/internal/rules"

// Rule is a primal function paired with its derivative.
type Rule = rules.Rule

// Registry is a mutable name-keyed table of rules.
type Registry = rules.Registry

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return rules.NewRegistry() }
