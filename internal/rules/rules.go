// Package rules provides a registry of custom derivative rules.
//
// A Rule pairs a primal function with a user-supplied derivative; applying
// it to a dual number follows the forward-mode chain rule with that
// derivative in place of a built-in one. Rules are keyed by name so callers
// can override or extend the engine's operation set at runtime.
package rules

import "github.com/grail-ml/grail/internal/dual"

// Rule is a primal function paired with its derivative.
type Rule struct {
	Primal     func(float64) float64
	Derivative func(float64) float64
}

// Apply evaluates the rule at x using the forward-mode chain rule:
// primal = Primal(x.Primal), tangent = Derivative(x.Primal) * x.Tangent.
func (r Rule) Apply(x dual.Dual) dual.Dual {
	return dual.New(r.Primal(x.Primal), r.Derivative(x.Primal)*x.Tangent)
}

// Registry is a mutable name-keyed table of rules. The zero value is not
// usable; call NewRegistry.
type Registry struct {
	entries map[string]Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Rule)}
}

// Register stores rule under name. Registering an existing name replaces
// the previous entry; lookups always see the most recent registration.
func (reg *Registry) Register(name string, rule Rule) {
	reg.entries[name] = rule
}

// Lookup returns the rule registered under name, if any.
func (reg *Registry) Lookup(name string) (Rule, bool) {
	rule, ok := reg.entries[name]
	return rule, ok
}

// ApplyNamed applies the rule registered under name to x. If no rule is
// registered the input is returned unchanged: missing rules fail open as
// the identity rather than erroring.
func (reg *Registry) ApplyNamed(name string, x dual.Dual) dual.Dual {
	rule, ok := reg.Lookup(name)
	if !ok {
		return x
	}
	return rule.Apply(x)
}
