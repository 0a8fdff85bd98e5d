// Package transform evaluates transformation rules against sample values
// to produce mapping previews.
package transform

import (
	"sync"

	"field-mapper/internal/mapping"
)

// Func transforms one sample value.
type Func func(sample string) string

// Registry maps rule kinds to transformation functions and provides lookup.
// A Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	funcs map[mapping.Rule]Func
}

// NewRegistry creates a registry holding the built-in transforms.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[mapping.Rule]Func, mapping.RuleTotal)}
	for rule, fn := range builtins {
		r.funcs[rule] = fn
	}

	return r
}

// Register sets the function for rule, replacing any existing one.
// A nil fn restores identity behavior.
func (r *Registry) Register(rule mapping.Rule, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if fn == nil {
		delete(r.funcs, rule)
		return
	}

	r.funcs[rule] = fn
}

// Get returns the function for rule.
func (r *Registry) Get(rule mapping.Rule) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.funcs[rule]

	return fn, ok
}

// Has returns true if a function is registered for rule.
func (r *Registry) Has(rule mapping.Rule) bool {
	_, ok := r.Get(rule)
	return ok
}

// Apply transforms sample with rule. Rules without a function return the
// sample unchanged.
func (r *Registry) Apply(rule mapping.Rule, sample string) string {
	fn, ok := r.Get(rule)
	if !ok {
		return sample
	}

	return fn(sample)
}

// Preview is a sample value and its transformed output.
type Preview struct {
	Rule   mapping.Rule `json:"rule"`
	Sample string       `json:"sample"`
	Output string       `json:"output"`
}

// Preview applies rule to sample.
func (r *Registry) Preview(rule mapping.Rule, sample string) Preview {
	return Preview{
		Rule:   rule,
		Sample: sample,
		Output: r.Apply(rule, sample),
	}
}

// PreviewColumn applies rule to a sample value derived from the column type.
func (r *Registry) PreviewColumn(rule mapping.Rule, column mapping.Column) Preview {
	return r.Preview(rule, SampleValue(column.Type))
}

// defaultRegistry is never modified after init.
var defaultRegistry = NewRegistry()

// Apply transforms sample with the built-in function for rule.
func Apply(rule mapping.Rule, sample string) string {
	return defaultRegistry.Apply(rule, sample)
}
