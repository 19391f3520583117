// Copyright 2026 PingCAP, Inc.
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

package planner

import "fmt"

// Capture is a typed handle a Pattern binds a matched subtree to. The name
// keys the binding in Captures and appears in the panic message on a
// misused handle.
type Capture[T any] struct{ name string }

// NewCapture returns a fresh capture handle.
func NewCapture[T any](name string) Capture[T] {
	return Capture[T]{name: name}
}

// Captures is the set of bindings produced by a successful Pattern match.
type Captures struct {
	values map[string]any
}

func newCaptures() Captures {
	return Captures{values: map[string]any{}}
}

func (c Captures) with(name string, v any) Captures {
	out := Captures{values: make(map[string]any, len(c.values)+1)}
	for k, val := range c.values {
		out.values[k] = val
	}
	out.values[name] = v
	return out
}

// GetCapture retrieves the subtree bound to h. It panics if h was never
// captured by the Pattern that produced c, which can only happen if a rule
// reads a capture its own Pattern did not declare.
func GetCapture[T any](c Captures, h Capture[T]) T {
	v, ok := c.values[h.name]
	if !ok {
		panic(fmt.Sprintf("planner: capture %q not bound", h.name))
	}
	return v.(T)
}

// Predicate is one structural test a Pattern applies to a candidate node of
// type T, optionally extending Captures along the way.
type Predicate[T PlanNode] func(node T, lookup Lookup, captures Captures) (Captures, bool)

// Pattern declares what a Rule matches: a node of (Go) type T — which
// doubles as the variant tag — satisfying every predicate in order.
type Pattern[T PlanNode] struct {
	predicates []Predicate[T]
}

// NewPattern returns a Pattern matching any node of type T.
func NewPattern[T PlanNode]() *Pattern[T] {
	return &Pattern[T]{}
}

// With appends a structural predicate, returning the same Pattern for
// chaining.
func (p *Pattern[T]) With(pred Predicate[T]) *Pattern[T] {
	p.predicates = append(p.predicates, pred)
	return p
}

// Match reports whether node satisfies every predicate, returning the
// accumulated captures on success.
func (p *Pattern[T]) Match(node T, lookup Lookup) (Captures, bool) {
	captures := newCaptures()
	for _, pred := range p.predicates {
		var ok bool
		captures, ok = pred(node, lookup, captures)
		if !ok {
			return Captures{}, false
		}
	}
	return captures, true
}

// NonEmpty wraps a correlation-extracting function into a predicate
// requiring that correlation be non-empty, mirroring
// Pattern.nonEmpty(correlation()).
func NonEmpty[T PlanNode](correlation func(T) []Variable) Predicate[T] {
	return func(node T, _ Lookup, c Captures) (Captures, bool) {
		return c, len(correlation(node)) > 0
	}
}

// SourceCapturedAs requires the node's first source, after Lookup
// resolution, to have concrete type C, and binds it to capture.
func SourceCapturedAs[T PlanNode, C PlanNode](sourceOf func(T) PlanNode, capture Capture[C]) Predicate[T] {
	return func(node T, lookup Lookup, c Captures) (Captures, bool) {
		resolved := lookup.Resolve(sourceOf(node))
		typed, ok := resolved.(C)
		if !ok {
			return c, false
		}
		return c.with(capture.name, typed), true
	}
}
