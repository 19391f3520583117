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

// TypeProvider resolves a variable's declared type by name. Rewriters use
// it only when synthesizing a Variable for a symbol they observe by name
// alone (e.g. while pulling predicates up through the decorrelator).
type TypeProvider interface {
	Get(name string) Type
}

// MapTypeProvider is a TypeProvider backed by a fixed map, sufficient for
// tests and for callers that already have a flat symbol table.
type MapTypeProvider map[string]Type

// Get implements TypeProvider.
func (m MapTypeProvider) Get(name string) Type {
	return m[name]
}

// CardinalityUtil answers whether a plan node is statically scalar —
// provably producing exactly one row for any input.
type CardinalityUtil interface {
	IsScalar(node PlanNode, lookup Lookup) bool
}

// Result is what Rule.Apply returns: either no change, or a replacement
// subtree standing in for the matched node.
type Result struct {
	replacement PlanNode
	changed     bool
}

// ResultEmpty reports that a rule declined to rewrite its candidate.
func ResultEmpty() Result { return Result{} }

// ResultOfPlanNode reports a successful rewrite, replacing the matched node
// with replacement.
func ResultOfPlanNode(replacement PlanNode) Result {
	return Result{replacement: replacement, changed: true}
}

// Changed reports whether the rule rewrote its candidate.
func (r Result) Changed() bool { return r.changed }

// PlanNode returns the replacement subtree. Only meaningful when Changed.
func (r Result) PlanNode() PlanNode { return r.replacement }

// Context supplies a Rule's capabilities: allocators and read-only
// collaborators. Rules never reach for global state.
type Context struct {
	Lookup          Lookup
	IDAllocator     *IDAllocator
	SymbolAllocator *SymbolAllocator
	Types           TypeProvider
	Functions       FunctionResolution
	Cardinality     CardinalityUtil
}

// Rule declares a Pattern selecting candidate nodes of type T and an Apply
// step that rewrites a matched candidate, or declines.
type Rule[T PlanNode] interface {
	Name() string
	Pattern() *Pattern[T]
	Apply(node T, captures Captures, ctx Context) Result
}

// RuleApplier is the type-erased form of Rule[T] the Driver dispatches
// through, since a single driver visits a plan mixing every node type.
type RuleApplier interface {
	Name() string
	// TryApply reports matched=false if node's Go type doesn't match the
	// rule's pattern type or the pattern's predicates reject it; otherwise
	// it returns the rule's Result.
	TryApply(node PlanNode, ctx Context) (result Result, matched bool)
}

type typedRuleApplier[T PlanNode] struct{ rule Rule[T] }

// AsRuleApplier adapts a concrete Rule[T] into the Driver's type-erased
// RuleApplier interface.
func AsRuleApplier[T PlanNode](rule Rule[T]) RuleApplier {
	return typedRuleApplier[T]{rule: rule}
}

func (a typedRuleApplier[T]) Name() string { return a.rule.Name() }

func (a typedRuleApplier[T]) TryApply(node PlanNode, ctx Context) (Result, bool) {
	typed, ok := node.(T)
	if !ok {
		return Result{}, false
	}
	captures, ok := a.rule.Pattern().Match(typed, ctx.Lookup)
	if !ok {
		return Result{}, false
	}
	return a.rule.Apply(typed, captures, ctx), true
}
