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

// Decorrelated is the result of successfully pulling correlation out of a
// subplan: an uncorrelated core plus the predicates that referenced outer
// variables and had to be hoisted above it.
type Decorrelated struct {
	DecorrelatedNode    PlanNode
	CorrelatedPredicates []Expression
}

// decorrelatingVisitor implements the bottom-up decorrelation walk: Project
// and Filter are handled specially, everything else either already looks
// independent of the correlation set or can't be decorrelated at all.
type decorrelatingVisitor struct {
	lookup      Lookup
	correlation map[string]struct{}
	types       TypeProvider
	idAllocator *IDAllocator
}

// Decorrelate attempts to pull correlation out of subquery with respect to
// the outer-scope variables in correlation. It returns ok=false if
// subquery cannot be decorrelated by this algorithm (the caller should
// decline its own rewrite in that case, leaving the Apply/LateralJoin for
// the verifier to reject).
func Decorrelate(lookup Lookup, correlation []Variable, types TypeProvider, idAllocator *IDAllocator, subquery PlanNode) (Decorrelated, bool) {
	set := make(map[string]struct{}, len(correlation))
	for _, v := range correlation {
		set[v.Name] = struct{}{}
	}
	v := &decorrelatingVisitor{lookup: lookup, correlation: set, types: types, idAllocator: idAllocator}
	return v.decorrelate(subquery)
}

func (v *decorrelatingVisitor) decorrelate(reference PlanNode) (Decorrelated, bool) {
	node := v.lookup.Resolve(reference)
	switch n := node.(type) {
	case *Project:
		return v.visitProject(n)
	case *Filter:
		return v.visitFilter(n)
	default:
		return v.visitOther(node)
	}
}

func (v *decorrelatingVisitor) visitProject(node *Project) (Decorrelated, bool) {
	if v.isCorrelatedShallowlyAssignments(node.Assignments()) {
		// Handling a correlated projection (one that itself computes an
		// expression over an outer variable) would require splitting the
		// projection; not attempted here.
		return Decorrelated{}, false
	}

	result, ok := v.decorrelate(node.Source())
	if !ok {
		return Decorrelated{}, false
	}

	assignments := node.Assignments()
	for _, name := range pulledUpNonCorrelationSymbols(result.CorrelatedPredicates, v.correlation) {
		vr := Variable{Name: name, Type: v.types.Get(name)}
		if _, already := assignments.GetByName(name); already {
			continue
		}
		assignments = assignments.Put(vr, SymRef{Name: name})
	}

	return Decorrelated{
		CorrelatedPredicates: result.CorrelatedPredicates,
		DecorrelatedNode:     NewProject(v.idAllocator.NextID(), result.DecorrelatedNode, assignments),
	}, true
}

func (v *decorrelatingVisitor) visitFilter(node *Filter) (Decorrelated, bool) {
	result, ok := v.decorrelate(node.Source())
	if !ok {
		return Decorrelated{}, false
	}
	predicates := append(append([]Expression{}, result.CorrelatedPredicates...), node.Predicate())
	return Decorrelated{
		CorrelatedPredicates: predicates,
		DecorrelatedNode:     result.DecorrelatedNode,
	}, true
}

func (v *decorrelatingVisitor) visitOther(node PlanNode) (Decorrelated, bool) {
	if v.isCorrelatedRecursively(node) {
		return Decorrelated{}, false
	}
	return Decorrelated{DecorrelatedNode: node}, true
}

func (v *decorrelatingVisitor) isCorrelatedRecursively(node PlanNode) bool {
	if v.isCorrelatedShallowly(node) {
		return true
	}
	for _, child := range node.Sources() {
		if v.isCorrelatedRecursively(v.lookup.Resolve(child)) {
			return true
		}
	}
	return false
}

// isCorrelatedShallowly inspects only node's own expressions, not its
// children's.
func (v *decorrelatingVisitor) isCorrelatedShallowly(node PlanNode) bool {
	switch n := node.(type) {
	case *Filter:
		return v.referencesCorrelation(n.Predicate())
	case *Project:
		return v.isCorrelatedShallowlyAssignments(n.Assignments())
	case *Join:
		if n.Filter() != nil && v.referencesCorrelation(n.Filter()) {
			return true
		}
		for _, crit := range n.Criteria() {
			if _, ok := v.correlation[crit.Left.Name]; ok {
				return true
			}
			if _, ok := v.correlation[crit.Right.Name]; ok {
				return true
			}
		}
		return false
	case *Aggregation:
		for _, e := range n.Aggregations() {
			for _, arg := range e.Agg.Args {
				if v.referencesCorrelation(arg) {
					return true
				}
			}
			if e.Agg.Filter != nil && v.referencesCorrelation(e.Agg.Filter) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (v *decorrelatingVisitor) isCorrelatedShallowlyAssignments(assignments Assignments) bool {
	for _, expr := range assignments.Expressions() {
		if v.referencesCorrelation(expr) {
			return true
		}
	}
	return false
}

func (v *decorrelatingVisitor) referencesCorrelation(e Expression) bool {
	for name := range ExtractSymbolsShallow(e) {
		if _, ok := v.correlation[name]; ok {
			return true
		}
	}
	return false
}

// pulledUpNonCorrelationSymbols returns, in a deterministic order, every
// symbol referenced by predicates that is not itself a correlation
// variable — these must stay visible above a Project that would otherwise
// prune them away.
func pulledUpNonCorrelationSymbols(predicates []Expression, correlation map[string]struct{}) []string {
	seen := map[string]struct{}{}
	var order []string
	for _, p := range predicates {
		for _, name := range SortedNames(ExtractSymbolsShallow(p)) {
			if _, isCorrelation := correlation[name]; isCorrelation {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			order = append(order, name)
		}
	}
	return order
}
