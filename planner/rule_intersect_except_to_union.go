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

// setOpToUnion rewrites an N-ary Intersect/Except into a Union tagged with
// one boolean marker column per source, an aggregation counting how many
// non-null markers survive per group, and a filter translating those counts
// back into intersect/except membership. It is shared by IntersectToUnion
// and ExceptToUnion, which differ only in the filter they build over the
// per-source counts.
func setOpToUnion(
	id PlanNodeID,
	sources []PlanNode,
	columns []SetOperationColumn,
	ctx Context,
	filterOf func(counts []Variable) Expression,
) PlanNode {
	n := len(sources)
	markers := make([]Variable, n)
	for k := range markers {
		markers[k] = ctx.SymbolAllocator.NewVariable("marker", Boolean)
	}

	wrapped := make([]PlanNode, n)
	for i, source := range sources {
		assignments := IdentityAssignments(ctx.Lookup.Resolve(source).Outputs())
		for k := range markers {
			if k == i {
				assignments = assignments.Put(markers[k], BoolLit{Value: true})
			} else {
				assignments = assignments.Put(markers[k], Cast{Expr: NullLit{}, TargetType: Boolean})
			}
		}
		wrapped[i] = NewProject(ctx.IDAllocator.NextID(), source, assignments)
	}

	newColumns := append([]SetOperationColumn{}, columns...)
	for _, marker := range markers {
		inputs := make([]Variable, n)
		for i := range inputs {
			inputs[i] = marker
		}
		newColumns = append(newColumns, SetOperationColumn{Output: marker, Inputs: inputs})
	}

	union := NewUnion(ctx.IDAllocator.NextID(), wrapped, newColumns)

	groupingSet := make([]Variable, len(columns))
	for i, c := range columns {
		groupingSet[i] = c.Output
	}

	countVars := make([]Variable, n)
	entries := make([]AggEntry, n)
	for k, marker := range markers {
		countVars[k] = ctx.SymbolAllocator.NewVariable("marker_count", Bigint)
		entries[k] = AggEntry{
			Output: countVars[k],
			Agg: Agg{
				Handle: ctx.Functions.CountArg(Boolean),
				Args:   []Expression{SymRef{Name: marker.Name}},
			},
		}
	}
	aggregation := NewAggregation(ctx.IDAllocator.NextID(), union, entries, groupingSet, StepSingle)

	filtered := NewFilter(ctx.IDAllocator.NextID(), aggregation, filterOf(countVars))

	outAssignments := IdentityAssignments(groupingSet)
	return NewProject(id, filtered, outAssignments)
}

// IntersectToUnion rewrites Intersect(a, b, ...) into a union-and-count
// plan: a group survives iff every source contributed at least one row to
// it.
type IntersectToUnion struct{}

var _ Rule[*Intersect] = IntersectToUnion{}

// Name implements Rule.
func (IntersectToUnion) Name() string { return "IntersectToUnion" }

// Pattern implements Rule.
func (IntersectToUnion) Pattern() *Pattern[*Intersect] { return NewPattern[*Intersect]() }

// Apply implements Rule.
func (IntersectToUnion) Apply(node *Intersect, _ Captures, ctx Context) Result {
	rewritten := setOpToUnion(ctx.IDAllocator.NextID(), node.Sources(), node.Columns(), ctx, func(counts []Variable) Expression {
		conds := make([]Expression, len(counts))
		for i, c := range counts {
			conds[i] = Compare{Op: GE, Lhs: SymRef{Name: c.Name}, Rhs: LongLit{Value: 1}}
		}
		return AndOf(conds...)
	})
	return ResultOfPlanNode(rewritten)
}

// ExceptToUnion rewrites Except(a, b, ...) into a union-and-count plan: a
// group survives iff the first source contributed to it and none of the
// rest did.
type ExceptToUnion struct{}

var _ Rule[*Except] = ExceptToUnion{}

// Name implements Rule.
func (ExceptToUnion) Name() string { return "ExceptToUnion" }

// Pattern implements Rule.
func (ExceptToUnion) Pattern() *Pattern[*Except] { return NewPattern[*Except]() }

// Apply implements Rule.
func (ExceptToUnion) Apply(node *Except, _ Captures, ctx Context) Result {
	rewritten := setOpToUnion(ctx.IDAllocator.NextID(), node.Sources(), node.Columns(), ctx, func(counts []Variable) Expression {
		if len(counts) == 0 {
			return BoolLit{Value: false}
		}
		conds := make([]Expression, 0, len(counts))
		conds = append(conds, Compare{Op: GE, Lhs: SymRef{Name: counts[0].Name}, Rhs: LongLit{Value: 1}})
		for _, c := range counts[1:] {
			conds = append(conds, Compare{Op: EQ, Lhs: SymRef{Name: c.Name}, Rhs: LongLit{Value: 0}})
		}
		return AndOf(conds...)
	})
	return ResultOfPlanNode(rewritten)
}
