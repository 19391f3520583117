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

var projectSourceCapture = NewCapture[*Project]("simplify_count_over_constant.source")

// SimplifyCountOverConstant rewrites count(x) to count(*) wherever x is
// provably non-null: a literal, or a reference to a column the immediate
// source Project binds to a non-null literal. count(*) never needs to
// inspect its argument, so this shortens the aggregation's dependency on
// that column.
type SimplifyCountOverConstant struct{}

var _ Rule[*Aggregation] = SimplifyCountOverConstant{}

// Name implements Rule.
func (SimplifyCountOverConstant) Name() string { return "SimplifyCountOverConstant" }

// Pattern implements Rule.
func (SimplifyCountOverConstant) Pattern() *Pattern[*Aggregation] {
	return NewPattern[*Aggregation]().
		With(SourceCapturedAs(func(a *Aggregation) PlanNode { return a.Source() }, projectSourceCapture))
}

// Apply implements Rule.
func (SimplifyCountOverConstant) Apply(node *Aggregation, captures Captures, ctx Context) Result {
	source := GetCapture(captures, projectSourceCapture)

	changed := false
	entries := make([]AggEntry, len(node.Aggregations()))
	for i, e := range node.Aggregations() {
		if !ctx.Functions.IsCount(e.Agg.Handle) || len(e.Agg.Args) != 1 {
			entries[i] = e
			continue
		}
		if !isProvablyNonNull(e.Agg.Args[0], source) {
			entries[i] = e
			continue
		}
		entries[i] = AggEntry{
			Output: e.Output,
			Agg: Agg{
				Handle:   ctx.Functions.CountStar(),
				Filter:   e.Agg.Filter,
				OrderBy:  e.Agg.OrderBy,
				Distinct: e.Agg.Distinct,
				Mask:     e.Agg.Mask,
			},
		}
		changed = true
	}
	if !changed {
		return ResultEmpty()
	}

	return ResultOfPlanNode(NewAggregation(node.ID(), source, entries, node.GroupingSet(), node.Step()))
}

func isProvablyNonNull(arg Expression, source *Project) bool {
	if IsLiteral(arg) && !IsNullLiteral(arg) {
		return true
	}
	ref, ok := arg.(SymRef)
	if !ok {
		return false
	}
	bound, ok := source.Assignments().GetByName(ref.Name)
	if !ok {
		return false
	}
	return IsLiteral(bound) && !IsNullLiteral(bound)
}
