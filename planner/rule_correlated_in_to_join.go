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

// inPredicateCapture is what singleInPredicate extracts from an Apply: the
// single In expression its subquery assignment computes, plus the variable
// it is assigned to.
type inPredicateCapture struct {
	output Variable
	in     In
}

func singleInPredicate(node *Apply) (inPredicateCapture, bool) {
	assignments := node.SubqueryAssignments()
	if assignments.Len() != 1 {
		return inPredicateCapture{}, false
	}
	v := assignments.Variables()[0]
	expr, _ := assignments.Get(v)
	in, ok := expr.(In)
	if !ok {
		return inPredicateCapture{}, false
	}
	return inPredicateCapture{output: v, in: in}, true
}

func hasSingleInPredicate(node *Apply, _ Lookup, c Captures) (Captures, bool) {
	_, ok := singleInPredicate(node)
	return c, ok
}

// CorrelatedInPredicateToJoin rewrites an Apply whose subquery assignment is
// a single `value IN subquery` test into a left join plus an aggregation
// that recovers SQL's three-valued IN semantics without ever evaluating the
// subquery once per outer row.
type CorrelatedInPredicateToJoin struct{}

var _ Rule[*Apply] = CorrelatedInPredicateToJoin{}

// Name implements Rule.
func (CorrelatedInPredicateToJoin) Name() string { return "CorrelatedInPredicateToJoin" }

// Pattern implements Rule.
func (CorrelatedInPredicateToJoin) Pattern() *Pattern[*Apply] {
	return NewPattern[*Apply]().
		With(NonEmpty(func(a *Apply) []Variable { return a.Correlation() })).
		With(hasSingleInPredicate)
}

// Apply implements Rule.
func (CorrelatedInPredicateToJoin) Apply(node *Apply, _ Captures, ctx Context) Result {
	pred, ok := singleInPredicate(node)
	if !ok {
		return ResultEmpty()
	}

	decorrelated, ok := Decorrelate(ctx.Lookup, node.Correlation(), ctx.Types, ctx.IDAllocator, node.Subquery())
	if !ok {
		return ResultEmpty()
	}

	subqueryOutputName, ok := singleSymRefName(pred.in.ValueList)
	if !ok {
		return ResultEmpty()
	}

	uniqueVar := ctx.SymbolAllocator.NewVariable("unique", Bigint)
	probeSide := NewAssignUniqueID(ctx.IDAllocator.NextID(), node.Input(), uniqueVar)

	buildSideKnownNonNull := ctx.SymbolAllocator.NewVariable("build_side_known_non_null", Bigint)
	buildAssignments := IdentityAssignments(decorrelated.DecorrelatedNode.Outputs())
	buildAssignments = buildAssignments.Put(buildSideKnownNonNull, Cast{Expr: LongLit{Value: 0}, TargetType: Bigint})
	buildSide := NewProject(ctx.IDAllocator.NextID(), decorrelated.DecorrelatedNode, buildAssignments)

	buildRef := SymRef{Name: subqueryOutputName}
	matchCondition := Compare{Op: EQ, Lhs: pred.in.Value, Rhs: buildRef}
	nullSafeMatch := OrOf(IsNull{Arg: pred.in.Value}, matchCondition, IsNull{Arg: buildRef})
	correlationCondition := AndOf(decorrelated.CorrelatedPredicates...)

	joinOutputs := append(append([]Variable{}, probeSide.Outputs()...), buildSide.Outputs()...)
	join := NewJoin(ctx.IDAllocator.NextID(), LeftJoin, probeSide, buildSide, nil, joinOutputs,
		AndOf(nullSafeMatch, correlationCondition))

	countMatches := ctx.SymbolAllocator.NewVariable("count_matches", Bigint)
	countNullMatches := ctx.SymbolAllocator.NewVariable("count_null_matches", Bigint)
	aggregation := NewAggregation(ctx.IDAllocator.NextID(), join,
		[]AggEntry{
			{Output: countMatches, Agg: Agg{
				Handle: ctx.Functions.CountStar(),
				Filter: AndOf(IsNotNull{Arg: pred.in.Value}, IsNotNull{Arg: buildRef}),
			}},
			{Output: countNullMatches, Agg: Agg{
				Handle: ctx.Functions.CountStar(),
				Filter: AndOf(IsNotNull{Arg: SymRef{Name: buildSideKnownNonNull.Name}}, Not{Arg: AndOf(IsNotNull{Arg: pred.in.Value}, IsNotNull{Arg: buildRef})}),
			}},
		},
		probeSide.Outputs(), StepSingle)

	outAssignments := IdentityAssignments(node.Input().Outputs())
	outAssignments = outAssignments.Put(pred.output, SearchedCase{
		Whens: []WhenClause{
			{Cond: Compare{Op: GT, Lhs: SymRef{Name: countMatches.Name}, Rhs: LongLit{Value: 0}}, Result: BoolLit{Value: true}},
			{Cond: Compare{Op: GT, Lhs: SymRef{Name: countNullMatches.Name}, Rhs: LongLit{Value: 0}}, Result: NullLit{}},
		},
		Else: BoolLit{Value: false},
	})

	return ResultOfPlanNode(NewProject(ctx.IDAllocator.NextID(), aggregation, outAssignments))
}

func singleSymRefName(e Expression) (string, bool) {
	ref, ok := e.(SymRef)
	if !ok {
		return "", false
	}
	return ref.Name, true
}
