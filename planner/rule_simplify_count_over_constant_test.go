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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testContext(ids *IDAllocator) Context {
	return Context{
		Lookup:          IdentityLookup{},
		IDAllocator:     ids,
		SymbolAllocator: NewSymbolAllocator(),
		Types:           MapTypeProvider{},
		Functions:       StandardFunctionResolution{},
		Cardinality:     StaticCardinality{},
	}
}

func TestSimplifyCountOverConstantRewritesLiteralBoundColumn(t *testing.T) {
	ids := NewIDAllocator()
	x := Variable{Name: "x", Type: Bigint}
	constVar := Variable{Name: "c", Type: Bigint}
	inner := NewSource(ids.NextID(), []Variable{x})

	assignments := IdentityAssignments([]Variable{x}).Put(constVar, LongLit{Value: 1})
	project := NewProject(ids.NextID(), inner, assignments)

	cnt := Variable{Name: "cnt", Type: Bigint}
	fns := StandardFunctionResolution{}
	aggregation := NewAggregation(ids.NextID(), project,
		[]AggEntry{{Output: cnt, Agg: Agg{Handle: fns.CountArg(Bigint), Args: []Expression{SymRef{Name: "c"}}}}},
		[]Variable{x}, StepSingle)

	pattern := SimplifyCountOverConstant{}.Pattern()
	captures, ok := pattern.Match(aggregation, IdentityLookup{})
	require.True(t, ok)

	result := SimplifyCountOverConstant{}.Apply(aggregation, captures, testContext(ids))
	require.True(t, result.Changed())

	rewritten := result.PlanNode().(*Aggregation)
	require.Empty(t, rewritten.Aggregations()[0].Agg.Args)
	require.True(t, fns.IsCount(rewritten.Aggregations()[0].Agg.Handle))
}

func TestSimplifyCountOverConstantRewritesDirectLiteral(t *testing.T) {
	ids := NewIDAllocator()
	x := Variable{Name: "x", Type: Bigint}
	inner := NewSource(ids.NextID(), []Variable{x})
	project := NewProject(ids.NextID(), inner, IdentityAssignments([]Variable{x}))

	cnt := Variable{Name: "cnt", Type: Bigint}
	fns := StandardFunctionResolution{}
	aggregation := NewAggregation(ids.NextID(), project,
		[]AggEntry{{Output: cnt, Agg: Agg{Handle: fns.CountArg(Bigint), Args: []Expression{LongLit{Value: 5}}}}},
		nil, StepSingle)

	captures, ok := SimplifyCountOverConstant{}.Pattern().Match(aggregation, IdentityLookup{})
	require.True(t, ok)

	result := SimplifyCountOverConstant{}.Apply(aggregation, captures, testContext(ids))
	require.True(t, result.Changed())
	require.Empty(t, result.PlanNode().(*Aggregation).Aggregations()[0].Agg.Args)
}

func TestSimplifyCountOverConstantDeclinesNonLiteral(t *testing.T) {
	ids := NewIDAllocator()
	x := Variable{Name: "x", Type: Bigint}
	inner := NewSource(ids.NextID(), []Variable{x})
	project := NewProject(ids.NextID(), inner, IdentityAssignments([]Variable{x}))

	cnt := Variable{Name: "cnt", Type: Bigint}
	fns := StandardFunctionResolution{}
	aggregation := NewAggregation(ids.NextID(), project,
		[]AggEntry{{Output: cnt, Agg: Agg{Handle: fns.CountArg(Bigint), Args: []Expression{SymRef{Name: "x"}}}}},
		nil, StepSingle)

	captures, ok := SimplifyCountOverConstant{}.Pattern().Match(aggregation, IdentityLookup{})
	require.True(t, ok)

	result := SimplifyCountOverConstant{}.Apply(aggregation, captures, testContext(ids))
	require.False(t, result.Changed())
}
