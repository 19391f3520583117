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
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDriverOptimizeAppliesRuleBottomUp(t *testing.T) {
	ids := NewIDAllocator()
	x := Variable{Name: "x", Type: Bigint}
	constVar := Variable{Name: "c", Type: Bigint}
	inner := NewSource(ids.NextID(), []Variable{x})
	assignments := IdentityAssignments([]Variable{x}).Put(constVar, LongLit{Value: 1})
	project := NewProject(ids.NextID(), inner, assignments)

	cnt := Variable{Name: "cnt", Type: Bigint}
	fns := StandardFunctionResolution{}
	root := NewAggregation(ids.NextID(), project,
		[]AggEntry{{Output: cnt, Agg: Agg{Handle: fns.CountArg(Bigint), Args: []Expression{SymRef{Name: "c"}}}}},
		[]Variable{x}, StepSingle)

	driver := NewDriver([]RuleApplier{AsRuleApplier[*Aggregation](SimplifyCountOverConstant{})}, Config{})
	rctx := testContext(ids)

	out, err := driver.Optimize(context.Background(), root, rctx)
	require.NoError(t, err)

	rewritten := out.(*Aggregation)
	require.Empty(t, rewritten.Aggregations()[0].Agg.Args)
}

func TestDriverOptimizeNoOpWhenNoRuleMatches(t *testing.T) {
	ids := NewIDAllocator()
	source := NewSource(ids.NextID(), []Variable{{Name: "x"}})

	driver := NewDriver([]RuleApplier{AsRuleApplier[*Aggregation](SimplifyCountOverConstant{})}, Config{})
	out, err := driver.Optimize(context.Background(), source, testContext(ids))

	require.NoError(t, err)
	require.Same(t, source, out)
}

func TestDriverOptimizeRespectsContextCancellation(t *testing.T) {
	ids := NewIDAllocator()
	source := NewSource(ids.NextID(), []Variable{{Name: "x"}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	driver := NewDriver(nil, Config{})
	_, err := driver.Optimize(ctx, source, testContext(ids))
	require.Error(t, err)
}
