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

func TestRemoveUnreferencedScalarLateralDropsScalarInput(t *testing.T) {
	ids := NewIDAllocator()
	scalarInput := NewAggregation(ids.NextID(), NewSource(ids.NextID(), []Variable{{Name: "a"}}), nil, nil, StepSingle)
	subquery := NewSource(ids.NextID(), []Variable{{Name: "b"}})
	lateral := NewLateralJoin(ids.NextID(), scalarInput, subquery, nil, "err")

	result := RemoveUnreferencedScalarLateral{}.Apply(lateral, Captures{}, testContext(ids))
	require.True(t, result.Changed())
	require.Same(t, subquery, result.PlanNode())
}

func TestRemoveUnreferencedScalarLateralDropsScalarSubquery(t *testing.T) {
	ids := NewIDAllocator()
	input := NewSource(ids.NextID(), []Variable{{Name: "a"}})
	scalarSubquery := NewAggregation(ids.NextID(), NewSource(ids.NextID(), []Variable{{Name: "b"}}), nil, nil, StepSingle)
	lateral := NewLateralJoin(ids.NextID(), input, scalarSubquery, nil, "err")

	result := RemoveUnreferencedScalarLateral{}.Apply(lateral, Captures{}, testContext(ids))
	require.True(t, result.Changed())
	require.Same(t, input, result.PlanNode())
}

func TestRemoveUnreferencedScalarLateralDeclinesWhenBothSidesHaveOutputs(t *testing.T) {
	ids := NewIDAllocator()
	input := NewSource(ids.NextID(), []Variable{{Name: "a"}})
	subquery := NewSource(ids.NextID(), []Variable{{Name: "b"}})
	lateral := NewLateralJoin(ids.NextID(), input, subquery, nil, "err")

	result := RemoveUnreferencedScalarLateral{}.Apply(lateral, Captures{}, testContext(ids))
	require.False(t, result.Changed())
}
