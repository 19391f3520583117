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

func TestDecorrelateFilterHoistsPredicate(t *testing.T) {
	ids := NewIDAllocator()
	b := Variable{Name: "b", Type: Bigint}
	source := NewSource(ids.NextID(), []Variable{b})
	predicate := Compare{Op: EQ, Lhs: SymRef{Name: "a"}, Rhs: SymRef{Name: "b"}}
	filter := NewFilter(ids.NextID(), source, predicate)

	result, ok := Decorrelate(IdentityLookup{}, []Variable{{Name: "a", Type: Bigint}}, MapTypeProvider{}, ids, filter)

	require.True(t, ok)
	require.Same(t, source, result.DecorrelatedNode)
	require.Equal(t, []Expression{predicate}, result.CorrelatedPredicates)
}

func TestDecorrelateProjectPullsUpReferencedSymbol(t *testing.T) {
	ids := NewIDAllocator()
	types := MapTypeProvider{"b": Bigint}
	b := Variable{Name: "b", Type: Bigint}
	source := NewSource(ids.NextID(), []Variable{b})
	predicate := Compare{Op: EQ, Lhs: SymRef{Name: "a"}, Rhs: SymRef{Name: "b"}}
	filter := NewFilter(ids.NextID(), source, predicate)

	out := Variable{Name: "out", Type: Bigint}
	assignments := NewAssignments().Put(out, LongLit{Value: 1})
	project := NewProject(ids.NextID(), filter, assignments)

	result, ok := Decorrelate(IdentityLookup{}, []Variable{{Name: "a", Type: Bigint}}, types, ids, project)

	require.True(t, ok)
	rewritten, isProject := result.DecorrelatedNode.(*Project)
	require.True(t, isProject)

	_, hasOut := rewritten.Assignments().GetByName("out")
	require.True(t, hasOut)
	_, hasB := rewritten.Assignments().GetByName("b")
	require.True(t, hasB, "b must stay visible above the project since the hoisted predicate still references it")
	require.Equal(t, []Expression{predicate}, result.CorrelatedPredicates)
}

func TestDecorrelateDeclinesCorrelatedProjection(t *testing.T) {
	ids := NewIDAllocator()
	b := Variable{Name: "b", Type: Bigint}
	source := NewSource(ids.NextID(), []Variable{b})

	out := Variable{Name: "out", Type: Bigint}
	assignments := NewAssignments().Put(out, SymRef{Name: "a"})
	project := NewProject(ids.NextID(), source, assignments)

	_, ok := Decorrelate(IdentityLookup{}, []Variable{{Name: "a", Type: Bigint}}, MapTypeProvider{}, ids, project)
	require.False(t, ok)
}

func TestDecorrelatePassesThroughIndependentSubplan(t *testing.T) {
	ids := NewIDAllocator()
	b := Variable{Name: "b", Type: Bigint}
	source := NewSource(ids.NextID(), []Variable{b})

	result, ok := Decorrelate(IdentityLookup{}, []Variable{{Name: "a", Type: Bigint}}, MapTypeProvider{}, ids, source)

	require.True(t, ok)
	require.Same(t, source, result.DecorrelatedNode)
	require.Empty(t, result.CorrelatedPredicates)
}
