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

func TestAssignmentsPreservesOrder(t *testing.T) {
	a := NewAssignments()
	x := Variable{Name: "x", Type: Bigint}
	y := Variable{Name: "y", Type: Boolean}

	a = a.Put(x, LongLit{Value: 1})
	a = a.Put(y, BoolLit{Value: true})

	require.Equal(t, []Variable{x, y}, a.Variables())
	require.Equal(t, []Expression{LongLit{Value: 1}, BoolLit{Value: true}}, a.Expressions())
}

func TestAssignmentsPutReplacesInPlace(t *testing.T) {
	a := NewAssignments()
	x := Variable{Name: "x", Type: Bigint}
	y := Variable{Name: "y", Type: Bigint}

	a = a.Put(x, LongLit{Value: 1})
	a = a.Put(y, LongLit{Value: 2})
	a = a.Put(x, LongLit{Value: 99})

	require.Equal(t, []Variable{x, y}, a.Variables())
	got, ok := a.GetByName("x")
	require.True(t, ok)
	require.Equal(t, LongLit{Value: 99}, got)
}

func TestIdentityAssignments(t *testing.T) {
	vars := []Variable{{Name: "a"}, {Name: "b"}}
	a := IdentityAssignments(vars)
	require.Equal(t, vars, a.Variables())
	for _, v := range vars {
		expr, ok := a.Get(v)
		require.True(t, ok)
		require.Equal(t, SymRef{Name: v.Name}, expr)
	}
}

func TestAssignmentsCopyOnWrite(t *testing.T) {
	base := NewAssignments().Put(Variable{Name: "x"}, LongLit{Value: 1})
	derived := base.Put(Variable{Name: "y"}, LongLit{Value: 2})

	require.Equal(t, 1, base.Len())
	require.Equal(t, 2, derived.Len())
}
