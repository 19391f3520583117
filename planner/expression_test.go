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

func TestAndOfOrOf(t *testing.T) {
	require.Equal(t, BoolLit{Value: true}, AndOf())
	require.Equal(t, BoolLit{Value: false}, OrOf())

	single := SymRef{Name: "a"}
	require.Equal(t, single, AndOf(single))
	require.Equal(t, single, OrOf(single))

	both := AndOf(SymRef{Name: "a"}, SymRef{Name: "b"})
	require.Equal(t, And{Args: []Expression{SymRef{Name: "a"}, SymRef{Name: "b"}}}, both)

	require.Equal(t, AndOf(SymRef{Name: "a"}, SymRef{Name: "b"}), AndOf(nil, SymRef{Name: "a"}, SymRef{Name: "b"}))
}

func TestExtractSymbolsShallow(t *testing.T) {
	e := Compare{Op: EQ, Lhs: SymRef{Name: "x"}, Rhs: FunctionCall{
		Handle: FunctionHandle{Name: "f"},
		Args:   []Expression{SymRef{Name: "y"}, LongLit{Value: 1}},
	}}
	got := ExtractSymbolsShallow(e)
	require.Equal(t, []string{"x", "y"}, SortedNames(got))
}

func TestIsLiteral(t *testing.T) {
	require.True(t, IsLiteral(BoolLit{Value: true}))
	require.True(t, IsLiteral(NullLit{}))
	require.True(t, IsNullLiteral(NullLit{}))
	require.False(t, IsNullLiteral(BoolLit{Value: false}))
	require.False(t, IsLiteral(SymRef{Name: "x"}))
}

func TestSortedNamesDeterministic(t *testing.T) {
	names := map[string]struct{}{"c": {}, "a": {}, "b": {}}
	require.Equal(t, []string{"a", "b", "c"}, SortedNames(names))
}
