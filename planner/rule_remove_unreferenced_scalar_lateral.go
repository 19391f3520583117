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

// RemoveUnreferencedScalarLateral drops a LateralJoin side whose columns
// are never consulted (an empty output list) and which is provably scalar,
// since a scalar, unreferenced side can only change the row count (it
// never does, being scalar) and never contributes columns.
type RemoveUnreferencedScalarLateral struct{}

var _ Rule[*LateralJoin] = RemoveUnreferencedScalarLateral{}

// Name implements Rule.
func (RemoveUnreferencedScalarLateral) Name() string { return "RemoveUnreferencedScalarLateral" }

// Pattern implements Rule.
func (RemoveUnreferencedScalarLateral) Pattern() *Pattern[*LateralJoin] {
	return NewPattern[*LateralJoin]()
}

// Apply implements Rule.
func (RemoveUnreferencedScalarLateral) Apply(node *LateralJoin, _ Captures, ctx Context) Result {
	input := ctx.Lookup.Resolve(node.Input())
	subquery := ctx.Lookup.Resolve(node.Subquery())

	if len(input.Outputs()) == 0 && ctx.Cardinality.IsScalar(input, ctx.Lookup) {
		return ResultOfPlanNode(subquery)
	}
	if len(subquery.Outputs()) == 0 && ctx.Cardinality.IsScalar(subquery, ctx.Lookup) {
		return ResultOfPlanNode(input)
	}
	return ResultEmpty()
}
