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

// LateralJoin evaluates Subquery once per row of Input, carrying over
// Subquery's full row set (unlike Apply, which projects the subquery
// result down to SubqueryAssignments).
type LateralJoin struct {
	id                  PlanNodeID
	input               PlanNode
	subquery            PlanNode
	correlation         []Variable
	originSubqueryError string
}

// NewLateralJoin builds a LateralJoin node.
func NewLateralJoin(id PlanNodeID, input, subquery PlanNode, correlation []Variable, originSubqueryError string) *LateralJoin {
	return &LateralJoin{id: id, input: input, subquery: subquery, correlation: correlation, originSubqueryError: originSubqueryError}
}

// ID implements PlanNode.
func (l *LateralJoin) ID() PlanNodeID { return l.id }

// Outputs implements PlanNode.
func (l *LateralJoin) Outputs() []Variable {
	return append(append([]Variable{}, l.input.Outputs()...), l.subquery.Outputs()...)
}

// Sources implements PlanNode.
func (l *LateralJoin) Sources() []PlanNode { return []PlanNode{l.input, l.subquery} }

// Input returns the outer (driving) side.
func (l *LateralJoin) Input() PlanNode { return l.input }

// Subquery returns the lateral subquery plan.
func (l *LateralJoin) Subquery() PlanNode { return l.subquery }

// Correlation returns the outer-scope variables Subquery references.
func (l *LateralJoin) Correlation() []Variable { return l.correlation }

// OriginSubqueryError is the format template the verifier substitutes the
// unsupported-construct message into, if this node survives to that point.
func (l *LateralJoin) OriginSubqueryError() string { return l.originSubqueryError }
