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

// Apply evaluates Subquery once per row of Input, in terms of Correlation
// columns from Input's scope, and projects the results via
// SubqueryAssignments. A non-empty Correlation marks it as a correlated
// subquery; an empty one means the parser layer failed to simplify an
// independent subquery away and left it for this package to rewrite or
// reject.
type Apply struct {
	id                  PlanNodeID
	input               PlanNode
	subquery            PlanNode
	subqueryAssignments Assignments
	correlation         []Variable
	originSubqueryError string
}

// NewApply builds an Apply node.
func NewApply(id PlanNodeID, input, subquery PlanNode, subqueryAssignments Assignments, correlation []Variable, originSubqueryError string) *Apply {
	return &Apply{
		id:                  id,
		input:               input,
		subquery:            subquery,
		subqueryAssignments: subqueryAssignments,
		correlation:         correlation,
		originSubqueryError: originSubqueryError,
	}
}

// ID implements PlanNode.
func (a *Apply) ID() PlanNodeID { return a.id }

// Outputs implements PlanNode.
func (a *Apply) Outputs() []Variable {
	return append(append([]Variable{}, a.input.Outputs()...), a.subqueryAssignments.Variables()...)
}

// Sources implements PlanNode.
func (a *Apply) Sources() []PlanNode { return []PlanNode{a.input, a.subquery} }

// Input returns the outer (driving) side.
func (a *Apply) Input() PlanNode { return a.input }

// Subquery returns the correlated subquery plan.
func (a *Apply) Subquery() PlanNode { return a.subquery }

// SubqueryAssignments returns how the subquery's result is projected.
func (a *Apply) SubqueryAssignments() Assignments { return a.subqueryAssignments }

// Correlation returns the outer-scope variables Subquery references.
func (a *Apply) Correlation() []Variable { return a.correlation }

// IsCorrelated reports whether Correlation is non-empty.
func (a *Apply) IsCorrelated() bool { return len(a.correlation) > 0 }

// OriginSubqueryError is the format template the verifier substitutes the
// unsupported-construct message into, if this node survives to that point.
func (a *Apply) OriginSubqueryError() string { return a.originSubqueryError }
