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

// JoinKind is the join semantics.
type JoinKind int

// Join kinds.
const (
	InnerJoin JoinKind = iota
	LeftJoin
	RightJoin
	FullJoin
)

// JoinCriterion is one equi-join condition, Left = Right.
type JoinCriterion struct {
	Left, Right Variable
}

// Join combines Left and Right rows satisfying Criteria and Filter.
type Join struct {
	id       PlanNodeID
	kind     JoinKind
	left     PlanNode
	right    PlanNode
	criteria []JoinCriterion
	outputs  []Variable
	filter   Expression // nil if there is no residual filter
}

// NewJoin builds a Join node.
func NewJoin(id PlanNodeID, kind JoinKind, left, right PlanNode, criteria []JoinCriterion, outputs []Variable, filter Expression) *Join {
	return &Join{id: id, kind: kind, left: left, right: right, criteria: criteria, outputs: outputs, filter: filter}
}

// ID implements PlanNode.
func (j *Join) ID() PlanNodeID { return j.id }

// Outputs implements PlanNode.
func (j *Join) Outputs() []Variable { return j.outputs }

// Sources implements PlanNode.
func (j *Join) Sources() []PlanNode { return []PlanNode{j.left, j.right} }

// Kind returns the join semantics.
func (j *Join) Kind() JoinKind { return j.kind }

// Left returns the left child.
func (j *Join) Left() PlanNode { return j.left }

// Right returns the right child.
func (j *Join) Right() PlanNode { return j.right }

// Criteria returns the equi-join conditions.
func (j *Join) Criteria() []JoinCriterion { return j.criteria }

// Filter returns the residual join filter, or nil.
func (j *Join) Filter() Expression { return j.filter }
