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

// AssignUniqueID appends a fresh, row-unique BIGINT column to Source. Used
// by CorrelatedInPredicateToJoin to give the probe side an
// identity to group the join result back down by.
type AssignUniqueID struct {
	id     PlanNodeID
	source PlanNode
	idVar  Variable
}

// NewAssignUniqueID builds an AssignUniqueID node. idVar must have type
// Bigint.
func NewAssignUniqueID(id PlanNodeID, source PlanNode, idVar Variable) *AssignUniqueID {
	return &AssignUniqueID{id: id, source: source, idVar: idVar}
}

// ID implements PlanNode.
func (a *AssignUniqueID) ID() PlanNodeID { return a.id }

// Outputs implements PlanNode.
func (a *AssignUniqueID) Outputs() []Variable {
	return append(append([]Variable{}, a.source.Outputs()...), a.idVar)
}

// Sources implements PlanNode.
func (a *AssignUniqueID) Sources() []PlanNode { return []PlanNode{a.source} }

// Source returns the single child.
func (a *AssignUniqueID) Source() PlanNode { return a.source }

// IDVar returns the freshly assigned unique-row-id column.
func (a *AssignUniqueID) IDVar() Variable { return a.idVar }
