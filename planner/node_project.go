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

// Project evaluates Assignments over Source, producing one output column
// per assignment, in assignment order.
type Project struct {
	id          PlanNodeID
	source      PlanNode
	assignments Assignments
}

// NewProject builds a Project node.
func NewProject(id PlanNodeID, source PlanNode, assignments Assignments) *Project {
	return &Project{id: id, source: source, assignments: assignments}
}

// ID implements PlanNode.
func (p *Project) ID() PlanNodeID { return p.id }

// Outputs implements PlanNode.
func (p *Project) Outputs() []Variable { return p.assignments.Variables() }

// Sources implements PlanNode.
func (p *Project) Sources() []PlanNode { return []PlanNode{p.source} }

// Source returns the single child.
func (p *Project) Source() PlanNode { return p.source }

// Assignments returns the projection's variable bindings.
func (p *Project) Assignments() Assignments { return p.assignments }
