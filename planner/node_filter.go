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

// Filter keeps only the rows of Source for which Predicate is true.
type Filter struct {
	id        PlanNodeID
	source    PlanNode
	predicate Expression
}

// NewFilter builds a Filter node.
func NewFilter(id PlanNodeID, source PlanNode, predicate Expression) *Filter {
	return &Filter{id: id, source: source, predicate: predicate}
}

// ID implements PlanNode.
func (f *Filter) ID() PlanNodeID { return f.id }

// Outputs implements PlanNode.
func (f *Filter) Outputs() []Variable { return f.source.Outputs() }

// Sources implements PlanNode.
func (f *Filter) Sources() []PlanNode { return []PlanNode{f.source} }

// Source returns the single child.
func (f *Filter) Source() PlanNode { return f.source }

// Predicate returns the filter condition.
func (f *Filter) Predicate() Expression { return f.predicate }
