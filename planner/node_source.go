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

// Source is a leaf plan node with a fixed, caller-supplied schema. It
// stands in for whatever the analyzer layer produced (a table scan, a
// values list) — out of scope for this module, which only rewrites the
// operators above the leaves.
type Source struct {
	id      PlanNodeID
	outputs []Variable
}

// NewSource builds a Source with the given id and output schema.
func NewSource(id PlanNodeID, outputs []Variable) *Source {
	return &Source{id: id, outputs: outputs}
}

// ID implements PlanNode.
func (s *Source) ID() PlanNodeID { return s.id }

// Outputs implements PlanNode.
func (s *Source) Outputs() []Variable { return s.outputs }

// Sources implements PlanNode.
func (s *Source) Sources() []PlanNode { return nil }
