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

// SetOperationColumn binds one set-operation output variable to the input
// variable each source contributes to it, aligned with the set operation's
// Sources order.
type SetOperationColumn struct {
	Output Variable
	Inputs []Variable // len(Inputs) == number of sources
}

// setOperationCore is the shared shape of Union, Intersect, and Except:
// N sources of identical arity, unioned column-by-column via Columns.
type setOperationCore struct {
	id      PlanNodeID
	sources []PlanNode
	columns []SetOperationColumn
}

func (s *setOperationCore) outputs() []Variable {
	out := make([]Variable, len(s.columns))
	for i, c := range s.columns {
		out[i] = c.Output
	}
	return out
}

// SourceVariable returns the input variable that source sourceIdx
// contributes to output column colIdx.
func (s *setOperationCore) SourceVariable(sourceIdx, colIdx int) Variable {
	return s.columns[colIdx].Inputs[sourceIdx]
}

// Union produces the bag union of its sources' rows, column-aligned by
// Columns rather than by position in each source's own schema.
type Union struct{ setOperationCore }

// NewUnion builds a Union node.
func NewUnion(id PlanNodeID, sources []PlanNode, columns []SetOperationColumn) *Union {
	return &Union{setOperationCore{id: id, sources: sources, columns: columns}}
}

// ID implements PlanNode.
func (u *Union) ID() PlanNodeID { return u.id }

// Outputs implements PlanNode.
func (u *Union) Outputs() []Variable { return u.outputs() }

// Sources implements PlanNode.
func (u *Union) Sources() []PlanNode { return u.sources }

// Columns returns the output-to-input column mapping.
func (u *Union) Columns() []SetOperationColumn { return u.columns }

// Intersect produces rows present in every source.
type Intersect struct{ setOperationCore }

// NewIntersect builds an Intersect node.
func NewIntersect(id PlanNodeID, sources []PlanNode, columns []SetOperationColumn) *Intersect {
	return &Intersect{setOperationCore{id: id, sources: sources, columns: columns}}
}

// ID implements PlanNode.
func (n *Intersect) ID() PlanNodeID { return n.id }

// Outputs implements PlanNode.
func (n *Intersect) Outputs() []Variable { return n.outputs() }

// Sources implements PlanNode.
func (n *Intersect) Sources() []PlanNode { return n.sources }

// Columns returns the output-to-input column mapping.
func (n *Intersect) Columns() []SetOperationColumn { return n.columns }

// Except produces rows present in the first source but none of the rest.
type Except struct{ setOperationCore }

// NewExcept builds an Except node.
func NewExcept(id PlanNodeID, sources []PlanNode, columns []SetOperationColumn) *Except {
	return &Except{setOperationCore{id: id, sources: sources, columns: columns}}
}

// ID implements PlanNode.
func (n *Except) ID() PlanNodeID { return n.id }

// Outputs implements PlanNode.
func (n *Except) Outputs() []Variable { return n.outputs() }

// Sources implements PlanNode.
func (n *Except) Sources() []PlanNode { return n.sources }

// Columns returns the output-to-input column mapping.
func (n *Except) Columns() []SetOperationColumn { return n.columns }
