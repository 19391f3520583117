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

// AggStep describes how far along a (possibly partial/final-split)
// aggregation pipeline this node sits. Only SINGLE is produced by any
// rewriter in this module; the others exist so a downstream distributed
// planner can re-split the aggregations this package builds.
type AggStep int

// Aggregation steps.
const (
	StepSingle AggStep = iota
	StepPartial
	StepIntermediate
	StepFinal
)

// Agg describes one aggregate function call within an Aggregation node.
type Agg struct {
	Handle   FunctionHandle
	Args     []Expression
	Filter   Expression // nil if unfiltered
	OrderBy  []Variable
	Distinct bool
	Mask     *Variable // nil if unmasked
}

// AggEntry binds one aggregation's output variable to its definition.
// Aggregation.Aggregations is a slice rather than a map so its iteration
// order — and hence its contribution to Outputs() — is deterministic.
type AggEntry struct {
	Output Variable
	Agg    Agg
}

// Aggregation groups Source by GroupingSet and computes Aggregations over
// each group.
type Aggregation struct {
	id            PlanNodeID
	source        PlanNode
	aggregations  []AggEntry
	groupingSet   []Variable
	step          AggStep
	hashVar       *Variable
	groupIDVar    *Variable
}

// NewAggregation builds an Aggregation node.
func NewAggregation(id PlanNodeID, source PlanNode, aggregations []AggEntry, groupingSet []Variable, step AggStep) *Aggregation {
	return &Aggregation{id: id, source: source, aggregations: aggregations, groupingSet: groupingSet, step: step}
}

// ID implements PlanNode.
func (a *Aggregation) ID() PlanNodeID { return a.id }

// Outputs implements PlanNode: the grouping set followed by the
// aggregation outputs, in declaration order.
func (a *Aggregation) Outputs() []Variable {
	out := make([]Variable, 0, len(a.groupingSet)+len(a.aggregations))
	out = append(out, a.groupingSet...)
	for _, e := range a.aggregations {
		out = append(out, e.Output)
	}
	return out
}

// Sources implements PlanNode.
func (a *Aggregation) Sources() []PlanNode { return []PlanNode{a.source} }

// Source returns the single child.
func (a *Aggregation) Source() PlanNode { return a.source }

// Aggregations returns the aggregation entries, in declaration order.
func (a *Aggregation) Aggregations() []AggEntry { return a.aggregations }

// GroupingSet returns the grouping columns.
func (a *Aggregation) GroupingSet() []Variable { return a.groupingSet }

// Step returns the aggregation's pipeline step.
func (a *Aggregation) Step() AggStep { return a.step }

// HashVar returns the optional hash-distribution variable, if any.
func (a *Aggregation) HashVar() *Variable { return a.hashVar }

// GroupIDVar returns the optional GROUPING() id variable, if any.
func (a *Aggregation) GroupIDVar() *Variable { return a.groupIDVar }

// SingleGroupingSet is a convenience constructor matching the common case
// of one grouping set built directly from a column list.
func SingleGroupingSet(cols []Variable) []Variable {
	return append([]Variable{}, cols...)
}
