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

// Package planner implements the plan-tree data model and the rewriters
// that lower correlated subqueries, set operations, redundant scalar
// lateral joins, and trivial count aggregations into join/union/aggregation
// shapes an executor can run directly.
package planner

var (
	_ PlanNode = (*Source)(nil)
	_ PlanNode = (*Project)(nil)
	_ PlanNode = (*Filter)(nil)
	_ PlanNode = (*Aggregation)(nil)
	_ PlanNode = (*Union)(nil)
	_ PlanNode = (*Intersect)(nil)
	_ PlanNode = (*Except)(nil)
	_ PlanNode = (*Join)(nil)
	_ PlanNode = (*AssignUniqueID)(nil)
	_ PlanNode = (*Apply)(nil)
	_ PlanNode = (*LateralJoin)(nil)
)

// PlanNode is one immutable operator in a rooted plan DAG. Rewrites never
// mutate a node; they build a new one sharing whatever children didn't
// change.
type PlanNode interface {
	// ID returns the node's stable identity.
	ID() PlanNodeID
	// Outputs returns the node's output variables, in order.
	Outputs() []Variable
	// Sources returns the node's children, in order. A leaf returns nil.
	Sources() []PlanNode
}

// Lookup is an indirection layer so rewriters can traverse a plan whose
// children may be opaque handles into a memo. In implementations without a
// memo, Resolve is the identity, which is what IdentityLookup provides.
type Lookup interface {
	Resolve(node PlanNode) PlanNode
}

// IdentityLookup resolves every node to itself.
type IdentityLookup struct{}

// Resolve implements Lookup.
func (IdentityLookup) Resolve(node PlanNode) PlanNode { return node }
