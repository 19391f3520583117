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

// StaticCardinality is the reference CardinalityUtil. A node is scalar if
// it is a global (no grouping columns) Aggregation, or a Project whose
// source is scalar — projection never changes row count.
type StaticCardinality struct{}

// IsScalar implements CardinalityUtil.
func (StaticCardinality) IsScalar(node PlanNode, lookup Lookup) bool {
	switch n := lookup.Resolve(node).(type) {
	case *Aggregation:
		return len(n.GroupingSet()) == 0
	case *Project:
		return StaticCardinality{}.IsScalar(n.Source(), lookup)
	default:
		return false
	}
}
