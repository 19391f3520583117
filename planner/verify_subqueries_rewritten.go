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

// CheckSubqueryNodesAreRewritten walks root looking for any Apply or
// LateralJoin the rewrite rules failed to eliminate. Finding one with a
// non-empty correlation set means the query used a correlated subquery
// shape this package cannot decorrelate; finding one with an empty
// correlation set means a rule that should have eliminated it (every
// uncorrelated Apply/LateralJoin ought to simplify trivially) never ran,
// which is this package's own bug rather than the query's.
func CheckSubqueryNodesAreRewritten(lookup Lookup, root PlanNode) error {
	return checkNoSubqueryNodes(lookup, root)
}

func checkNoSubqueryNodes(lookup Lookup, reference PlanNode) error {
	node := lookup.Resolve(reference)

	switch n := node.(type) {
	case *Apply:
		if len(n.Correlation()) == 0 {
			return ErrInternalConsistency
		}
		return newSubqueryError(n.OriginSubqueryError())
	case *LateralJoin:
		if len(n.Correlation()) == 0 {
			return ErrInternalConsistency
		}
		return newSubqueryError(n.OriginSubqueryError())
	}

	for _, child := range node.Sources() {
		if err := checkNoSubqueryNodes(lookup, child); err != nil {
			return err
		}
	}
	return nil
}
