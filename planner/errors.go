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

import "github.com/pingcap/errors"

// ErrCorrelatedSubqueryNotSupported carries the message that
// CheckSubqueryNodesAreRewritten substitutes into a surviving Apply's or
// LateralJoin's template. The returned error is newly formatted and does not
// wrap this value, so errors.Is does not match it.
var ErrCorrelatedSubqueryNotSupported = errors.New("Given correlated subquery is not supported")

// ErrInternalConsistency marks a broken invariant rather than an
// unsupported query: a zero-correlation Apply/LateralJoin reaching the
// verifier, or the rewrite driver failing to reach a fixed point.
var ErrInternalConsistency = errors.New("planner: internal consistency violation")

// newSubqueryError formats originSubqueryError (the node-supplied template)
// with ErrCorrelatedSubqueryNotSupported's message.
func newSubqueryError(originSubqueryError string) error {
	return errors.Errorf(originSubqueryError, ErrCorrelatedSubqueryNotSupported.Error())
}
