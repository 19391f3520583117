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

// Type is the closed set of value types the rewriters reason about. Any type
// not needed by the rewrite rules themselves is carried as Other without
// being inspected.
type Type int

const (
	// Other is an opaque type carried through the plan but never inspected
	// by a rewriter.
	Other Type = iota
	// Bigint is a 64-bit signed integer, used for counts and unique ids.
	Bigint
	// Boolean is a three-valued (true/false/null) boolean.
	Boolean
)

// String implements fmt.Stringer for diagnostic output.
func (t Type) String() string {
	switch t {
	case Bigint:
		return "BIGINT"
	case Boolean:
		return "BOOLEAN"
	default:
		return "OTHER"
	}
}
