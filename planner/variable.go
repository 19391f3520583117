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

import "fmt"

// Variable is a typed symbol and the unit of data flow between plan nodes.
// Two variables are equal iff their names are equal; Type is metadata only.
type Variable struct {
	Name string
	Type Type
}

// Equal reports whether v and other refer to the same symbol.
func (v Variable) Equal(other Variable) bool {
	return v.Name == other.Name
}

func (v Variable) String() string {
	return v.Name
}

// SymbolAllocator hands out fresh, globally-unique variables for one query's
// planning. Not safe for concurrent use; each query owns its own allocator.
type SymbolAllocator struct {
	next int64
}

// NewSymbolAllocator returns an empty allocator. Callers that rewrite an
// existing plan should not reuse variable names already present in it; this
// allocator assumes source-level names never collide with its own
// nameHint+counter naming scheme.
func NewSymbolAllocator() *SymbolAllocator {
	return &SymbolAllocator{}
}

// NewVariable returns a fresh variable named nameHint suffixed with a
// monotonically increasing counter.
func (a *SymbolAllocator) NewVariable(nameHint string, typ Type) Variable {
	a.next++
	return Variable{Name: fmt.Sprintf("%s_%d", nameHint, a.next), Type: typ}
}
