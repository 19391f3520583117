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

import "github.com/google/uuid"

// PlanNodeID is a plan node's stable identity within one plan tree.
type PlanNodeID int64

// IDAllocator hands out fresh plan node ids for one query's planning. Not
// safe for concurrent use.
type IDAllocator struct {
	run  string
	next int64
}

// NewIDAllocator returns an allocator whose counter starts at zero. Run is
// stamped onto logging (see driver.go) so ids from concurrently-planned
// queries are distinguishable in a shared log stream even though the
// counters themselves all start at zero.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{run: uuid.NewString()}
}

// NextID returns a fresh, never-before-returned plan node id.
func (a *IDAllocator) NextID() PlanNodeID {
	a.next++
	return PlanNodeID(a.next)
}

// Run identifies this allocator's query among others sharing a log sink.
func (a *IDAllocator) Run() string {
	return a.run
}
