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

// FunctionHandle names a resolved standard function. The rewriters only
// ever need to recognize and construct "count", so this is deliberately
// thin rather than a full function-registry lookup key.
type FunctionHandle struct {
	Name string
}

// FunctionResolution resolves the handful of standard functions the
// rewriters construct or recognize. A real planner backs this with its
// function catalog; tests back it with StandardFunctionResolution.
type FunctionResolution interface {
	// CountStar returns the handle for zero-argument count(*).
	CountStar() FunctionHandle
	// CountArg returns the handle for single-argument count(x) over argType.
	CountArg(argType Type) FunctionHandle
	// IsCount reports whether handle names any arity of count.
	IsCount(handle FunctionHandle) bool
}

// StandardFunctionResolution is the reference FunctionResolution: "count"
// is a single overloaded name regardless of arity or argument type, which
// is all CountOverConstant, CorrelatedInPredicate and the set-op rewrite
// need to know about.
type StandardFunctionResolution struct{}

// CountStar implements FunctionResolution.
func (StandardFunctionResolution) CountStar() FunctionHandle {
	return FunctionHandle{Name: "count"}
}

// CountArg implements FunctionResolution.
func (StandardFunctionResolution) CountArg(Type) FunctionHandle {
	return FunctionHandle{Name: "count"}
}

// IsCount implements FunctionResolution.
func (StandardFunctionResolution) IsCount(handle FunctionHandle) bool {
	return handle.Name == "count"
}
