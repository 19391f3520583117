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

// Assignments is an ordered Variable -> Expression mapping used by
// Project. Order matters: it determines a Project's output order.
type Assignments struct {
	vars  []Variable
	exprs map[string]Expression
}

// NewAssignments returns an empty, ready-to-use Assignments.
func NewAssignments() Assignments {
	return Assignments{exprs: map[string]Expression{}}
}

// IdentityAssignments returns an Assignments binding every variable in vars
// to a SymRef of itself, preserving order.
func IdentityAssignments(vars []Variable) Assignments {
	a := NewAssignments()
	for _, v := range vars {
		a = a.Put(v, SymRef{Name: v.Name})
	}
	return a
}

// Put returns a copy of a with v bound to expr, appended if new or replaced
// in place if v was already present.
func (a Assignments) Put(v Variable, expr Expression) Assignments {
	out := Assignments{
		vars:  append([]Variable{}, a.vars...),
		exprs: make(map[string]Expression, len(a.exprs)+1),
	}
	for k, val := range a.exprs {
		out.exprs[k] = val
	}
	if _, exists := out.exprs[v.Name]; !exists {
		out.vars = append(out.vars, v)
	}
	out.exprs[v.Name] = expr
	return out
}

// PutAll returns a copy of a with every binding of other appended/merged in,
// in other's order.
func (a Assignments) PutAll(other Assignments) Assignments {
	out := a
	for _, v := range other.vars {
		out = out.Put(v, other.exprs[v.Name])
	}
	return out
}

// Get returns the expression bound to v, if any.
func (a Assignments) Get(v Variable) (Expression, bool) {
	e, ok := a.exprs[v.Name]
	return e, ok
}

// GetByName returns the expression bound to the variable named name, if any.
func (a Assignments) GetByName(name string) (Expression, bool) {
	e, ok := a.exprs[name]
	return e, ok
}

// Variables returns the bound variables, in insertion order.
func (a Assignments) Variables() []Variable {
	return append([]Variable{}, a.vars...)
}

// Expressions returns the bound expressions, aligned with Variables().
func (a Assignments) Expressions() []Expression {
	out := make([]Expression, len(a.vars))
	for i, v := range a.vars {
		out[i] = a.exprs[v.Name]
	}
	return out
}

// Len returns the number of bindings.
func (a Assignments) Len() int {
	return len(a.vars)
}
