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

// Command planrewrite runs the plan rewriter over a small built-in demo
// plan and prints the rewritten root's type, id and outputs, for exercising
// the optimizer outside of a full SQL front end.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/pingcap-incubator/planrewrite/planner"
)

var maxPasses uint

func init() {
	flag.UintVar(&maxPasses, "max-passes", 100, "maximum rewrite passes before giving up")
}

// demoPlan builds SELECT a FROM t WHERE a IN (SELECT b FROM s WHERE s.b = t.a)
// as a plan tree, to exercise CorrelatedInPredicateToJoin end to end.
func demoPlan(ids *planner.IDAllocator) planner.PlanNode {
	a := planner.Variable{Name: "t.a", Type: planner.Bigint}
	b := planner.Variable{Name: "s.b", Type: planner.Bigint}
	outerInput := planner.NewSource(ids.NextID(), []planner.Variable{a})
	innerSource := planner.NewSource(ids.NextID(), []planner.Variable{b})
	innerFiltered := planner.NewFilter(ids.NextID(), innerSource,
		planner.Compare{Op: planner.EQ, Lhs: planner.SymRef{Name: "s.b"}, Rhs: planner.SymRef{Name: "t.a"}})

	result := planner.Variable{Name: "in_result", Type: planner.Boolean}
	assignments := planner.NewAssignments().Put(result, planner.In{
		Value:     planner.SymRef{Name: "t.a"},
		ValueList: planner.SymRef{Name: "s.b"},
	})

	return planner.NewApply(ids.NextID(), outerInput, innerFiltered, assignments, []planner.Variable{a}, "unsupported correlated subquery: %s")
}

func main() {
	flag.Parse()

	ids := planner.NewIDAllocator()
	logger := log.L()

	root := demoPlan(ids)

	rules := []planner.RuleApplier{
		planner.AsRuleApplier[*planner.Apply](planner.CorrelatedInPredicateToJoin{}),
		planner.AsRuleApplier[*planner.Intersect](planner.IntersectToUnion{}),
		planner.AsRuleApplier[*planner.Except](planner.ExceptToUnion{}),
		planner.AsRuleApplier[*planner.Aggregation](planner.SimplifyCountOverConstant{}),
		planner.AsRuleApplier[*planner.LateralJoin](planner.RemoveUnreferencedScalarLateral{}),
	}

	driver := planner.NewDriver(rules, planner.Config{
		MaxPasses: int(maxPasses),
		Logger:    logger,
	})

	ctx := planner.Context{
		Lookup:          planner.IdentityLookup{},
		IDAllocator:     ids,
		SymbolAllocator: planner.NewSymbolAllocator(),
		Types:           planner.MapTypeProvider{"t.a": planner.Bigint, "s.b": planner.Bigint},
		Functions:       planner.StandardFunctionResolution{},
		Cardinality:     planner.StaticCardinality{},
	}

	rewritten, err := driver.Optimize(context.Background(), root, ctx)
	if err != nil {
		log.Fatal("rewrite failed", zap.Error(err))
	}

	if err := planner.CheckSubqueryNodesAreRewritten(ctx.Lookup, rewritten); err != nil {
		log.Fatal("plan still contains an unrewritten subquery", zap.Error(err))
	}

	fmt.Printf("rewritten plan root: %T (id=%d), outputs=%v\n", rewritten, rewritten.ID(), rewritten.Outputs())
}
