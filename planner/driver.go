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

import (
	"context"
	"fmt"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// defaultMaxPasses bounds the fixed-point loop so a buggy rule pair that
// keeps flipping a subtree back and forth fails fast instead of hanging.
const defaultMaxPasses = 100

// Config tunes the Driver. The zero value is valid: MaxPasses defaults to
// defaultMaxPasses and Logger to a no-op logger.
type Config struct {
	MaxPasses int
	Logger    *zap.Logger
}

func (c Config) withDefaults() Config {
	if c.MaxPasses <= 0 {
		c.MaxPasses = defaultMaxPasses
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// Driver applies a fixed, ordered list of Rules to a plan until a full pass
// makes no further changes. Rule order is part of the contract: at a given
// position, the first matching rule wins.
type Driver struct {
	rules  []RuleApplier
	config Config
}

// NewDriver builds a Driver over rules, applied in the given order.
func NewDriver(rules []RuleApplier, config Config) *Driver {
	return &Driver{rules: rules, config: config.withDefaults()}
}

// Optimize rewrites root to a fixed point, or returns an error if
// cancellation fires or MaxPasses is exceeded without converging.
func (d *Driver) Optimize(ctx context.Context, root PlanNode, rctx Context) (PlanNode, error) {
	current := root
	for pass := 0; pass < d.config.MaxPasses; pass++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Trace(err)
		}
		next, changed, err := d.rewriteNode(current, rctx)
		if err != nil {
			return nil, err
		}
		d.config.Logger.Debug("rewrite pass complete",
			zap.Int("pass", pass),
			zap.Bool("changed", changed))
		current = next
		if !changed {
			return current, nil
		}
	}
	return nil, errors.Trace(fmt.Errorf("%w: no fixed point after %d passes", ErrInternalConsistency, d.config.MaxPasses))
}

// rewriteNode rewrites node's children bottom-up, then applies rules to
// node itself to a local fixed point, re-descending into whatever each
// successful rewrite produces before trying again.
func (d *Driver) rewriteNode(node PlanNode, rctx Context) (PlanNode, bool, error) {
	current, changed, err := d.rewriteChildren(node, rctx)
	if err != nil {
		return nil, false, err
	}

	for {
		applied := false
		for _, r := range d.rules {
			result, matched := r.TryApply(current, rctx)
			if !matched || !result.Changed() {
				continue
			}
			d.config.Logger.Debug("rule applied",
				zap.String("rule", r.Name()),
				zap.String("run", rctx.IDAllocator.Run()),
				zap.Int64("node_id", int64(current.ID())))
			current = result.PlanNode()
			changed = true
			applied = true
			break
		}
		if !applied {
			return current, changed, nil
		}
		rewrittenChildren, childChanged, err := d.rewriteChildren(current, rctx)
		if err != nil {
			return nil, false, err
		}
		current = rewrittenChildren
		changed = changed || childChanged
	}
}

func (d *Driver) rewriteChildren(node PlanNode, rctx Context) (PlanNode, bool, error) {
	resolved := rctx.Lookup.Resolve(node)
	children := resolved.Sources()
	if len(children) == 0 {
		return resolved, false, nil
	}
	newChildren := make([]PlanNode, len(children))
	anyChanged := false
	for i, child := range children {
		rewritten, changed, err := d.rewriteNode(child, rctx)
		if err != nil {
			return nil, false, err
		}
		newChildren[i] = rewritten
		anyChanged = anyChanged || changed
	}
	if !anyChanged {
		return resolved, false, nil
	}
	return replaceSources(resolved, newChildren), true, nil
}

// replaceSources rebuilds node with newSources as its children, preserving
// node's id and every other field. It is the one place that needs to know
// about every plan node variant; every rewrite rule instead builds
// brand-new nodes directly.
func replaceSources(node PlanNode, newSources []PlanNode) PlanNode {
	switch n := node.(type) {
	case *Source:
		return n
	case *Project:
		return NewProject(n.id, newSources[0], n.assignments)
	case *Filter:
		return NewFilter(n.id, newSources[0], n.predicate)
	case *Aggregation:
		return NewAggregation(n.id, newSources[0], n.aggregations, n.groupingSet, n.step)
	case *Union:
		return NewUnion(n.id, newSources, n.columns)
	case *Intersect:
		return NewIntersect(n.id, newSources, n.columns)
	case *Except:
		return NewExcept(n.id, newSources, n.columns)
	case *Join:
		return NewJoin(n.id, n.kind, newSources[0], newSources[1], n.criteria, n.outputs, n.filter)
	case *AssignUniqueID:
		return NewAssignUniqueID(n.id, newSources[0], n.idVar)
	case *Apply:
		return NewApply(n.id, newSources[0], newSources[1], n.subqueryAssignments, n.correlation, n.originSubqueryError)
	case *LateralJoin:
		return NewLateralJoin(n.id, newSources[0], newSources[1], n.correlation, n.originSubqueryError)
	default:
		panic(fmt.Sprintf("planner: replaceSources: unknown plan node type %T", node))
	}
}

var _ = log.L // keep github.com/pingcap/log linked for callers that configure the global logger before constructing a Driver
