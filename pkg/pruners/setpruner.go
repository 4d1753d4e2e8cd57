/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: setpruner.go
Description: Whole-rule pruning for the Akaylee Miner. After a concept's
covering loop finishes, redundant members of its candidate list are dropped as
long as the survivors still jointly cover every object the concept requires.
Removal preference follows the configured evaluators, worst candidates first.
*/

package pruners

import (
	"fmt"
	"sort"

	"github.com/kleascm/akaylee-miner/pkg/interfaces"
	"github.com/kleascm/akaylee-miner/pkg/rules"
)

// EvaluationsAndOrderSetPruner removes whole entries in evaluation order
type EvaluationsAndOrderSetPruner struct {
	evaluators []interfaces.RuleConditionsEvaluator
}

// NewEvaluationsAndOrderSetPruner creates a set pruner ordering removals by
// the given evaluators
func NewEvaluationsAndOrderSetPruner(conditionsEvaluators []interfaces.RuleConditionsEvaluator) (*EvaluationsAndOrderSetPruner, error) {
	if len(conditionsEvaluators) == 0 {
		return nil, fmt.Errorf("set pruner requires at least one rule conditions evaluator")
	}
	for i, evaluator := range conditionsEvaluators {
		if evaluator == nil {
			return nil, fmt.Errorf("rule conditions evaluator %d is nil", i)
		}
	}
	return &EvaluationsAndOrderSetPruner{evaluators: conditionsEvaluators}, nil
}

// Prune drops entries whose removal keeps every object in mustStayCovered
// jointly covered, trying the worst-evaluated entries first. Surviving
// entries keep their original order.
func (p *EvaluationsAndOrderSetPruner) Prune(entries []*rules.RuleConditionsWithApproximatedSet,
	mustStayCovered []int) ([]*rules.RuleConditionsWithApproximatedSet, error) {
	for i, entry := range entries {
		if entry == nil || entry.RuleConditions == nil {
			return nil, fmt.Errorf("entry %d is nil", i)
		}
	}
	if len(entries) <= 1 {
		return entries, nil
	}

	scores := make([][]float64, len(entries))
	for i, entry := range entries {
		scores[i] = make([]float64, len(p.evaluators))
		for k, evaluator := range p.evaluators {
			value, err := evaluator.Evaluate(entry.RuleConditions)
			if err != nil {
				return nil, fmt.Errorf("evaluator %s on entry %d: %w", evaluator.Name(), i, err)
			}
			scores[i][k] = value
		}
	}

	// Worst-evaluated entries come up for removal first; full ties fall back
	// to reverse declaration order so earlier entries are preferred keepers
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		left, right := order[a], order[b]
		for k, evaluator := range p.evaluators {
			switch evaluator.Confront(scores[left][k], scores[right][k]) {
			case -1:
				return true
			case 1:
				return false
			}
		}
		return left > right
	})

	required := distinctObjects(mustStayCovered)
	coverCount := make(map[int]int, len(required))
	for _, objectIndex := range required {
		for _, entry := range entries {
			if entry.RuleConditions.Covers(objectIndex) {
				coverCount[objectIndex]++
			}
		}
	}

	removed := make([]bool, len(entries))
	for _, candidate := range order {
		droppable := true
		for _, objectIndex := range required {
			if entries[candidate].RuleConditions.Covers(objectIndex) && coverCount[objectIndex] <= 1 {
				droppable = false
				break
			}
		}
		if !droppable {
			continue
		}
		removed[candidate] = true
		for _, objectIndex := range required {
			if entries[candidate].RuleConditions.Covers(objectIndex) {
				coverCount[objectIndex]--
			}
		}
	}

	pruned := make([]*rules.RuleConditionsWithApproximatedSet, 0, len(entries))
	for i, entry := range entries {
		if !removed[i] {
			pruned = append(pruned, entry)
		}
	}
	return pruned, nil
}

// Name returns the name of this set pruner
func (p *EvaluationsAndOrderSetPruner) Name() string {
	return "EvaluationsAndOrderSetPruner"
}

// Description returns a description of this set pruner
func (p *EvaluationsAndOrderSetPruner) Description() string {
	return "Drops redundant rules worst-evaluated first while required objects stay covered"
}

// NoOpSetPruner keeps every entry
type NoOpSetPruner struct{}

// NewNoOpSetPruner creates a set pruner that never removes anything
func NewNoOpSetPruner() *NoOpSetPruner {
	return &NoOpSetPruner{}
}

// Prune returns the entries unchanged
func (p *NoOpSetPruner) Prune(entries []*rules.RuleConditionsWithApproximatedSet,
	mustStayCovered []int) ([]*rules.RuleConditionsWithApproximatedSet, error) {
	return entries, nil
}

// Name returns the name of this set pruner
func (p *NoOpSetPruner) Name() string {
	return "NoOpSetPruner"
}

// Description returns a description of this set pruner
func (p *NoOpSetPruner) Description() string {
	return "Keeps every rule"
}

// distinctObjects deduplicates an object index list preserving first-seen order
func distinctObjects(objectIndices []int) []int {
	seen := make(map[int]bool, len(objectIndices))
	distinct := make([]int, 0, len(objectIndices))
	for _, objectIndex := range objectIndices {
		if !seen[objectIndex] {
			seen[objectIndex] = true
			distinct = append(distinct, objectIndex)
		}
	}
	return distinct
}

// SetPrunerFor returns the evaluation-ordered set pruner when enabled and the
// no-op otherwise
func SetPrunerFor(enabled bool, conditionsEvaluators []interfaces.RuleConditionsEvaluator) (interfaces.RuleConditionsSetPruner, error) {
	if !enabled {
		return NewNoOpSetPruner(), nil
	}
	return NewEvaluationsAndOrderSetPruner(conditionsEvaluators)
}
