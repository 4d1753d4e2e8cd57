/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generalizers.go
Description: Post-pruning condition generalization for the Akaylee Miner.
Once later conditions have excluded the negatives that forced an early
threshold tight, that threshold can often be relaxed again. The generalizer
retries each ordered condition with the most general limiting values the table
offers, keeping the widest one the stopping condition still accepts.
*/

package pruners

import (
	"fmt"

	"github.com/kleascm/akaylee-miner/pkg/data"
	"github.com/kleascm/akaylee-miner/pkg/interfaces"
	"github.com/kleascm/akaylee-miner/pkg/rules"
)

// ThresholdGeneralizer widens at-least and at-most conditions in place
type ThresholdGeneralizer struct {
	checker interfaces.StoppingConditionChecker
}

// NewThresholdGeneralizer creates a generalizer bound to a stopping checker
func NewThresholdGeneralizer(checker interfaces.StoppingConditionChecker) (*ThresholdGeneralizer, error) {
	if checker == nil {
		return nil, fmt.Errorf("threshold generalizer requires a stopping condition checker")
	}
	return &ThresholdGeneralizer{checker: checker}, nil
}

// Generalize relaxes each condition toward the least restrictive limiting
// value that keeps the stopping condition satisfied, returning how many
// conditions were widened
func (g *ThresholdGeneralizer) Generalize(ruleConditions *rules.RuleConditions) (int, error) {
	if ruleConditions == nil {
		return 0, fmt.Errorf("threshold generalizer requires rule conditions")
	}
	table := ruleConditions.Table()
	widened := 0

	for index := 0; index < ruleConditions.Size(); index++ {
		original, err := ruleConditions.Condition(index)
		if err != nil {
			return widened, fmt.Errorf("reading condition %d: %w", index, err)
		}
		if original.Relation() == rules.RelationEqual {
			continue
		}

		values, err := table.DistinctSortedValues(original.AttributeIndex())
		if err != nil {
			return widened, fmt.Errorf("collecting values for %s: %w", original, err)
		}
		// Most general end first: lowest values for at-least conditions,
		// highest for at-most
		if original.Relation() == rules.RelationAtMost {
			reverse(values)
		}

		for _, value := range values {
			if !strictlyMoreGeneral(original.Relation(), value, original.LimitingValue()) {
				// Values from here on are at best as restrictive as the
				// current limit
				break
			}
			replacement, err := rules.NewCondition(table, original.AttributeIndex(), original.Relation(), value)
			if err != nil {
				continue
			}
			if err := ruleConditions.ReplaceCondition(index, replacement); err != nil {
				return widened, fmt.Errorf("replacing %s: %w", original, err)
			}
			satisfied, err := g.checker.IsSatisfied(ruleConditions)
			if err != nil {
				return widened, fmt.Errorf("checking %s: %w", replacement, err)
			}
			if satisfied {
				widened++
				break
			}
			if err := ruleConditions.ReplaceCondition(index, original); err != nil {
				return widened, fmt.Errorf("restoring %s: %w", original, err)
			}
		}
	}
	return widened, nil
}

// Name returns the name of this generalizer
func (g *ThresholdGeneralizer) Name() string {
	return "ThresholdGeneralizer"
}

// Description returns a description of this generalizer
func (g *ThresholdGeneralizer) Description() string {
	return "Relaxes ordered condition thresholds to the widest value the stopping condition accepts"
}

// NoOpGeneralizer keeps every threshold as grown
type NoOpGeneralizer struct{}

// NewNoOpGeneralizer creates a generalizer that never widens anything
func NewNoOpGeneralizer() *NoOpGeneralizer {
	return &NoOpGeneralizer{}
}

// Generalize leaves the conditions untouched
func (g *NoOpGeneralizer) Generalize(ruleConditions *rules.RuleConditions) (int, error) {
	if ruleConditions == nil {
		return 0, fmt.Errorf("generalizer requires rule conditions")
	}
	return 0, nil
}

// Name returns the name of this generalizer
func (g *NoOpGeneralizer) Name() string {
	return "NoOpGeneralizer"
}

// Description returns a description of this generalizer
func (g *NoOpGeneralizer) Description() string {
	return "Keeps every threshold as grown"
}

// strictlyMoreGeneral reports whether a replacement limiting value widens the
// condition compared to the current limit
func strictlyMoreGeneral(relation rules.Relation, candidate, current data.FieldValue) bool {
	comparison := candidate.CompareTo(current)
	if relation == rules.RelationAtLeast {
		return comparison == data.ComparisonLess
	}
	return comparison == data.ComparisonGreater
}

// reverse flips a value slice in place
func reverse(values []data.FieldValue) {
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
}

// GeneralizerFor returns the threshold generalizer when enabled and the no-op
// otherwise
func GeneralizerFor(enabled bool, checker interfaces.StoppingConditionChecker) (interfaces.RuleConditionsGeneralizer, error) {
	if !enabled {
		return NewNoOpGeneralizer(), nil
	}
	return NewThresholdGeneralizer(checker)
}
