/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: evaluators.go
Description: Concrete rule evaluation measures for the Akaylee Miner. Each
measure implements condition addition, condition removal, and rule conditions
evaluation so one instance can serve generation, pruning, and stopping. All
comparisons run through the declared measure type.
*/

package evaluators

import (
	"fmt"

	"github.com/kleascm/akaylee-miner/pkg/interfaces"
	"github.com/kleascm/akaylee-miner/pkg/rules"
)

// measureBase carries the identity and measure type shared by all evaluators
type measureBase struct {
	name    string
	measure interfaces.MeasureType
}

// Name returns the name of this evaluator
func (b measureBase) Name() string {
	return b.name
}

// MeasureType returns the gain or cost typing of this evaluator
func (b measureBase) MeasureType() interfaces.MeasureType {
	return b.measure
}

// Confront compares two evaluations under this evaluator's measure type
func (b measureBase) Confront(x, y float64) int {
	return b.measure.Confront(x, y)
}

// EvaluationSatisfiesThreshold tests an evaluation against a threshold
func (b measureBase) EvaluationSatisfiesThreshold(value, threshold float64) bool {
	return b.measure.SatisfiesThreshold(value, threshold)
}

// countCovered splits a covered set into positive, negative, and neutral
// counts for one rule conditions context
func countCovered(ruleConditions *rules.RuleConditions, covered []int) (positives, negatives, neutrals int) {
	for _, objectIndex := range covered {
		switch {
		case ruleConditions.IsPositive(objectIndex):
			positives++
		case ruleConditions.IsNeutral(objectIndex):
			neutrals++
		default:
			negatives++
		}
	}
	return positives, negatives, neutrals
}

// EpsilonConsistencyEvaluator measures the share of the concept's negative
// objects that the conditions cover. Cost type: lower is better. Deteriorates
// as coverage grows.
type EpsilonConsistencyEvaluator struct {
	measureBase
}

// NewEpsilonConsistencyEvaluator creates a new epsilon consistency evaluator
func NewEpsilonConsistencyEvaluator() *EpsilonConsistencyEvaluator {
	return &EpsilonConsistencyEvaluator{
		measureBase: measureBase{name: "epsilon-consistency", measure: interfaces.Cost},
	}
}

// Monotonicity declares that the measure worsens as coverage grows
func (e *EpsilonConsistencyEvaluator) Monotonicity() interfaces.MonotonicityType {
	return interfaces.DeterioratesWithCoverage
}

func (e *EpsilonConsistencyEvaluator) measureOf(ruleConditions *rules.RuleConditions, covered []int) float64 {
	allNegatives := ruleConditions.NegativeCount()
	if allNegatives == 0 {
		return 0
	}
	_, coveredNegatives, _ := countCovered(ruleConditions, covered)
	return float64(coveredNegatives) / float64(allNegatives)
}

// Evaluate scores the conditions as they stand
func (e *EpsilonConsistencyEvaluator) Evaluate(ruleConditions *rules.RuleConditions) (float64, error) {
	if ruleConditions == nil {
		return 0, fmt.Errorf("%s: nil rule conditions", e.name)
	}
	return e.measureOf(ruleConditions, ruleConditions.CoveredObjects()), nil
}

// EvaluateWithCondition scores the hypothetical append of a condition
func (e *EpsilonConsistencyEvaluator) EvaluateWithCondition(ruleConditions *rules.RuleConditions, condition rules.Condition) (float64, error) {
	if ruleConditions == nil {
		return 0, fmt.Errorf("%s: nil rule conditions", e.name)
	}
	covered, err := ruleConditions.CoveredIfAdded(condition)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", e.name, err)
	}
	return e.measureOf(ruleConditions, covered), nil
}

// EvaluateWithoutCondition scores the hypothetical removal of a condition
func (e *EpsilonConsistencyEvaluator) EvaluateWithoutCondition(ruleConditions *rules.RuleConditions, conditionIndex int) (float64, error) {
	if ruleConditions == nil {
		return 0, fmt.Errorf("%s: nil rule conditions", e.name)
	}
	covered, err := ruleConditions.CoveredIfRemoved(conditionIndex)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", e.name, err)
	}
	return e.measureOf(ruleConditions, covered), nil
}

// RoughMembershipEvaluator measures the share of positives among the covered
// non-neutral objects. Gain type: higher is better.
type RoughMembershipEvaluator struct {
	measureBase
}

// NewRoughMembershipEvaluator creates a new rough membership evaluator
func NewRoughMembershipEvaluator() *RoughMembershipEvaluator {
	return &RoughMembershipEvaluator{
		measureBase: measureBase{name: "rough-membership", measure: interfaces.Gain},
	}
}

// Monotonicity declares that generalizing coverage dilutes the measure
func (e *RoughMembershipEvaluator) Monotonicity() interfaces.MonotonicityType {
	return interfaces.DeterioratesWithCoverage
}

func (e *RoughMembershipEvaluator) measureOf(ruleConditions *rules.RuleConditions, covered []int) float64 {
	positives, negatives, _ := countCovered(ruleConditions, covered)
	counted := positives + negatives
	if counted == 0 {
		return 0
	}
	return float64(positives) / float64(counted)
}

// Evaluate scores the conditions as they stand
func (e *RoughMembershipEvaluator) Evaluate(ruleConditions *rules.RuleConditions) (float64, error) {
	if ruleConditions == nil {
		return 0, fmt.Errorf("%s: nil rule conditions", e.name)
	}
	return e.measureOf(ruleConditions, ruleConditions.CoveredObjects()), nil
}

// EvaluateWithCondition scores the hypothetical append of a condition
func (e *RoughMembershipEvaluator) EvaluateWithCondition(ruleConditions *rules.RuleConditions, condition rules.Condition) (float64, error) {
	if ruleConditions == nil {
		return 0, fmt.Errorf("%s: nil rule conditions", e.name)
	}
	covered, err := ruleConditions.CoveredIfAdded(condition)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", e.name, err)
	}
	return e.measureOf(ruleConditions, covered), nil
}

// EvaluateWithoutCondition scores the hypothetical removal of a condition
func (e *RoughMembershipEvaluator) EvaluateWithoutCondition(ruleConditions *rules.RuleConditions, conditionIndex int) (float64, error) {
	if ruleConditions == nil {
		return 0, fmt.Errorf("%s: nil rule conditions", e.name)
	}
	covered, err := ruleConditions.CoveredIfRemoved(conditionIndex)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", e.name, err)
	}
	return e.measureOf(ruleConditions, covered), nil
}

// PositiveCoverageEvaluator counts the covered positive objects. Gain type,
// improves with coverage. Used as a tie-breaker after consistency measures.
type PositiveCoverageEvaluator struct {
	measureBase
}

// NewPositiveCoverageEvaluator creates a new positive coverage evaluator
func NewPositiveCoverageEvaluator() *PositiveCoverageEvaluator {
	return &PositiveCoverageEvaluator{
		measureBase: measureBase{name: "positive-coverage", measure: interfaces.Gain},
	}
}

// Monotonicity declares that the measure improves as coverage grows
func (e *PositiveCoverageEvaluator) Monotonicity() interfaces.MonotonicityType {
	return interfaces.ImprovesWithCoverage
}

func (e *PositiveCoverageEvaluator) measureOf(ruleConditions *rules.RuleConditions, covered []int) float64 {
	positives, _, _ := countCovered(ruleConditions, covered)
	return float64(positives)
}

// Evaluate scores the conditions as they stand
func (e *PositiveCoverageEvaluator) Evaluate(ruleConditions *rules.RuleConditions) (float64, error) {
	if ruleConditions == nil {
		return 0, fmt.Errorf("%s: nil rule conditions", e.name)
	}
	return e.measureOf(ruleConditions, ruleConditions.CoveredObjects()), nil
}

// EvaluateWithCondition scores the hypothetical append of a condition
func (e *PositiveCoverageEvaluator) EvaluateWithCondition(ruleConditions *rules.RuleConditions, condition rules.Condition) (float64, error) {
	if ruleConditions == nil {
		return 0, fmt.Errorf("%s: nil rule conditions", e.name)
	}
	covered, err := ruleConditions.CoveredIfAdded(condition)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", e.name, err)
	}
	return e.measureOf(ruleConditions, covered), nil
}

// EvaluateWithoutCondition scores the hypothetical removal of a condition
func (e *PositiveCoverageEvaluator) EvaluateWithoutCondition(ruleConditions *rules.RuleConditions, conditionIndex int) (float64, error) {
	if ruleConditions == nil {
		return 0, fmt.Errorf("%s: nil rule conditions", e.name)
	}
	covered, err := ruleConditions.CoveredIfRemoved(conditionIndex)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", e.name, err)
	}
	return e.measureOf(ruleConditions, covered), nil
}

// NegativeCoverageEvaluator counts the covered negative objects. Cost type,
// deteriorates with coverage.
type NegativeCoverageEvaluator struct {
	measureBase
}

// NewNegativeCoverageEvaluator creates a new negative coverage evaluator
func NewNegativeCoverageEvaluator() *NegativeCoverageEvaluator {
	return &NegativeCoverageEvaluator{
		measureBase: measureBase{name: "negative-coverage", measure: interfaces.Cost},
	}
}

// Monotonicity declares that the measure worsens as coverage grows
func (e *NegativeCoverageEvaluator) Monotonicity() interfaces.MonotonicityType {
	return interfaces.DeterioratesWithCoverage
}

func (e *NegativeCoverageEvaluator) measureOf(ruleConditions *rules.RuleConditions, covered []int) float64 {
	_, negatives, _ := countCovered(ruleConditions, covered)
	return float64(negatives)
}

// Evaluate scores the conditions as they stand
func (e *NegativeCoverageEvaluator) Evaluate(ruleConditions *rules.RuleConditions) (float64, error) {
	if ruleConditions == nil {
		return 0, fmt.Errorf("%s: nil rule conditions", e.name)
	}
	return e.measureOf(ruleConditions, ruleConditions.CoveredObjects()), nil
}

// EvaluateWithCondition scores the hypothetical append of a condition
func (e *NegativeCoverageEvaluator) EvaluateWithCondition(ruleConditions *rules.RuleConditions, condition rules.Condition) (float64, error) {
	if ruleConditions == nil {
		return 0, fmt.Errorf("%s: nil rule conditions", e.name)
	}
	covered, err := ruleConditions.CoveredIfAdded(condition)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", e.name, err)
	}
	return e.measureOf(ruleConditions, covered), nil
}

// EvaluateWithoutCondition scores the hypothetical removal of a condition
func (e *NegativeCoverageEvaluator) EvaluateWithoutCondition(ruleConditions *rules.RuleConditions, conditionIndex int) (float64, error) {
	if ruleConditions == nil {
		return 0, fmt.Errorf("%s: nil rule conditions", e.name)
	}
	covered, err := ruleConditions.CoveredIfRemoved(conditionIndex)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", e.name, err)
	}
	return e.measureOf(ruleConditions, covered), nil
}

// Evaluator is the full capability set every concrete measure implements:
// condition addition with declared monotonicity, condition removal, and rule
// conditions evaluation
type Evaluator interface {
	interfaces.MonotonicConditionAdditionEvaluator
	interfaces.ConditionRemovalEvaluator
	interfaces.RuleConditionsEvaluator
}

// ByName constructs the evaluator registered under a configuration name
func ByName(name string) (Evaluator, error) {
	switch name {
	case interfaces.EvaluatorEpsilon:
		return NewEpsilonConsistencyEvaluator(), nil
	case interfaces.EvaluatorRoughMembership:
		return NewRoughMembershipEvaluator(), nil
	case interfaces.EvaluatorPositiveCoverage:
		return NewPositiveCoverageEvaluator(), nil
	case interfaces.EvaluatorNegativeCoverage:
		return NewNegativeCoverageEvaluator(), nil
	default:
		return nil, fmt.Errorf("unknown evaluator %q", name)
	}
}
