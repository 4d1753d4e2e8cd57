/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: checker.go
Description: Stopping condition checking for the Akaylee Miner. Combines a
rule conditions evaluation against a numeric threshold with the coverage
constraint that every covered object must be tolerable under the configured
allowed-negative-objects policy. Both clauses must hold.
*/

package evaluators

import (
	"fmt"

	"github.com/kleascm/akaylee-miner/pkg/interfaces"
	"github.com/kleascm/akaylee-miner/pkg/rules"
)

// CheckedEvaluator is the capability set the stopping checker needs: scoring
// conditions as they stand plus hypothetical removal scoring for pruning
type CheckedEvaluator interface {
	interfaces.RuleConditionsEvaluator
	interfaces.ConditionRemovalEvaluator
}

// EvaluationAndCoverageChecker is the standard stopping condition: the
// configured evaluator must satisfy its threshold and every covered object
// must belong to the allowed set
type EvaluationAndCoverageChecker struct {
	evaluator CheckedEvaluator
	threshold float64
}

// NewEvaluationAndCoverageChecker creates a checker around one evaluator and
// a threshold interpreted under the evaluator's measure type
func NewEvaluationAndCoverageChecker(evaluator CheckedEvaluator, threshold float64) (*EvaluationAndCoverageChecker, error) {
	if evaluator == nil {
		return nil, fmt.Errorf("stopping checker requires an evaluator")
	}
	return &EvaluationAndCoverageChecker{
		evaluator: evaluator,
		threshold: threshold,
	}, nil
}

// Name returns the name of this checker
func (c *EvaluationAndCoverageChecker) Name() string {
	return fmt.Sprintf("evaluation-and-coverage(%s@%g)", c.evaluator.Name(), c.threshold)
}

// Threshold returns the configured threshold
func (c *EvaluationAndCoverageChecker) Threshold() float64 {
	return c.threshold
}

// WithThreshold returns a structurally identical checker with a different
// threshold. Used for threshold sweeps without re-wiring the pipeline.
func (c *EvaluationAndCoverageChecker) WithThreshold(threshold float64) interfaces.ThresholdedStoppingConditionChecker {
	return &EvaluationAndCoverageChecker{
		evaluator: c.evaluator,
		threshold: threshold,
	}
}

// IsSatisfied reports whether the conditions meet both stopping clauses
func (c *EvaluationAndCoverageChecker) IsSatisfied(ruleConditions *rules.RuleConditions) (bool, error) {
	if ruleConditions == nil {
		return false, fmt.Errorf("%s: nil rule conditions", c.Name())
	}
	value, err := c.evaluator.Evaluate(ruleConditions)
	if err != nil {
		return false, fmt.Errorf("%s: %w", c.Name(), err)
	}
	if !c.evaluator.EvaluationSatisfiesThreshold(value, c.threshold) {
		return false, nil
	}
	return coveredAllAllowed(ruleConditions, ruleConditions.CoveredObjects()), nil
}

// IsSatisfiedWithoutCondition reports whether both clauses would still hold
// after removing the condition at the given index
func (c *EvaluationAndCoverageChecker) IsSatisfiedWithoutCondition(ruleConditions *rules.RuleConditions, conditionIndex int) (bool, error) {
	if ruleConditions == nil {
		return false, fmt.Errorf("%s: nil rule conditions", c.Name())
	}
	value, err := c.evaluator.EvaluateWithoutCondition(ruleConditions, conditionIndex)
	if err != nil {
		return false, fmt.Errorf("%s: %w", c.Name(), err)
	}
	if !c.evaluator.EvaluationSatisfiesThreshold(value, c.threshold) {
		return false, nil
	}
	covered, err := ruleConditions.CoveredIfRemoved(conditionIndex)
	if err != nil {
		return false, fmt.Errorf("%s: %w", c.Name(), err)
	}
	return coveredAllAllowed(ruleConditions, covered), nil
}

// coveredAllAllowed tests the coverage clause: no covered object may fall
// outside the allowed set
func coveredAllAllowed(ruleConditions *rules.RuleConditions, covered []int) bool {
	for _, objectIndex := range covered {
		if !ruleConditions.IsAllowed(objectIndex) {
			return false
		}
	}
	return true
}
