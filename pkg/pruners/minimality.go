/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: minimality.go
Description: Rule minimality checking for the Akaylee Miner. A candidate rule
is redundant when an already accepted rule covers at least as much with a
decision at least as strong and an evaluation at least as good. The single
evaluation checker compares on one configured measure; the dummy variant
admits everything.
*/

package pruners

import (
	"fmt"

	"github.com/kleascm/akaylee-miner/pkg/interfaces"
	"github.com/kleascm/akaylee-miner/pkg/rules"
)

// SingleEvaluationRuleMinimalityChecker gates candidates on one evaluator
type SingleEvaluationRuleMinimalityChecker struct {
	evaluator interfaces.RuleConditionsEvaluator
}

// NewSingleEvaluationRuleMinimalityChecker creates a minimality checker bound
// to one rule conditions evaluator
func NewSingleEvaluationRuleMinimalityChecker(evaluator interfaces.RuleConditionsEvaluator) (*SingleEvaluationRuleMinimalityChecker, error) {
	if evaluator == nil {
		return nil, fmt.Errorf("minimality checker requires a rule conditions evaluator")
	}
	return &SingleEvaluationRuleMinimalityChecker{evaluator: evaluator}, nil
}

// Check reports whether the candidate stays minimal against the accepted
// entries. An accepted entry makes the candidate redundant when its decision
// is at least as specific, each of its conditions is at least as general as
// some candidate condition, and its evaluation is not worse.
func (c *SingleEvaluationRuleMinimalityChecker) Check(accepted []*rules.RuleConditionsWithApproximatedSet,
	candidate *rules.RuleConditionsWithApproximatedSet) (bool, error) {
	if candidate == nil || candidate.RuleConditions == nil {
		return false, fmt.Errorf("minimality check requires a candidate")
	}
	candidateValue, err := c.evaluator.Evaluate(candidate.RuleConditions)
	if err != nil {
		return false, fmt.Errorf("evaluating candidate: %w", err)
	}

	for i, entry := range accepted {
		if entry == nil || entry.RuleConditions == nil {
			return false, fmt.Errorf("accepted entry %d is nil", i)
		}
		if !candidate.ApproximatedSet.Includes(entry.ApproximatedSet) {
			continue
		}
		if !conditionsAtLeastAsGeneral(entry.RuleConditions, candidate.RuleConditions) {
			continue
		}
		entryValue, err := c.evaluator.Evaluate(entry.RuleConditions)
		if err != nil {
			return false, fmt.Errorf("evaluating accepted entry %d: %w", i, err)
		}
		if c.evaluator.Confront(entryValue, candidateValue) >= 0 {
			return false, nil
		}
	}
	return true, nil
}

// Name returns the name of this minimality checker
func (c *SingleEvaluationRuleMinimalityChecker) Name() string {
	return "SingleEvaluationRuleMinimalityChecker"
}

// Description returns a description of this minimality checker
func (c *SingleEvaluationRuleMinimalityChecker) Description() string {
	return "Rejects candidates dominated by an accepted rule on one evaluation measure"
}

// conditionsAtLeastAsGeneral reports whether every condition of the accepted
// conjunction is at least as general as some candidate condition, which makes
// the accepted coverage a superset of the candidate coverage
func conditionsAtLeastAsGeneral(accepted, candidate *rules.RuleConditions) bool {
	for _, acceptedCondition := range accepted.Conditions() {
		dominated := false
		for _, candidateCondition := range candidate.Conditions() {
			if candidateCondition.IsAtMostAsGeneralAs(acceptedCondition) == rules.TernaryTrue {
				dominated = true
				break
			}
		}
		if !dominated {
			return false
		}
	}
	return true
}

// DummyRuleMinimalityChecker accepts every candidate
type DummyRuleMinimalityChecker struct{}

// NewDummyRuleMinimalityChecker creates a minimality checker that never rejects
func NewDummyRuleMinimalityChecker() *DummyRuleMinimalityChecker {
	return &DummyRuleMinimalityChecker{}
}

// Check always accepts the candidate
func (c *DummyRuleMinimalityChecker) Check(accepted []*rules.RuleConditionsWithApproximatedSet,
	candidate *rules.RuleConditionsWithApproximatedSet) (bool, error) {
	if candidate == nil || candidate.RuleConditions == nil {
		return false, fmt.Errorf("minimality check requires a candidate")
	}
	return true, nil
}

// Name returns the name of this minimality checker
func (c *DummyRuleMinimalityChecker) Name() string {
	return "DummyRuleMinimalityChecker"
}

// Description returns a description of this minimality checker
func (c *DummyRuleMinimalityChecker) Description() string {
	return "Accepts every candidate"
}

// MinimalityCheckerFor returns the single evaluation checker when enabled and
// the dummy otherwise
func MinimalityCheckerFor(enabled bool, evaluator interfaces.RuleConditionsEvaluator) (interfaces.RuleMinimalityChecker, error) {
	if !enabled {
		return NewDummyRuleMinimalityChecker(), nil
	}
	return NewSingleEvaluationRuleMinimalityChecker(evaluator)
}
