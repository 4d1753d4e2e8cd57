/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared interfaces for the Akaylee Miner. Defines the evaluator
family, condition generation, stopping conditions, pruning, generalization,
and minimality checking contracts used across all packages to break import
cycles and enable proper modular design.
*/

package interfaces

import (
	"errors"
	"fmt"
	"math"

	"github.com/kleascm/akaylee-miner/pkg/rules"
)

// ErrNoSeparatingCondition is returned when no condition can separate the
// covered objects from disallowed negatives. Fatal for the current rule
// attempt, never retried.
var ErrNoSeparatingCondition = errors.New("no condition separates covered objects from disallowed negatives")

// MeasureType declares whether higher or lower evaluations are better.
// Every comparison and threshold test in the evaluator family goes through
// this type, making it the single source of truth for "better".
type MeasureType int

const (
	Gain MeasureType = iota
	Cost
)

// String returns a human-readable name for the measure type
func (m MeasureType) String() string {
	switch m {
	case Gain:
		return "gain"
	case Cost:
		return "cost"
	default:
		return fmt.Sprintf("measure(%d)", int(m))
	}
}

// WorstValue returns the sentinel no real evaluation can beat
func (m MeasureType) WorstValue() float64 {
	if m == Gain {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// Confront compares two evaluations from the perspective of the first,
// returning 1 when a is better than b, 0 when equal, -1 when worse
func (m MeasureType) Confront(a, b float64) int {
	if a == b {
		return 0
	}
	better := a > b
	if m == Cost {
		better = a < b
	}
	if better {
		return 1
	}
	return -1
}

// AtLeastAsGood reports whether a is not worse than b
func (m MeasureType) AtLeastAsGood(a, b float64) bool {
	return m.Confront(a, b) >= 0
}

// SatisfiesThreshold reports whether the evaluation meets the threshold
// under this measure type
func (m MeasureType) SatisfiesThreshold(value, threshold float64) bool {
	if m == Gain {
		return value >= threshold
	}
	return value <= threshold
}

// MonotonicityType declares how a monotonic evaluator's value moves as the
// covered-object count grows
type MonotonicityType int

const (
	ImprovesWithCoverage MonotonicityType = iota
	DeterioratesWithCoverage
)

// String returns a human-readable name for the monotonicity type
func (t MonotonicityType) String() string {
	switch t {
	case ImprovesWithCoverage:
		return "improves-with-coverage"
	case DeterioratesWithCoverage:
		return "deteriorates-with-coverage"
	default:
		return fmt.Sprintf("monotonicity(%d)", int(t))
	}
}

// ConditionAdditionEvaluator scores the hypothetical effect of appending a
// condition to rule conditions, without mutating them
type ConditionAdditionEvaluator interface {
	Name() string
	MeasureType() MeasureType
	EvaluateWithCondition(ruleConditions *rules.RuleConditions, condition rules.Condition) (float64, error)
}

// MonotonicConditionAdditionEvaluator is an addition evaluator whose value
// moves consistently with the covered-object count. Required by search
// shortcuts that skip dominated thresholds.
type MonotonicConditionAdditionEvaluator interface {
	ConditionAdditionEvaluator
	Monotonicity() MonotonicityType
}

// ConditionRemovalEvaluator scores the hypothetical effect of removing the
// condition at an index, without mutating the rule conditions
type ConditionRemovalEvaluator interface {
	Name() string
	MeasureType() MeasureType
	EvaluateWithoutCondition(ruleConditions *rules.RuleConditions, conditionIndex int) (float64, error)
}

// RuleConditionsEvaluator scores rule conditions as they stand
type RuleConditionsEvaluator interface {
	Name() string
	MeasureType() MeasureType
	Evaluate(ruleConditions *rules.RuleConditions) (float64, error)
	// Confront compares two evaluations under this evaluator's measure type
	Confront(a, b float64) int
	// EvaluationSatisfiesThreshold tests an evaluation against a threshold
	// under this evaluator's measure type
	EvaluationSatisfiesThreshold(value, threshold float64) bool
}

// ConditionGenerator proposes the single best condition to append next,
// searching over candidate positive objects
type ConditionGenerator interface {
	Name() string
	Description() string
	GetBestCondition(candidateObjects []int, ruleConditions *rules.RuleConditions) (rules.Condition, error)
}

// StoppingConditionChecker decides whether rule conditions reached an
// acceptable consistency and coverage state. The hypothetical form supports
// pruning without mutation.
type StoppingConditionChecker interface {
	Name() string
	IsSatisfied(ruleConditions *rules.RuleConditions) (bool, error)
	IsSatisfiedWithoutCondition(ruleConditions *rules.RuleConditions, conditionIndex int) (bool, error)
}

// ThresholdedStoppingConditionChecker carries a numeric threshold and can
// produce a structurally identical checker with a different one, for
// threshold sweeps without re-wiring the pipeline
type ThresholdedStoppingConditionChecker interface {
	StoppingConditionChecker
	Threshold() float64
	WithThreshold(threshold float64) ThresholdedStoppingConditionChecker
}

// RuleConditionsPruner removes conditions from one rule conditions instance
// while the stopping condition stays satisfied
type RuleConditionsPruner interface {
	Name() string
	Description() string
	Prune(ruleConditions *rules.RuleConditions) error
}

// RuleConditionsGeneralizer widens condition thresholds post hoc, returning
// how many conditions were widened
type RuleConditionsGeneralizer interface {
	Name() string
	Description() string
	Generalize(ruleConditions *rules.RuleConditions) (int, error)
}

// RuleConditionsSetPruner removes whole redundant rule conditions from the
// candidate list built for one approximated set, keeping every object in
// mustStayCovered jointly covered
type RuleConditionsSetPruner interface {
	Name() string
	Description() string
	Prune(entries []*rules.RuleConditionsWithApproximatedSet, mustStayCovered []int) ([]*rules.RuleConditionsWithApproximatedSet, error)
}

// RuleMinimalityChecker gates candidate rules against the accepted set.
// Check returns true when the candidate should be accepted.
type RuleMinimalityChecker interface {
	Name() string
	Description() string
	Check(accepted []*rules.RuleConditionsWithApproximatedSet, candidate *rules.RuleConditionsWithApproximatedSet) (bool, error)
}
