/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generators.go
Description: Condition generation strategies for the Akaylee Miner. Implements
the standard exhaustive best-condition search plus two search-space reductions:
skipping attributes already used by the rule, and monotonicity-guided threshold
sweeps that stop once the primary evaluation strictly worsens. All variants
score candidates lexicographically across the configured addition evaluators.
*/

package strategies

import (
	"fmt"
	"sort"

	"github.com/kleascm/akaylee-miner/pkg/data"
	"github.com/kleascm/akaylee-miner/pkg/interfaces"
	"github.com/kleascm/akaylee-miner/pkg/rules"
)

// conditionSearch carries the shared search machinery of all generator variants
type conditionSearch struct {
	evaluators []interfaces.ConditionAdditionEvaluator
	skipUsed   bool // Skip attributes already present in the rule
	sweep      bool // Monotonicity-guided early exit over sorted thresholds
}

// candidateState tracks the best condition found so far with its score vector
type candidateState struct {
	condition rules.Condition
	scores    []float64
}

// validateEvaluators rejects empty evaluator slices and nil elements
func validateEvaluators(additionEvaluators []interfaces.ConditionAdditionEvaluator) error {
	if len(additionEvaluators) == 0 {
		return fmt.Errorf("condition generator requires at least one addition evaluator")
	}
	for i, evaluator := range additionEvaluators {
		if evaluator == nil {
			return fmt.Errorf("addition evaluator %d is nil", i)
		}
	}
	return nil
}

// relationFor selects the condition relation an attribute contributes under
// the target concept's semantics
func relationFor(preference data.PreferenceType, semantics rules.RuleSemantics) rules.Relation {
	if semantics == rules.SemanticsEqual || preference == data.PreferenceNone {
		return rules.RelationEqual
	}
	if semantics == rules.SemanticsAtLeast {
		if preference == data.PreferenceGain {
			return rules.RelationAtLeast
		}
		return rules.RelationAtMost
	}
	if preference == data.PreferenceGain {
		return rules.RelationAtMost
	}
	return rules.RelationAtLeast
}

// distinctCandidateValues collects the distinct evaluations of the candidate
// objects on one attribute, sorted ascending
func distinctCandidateValues(table *data.InformationTable, candidates []int, attributeIndex int) ([]data.FieldValue, error) {
	distinct := make([]data.FieldValue, 0, len(candidates))
	for _, objectIndex := range candidates {
		value, err := table.Evaluation(objectIndex, attributeIndex)
		if err != nil {
			return nil, fmt.Errorf("reading candidate %d: %w", objectIndex, err)
		}
		duplicate := false
		for _, seen := range distinct {
			if value.CompareTo(seen) == data.ComparisonEqual {
				duplicate = true
				break
			}
		}
		if !duplicate {
			distinct = append(distinct, value)
		}
	}
	sort.SliceStable(distinct, func(i, j int) bool {
		return distinct[i].CompareTo(distinct[j]) == data.ComparisonLess
	})
	return distinct, nil
}

// getBestCondition runs the configured search over (attribute, value) pairs
func (s *conditionSearch) getBestCondition(candidates []int, ruleConditions *rules.RuleConditions) (rules.Condition, error) {
	if ruleConditions == nil {
		return rules.Condition{}, fmt.Errorf("condition search requires rule conditions")
	}
	if len(candidates) == 0 {
		return rules.Condition{}, fmt.Errorf("condition search requires a non-empty candidate pool")
	}

	table := ruleConditions.Table()
	semantics := ruleConditions.Semantics()
	currentCoverage := ruleConditions.CoveredCount()

	var best *candidateState
	for _, attributeIndex := range table.ActiveConditionAttributeIndices() {
		if s.skipUsed && ruleConditions.ContainsConditionForAttribute(attributeIndex) {
			continue
		}
		attribute, err := table.Attribute(attributeIndex)
		if err != nil {
			return rules.Condition{}, fmt.Errorf("condition search: %w", err)
		}
		relation := relationFor(attribute.Preference, semantics)

		values, err := distinctCandidateValues(table, candidates, attributeIndex)
		if err != nil {
			return rules.Condition{}, fmt.Errorf("condition search on %q: %w", attribute.Name, err)
		}
		values = s.orderForSweep(values, relation)

		sweeping := s.sweep && relation != rules.RelationEqual
		attributeBestPrimary := s.evaluators[0].MeasureType().WorstValue()
		scoredAny := false

		for _, value := range values {
			candidate, err := rules.NewCondition(table, attributeIndex, relation, value)
			if err != nil {
				// An unusable limiting value scores as the worst sentinel
				continue
			}
			if ruleConditions.ContainsCondition(candidate) {
				continue
			}
			covered, err := ruleConditions.CoveredIfAdded(candidate)
			if err != nil {
				return rules.Condition{}, fmt.Errorf("condition search: %w", err)
			}
			if len(covered) == currentCoverage {
				// Logically redundant: excludes nothing
				continue
			}

			scores, err := s.scoreCandidate(ruleConditions, candidate)
			if err != nil {
				return rules.Condition{}, err
			}
			if sweeping && scoredAny &&
				s.evaluators[0].MeasureType().Confront(scores[0], attributeBestPrimary) < 0 {
				// Monotonic primary strictly worsened along the sweep; every
				// remaining threshold on this attribute is dominated
				break
			}
			if !scoredAny || s.evaluators[0].MeasureType().Confront(scores[0], attributeBestPrimary) > 0 {
				attributeBestPrimary = scores[0]
			}
			scoredAny = true

			best = s.challenge(best, &candidateState{condition: candidate, scores: scores})
		}
	}

	if best == nil {
		return rules.Condition{}, fmt.Errorf("search over %d candidates: %w",
			len(candidates), interfaces.ErrNoSeparatingCondition)
	}
	return best.condition, nil
}

// orderForSweep arranges ascending-sorted values in sweep direction: when the
// primary evaluator improves with coverage the most general threshold comes
// first, otherwise the most specific one does
func (s *conditionSearch) orderForSweep(ascending []data.FieldValue, relation rules.Relation) []data.FieldValue {
	if !s.sweep || relation == rules.RelationEqual {
		return ascending
	}
	monotonic, ok := s.evaluators[0].(interfaces.MonotonicConditionAdditionEvaluator)
	if !ok {
		return ascending
	}
	generalFirst := monotonic.Monotonicity() == interfaces.ImprovesWithCoverage
	// For at-least relations ascending thresholds run general to specific;
	// for at-most relations the direction flips
	ascendingIsGeneralFirst := relation == rules.RelationAtLeast
	if generalFirst == ascendingIsGeneralFirst {
		return ascending
	}
	reversed := make([]data.FieldValue, len(ascending))
	for i, value := range ascending {
		reversed[len(ascending)-1-i] = value
	}
	return reversed
}

// scoreCandidate computes the full lexicographic score vector of a candidate
func (s *conditionSearch) scoreCandidate(ruleConditions *rules.RuleConditions, candidate rules.Condition) ([]float64, error) {
	scores := make([]float64, len(s.evaluators))
	for i, evaluator := range s.evaluators {
		value, err := evaluator.EvaluateWithCondition(ruleConditions, candidate)
		if err != nil {
			return nil, fmt.Errorf("evaluator %s scoring %s: %w", evaluator.Name(), candidate, err)
		}
		scores[i] = value
	}
	return scores, nil
}

// challenge compares a scored candidate against the best so far. Lexicographic
// comparison position by position; full ties prefer the more general limiting
// value on the same attribute and otherwise keep the earlier declaration.
func (s *conditionSearch) challenge(best, candidate *candidateState) *candidateState {
	if best == nil {
		return candidate
	}
	for i, evaluator := range s.evaluators {
		switch evaluator.MeasureType().Confront(candidate.scores[i], best.scores[i]) {
		case 1:
			return candidate
		case -1:
			return best
		}
	}
	if best.condition.IsAtMostAsGeneralAs(candidate.condition) == rules.TernaryTrue &&
		!best.condition.Equal(candidate.condition) {
		return candidate
	}
	return best
}

// StandardConditionGenerator searches every (attribute, candidate value) pair
type StandardConditionGenerator struct {
	search conditionSearch
}

// NewStandardConditionGenerator creates the exhaustive generator
func NewStandardConditionGenerator(additionEvaluators []interfaces.ConditionAdditionEvaluator) (*StandardConditionGenerator, error) {
	if err := validateEvaluators(additionEvaluators); err != nil {
		return nil, err
	}
	return &StandardConditionGenerator{
		search: conditionSearch{evaluators: additionEvaluators},
	}, nil
}

// GetBestCondition returns the best condition to append next
func (g *StandardConditionGenerator) GetBestCondition(candidates []int, ruleConditions *rules.RuleConditions) (rules.Condition, error) {
	return g.search.getBestCondition(candidates, ruleConditions)
}

// Name returns the name of this generator
func (g *StandardConditionGenerator) Name() string {
	return "StandardConditionGenerator"
}

// Description returns a description of this generator
func (g *StandardConditionGenerator) Description() string {
	return "Scores every candidate attribute-value pair lexicographically across the configured evaluators"
}

// M1ConditionGenerator skips attributes the rule already uses. Valid only when
// re-adding a used attribute cannot strictly improve the rule; callers assert
// that property, it is not verified at runtime.
type M1ConditionGenerator struct {
	search conditionSearch
}

// NewM1ConditionGenerator creates the skip-used-attributes generator
func NewM1ConditionGenerator(additionEvaluators []interfaces.ConditionAdditionEvaluator) (*M1ConditionGenerator, error) {
	if err := validateEvaluators(additionEvaluators); err != nil {
		return nil, err
	}
	return &M1ConditionGenerator{
		search: conditionSearch{evaluators: additionEvaluators, skipUsed: true},
	}, nil
}

// GetBestCondition returns the best condition to append next
func (g *M1ConditionGenerator) GetBestCondition(candidates []int, ruleConditions *rules.RuleConditions) (rules.Condition, error) {
	return g.search.getBestCondition(candidates, ruleConditions)
}

// Name returns the name of this generator
func (g *M1ConditionGenerator) Name() string {
	return "M1ConditionGenerator"
}

// Description returns a description of this generator
func (g *M1ConditionGenerator) Description() string {
	return "Exhaustive search that skips attributes already used by the rule"
}

// M4ConditionGenerator exploits evaluator monotonicity to sweep each
// attribute's thresholds in sorted order and stop once the primary evaluation
// strictly worsens. Requires every addition evaluator to be monotonic.
type M4ConditionGenerator struct {
	search conditionSearch
}

// NewM4ConditionGenerator creates the monotonicity-guided generator
func NewM4ConditionGenerator(additionEvaluators []interfaces.ConditionAdditionEvaluator) (*M4ConditionGenerator, error) {
	if err := validateEvaluators(additionEvaluators); err != nil {
		return nil, err
	}
	for i, evaluator := range additionEvaluators {
		if _, ok := evaluator.(interfaces.MonotonicConditionAdditionEvaluator); !ok {
			return nil, fmt.Errorf("addition evaluator %d (%s) is not monotonic", i, evaluator.Name())
		}
	}
	return &M4ConditionGenerator{
		search: conditionSearch{evaluators: additionEvaluators, sweep: true},
	}, nil
}

// GetBestCondition returns the best condition to append next
func (g *M4ConditionGenerator) GetBestCondition(candidates []int, ruleConditions *rules.RuleConditions) (rules.Condition, error) {
	return g.search.getBestCondition(candidates, ruleConditions)
}

// Name returns the name of this generator
func (g *M4ConditionGenerator) Name() string {
	return "M4ConditionGenerator"
}

// Description returns a description of this generator
func (g *M4ConditionGenerator) Description() string {
	return "Monotonicity-guided threshold sweep that prunes dominated limiting values"
}

// ByName constructs the generator registered under a configuration name
func ByName(name string, additionEvaluators []interfaces.ConditionAdditionEvaluator) (interfaces.ConditionGenerator, error) {
	switch name {
	case interfaces.GeneratorStandard:
		return NewStandardConditionGenerator(additionEvaluators)
	case interfaces.GeneratorM1:
		return NewM1ConditionGenerator(additionEvaluators)
	case interfaces.GeneratorM4:
		return NewM4ConditionGenerator(additionEvaluators)
	default:
		return nil, fmt.Errorf("unknown condition generator %q", name)
	}
}
