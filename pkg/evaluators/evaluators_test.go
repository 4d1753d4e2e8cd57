/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: evaluators_test.go
Description: Tests for the evaluation measures and the stopping condition
checker. Covers measure values on known coverage splits, hypothetical addition
and removal scoring, gain/cost confrontation, threshold satisfaction, and the
coverage clause of the stopping checker.
*/

package evaluators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-miner/pkg/data"
	"github.com/kleascm/akaylee-miner/pkg/evaluators"
	"github.com/kleascm/akaylee-miner/pkg/interfaces"
	"github.com/kleascm/akaylee-miner/pkg/rules"
)

// TestEpsilonConsistency verifies the covered-negatives share on known splits
func TestEpsilonConsistency(t *testing.T) {
	table := buildTable(t)
	rc := buildConditions(t, table, nil, nil)
	epsilon := evaluators.NewEpsilonConsistencyEvaluator()

	assert.Equal(t, interfaces.Cost, epsilon.MeasureType())
	assert.Equal(t, interfaces.DeterioratesWithCoverage, epsilon.Monotonicity())

	// Empty conjunction covers both negatives
	value, err := epsilon.Evaluate(rc)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, value, 1e-9)

	// attr1 >= 5 covers positives only
	value, err = epsilon.EvaluateWithCondition(rc, condition(t, table, 0, rules.RelationAtLeast, 5))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, value, 1e-9)

	// attr1 >= 4 additionally covers negative object 3
	value, err = epsilon.EvaluateWithCondition(rc, condition(t, table, 0, rules.RelationAtLeast, 4))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, value, 1e-9)

	_, err = epsilon.Evaluate(nil)
	assert.Error(t, err)
}

// TestEpsilonWithNeutrals verifies neutral objects never count as negatives
func TestEpsilonWithNeutrals(t *testing.T) {
	table := buildTable(t)
	rc := buildConditions(t, table, []int{1}, nil)
	epsilon := evaluators.NewEpsilonConsistencyEvaluator()

	// Object 1 is neutral, so only object 3 counts as negative
	value, err := epsilon.Evaluate(rc)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, value, 1e-9)

	value, err = epsilon.EvaluateWithCondition(rc, condition(t, table, 0, rules.RelationAtLeast, 5))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, value, 1e-9)
}

// TestRoughMembership verifies the positive share among covered non-neutrals
func TestRoughMembership(t *testing.T) {
	table := buildTable(t)
	rc := buildConditions(t, table, nil, nil)
	membership := evaluators.NewRoughMembershipEvaluator()

	assert.Equal(t, interfaces.Gain, membership.MeasureType())

	value, err := membership.Evaluate(rc)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, value, 1e-9)

	// Narrowing to attr1 >= 4 keeps positives {0,2,4} and negative {3}
	value, err = membership.EvaluateWithCondition(rc, condition(t, table, 0, rules.RelationAtLeast, 4))
	require.NoError(t, err)
	assert.InDelta(t, 0.75, value, 1e-9)

	// Narrowing further to attr1 >= 5 never decreases the measure
	value, err = membership.EvaluateWithCondition(rc, condition(t, table, 0, rules.RelationAtLeast, 5))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, value, 1e-9)
}

// TestCoverageCounts verifies the counting evaluators on known splits
func TestCoverageCounts(t *testing.T) {
	table := buildTable(t)
	rc := buildConditions(t, table, nil, nil)
	positive := evaluators.NewPositiveCoverageEvaluator()
	negative := evaluators.NewNegativeCoverageEvaluator()

	assert.Equal(t, interfaces.ImprovesWithCoverage, positive.Monotonicity())
	assert.Equal(t, interfaces.DeterioratesWithCoverage, negative.Monotonicity())

	positives, err := positive.Evaluate(rc)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, positives, 1e-9)

	negatives, err := negative.Evaluate(rc)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, negatives, 1e-9)

	// Shrinking coverage never increases positive coverage
	positives, err = positive.EvaluateWithCondition(rc, condition(t, table, 0, rules.RelationAtLeast, 5))
	require.NoError(t, err)
	assert.InDelta(t, 3.0, positives, 1e-9)

	negatives, err = negative.EvaluateWithCondition(rc, condition(t, table, 0, rules.RelationAtLeast, 5))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, negatives, 1e-9)
}

// TestRemovalEvaluation verifies hypothetical removal restores the wider measure
func TestRemovalEvaluation(t *testing.T) {
	table := buildTable(t)
	rc := buildConditions(t, table, nil, nil)
	epsilon := evaluators.NewEpsilonConsistencyEvaluator()

	require.NoError(t, rc.AddCondition(condition(t, table, 0, rules.RelationAtLeast, 5)))

	current, err := epsilon.Evaluate(rc)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, current, 1e-9)

	without, err := epsilon.EvaluateWithoutCondition(rc, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, without, 1e-9)

	// Probe must not mutate
	assert.Equal(t, 1, rc.Size())
	assert.Equal(t, []int{0, 2, 4}, rc.CoveredObjects())

	_, err = epsilon.EvaluateWithoutCondition(rc, 99)
	assert.Error(t, err)
}

// TestConfrontAndThreshold verifies gain/cost comparison semantics
func TestConfrontAndThreshold(t *testing.T) {
	gain := evaluators.NewPositiveCoverageEvaluator()
	cost := evaluators.NewEpsilonConsistencyEvaluator()

	assert.Equal(t, 1, gain.Confront(0.8, 0.3))
	assert.Equal(t, -1, gain.Confront(0.3, 0.8))
	assert.Equal(t, 0, gain.Confront(0.5, 0.5))

	assert.Equal(t, 1, cost.Confront(0.1, 0.3))
	assert.Equal(t, -1, cost.Confront(0.3, 0.1))

	assert.True(t, gain.EvaluationSatisfiesThreshold(0.8, 0.5))
	assert.False(t, gain.EvaluationSatisfiesThreshold(0.3, 0.5))
	assert.True(t, cost.EvaluationSatisfiesThreshold(0.3, 0.5))
	assert.False(t, cost.EvaluationSatisfiesThreshold(0.8, 0.5))
}

// TestWorstSentinel verifies the sentinel never beats a real evaluation
func TestWorstSentinel(t *testing.T) {
	assert.Equal(t, -1, interfaces.Gain.Confront(interfaces.Gain.WorstValue(), 0.0))
	assert.Equal(t, -1, interfaces.Cost.Confront(interfaces.Cost.WorstValue(), 1e9))
}

// TestByName verifies the configuration name registry
func TestByName(t *testing.T) {
	for _, name := range []string{
		interfaces.EvaluatorEpsilon,
		interfaces.EvaluatorRoughMembership,
		interfaces.EvaluatorPositiveCoverage,
		interfaces.EvaluatorNegativeCoverage,
	} {
		evaluator, err := evaluators.ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, evaluator.Name())
	}

	_, err := evaluators.ByName("entropy")
	assert.Error(t, err)
}

// TestStoppingCheckerEvaluationClause verifies the threshold clause
func TestStoppingCheckerEvaluationClause(t *testing.T) {
	table := buildTable(t)
	rc := buildConditions(t, table, nil, nil)
	checker, err := evaluators.NewEvaluationAndCoverageChecker(evaluators.NewEpsilonConsistencyEvaluator(), 0.0)
	require.NoError(t, err)

	// Full coverage fails the epsilon threshold
	satisfied, err := checker.IsSatisfied(rc)
	require.NoError(t, err)
	assert.False(t, satisfied)

	require.NoError(t, rc.AddCondition(condition(t, table, 0, rules.RelationAtLeast, 5)))
	satisfied, err = checker.IsSatisfied(rc)
	require.NoError(t, err)
	assert.True(t, satisfied)
}

// TestStoppingCheckerCoverageClause verifies disallowed covered objects block
// satisfaction even when the evaluation clause passes
func TestStoppingCheckerCoverageClause(t *testing.T) {
	table := buildTable(t)

	// Threshold 0.5 tolerates one covered negative by evaluation, but the
	// coverage clause still requires every covered object to be allowed
	strict := buildConditions(t, table, nil, nil)
	checker, err := evaluators.NewEvaluationAndCoverageChecker(evaluators.NewEpsilonConsistencyEvaluator(), 0.5)
	require.NoError(t, err)

	require.NoError(t, strict.AddCondition(condition(t, table, 0, rules.RelationAtLeast, 4)))
	satisfied, err := checker.IsSatisfied(strict)
	require.NoError(t, err)
	assert.False(t, satisfied)

	// Tolerating object 3 as an allowed negative flips the outcome
	tolerant := buildConditions(t, table, nil, []int{3})
	require.NoError(t, tolerant.AddCondition(condition(t, table, 0, rules.RelationAtLeast, 4)))
	satisfied, err = checker.IsSatisfied(tolerant)
	require.NoError(t, err)
	assert.True(t, satisfied)
}

// TestStoppingCheckerWithoutCondition verifies the hypothetical removal form
func TestStoppingCheckerWithoutCondition(t *testing.T) {
	table := buildTable(t)
	rc := buildConditions(t, table, nil, nil)
	checker, err := evaluators.NewEvaluationAndCoverageChecker(evaluators.NewEpsilonConsistencyEvaluator(), 0.0)
	require.NoError(t, err)

	require.NoError(t, rc.AddCondition(condition(t, table, 0, rules.RelationAtLeast, 5)))
	require.NoError(t, rc.AddCondition(condition(t, table, 1, rules.RelationAtLeast, 4)))

	// Either condition alone keeps the conjunction consistent
	satisfied, err := checker.IsSatisfiedWithoutCondition(rc, 1)
	require.NoError(t, err)
	assert.True(t, satisfied)

	single := buildConditions(t, table, nil, nil)
	require.NoError(t, single.AddCondition(condition(t, table, 0, rules.RelationAtLeast, 5)))
	satisfied, err = checker.IsSatisfiedWithoutCondition(single, 0)
	require.NoError(t, err)
	assert.False(t, satisfied)
}

// TestCheckerWithThreshold verifies the threshold-sweep clone
func TestCheckerWithThreshold(t *testing.T) {
	checker, err := evaluators.NewEvaluationAndCoverageChecker(evaluators.NewEpsilonConsistencyEvaluator(), 0.0)
	require.NoError(t, err)

	relaxed := checker.WithThreshold(0.5)
	assert.InDelta(t, 0.5, relaxed.Threshold(), 1e-9)
	assert.InDelta(t, 0.0, checker.Threshold(), 1e-9)

	_, err = evaluators.NewEvaluationAndCoverageChecker(nil, 0.0)
	assert.Error(t, err)
}

// condition builds an integer condition on the table
func condition(t *testing.T, table *data.InformationTable, attributeIndex int,
	relation rules.Relation, limit int) rules.Condition {
	t.Helper()
	c, err := rules.NewCondition(table, attributeIndex, relation, data.NewIntegerField(limit))
	require.NoError(t, err)
	return c
}

// buildTable assembles five objects over two gain attributes with decisions
// {2, 1, 2, 1, 2}: attr1 = {9, 2, 5, 4, 7}, attr2 = {3, 1, 4, 2, 5}
func buildTable(t *testing.T) *data.InformationTable {
	t.Helper()
	attributes := []*data.Attribute{
		data.NewAttribute("attr1", data.KindInteger, data.PreferenceGain),
		data.NewAttribute("attr2", data.KindInteger, data.PreferenceGain),
		data.NewDecisionAttribute("class", data.KindInteger, data.PreferenceGain),
	}
	table, err := data.NewInformationTable(attributes, [][]data.FieldValue{
		{data.NewIntegerField(9), data.NewIntegerField(3), data.NewIntegerField(2)},
		{data.NewIntegerField(2), data.NewIntegerField(1), data.NewIntegerField(1)},
		{data.NewIntegerField(5), data.NewIntegerField(4), data.NewIntegerField(2)},
		{data.NewIntegerField(4), data.NewIntegerField(2), data.NewIntegerField(1)},
		{data.NewIntegerField(7), data.NewIntegerField(5), data.NewIntegerField(2)},
	})
	require.NoError(t, err)
	return table
}

// buildConditions creates empty conditions targeting positives {0, 2, 4}
func buildConditions(t *testing.T, table *data.InformationTable,
	neutral, allowedNegative []int) *rules.RuleConditions {
	t.Helper()
	rc, err := rules.NewRuleConditions(table, []int{0, 2, 4}, neutral, allowedNegative,
		rules.PolicyPositiveRegion, rules.RuleCertain, rules.SemanticsAtLeast)
	require.NoError(t, err)
	return rc
}
