/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: approximations_test.go
Description: Tests for class unions, custom sets, and the union provider.
Covers membership derivation from decision comparisons, the Includes relation
between unions, and the most-specific-first induction order.
*/

package approximations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-miner/pkg/approximations"
	"github.com/kleascm/akaylee-miner/pkg/data"
)

// TestClassUnionMembership verifies upward and downward member derivation
func TestClassUnionMembership(t *testing.T) {
	table := buildOrderedTable(t)

	upward, err := approximations.NewClassUnion(table, approximations.UnionUpward, data.NewIntegerField(2))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, upward.Objects())
	assert.True(t, upward.Contains(3))
	assert.False(t, upward.Contains(0))
	assert.Equal(t, "class>=2", upward.Name())

	downward, err := approximations.NewClassUnion(table, approximations.UnionDownward, data.NewIntegerField(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, downward.Objects())
	assert.Equal(t, "class<=2", downward.Name())
}

// TestClassUnionValidation verifies construction failures
func TestClassUnionValidation(t *testing.T) {
	table := buildOrderedTable(t)

	_, err := approximations.NewClassUnion(nil, approximations.UnionUpward, data.NewIntegerField(1))
	assert.Error(t, err)

	_, err = approximations.NewClassUnion(table, approximations.UnionUpward, nil)
	assert.Error(t, err)

	_, err = approximations.NewClassUnion(table, approximations.SetExact, data.NewIntegerField(1))
	assert.Error(t, err)

	// Limiting value of the wrong kind is incomparable with every decision
	_, err = approximations.NewClassUnion(table, approximations.UnionUpward, data.NewRealField(1.0))
	assert.Error(t, err)
}

// TestUnionIncludes verifies decision-specificity inclusion between unions
func TestUnionIncludes(t *testing.T) {
	table := buildOrderedTable(t)

	atLeast2, err := approximations.NewClassUnion(table, approximations.UnionUpward, data.NewIntegerField(2))
	require.NoError(t, err)
	atLeast3, err := approximations.NewClassUnion(table, approximations.UnionUpward, data.NewIntegerField(3))
	require.NoError(t, err)

	assert.True(t, atLeast2.Includes(atLeast3))
	assert.False(t, atLeast3.Includes(atLeast2))
	assert.True(t, atLeast2.Includes(atLeast2))

	atMost1, err := approximations.NewClassUnion(table, approximations.UnionDownward, data.NewIntegerField(1))
	require.NoError(t, err)
	atMost2, err := approximations.NewClassUnion(table, approximations.UnionDownward, data.NewIntegerField(2))
	require.NoError(t, err)

	assert.True(t, atMost2.Includes(atMost1))
	assert.False(t, atMost1.Includes(atMost2))

	// Cross-kind inclusion falls back to membership testing
	assert.False(t, atMost1.Includes(atLeast3))
}

// TestCustomSet verifies explicit sets and their inclusion relation
func TestCustomSet(t *testing.T) {
	set, err := approximations.NewCustomSet("classA", data.NewIntegerField(1), []int{4, 0, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, set.Objects())
	assert.Equal(t, 3, set.ObjectCount())
	assert.Equal(t, approximations.SetExact, set.Kind())

	subset, err := approximations.NewCustomSet("classB", data.NewIntegerField(1), []int{0, 4})
	require.NoError(t, err)
	assert.True(t, set.Includes(subset))
	assert.False(t, subset.Includes(set))

	_, err = approximations.NewCustomSet("", data.NewIntegerField(1), []int{0})
	assert.Error(t, err)
	_, err = approximations.NewCustomSet("bad", data.NewIntegerField(1), []int{-1})
	assert.Error(t, err)
}

// TestUnionProviderOrder verifies the most-specific-first induction ordering
func TestUnionProviderOrder(t *testing.T) {
	table := buildOrderedTable(t)

	provider, err := approximations.NewUnionProvider(table)
	require.NoError(t, err)
	assert.Equal(t, 3, provider.DecisionCount())

	ordered, err := provider.InductionOrder()
	require.NoError(t, err)
	require.Len(t, ordered, 4)
	assert.Equal(t, "class>=3", ordered[0].Name())
	assert.Equal(t, "class>=2", ordered[1].Name())
	assert.Equal(t, "class<=1", ordered[2].Name())
	assert.Equal(t, "class<=2", ordered[3].Name())

	// Trivial unions are rejected
	_, err = provider.UpwardUnionAtRank(0)
	assert.Error(t, err)
	_, err = provider.DownwardUnionAtRank(2)
	assert.Error(t, err)
}

// buildOrderedTable assembles five objects with decisions {1, 1, 2, 2, 3}
func buildOrderedTable(t *testing.T) *data.InformationTable {
	t.Helper()
	attributes := []*data.Attribute{
		data.NewAttribute("a1", data.KindInteger, data.PreferenceGain),
		data.NewDecisionAttribute("class", data.KindInteger, data.PreferenceGain),
	}
	table, err := data.NewInformationTable(attributes, [][]data.FieldValue{
		{data.NewIntegerField(1), data.NewIntegerField(1)},
		{data.NewIntegerField(2), data.NewIntegerField(1)},
		{data.NewIntegerField(5), data.NewIntegerField(2)},
		{data.NewIntegerField(6), data.NewIntegerField(2)},
		{data.NewIntegerField(9), data.NewIntegerField(3)},
	})
	require.NoError(t, err)
	return table
}
