/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: data_test.go
Description: Tests for field values, attributes, and the information table.
Covers three-way comparison semantics, incomparable outcomes, construction
validation, and distinct value enumeration.
*/

package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-miner/pkg/data"
)

// TestIntegerFieldComparison verifies three-way comparison on integer values
func TestIntegerFieldComparison(t *testing.T) {
	assert.Equal(t, data.ComparisonLess, data.NewIntegerField(1).CompareTo(data.NewIntegerField(2)))
	assert.Equal(t, data.ComparisonEqual, data.NewIntegerField(3).CompareTo(data.NewIntegerField(3)))
	assert.Equal(t, data.ComparisonGreater, data.NewIntegerField(5).CompareTo(data.NewIntegerField(2)))
}

// TestRealFieldComparison verifies three-way comparison on real values
func TestRealFieldComparison(t *testing.T) {
	assert.Equal(t, data.ComparisonLess, data.NewRealField(0.5).CompareTo(data.NewRealField(1.5)))
	assert.Equal(t, data.ComparisonEqual, data.NewRealField(2.5).CompareTo(data.NewRealField(2.5)))
	assert.Equal(t, data.ComparisonGreater, data.NewRealField(3.5).CompareTo(data.NewRealField(1.0)))
}

// TestCrossKindComparisonIsIncomparable verifies that values of different
// kinds never produce an ordering
func TestCrossKindComparisonIsIncomparable(t *testing.T) {
	assert.Equal(t, data.ComparisonIncomparable,
		data.NewIntegerField(1).CompareTo(data.NewRealField(1.0)))
	assert.Equal(t, data.ComparisonIncomparable,
		data.NewRealField(1.0).CompareTo(data.NewIntegerField(1)))
}

// TestEnumerationDomainValidation verifies domain construction rules
func TestEnumerationDomainValidation(t *testing.T) {
	_, err := data.NewEnumerationDomain(nil)
	assert.Error(t, err)

	_, err = data.NewEnumerationDomain([]string{"low", "low"})
	assert.Error(t, err)

	_, err = data.NewEnumerationDomain([]string{"low", ""})
	assert.Error(t, err)

	domain, err := data.NewEnumerationDomain([]string{"low", "medium", "high"})
	require.NoError(t, err)
	assert.Equal(t, 3, domain.Size())

	index, ok := domain.IndexOf("medium")
	assert.True(t, ok)
	assert.Equal(t, 1, index)
}

// TestEnumerationFieldComparison verifies order-position comparison and the
// incomparable outcome across distinct domains
func TestEnumerationFieldComparison(t *testing.T) {
	domain, err := data.NewEnumerationDomain([]string{"low", "medium", "high"})
	require.NoError(t, err)
	otherDomain, err := data.NewEnumerationDomain([]string{"low", "medium", "high"})
	require.NoError(t, err)

	low, err := data.NewEnumerationField(domain, "low")
	require.NoError(t, err)
	high, err := data.NewEnumerationField(domain, "high")
	require.NoError(t, err)
	otherLow, err := data.NewEnumerationField(otherDomain, "low")
	require.NoError(t, err)

	assert.Equal(t, data.ComparisonLess, low.CompareTo(high))
	assert.Equal(t, data.ComparisonGreater, high.CompareTo(low))
	assert.Equal(t, data.ComparisonIncomparable, low.CompareTo(otherLow))

	_, err = data.NewEnumerationField(domain, "extreme")
	assert.Error(t, err)
}

// TestAttributeValidation verifies attribute descriptor consistency checks
func TestAttributeValidation(t *testing.T) {
	attribute := data.NewAttribute("a1", data.KindInteger, data.PreferenceGain)
	assert.NoError(t, attribute.Validate())

	nameless := &data.Attribute{Kind: data.KindInteger}
	assert.Error(t, nameless.Validate())

	enumWithoutDomain := data.NewAttribute("a2", data.KindEnumeration, data.PreferenceNone)
	assert.Error(t, enumWithoutDomain.Validate())
}

// TestInformationTableConstruction verifies the strict validation rules on
// table assembly
func TestInformationTableConstruction(t *testing.T) {
	attributes := []*data.Attribute{
		data.NewAttribute("a1", data.KindInteger, data.PreferenceGain),
		data.NewDecisionAttribute("class", data.KindInteger, data.PreferenceGain),
	}

	table, err := data.NewInformationTable(attributes, [][]data.FieldValue{
		{data.NewIntegerField(3), data.NewIntegerField(1)},
		{data.NewIntegerField(7), data.NewIntegerField(2)},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, table.ObjectCount())
	assert.Equal(t, 2, table.AttributeCount())
	assert.Equal(t, 1, table.DecisionAttributeIndex())

	// No decision attribute
	_, err = data.NewInformationTable([]*data.Attribute{
		data.NewAttribute("a1", data.KindInteger, data.PreferenceGain),
	}, nil)
	assert.Error(t, err)

	// Ragged row
	_, err = data.NewInformationTable(attributes, [][]data.FieldValue{
		{data.NewIntegerField(3)},
	})
	assert.Error(t, err)

	// Kind mismatch
	_, err = data.NewInformationTable(attributes, [][]data.FieldValue{
		{data.NewRealField(3.0), data.NewIntegerField(1)},
	})
	assert.Error(t, err)

	// Duplicate name
	_, err = data.NewInformationTable([]*data.Attribute{
		data.NewAttribute("a1", data.KindInteger, data.PreferenceGain),
		data.NewDecisionAttribute("a1", data.KindInteger, data.PreferenceGain),
	}, nil)
	assert.Error(t, err)
}

// TestInformationTableLookups verifies evaluation and decision retrieval
func TestInformationTableLookups(t *testing.T) {
	table := buildNumericTable(t)

	value, err := table.Evaluation(1, 0)
	require.NoError(t, err)
	assert.Equal(t, data.ComparisonEqual, value.CompareTo(data.NewIntegerField(4)))

	decision, err := table.Decision(2)
	require.NoError(t, err)
	assert.Equal(t, data.ComparisonEqual, decision.CompareTo(data.NewIntegerField(2)))

	_, err = table.Evaluation(99, 0)
	assert.Error(t, err)
	_, err = table.Evaluation(0, 99)
	assert.Error(t, err)

	assert.Equal(t, []int{0}, table.ActiveConditionAttributeIndices())
	assert.Equal(t, []int{0, 1, 2, 3}, table.AllObjectIndices())
}

// TestDistinctSortedValues verifies deduplication and ascending order
func TestDistinctSortedValues(t *testing.T) {
	table := buildNumericTable(t)

	values, err := table.DistinctSortedValues(0)
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, "2", values[0].String())
	assert.Equal(t, "4", values[1].String())
	assert.Equal(t, "9", values[2].String())

	decisions, err := table.DistinctSortedDecisions()
	require.NoError(t, err)
	require.Len(t, decisions, 2)
	assert.Equal(t, "1", decisions[0].String())
}

// buildNumericTable assembles a small table with one gain attribute, values
// {9, 4, 2, 4} and decisions {1, 1, 2, 2}
func buildNumericTable(t *testing.T) *data.InformationTable {
	t.Helper()
	attributes := []*data.Attribute{
		data.NewAttribute("a1", data.KindInteger, data.PreferenceGain),
		data.NewDecisionAttribute("class", data.KindInteger, data.PreferenceGain),
	}
	table, err := data.NewInformationTable(attributes, [][]data.FieldValue{
		{data.NewIntegerField(9), data.NewIntegerField(1)},
		{data.NewIntegerField(4), data.NewIntegerField(1)},
		{data.NewIntegerField(2), data.NewIntegerField(2)},
		{data.NewIntegerField(4), data.NewIntegerField(2)},
	})
	require.NoError(t, err)
	return table
}
