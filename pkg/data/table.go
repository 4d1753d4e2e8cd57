/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: table.go
Description: Learning information table for the Akaylee Miner. Holds the ordered
objects-by-attributes evaluation matrix together with the decision column, and
provides the lookups the induction engine needs: per-object evaluations, decision
retrieval, and sorted distinct value enumeration per attribute.
*/

package data

import (
	"fmt"
	"sort"
)

// InformationTable is the immutable learning sample: objects evaluated on
// condition attributes plus exactly one active decision attribute. All
// induction components read from it; none mutate it.
type InformationTable struct {
	attributes    []*Attribute
	rows          [][]FieldValue // rows[objectIndex][attributeIndex]
	decisionIndex int
	nameIndex     map[string]int
}

// NewInformationTable creates a table from attribute descriptors and object
// rows. Validation is strict: one active decision attribute, rectangular rows,
// no nil values, and every value matching its attribute's declared kind.
func NewInformationTable(attributes []*Attribute, rows [][]FieldValue) (*InformationTable, error) {
	if len(attributes) == 0 {
		return nil, fmt.Errorf("information table requires at least one attribute")
	}

	nameIndex := make(map[string]int, len(attributes))
	decisionIndex := -1
	for i, attribute := range attributes {
		if attribute == nil {
			return nil, fmt.Errorf("attribute %d is nil", i)
		}
		if err := attribute.Validate(); err != nil {
			return nil, fmt.Errorf("attribute %d invalid: %w", i, err)
		}
		if _, exists := nameIndex[attribute.Name]; exists {
			return nil, fmt.Errorf("attribute name %q appears twice", attribute.Name)
		}
		nameIndex[attribute.Name] = i
		if attribute.Role == RoleDecision && attribute.Active {
			if decisionIndex >= 0 {
				return nil, fmt.Errorf("multiple active decision attributes (%q and %q)",
					attributes[decisionIndex].Name, attribute.Name)
			}
			decisionIndex = i
		}
	}
	if decisionIndex < 0 {
		return nil, fmt.Errorf("information table requires an active decision attribute")
	}

	for objectIndex, row := range rows {
		if len(row) != len(attributes) {
			return nil, fmt.Errorf("object %d has %d values, expected %d",
				objectIndex, len(row), len(attributes))
		}
		for attributeIndex, value := range row {
			if value == nil {
				return nil, fmt.Errorf("object %d has no value on attribute %q",
					objectIndex, attributes[attributeIndex].Name)
			}
			if value.Kind() != attributes[attributeIndex].Kind {
				return nil, fmt.Errorf("object %d value on attribute %q is %s, expected %s",
					objectIndex, attributes[attributeIndex].Name, value.Kind(), attributes[attributeIndex].Kind)
			}
		}
	}

	return &InformationTable{
		attributes:    attributes,
		rows:          rows,
		decisionIndex: decisionIndex,
		nameIndex:     nameIndex,
	}, nil
}

// ObjectCount returns the number of objects in the table
func (t *InformationTable) ObjectCount() int {
	return len(t.rows)
}

// AttributeCount returns the number of attributes in the table
func (t *InformationTable) AttributeCount() int {
	return len(t.attributes)
}

// Attribute returns the attribute descriptor at the given index
func (t *InformationTable) Attribute(index int) (*Attribute, error) {
	if index < 0 || index >= len(t.attributes) {
		return nil, fmt.Errorf("attribute index %d out of range [0,%d)", index, len(t.attributes))
	}
	return t.attributes[index], nil
}

// AttributeIndex returns the position of the named attribute
func (t *InformationTable) AttributeIndex(name string) (int, bool) {
	index, ok := t.nameIndex[name]
	return index, ok
}

// DecisionAttributeIndex returns the position of the active decision attribute
func (t *InformationTable) DecisionAttributeIndex() int {
	return t.decisionIndex
}

// Evaluation returns the value of one object on one attribute
func (t *InformationTable) Evaluation(objectIndex, attributeIndex int) (FieldValue, error) {
	if objectIndex < 0 || objectIndex >= len(t.rows) {
		return nil, fmt.Errorf("object index %d out of range [0,%d)", objectIndex, len(t.rows))
	}
	if attributeIndex < 0 || attributeIndex >= len(t.attributes) {
		return nil, fmt.Errorf("attribute index %d out of range [0,%d)", attributeIndex, len(t.attributes))
	}
	return t.rows[objectIndex][attributeIndex], nil
}

// Decision returns the decision value of one object
func (t *InformationTable) Decision(objectIndex int) (FieldValue, error) {
	return t.Evaluation(objectIndex, t.decisionIndex)
}

// ActiveConditionAttributeIndices returns, in declaration order, the indices
// of attributes eligible to appear in rule conditions
func (t *InformationTable) ActiveConditionAttributeIndices() []int {
	indices := make([]int, 0, len(t.attributes))
	for i, attribute := range t.attributes {
		if attribute.Active && attribute.Role == RoleCondition {
			indices = append(indices, i)
		}
	}
	return indices
}

// AllObjectIndices returns every object index in ascending order
func (t *InformationTable) AllObjectIndices() []int {
	indices := make([]int, len(t.rows))
	for i := range t.rows {
		indices[i] = i
	}
	return indices
}

// DistinctSortedValues returns the distinct values appearing on one attribute,
// sorted ascending by their three-way comparison. Used by threshold sweeps and
// condition generalization.
func (t *InformationTable) DistinctSortedValues(attributeIndex int) ([]FieldValue, error) {
	if attributeIndex < 0 || attributeIndex >= len(t.attributes) {
		return nil, fmt.Errorf("attribute index %d out of range [0,%d)", attributeIndex, len(t.attributes))
	}
	distinct := make([]FieldValue, 0, len(t.rows))
	for _, row := range t.rows {
		value := row[attributeIndex]
		duplicate := false
		for _, seen := range distinct {
			if value.CompareTo(seen) == ComparisonEqual {
				duplicate = true
				break
			}
		}
		if !duplicate {
			distinct = append(distinct, value)
		}
	}
	sort.SliceStable(distinct, func(i, j int) bool {
		return distinct[i].CompareTo(distinct[j]) == ComparisonLess
	})
	return distinct, nil
}

// DistinctSortedDecisions returns the distinct decision values sorted ascending
func (t *InformationTable) DistinctSortedDecisions() ([]FieldValue, error) {
	return t.DistinctSortedValues(t.decisionIndex)
}
