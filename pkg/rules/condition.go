/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: condition.go
Description: Elementary conditions for the Akaylee Miner. A condition is an
immutable attribute-relation-threshold predicate with a satisfaction test and
a pairwise generality comparison returning true, false, or uncomparable. The
generality comparison drives pruning and rule dominance.
*/

package rules

import (
	"fmt"

	"github.com/kleascm/akaylee-miner/pkg/data"
)

// Relation is the comparison a condition applies between an object's value
// and the condition's limiting value
type Relation int

const (
	RelationAtLeast Relation = iota
	RelationAtMost
	RelationEqual
)

// String returns the operator symbol for the relation
func (r Relation) String() string {
	switch r {
	case RelationAtLeast:
		return ">="
	case RelationAtMost:
		return "<="
	case RelationEqual:
		return "="
	default:
		return fmt.Sprintf("relation(%d)", int(r))
	}
}

// Ternary is a three-valued logic result used by generality comparison
type Ternary int

const (
	TernaryFalse Ternary = iota
	TernaryTrue
	TernaryUncomparable
)

// String returns a human-readable name for the ternary value
func (t Ternary) String() string {
	switch t {
	case TernaryFalse:
		return "false"
	case TernaryTrue:
		return "true"
	case TernaryUncomparable:
		return "uncomparable"
	default:
		return fmt.Sprintf("ternary(%d)", int(t))
	}
}

// Condition is an immutable elementary predicate over one attribute
type Condition struct {
	attributeIndex int
	attribute      *data.Attribute
	relation       Relation
	limiting       data.FieldValue
}

// NewCondition creates a condition on the attribute at the given table index.
// The limiting value must match the attribute's kind; enumeration limits must
// come from the attribute's own domain.
func NewCondition(table *data.InformationTable, attributeIndex int, relation Relation, limiting data.FieldValue) (Condition, error) {
	if table == nil {
		return Condition{}, fmt.Errorf("condition requires an information table")
	}
	attribute, err := table.Attribute(attributeIndex)
	if err != nil {
		return Condition{}, fmt.Errorf("resolving condition attribute: %w", err)
	}
	if !attribute.Active {
		return Condition{}, fmt.Errorf("attribute %q is inactive", attribute.Name)
	}
	if limiting == nil {
		return Condition{}, fmt.Errorf("condition on %q requires a limiting value", attribute.Name)
	}
	if limiting.Kind() != attribute.Kind {
		return Condition{}, fmt.Errorf("limiting value kind %s does not match attribute %q kind %s",
			limiting.Kind(), attribute.Name, attribute.Kind)
	}
	if enumLimit, ok := limiting.(data.EnumerationField); ok && enumLimit.Domain != attribute.Domain {
		return Condition{}, fmt.Errorf("limiting value domain does not match attribute %q domain", attribute.Name)
	}
	return Condition{
		attributeIndex: attributeIndex,
		attribute:      attribute,
		relation:       relation,
		limiting:       limiting,
	}, nil
}

// AttributeIndex returns the table index of the condition's attribute
func (c Condition) AttributeIndex() int {
	return c.attributeIndex
}

// Attribute returns the condition's attribute descriptor
func (c Condition) Attribute() *data.Attribute {
	return c.attribute
}

// Relation returns the condition's relation
func (c Condition) Relation() Relation {
	return c.relation
}

// LimitingValue returns the condition's threshold value
func (c Condition) LimitingValue() data.FieldValue {
	return c.limiting
}

// SatisfiedByValue applies the relation to a single evaluation value.
// Incomparable values never satisfy a condition.
func (c Condition) SatisfiedByValue(value data.FieldValue) bool {
	if value == nil {
		return false
	}
	switch value.CompareTo(c.limiting) {
	case data.ComparisonEqual:
		return true
	case data.ComparisonGreater:
		return c.relation == RelationAtLeast
	case data.ComparisonLess:
		return c.relation == RelationAtMost
	default:
		return false
	}
}

// SatisfiedBy reports whether the object's evaluation satisfies the condition
func (c Condition) SatisfiedBy(objectIndex int, table *data.InformationTable) (bool, error) {
	value, err := table.Evaluation(objectIndex, c.attributeIndex)
	if err != nil {
		return false, fmt.Errorf("evaluating condition %s: %w", c, err)
	}
	return c.SatisfiedByValue(value), nil
}

// IsAtMostAsGeneralAs reports whether this condition's satisfaction set is a
// subset of the other's. Conditions on different attributes or with different
// relations are uncomparable, as are incomparable limiting values.
func (c Condition) IsAtMostAsGeneralAs(other Condition) Ternary {
	if c.attributeIndex != other.attributeIndex || c.relation != other.relation {
		return TernaryUncomparable
	}
	comparison := c.limiting.CompareTo(other.limiting)
	if comparison == data.ComparisonIncomparable {
		return TernaryUncomparable
	}
	switch c.relation {
	case RelationAtLeast:
		// A higher lower bound admits fewer objects
		if comparison == data.ComparisonEqual || comparison == data.ComparisonGreater {
			return TernaryTrue
		}
		return TernaryFalse
	case RelationAtMost:
		if comparison == data.ComparisonEqual || comparison == data.ComparisonLess {
			return TernaryTrue
		}
		return TernaryFalse
	case RelationEqual:
		if comparison == data.ComparisonEqual {
			return TernaryTrue
		}
		return TernaryFalse
	default:
		return TernaryUncomparable
	}
}

// Equal reports whether two conditions are identical predicates
func (c Condition) Equal(other Condition) bool {
	return c.attributeIndex == other.attributeIndex &&
		c.relation == other.relation &&
		c.limiting.CompareTo(other.limiting) == data.ComparisonEqual
}

// String renders the condition as "attribute relation value"
func (c Condition) String() string {
	if c.attribute == nil {
		return "<empty condition>"
	}
	return fmt.Sprintf("%s %s %s", c.attribute.Name, c.relation, c.limiting)
}
