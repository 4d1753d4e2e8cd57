/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: fields.go
Description: Field value types for the Akaylee Miner. Implements integer, real,
and enumeration evaluation values with three-way comparison semantics, including
the incomparable outcome used when values of different kinds or different
enumeration domains meet.
*/

package data

import (
	"fmt"
	"strconv"
	"strings"
)

// ComparisonResult represents the outcome of comparing two field values
type ComparisonResult int

const (
	ComparisonLess ComparisonResult = iota
	ComparisonEqual
	ComparisonGreater
	ComparisonIncomparable
)

// String returns a human-readable name for the comparison result
func (r ComparisonResult) String() string {
	switch r {
	case ComparisonLess:
		return "less"
	case ComparisonEqual:
		return "equal"
	case ComparisonGreater:
		return "greater"
	case ComparisonIncomparable:
		return "incomparable"
	default:
		return fmt.Sprintf("comparison(%d)", int(r))
	}
}

// ValueKind identifies the concrete type of a field value
type ValueKind int

const (
	KindInteger ValueKind = iota
	KindReal
	KindEnumeration
)

// String returns a human-readable name for the value kind
func (k ValueKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindEnumeration:
		return "enumeration"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// FieldValue represents an object's evaluation on a single attribute.
// Values compare via a three-way result; values of different kinds or
// different enumeration domains are incomparable, never an error.
type FieldValue interface {
	CompareTo(other FieldValue) ComparisonResult
	Kind() ValueKind
	String() string
}

// IntegerField holds an integer evaluation value
type IntegerField struct {
	Value int
}

// NewIntegerField creates a new integer field value
func NewIntegerField(value int) IntegerField {
	return IntegerField{Value: value}
}

// CompareTo compares this value to another field value
func (f IntegerField) CompareTo(other FieldValue) ComparisonResult {
	o, ok := other.(IntegerField)
	if !ok {
		return ComparisonIncomparable
	}
	switch {
	case f.Value < o.Value:
		return ComparisonLess
	case f.Value > o.Value:
		return ComparisonGreater
	default:
		return ComparisonEqual
	}
}

// Kind returns the value kind of this field
func (f IntegerField) Kind() ValueKind {
	return KindInteger
}

// String returns the decimal representation of the value
func (f IntegerField) String() string {
	return strconv.Itoa(f.Value)
}

// RealField holds a real-valued evaluation
type RealField struct {
	Value float64
}

// NewRealField creates a new real field value
func NewRealField(value float64) RealField {
	return RealField{Value: value}
}

// CompareTo compares this value to another field value
func (f RealField) CompareTo(other FieldValue) ComparisonResult {
	o, ok := other.(RealField)
	if !ok {
		return ComparisonIncomparable
	}
	switch {
	case f.Value < o.Value:
		return ComparisonLess
	case f.Value > o.Value:
		return ComparisonGreater
	default:
		return ComparisonEqual
	}
}

// Kind returns the value kind of this field
func (f RealField) Kind() ValueKind {
	return KindReal
}

// String returns the shortest decimal representation of the value
func (f RealField) String() string {
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

// EnumerationDomain is an ordered list of element names shared by all
// enumeration values of one attribute. Order position drives comparison.
type EnumerationDomain struct {
	elements []string
	indices  map[string]int
}

// NewEnumerationDomain creates a domain from an ordered element list
func NewEnumerationDomain(elements []string) (*EnumerationDomain, error) {
	if len(elements) == 0 {
		return nil, fmt.Errorf("enumeration domain requires at least one element")
	}
	indices := make(map[string]int, len(elements))
	for i, element := range elements {
		if element == "" {
			return nil, fmt.Errorf("enumeration domain element %d is empty", i)
		}
		if _, exists := indices[element]; exists {
			return nil, fmt.Errorf("enumeration domain element %q appears twice", element)
		}
		indices[element] = i
	}
	return &EnumerationDomain{elements: elements, indices: indices}, nil
}

// Size returns the number of elements in the domain
func (d *EnumerationDomain) Size() int {
	return len(d.elements)
}

// Element returns the element name at the given position
func (d *EnumerationDomain) Element(index int) (string, error) {
	if index < 0 || index >= len(d.elements) {
		return "", fmt.Errorf("enumeration index %d out of range [0,%d)", index, len(d.elements))
	}
	return d.elements[index], nil
}

// IndexOf returns the position of an element name within the domain
func (d *EnumerationDomain) IndexOf(element string) (int, bool) {
	index, ok := d.indices[element]
	return index, ok
}

// String returns the domain as a bracketed element list
func (d *EnumerationDomain) String() string {
	return "[" + strings.Join(d.elements, ", ") + "]"
}

// EnumerationField holds one element of an ordered enumeration domain
type EnumerationField struct {
	Domain *EnumerationDomain
	Index  int
}

// NewEnumerationField creates an enumeration value by element name
func NewEnumerationField(domain *EnumerationDomain, element string) (EnumerationField, error) {
	if domain == nil {
		return EnumerationField{}, fmt.Errorf("enumeration field requires a domain")
	}
	index, ok := domain.IndexOf(element)
	if !ok {
		return EnumerationField{}, fmt.Errorf("element %q not in enumeration domain %s", element, domain)
	}
	return EnumerationField{Domain: domain, Index: index}, nil
}

// CompareTo compares this value to another field value. Values from
// different domains are incomparable even when element names collide.
func (f EnumerationField) CompareTo(other FieldValue) ComparisonResult {
	o, ok := other.(EnumerationField)
	if !ok || f.Domain != o.Domain {
		return ComparisonIncomparable
	}
	switch {
	case f.Index < o.Index:
		return ComparisonLess
	case f.Index > o.Index:
		return ComparisonGreater
	default:
		return ComparisonEqual
	}
}

// Kind returns the value kind of this field
func (f EnumerationField) Kind() ValueKind {
	return KindEnumeration
}

// String returns the element name of the value
func (f EnumerationField) String() string {
	if f.Domain == nil {
		return "?"
	}
	element, err := f.Domain.Element(f.Index)
	if err != nil {
		return "?"
	}
	return element
}
