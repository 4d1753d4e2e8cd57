/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: attributes.go
Description: Attribute model for the Akaylee Miner. Defines preference types,
attribute roles, and the attribute descriptor carried by information tables.
The preference type of an attribute decides which condition relations a rule
may place on it.
*/

package data

import "fmt"

// PreferenceType declares how an attribute's values relate to better outcomes
type PreferenceType int

const (
	// PreferenceNone marks an unordered attribute; only equality conditions apply
	PreferenceNone PreferenceType = iota
	// PreferenceGain marks an attribute where larger values are better
	PreferenceGain
	// PreferenceCost marks an attribute where smaller values are better
	PreferenceCost
)

// String returns a human-readable name for the preference type
func (p PreferenceType) String() string {
	switch p {
	case PreferenceNone:
		return "none"
	case PreferenceGain:
		return "gain"
	case PreferenceCost:
		return "cost"
	default:
		return fmt.Sprintf("preference(%d)", int(p))
	}
}

// AttributeRole distinguishes condition attributes from the decision attribute
type AttributeRole int

const (
	RoleCondition AttributeRole = iota
	RoleDecision
)

// String returns a human-readable name for the attribute role
func (r AttributeRole) String() string {
	switch r {
	case RoleCondition:
		return "condition"
	case RoleDecision:
		return "decision"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Attribute describes one column of an information table
type Attribute struct {
	Name       string
	Kind       ValueKind
	Preference PreferenceType
	Role       AttributeRole
	Active     bool
	Domain     *EnumerationDomain // Set only for enumeration attributes
}

// NewAttribute creates an active condition attribute
func NewAttribute(name string, kind ValueKind, preference PreferenceType) *Attribute {
	return &Attribute{
		Name:       name,
		Kind:       kind,
		Preference: preference,
		Role:       RoleCondition,
		Active:     true,
	}
}

// NewDecisionAttribute creates the active decision attribute
func NewDecisionAttribute(name string, kind ValueKind, preference PreferenceType) *Attribute {
	return &Attribute{
		Name:       name,
		Kind:       kind,
		Preference: preference,
		Role:       RoleDecision,
		Active:     true,
	}
}

// Validate checks internal consistency of the attribute descriptor
func (a *Attribute) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("attribute requires a name")
	}
	if a.Kind == KindEnumeration && a.Domain == nil {
		return fmt.Errorf("enumeration attribute %q requires a domain", a.Name)
	}
	if a.Kind != KindEnumeration && a.Domain != nil {
		return fmt.Errorf("attribute %q carries a domain but is not an enumeration", a.Name)
	}
	return nil
}

// String returns the attribute name with its preference marker
func (a *Attribute) String() string {
	return fmt.Sprintf("%s(%s,%s)", a.Name, a.Kind, a.Preference)
}
