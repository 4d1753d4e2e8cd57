/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sets.go
Description: Approximated set abstractions for the Akaylee Miner. Defines the
ApproximatedSet contract consumed by rule induction together with the two
concrete kinds: ordered class unions (upward/downward at a limiting decision)
and explicit custom sets. Members derive directly from decision comparisons;
no approximation computation happens here.
*/

package approximations

import (
	"fmt"
	"sort"

	"github.com/kleascm/akaylee-miner/pkg/data"
)

// UnionKind identifies the shape of an approximated set
type UnionKind int

const (
	// UnionUpward marks the union of classes at least as good as the limit
	UnionUpward UnionKind = iota
	// UnionDownward marks the union of classes at most as good as the limit
	UnionDownward
	// SetExact marks an explicit, unordered set with an equality decision
	SetExact
)

// String returns a human-readable name for the union kind
func (k UnionKind) String() string {
	switch k {
	case UnionUpward:
		return "upward"
	case UnionDownward:
		return "downward"
	case SetExact:
		return "exact"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ApproximatedSet is a target region for rule induction: its members are the
// positive examples, its limiting decision shapes the rule's right-hand side,
// and Includes supports decision-specificity comparison between rules.
type ApproximatedSet interface {
	Name() string
	Kind() UnionKind
	LimitingDecision() data.FieldValue
	Objects() []int
	Contains(objectIndex int) bool
	ObjectCount() int
	Includes(other ApproximatedSet) bool
}

// ClassUnion is the upward or downward union of decision classes bounded by a
// limiting decision value. Membership is decided by comparing each object's
// decision against the limit.
type ClassUnion struct {
	kind     UnionKind
	limiting data.FieldValue
	members  []int
	present  map[int]bool
	name     string
}

// NewClassUnion builds a union over a table by scanning its decision column
func NewClassUnion(table *data.InformationTable, kind UnionKind, limiting data.FieldValue) (*ClassUnion, error) {
	if table == nil {
		return nil, fmt.Errorf("class union requires an information table")
	}
	if limiting == nil {
		return nil, fmt.Errorf("class union requires a limiting decision value")
	}
	if kind != UnionUpward && kind != UnionDownward {
		return nil, fmt.Errorf("class union kind must be upward or downward, got %s", kind)
	}

	members := make([]int, 0, table.ObjectCount())
	present := make(map[int]bool)
	for i := 0; i < table.ObjectCount(); i++ {
		decision, err := table.Decision(i)
		if err != nil {
			return nil, fmt.Errorf("reading decision of object %d: %w", i, err)
		}
		comparison := decision.CompareTo(limiting)
		if comparison == data.ComparisonIncomparable {
			return nil, fmt.Errorf("decision of object %d (%s) incomparable with limiting value %s",
				i, decision, limiting)
		}
		inUnion := comparison == data.ComparisonEqual ||
			(kind == UnionUpward && comparison == data.ComparisonGreater) ||
			(kind == UnionDownward && comparison == data.ComparisonLess)
		if inUnion {
			members = append(members, i)
			present[i] = true
		}
	}

	operator := ">="
	if kind == UnionDownward {
		operator = "<="
	}
	return &ClassUnion{
		kind:     kind,
		limiting: limiting,
		members:  members,
		present:  present,
		name:     fmt.Sprintf("class%s%s", operator, limiting),
	}, nil
}

// Name returns the display name of the union
func (u *ClassUnion) Name() string {
	return u.name
}

// Kind returns whether this is an upward or downward union
func (u *ClassUnion) Kind() UnionKind {
	return u.kind
}

// LimitingDecision returns the decision value bounding the union
func (u *ClassUnion) LimitingDecision() data.FieldValue {
	return u.limiting
}

// Objects returns the member object indices in ascending order
func (u *ClassUnion) Objects() []int {
	objects := make([]int, len(u.members))
	copy(objects, u.members)
	return objects
}

// Contains reports whether the object belongs to the union
func (u *ClassUnion) Contains(objectIndex int) bool {
	return u.present[objectIndex]
}

// ObjectCount returns the number of member objects
func (u *ClassUnion) ObjectCount() int {
	return len(u.members)
}

// Includes reports whether every member of other belongs to this union. For
// unions of the same kind the limiting decisions decide directly; otherwise
// membership is tested element by element.
func (u *ClassUnion) Includes(other ApproximatedSet) bool {
	if other == nil {
		return false
	}
	if otherUnion, ok := other.(*ClassUnion); ok && otherUnion.kind == u.kind {
		comparison := otherUnion.limiting.CompareTo(u.limiting)
		if comparison != data.ComparisonIncomparable {
			if u.kind == UnionUpward {
				// A higher limit selects a subset of a lower one
				return comparison == data.ComparisonEqual || comparison == data.ComparisonGreater
			}
			return comparison == data.ComparisonEqual || comparison == data.ComparisonLess
		}
	}
	for _, objectIndex := range other.Objects() {
		if !u.present[objectIndex] {
			return false
		}
	}
	return true
}

// CustomSet is an explicitly enumerated approximated set with an equality
// decision, used for unordered concepts and test fixtures.
type CustomSet struct {
	name     string
	limiting data.FieldValue
	members  []int
	present  map[int]bool
}

// NewCustomSet creates a set from explicit member indices
func NewCustomSet(name string, limiting data.FieldValue, memberIndices []int) (*CustomSet, error) {
	if name == "" {
		return nil, fmt.Errorf("custom set requires a name")
	}
	if limiting == nil {
		return nil, fmt.Errorf("custom set requires a limiting decision value")
	}
	present := make(map[int]bool, len(memberIndices))
	members := make([]int, 0, len(memberIndices))
	for _, objectIndex := range memberIndices {
		if objectIndex < 0 {
			return nil, fmt.Errorf("custom set %q has negative object index %d", name, objectIndex)
		}
		if !present[objectIndex] {
			present[objectIndex] = true
			members = append(members, objectIndex)
		}
	}
	sort.Ints(members)
	return &CustomSet{
		name:     name,
		limiting: limiting,
		members:  members,
		present:  present,
	}, nil
}

// Name returns the display name of the set
func (s *CustomSet) Name() string {
	return s.name
}

// Kind returns the exact set kind
func (s *CustomSet) Kind() UnionKind {
	return SetExact
}

// LimitingDecision returns the decision value attached to the set
func (s *CustomSet) LimitingDecision() data.FieldValue {
	return s.limiting
}

// Objects returns the member object indices in ascending order
func (s *CustomSet) Objects() []int {
	objects := make([]int, len(s.members))
	copy(objects, s.members)
	return objects
}

// Contains reports whether the object belongs to the set
func (s *CustomSet) Contains(objectIndex int) bool {
	return s.present[objectIndex]
}

// ObjectCount returns the number of member objects
func (s *CustomSet) ObjectCount() int {
	return len(s.members)
}

// Includes reports whether every member of other belongs to this set
func (s *CustomSet) Includes(other ApproximatedSet) bool {
	if other == nil {
		return false
	}
	for _, objectIndex := range other.Objects() {
		if !s.present[objectIndex] {
			return false
		}
	}
	return true
}
