/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: ruleconditions.go
Description: Mutable rule condition accumulator for the Akaylee Miner. Owns the
ordered conjunction of elementary conditions being grown into a rule together
with its incrementally maintained coverage sets. Every structural change keeps
the covered set equal to the intersection of per-condition satisfaction sets.
*/

package rules

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kleascm/akaylee-miner/pkg/approximations"
	"github.com/kleascm/akaylee-miner/pkg/data"
)

// ErrFrozen is returned when mutating rule conditions already built into a rule
var ErrFrozen = errors.New("rule conditions are frozen")

// ErrConditionIndexOutOfRange is returned for out-of-range condition indices
var ErrConditionIndexOutOfRange = errors.New("condition index out of range")

// AllowedNegativesPolicy names which negative objects a rule's conditions may
// still cover without violating consistency
type AllowedNegativesPolicy int

const (
	PolicyPositiveRegion AllowedNegativesPolicy = iota
	PolicyPositiveAndBoundaryRegions
	PolicyAnyRegion
	PolicyApproximation
)

// String returns a human-readable name for the policy
func (p AllowedNegativesPolicy) String() string {
	switch p {
	case PolicyPositiveRegion:
		return "positive-region"
	case PolicyPositiveAndBoundaryRegions:
		return "positive-and-boundary-regions"
	case PolicyAnyRegion:
		return "any-region"
	case PolicyApproximation:
		return "approximation"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// RuleConditions is the in-progress conjunction of elementary conditions. It
// tracks which learning objects the conjunction covers, which objects count as
// positive for the target concept, which are neutral for consistency
// measurement, and which covered objects are tolerable under the configured
// allowed-negative-objects policy. Mutation stops once the conditions are
// frozen into a rule.
type RuleConditions struct {
	table      *data.InformationTable
	conditions []Condition

	covered        []int
	coveredPresent map[int]bool

	positive map[int]bool
	neutral  map[int]bool
	allowed  map[int]bool

	policy    AllowedNegativesPolicy
	ruleType  RuleType
	semantics RuleSemantics
	frozen    bool
}

// NewRuleConditions creates an empty conjunction for one target concept. The
// allowed set is positives plus neutrals plus the tolerable negatives the
// policy admits; the empty conjunction covers every object of the table.
func NewRuleConditions(table *data.InformationTable, positiveIndices, neutralIndices, allowedNegativeIndices []int,
	policy AllowedNegativesPolicy, ruleType RuleType, semantics RuleSemantics) (*RuleConditions, error) {
	if table == nil {
		return nil, fmt.Errorf("rule conditions require an information table")
	}
	if len(positiveIndices) == 0 {
		return nil, fmt.Errorf("rule conditions require at least one positive object")
	}

	objectCount := table.ObjectCount()
	positive := make(map[int]bool, len(positiveIndices))
	for _, objectIndex := range positiveIndices {
		if objectIndex < 0 || objectIndex >= objectCount {
			return nil, fmt.Errorf("positive object index %d out of range [0,%d)", objectIndex, objectCount)
		}
		positive[objectIndex] = true
	}
	neutral := make(map[int]bool, len(neutralIndices))
	for _, objectIndex := range neutralIndices {
		if objectIndex < 0 || objectIndex >= objectCount {
			return nil, fmt.Errorf("neutral object index %d out of range [0,%d)", objectIndex, objectCount)
		}
		neutral[objectIndex] = true
	}

	allowed := make(map[int]bool, len(positiveIndices)+len(neutralIndices)+len(allowedNegativeIndices))
	for objectIndex := range positive {
		allowed[objectIndex] = true
	}
	for objectIndex := range neutral {
		allowed[objectIndex] = true
	}
	for _, objectIndex := range allowedNegativeIndices {
		if objectIndex < 0 || objectIndex >= objectCount {
			return nil, fmt.Errorf("allowed negative object index %d out of range [0,%d)", objectIndex, objectCount)
		}
		allowed[objectIndex] = true
	}

	rc := &RuleConditions{
		table:          table,
		conditions:     make([]Condition, 0, 4),
		covered:        table.AllObjectIndices(),
		coveredPresent: make(map[int]bool, objectCount),
		positive:       positive,
		neutral:        neutral,
		allowed:        allowed,
		policy:         policy,
		ruleType:       ruleType,
		semantics:      semantics,
	}
	for _, objectIndex := range rc.covered {
		rc.coveredPresent[objectIndex] = true
	}
	return rc, nil
}

// Table returns the learning information table
func (rc *RuleConditions) Table() *data.InformationTable {
	return rc.table
}

// Policy returns the allowed-negative-objects policy
func (rc *RuleConditions) Policy() AllowedNegativesPolicy {
	return rc.policy
}

// RuleType returns the type of rule the conditions are grown for
func (rc *RuleConditions) RuleType() RuleType {
	return rc.ruleType
}

// Semantics returns the decision semantics of the target concept
func (rc *RuleConditions) Semantics() RuleSemantics {
	return rc.semantics
}

// Size returns the number of conditions in the conjunction
func (rc *RuleConditions) Size() int {
	return len(rc.conditions)
}

// Condition returns the condition at the given insertion position
func (rc *RuleConditions) Condition(index int) (Condition, error) {
	if index < 0 || index >= len(rc.conditions) {
		return Condition{}, fmt.Errorf("%w: %d not in [0,%d)", ErrConditionIndexOutOfRange, index, len(rc.conditions))
	}
	return rc.conditions[index], nil
}

// Conditions returns a copy of the conjunction in insertion order
func (rc *RuleConditions) Conditions() []Condition {
	conditions := make([]Condition, len(rc.conditions))
	copy(conditions, rc.conditions)
	return conditions
}

// ContainsConditionForAttribute reports whether any condition uses the attribute
func (rc *RuleConditions) ContainsConditionForAttribute(attributeIndex int) bool {
	for _, condition := range rc.conditions {
		if condition.AttributeIndex() == attributeIndex {
			return true
		}
	}
	return false
}

// ContainsCondition reports whether an identical predicate is already present
func (rc *RuleConditions) ContainsCondition(candidate Condition) bool {
	for _, condition := range rc.conditions {
		if condition.Equal(candidate) {
			return true
		}
	}
	return false
}

// CoveredObjects returns a copy of the covered object indices, ascending
func (rc *RuleConditions) CoveredObjects() []int {
	covered := make([]int, len(rc.covered))
	copy(covered, rc.covered)
	return covered
}

// CoveredCount returns the number of covered objects
func (rc *RuleConditions) CoveredCount() int {
	return len(rc.covered)
}

// Covers reports whether the object is covered by the current conjunction
func (rc *RuleConditions) Covers(objectIndex int) bool {
	return rc.coveredPresent[objectIndex]
}

// IsPositive reports whether the object supports the target concept
func (rc *RuleConditions) IsPositive(objectIndex int) bool {
	return rc.positive[objectIndex]
}

// IsNeutral reports whether the object is excluded from consistency measurement
func (rc *RuleConditions) IsNeutral(objectIndex int) bool {
	return rc.neutral[objectIndex]
}

// IsAllowed reports whether covering the object is tolerable under the policy
func (rc *RuleConditions) IsAllowed(objectIndex int) bool {
	return rc.allowed[objectIndex]
}

// PositiveObjects returns the positive object indices in ascending order
func (rc *RuleConditions) PositiveObjects() []int {
	positives := make([]int, 0, len(rc.positive))
	for objectIndex := range rc.positive {
		positives = append(positives, objectIndex)
	}
	sort.Ints(positives)
	return positives
}

// PositiveCount returns the number of positive objects
func (rc *RuleConditions) PositiveCount() int {
	return len(rc.positive)
}

// NegativeCount returns the number of objects that are neither positive nor
// neutral for this concept
func (rc *RuleConditions) NegativeCount() int {
	count := 0
	for i := 0; i < rc.table.ObjectCount(); i++ {
		if !rc.positive[i] && !rc.neutral[i] {
			count++
		}
	}
	return count
}

// Frozen reports whether the conditions were already built into a rule
func (rc *RuleConditions) Frozen() bool {
	return rc.frozen
}

// Freeze makes the conditions read-only. Called when a rule is built from them.
func (rc *RuleConditions) Freeze() {
	rc.frozen = true
}

// AddCondition appends a condition and narrows the covered set to the objects
// also satisfying it
func (rc *RuleConditions) AddCondition(condition Condition) error {
	if rc.frozen {
		return fmt.Errorf("adding condition %s: %w", condition, ErrFrozen)
	}
	remaining := make([]int, 0, len(rc.covered))
	for _, objectIndex := range rc.covered {
		satisfied, err := condition.SatisfiedBy(objectIndex, rc.table)
		if err != nil {
			return fmt.Errorf("adding condition %s: %w", condition, err)
		}
		if satisfied {
			remaining = append(remaining, objectIndex)
		} else {
			delete(rc.coveredPresent, objectIndex)
		}
	}
	rc.conditions = append(rc.conditions, condition)
	rc.covered = remaining
	return nil
}

// RemoveCondition deletes the condition at the given position and recomputes
// the covered set from the remaining conjunction
func (rc *RuleConditions) RemoveCondition(index int) error {
	if rc.frozen {
		return fmt.Errorf("removing condition %d: %w", index, ErrFrozen)
	}
	if index < 0 || index >= len(rc.conditions) {
		return fmt.Errorf("removing condition: %w: %d not in [0,%d)", ErrConditionIndexOutOfRange, index, len(rc.conditions))
	}
	rc.conditions = append(rc.conditions[:index], rc.conditions[index+1:]...)
	return rc.recomputeCovered()
}

// ReplaceCondition swaps the condition at the given position and recomputes
// the covered set. Used by generalization to widen a threshold in place.
func (rc *RuleConditions) ReplaceCondition(index int, condition Condition) error {
	if rc.frozen {
		return fmt.Errorf("replacing condition %d: %w", index, ErrFrozen)
	}
	if index < 0 || index >= len(rc.conditions) {
		return fmt.Errorf("replacing condition: %w: %d not in [0,%d)", ErrConditionIndexOutOfRange, index, len(rc.conditions))
	}
	rc.conditions[index] = condition
	return rc.recomputeCovered()
}

// CoveredIfAdded returns the covered set that would result from appending the
// condition, without mutating anything. Evaluators use this for hypothetical
// scoring.
func (rc *RuleConditions) CoveredIfAdded(condition Condition) ([]int, error) {
	covered := make([]int, 0, len(rc.covered))
	for _, objectIndex := range rc.covered {
		satisfied, err := condition.SatisfiedBy(objectIndex, rc.table)
		if err != nil {
			return nil, fmt.Errorf("probing condition %s: %w", condition, err)
		}
		if satisfied {
			covered = append(covered, objectIndex)
		}
	}
	return covered, nil
}

// CoveredIfRemoved returns the covered set that would result from deleting the
// condition at the given position, without mutating anything
func (rc *RuleConditions) CoveredIfRemoved(index int) ([]int, error) {
	if index < 0 || index >= len(rc.conditions) {
		return nil, fmt.Errorf("probing removal: %w: %d not in [0,%d)", ErrConditionIndexOutOfRange, index, len(rc.conditions))
	}
	covered := make([]int, 0, rc.table.ObjectCount())
	for i := 0; i < rc.table.ObjectCount(); i++ {
		satisfied, err := rc.satisfiedByAllExcept(i, index)
		if err != nil {
			return nil, err
		}
		if satisfied {
			covered = append(covered, i)
		}
	}
	return covered, nil
}

// recomputeCovered rebuilds the covered set from the full conjunction
func (rc *RuleConditions) recomputeCovered() error {
	covered := make([]int, 0, rc.table.ObjectCount())
	coveredPresent := make(map[int]bool, rc.table.ObjectCount())
	for i := 0; i < rc.table.ObjectCount(); i++ {
		satisfied, err := rc.satisfiedByAllExcept(i, -1)
		if err != nil {
			return err
		}
		if satisfied {
			covered = append(covered, i)
			coveredPresent[i] = true
		}
	}
	rc.covered = covered
	rc.coveredPresent = coveredPresent
	return nil
}

// satisfiedByAllExcept tests the conjunction against one object, optionally
// skipping the condition at skipIndex (-1 skips nothing)
func (rc *RuleConditions) satisfiedByAllExcept(objectIndex, skipIndex int) (bool, error) {
	for i, condition := range rc.conditions {
		if i == skipIndex {
			continue
		}
		satisfied, err := condition.SatisfiedBy(objectIndex, rc.table)
		if err != nil {
			return false, fmt.Errorf("testing object %d: %w", objectIndex, err)
		}
		if !satisfied {
			return false, nil
		}
	}
	return true, nil
}

// String renders the conjunction in insertion order
func (rc *RuleConditions) String() string {
	if len(rc.conditions) == 0 {
		return "<empty>"
	}
	parts := make([]string, len(rc.conditions))
	for i, condition := range rc.conditions {
		parts[i] = fmt.Sprintf("(%s)", condition)
	}
	return strings.Join(parts, " & ")
}

// RuleConditionsWithApproximatedSet pairs grown conditions with the target
// region they were grown for. Set pruning and minimality checking operate on
// this pairing because dominance needs both the condition geometry and the
// decision specificity.
type RuleConditionsWithApproximatedSet struct {
	RuleConditions  *RuleConditions
	ApproximatedSet approximations.ApproximatedSet
}

// NewRuleConditionsWithApproximatedSet pairs conditions with their concept
func NewRuleConditionsWithApproximatedSet(ruleConditions *RuleConditions,
	approximatedSet approximations.ApproximatedSet) (*RuleConditionsWithApproximatedSet, error) {
	if ruleConditions == nil {
		return nil, fmt.Errorf("pairing requires rule conditions")
	}
	if approximatedSet == nil {
		return nil, fmt.Errorf("pairing requires an approximated set")
	}
	return &RuleConditionsWithApproximatedSet{
		RuleConditions:  ruleConditions,
		ApproximatedSet: approximatedSet,
	}, nil
}
