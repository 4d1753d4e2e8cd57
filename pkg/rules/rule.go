/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rule.go
Description: Immutable decision rules for the Akaylee Miner. A rule freezes an
accepted conjunction of conditions together with its OR-connected decision
conditions, rule type, and semantics. Decisions come from a provider mapping
the target approximated set to right-hand-side conditions.
*/

package rules

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kleascm/akaylee-miner/pkg/approximations"
	"github.com/kleascm/akaylee-miner/pkg/data"
)

// RuleType distinguishes the consistency grade a rule was induced under
type RuleType int

const (
	RuleCertain RuleType = iota
	RulePossible
	RuleApproximate
)

// String returns a human-readable name for the rule type
func (t RuleType) String() string {
	switch t {
	case RuleCertain:
		return "certain"
	case RulePossible:
		return "possible"
	case RuleApproximate:
		return "approximate"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// RuleSemantics is the direction of a rule's decision part
type RuleSemantics int

const (
	SemanticsAtLeast RuleSemantics = iota
	SemanticsAtMost
	SemanticsEqual
)

// String returns a human-readable name for the rule semantics
func (s RuleSemantics) String() string {
	switch s {
	case SemanticsAtLeast:
		return "at-least"
	case SemanticsAtMost:
		return "at-most"
	case SemanticsEqual:
		return "equal"
	default:
		return fmt.Sprintf("semantics(%d)", int(s))
	}
}

// SemanticsForSet maps an approximated set's kind to rule semantics
func SemanticsForSet(set approximations.ApproximatedSet) RuleSemantics {
	switch set.Kind() {
	case approximations.UnionUpward:
		return SemanticsAtLeast
	case approximations.UnionDownward:
		return SemanticsAtMost
	default:
		return SemanticsEqual
	}
}

// Rule is an immutable decision rule: AND-connected conditions implying
// OR-connected decision conditions
type Rule struct {
	id               string
	ruleType         RuleType
	semantics        RuleSemantics
	inherentDecision data.FieldValue
	conditions       []Condition
	decisions        []Condition
}

// NewRule creates a rule from explicit parts. Most callers build rules from
// accepted conditions via BuildRule.
func NewRule(ruleType RuleType, semantics RuleSemantics, inherentDecision data.FieldValue,
	conditions, decisions []Condition) (*Rule, error) {
	if inherentDecision == nil {
		return nil, fmt.Errorf("rule requires an inherent decision value")
	}
	if len(decisions) == 0 {
		return nil, fmt.Errorf("rule requires at least one decision condition")
	}
	ownConditions := make([]Condition, len(conditions))
	copy(ownConditions, conditions)
	ownDecisions := make([]Condition, len(decisions))
	copy(ownDecisions, decisions)
	return &Rule{
		id:               uuid.New().String(),
		ruleType:         ruleType,
		semantics:        semantics,
		inherentDecision: inherentDecision,
		conditions:       ownConditions,
		decisions:        ownDecisions,
	}, nil
}

// ID returns the rule's unique identifier
func (r *Rule) ID() string {
	return r.id
}

// Type returns the rule's consistency grade
func (r *Rule) Type() RuleType {
	return r.ruleType
}

// Semantics returns the direction of the rule's decision part
func (r *Rule) Semantics() RuleSemantics {
	return r.semantics
}

// InherentDecision returns the decision value the rule was induced for
func (r *Rule) InherentDecision() data.FieldValue {
	return r.inherentDecision
}

// Conditions returns a copy of the rule's conditions in insertion order
func (r *Rule) Conditions() []Condition {
	conditions := make([]Condition, len(r.conditions))
	copy(conditions, r.conditions)
	return conditions
}

// ConditionCount returns the number of elementary conditions
func (r *Rule) ConditionCount() int {
	return len(r.conditions)
}

// Decisions returns a copy of the rule's decision conditions
func (r *Rule) Decisions() []Condition {
	decisions := make([]Condition, len(r.decisions))
	copy(decisions, r.decisions)
	return decisions
}

// Covers reports whether every condition is satisfied by the object
func (r *Rule) Covers(objectIndex int, table *data.InformationTable) (bool, error) {
	for _, condition := range r.conditions {
		satisfied, err := condition.SatisfiedBy(objectIndex, table)
		if err != nil {
			return false, fmt.Errorf("rule %s: %w", r.id, err)
		}
		if !satisfied {
			return false, nil
		}
	}
	return true, nil
}

// DecisionsSatisfiedBy reports whether the object's decision satisfies any of
// the rule's decision conditions
func (r *Rule) DecisionsSatisfiedBy(objectIndex int, table *data.InformationTable) (bool, error) {
	for _, decision := range r.decisions {
		satisfied, err := decision.SatisfiedBy(objectIndex, table)
		if err != nil {
			return false, fmt.Errorf("rule %s: %w", r.id, err)
		}
		if satisfied {
			return true, nil
		}
	}
	return false, nil
}

// SupportedBy reports whether the object both matches the conditions and
// satisfies the decision part
func (r *Rule) SupportedBy(objectIndex int, table *data.InformationTable) (bool, error) {
	covers, err := r.Covers(objectIndex, table)
	if err != nil || !covers {
		return false, err
	}
	return r.DecisionsSatisfiedBy(objectIndex, table)
}

// String renders the rule as "(c1) & (c2) => (d1) OR (d2)"
func (r *Rule) String() string {
	var builder strings.Builder
	if len(r.conditions) == 0 {
		builder.WriteString("(true)")
	}
	for i, condition := range r.conditions {
		if i > 0 {
			builder.WriteString(" & ")
		}
		fmt.Fprintf(&builder, "(%s)", condition)
	}
	builder.WriteString(" => ")
	for i, decision := range r.decisions {
		if i > 0 {
			builder.WriteString(" OR ")
		}
		fmt.Fprintf(&builder, "(%s)", decision)
	}
	return builder.String()
}

// DecisionsProvider maps an approximated set to the decision conditions placed
// on a rule's right-hand side
type DecisionsProvider interface {
	Decisions(set approximations.ApproximatedSet, table *data.InformationTable) ([]Condition, error)
}

// StandardDecisionsProvider produces a single decision condition on the active
// decision attribute, directed by the set's kind
type StandardDecisionsProvider struct{}

// NewStandardDecisionsProvider creates the default decisions provider
func NewStandardDecisionsProvider() *StandardDecisionsProvider {
	return &StandardDecisionsProvider{}
}

// Decisions builds the decision condition for the approximated set
func (p *StandardDecisionsProvider) Decisions(set approximations.ApproximatedSet,
	table *data.InformationTable) ([]Condition, error) {
	if set == nil {
		return nil, fmt.Errorf("decisions provider requires an approximated set")
	}
	if table == nil {
		return nil, fmt.Errorf("decisions provider requires an information table")
	}
	relation := RelationEqual
	switch set.Kind() {
	case approximations.UnionUpward:
		relation = RelationAtLeast
	case approximations.UnionDownward:
		relation = RelationAtMost
	}
	condition, err := NewCondition(table, table.DecisionAttributeIndex(), relation, set.LimitingDecision())
	if err != nil {
		return nil, fmt.Errorf("building decision condition for %s: %w", set.Name(), err)
	}
	return []Condition{condition}, nil
}

// BuildRule freezes accepted rule conditions into an immutable rule, with the
// decision part supplied by the provider for the target set
func BuildRule(ruleConditions *RuleConditions, set approximations.ApproximatedSet,
	provider DecisionsProvider) (*Rule, error) {
	if ruleConditions == nil {
		return nil, fmt.Errorf("building rule requires rule conditions")
	}
	if provider == nil {
		return nil, fmt.Errorf("building rule requires a decisions provider")
	}
	decisions, err := provider.Decisions(set, ruleConditions.Table())
	if err != nil {
		return nil, fmt.Errorf("building rule for %s: %w", set.Name(), err)
	}
	rule, err := NewRule(ruleConditions.RuleType(), ruleConditions.Semantics(),
		set.LimitingDecision(), ruleConditions.Conditions(), decisions)
	if err != nil {
		return nil, fmt.Errorf("building rule for %s: %w", set.Name(), err)
	}
	ruleConditions.Freeze()
	return rule, nil
}
