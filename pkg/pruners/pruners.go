/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pruners.go
Description: Local condition pruners for the Akaylee Miner. After a rule
satisfies its stopping condition, these strategies drop conditions one at a
time, in FIFO or attribute declaration order, as long as the stopping
condition stays satisfied without them. Removal is tested through the
checker's hypothetical form and committed only on success.
*/

package pruners

import (
	"fmt"
	"sort"

	"github.com/kleascm/akaylee-miner/pkg/interfaces"
	"github.com/kleascm/akaylee-miner/pkg/rules"
)

// FIFOPruner tries to remove conditions oldest first
type FIFOPruner struct {
	checker interfaces.StoppingConditionChecker
}

// NewFIFOPruner creates a FIFO-order pruner bound to a stopping checker
func NewFIFOPruner(checker interfaces.StoppingConditionChecker) (*FIFOPruner, error) {
	if checker == nil {
		return nil, fmt.Errorf("FIFO pruner requires a stopping condition checker")
	}
	return &FIFOPruner{checker: checker}, nil
}

// Prune removes each droppable condition in append order
func (p *FIFOPruner) Prune(ruleConditions *rules.RuleConditions) error {
	if ruleConditions == nil {
		return fmt.Errorf("FIFO pruner requires rule conditions")
	}
	index := 0
	for index < ruleConditions.Size() {
		satisfied, err := p.checker.IsSatisfiedWithoutCondition(ruleConditions, index)
		if err != nil {
			return fmt.Errorf("probing condition %d: %w", index, err)
		}
		if !satisfied {
			index++
			continue
		}
		if err := ruleConditions.RemoveCondition(index); err != nil {
			return fmt.Errorf("removing condition %d: %w", index, err)
		}
		// The next oldest condition shifted into this slot
	}
	return nil
}

// Name returns the name of this pruner
func (p *FIFOPruner) Name() string {
	return "FIFOPruner"
}

// Description returns a description of this pruner
func (p *FIFOPruner) Description() string {
	return "Drops conditions oldest first while the stopping condition stays satisfied"
}

// AttributeOrderPruner tries to remove conditions following the declaration
// order of their attributes
type AttributeOrderPruner struct {
	checker interfaces.StoppingConditionChecker
}

// NewAttributeOrderPruner creates a declaration-order pruner bound to a
// stopping checker
func NewAttributeOrderPruner(checker interfaces.StoppingConditionChecker) (*AttributeOrderPruner, error) {
	if checker == nil {
		return nil, fmt.Errorf("attribute-order pruner requires a stopping condition checker")
	}
	return &AttributeOrderPruner{checker: checker}, nil
}

// Prune removes each droppable condition in attribute declaration order
func (p *AttributeOrderPruner) Prune(ruleConditions *rules.RuleConditions) error {
	if ruleConditions == nil {
		return fmt.Errorf("attribute-order pruner requires rule conditions")
	}
	traversal := ruleConditions.Conditions()
	sort.SliceStable(traversal, func(i, j int) bool {
		return traversal[i].AttributeIndex() < traversal[j].AttributeIndex()
	})
	for _, condition := range traversal {
		index, found := currentIndexOf(ruleConditions, condition)
		if !found {
			continue
		}
		satisfied, err := p.checker.IsSatisfiedWithoutCondition(ruleConditions, index)
		if err != nil {
			return fmt.Errorf("probing %s: %w", condition, err)
		}
		if !satisfied {
			continue
		}
		if err := ruleConditions.RemoveCondition(index); err != nil {
			return fmt.Errorf("removing %s: %w", condition, err)
		}
	}
	return nil
}

// Name returns the name of this pruner
func (p *AttributeOrderPruner) Name() string {
	return "AttributeOrderPruner"
}

// Description returns a description of this pruner
func (p *AttributeOrderPruner) Description() string {
	return "Drops conditions in attribute declaration order while the stopping condition stays satisfied"
}

// NoOpPruner keeps every condition
type NoOpPruner struct{}

// NewNoOpPruner creates a pruner that never removes anything
func NewNoOpPruner() *NoOpPruner {
	return &NoOpPruner{}
}

// Prune leaves the conditions untouched
func (p *NoOpPruner) Prune(ruleConditions *rules.RuleConditions) error {
	if ruleConditions == nil {
		return fmt.Errorf("pruner requires rule conditions")
	}
	return nil
}

// Name returns the name of this pruner
func (p *NoOpPruner) Name() string {
	return "NoOpPruner"
}

// Description returns a description of this pruner
func (p *NoOpPruner) Description() string {
	return "Keeps every condition"
}

// currentIndexOf locates a condition's present position after earlier removals
func currentIndexOf(ruleConditions *rules.RuleConditions, condition rules.Condition) (int, bool) {
	for i := 0; i < ruleConditions.Size(); i++ {
		current, err := ruleConditions.Condition(i)
		if err != nil {
			return 0, false
		}
		if current.Equal(condition) {
			return i, true
		}
	}
	return 0, false
}

// PrunerByName constructs the local pruner registered under a configuration
// name, bound to the given stopping checker
func PrunerByName(name string, checker interfaces.StoppingConditionChecker) (interfaces.RuleConditionsPruner, error) {
	switch name {
	case interfaces.PrunerFIFO:
		return NewFIFOPruner(checker)
	case interfaces.PrunerAttributeOrder:
		return NewAttributeOrderPruner(checker)
	case interfaces.PrunerNone:
		return NewNoOpPruner(), nil
	default:
		return nil, fmt.Errorf("unknown pruner order %q", name)
	}
}
