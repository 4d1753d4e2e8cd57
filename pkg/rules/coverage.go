/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: coverage.go
Description: Rule coverage snapshots for the Akaylee Miner. Derives read-only
coverage information from rules or rule conditions against an information
table, recording covered objects, their decisions, and which covered objects
fail to support the rule. Consumed by evaluators and characteristics.
*/

package rules

import (
	"fmt"

	"github.com/kleascm/akaylee-miner/pkg/data"
)

// BasicRuleCoverageInformation is a read-only snapshot of which objects a
// conjunction covers and what they decide
type BasicRuleCoverageInformation struct {
	CoveredObjects     []int
	DecisionsOfCovered map[int]data.FieldValue
	AllObjectsCount    int
}

// NewBasicRuleCoverageInformation snapshots the coverage of rule conditions
func NewBasicRuleCoverageInformation(ruleConditions *RuleConditions) (*BasicRuleCoverageInformation, error) {
	if ruleConditions == nil {
		return nil, fmt.Errorf("coverage snapshot requires rule conditions")
	}
	table := ruleConditions.Table()
	covered := ruleConditions.CoveredObjects()
	decisions := make(map[int]data.FieldValue, len(covered))
	for _, objectIndex := range covered {
		decision, err := table.Decision(objectIndex)
		if err != nil {
			return nil, fmt.Errorf("snapshotting coverage: %w", err)
		}
		decisions[objectIndex] = decision
	}
	return &BasicRuleCoverageInformation{
		CoveredObjects:     covered,
		DecisionsOfCovered: decisions,
		AllObjectsCount:    table.ObjectCount(),
	}, nil
}

// RuleCoverageInformation extends the basic snapshot with the split between
// covered objects that support the rule's decision part and those that do not
type RuleCoverageInformation struct {
	BasicRuleCoverageInformation
	SupportingObjects    []int
	NonSupportingObjects []int
}

// NewRuleCoverageInformation snapshots a finished rule's coverage against a table
func NewRuleCoverageInformation(rule *Rule, table *data.InformationTable) (*RuleCoverageInformation, error) {
	if rule == nil {
		return nil, fmt.Errorf("coverage snapshot requires a rule")
	}
	if table == nil {
		return nil, fmt.Errorf("coverage snapshot requires an information table")
	}

	covered := make([]int, 0, table.ObjectCount())
	decisions := make(map[int]data.FieldValue)
	supporting := make([]int, 0, table.ObjectCount())
	nonSupporting := make([]int, 0)

	for i := 0; i < table.ObjectCount(); i++ {
		covers, err := rule.Covers(i, table)
		if err != nil {
			return nil, fmt.Errorf("snapshotting rule coverage: %w", err)
		}
		if !covers {
			continue
		}
		covered = append(covered, i)
		decision, err := table.Decision(i)
		if err != nil {
			return nil, fmt.Errorf("snapshotting rule coverage: %w", err)
		}
		decisions[i] = decision

		supports, err := rule.DecisionsSatisfiedBy(i, table)
		if err != nil {
			return nil, fmt.Errorf("snapshotting rule coverage: %w", err)
		}
		if supports {
			supporting = append(supporting, i)
		} else {
			nonSupporting = append(nonSupporting, i)
		}
	}

	return &RuleCoverageInformation{
		BasicRuleCoverageInformation: BasicRuleCoverageInformation{
			CoveredObjects:     covered,
			DecisionsOfCovered: decisions,
			AllObjectsCount:    table.ObjectCount(),
		},
		SupportingObjects:    supporting,
		NonSupportingObjects: nonSupporting,
	}, nil
}

// CoveredCount returns the number of covered objects
func (c *BasicRuleCoverageInformation) CoveredCount() int {
	return len(c.CoveredObjects)
}

// SupportCount returns the number of covered objects supporting the rule
func (c *RuleCoverageInformation) SupportCount() int {
	return len(c.SupportingObjects)
}
