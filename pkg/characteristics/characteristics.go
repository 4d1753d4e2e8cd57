/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: characteristics.go
Description: Quality measures for decision rules in the Akaylee Miner. Computes
support, strength, confidence, coverage factor, epsilon, and rule length from a
rule's coverage against an information table. Consumed by the reporting layer
and the CLI.
*/

package characteristics

import (
	"fmt"

	"github.com/kleascm/akaylee-miner/pkg/data"
	"github.com/kleascm/akaylee-miner/pkg/rules"
)

// RuleCharacteristics holds the quality measures of one decision rule
// evaluated against an information table. Support counts covered objects
// that match the rule's decision part; coverage counts all covered objects.
// Strength is support over all objects, confidence is support over coverage,
// coverage factor is support over all objects matching the decision part,
// and epsilon is negative coverage over all objects missing the decision
// part. Ratios with a zero denominator are reported as zero.
type RuleCharacteristics struct {
	Support          int     `json:"support"`
	Coverage         int     `json:"coverage"`
	NegativeCoverage int     `json:"negative_coverage"`
	Strength         float64 `json:"strength"`
	Confidence       float64 `json:"confidence"`
	CoverageFactor   float64 `json:"coverage_factor"`
	Epsilon          float64 `json:"epsilon"`
	Length           int     `json:"length"`
}

// ForRule computes the characteristics of a single rule against a table
func ForRule(rule *rules.Rule, table *data.InformationTable) (*RuleCharacteristics, error) {
	if rule == nil {
		return nil, fmt.Errorf("characteristics require a rule")
	}
	if table == nil {
		return nil, fmt.Errorf("characteristics require an information table")
	}

	info, err := rules.NewRuleCoverageInformation(rule, table)
	if err != nil {
		return nil, fmt.Errorf("computing rule coverage: %w", err)
	}

	decisionMatches := 0
	for i := 0; i < table.ObjectCount(); i++ {
		matches, err := rule.DecisionsSatisfiedBy(i, table)
		if err != nil {
			return nil, fmt.Errorf("counting decision matches: %w", err)
		}
		if matches {
			decisionMatches++
		}
	}

	result := &RuleCharacteristics{
		Support:          info.SupportCount(),
		Coverage:         info.CoveredCount(),
		NegativeCoverage: len(info.NonSupportingObjects),
		Length:           rule.ConditionCount(),
	}

	total := info.AllObjectsCount
	if total > 0 {
		result.Strength = float64(result.Support) / float64(total)
	}
	if result.Coverage > 0 {
		result.Confidence = float64(result.Support) / float64(result.Coverage)
	}
	if decisionMatches > 0 {
		result.CoverageFactor = float64(result.Support) / float64(decisionMatches)
	}
	if negatives := total - decisionMatches; negatives > 0 {
		result.Epsilon = float64(result.NegativeCoverage) / float64(negatives)
	}

	return result, nil
}

// ForRuleSet computes characteristics for every rule in the set, in the
// set's insertion order
func ForRuleSet(ruleSet *rules.RuleSet, table *data.InformationTable) ([]*RuleCharacteristics, error) {
	if ruleSet == nil {
		return nil, fmt.Errorf("characteristics require a rule set")
	}

	all := ruleSet.GetAll()
	results := make([]*RuleCharacteristics, 0, len(all))
	for _, rule := range all {
		result, err := ForRule(rule, table)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.ID(), err)
		}
		results = append(results, result)
	}
	return results, nil
}

// String renders the headline measures on one line
func (c *RuleCharacteristics) String() string {
	return fmt.Sprintf("support=%d coverage=%d strength=%.3f confidence=%.3f coverage_factor=%.3f epsilon=%.3f length=%d",
		c.Support, c.Coverage, c.Strength, c.Confidence, c.CoverageFactor, c.Epsilon, c.Length)
}
