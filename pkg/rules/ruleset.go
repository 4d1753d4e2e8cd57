/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: ruleset.go
Description: Rule set management for the Akaylee Miner. Provides storage and
retrieval of induced rules with insertion order preserved for reporting.
Implements thread-safe operations so observers can read while a run is live.
*/

package rules

import (
	"fmt"
	"sync"
)

// RuleSet manages the collection of accepted rules
// Preserves induction order and supports concurrent readers
type RuleSet struct {
	rules map[string]*Rule // Map of rule ID to rule
	order []string         // Rule IDs in induction order
	mu    sync.RWMutex     // Read-write mutex for thread safety
}

// NewRuleSet creates a new empty rule set
func NewRuleSet() *RuleSet {
	return &RuleSet{
		rules: make(map[string]*Rule),
		order: make([]string, 0, 16),
	}
}

// Add appends a rule to the set
// Returns an error on nil rules; re-adding an existing rule is a no-op
func (s *RuleSet) Add(rule *Rule) error {
	if rule == nil {
		return fmt.Errorf("cannot add nil rule")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rules[rule.ID()]; exists {
		return nil
	}
	s.rules[rule.ID()] = rule
	s.order = append(s.order, rule.ID())
	return nil
}

// Get retrieves a rule by ID
// Returns nil if the rule doesn't exist
func (s *RuleSet) Get(id string) *Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rules[id]
}

// At returns the rule at the given induction position
func (s *RuleSet) At(index int) (*Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.order) {
		return nil, fmt.Errorf("rule index %d out of range [0,%d)", index, len(s.order))
	}
	return s.rules[s.order[index]], nil
}

// Remove deletes a rule from the set
// Returns true if the rule was found and removed
func (s *RuleSet) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rules[id]; !exists {
		return false
	}
	delete(s.rules, id)
	for i, orderedID := range s.order {
		if orderedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Size returns the current number of rules in the set
func (s *RuleSet) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// GetAll returns all rules in induction order
func (s *RuleSet) GetAll() []*Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rules := make([]*Rule, 0, len(s.order))
	for _, id := range s.order {
		rules = append(rules, s.rules[id])
	}
	return rules
}

// BySemantics returns the rules carrying the given decision semantics,
// in induction order
func (s *RuleSet) BySemantics(semantics RuleSemantics) []*Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rules := make([]*Rule, 0, len(s.order))
	for _, id := range s.order {
		if s.rules[id].Semantics() == semantics {
			rules = append(rules, s.rules[id])
		}
	}
	return rules
}

// GetStats returns rule set statistics
// Provides information about rule set composition
func (s *RuleSet) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[string]interface{})
	stats["size"] = len(s.order)

	typeCount := make(map[string]int)
	semanticsCount := make(map[string]int)
	totalConditions := 0
	for _, id := range s.order {
		rule := s.rules[id]
		typeCount[rule.Type().String()]++
		semanticsCount[rule.Semantics().String()]++
		totalConditions += rule.ConditionCount()
	}

	stats["type_distribution"] = typeCount
	stats["semantics_distribution"] = semanticsCount
	stats["total_conditions"] = totalConditions
	if len(s.order) > 0 {
		stats["avg_conditions"] = float64(totalConditions) / float64(len(s.order))
	}

	return stats
}
