/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: types.go
Description: Core types for the Akaylee Miner engine. Defines the induction
statistics tracked across a mining run, updated atomically so telemetry can be
read while a run is in flight.
*/

package core

import (
	"sync/atomic"
	"time"
)

// InductionStats tracks overall statistics for a mining run
// Uses atomic operations for thread-safe updates
type InductionStats struct {
	// Covering progress
	ConceptsProcessed  int64 `json:"concepts_processed"`
	SeedsVisited       int64 `json:"seeds_visited"`
	ConditionsAppended int64 `json:"conditions_appended"`
	ConditionsPruned   int64 `json:"conditions_pruned"`
	ConditionsWidened  int64 `json:"conditions_widened"`

	// Candidate and rule outcomes
	CandidatesAccepted  int64 `json:"candidates_accepted"`
	CandidatesDiscarded int64 `json:"candidates_discarded"`
	RulesPrunedFromSets int64 `json:"rules_pruned_from_sets"`
	RulesFiltered       int64 `json:"rules_filtered"`
	RulesBuilt          int64 `json:"rules_built"`

	StartTime time.Time `json:"start_time"`
}

// IncrementConceptsProcessed atomically increments the processed concept counter
func (s *InductionStats) IncrementConceptsProcessed() {
	atomic.AddInt64(&s.ConceptsProcessed, 1)
}

// IncrementSeedsVisited atomically increments the visited seed counter
func (s *InductionStats) IncrementSeedsVisited() {
	atomic.AddInt64(&s.SeedsVisited, 1)
}

// IncrementConditionsAppended atomically increments the appended condition counter
func (s *InductionStats) IncrementConditionsAppended() {
	atomic.AddInt64(&s.ConditionsAppended, 1)
}

// AddConditionsPruned atomically adds to the pruned condition counter
func (s *InductionStats) AddConditionsPruned(count int64) {
	atomic.AddInt64(&s.ConditionsPruned, count)
}

// AddConditionsWidened atomically adds to the widened condition counter
func (s *InductionStats) AddConditionsWidened(count int64) {
	atomic.AddInt64(&s.ConditionsWidened, count)
}

// IncrementCandidatesAccepted atomically increments the accepted candidate counter
func (s *InductionStats) IncrementCandidatesAccepted() {
	atomic.AddInt64(&s.CandidatesAccepted, 1)
}

// IncrementCandidatesDiscarded atomically increments the discarded candidate counter
func (s *InductionStats) IncrementCandidatesDiscarded() {
	atomic.AddInt64(&s.CandidatesDiscarded, 1)
}

// AddRulesPrunedFromSets atomically adds to the set pruning drop counter
func (s *InductionStats) AddRulesPrunedFromSets(count int64) {
	atomic.AddInt64(&s.RulesPrunedFromSets, count)
}

// IncrementRulesFiltered atomically increments the final filter drop counter
func (s *InductionStats) IncrementRulesFiltered() {
	atomic.AddInt64(&s.RulesFiltered, 1)
}

// IncrementRulesBuilt atomically increments the built rule counter
func (s *InductionStats) IncrementRulesBuilt() {
	atomic.AddInt64(&s.RulesBuilt, 1)
}
