/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: Main induction engine implementation. Drives the sequential
covering loop over approximated sets: rules are grown condition by condition
from the still-uncovered positive objects until the stopping check passes,
then pruned, generalized, and admitted through minimality checking. All
components are dependency injected so search strategies and evaluation chains
stay pluggable.
*/

package core

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/akaylee-miner/pkg/approximations"
	"github.com/kleascm/akaylee-miner/pkg/data"
	"github.com/kleascm/akaylee-miner/pkg/evaluators"
	"github.com/kleascm/akaylee-miner/pkg/interfaces"
	"github.com/kleascm/akaylee-miner/pkg/pruners"
	"github.com/kleascm/akaylee-miner/pkg/rules"
	"github.com/kleascm/akaylee-miner/pkg/strategies"
	"github.com/sirupsen/logrus"
)

// Engine drives rule induction over an information table
// Components are injected before Initialize and stay fixed for the run
type Engine struct {
	config *interfaces.MinerConfig
	stats  *InductionStats
	logger *logrus.Logger
	runID  string

	// Core components
	generator   interfaces.ConditionGenerator
	checker     interfaces.StoppingConditionChecker
	pruner      interfaces.RuleConditionsPruner
	generalizer interfaces.RuleConditionsGeneralizer
	setPruner   interfaces.RuleConditionsSetPruner
	minimality  interfaces.RuleMinimalityChecker
	decisions   rules.DecisionsProvider

	// Seed selection and telemetry
	scheduler SeedScheduler
	reporters []Reporter

	// State management
	initialized bool
	mu          sync.RWMutex
}

// NewEngine creates a new induction engine instance
// Components are attached afterwards through the Set* methods
func NewEngine() *Engine {
	return &Engine{
		stats:     &InductionStats{StartTime: time.Now()},
		logger:    logrus.New(),
		scheduler: NewIndexOrderSeedScheduler(),
		runID:     uuid.New().String(),
	}
}

// NewConfiguredEngine assembles an engine entirely from configuration
// Every component is resolved by name through the package registries, wired
// through the regular dependency injection setters, and initialized
func NewConfiguredEngine(config *interfaces.MinerConfig) (*Engine, error) {
	if config == nil {
		return nil, fmt.Errorf("miner configuration required")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid miner configuration: %w", err)
	}

	additionEvaluators := make([]interfaces.ConditionAdditionEvaluator, 0, len(config.Evaluators))
	conditionsEvaluators := make([]interfaces.RuleConditionsEvaluator, 0, len(config.Evaluators))
	var primary evaluators.Evaluator
	for position, name := range config.Evaluators {
		evaluator, err := evaluators.ByName(name)
		if err != nil {
			return nil, fmt.Errorf("resolving evaluator %q: %w", name, err)
		}
		if position == 0 {
			primary = evaluator
		}
		additionEvaluators = append(additionEvaluators, evaluator)
		conditionsEvaluators = append(conditionsEvaluators, evaluator)
	}

	checker, err := evaluators.NewEvaluationAndCoverageChecker(primary, config.ConsistencyThreshold)
	if err != nil {
		return nil, fmt.Errorf("building stopping checker: %w", err)
	}
	generator, err := strategies.ByName(config.Generator, additionEvaluators)
	if err != nil {
		return nil, fmt.Errorf("building condition generator: %w", err)
	}
	pruner, err := pruners.PrunerByName(config.PrunerOrder, checker)
	if err != nil {
		return nil, fmt.Errorf("building pruner: %w", err)
	}
	generalizer, err := pruners.GeneralizerFor(config.Generalize, checker)
	if err != nil {
		return nil, fmt.Errorf("building generalizer: %w", err)
	}
	setPruner, err := pruners.SetPrunerFor(config.SetPrune, conditionsEvaluators)
	if err != nil {
		return nil, fmt.Errorf("building set pruner: %w", err)
	}
	minimality, err := pruners.MinimalityCheckerFor(config.CheckMinimality, primary)
	if err != nil {
		return nil, fmt.Errorf("building minimality checker: %w", err)
	}

	engine := NewEngine()
	engine.SetConditionGenerator(generator)
	engine.SetStoppingChecker(checker)
	engine.SetPruner(pruner)
	engine.SetGeneralizer(generalizer)
	engine.SetSetPruner(setPruner)
	engine.SetMinimalityChecker(minimality)
	if err := engine.Initialize(config); err != nil {
		return nil, err
	}
	return engine, nil
}

// SetConditionGenerator sets the best-condition search strategy for rule growth
func (e *Engine) SetConditionGenerator(generator interfaces.ConditionGenerator) {
	e.generator = generator
}

// SetStoppingChecker sets the consistency check that ends rule growth
func (e *Engine) SetStoppingChecker(checker interfaces.StoppingConditionChecker) {
	e.checker = checker
}

// SetPruner sets the per-rule condition pruner
func (e *Engine) SetPruner(pruner interfaces.RuleConditionsPruner) {
	e.pruner = pruner
}

// SetGeneralizer sets the per-rule threshold generalizer
func (e *Engine) SetGeneralizer(generalizer interfaces.RuleConditionsGeneralizer) {
	e.generalizer = generalizer
}

// SetSetPruner sets the per-concept rule set pruner
func (e *Engine) SetSetPruner(setPruner interfaces.RuleConditionsSetPruner) {
	e.setPruner = setPruner
}

// SetMinimalityChecker sets the cross-rule dominance filter
func (e *Engine) SetMinimalityChecker(checker interfaces.RuleMinimalityChecker) {
	e.minimality = checker
}

// SetDecisionsProvider sets the decision part builder for accepted rules
func (e *Engine) SetDecisionsProvider(provider rules.DecisionsProvider) {
	e.decisions = provider
}

// SetSeedScheduler sets the seed selection order for the covering loop
func (e *Engine) SetSeedScheduler(scheduler SeedScheduler) {
	e.scheduler = scheduler
}

// AddReporter registers a Reporter for induction telemetry
func (e *Engine) AddReporter(reporter Reporter) {
	e.reporters = append(e.reporters, reporter)
}

// Initialize sets up the induction engine with the given configuration
// Validates the configuration and verifies every injected component is present
func (e *Engine) Initialize(config *interfaces.MinerConfig) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if config == nil {
		return fmt.Errorf("miner configuration required")
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid miner configuration: %w", err)
	}
	e.config = config

	// Configure logging
	e.setupLogging()

	// Core components (set by dependency injection)
	if e.generator == nil {
		return fmt.Errorf("condition generator not set - use SetConditionGenerator() before Initialize()")
	}
	if e.checker == nil {
		return fmt.Errorf("stopping checker not set - use SetStoppingChecker() before Initialize()")
	}
	if e.pruner == nil {
		return fmt.Errorf("pruner not set - use SetPruner() before Initialize()")
	}
	if e.generalizer == nil {
		return fmt.Errorf("generalizer not set - use SetGeneralizer() before Initialize()")
	}
	if e.setPruner == nil {
		return fmt.Errorf("set pruner not set - use SetSetPruner() before Initialize()")
	}
	if e.minimality == nil {
		return fmt.Errorf("minimality checker not set - use SetMinimalityChecker() before Initialize()")
	}

	// Optional components fall back to the standard implementations
	if e.decisions == nil {
		e.decisions = rules.NewStandardDecisionsProvider()
	}
	if e.scheduler == nil {
		e.scheduler = NewIndexOrderSeedScheduler()
	}

	e.initialized = true
	e.logger.WithField("run_id", e.runID).Info("Miner engine initialized successfully")
	return nil
}

// setupLogging configures the logging system based on configuration
func (e *Engine) setupLogging() {
	level, err := logrus.ParseLevel(e.config.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	e.logger.SetLevel(level)

	if e.config.LogFile != "" {
		file, err := os.OpenFile(e.config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			e.logger.SetOutput(file)
		}
	}

	if e.config.JSONLogs {
		e.logger.SetFormatter(&logrus.JSONFormatter{})
	}
}

// Mine induces rules for every class union the configuration selects.
// Unions are visited most specific first within each family, upward before
// downward, so stronger decisions are already accepted when weaker candidates
// reach the minimality check.
func (e *Engine) Mine(table *data.InformationTable) (*rules.RuleSet, error) {
	e.mu.RLock()
	initialized := e.initialized
	e.mu.RUnlock()
	if !initialized {
		return nil, fmt.Errorf("engine not initialized - call Initialize() first")
	}
	if table == nil {
		return nil, fmt.Errorf("mining requires an information table")
	}

	provider, err := approximations.NewUnionProvider(table)
	if err != nil {
		return nil, fmt.Errorf("building union provider: %w", err)
	}
	ordered, err := provider.InductionOrder()
	if err != nil {
		return nil, fmt.Errorf("ordering class unions: %w", err)
	}

	sets := make([]approximations.ApproximatedSet, 0, len(ordered))
	for _, set := range ordered {
		if set.Kind() == approximations.UnionUpward && !e.config.UpwardUnions {
			continue
		}
		if set.Kind() == approximations.UnionDownward && !e.config.DownwardUnions {
			continue
		}
		sets = append(sets, set)
	}
	return e.MineSets(table, sets)
}

// MineSets runs the covering loop over the given approximated sets in order
// and builds the admitted rules
func (e *Engine) MineSets(table *data.InformationTable, sets []approximations.ApproximatedSet) (*rules.RuleSet, error) {
	e.mu.RLock()
	initialized := e.initialized
	e.mu.RUnlock()
	if !initialized {
		return nil, fmt.Errorf("engine not initialized - call Initialize() first")
	}
	if table == nil {
		return nil, fmt.Errorf("mining requires an information table")
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("mining requires at least one approximated set")
	}

	e.logger.WithFields(logrus.Fields{
		"run_id":     e.runID,
		"objects":    table.ObjectCount(),
		"attributes": table.AttributeCount(),
		"concepts":   len(sets),
	}).Info("Starting rule induction")

	accepted := make([]*rules.RuleConditionsWithApproximatedSet, 0)
	for _, set := range sets {
		if set == nil {
			return nil, fmt.Errorf("mining requires non-nil approximated sets")
		}
		for _, reporter := range e.reporters {
			reporter.OnConceptStarted(set)
		}

		entries, err := e.coverConcept(table, set, accepted)
		if err != nil {
			return nil, fmt.Errorf("covering %s: %w", set.Name(), err)
		}

		kept, err := e.setPruner.Prune(entries, set.Objects())
		if err != nil {
			return nil, fmt.Errorf("set pruning for %s: %w", set.Name(), err)
		}
		dropped := len(entries) - len(kept)
		e.stats.AddRulesPrunedFromSets(int64(dropped))
		e.stats.IncrementConceptsProcessed()
		for _, reporter := range e.reporters {
			reporter.OnConceptFinished(set, len(kept), dropped)
		}
		accepted = append(accepted, kept...)
	}

	// Final cross-concept minimality filter in concept order
	admitted := make([]*rules.RuleConditionsWithApproximatedSet, 0, len(accepted))
	for _, entry := range accepted {
		minimal, err := e.minimality.Check(admitted, entry)
		if err != nil {
			return nil, fmt.Errorf("final minimality filter: %w", err)
		}
		if !minimal {
			e.stats.IncrementRulesFiltered()
			continue
		}
		admitted = append(admitted, entry)
	}

	ruleSet := rules.NewRuleSet()
	for _, entry := range admitted {
		rule, err := rules.BuildRule(entry.RuleConditions, entry.ApproximatedSet, e.decisions)
		if err != nil {
			return nil, fmt.Errorf("building rule for %s: %w", entry.ApproximatedSet.Name(), err)
		}
		if err := ruleSet.Add(rule); err != nil {
			return nil, fmt.Errorf("adding rule to set: %w", err)
		}
		e.stats.IncrementRulesBuilt()
	}

	e.logger.WithFields(logrus.Fields{
		"run_id": e.runID,
		"rules":  ruleSet.Size(),
	}).Info("Rule induction finished")
	return ruleSet, nil
}

// coverConcept grows rules from uncovered seeds until the accepted rules
// cover every positive object of the set
func (e *Engine) coverConcept(table *data.InformationTable, set approximations.ApproximatedSet,
	acceptedSoFar []*rules.RuleConditionsWithApproximatedSet) ([]*rules.RuleConditionsWithApproximatedSet, error) {

	positives := set.Objects()
	allowedNegatives := e.allowedNegativesFor(table, set)
	policy := e.negativesPolicy()
	ruleType := e.ruleType()
	semantics := rules.SemanticsForSet(set)

	covered := make(map[int]bool, len(positives))
	entries := make([]*rules.RuleConditionsWithApproximatedSet, 0)

	for {
		seed := e.scheduler.Next(positives, covered)
		if seed < 0 {
			break
		}
		e.stats.IncrementSeedsVisited()

		ruleConditions, err := rules.NewRuleConditions(table, positives, nil, allowedNegatives,
			policy, ruleType, semantics)
		if err != nil {
			return nil, fmt.Errorf("preparing rule for seed %d: %w", seed, err)
		}
		if err := e.grow(ruleConditions, uncoveredOf(positives, covered), seed); err != nil {
			return nil, err
		}

		sizeBefore := ruleConditions.Size()
		if err := e.pruner.Prune(ruleConditions); err != nil {
			return nil, fmt.Errorf("pruning rule from seed %d: %w", seed, err)
		}
		e.stats.AddConditionsPruned(int64(sizeBefore - ruleConditions.Size()))

		widened, err := e.generalizer.Generalize(ruleConditions)
		if err != nil {
			return nil, fmt.Errorf("generalizing rule from seed %d: %w", seed, err)
		}
		e.stats.AddConditionsWidened(int64(widened))

		candidate, err := rules.NewRuleConditionsWithApproximatedSet(ruleConditions, set)
		if err != nil {
			return nil, fmt.Errorf("pairing rule from seed %d: %w", seed, err)
		}

		known := make([]*rules.RuleConditionsWithApproximatedSet, 0, len(acceptedSoFar)+len(entries))
		known = append(known, acceptedSoFar...)
		known = append(known, entries...)
		minimal, err := e.minimality.Check(known, candidate)
		if err != nil {
			return nil, fmt.Errorf("minimality check for seed %d: %w", seed, err)
		}

		// A dominating rule covers at least the candidate's objects, so the
		// candidate's positives are covered whether it was accepted or not
		for _, objectIndex := range ruleConditions.CoveredObjects() {
			if ruleConditions.IsPositive(objectIndex) {
				covered[objectIndex] = true
			}
		}

		if minimal {
			entries = append(entries, candidate)
			e.stats.IncrementCandidatesAccepted()
			for _, reporter := range e.reporters {
				reporter.OnRuleAccepted(candidate)
			}
		} else {
			e.stats.IncrementCandidatesDiscarded()
			for _, reporter := range e.reporters {
				reporter.OnCandidateDiscarded(candidate)
			}
		}
	}
	return entries, nil
}

// grow appends best conditions until the stopping check accepts the rule
// The candidate pool narrows to the still-uncovered positives the rule covers
func (e *Engine) grow(ruleConditions *rules.RuleConditions, pool []int, seed int) error {
	for {
		satisfied, err := e.checker.IsSatisfied(ruleConditions)
		if err != nil {
			return fmt.Errorf("stopping check for seed %d: %w", seed, err)
		}
		if satisfied {
			return nil
		}

		condition, err := e.generator.GetBestCondition(pool, ruleConditions)
		if err != nil {
			return fmt.Errorf("growing rule from seed %d: %w", seed, err)
		}
		if err := ruleConditions.AddCondition(condition); err != nil {
			return fmt.Errorf("appending condition for seed %d: %w", seed, err)
		}
		e.stats.IncrementConditionsAppended()
		e.logger.WithFields(logrus.Fields{
			"condition": condition.String(),
			"covered":   ruleConditions.CoveredCount(),
		}).Debug("Condition appended")

		pool = stillCovered(ruleConditions, pool)
	}
}

// stillCovered narrows the candidate pool to objects the rule still covers
func stillCovered(ruleConditions *rules.RuleConditions, pool []int) []int {
	narrowed := make([]int, 0, len(pool))
	for _, objectIndex := range pool {
		if ruleConditions.Covers(objectIndex) {
			narrowed = append(narrowed, objectIndex)
		}
	}
	return narrowed
}

// uncoveredOf returns the required objects not covered by accepted rules yet
func uncoveredOf(required []int, covered map[int]bool) []int {
	remaining := make([]int, 0, len(required))
	for _, objectIndex := range required {
		if !covered[objectIndex] {
			remaining = append(remaining, objectIndex)
		}
	}
	return remaining
}

// negativesPolicy maps the configured policy name to the rules package policy
func (e *Engine) negativesPolicy() rules.AllowedNegativesPolicy {
	switch e.config.NegativePolicy {
	case interfaces.PolicyNamePositiveAndBoundaryRegions:
		return rules.PolicyPositiveAndBoundaryRegions
	case interfaces.PolicyNameAnyRegion:
		return rules.PolicyAnyRegion
	case interfaces.PolicyNameApproximation:
		return rules.PolicyApproximation
	default:
		return rules.PolicyPositiveRegion
	}
}

// ruleType maps the configured rule type name to the rules package type
func (e *Engine) ruleType() rules.RuleType {
	switch e.config.RuleType {
	case interfaces.RuleTypePossible:
		return rules.RulePossible
	case interfaces.RuleTypeApproximate:
		return rules.RuleApproximate
	default:
		return rules.RuleCertain
	}
}

// allowedNegativesFor lists the extra negative objects a rule may keep
// covering when it stops. Class unions partition the table and leave no
// boundary between a union and its complement, so only the any-region policy
// admits extras.
func (e *Engine) allowedNegativesFor(table *data.InformationTable, set approximations.ApproximatedSet) []int {
	if e.config.NegativePolicy != interfaces.PolicyNameAnyRegion {
		return nil
	}
	extras := make([]int, 0, table.ObjectCount())
	for _, objectIndex := range table.AllObjectIndices() {
		if !set.Contains(objectIndex) {
			extras = append(extras, objectIndex)
		}
	}
	return extras
}

// GetStats returns a snapshot of the current induction statistics
func (e *Engine) GetStats() *InductionStats {
	stats := *e.stats
	return &stats
}

// RunID returns the unique identifier of this engine run
func (e *Engine) RunID() string {
	return e.runID
}
