/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reporter.go
Description: Reporter interface and implementations for induction telemetry.
Allows the engine to notify listeners of concept and rule lifecycle events as
the covering loop runs.
*/

package core

import (
	"github.com/sirupsen/logrus"

	"github.com/kleascm/akaylee-miner/pkg/approximations"
	"github.com/kleascm/akaylee-miner/pkg/rules"
)

// Reporter defines the interface for telemetry and reporting hooks.
// Allows the engine to notify listeners of covering loop events.
type Reporter interface {
	// OnConceptStarted is called when the covering loop begins a new
	// approximated set.
	OnConceptStarted(set approximations.ApproximatedSet)
	// OnRuleAccepted is called when a grown rule passes the minimality check.
	OnRuleAccepted(entry *rules.RuleConditionsWithApproximatedSet)
	// OnCandidateDiscarded is called when a grown rule is dominated by an
	// already accepted one.
	OnCandidateDiscarded(entry *rules.RuleConditionsWithApproximatedSet)
	// OnConceptFinished is called after set pruning with the kept and
	// dropped rule counts.
	OnConceptFinished(set approximations.ApproximatedSet, kept int, dropped int)
}

// LoggerReporter logs covering loop events using the standard logger.
type LoggerReporter struct {
	logger *logrus.Logger
}

// NewLoggerReporter creates a new LoggerReporter.
func NewLoggerReporter(logger *logrus.Logger) *LoggerReporter {
	return &LoggerReporter{logger: logger}
}

// OnConceptStarted logs the beginning of a concept.
func (r *LoggerReporter) OnConceptStarted(set approximations.ApproximatedSet) {
	r.logger.WithFields(logrus.Fields{
		"concept":   set.Name(),
		"positives": set.ObjectCount(),
	}).Info("Concept covering started")
}

// OnRuleAccepted logs an accepted rule candidate.
func (r *LoggerReporter) OnRuleAccepted(entry *rules.RuleConditionsWithApproximatedSet) {
	r.logger.WithFields(logrus.Fields{
		"concept":    entry.ApproximatedSet.Name(),
		"conditions": entry.RuleConditions.Size(),
		"covered":    entry.RuleConditions.CoveredCount(),
	}).Info("Rule candidate accepted")
}

// OnCandidateDiscarded logs a dominated rule candidate.
func (r *LoggerReporter) OnCandidateDiscarded(entry *rules.RuleConditionsWithApproximatedSet) {
	r.logger.WithFields(logrus.Fields{
		"concept":    entry.ApproximatedSet.Name(),
		"conditions": entry.RuleConditions.Size(),
	}).Debug("Rule candidate discarded as non-minimal")
}

// OnConceptFinished logs the end of a concept.
func (r *LoggerReporter) OnConceptFinished(set approximations.ApproximatedSet, kept int, dropped int) {
	r.logger.WithFields(logrus.Fields{
		"concept": set.Name(),
		"kept":    kept,
		"dropped": dropped,
	}).Info("Concept covering finished")
}
