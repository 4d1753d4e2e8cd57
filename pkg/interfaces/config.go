/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config.go
Description: Engine configuration for the Akaylee Miner. Plain named fields
with documented defaults, validated at construction. Commands populate it from
config files, environment, and flags before handing it to the engine.
*/

package interfaces

import "fmt"

// Rule type names accepted by MinerConfig
const (
	RuleTypeCertain     = "certain"
	RuleTypePossible    = "possible"
	RuleTypeApproximate = "approximate"
)

// Allowed-negative-objects policy names accepted by MinerConfig
const (
	PolicyNamePositiveRegion             = "positive-region"
	PolicyNamePositiveAndBoundaryRegions = "positive-and-boundary-regions"
	PolicyNameAnyRegion                  = "any-region"
	PolicyNameApproximation              = "approximation"
)

// Condition generator names accepted by MinerConfig
const (
	GeneratorStandard = "standard"
	GeneratorM1       = "m1"
	GeneratorM4       = "m4"
)

// Pruner order names accepted by MinerConfig
const (
	PrunerFIFO           = "fifo"
	PrunerAttributeOrder = "attribute-order"
	PrunerNone           = "none"
)

// Evaluator names accepted by MinerConfig
const (
	EvaluatorEpsilon          = "epsilon"
	EvaluatorRoughMembership  = "rough-membership"
	EvaluatorPositiveCoverage = "positive-coverage"
	EvaluatorNegativeCoverage = "negative-coverage"
)

// Report format names accepted by MinerConfig
const (
	ReportText = "text"
	ReportJSON = "json"
)

// MinerConfig represents the configuration for the induction engine
type MinerConfig struct {
	// Induction behavior
	ConsistencyThreshold float64  // Stopping threshold for the primary evaluator
	RuleType             string   // certain, possible, approximate
	NegativePolicy       string   // Allowed-negative-objects policy name
	Generator            string   // standard, m1, m4
	Evaluators           []string // Lexicographic evaluator order; first is primary
	PrunerOrder          string   // fifo, attribute-order, none
	Generalize           bool     // Widen thresholds after pruning
	SetPrune             bool     // Per-concept set pruning
	CheckMinimality      bool     // Cross-rule dominance filtering

	// Concept scope
	UpwardUnions   bool
	DownwardUnions bool

	// Logging
	LogLevel string
	LogFile  string
	JSONLogs bool

	// Reporting
	OutputDir    string
	ReportFormat string // text, json
}

// DefaultMinerConfig returns the documented defaults: certain rules over both
// union families, epsilon-consistency at threshold 0, FIFO pruning with
// generalization, set pruning, and minimality checking all enabled
func DefaultMinerConfig() *MinerConfig {
	return &MinerConfig{
		ConsistencyThreshold: 0.0,
		RuleType:             RuleTypeCertain,
		NegativePolicy:       PolicyNamePositiveRegion,
		Generator:            GeneratorM4,
		Evaluators:           []string{EvaluatorEpsilon, EvaluatorPositiveCoverage},
		PrunerOrder:          PrunerFIFO,
		Generalize:           true,
		SetPrune:             true,
		CheckMinimality:      true,
		UpwardUnions:         true,
		DownwardUnions:       true,
		LogLevel:             "info",
		ReportFormat:         ReportText,
	}
}

// Validate checks the configuration for inconsistencies
func (c *MinerConfig) Validate() error {
	if c.ConsistencyThreshold < 0 {
		return fmt.Errorf("consistency threshold must be non-negative, got %f", c.ConsistencyThreshold)
	}
	switch c.RuleType {
	case RuleTypeCertain, RuleTypePossible, RuleTypeApproximate:
	default:
		return fmt.Errorf("unknown rule type %q", c.RuleType)
	}
	switch c.NegativePolicy {
	case PolicyNamePositiveRegion, PolicyNamePositiveAndBoundaryRegions, PolicyNameAnyRegion, PolicyNameApproximation:
	default:
		return fmt.Errorf("unknown negative policy %q", c.NegativePolicy)
	}
	switch c.Generator {
	case GeneratorStandard, GeneratorM1, GeneratorM4:
	default:
		return fmt.Errorf("unknown condition generator %q", c.Generator)
	}
	if len(c.Evaluators) == 0 {
		return fmt.Errorf("at least one evaluator is required")
	}
	for _, name := range c.Evaluators {
		switch name {
		case EvaluatorEpsilon, EvaluatorRoughMembership, EvaluatorPositiveCoverage, EvaluatorNegativeCoverage:
		default:
			return fmt.Errorf("unknown evaluator %q", name)
		}
	}
	switch c.PrunerOrder {
	case PrunerFIFO, PrunerAttributeOrder, PrunerNone:
	default:
		return fmt.Errorf("unknown pruner order %q", c.PrunerOrder)
	}
	if !c.UpwardUnions && !c.DownwardUnions {
		return fmt.Errorf("at least one union family must be enabled")
	}
	switch c.ReportFormat {
	case ReportText, ReportJSON:
	default:
		return fmt.Errorf("unknown report format %q", c.ReportFormat)
	}
	return nil
}
