/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: mine.go
Description: Mine command implementation for the Akaylee Miner. Handles the
main induction process with comprehensive configuration, dataset loading,
run reporting, and final statistics display.
*/

package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-miner/pkg/core"
	"github.com/kleascm/akaylee-miner/pkg/dataio"
	"github.com/kleascm/akaylee-miner/pkg/interfaces"
	"github.com/kleascm/akaylee-miner/pkg/reporting"
)

// RunMine executes a full rule induction run
func RunMine(cmd *cobra.Command, args []string) error {
	fmt.Println("⛏️  Akaylee Miner - Starting Induction Run")
	fmt.Println("=========================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create miner configuration
	config := createMinerConfig()

	// Perform dry run if requested
	if viper.GetBool("dry_run") {
		return performDryRun(config)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Setup file-backed logging
	logger, err := SetupFileLogging()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer logger.Close()

	// Load dataset
	dataPath := viper.GetString("data_path")
	attributesPath := viper.GetString("attributes_path")

	fmt.Printf("📁 Data file: %s\n", dataPath)
	fmt.Printf("📋 Attributes: %s\n", attributesPath)

	table, err := dataio.LoadDataset(dataPath, attributesPath)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	fmt.Printf("📊 Loaded %d objects with %d attributes\n", table.ObjectCount(), table.AttributeCount())
	fmt.Println()

	// Create induction engine
	engine, err := core.NewConfiguredEngine(config)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	engine.AddReporter(core.NewLoggerReporter(logger.GetLogger()))

	// Count the concepts the run will cover
	distinct, err := table.DistinctSortedDecisions()
	if err != nil {
		return fmt.Errorf("failed to read decision classes: %w", err)
	}
	concepts := 0
	if config.UpwardUnions {
		concepts += len(distinct) - 1
	}
	if config.DownwardUnions {
		concepts += len(distinct) - 1
	}

	logger.LogRunStarted(engine.RunID(), table.ObjectCount(), table.AttributeCount(), concepts, nil)

	// Mine rules
	start := time.Now()
	ruleSet, err := engine.Mine(table)
	if err != nil {
		return fmt.Errorf("mining failed: %w", err)
	}
	duration := time.Since(start)

	logger.LogRunFinished(engine.RunID(), ruleSet.Size(), duration, nil)

	// Print induced rules
	fmt.Printf("✅ Induction completed in %v\n", duration)
	fmt.Println()
	fmt.Println("📜 Induced Rules")
	fmt.Println("================")
	for i, rule := range ruleSet.GetAll() {
		fmt.Printf("%3d. %s\n", i+1, reporting.RenderRule(rule))
	}
	fmt.Println()

	// Generate run report
	report, err := reporting.BuildRunReport(table, ruleSet, engine.GetStats(), engine.RunID(), Version, duration)
	if err != nil {
		return fmt.Errorf("failed to build run report: %w", err)
	}

	generator, err := reporting.NewReportGenerator(viper.GetString("output_dir"), viper.GetString("report_format"), logger.GetLogger())
	if err != nil {
		return fmt.Errorf("failed to create report generator: %w", err)
	}

	path, err := generator.Generate(report)
	if err != nil {
		return fmt.Errorf("failed to generate run report: %w", err)
	}
	logger.LogReportWritten(path, viper.GetString("report_format"), nil)
	fmt.Printf("💾 Run report saved to: %s\n", path)

	// Print final statistics
	printFinalStats(engine, duration)

	fmt.Println("\n✨ Mining run completed!")
	return nil
}

// createMinerConfig creates the miner configuration from viper
func createMinerConfig() *interfaces.MinerConfig {
	return &interfaces.MinerConfig{
		ConsistencyThreshold: viper.GetFloat64("threshold"),
		RuleType:             viper.GetString("rule_type"),
		NegativePolicy:       viper.GetString("negative_policy"),
		Generator:            viper.GetString("generator"),
		Evaluators:           viper.GetStringSlice("evaluators"),
		PrunerOrder:          viper.GetString("pruner_order"),
		Generalize:           viper.GetBool("generalize"),
		SetPrune:             viper.GetBool("set_prune"),
		CheckMinimality:      viper.GetBool("check_minimality"),
		UpwardUnions:         viper.GetBool("upward_unions"),
		DownwardUnions:       viper.GetBool("downward_unions"),
		LogLevel:             viper.GetString("log_level"),
		JSONLogs:             viper.GetBool("json_logs"),
		OutputDir:            viper.GetString("output_dir"),
		ReportFormat:         viper.GetString("report_format"),
	}
}

// performDryRun validates configuration without starting induction
func performDryRun(config *interfaces.MinerConfig) error {
	fmt.Println("🔍 Performing dry run validation...")
	fmt.Println()

	// Validate configuration values
	if err := config.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	fmt.Printf("✅ Configuration: %s rules, %s generator, threshold %.3f\n",
		config.RuleType, config.Generator, config.ConsistencyThreshold)

	// Validate dataset files
	dataPath := viper.GetString("data_path")
	if _, err := os.Stat(dataPath); err != nil {
		return fmt.Errorf("data file validation failed: %w", err)
	}
	fmt.Printf("✅ Data file: %s\n", dataPath)

	attributesPath := viper.GetString("attributes_path")
	if _, err := os.Stat(attributesPath); err != nil {
		return fmt.Errorf("attributes file validation failed: %w", err)
	}
	fmt.Printf("✅ Attributes file: %s\n", attributesPath)

	// Parse the dataset without mining
	table, err := dataio.LoadDataset(dataPath, attributesPath)
	if err != nil {
		return fmt.Errorf("dataset validation failed: %w", err)
	}
	fmt.Printf("✅ Dataset: %d objects, %d attributes\n", table.ObjectCount(), table.AttributeCount())

	// Validate output directories
	dirs := []string{config.OutputDir, viper.GetString("log_dir")}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		fmt.Printf("✅ Output directory: %s\n", dir)
	}

	fmt.Println("\n✨ Dry run validation completed successfully!")
	fmt.Println("   Configuration is valid and ready for mining.")
	return nil
}

// printFinalStats prints comprehensive final statistics
func printFinalStats(engine *core.Engine, duration time.Duration) {
	stats := engine.GetStats()

	fmt.Println("\n📊 Final Statistics")
	fmt.Println("===================")
	fmt.Printf("Total Runtime: %v\n", duration)
	fmt.Printf("Concepts Processed: %d\n", stats.ConceptsProcessed)
	fmt.Printf("Seeds Visited: %d\n", stats.SeedsVisited)
	fmt.Printf("Conditions Appended: %d\n", stats.ConditionsAppended)
	fmt.Printf("Conditions Pruned: %d\n", stats.ConditionsPruned)
	fmt.Printf("Conditions Widened: %d\n", stats.ConditionsWidened)
	fmt.Printf("Candidates Accepted: %d\n", stats.CandidatesAccepted)
	fmt.Printf("Candidates Discarded: %d\n", stats.CandidatesDiscarded)
	fmt.Printf("Rules Pruned From Sets: %d\n", stats.RulesPrunedFromSets)
	fmt.Printf("Rules Filtered: %d\n", stats.RulesFiltered)
	fmt.Printf("Rules Built: %d\n", stats.RulesBuilt)
}
