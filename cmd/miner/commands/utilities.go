/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utilities.go
Description: Utility commands for the Akaylee Miner. Provides list-components,
self-check, and version functionality for system validation and discovery.
*/

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ListComponents lists all available induction components
func ListComponents(cmd *cobra.Command, args []string) {
	fmt.Println("🧩 Akaylee Miner - Available Components")
	fmt.Println("=======================================")
	fmt.Println()

	generators := []struct {
		name        string
		description string
		example     string
	}{
		{
			name:        "standard",
			description: "Scores every candidate attribute-value pair lexicographically across the configured evaluators",
			example:     "Baseline generator, works with any evaluator combination",
		},
		{
			name:        "m1",
			description: "Exhaustive search that skips attributes already used by the rule",
			example:     "Faster than standard when re-adding a used attribute cannot improve the rule",
		},
		{
			name:        "m4",
			description: "Sweeps each attribute's sorted thresholds and stops once the primary evaluation worsens",
			example:     "Default generator, requires monotonic evaluators such as epsilon",
		},
	}

	evaluators := []struct {
		name        string
		description string
		example     string
	}{
		{
			name:        "epsilon",
			description: "Share of the concept's negative objects covered by the conditions (lower is better)",
			example:     "Primary consistency measure, pairs with the consistency threshold",
		},
		{
			name:        "rough-membership",
			description: "Share of positives among the covered non-neutral objects (higher is better)",
			example:     "Classic rough set confidence measure",
		},
		{
			name:        "positive-coverage",
			description: "Number of covered positive objects (higher is better)",
			example:     "Tie-breaker that prefers more general conditions",
		},
		{
			name:        "negative-coverage",
			description: "Number of covered negative objects (lower is better)",
			example:     "Strict alternative to epsilon for small tables",
		},
	}

	pruners := []struct {
		name        string
		description string
		example     string
	}{
		{
			name:        "fifo",
			description: "Drops conditions oldest-first while the stopping condition still holds",
			example:     "Default pruner, removes conditions made redundant by later growth",
		},
		{
			name:        "attribute-order",
			description: "Drops conditions in attribute index order while the stopping condition holds",
			example:     "Deterministic alternative when attribute order encodes priority",
		},
		{
			name:        "none",
			description: "Keeps every grown condition",
			example:     "Useful for debugging the growth phase in isolation",
		},
	}

	policies := []struct {
		name        string
		description string
		example     string
	}{
		{
			name:        "positive-region",
			description: "Covered objects must belong to the concept's positive region",
			example:     "Default policy for certain rules",
		},
		{
			name:        "positive-and-boundary-regions",
			description: "Covered objects may also fall in the boundary region",
			example:     "Policy for possible rules over inconsistent tables",
		},
		{
			name:        "any-region",
			description: "Any object may be covered as long as the evaluation threshold holds",
			example:     "Most permissive policy, relies entirely on the evaluator",
		},
		{
			name:        "approximation",
			description: "Covered objects must belong to the mined approximation itself",
			example:     "Strictest policy, mirrors the covering target exactly",
		},
	}

	sections := []struct {
		title string
		items []struct {
			name        string
			description string
			example     string
		}
	}{
		{"Condition Generators (--generator)", generators},
		{"Rule Evaluators (--evaluators)", evaluators},
		{"Condition Pruners (--pruner)", pruners},
		{"Negative Object Policies (--negative-policy)", policies},
	}

	for _, section := range sections {
		fmt.Println(section.title)
		for i, item := range section.items {
			fmt.Printf("%d. %s\n", i+1, item.name)
			fmt.Printf("   Description: %s\n", item.description)
			fmt.Printf("   Example: %s\n", item.example)
		}
		fmt.Println()
	}

	fmt.Println("✨ Combine components freely; the engine validates each configuration")
	fmt.Println("   Evaluators are applied lexicographically in the order given")
}

// PerformSelfCheck performs comprehensive system validation
func PerformSelfCheck(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Akaylee Miner - System Self-Check")
	fmt.Println("====================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	checks := []struct {
		name     string
		function func() error
	}{
		{"Configuration Validation", checkConfigurationValidation},
		{"Data File", checkDataFile},
		{"Attributes File", checkAttributesFile},
		{"Output Directory", checkOutputDirectory},
		{"Log Directory", checkLogDirectory},
	}

	passed := 0
	total := len(checks)

	for _, check := range checks {
		fmt.Printf("🔍 %s... ", check.name)
		if err := check.function(); err != nil {
			fmt.Printf("❌ FAILED: %v\n", err)
		} else {
			fmt.Println("✅ PASSED")
			passed++
		}
	}

	fmt.Println()
	fmt.Printf("📊 Results: %d/%d checks passed\n", passed, total)

	if passed == total {
		fmt.Println("✨ All checks passed! System is ready for mining.")
		return nil
	}
	fmt.Println("⚠️  Some checks failed. Please address the issues before mining.")
	return fmt.Errorf("%d/%d checks failed", total-passed, total)
}

// PrintVersion prints version information
func PrintVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("⛏️  Akaylee Miner v%s\n", Version)
	fmt.Println("Dominance-based rough set rule induction engine")
}

// checkConfigurationValidation validates the configured induction settings
func checkConfigurationValidation() error {
	return createMinerConfig().Validate()
}

// checkDataFile validates the configured data file
func checkDataFile() error {
	dataPath := viper.GetString("data_path")
	if dataPath == "" {
		return fmt.Errorf("data path not configured")
	}
	if _, err := os.Stat(dataPath); err != nil {
		return fmt.Errorf("data file not accessible: %w", err)
	}
	return nil
}

// checkAttributesFile validates the configured attributes file
func checkAttributesFile() error {
	attributesPath := viper.GetString("attributes_path")
	if attributesPath == "" {
		return fmt.Errorf("attributes path not configured")
	}
	if _, err := os.Stat(attributesPath); err != nil {
		return fmt.Errorf("attributes file not accessible: %w", err)
	}
	return nil
}

// checkOutputDirectory validates report output writability
func checkOutputDirectory() error {
	outputDir := viper.GetString("output_dir")
	if outputDir == "" {
		outputDir = "./reports"
	}
	return checkWritableDirectory(outputDir)
}

// checkLogDirectory validates log output writability
func checkLogDirectory() error {
	logDir := viper.GetString("log_dir")
	if logDir == "" {
		logDir = "./logs"
	}
	return checkWritableDirectory(logDir)
}

// checkWritableDirectory verifies a directory exists and accepts writes
func checkWritableDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}

	testFile := filepath.Join(dir, ".akaylee_write_check")
	if err := os.WriteFile(testFile, []byte("check"), 0644); err != nil {
		return fmt.Errorf("cannot write to directory: %w", err)
	}
	os.Remove(testFile)

	return nil
}
