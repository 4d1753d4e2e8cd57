/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: inspect.go
Description: Inspect command implementation for the Akaylee Miner. Loads a
dataset and prints attribute metadata, decision class distribution, and the
class unions a mining run would cover.
*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-miner/pkg/approximations"
	"github.com/kleascm/akaylee-miner/pkg/data"
	"github.com/kleascm/akaylee-miner/pkg/dataio"
)

// RunInspect loads a dataset and prints its structure
func RunInspect(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Akaylee Miner - Dataset Inspection")
	fmt.Println("=====================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	dataPath := viper.GetString("data_path")
	attributesPath := viper.GetString("attributes_path")

	fmt.Printf("📁 Data file: %s\n", dataPath)
	fmt.Printf("📋 Attributes: %s\n", attributesPath)
	fmt.Println()

	// Check the input files before parsing
	if _, err := os.Stat(dataPath); os.IsNotExist(err) {
		fmt.Printf("❌ Data file not found: %s\n", dataPath)
		return nil
	}
	if _, err := os.Stat(attributesPath); os.IsNotExist(err) {
		fmt.Printf("❌ Attributes file not found: %s\n", attributesPath)
		return nil
	}

	// Load the dataset
	table, err := dataio.LoadDataset(dataPath, attributesPath)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	fmt.Printf("📊 Objects: %d\n", table.ObjectCount())
	fmt.Printf("📊 Attributes: %d\n", table.AttributeCount())
	fmt.Println()

	// Display attribute metadata
	if err := printAttributes(table); err != nil {
		return fmt.Errorf("failed to read attributes: %w", err)
	}

	// Display decision class distribution
	if err := printDecisionDistribution(table); err != nil {
		return fmt.Errorf("failed to read decisions: %w", err)
	}

	// Display the class unions a mining run would cover
	if err := printClassUnions(table); err != nil {
		return fmt.Errorf("failed to build class unions: %w", err)
	}

	fmt.Println("✨ Inspection completed!")
	fmt.Println("   Use the mine command to induce rules from this dataset.")
	return nil
}

// printAttributes displays attribute names, kinds, and preference types
func printAttributes(table *data.InformationTable) error {
	fmt.Println("📋 Attribute Metadata")
	fmt.Println("=====================")

	for i := 0; i < table.AttributeCount(); i++ {
		attribute, err := table.Attribute(i)
		if err != nil {
			return err
		}

		line := fmt.Sprintf("%2d. %s (%s, %s)", i+1, attribute.Name, attribute.Kind, attribute.Preference)
		if attribute.Kind == data.KindEnumeration && attribute.Domain != nil {
			line += fmt.Sprintf(" domain: %s", attribute.Domain)
		}
		if attribute.Role == data.RoleDecision {
			line += " [decision]"
		}
		if !attribute.Active {
			line += " [inactive]"
		}
		fmt.Println(line)
	}

	fmt.Println()
	return nil
}

// printDecisionDistribution displays object counts per decision class
func printDecisionDistribution(table *data.InformationTable) error {
	fmt.Println("📊 Decision Distribution")
	fmt.Println("========================")

	counts := make(map[string]int)
	for i := 0; i < table.ObjectCount(); i++ {
		decision, err := table.Decision(i)
		if err != nil {
			return err
		}
		counts[decision.String()]++
	}

	distinct, err := table.DistinctSortedDecisions()
	if err != nil {
		return err
	}

	total := table.ObjectCount()
	for _, decision := range distinct {
		count := counts[decision.String()]
		fmt.Printf("  class = %-10s %4d objects (%.1f%%)\n",
			decision.String(), count, 100*float64(count)/float64(total))
	}

	fmt.Println()
	return nil
}

// printClassUnions displays the unions in the order a run would cover them
func printClassUnions(table *data.InformationTable) error {
	fmt.Println("🎯 Class Unions (induction order)")
	fmt.Println("=================================")

	provider, err := approximations.NewUnionProvider(table)
	if err != nil {
		return err
	}

	sets, err := provider.InductionOrder()
	if err != nil {
		return err
	}

	total := table.ObjectCount()
	for i, set := range sets {
		fmt.Printf("%2d. %-20s %4d positives (%.1f%%)\n",
			i+1, set.Name(), set.ObjectCount(), 100*float64(set.ObjectCount())/float64(total))
	}

	fmt.Println()
	return nil
}
