/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: miner_demo.go
Description: Beautiful demo showcasing the Akaylee Miner on an embedded toy
dataset. Walks through dataset loading, class unions, default rule induction,
rule quality measures, threshold relaxation, and custom concepts with real
examples.
*/

package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/kleascm/akaylee-miner/pkg/approximations"
	"github.com/kleascm/akaylee-miner/pkg/characteristics"
	"github.com/kleascm/akaylee-miner/pkg/core"
	"github.com/kleascm/akaylee-miner/pkg/data"
	"github.com/kleascm/akaylee-miner/pkg/dataio"
	"github.com/kleascm/akaylee-miner/pkg/interfaces"
	"github.com/kleascm/akaylee-miner/pkg/reporting"
)

// Six products rated by quality and price, graded into three classes.
// Quality gains with the class, price falls with it, and the table is
// fully consistent, so certain rules at threshold zero cover everything.
const demoCSV = `quality,price,class
3,8,1
5,6,2
7,4,3
6,5,2
2,9,1
8,3,3
`

func main() {
	fmt.Println("🌸 Akaylee Miner - Rule Induction Demo 🌸")
	fmt.Println("=========================================")
	fmt.Println()

	// Demo 1: Building a Dataset
	demoDataset()

	// Demo 2: Class Unions
	demoUnions()

	// Demo 3: Default Rule Induction
	demoMining()

	// Demo 4: Rule Quality Measures
	demoCharacteristics()

	// Demo 5: Threshold Relaxation
	demoThresholdRelaxation()

	// Demo 6: Custom Concepts
	demoCustomConcept()

	fmt.Println("🎉 Miner Demo Complete! 🎉")
}

// buildDemoTable assembles the embedded toy dataset
func buildDemoTable() (*data.InformationTable, error) {
	specs := []dataio.AttributeSpec{
		{Name: "quality", Kind: "integer", Preference: "gain"},
		{Name: "price", Kind: "integer", Preference: "cost"},
		{Name: "class", Kind: "integer", Preference: "gain", Decision: true},
	}

	attributes, err := dataio.BuildAttributes(specs)
	if err != nil {
		return nil, err
	}

	return dataio.ReadTable(strings.NewReader(demoCSV), attributes)
}

func demoDataset() {
	fmt.Println("✨ Demo 1: Building a Dataset")
	fmt.Println("-----------------------------")

	table, err := buildDemoTable()
	if err != nil {
		log.Printf("Error building demo table: %v", err)
		return
	}

	fmt.Printf("Objects: %d, attributes: %d\n", table.ObjectCount(), table.AttributeCount())
	for i := 0; i < table.AttributeCount(); i++ {
		attribute, err := table.Attribute(i)
		if err != nil {
			log.Printf("Error reading attribute: %v", err)
			return
		}
		fmt.Printf("  %s\n", attribute)
	}
	fmt.Println()
}

func demoUnions() {
	fmt.Println("✨ Demo 2: Class Unions")
	fmt.Println("-----------------------")

	table, err := buildDemoTable()
	if err != nil {
		log.Printf("Error building demo table: %v", err)
		return
	}

	provider, err := approximations.NewUnionProvider(table)
	if err != nil {
		log.Printf("Error creating union provider: %v", err)
		return
	}

	sets, err := provider.InductionOrder()
	if err != nil {
		log.Printf("Error ordering unions: %v", err)
		return
	}

	fmt.Println("Covering order (most specific upward unions first):")
	for i, set := range sets {
		fmt.Printf("  %d. %s with %d positives\n", i+1, set.Name(), set.ObjectCount())
	}
	fmt.Println()
}

func demoMining() {
	fmt.Println("✨ Demo 3: Default Rule Induction")
	fmt.Println("---------------------------------")

	table, err := buildDemoTable()
	if err != nil {
		log.Printf("Error building demo table: %v", err)
		return
	}

	engine, err := core.NewConfiguredEngine(interfaces.DefaultMinerConfig())
	if err != nil {
		log.Printf("Error creating engine: %v", err)
		return
	}

	ruleSet, err := engine.Mine(table)
	if err != nil {
		log.Printf("Error mining rules: %v", err)
		return
	}

	fmt.Printf("Induced %d certain rules at threshold zero:\n", ruleSet.Size())
	for i, rule := range ruleSet.GetAll() {
		fmt.Printf("  %d. %s\n", i+1, reporting.RenderRule(rule))
	}
	fmt.Println()
}

func demoCharacteristics() {
	fmt.Println("✨ Demo 4: Rule Quality Measures")
	fmt.Println("--------------------------------")

	table, err := buildDemoTable()
	if err != nil {
		log.Printf("Error building demo table: %v", err)
		return
	}

	engine, err := core.NewConfiguredEngine(interfaces.DefaultMinerConfig())
	if err != nil {
		log.Printf("Error creating engine: %v", err)
		return
	}

	ruleSet, err := engine.Mine(table)
	if err != nil {
		log.Printf("Error mining rules: %v", err)
		return
	}

	measures, err := characteristics.ForRuleSet(ruleSet, table)
	if err != nil {
		log.Printf("Error computing characteristics: %v", err)
		return
	}

	for i, rule := range ruleSet.GetAll() {
		fmt.Printf("  %s\n", reporting.RenderRule(rule))
		fmt.Printf("    %s\n", measures[i])
	}
	fmt.Println()
}

func demoThresholdRelaxation() {
	fmt.Println("✨ Demo 5: Threshold Relaxation")
	fmt.Println("-------------------------------")

	table, err := buildDemoTable()
	if err != nil {
		log.Printf("Error building demo table: %v", err)
		return
	}

	// Allow each rule to cover up to 40% of its concept's negatives.
	// Generalization widens conditions as far as that allowance permits.
	config := interfaces.DefaultMinerConfig()
	config.ConsistencyThreshold = 0.4
	config.NegativePolicy = interfaces.PolicyNameAnyRegion

	engine, err := core.NewConfiguredEngine(config)
	if err != nil {
		log.Printf("Error creating engine: %v", err)
		return
	}

	ruleSet, err := engine.Mine(table)
	if err != nil {
		log.Printf("Error mining rules: %v", err)
		return
	}

	fmt.Printf("Rules at epsilon threshold %.1f:\n", config.ConsistencyThreshold)
	for i, rule := range ruleSet.GetAll() {
		fmt.Printf("  %d. %s\n", i+1, reporting.RenderRule(rule))
	}
	fmt.Println("Compare the thresholds with Demo 3: relaxed rules reach further.")
	fmt.Println()
}

func demoCustomConcept() {
	fmt.Println("✨ Demo 6: Custom Concepts")
	fmt.Println("--------------------------")

	table, err := buildDemoTable()
	if err != nil {
		log.Printf("Error building demo table: %v", err)
		return
	}

	// Cover the middle class exactly instead of a union
	middle, err := approximations.NewCustomSet("class=2", data.NewIntegerField(2), []int{1, 3})
	if err != nil {
		log.Printf("Error creating custom set: %v", err)
		return
	}

	engine, err := core.NewConfiguredEngine(interfaces.DefaultMinerConfig())
	if err != nil {
		log.Printf("Error creating engine: %v", err)
		return
	}

	ruleSet, err := engine.MineSets(table, []approximations.ApproximatedSet{middle})
	if err != nil {
		log.Printf("Error mining custom concept: %v", err)
		return
	}

	fmt.Println("Rules covering only the middle class:")
	for i, rule := range ruleSet.GetAll() {
		fmt.Printf("  %d. %s\n", i+1, reporting.RenderRule(rule))
	}
	fmt.Println()
}
