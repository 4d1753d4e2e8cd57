/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the Akaylee Miner. Provides
comprehensive command-line options, configuration management, and beautiful
user interface for controlling rule induction with advanced logging
capabilities.
*/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-miner/cmd/miner/commands"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool

	// Dataset configuration
	dataPath       string
	attributesPath string

	// Induction configuration
	threshold       float64
	ruleType        string
	negativePolicy  string
	generator       string
	evaluators      []string
	prunerOrder     string
	generalize      bool
	setPrune        bool
	checkMinimality bool
	upwardUnions    bool
	downwardUnions  bool

	// Reporting configuration
	outputDir    string
	reportFormat string

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int
	logMaxSize  int64
	logCompress bool

	dryRun bool // Validate configuration and exit without mining
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "akaylee-miner",
		Short: "Akaylee Miner - Production-level decision rule induction engine",
		Long: `Akaylee Miner is a sophisticated, production-grade rule induction engine
built on dominance-based rough set approximations. It mines minimal decision
rules from preference-ordered data through sequential covering, with
configurable consistency thresholds, rule quality evaluators, and pruning
strategies for precise control over the induced rule set.`,
		Version: commands.Version,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")

	// Add logging-specific flags
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().Int64Var(&logMaxSize, "log-max-size", 100*1024*1024, "Maximum log file size in bytes")
	rootCmd.PersistentFlags().BoolVar(&logCompress, "log-compress", false, "Compress rotated log files")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("log_max_size", rootCmd.PersistentFlags().Lookup("log-max-size"))
	viper.BindPFlag("log_compress", rootCmd.PersistentFlags().Lookup("log-compress"))

	// Add mine command
	mineCmd := &cobra.Command{
		Use:   "mine",
		Short: "Mine decision rules from a dataset",
		Long: `Run sequential covering rule induction on a dataset. The miner loads the
data table and its attribute descriptions, builds upward and downward class
unions, and covers each union with minimal rules that satisfy the configured
consistency threshold.`,
		RunE: commands.RunMine,
	}

	// Add mine command flags
	mineCmd.Flags().StringVar(&dataPath, "data", "", "Path to CSV data file (required)")
	mineCmd.Flags().StringVar(&attributesPath, "attributes", "", "Path to YAML attribute description file (required)")

	mineCmd.Flags().Float64Var(&threshold, "threshold", 0.0, "Consistency threshold for the primary evaluator")
	mineCmd.Flags().StringVar(&ruleType, "rule-type", "certain", "Rule type to induce (certain, possible, approximate)")
	mineCmd.Flags().StringVar(&negativePolicy, "negative-policy", "positive-region", "Allowed negative objects policy")
	mineCmd.Flags().StringVar(&generator, "generator", "m4", "Condition generator (standard, m1, m4)")
	mineCmd.Flags().StringSliceVar(&evaluators, "evaluators", []string{"epsilon", "positive-coverage"}, "Lexicographic evaluator order")
	mineCmd.Flags().StringVar(&prunerOrder, "pruner", "fifo", "Condition pruner order (fifo, attribute-order, none)")
	mineCmd.Flags().BoolVar(&generalize, "generalize", true, "Widen condition thresholds after pruning")
	mineCmd.Flags().BoolVar(&setPrune, "set-prune", true, "Prune redundant rules from each concept's set")
	mineCmd.Flags().BoolVar(&checkMinimality, "check-minimality", true, "Discard candidates dominated by accepted rules")
	mineCmd.Flags().BoolVar(&upwardUnions, "upward", true, "Cover upward unions (at-least rules)")
	mineCmd.Flags().BoolVar(&downwardUnions, "downward", true, "Cover downward unions (at-most rules)")

	mineCmd.Flags().StringVar(&outputDir, "output", "./reports", "Directory for run reports")
	mineCmd.Flags().StringVar(&reportFormat, "report-format", "text", "Run report format (text, json)")

	// Add dry-run flag
	mineCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate configuration and exit without mining")

	// Mark required flags
	mineCmd.MarkFlagRequired("data")
	mineCmd.MarkFlagRequired("attributes")

	// Bind flags to viper
	viper.BindPFlag("data_path", mineCmd.Flags().Lookup("data"))
	viper.BindPFlag("attributes_path", mineCmd.Flags().Lookup("attributes"))
	viper.BindPFlag("threshold", mineCmd.Flags().Lookup("threshold"))
	viper.BindPFlag("rule_type", mineCmd.Flags().Lookup("rule-type"))
	viper.BindPFlag("negative_policy", mineCmd.Flags().Lookup("negative-policy"))
	viper.BindPFlag("generator", mineCmd.Flags().Lookup("generator"))
	viper.BindPFlag("evaluators", mineCmd.Flags().Lookup("evaluators"))
	viper.BindPFlag("pruner_order", mineCmd.Flags().Lookup("pruner"))
	viper.BindPFlag("generalize", mineCmd.Flags().Lookup("generalize"))
	viper.BindPFlag("set_prune", mineCmd.Flags().Lookup("set-prune"))
	viper.BindPFlag("check_minimality", mineCmd.Flags().Lookup("check-minimality"))
	viper.BindPFlag("upward_unions", mineCmd.Flags().Lookup("upward"))
	viper.BindPFlag("downward_unions", mineCmd.Flags().Lookup("downward"))
	viper.BindPFlag("output_dir", mineCmd.Flags().Lookup("output"))
	viper.BindPFlag("report_format", mineCmd.Flags().Lookup("report-format"))
	viper.BindPFlag("dry_run", mineCmd.Flags().Lookup("dry-run"))

	rootCmd.AddCommand(mineCmd)

	// Add inspect command for dataset summaries
	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect a dataset and its class unions",
		Long: `Load a dataset and print its attribute metadata, decision distribution,
and the class unions the miner would cover. Very useful for checking attribute
descriptions and choosing a consistency threshold before a mining run.`,
		RunE: commands.RunInspect,
	}

	// Add inspect flags
	inspectCmd.Flags().String("data", "", "Path to CSV data file (required)")
	inspectCmd.Flags().String("attributes", "", "Path to YAML attribute description file (required)")

	// Mark required flags
	inspectCmd.MarkFlagRequired("data")
	inspectCmd.MarkFlagRequired("attributes")

	// Bind flags to viper
	viper.BindPFlag("data_path", inspectCmd.Flags().Lookup("data"))
	viper.BindPFlag("attributes_path", inspectCmd.Flags().Lookup("attributes"))

	rootCmd.AddCommand(inspectCmd)

	// Add list-components command
	listComponentsCmd := &cobra.Command{
		Use:   "list-components",
		Short: "List available induction components and their capabilities",
		Long: `List all condition generators, rule evaluators, pruners, and negative
object policies available in the Akaylee Miner with detailed descriptions of
their behavior and use cases.`,
		Run: func(cmd *cobra.Command, args []string) {
			commands.ListComponents(cmd, args)
		},
	}
	rootCmd.AddCommand(listComponentsCmd)

	// Add check command for built-in self-checks
	rootCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Perform built-in self-checks for system validation",
		Long: `Perform comprehensive checks to validate configuration, dataset
accessibility, and output directory writability before a mining run. Very
useful for CI/CD integration.`,
		RunE: commands.PerformSelfCheck,
	})

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run:   commands.PrintVersion,
	})

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
