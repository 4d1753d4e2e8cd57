/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: Run reports for the Akaylee Miner. Builds a report from a mined
rule set with per-rule quality measures and induction counters, and renders it
as a plain text table or a JSON artifact. Also provides the rule-to-text
rendering used by the CLI.
*/

package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kleascm/akaylee-miner/pkg/characteristics"
	"github.com/kleascm/akaylee-miner/pkg/core"
	"github.com/kleascm/akaylee-miner/pkg/data"
	"github.com/kleascm/akaylee-miner/pkg/interfaces"
	"github.com/kleascm/akaylee-miner/pkg/rules"
	"github.com/kleascm/akaylee-miner/pkg/utils"
)

// RuleReport is one rendered rule with its quality measures
type RuleReport struct {
	Index           int                                  `json:"index"`
	Text            string                               `json:"text"`
	Type            string                               `json:"type"`
	Semantics       string                               `json:"semantics"`
	Characteristics *characteristics.RuleCharacteristics `json:"characteristics"`
}

// RunReport contains all data for report generation
type RunReport struct {
	Title           string               `json:"title"`
	GeneratedAt     time.Time            `json:"generated_at"`
	Version         string               `json:"version"`
	RunID           string               `json:"run_id"`
	Objects         int                  `json:"objects"`
	Attributes      int                  `json:"attributes"`
	DurationSeconds float64              `json:"duration_seconds"`
	Rules           []*RuleReport        `json:"rules"`
	Stats           *core.InductionStats `json:"stats"`
}

// ReportGenerator renders run reports in the configured format
type ReportGenerator struct {
	outputDir string
	format    string
	logger    *logrus.Logger
	templates *template.Template
}

// NewReportGenerator creates a report generator. An empty output directory
// defaults to "reports".
func NewReportGenerator(outputDir, format string, logger *logrus.Logger) (*ReportGenerator, error) {
	switch format {
	case interfaces.ReportText, interfaces.ReportJSON:
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
	if outputDir == "" {
		outputDir = "reports"
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &ReportGenerator{
		outputDir: outputDir,
		format:    format,
		logger:    logger,
		templates: template.Must(template.New("report").Parse(textReportTemplate)),
	}, nil
}

// BuildRunReport assembles a run report from a mined rule set
func BuildRunReport(table *data.InformationTable, ruleSet *rules.RuleSet, stats *core.InductionStats,
	runID, version string, duration time.Duration) (*RunReport, error) {
	if table == nil {
		return nil, fmt.Errorf("run report requires an information table")
	}
	if ruleSet == nil {
		return nil, fmt.Errorf("run report requires a rule set")
	}
	if stats == nil {
		return nil, fmt.Errorf("run report requires induction stats")
	}

	measures, err := characteristics.ForRuleSet(ruleSet, table)
	if err != nil {
		return nil, fmt.Errorf("computing rule characteristics: %w", err)
	}

	all := ruleSet.GetAll()
	ruleReports := make([]*RuleReport, 0, len(all))
	for i, rule := range all {
		ruleReports = append(ruleReports, &RuleReport{
			Index:           i + 1,
			Text:            RenderRule(rule),
			Type:            rule.Type().String(),
			Semantics:       rule.Semantics().String(),
			Characteristics: measures[i],
		})
	}

	return &RunReport{
		Title:           "Akaylee Miner Run Report",
		GeneratedAt:     time.Now(),
		Version:         version,
		RunID:           runID,
		Objects:         table.ObjectCount(),
		Attributes:      table.AttributeCount(),
		DurationSeconds: duration.Seconds(),
		Rules:           ruleReports,
		Stats:           stats,
	}, nil
}

// RenderRule renders a rule as "attr >= v AND ... => decision OR ...".
// A rule with no conditions renders its left side as "true".
func RenderRule(rule *rules.Rule) string {
	if rule == nil {
		return ""
	}
	conditions := make([]string, 0, rule.ConditionCount())
	for _, condition := range rule.Conditions() {
		conditions = append(conditions, condition.String())
	}
	decisions := make([]string, 0, len(rule.Decisions()))
	for _, decision := range rule.Decisions() {
		decisions = append(decisions, decision.String())
	}
	left := "true"
	if len(conditions) > 0 {
		left = strings.Join(conditions, " AND ")
	}
	return fmt.Sprintf("%s => %s", left, strings.Join(decisions, " OR "))
}

// Generate renders the report in the configured format and returns the path
// of the written file
func (g *ReportGenerator) Generate(report *RunReport) (string, error) {
	if report == nil {
		return "", fmt.Errorf("report generation requires a run report")
	}

	var path string
	var err error
	switch g.format {
	case interfaces.ReportJSON:
		path, err = utils.WriteTimestampedJSON(g.outputDir, "report", report)
	default:
		path, err = g.generateText(report)
	}
	if err != nil {
		return "", err
	}

	g.logger.Infof("Run report generated successfully at: %s", path)
	return path, nil
}

// generateText renders the plain text report
func (g *ReportGenerator) generateText(report *RunReport) (string, error) {
	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := fmt.Sprintf("%s_report.txt", report.GeneratedAt.Format("2006-01-02_15-04-05"))
	path := filepath.Join(g.outputDir, filename)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := g.templates.Execute(file, report); err != nil {
		return "", fmt.Errorf("failed to execute report template: %w", err)
	}
	return path, nil
}
