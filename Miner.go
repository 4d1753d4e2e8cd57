/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: Miner.go
Description: Batch rule induction driver. Scans ./datasets for CSV data files
with matching YAML attribute descriptions, mines each pair with the default
configuration, and writes detailed HTML/JSON reports to ./miner_output after
every dataset and at the end of the run. Modular, clean, and beautiful.
*/

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kleascm/akaylee-miner/pkg/core"
	"github.com/kleascm/akaylee-miner/pkg/dataio"
	"github.com/kleascm/akaylee-miner/pkg/interfaces"
	"github.com/kleascm/akaylee-miner/pkg/reporting"
)

type MineResult struct {
	Dataset   string   `json:"dataset"`
	Status    string   `json:"status"`
	Error     string   `json:"error,omitempty"`
	Objects   int      `json:"objects,omitempty"`
	RuleCount int      `json:"rule_count"`
	Rules     []string `json:"rules,omitempty"`
	Duration  string   `json:"duration"`
}

func runDataset(dataPath, attributesPath string) (MineResult, error) {
	start := time.Now()
	result := MineResult{
		Dataset: dataPath,
		Status:  "ok",
	}

	table, err := dataio.LoadDataset(dataPath, attributesPath)
	if err != nil {
		result.Status = "error"
		result.Error = err.Error()
		result.Duration = time.Since(start).String()
		return result, err
	}
	result.Objects = table.ObjectCount()

	engine, err := core.NewConfiguredEngine(interfaces.DefaultMinerConfig())
	if err != nil {
		result.Status = "error"
		result.Error = err.Error()
		result.Duration = time.Since(start).String()
		return result, err
	}

	ruleSet, err := engine.Mine(table)
	if err != nil {
		result.Status = "error"
		result.Error = err.Error()
		result.Duration = time.Since(start).String()
		return result, err
	}

	for _, rule := range ruleSet.GetAll() {
		result.Rules = append(result.Rules, reporting.RenderRule(rule))
	}
	result.RuleCount = ruleSet.Size()
	result.Duration = time.Since(start).String()
	return result, nil
}

func main() {
	var results []MineResult
	defer func() {
		if r := recover(); r != nil {
			timestamp := time.Now().Format("2006-01-02_15-04-05")
			jsonPath := filepath.Join("./miner_output", fmt.Sprintf("miner_report_panic_%s.json", timestamp))
			htmlPath := filepath.Join("./miner_output", fmt.Sprintf("miner_report_panic_%s.html", timestamp))
			jsonData, _ := json.MarshalIndent(results, "", "  ")
			os.WriteFile(jsonPath, jsonData, 0644)
			writeHTMLReport(htmlPath, results)
		}
	}()
	datasetsDir := "./datasets"
	outputDir := "./miner_output"
	os.MkdirAll(outputDir, 0755)
	files, _ := filepath.Glob(filepath.Join(datasetsDir, "*.csv"))
	for _, file := range files {
		attributesPath := strings.TrimSuffix(file, ".csv") + ".yaml"
		if _, err := os.Stat(attributesPath); err != nil {
			results = append(results, MineResult{Dataset: file, Status: "error", Error: "no attributes file: " + attributesPath})
			continue
		}
		res, _ := runDataset(file, attributesPath)
		results = append(results, res)
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		jsonPath := filepath.Join(outputDir, fmt.Sprintf("miner_report_live_%s.json", timestamp))
		htmlPath := filepath.Join(outputDir, fmt.Sprintf("miner_report_live_%s.html", timestamp))
		jsonData, _ := json.MarshalIndent(results, "", "  ")
		os.WriteFile(jsonPath, jsonData, 0644)
		writeHTMLReport(htmlPath, results)
	}
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	jsonPath := filepath.Join(outputDir, fmt.Sprintf("miner_report_final_%s.json", timestamp))
	htmlPath := filepath.Join(outputDir, fmt.Sprintf("miner_report_final_%s.html", timestamp))
	jsonData, _ := json.MarshalIndent(results, "", "  ")
	os.WriteFile(jsonPath, jsonData, 0644)
	writeHTMLReport(htmlPath, results)
}

func writeHTMLReport(path string, results []MineResult) {
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	f.WriteString("<html><head><title>Akaylee Miner Report</title><style>body{font-family:sans-serif;}table{border-collapse:collapse;}th,td{border:1px solid #ccc;padding:4px;}th{background:#eee;}tr.ok{background:#dfd;}tr.error{background:#fdd;}</style></head><body>")
	f.WriteString("<h1>Akaylee Miner Report</h1><table><tr><th>Dataset</th><th>Status</th><th>Error</th><th>Objects</th><th>Rules</th><th>Duration</th><th>Induced Rules</th></tr>")
	for _, r := range results {
		rowClass := r.Status
		f.WriteString(fmt.Sprintf("<tr class='%s'><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%d</td><td>%s</td><td><pre>%s</pre></td></tr>", rowClass, r.Dataset, r.Status, r.Error, r.Objects, r.RuleCount, r.Duration, htmlEscape(strings.Join(r.Rules, "\n"))))
	}
	f.WriteString("</table></body></html>")
}

func htmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}
