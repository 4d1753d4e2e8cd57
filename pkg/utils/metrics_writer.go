/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: metrics_writer.go
Description: Utilities for writing timestamped JSON artifacts. Test suites
record their metrics under the metrics directory and mining runs persist
reports and rule sets under the configured output directory. Ensures
directories exist and names files by timestamp for easy comparison across
runs.
*/

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteMetricsResult writes a test suite result to the metrics directory,
// named by timestamp, suite type, and version
func WriteMetricsResult(testType string, version string, result interface{}) (string, error) {
	metricsDir := filepath.Join("metrics", testType)
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s_v%s.json", timestamp, testType, version)
	return WriteJSONArtifact(metricsDir, filename, result)
}

// WriteTimestampedJSON writes a payload under dir as <timestamp>_<prefix>.json
// Used by mining runs to persist reports and rule sets per run
func WriteTimestampedJSON(dir string, prefix string, payload interface{}) (string, error) {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.json", timestamp, prefix)
	return WriteJSONArtifact(dir, filename, payload)
}

// WriteJSONArtifact marshals the payload with indentation and writes it to
// dir/filename, creating the directory when missing
func WriteJSONArtifact(dir string, filename string, payload interface{}) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create artifact directory: %w", err)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal artifact: %w", err)
	}

	filePath := filepath.Join(dir, filename)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write artifact file: %w", err)
	}

	return filePath, nil
}
