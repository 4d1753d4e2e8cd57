/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logging_test.go
Description: Tests for the logging system. Covers configuration validation,
file output, miner-specific log methods, custom formatters, and log file
management and analysis.
*/

package logging_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-miner/pkg/logging"
)

func validConfig(dir string) *logging.LoggerConfig {
	return &logging.LoggerConfig{
		Level:     logging.LogLevelDebug,
		Format:    logging.LogFormatCustom,
		OutputDir: dir,
		MaxFiles:  5,
		MaxSize:   1024 * 1024,
		Timestamp: true,
		Caller:    false,
		Colors:    false,
	}
}

func TestLoggerConfigValidate(t *testing.T) {
	config := validConfig(t.TempDir())
	require.NoError(t, config.Validate())

	bad := *config
	bad.OutputDir = ""
	assert.Error(t, bad.Validate())

	bad = *config
	bad.MaxFiles = 0
	assert.Error(t, bad.Validate())

	bad = *config
	bad.MaxSize = 0
	assert.Error(t, bad.Validate())

	bad = *config
	bad.Format = "xml"
	assert.Error(t, bad.Validate())

	bad = *config
	bad.Level = "verbose"
	assert.Error(t, bad.Validate())
}

func TestNewLoggerCreatesLogFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := logging.NewLogger(validConfig(dir))
	require.NoError(t, err)
	defer logger.Close()

	assert.NotNil(t, logger.GetLogger())
	assert.Equal(t, logrus.DebugLevel, logger.GetLogger().GetLevel())

	files, err := filepath.Glob(filepath.Join(dir, "akaylee-miner_*.log"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestLoggerDomainMethodsAndAnalysis(t *testing.T) {
	dir := t.TempDir()
	logger, err := logging.NewLogger(validConfig(dir))
	require.NoError(t, err)

	logger.LogRunStarted("run-1", 5, 3, 2, nil)
	logger.LogConceptStarted("class>=2", 3, nil)
	logger.LogRuleAccepted("class>=2", 1, 3, nil)
	logger.LogCandidateDiscarded("class>=2", 2, nil)
	logger.LogDeadEnd("class>=2", 0, nil)
	logger.LogRunFinished("run-1", 2, time.Second, nil)
	logger.LogReportWritten("reports/report.txt", "text", nil)
	require.NoError(t, logger.Close())

	analysis, err := logging.NewLogAnalyzer(dir).AnalyzeLogs()
	require.NoError(t, err)

	assert.Equal(t, 1, analysis.LogFiles)
	assert.Greater(t, analysis.TotalLines, int64(0))
	assert.Equal(t, int64(1), analysis.ConceptCount)
	assert.Equal(t, int64(1), analysis.AcceptedCount)
	assert.Equal(t, int64(1), analysis.DiscardedCount)
	assert.Equal(t, int64(1), analysis.DeadEndCount)
	assert.Equal(t, int64(1), analysis.RunCount)
	assert.Greater(t, analysis.InfoCount, int64(0))
	assert.Equal(t, int64(1), analysis.ErrorCount)

	summary := analysis.GetLogSummary()
	assert.Contains(t, summary, "Concepts Covered: 1")
	assert.Contains(t, summary, "Dead Ends: 1")
}

func TestMinerFormatterPrefixes(t *testing.T) {
	formatter := &logging.MinerFormatter{
		CustomFormatter: logging.CustomFormatter{
			Timestamp: false,
			Caller:    false,
			Colors:    false,
		},
	}

	entry := &logrus.Entry{
		Level:   logrus.InfoLevel,
		Message: "Rule candidate accepted",
		Data:    logrus.Fields{"epsilon": 0.25},
	}
	output, err := formatter.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "INFO [RULE] Rule candidate accepted epsilon=0.250\n", string(output))

	entry = &logrus.Entry{
		Level:   logrus.ErrorLevel,
		Message: "Covering dead end reached",
		Data:    logrus.Fields{},
	}
	output, err = formatter.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "ERROR [DEADEND] Covering dead end reached\n", string(output))

	entry = &logrus.Entry{
		Level:   logrus.InfoLevel,
		Message: "Rule induction finished",
		Data:    logrus.Fields{"run_id": "0123456789abcdef"},
	}
	output, err = formatter.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "INFO [RUN] Rule induction finished run_id=01234567...\n", string(output))
}

func TestCustomFormatterValues(t *testing.T) {
	formatter := &logging.CustomFormatter{
		Timestamp: false,
		Caller:    false,
		Colors:    false,
	}

	entry := &logrus.Entry{
		Level:   logrus.InfoLevel,
		Message: "Concept covering started",
		Data:    logrus.Fields{"strength": 0.6},
	}
	output, err := formatter.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "INFO Concept covering started strength=0.600\n", string(output))
}

func TestLogManagerCleanup(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 4; i++ {
		name := filepath.Join(dir, fmt.Sprintf("akaylee-miner_2026-08-23_12-00-0%d.log", i))
		require.NoError(t, os.WriteFile(name, []byte("log line\n"), 0644))
		stamp := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(name, stamp, stamp))
	}

	manager := logging.NewLogManager(dir, 2, 1024, false)
	require.NoError(t, manager.CleanupOldLogs())

	files, err := filepath.Glob(filepath.Join(dir, "akaylee-miner_*.log*"))
	require.NoError(t, err)
	assert.Len(t, files, 2)

	stats, err := manager.GetLogStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalFiles)
	assert.Equal(t, 2, stats.UncompressedFiles)
}
