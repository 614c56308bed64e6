/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utilities.go
Description: Utility commands for Akaylee Lexis. Provides the self-check
command validating corpus accessibility, log writability, and logging
configuration before an inference run.
*/

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// PerformSelfCheck performs system validation
func PerformSelfCheck(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Akaylee Lexis - System Self-Check")
	fmt.Println("====================================")
	fmt.Println()

	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	checks := []struct {
		name     string
		function func() error
	}{
		{"Corpus Accessibility", checkCorpusAccessibility},
		{"Log Directory Writability", checkLogDirectoryWritability},
		{"Logging Configuration", checkLoggingConfiguration},
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
		fmt.Println("✨ All checks passed! System is ready for inference.")
		return nil
	}

	fmt.Println("⚠️  Some checks failed. Please address the issues before running inference.")
	return fmt.Errorf("%d/%d checks failed", total-passed, total)
}

// checkCorpusAccessibility verifies that the configured corpus directory
// exists and is readable. An unset directory passes: stdin input needs none.
func checkCorpusAccessibility() error {
	dir := viper.GetString("corpus_dir")
	if dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("corpus directory not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("corpus path %s is not a directory", dir)
	}

	if _, err := filepath.Glob(filepath.Join(dir, "*.txt")); err != nil {
		return fmt.Errorf("cannot list trace files: %w", err)
	}
	return nil
}

// checkLogDirectoryWritability verifies the log directory can be written.
func checkLogDirectoryWritability() error {
	logDir := viper.GetString("log_dir")
	if logDir == "" {
		logDir = "./logs"
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}

	probe := filepath.Join(logDir, ".lexis_write_check")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("log directory not writable: %w", err)
	}
	os.Remove(probe)
	return nil
}

// checkLoggingConfiguration validates the logger config built from flags.
func checkLoggingConfiguration() error {
	return LoggerConfigFromViper().Validate()
}
