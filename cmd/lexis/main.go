/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for Akaylee Lexis. Provides
comprehensive command-line options, configuration management, and beautiful
user interface for inferring lexical grammars from trace corpora.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/akaylee-lexis/cmd/lexis/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool

	// Corpus configuration
	corpusDir  string
	sampleSize int

	// Input configuration
	readStdin bool
	stdinJSON bool

	// Output configuration
	jsonOutput  bool
	outputFile  string
	saveMetrics bool

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int
	logMaxSize  int64
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "akaylee-lexis",
		Short: "Akaylee Lexis - Lexical grammar inference for trace corpora",
		Long: `Akaylee Lexis infers an approximate context-free grammar describing the
lexical and structural shape of a corpus of text or source-code-like traces.
It classifies tokens, detects whether input is code-like, and synthesizes
tiered expression/statement productions that are well-formed by construction.`,
		Version: "1.0.0",
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

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("log_max_size", rootCmd.PersistentFlags().Lookup("log-max-size"))

	// Add infer command
	inferCmd := &cobra.Command{
		Use:   "infer",
		Short: "Infer a grammar from a trace corpus",
		Long: `Analyze a corpus of traces and synthesize a grammar describing its lexical
shape. The corpus is read from a directory of *.txt trace files (with
deterministic sampling) or from stdin, and the result is reported as a
semicolon-terminated production list plus summary metrics.`,
		RunE: commands.RunInfer,
	}

	inferCmd.Flags().StringVar(&corpusDir, "dir", "", "Directory containing trace files (*.txt)")
	inferCmd.Flags().IntVar(&sampleSize, "sample", 300, "Maximum number of traces to sample")
	inferCmd.Flags().BoolVar(&readStdin, "stdin", false, "Read raw corpus text from stdin")
	inferCmd.Flags().BoolVar(&stdinJSON, "stdin-json", false, "Read a JSON request payload from stdin")
	inferCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit results as JSON")
	inferCmd.Flags().StringVar(&outputFile, "output", "", "Write the grammar to a file")
	inferCmd.Flags().BoolVar(&saveMetrics, "save-metrics", false, "Save an inference report under metrics/")

	rootCmd.AddCommand(inferCmd)

	// Add tokenize command
	tokenizeCmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Dump the classified token stream for a corpus",
		Long: `Tokenize a corpus and print each token with its lexical category. Useful for
inspecting how the recognizers segment a trace before grammar synthesis.`,
		RunE: commands.RunTokenize,
	}

	tokenizeCmd.Flags().StringVar(&corpusDir, "dir", "", "Directory containing trace files (*.txt)")
	tokenizeCmd.Flags().IntVar(&sampleSize, "sample", 300, "Maximum number of traces to sample")
	tokenizeCmd.Flags().BoolVar(&readStdin, "stdin", false, "Read raw corpus text from stdin")
	tokenizeCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit tokens as JSON")

	rootCmd.AddCommand(tokenizeCmd)

	// Add check command for built-in self-checks
	rootCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Perform built-in self-checks for system validation",
		Long: `Perform system checks to validate corpus accessibility, log writability, and
configuration before running inference. Very useful for CI/CD integration.`,
		RunE: commands.PerformSelfCheck,
	})

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
