/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Akaylee Lexis commands. Provides common
configuration loading, logging setup, and corpus sourcing used across all
command implementations.
*/

package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kleascm/akaylee-lexis/pkg/corpus"
	"github.com/kleascm/akaylee-lexis/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is reported in saved metrics files.
const Version = "1.0.0"

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("AKAYLEE_LEXIS")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the logging system
func SetupLogging() error {
	logLevel := viper.GetString("log_level")
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return nil
}

// LoggerConfigFromViper builds a logger configuration from the bound flags.
func LoggerConfigFromViper() *logging.LoggerConfig {
	format := logging.LogFormat(viper.GetString("log_format"))
	if viper.GetBool("json_logs") {
		format = logging.LogFormatJSON
	}

	return &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    format,
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		MaxSize:   viper.GetInt64("log_max_size"),
		Timestamp: true,
		Caller:    false,
		Colors:    true,
	}
}

// SourceCorpus resolves the corpus text for a command: raw stdin when
// --stdin is set, otherwise the sampled traces from --dir joined by
// newlines. Returns the corpus text and the number of traces it came from.
func SourceCorpus(cmd *cobra.Command) (string, int, error) {
	if readStdin, _ := cmd.Flags().GetBool("stdin"); readStdin {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", 0, fmt.Errorf("failed to read corpus from stdin: %w", err)
		}
		return string(data), 0, nil
	}

	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = viper.GetString("corpus_dir")
	}
	if dir == "" {
		return "", 0, fmt.Errorf("no corpus source: use --dir or --stdin")
	}

	sample, _ := cmd.Flags().GetInt("sample")
	loader := corpus.NewLoader(sample)
	traces, err := loader.LoadTraces(dir)
	if err != nil {
		return "", 0, err
	}

	return strings.Join(traces, "\n"), len(traces), nil
}
