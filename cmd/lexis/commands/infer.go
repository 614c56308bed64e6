/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: infer.go
Description: Grammar inference command implementation for Akaylee Lexis.
Sources a trace corpus from a directory or stdin, runs a single inference
pass, and reports the synthesized grammar and metrics as formatted text or
JSON, optionally persisting a report under the metrics directory.
*/

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/akaylee-lexis/pkg/inference"
	"github.com/kleascm/akaylee-lexis/pkg/logging"
	"github.com/kleascm/akaylee-lexis/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// InferenceReport is the record persisted by --save-metrics.
type InferenceReport struct {
	ReportID  string            `json:"report_id"`
	CodeLike  bool              `json:"code_like"`
	Grammar   string            `json:"grammar"`
	Metrics   inference.Metrics `json:"metrics"`
	Duration  string            `json:"duration"`
	Timestamp time.Time         `json:"timestamp"`
}

// RunInfer analyzes a corpus and infers a grammar
func RunInfer(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if !jsonOutput {
		fmt.Println("🧬 Akaylee Lexis - Grammar Inference")
		fmt.Println("====================================")
		fmt.Println()
	}

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging for inference
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	logger, err := logging.NewLogger(LoggerConfigFromViper())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	// Resolve the corpus
	var result *inference.Result
	startTime := time.Now()

	if stdinJSON, _ := cmd.Flags().GetBool("stdin-json"); stdinJSON {
		// Boundary mode: a JSON request payload on stdin
		payload, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			return fmt.Errorf("failed to read request from stdin: %w", readErr)
		}
		result, err = inference.InferRequest(payload)
	} else {
		var corpusText string
		var traceCount int
		corpusText, traceCount, err = SourceCorpus(cmd)
		if err != nil {
			return err
		}
		if traceCount > 0 {
			corpusDir, _ := cmd.Flags().GetString("dir")
			if corpusDir == "" {
				corpusDir = viper.GetString("corpus_dir")
			}
			logger.LogCorpusLoad(corpusDir, traceCount, traceCount, nil)
			if !jsonOutput {
				fmt.Printf("📁 Corpus: %s (%d traces sampled)\n", corpusDir, traceCount)
				fmt.Println()
			}
		}
		result, err = inference.NewEngine().Infer(corpusText)
	}
	if err != nil {
		return fmt.Errorf("inference failed: %w", err)
	}

	inferenceTime := time.Since(startTime)
	reportID := uuid.New().String()
	logger.LogInference(reportID, result.Metrics.NumTokens, result.CodeLike, inferenceTime, nil)

	// Emit results
	if jsonOutput {
		data, err := json.Marshal(inference.NewResponse(result))
		if err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}
		fmt.Println(string(data))
	} else {
		fmt.Printf("✅ Inference completed in %v\n", inferenceTime)
		fmt.Println()

		shape := "natural-language-like"
		if result.CodeLike {
			shape = "code-like"
		}
		fmt.Println("📋 Inferred Grammar")
		fmt.Println("===================")
		fmt.Printf("Shape: %s\n", shape)
		fmt.Printf("Productions: %d\n", len(result.Grammar.Productions))
		fmt.Println()
		fmt.Println(result.Grammar.String())
		fmt.Println()

		fmt.Println("📊 Metrics")
		fmt.Println("==========")
		fmt.Printf("Tokens: %d\n", result.Metrics.NumTokens)
		fmt.Printf("Distinct operators: %s\n", formatList(result.Metrics.UniqueOps))
		fmt.Printf("Keywords observed: %s\n", formatList(result.Metrics.Keywords))
	}

	// Save grammar to file
	if outputFile, _ := cmd.Flags().GetString("output"); outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(result.Grammar.String()+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to save grammar: %w", err)
		}
		logger.LogGrammarSaved(outputFile, len(result.Grammar.Productions), nil)
		if !jsonOutput {
			fmt.Printf("\n💾 Grammar saved to: %s\n", outputFile)
		}
	}

	// Save metrics report
	if saveMetrics, _ := cmd.Flags().GetBool("save-metrics"); saveMetrics {
		if err := saveReport(result, reportID, inferenceTime, jsonOutput); err != nil {
			return err
		}
	}

	if !jsonOutput {
		fmt.Println("\n✨ Grammar inference completed!")
	}

	return nil
}

// saveReport persists an inference report under metrics/.
func saveReport(result *inference.Result, reportID string, duration time.Duration, quiet bool) error {
	report := InferenceReport{
		ReportID:  reportID,
		CodeLike:  result.CodeLike,
		Grammar:   result.Grammar.String(),
		Metrics:   result.Metrics,
		Duration:  duration.String(),
		Timestamp: time.Now(),
	}

	path, err := utils.WriteMetricsResult("inference", Version, report)
	if err != nil {
		return fmt.Errorf("failed to save inference report: %w", err)
	}
	if !quiet {
		fmt.Printf("💾 Report saved to: %s\n", path)
	}
	return nil
}

// formatList renders a string list for display, with a placeholder for none.
func formatList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, " ")
}
