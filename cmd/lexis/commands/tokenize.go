/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: tokenize.go
Description: Token dump command implementation for Akaylee Lexis. Tokenizes
a corpus with the same recognizer set the inference engine uses, applies the
keyword reclassification pass, and prints each token with its category.
*/

package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kleascm/akaylee-lexis/pkg/lexer"
	"github.com/kleascm/akaylee-lexis/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunTokenize tokenizes a corpus and dumps the classified token stream
func RunTokenize(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if !jsonOutput {
		fmt.Println("🔤 Akaylee Lexis - Tokenizer")
		fmt.Println("============================")
		fmt.Println()
	}

	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	logger, err := logging.NewLogger(LoggerConfigFromViper())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	corpusText, traceCount, err := SourceCorpus(cmd)
	if err != nil {
		return err
	}

	startTime := time.Now()
	tokens := lexer.ReclassifyKeywords(lexer.Tokenize(corpusText))
	logger.LogTokenize(len(tokens), time.Since(startTime), nil)

	if jsonOutput {
		data, err := json.Marshal(tokens)
		if err != nil {
			return fmt.Errorf("failed to encode tokens: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if traceCount > 0 {
		corpusDir, _ := cmd.Flags().GetString("dir")
		if corpusDir == "" {
			corpusDir = viper.GetString("corpus_dir")
		}
		fmt.Printf("📁 Corpus: %s (%d traces sampled)\n", corpusDir, traceCount)
		fmt.Println()
	}

	for _, tok := range tokens {
		fmt.Printf("%-12s %s\n", tok.Category, tok.Value)
	}
	fmt.Println()
	fmt.Printf("📊 %d tokens\n", len(tokens))

	return nil
}
