package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"lingorag/internal/domain"
	"lingorag/internal/usecase"
)

var (
	promptSourceLang string
	promptTargetLang string
	promptSentence   string
	promptJSON       bool
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Build a translation prompt with similar examples",
	Long: `Retrieve the most similar stored pairs in both language directions and
print the composed translation prompt.

Examples:
  lingorag prompt -s en -t it -q "Good morning"
  lingorag prompt -s it -t en -q "Buongiorno" --json`,
	RunE: runPrompt,
}

func init() {
	rootCmd.AddCommand(promptCmd)
	promptCmd.Flags().StringVarP(&promptSourceLang, "source-lang", "s", "", "source language code (required)")
	promptCmd.Flags().StringVarP(&promptTargetLang, "target-lang", "t", "", "target language code (required)")
	promptCmd.Flags().StringVarP(&promptSentence, "query", "q", "", "sentence to translate (required)")
	promptCmd.Flags().BoolVar(&promptJSON, "json", false, "output as JSON")
	promptCmd.MarkFlagRequired("source-lang")
	promptCmd.MarkFlagRequired("target-lang")
	promptCmd.MarkFlagRequired("query")
}

func runPrompt(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	st, err := openStore(cfg, GetRootDir())
	if err != nil {
		return err
	}
	defer st.Close()

	embedder, err := newEmbedder(cfg)
	if err != nil {
		return err
	}

	retrieveUC := usecase.NewRetrieveUseCase(st, embedder, cfg.Retrieve.MaxExamples)
	prompt, err := retrieveUC.BuildPrompt(
		domain.LanguagePair{Source: promptSourceLang, Target: promptTargetLang},
		promptSentence,
	)
	if err != nil {
		return fmt.Errorf("failed to generate prompt: %w", err)
	}

	if promptJSON {
		output, _ := json.MarshalIndent(map[string]string{"prompt": prompt}, "", "  ")
		fmt.Println(string(output))
	} else {
		fmt.Println(prompt)
	}

	return nil
}
