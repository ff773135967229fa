package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lingorag/internal/domain"
	"lingorag/internal/usecase"
)

var (
	addSourceLang  string
	addTargetLang  string
	addSentence    string
	addTranslation string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a translation pair",
	Long: `Embed a source sentence and store it with its translation.

Example:
  lingorag add -s en -t it --sentence "Hello" --translation "Ciao"`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addSourceLang, "source-lang", "s", "", "source language code (required)")
	addCmd.Flags().StringVarP(&addTargetLang, "target-lang", "t", "", "target language code (required)")
	addCmd.Flags().StringVar(&addSentence, "sentence", "", "source sentence (required)")
	addCmd.Flags().StringVar(&addTranslation, "translation", "", "translated sentence (required)")
	addCmd.MarkFlagRequired("source-lang")
	addCmd.MarkFlagRequired("target-lang")
	addCmd.MarkFlagRequired("sentence")
	addCmd.MarkFlagRequired("translation")
}

func runAdd(cmd *cobra.Command, args []string) error {
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

	ingestUC := usecase.NewIngestUseCase(st, embedder, nil)
	id, err := ingestUC.AddPair(domain.TranslationPair{
		SourceLanguage: addSourceLang,
		TargetLanguage: addTargetLang,
		Sentence:       addSentence,
		Translation:    addTranslation,
	})
	if err != nil {
		return fmt.Errorf("failed to add pair: %w", err)
	}

	fmt.Printf("Stored pair %s (%s → %s)\n", id, addSourceLang, addTargetLang)
	return nil
}
