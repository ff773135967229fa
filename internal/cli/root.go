package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lingorag/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "lingorag",
	Short: "Retrieval-augmented translation prompts with stammering detection",
	Long: `lingorag stores translation pairs with sentence embeddings, retrieves the
most similar examples in both language directions to build an LLM translation
prompt, and flags non-natural repetition (stammering) in candidate
translations.

Example usage:
  lingorag serve                                 # Start the HTTP API
  lingorag add -s en -t it --sentence "Hello" --translation "Ciao"
  lingorag prompt -s en -t it -q "Good morning"  # Print a generated prompt
  lingorag stammer --source "Hi" --translated "hello hello"
  lingorag import ./corpus                       # Bulk-load TSV pair files`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./lingorag.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "data directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
