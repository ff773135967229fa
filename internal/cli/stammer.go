package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	stammerSource     string
	stammerTranslated string
)

var stammerCmd = &cobra.Command{
	Use:   "stammer",
	Short: "Detect stammering in a translated sentence",
	Long: `Run the stammering heuristics on a (source, translated) sentence pair.
Exits 0 either way; the verdict goes to stdout.

Example:
  lingorag stammer --source "I am fine" --translated "hello hello"`,
	RunE: runStammer,
}

func init() {
	rootCmd.AddCommand(stammerCmd)
	stammerCmd.Flags().StringVar(&stammerSource, "source", "", "source sentence")
	stammerCmd.Flags().StringVar(&stammerTranslated, "translated", "", "translated sentence (required)")
	stammerCmd.MarkFlagRequired("translated")
}

func runStammer(cmd *cobra.Command, args []string) error {
	detector := newDetector(GetConfig())

	if detector.Detect(stammerSource, stammerTranslated) {
		fmt.Println("stammering detected")
	} else {
		fmt.Println("no stammering")
	}
	return nil
}
