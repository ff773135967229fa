package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"lingorag/internal/adapter/fs"
	"lingorag/internal/usecase"
)

var importCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Bulk-load translation pairs from TSV corpus files",
	Long: `Walk a corpus directory for pair files and store every pair in them.
Files are matched by the configured include/exclude patterns (default
**/*.tsv). Each line holds four tab-separated fields:

  source_lang<TAB>target_lang<TAB>sentence<TAB>translation

Blank lines and lines starting with '#' are skipped.

Examples:
  lingorag import ./corpus
  lingorag import .`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

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

	walker := fs.NewWalker(cfg.Import.Includes, cfg.Import.Excludes)
	ingestUC := usecase.NewIngestUseCase(st, embedder, walker)

	fmt.Printf("Scanning %s...\n", path)

	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var initialized bool

	progress := func(processed, total int) {
		barMu.Lock()
		defer barMu.Unlock()

		if !initialized {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Importing[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
			initialized = true
		}

		bar.Set(processed)
	}

	result, err := ingestUC.ImportDir(path, progress)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("\nImport complete:\n")
	fmt.Printf("  Files read:     %d\n", result.FilesRead)
	fmt.Printf("  Pairs imported: %d\n", result.PairsImported)

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	count, _ := st.Count()
	fmt.Printf("\nStore now holds %d pairs\n", count)
	return nil
}
