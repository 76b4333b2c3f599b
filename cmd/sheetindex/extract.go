package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/keilholz/sheetindex/internal/document"
	"github.com/keilholz/sheetindex/internal/identify"
	"github.com/keilholz/sheetindex/internal/pages"
)

var (
	extractOut      string
	extractMaxPages int
	extractVerbose  bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <workbook>",
	Short: "Identify working sheets in a workbook",
	Long: `Extract per-page text from a workbook and identify its working
sheets. The index is printed as a listing; --out writes it as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := extractDocument(args[0], extractMaxPages, extractVerbose)
		if err != nil {
			return err
		}

		renderIndex(cmd.OutOrStdout(), doc)

		if extractOut != "" {
			js, err := doc.Snapshot().Encode()
			if err != nil {
				return fmt.Errorf("encode index: %w", err)
			}
			if err := os.WriteFile(extractOut, js, 0o644); err != nil {
				return fmt.Errorf("write index: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("wrote "+extractOut))
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Write the index as JSON to this file")
	extractCmd.Flags().IntVar(&extractMaxPages, "max-pages", 0, "Only read the first N pages (0 = all)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Log extraction details to stderr")
	rootCmd.AddCommand(extractCmd)
}

// extractDocument loads a workbook from disk and runs identification.
func extractDocument(path string, maxPages int, verbose bool) (*document.Document, error) {
	log := cliLogger(verbose)

	pageTexts := pages.LoadFile(path, maxPages, log)
	if len(pageTexts) == 0 {
		return nil, fmt.Errorf("no pages extracted from %s", path)
	}

	doc := document.New(filepath.Base(path), path)
	identify.New(pageTexts, doc, identify.DefaultConfig(), log).Identify()
	return doc, nil
}

func cliLogger(verbose bool) *slog.Logger {
	if verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
