package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keilholz/sheetindex/internal/split"
)

var (
	splitOutDir   string
	splitMaxPages int
	splitVerbose  bool
)

var splitCmd = &cobra.Command{
	Use:   "split <workbook.pdf>",
	Short: "Write one PDF per identified working sheet",
	Long: `Identify the working sheets of a PDF workbook and write each
sheet's pages to its own PDF under the output directory. Requires
qpdf on PATH.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return fmt.Errorf("split needs a PDF source, got %s", filepath.Ext(path))
		}

		doc, err := extractDocument(path, splitMaxPages, splitVerbose)
		if err != nil {
			return err
		}
		renderIndex(cmd.OutOrStdout(), doc)

		results, err := split.WriteSheets(doc, splitOutDir, cliLogger(splitVerbose))
		if err != nil {
			return err
		}
		for _, res := range results {
			fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("wrote "+res.Path))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d sheet files written\n", len(results))
		return nil
	},
}

func init() {
	splitCmd.Flags().StringVarP(&splitOutDir, "out-dir", "d", "data/output", "Directory for per-sheet PDFs")
	splitCmd.Flags().IntVar(&splitMaxPages, "max-pages", 0, "Only read the first N pages (0 = all)")
	splitCmd.Flags().BoolVarP(&splitVerbose, "verbose", "v", false, "Log extraction details to stderr")
	rootCmd.AddCommand(splitCmd)
}
