package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sheetindex",
	Short: "Working-sheet index extraction for therapy workbooks",
	Long: `sheetindex reconstructs the working-sheet index of scanned therapy
workbooks: which "AB <n>" sheet lives on which pages. It reads the
workbook's table of contents, scans for sheet references, and clusters
pages by their sheet headers.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
