package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "endfcat",
	Short: "Inspect and convert ENDF-6 nuclear data tapes",
	Long:  `endfcat decodes ENDF-6 format tapes and prints, plots, or converts their contents`,
}

func main() {
	rootCmd.Version = version

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(nubarCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(plotCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("names", "", "TOML file with library and section name overrides")
	rootCmd.PersistentFlags().Bool("latin1", false, "decode text columns as ISO 8859-1")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
