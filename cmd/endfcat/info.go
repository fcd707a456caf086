package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hearic/pyne/report"
)

var infoCmd = &cobra.Command{
	Use:   "info [flags] tape.endf",
	Short: "Print a summary of one material",
	Long:  `Info decodes a material and prints its header metadata, section directory, and decoded reactions`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().Int("mat", 0, "MAT number to summarize (default: first material)")
	infoCmd.Flags().Bool("description", false, "include the free-text description block")
}

func runInfo(cmd *cobra.Command, args []string) error {
	mat, err := cmd.Flags().GetInt("mat")
	if err != nil {
		return fmt.Errorf("failed to get mat flag: %w", err)
	}
	description, err := cmd.Flags().GetBool("description")
	if err != nil {
		return fmt.Errorf("failed to get description flag: %w", err)
	}
	tbl, err := loadNames(cmd)
	if err != nil {
		return err
	}

	p, err := openParser(cmd, args[0])
	if err != nil {
		return err
	}
	ev, err := selectEvaluation(p, mat)
	if err != nil {
		return err
	}

	return report.Write(os.Stdout, ev, report.Options{
		Color:       useColor(cmd),
		Names:       tbl,
		Description: description,
	})
}
