package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hearic/pyne"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections [flags] tape.endf",
	Short: "List every section on a tape without decoding bodies",
	Long: `Sections reads only the identification columns of each card and lists
the sections of every material, including section types the decoder does
not interpret`,
	Args: cobra.ExactArgs(1),
	RunE: runSections,
}

func runSections(cmd *cobra.Command, args []string) error {
	tbl, err := loadNames(cmd)
	if err != nil {
		return err
	}

	sv, err := pyne.Open(args[0]).Survey()
	if err != nil {
		return err
	}

	var b strings.Builder
	if sv.TapeID != "" {
		fmt.Fprintln(&b, sv.TapeID)
	}
	for _, m := range sv.Materials {
		fmt.Fprintf(&b, "MAT %d (%d sections)\n", m.MAT, len(m.Sections))
		for _, k := range m.Sections {
			line := fmt.Sprintf("  %-4v %3d", k.MF, k.MT)
			if name := tbl.MT(k.MT); name != "" {
				line += "  " + name
			}
			fmt.Fprintln(&b, line)
		}
	}

	_, err = io.WriteString(os.Stdout, b.String())
	return err
}
