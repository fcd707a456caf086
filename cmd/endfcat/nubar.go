package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hearic/pyne/model"
	"github.com/hearic/pyne/names"
)

var nubarCmd = &cobra.Command{
	Use:   "nubar [flags] tape.endf",
	Short: "Print the neutron-multiplicity sections of one material",
	Long: `Nubar prints the decoded contents of the fission neutron sections:
total (MT 452), delayed (MT 455), and prompt (MT 456)`,
	Args: cobra.ExactArgs(1),
	RunE: runNubar,
}

func init() {
	nubarCmd.Flags().Int("mat", 0, "MAT number to print (default: first material)")
}

func runNubar(cmd *cobra.Command, args []string) error {
	mat, err := cmd.Flags().GetInt("mat")
	if err != nil {
		return fmt.Errorf("failed to get mat flag: %w", err)
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

	var b strings.Builder
	found := false
	for _, mt := range []int{452, 455, 456} {
		rx := ev.Reaction(mt)
		if rx == nil {
			continue
		}
		found = true
		writeNubar(&b, rx, tbl)
	}
	if !found {
		return fmt.Errorf("material %d has no neutron-multiplicity sections", ev.Material)
	}

	_, err = io.WriteString(os.Stdout, b.String())
	return err
}

func writeNubar(b *strings.Builder, rx *model.Reaction, tbl *names.Table) {
	title := fmt.Sprintf("MT %d", rx.MT)
	if name := tbl.MT(rx.MT); name != "" {
		title += "  " + name
	}
	fmt.Fprintln(b, title)
	writeData(b, "  ", rx.Data)
}

func writeData(b *strings.Builder, indent string, d model.Data) {
	switch d := d.(type) {
	case *model.Polynomial:
		fmt.Fprintf(b, "%spolynomial in incident energy:\n", indent)
		for i, c := range d.Coefficients {
			fmt.Fprintf(b, "%s  c%-2d %13.6e\n", indent, i, c)
		}
	case *model.Tabulated:
		fmt.Fprintf(b, "%stabulated, %d points (eV, value):\n", indent, d.Table.NP())
		for i := range d.Table.X {
			fmt.Fprintf(b, "%s  %13.6e  %13.6e\n", indent, d.Table.X[i], d.Table.Y[i])
		}
	case *model.DelayedGroups:
		fmt.Fprintf(b, "%s%d delayed groups, decay constants (1/s):\n", indent, len(d.DecayConstants))
		for _, l := range d.DecayConstants {
			fmt.Fprintf(b, "%s  %13.6e\n", indent, l)
		}
		if d.Nu != nil {
			writeData(b, indent, d.Nu)
		}
	default:
		fmt.Fprintf(b, "%shead flags only\n", indent)
	}
}
