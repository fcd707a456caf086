package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hearic/pyne/core"
	"github.com/hearic/pyne/model"
	"github.com/hearic/pyne/plot"
)

var plotCmd = &cobra.Command{
	Use:   "plot [flags] tape.endf",
	Short: "Draw a tabulated section as an ASCII chart",
	Long: `Plot decodes one material and draws a tabulated quantity against
incident energy, sized to the terminal unless overridden`,
	Args: cobra.ExactArgs(1),
	RunE: runPlot,
}

func init() {
	plotCmd.Flags().Int("mt", 452, "section to plot")
	plotCmd.Flags().Int("mat", 0, "MAT number to plot (default: first material)")
	plotCmd.Flags().Int("width", 0, "plot width in characters (default: fit the terminal)")
	plotCmd.Flags().Int("height", 0, "plot height in characters")
	plotCmd.Flags().Bool("log-x", false, "logarithmic energy axis")
	plotCmd.Flags().Bool("log-y", false, "logarithmic value axis")
}

func runPlot(cmd *cobra.Command, args []string) error {
	mt, err := cmd.Flags().GetInt("mt")
	if err != nil {
		return fmt.Errorf("failed to get mt flag: %w", err)
	}
	mat, err := cmd.Flags().GetInt("mat")
	if err != nil {
		return fmt.Errorf("failed to get mat flag: %w", err)
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return fmt.Errorf("failed to get width flag: %w", err)
	}
	height, err := cmd.Flags().GetInt("height")
	if err != nil {
		return fmt.Errorf("failed to get height flag: %w", err)
	}
	logX, err := cmd.Flags().GetBool("log-x")
	if err != nil {
		return fmt.Errorf("failed to get log-x flag: %w", err)
	}
	logY, err := cmd.Flags().GetBool("log-y")
	if err != nil {
		return fmt.Errorf("failed to get log-y flag: %w", err)
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

	rx := ev.Reaction(mt)
	if rx == nil {
		return fmt.Errorf("material %d has no decoded section MT %d", ev.Material, mt)
	}
	tab, err := tabulatedData(rx)
	if err != nil {
		return err
	}

	opts := plot.Options{Width: width, Height: height, LogX: logX, LogY: logY}
	if opts.Width == 0 && isTerminal(os.Stdout) {
		// Leave room for the 12 gutter columns and a small margin.
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			opts.Width = max(16, w-14)
		}
	}

	title := fmt.Sprintf("MT %d", mt)
	if name := tbl.MT(mt); name != "" {
		title += "  " + name
	}
	fmt.Printf("%s  %s\n", ev, title)
	return plot.Render(os.Stdout, tab, opts)
}

// tabulatedData returns the pointwise table behind rx, reaching through
// the delayed-group wrapper when its nubar is tabulated.
func tabulatedData(rx *model.Reaction) (core.Tab1Record, error) {
	switch d := rx.Data.(type) {
	case *model.Tabulated:
		return d.Table, nil
	case *model.DelayedGroups:
		if t, ok := d.Nu.(*model.Tabulated); ok {
			return t.Table, nil
		}
	}
	if rx.Data == nil {
		return core.Tab1Record{}, fmt.Errorf("section MT %d was recorded with head flags only", rx.MT)
	}
	return core.Tab1Record{}, fmt.Errorf("section MT %d holds %s data, not a table", rx.MT, rx.Data.Kind())
}
