package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hearic/pyne"
	"github.com/hearic/pyne/model"
	"github.com/hearic/pyne/names"
)

// openParser builds a parser for path honoring the persistent flags.
func openParser(cmd *cobra.Command, path string) (*pyne.Parser, error) {
	latin1, err := cmd.Root().PersistentFlags().GetBool("latin1")
	if err != nil {
		return nil, fmt.Errorf("failed to get latin1 flag: %w", err)
	}

	p := pyne.Open(path)
	if latin1 {
		p = p.Latin1()
	}
	return p, nil
}

// loadNames reads the override table named by --names. An empty flag keeps
// the built-in defaults; Table methods accept the nil result.
func loadNames(cmd *cobra.Command) (*names.Table, error) {
	path, err := cmd.Root().PersistentFlags().GetString("names")
	if err != nil {
		return nil, fmt.Errorf("failed to get names flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	return names.Load(path)
}

// useColor resolves the --color mode against the output terminal.
func useColor(cmd *cobra.Command) bool {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	return mode == "on" || (mode == "auto" && isTerminal(os.Stdout))
}

// selectEvaluation decodes the material with the given MAT number, or the
// first material on the tape when mat is zero.
func selectEvaluation(p *pyne.Parser, mat int) (*model.Evaluation, error) {
	if mat == 0 {
		return p.Evaluation()
	}
	evs, err := p.Evaluations()
	if err != nil {
		return nil, err
	}
	return pickMaterial(evs, mat)
}

// pickMaterial finds the evaluation with the given MAT number among evs,
// or the first one when mat is zero.
func pickMaterial(evs []*model.Evaluation, mat int) (*model.Evaluation, error) {
	if len(evs) == 0 {
		return nil, pyne.ErrNoMaterials
	}
	if mat == 0 {
		return evs[0], nil
	}
	var available []int
	for _, ev := range evs {
		if ev.Material == mat {
			return ev, nil
		}
		available = append(available, ev.Material)
	}
	return nil, fmt.Errorf("material %d is not on the tape (have %v)", mat, available)
}
