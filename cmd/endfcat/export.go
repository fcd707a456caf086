package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hearic/pyne"
	"github.com/hearic/pyne/export"
	"github.com/hearic/pyne/format"
	"github.com/hearic/pyne/model"
)

var exportCmd = &cobra.Command{
	Use:   "export [flags] tape.endf...",
	Short: "Convert materials to JSON or MessagePack",
	Long: `Export decodes each tape and writes the selected material as a
structured document. A single input writes to stdout or --out; several
inputs write one file next to each, named for the format`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "json", "output encoding (json|msgpack)")
	exportCmd.Flags().Bool("pretty", false, "indent JSON output")
	exportCmd.Flags().String("out", "", "output path for a single input (default: stdout)")
	exportCmd.Flags().Int("mat", 0, "MAT number to export (default: first material)")
	exportCmd.Flags().Int("jobs", 0, "tapes decoded in parallel (default: one per CPU)")
}

func runExport(cmd *cobra.Command, args []string) error {
	formatName, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	pretty, err := cmd.Flags().GetBool("pretty")
	if err != nil {
		return fmt.Errorf("failed to get pretty flag: %w", err)
	}
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	mat, err := cmd.Flags().GetInt("mat")
	if err != nil {
		return fmt.Errorf("failed to get mat flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	var f format.Format
	switch formatName {
	case "json":
		f = format.JSON
	case "msgpack":
		f = format.Msgpack
	default:
		return fmt.Errorf("unknown format: %s", formatName)
	}

	if len(args) == 1 {
		p, err := openParser(cmd, args[0])
		if err != nil {
			return err
		}
		ev, err := selectEvaluation(p, mat)
		if err != nil {
			return err
		}
		if out == "" || out == "-" {
			return writeDocument(os.Stdout, ev, f, pretty)
		}
		return exportTo(out, ev, f, pretty)
	}

	if out != "" {
		return fmt.Errorf("--out applies to a single input; %d were given", len(args))
	}

	latin1, err := cmd.Root().PersistentFlags().GetBool("latin1")
	if err != nil {
		return fmt.Errorf("failed to get latin1 flag: %w", err)
	}
	if latin1 {
		// Latin-1 decoding is configured per parser, so this path walks
		// the tapes one at a time.
		for _, path := range args {
			ev, err := selectEvaluation(pyne.Open(path).Latin1(), mat)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := exportTo(sibling(path, f), ev, f, pretty); err != nil {
				return err
			}
		}
		return nil
	}

	results, err := pyne.ParseMany(cmd.Context(), args, jobs)
	if err != nil {
		return err
	}
	for _, res := range results {
		ev, err := pickMaterial(res.Evaluations, mat)
		if err != nil {
			return fmt.Errorf("%s: %w", res.Filename, err)
		}
		if err := exportTo(sibling(res.Filename, f), ev, f, pretty); err != nil {
			return err
		}
	}
	return nil
}

// sibling names the output file written next to the input tape.
func sibling(input string, f format.Format) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + f.Extension()
}

func exportTo(path string, ev *model.Evaluation, f format.Format, pretty bool) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeDocument(file, ev, f, pretty); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return file.Close()
}

func writeDocument(w io.Writer, ev *model.Evaluation, f format.Format, pretty bool) error {
	switch f {
	case format.JSON:
		return export.JSON(w, ev, pretty)
	case format.Msgpack:
		return export.Msgpack(w, ev)
	default:
		return fmt.Errorf("cannot export %s", f)
	}
}
