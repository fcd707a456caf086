// Package report renders parsed evaluations as human-readable text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/hearic/pyne/model"
	"github.com/hearic/pyne/names"
)

// Options configure report rendering.
type Options struct {
	// Color enables ANSI colors on the banner and section titles.
	Color bool

	// Names resolves library and reaction names. nil uses the built-in
	// tables.
	Names *names.Table

	// Description includes the free-text description block of the header.
	Description bool
}

// palette holds the sprint functions used for each role in the output.
// With color disabled every role degrades to fmt.Sprint.
type palette struct {
	banner  func(a ...interface{}) string
	title   func(a ...interface{}) string
	section func(a ...interface{}) string
}

func newPalette(enabled bool) palette {
	if !enabled {
		return palette{banner: fmt.Sprint, title: fmt.Sprint, section: fmt.Sprint}
	}
	return palette{
		banner:  color.New(color.FgCyan, color.Bold).SprintFunc(),
		title:   color.New(color.Bold).SprintFunc(),
		section: color.New(color.FgGreen).SprintFunc(),
	}
}

// Write renders a full report of ev: banner, identity block, directory
// table, and a one-line summary per decoded reaction. The evaluation is not
// modified.
func Write(w io.Writer, ev *model.Evaluation, opts Options) error {
	var sb strings.Builder
	p := newPalette(opts.Color)
	md := ev.Metadata

	lib := opts.Names.Library(md.NLIB)
	if lib == "" {
		lib = "Undetermined"
	}
	fmt.Fprintf(&sb, "%s\n", p.banner(fmt.Sprintf("<%s Evaluation: %d>", lib, md.ZA)))

	row := func(label, format string, args ...interface{}) {
		fmt.Fprintf(&sb, "  %-13s %s\n", label, fmt.Sprintf(format, args...))
	}
	row("material", "%d", ev.Material)
	row("nuclide", "%s (ZA %d, AWR %g)", strings.TrimSpace(md.ZSYMAM), md.ZA, md.AWR)
	row("library", "%s (NLIB %d, version %d, release %d)", lib, md.NLIB, md.NVER, md.LREL)
	row("sublibrary", "%d (format ENDF-%d)", md.NSUB, md.NFOR)
	row("evaluated", "%s by %s (%s)", strings.TrimSpace(md.EDATE),
		strings.TrimSpace(md.AUTH), strings.TrimSpace(md.ALAB))
	row("distributed", "%s", strings.TrimSpace(md.DDATE))
	row("temperature", "%g K", md.TEMP)
	row("max energy", "%g eV", md.EMAX)
	if md.LISO != 0 {
		row("isomer", "state %d (level %d)", md.LISO, md.LIS)
	}
	if ev.TapeID != "" {
		row("tape", "%s", ev.TapeID)
	}

	if opts.Description && len(md.Description) > 0 {
		fmt.Fprintf(&sb, "\n%s\n", p.title("Description"))
		for _, line := range md.Description {
			fmt.Fprintf(&sb, "  %s\n", strings.TrimRight(line, " "))
		}
	}

	fmt.Fprintf(&sb, "\n%s\n", p.title(fmt.Sprintf("Directory (%d sections)", len(ev.Directory))))
	fmt.Fprintf(&sb, "  %4s %4s %8s %4s  %s\n", "MF", "MT", "records", "mod", "name")
	for _, e := range ev.Directory {
		fmt.Fprintf(&sb, "  %4d %4d %8d %4d  %s\n",
			int(e.MF), e.MT, e.NC, e.MOD, p.section(opts.Names.MT(e.MT)))
	}

	decoded := 0
	for _, f := range ev.Files {
		decoded += len(f.Reactions)
	}
	fmt.Fprintf(&sb, "\n%s\n", p.title(fmt.Sprintf("Reactions (%d decoded)", decoded)))
	for _, f := range ev.Files {
		for _, rx := range f.Reactions {
			title := fmt.Sprintf("MT=%d", rx.MT)
			if name := opts.Names.MT(rx.MT); name != "" {
				title += ", " + name
			}
			fmt.Fprintf(&sb, "  %s  %s\n", p.section(fmt.Sprintf("<ENDF Reaction: %s>", title)),
				summarize(rx.Data))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// summarize describes a reaction payload in one clause.
func summarize(data model.Data) string {
	switch d := data.(type) {
	case *model.Polynomial:
		return fmt.Sprintf("polynomial, %d coefficients", len(d.Coefficients))
	case *model.Tabulated:
		n := d.Table.NP()
		if n == 0 || len(d.Table.X) == 0 {
			return "tabulated, empty"
		}
		return fmt.Sprintf("tabulated, %d points over [%g, %g] eV",
			n, d.Table.X[0], d.Table.X[len(d.Table.X)-1])
	case *model.DelayedGroups:
		nu := "not decoded"
		if d.Nu != nil {
			nu = summarize(d.Nu)
		}
		return fmt.Sprintf("%d delayed groups, nubar %s", len(d.DecayConstants), nu)
	case nil:
		return "flags only"
	default:
		return data.Kind().String()
	}
}
