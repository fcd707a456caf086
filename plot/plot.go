// Package plot draws tabulated reaction data as terminal dot plots.
package plot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/hearic/pyne/core"
)

// ErrNoPoints reports a table with nothing plottable on the requested
// scales.
var ErrNoPoints = errors.New("no points to plot")

// Options size the canvas and select axis scaling.
type Options struct {
	// Width and Height are the plot body dimensions in characters. Zero
	// selects 72x20.
	Width  int
	Height int

	// LogX and LogY plot the corresponding axis on a base-10 logarithmic
	// scale. Points with non-positive values on a log axis are dropped.
	LogX bool
	LogY bool
}

const (
	defaultWidth  = 72
	defaultHeight = 20
	gutterWidth   = 10
)

// Render draws the (x, y) sequence of tab onto w. Axis labels show original
// data values regardless of scaling.
func Render(w io.Writer, tab core.Tab1Record, opts Options) error {
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	if width < 2 {
		width = 2
	}
	if height < 2 {
		height = 2
	}

	xs, ys := project(tab, opts)
	if len(xs) == 0 {
		return ErrNoPoints
	}

	minX, maxX := bounds(xs)
	minY, maxY := bounds(ys)

	canvas := make([][]byte, height)
	for i := range canvas {
		canvas[i] = fill(' ', width)
	}
	for i := range xs {
		col := scale(xs[i], minX, maxX, width)
		row := height - 1 - scale(ys[i], minY, maxY, height)
		canvas[row][col] = '*'
	}

	var sb strings.Builder
	for r, row := range canvas {
		label := ""
		switch r {
		case 0:
			label = axisLabel(maxY, opts.LogY)
		case height / 2:
			label = axisLabel(minY+(maxY-minY)*0.5, opts.LogY)
		case height - 1:
			label = axisLabel(minY, opts.LogY)
		}
		fmt.Fprintf(&sb, "%*s |%s\n", gutterWidth, label, string(row))
	}
	fmt.Fprintf(&sb, "%*s +%s\n", gutterWidth, "", string(fill('-', width)))

	left := axisLabel(minX, opts.LogX)
	right := axisLabel(maxX, opts.LogX)
	pad := width - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	fmt.Fprintf(&sb, "%*s  %s%s%s\n", gutterWidth, "", left, string(fill(' ', pad)), right)

	_, err := io.WriteString(w, sb.String())
	return err
}

// project maps the table points into plot space, applying log scaling and
// dropping whatever cannot be placed.
func project(tab core.Tab1Record, opts Options) (xs, ys []float64) {
	n := min(len(tab.X), len(tab.Y))
	for i := 0; i < n; i++ {
		x, y := tab.X[i], tab.Y[i]
		if opts.LogX {
			if x <= 0 {
				continue
			}
			x = math.Log10(x)
		}
		if opts.LogY {
			if y <= 0 {
				continue
			}
			y = math.Log10(y)
		}
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}

// bounds returns the value range, widened when the data is flat so a single
// value lands mid-canvas instead of dividing by zero.
func bounds(vals []float64) (lo, hi float64) {
	lo, hi = vals[0], vals[0]
	for _, v := range vals[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	return lo, hi
}

// scale maps v in [lo, hi] onto a cell index in [0, cells-1].
func scale(v, lo, hi float64, cells int) int {
	i := int(math.Round((v - lo) / (hi - lo) * float64(cells-1)))
	if i < 0 {
		i = 0
	}
	if i > cells-1 {
		i = cells - 1
	}
	return i
}

// axisLabel formats a plot-space coordinate as its original data value.
func axisLabel(v float64, log bool) string {
	if log {
		v = math.Pow(10, v)
	}
	return fmt.Sprintf("%.3g", v)
}

func fill(b byte, n int) []byte {
	s := make([]byte, n)
	for i := range s {
		s[i] = b
	}
	return s
}
