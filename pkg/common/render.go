package common

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/eng618/nonogram-builder/pkg/nonogram"
)

// RenderFieldToWriter prints a visual representation of a field to w, with
// row and column hints drawn along the left and top edges. style can be
// "ascii" or "unicode". When useColor is set, filled cells are painted
// distinctly from forced-empty and still-unknown ones.
func RenderFieldToWriter(w io.Writer, field *nonogram.Field, rowHints, colHints []nonogram.LineHints, style string, useColor bool) {
	nrows, ncols := field.Nrows(), field.Ncols()
	if nrows == 0 || ncols == 0 {
		_, _ = fmt.Fprintf(w, "invalid grid size: %dx%d\n", ncols, nrows)
		return
	}

	filledGlyph, emptyGlyph, unknownGlyph := glyphsForStyle(style)
	colorize := colorizerFor(useColor)

	gutter := hintGutterWidth(rowHints)
	renderColHints(w, colHints, gutter)

	for r := 0; r < nrows; r++ {
		_, _ = fmt.Fprintf(w, "%*s ", gutter, hintString(rowHints[r]))
		for c := 0; c < ncols; c++ {
			cell := field.Get(nonogram.Coords{Row: r, Col: c})
			_, _ = fmt.Fprint(w, colorize(cell, filledGlyph, emptyGlyph, unknownGlyph))
		}
		_, _ = fmt.Fprintln(w)
	}
}

func glyphsForStyle(style string) (filled, empty, unknown string) {
	if strings.EqualFold(style, "ascii") {
		return "# ", ". ", "? "
	}
	return "██", "· ", "░░"
}

// colorizerFor returns a function rendering one cell's glyph, optionally
// wrapped in color escapes.
func colorizerFor(useColor bool) func(nonogram.CellValue, string, string, string) string {
	if !useColor {
		return func(v nonogram.CellValue, filled, empty, unknown string) string {
			switch v {
			case nonogram.Filled:
				return filled
			case nonogram.Empty:
				return empty
			default:
				return unknown
			}
		}
	}
	return func(v nonogram.CellValue, filled, empty, unknown string) string {
		switch v {
		case nonogram.Filled:
			return color.New(color.FgGreen, color.Bold).Sprint(filled)
		case nonogram.Empty:
			return color.New(color.FgHiBlack).Sprint(empty)
		default:
			return color.New(color.FgYellow).Sprint(unknown)
		}
	}
}

func hintString(h nonogram.LineHints) string {
	if len(h) == 0 {
		return "0"
	}
	parts := make([]string, len(h))
	for i, n := range h {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ",")
}

func hintGutterWidth(rowHints []nonogram.LineHints) int {
	width := 0
	for _, h := range rowHints {
		if s := len(hintString(h)); s > width {
			width = s
		}
	}
	return width
}

// renderColHints prints column hints stacked vertically above the grid,
// right-aligned within each column's hint list.
func renderColHints(w io.Writer, colHints []nonogram.LineHints, gutter int) {
	maxLines := 0
	split := make([][]string, len(colHints))
	for i, h := range colHints {
		parts := strings.Split(hintString(h), ",")
		split[i] = parts
		if len(parts) > maxLines {
			maxLines = len(parts)
		}
	}

	for line := 0; line < maxLines; line++ {
		_, _ = fmt.Fprintf(w, "%*s ", gutter, "")
		for _, parts := range split {
			idx := line - (maxLines - len(parts))
			if idx < 0 {
				_, _ = fmt.Fprint(w, "  ")
				continue
			}
			_, _ = fmt.Fprintf(w, "%2s", parts[idx])
		}
		_, _ = fmt.Fprintln(w)
	}
}
