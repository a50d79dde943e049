package render

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eng618/nonogram-builder/pkg/common"
	"github.com/eng618/nonogram-builder/pkg/model"
	"github.com/eng618/nonogram-builder/pkg/nonogram"
)

var (
	fileFlag  string
	idFlag    int
	styleFlag string
	colorFlag bool
)

// RenderCmd renders a puzzle to the terminal for visual inspection.
var RenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a puzzle to the terminal (ASCII/Unicode)",
	Long: `Render a puzzle to the terminal for quick visual inspection.

You can supply a file path with --file (-f) or a puzzle id with --id (-i)
(looked up under puzzles/). If the puzzle file carries a reference
solution, that is rendered directly; otherwise the by-lines solver fills
in whatever it can deduce, leaving ambiguous cells marked unknown.

Examples:
  nonogram-builder render --id 1
  nonogram-builder render --file puzzles/puzzle_33.json
  nonogram-builder render --id 10 --style ascii
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := fileFlag
		if path == "" {
			if idFlag == 0 {
				return fmt.Errorf("please provide either --file or --id to render a puzzle")
			}
			var err error
			path, err = common.PuzzleFilePath(idFlag)
			if err != nil {
				return fmt.Errorf("failed to resolve puzzle %d: %w", idFlag, err)
			}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read puzzle file: %w", err)
		}
		var puzzle model.Puzzle
		if err := json.Unmarshal(data, &puzzle); err != nil {
			return fmt.Errorf("failed to parse puzzle file: %w", err)
		}

		field, err := fieldForPuzzle(puzzle)
		if err != nil {
			return err
		}

		if styleFlag == "" {
			styleFlag = "unicode"
		}

		rowHints := hintsFor(puzzle.RowHints)
		colHints := hintsFor(puzzle.ColHints)
		common.RenderFieldToWriter(cmd.OutOrStdout(), field, rowHints, colHints, styleFlag, colorFlag)
		return nil
	},
}

func init() {
	RenderCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "path to a puzzle JSON file to render")
	RenderCmd.Flags().IntVarP(&idFlag, "id", "i", 0, "puzzle ID to render (uses puzzles/puzzle_<id>.json)")
	RenderCmd.Flags().StringVarP(&styleFlag, "style", "s", "unicode", "render style: ascii or unicode")
	RenderCmd.Flags().BoolVar(&colorFlag, "color", true, "colorize filled/empty/unknown cells")
}

// GetCommand returns the render command for registration with root
func GetCommand() *cobra.Command {
	return RenderCmd
}

func fieldForPuzzle(puzzle model.Puzzle) (*nonogram.Field, error) {
	nrows, ncols := puzzle.Nrows(), puzzle.Ncols()
	if len(puzzle.Solution) == nrows && nrows > 0 {
		field := nonogram.NewField(nrows, ncols)
		for r, row := range puzzle.Solution {
			for c, ch := range row {
				val := nonogram.Empty
				if ch == '#' {
					val = nonogram.Filled
				}
				field.Set(nonogram.Coords{Row: r, Col: c}, val)
			}
		}
		return field, nil
	}

	solver := nonogram.NewSolver(hintsFor(puzzle.RowHints), hintsFor(puzzle.ColHints), 0, false)
	res := solver.SolveByLines()
	if res.Kind == nonogram.Controversial {
		return nil, fmt.Errorf("puzzle has no consistent deduction (controversial hints)")
	}
	return res.Field, nil
}

func hintsFor(raw [][]int) []nonogram.LineHints {
	out := make([]nonogram.LineHints, len(raw))
	for i, h := range raw {
		out[i] = nonogram.LineHints(h)
	}
	return out
}
