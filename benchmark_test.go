package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/eng618/nonogram-builder/pkg/common"
	"github.com/eng618/nonogram-builder/pkg/model"
	"github.com/eng618/nonogram-builder/pkg/validator"
)

// BenchmarkStructuralValidation measures structural validation performance
// across every generated puzzle.
func BenchmarkStructuralValidation(b *testing.B) {
	puzzlesDir, err := common.PuzzlesDir()
	if err != nil {
		b.Fatalf("Failed to resolve puzzles directory: %v", err)
	}
	puzzles, err := loadAllPuzzles(puzzlesDir)
	if err != nil {
		b.Fatalf("Failed to load puzzles: %v", err)
	}
	if len(puzzles) == 0 {
		b.Skip("no puzzle_*.json files found; run `generate` first")
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, puzzle := range puzzles {
			if errs := validator.ValidateStructural(*puzzle); len(errs) > 0 {
				b.Fatalf("Structural validation failed for puzzle %d: %v", puzzle.ID, errs[0])
			}
		}
	}
}

// BenchmarkSolvability measures the full recursive solver's uniqueness
// check on puzzle 1, the first (and usually smallest) generated puzzle.
func BenchmarkSolvability(b *testing.B) {
	path, err := common.PuzzleFilePath(1)
	if err != nil {
		b.Fatalf("Failed to resolve puzzle path: %v", err)
	}
	puzzle, err := loadPuzzle(path)
	if err != nil {
		b.Skipf("puzzle 1 not available: %v", err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, _, err := validator.IsSolvable(*puzzle, 3); err != nil {
			b.Fatalf("solvability check failed: %v", err)
		}
	}
}

func loadAllPuzzles(dir string) ([]*model.Puzzle, error) {
	files, err := filepath.Glob(filepath.Join(dir, "puzzle_*.json"))
	if err != nil {
		return nil, err
	}

	var puzzles []*model.Puzzle
	for _, file := range files {
		puzzle, err := loadPuzzle(file)
		if err != nil {
			return nil, err
		}
		puzzles = append(puzzles, puzzle)
	}

	return puzzles, nil
}

func loadPuzzle(path string) (*model.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var puzzle model.Puzzle
	if err := json.Unmarshal(data, &puzzle); err != nil {
		return nil, err
	}

	return &puzzle, nil
}
