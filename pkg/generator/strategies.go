package generator

import (
	"github.com/eng618/nonogram-builder/pkg/generator/config"
)

// RandomFillStrategy fills each cell independently at the configured density.
type RandomFillStrategy struct{}

func (s *RandomFillStrategy) GenerateGrid(cfg config.GenerationConfig, rng config.Randomizer) [][]bool {
	grid := make([][]bool, cfg.Height)
	for r := range grid {
		grid[r] = make([]bool, cfg.Width)
		for c := range grid[r] {
			grid[r][c] = rng.Float64() < cfg.Density
		}
	}
	return grid
}

// SymmetricStrategy fills the left half independently and mirrors it onto
// the right half, producing puzzles with a visually balanced solution.
type SymmetricStrategy struct{}

func (s *SymmetricStrategy) GenerateGrid(cfg config.GenerationConfig, rng config.Randomizer) [][]bool {
	grid := make([][]bool, cfg.Height)
	half := (cfg.Width + 1) / 2
	for r := range grid {
		grid[r] = make([]bool, cfg.Width)
		for c := 0; c < half; c++ {
			filled := rng.Float64() < cfg.Density
			grid[r][c] = filled
			grid[r][cfg.Width-1-c] = filled
		}
	}
	return grid
}
