package generator

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/eng618/nonogram-builder/pkg/common"
	"github.com/eng618/nonogram-builder/pkg/generator/config"
	"github.com/eng618/nonogram-builder/pkg/model"
	"github.com/eng618/nonogram-builder/pkg/validator"
)

// mathRand adapts *rand.Rand (math/rand/v2's PCG-backed Rand) to config.Randomizer.
type mathRand struct{ r *rand.Rand }

func (m mathRand) Intn(n int) int     { return m.r.IntN(n) }
func (m mathRand) Float64() float64   { return m.r.Float64() }

// Clean removes generated puzzle files and the pack registry.
func Clean() error {
	puzzlesDir, err := common.PuzzlesDir()
	if err != nil {
		return fmt.Errorf("failed to resolve puzzles directory: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(puzzlesDir, "puzzle_*.json"))
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := os.Remove(f); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", f, err)
		}
	}

	packsFile := filepath.Join(puzzlesDir, "packs.json")
	if err := os.Remove(packsFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", packsFile, err)
	}
	return nil
}

// Generate creates count puzzles at the given difficulty, starting after the
// highest existing puzzle ID. Each puzzle is generated with the named
// strategy, retried until the solver confirms it has a unique solution (or
// maxAttempts is exhausted), and written to the puzzles directory.
func Generate(count int, baseSeed int64, useRandomSeed bool, difficulty, strategyName string, overwrite bool) error {
	puzzlesDir, err := common.PuzzlesDir()
	if err != nil {
		return fmt.Errorf("failed to resolve puzzles directory: %w", err)
	}
	dataDir, err := common.DataDir()
	if err != nil {
		return fmt.Errorf("failed to resolve data directory: %w", err)
	}
	if err := os.MkdirAll(puzzlesDir, 0o755); err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	if _, ok := config.DifficultySpecs[difficulty]; !ok {
		return fmt.Errorf("unknown difficulty: %s", difficulty)
	}

	startID := 1
	if existing, err := filepath.Glob(filepath.Join(puzzlesDir, "puzzle_*.json")); err == nil {
		for _, f := range existing {
			var id int
			if _, err := fmt.Sscanf(filepath.Base(f), "puzzle_%d.json", &id); err == nil && id >= startID {
				startID = id + 1
			}
		}
	}

	generated := 0
	for i := 0; i < count; i++ {
		puzzleID := startID + i
		var seed int64
		switch {
		case useRandomSeed:
			seed = cryptoSeedInt64() + int64(i)
		case baseSeed != 0:
			seed = baseSeed + int64(i)
		default:
			seed = int64(puzzleID) * 31337
		}

		puzzle, stats, err := GenerateOne(puzzleID, difficulty, strategyName, seed)
		if err != nil {
			common.Error("puzzle %d failed: %v", puzzleID, err)
			continue
		}
		if err := WritePuzzle(puzzle, overwrite); err != nil {
			common.Error("failed to write puzzle %d: %v", puzzleID, err)
			continue
		}

		generated++
		common.Verbose("puzzle %d: %dx%d, attempts=%d, elapsed=%dms", puzzleID, stats.GridWidth, stats.GridHeight, stats.Attempts, stats.ElapsedMS)
		if generated%10 == 0 || generated == count {
			common.Info("Generated %d/%d puzzles...", generated, count)
		}
	}

	common.Info("Successfully generated %d puzzles", generated)
	return nil
}

// GenerateOne builds a config.GenerationConfig for the given difficulty tier
// and produces one puzzle with it, retrying internally until the solver
// confirms a unique solution. Exported so pkg/batch can generate puzzles for
// a themed pack without duplicating the difficulty-to-config translation.
func GenerateOne(puzzleID int, difficulty, strategyName string, seed int64) (model.Puzzle, config.GenerationStats, error) {
	spec, ok := config.DifficultySpecs[difficulty]
	if !ok {
		return model.Puzzle{}, config.GenerationStats{}, fmt.Errorf("unknown difficulty: %s", difficulty)
	}
	cfg := config.GenerationConfig{
		Difficulty:     difficulty,
		Width:          midpoint(spec.WidthRange),
		Height:         midpoint(spec.HeightRange),
		Density:        midpoint64(spec.DensityRange),
		Seed:           seed,
		MaxAttempts:    25,
		RequireUnique:  true,
		SolverMaxDepth: spec.MaxDepth,
		StrategyName:   strategyName,
	}
	return generateSinglePuzzle(puzzleID, cfg)
}

// WritePuzzle marshals and writes a puzzle to its puzzle_<id>.json path,
// refusing to clobber an existing file unless overwrite is set.
func WritePuzzle(puzzle model.Puzzle, overwrite bool) error {
	path, err := common.PuzzleFilePath(puzzle.ID)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("puzzle %d already exists at %s (use --overwrite)", puzzle.ID, path)
		}
	}
	b, err := json.MarshalIndent(puzzle, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal puzzle %d: %w", puzzle.ID, err)
	}
	return os.WriteFile(path, b, 0o644)
}

// generateSinglePuzzle fills a grid with the named strategy, re-rolling the
// seed on each attempt until the solver confirms the resulting puzzle has
// exactly one solution, or MaxAttempts is exhausted.
func generateSinglePuzzle(puzzleID int, cfg config.GenerationConfig) (model.Puzzle, config.GenerationStats, error) {
	strategy, err := GetStrategy(cfg.StrategyName)
	if err != nil {
		return model.Puzzle{}, config.GenerationStats{}, err
	}

	start := time.Now()
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		attemptSeed := cfg.Seed + int64(attempt)*7919
		rng := mathRand{rand.New(rand.NewPCG(uint64(attemptSeed), uint64(attemptSeed>>1)))}

		grid := strategy.GenerateGrid(cfg, rng)
		rowHints, colHints := hintsFromGrid(grid)

		puzzle := model.Puzzle{
			ID:                  puzzleID,
			Difficulty:          cfg.Difficulty,
			RowHints:            rowHints,
			ColHints:            colHints,
			Solution:            solutionStrings(grid),
			GenerationSeed:      attemptSeed,
			GenerationAttempts:  attempt,
			GenerationElapsedMS: time.Since(start).Milliseconds(),
		}

		if !cfg.RequireUnique {
			return puzzle, config.GenerationStats{Attempts: attempt, ElapsedMS: puzzle.GenerationElapsedMS, Seed: attemptSeed, GridWidth: cfg.Width, GridHeight: cfg.Height}, nil
		}

		ok, stats, err := validator.IsSolvable(puzzle, cfg.SolverMaxDepth)
		if err != nil {
			continue
		}
		if ok && stats.Unique {
			return puzzle, config.GenerationStats{Attempts: attempt, ElapsedMS: puzzle.GenerationElapsedMS, Seed: attemptSeed, GridWidth: cfg.Width, GridHeight: cfg.Height}, nil
		}
	}

	return model.Puzzle{}, config.GenerationStats{}, fmt.Errorf("no unique solution found in %d attempts", cfg.MaxAttempts)
}

// hintsFromGrid derives row and column run-length hints from a filled grid.
func hintsFromGrid(grid [][]bool) (rowHints, colHints [][]int) {
	for _, row := range grid {
		rowHints = append(rowHints, runLengths(row))
	}
	if len(grid) == 0 {
		return rowHints, colHints
	}
	width := len(grid[0])
	for c := 0; c < width; c++ {
		col := make([]bool, len(grid))
		for r := range grid {
			col[r] = grid[r][c]
		}
		colHints = append(colHints, runLengths(col))
	}
	return rowHints, colHints
}

func runLengths(line []bool) []int {
	var runs []int
	run := 0
	for _, filled := range line {
		if filled {
			run++
			continue
		}
		if run > 0 {
			runs = append(runs, run)
			run = 0
		}
	}
	if run > 0 {
		runs = append(runs, run)
	}
	return runs
}

func solutionStrings(grid [][]bool) []string {
	out := make([]string, len(grid))
	for r, row := range grid {
		b := make([]byte, len(row))
		for c, filled := range row {
			if filled {
				b[c] = '#'
			} else {
				b[c] = '.'
			}
		}
		out[r] = string(b)
	}
	return out
}

func midpoint(r [2]int) int        { return (r[0] + r[1]) / 2 }
func midpoint64(r [2]float64) float64 { return (r[0] + r[1]) / 2 }

// cryptoSeedInt64 draws a seed from the OS CSPRNG for --randomize runs,
// falling back to the current time if the CSPRNG read fails.
func cryptoSeedInt64() int64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.BigEndian.Uint64(buf[:]) >> 1)
}
